package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nexus-desk/nexus/internal/interfaces/cli/migrate"
	"github.com/nexus-desk/nexus/internal/interfaces/cli/portallink"
	"github.com/nexus-desk/nexus/internal/interfaces/cli/server"
	"github.com/nexus-desk/nexus/internal/interfaces/cli/snapshot"
	"github.com/nexus-desk/nexus/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "nexus",
		Short:   "Nexus - multi-tenant support desk",
		Long:    `Nexus serves the support desk API: tickets with AI triage, client portals, team and settings management, and a streaming troubleshooting assistant.`,
		Version: version.Current,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		snapshot.NewCommand(),
		portallink.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
