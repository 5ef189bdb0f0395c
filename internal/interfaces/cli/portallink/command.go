// Package portallink prints, and optionally emails, the portal link of a client.
package portallink

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexus-desk/nexus/internal/application/access"
	"github.com/nexus-desk/nexus/internal/application/client/usecases"
	"github.com/nexus-desk/nexus/internal/domain/session"
	"github.com/nexus-desk/nexus/internal/infrastructure/email"
	"github.com/nexus-desk/nexus/internal/infrastructure/permission"
	"github.com/nexus-desk/nexus/internal/interfaces/cli/bootstrap"
	"github.com/nexus-desk/nexus/internal/shared/constants"
)

var (
	env        string
	configPath string
	send       bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portal-link <client-id>",
		Short: "Print the portal link of a client",
		Long:  `Print the URL that opens the client portal for the given client. With --send the link is also emailed to the client.`,
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&send, "send", false, "Email the link to the client")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.Init(env, configPath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	s, closeStore, err := bootstrap.OpenStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	enforcer, err := permission.NewEnforcer(log)
	if err != nil {
		return err
	}
	guard := access.NewGuard(enforcer, log)
	admin := session.Admin()

	var result *usecases.PortalLinkResult
	if send {
		sender := email.NewSMTPEmailService(email.SMTPConfigFrom(cfg.Email), log)
		uc := usecases.NewInviteClientUseCase(s, guard, sender, cfg.Server.BaseURL, log)
		result, err = uc.Execute(ctx, usecases.InviteClientCommand{Session: admin, ClientID: args[0]})
	} else {
		uc := usecases.NewPortalLinkUseCase(s, guard, cfg.Server.BaseURL, log)
		result, err = uc.Execute(ctx, usecases.PortalLinkQuery{Session: admin, ClientID: args[0]})
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.URL)
	if send {
		fmt.Fprintf(cmd.ErrOrStderr(), "invite sent to %s\n", result.Email)
	}
	return nil
}
