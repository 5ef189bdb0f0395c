// Package snapshot dumps the persisted support desk state.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	clientdto "github.com/nexus-desk/nexus/internal/application/client/dto"
	settingdto "github.com/nexus-desk/nexus/internal/application/setting/dto"
	"github.com/nexus-desk/nexus/internal/application/store"
	teamdto "github.com/nexus-desk/nexus/internal/application/team/dto"
	ticketdto "github.com/nexus-desk/nexus/internal/application/ticket/dto"
	"github.com/nexus-desk/nexus/internal/interfaces/cli/bootstrap"
	"github.com/nexus-desk/nexus/internal/shared/constants"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	env        string
	configPath string
	format     string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Print the stored tickets, clients, team and settings",
		Long:  `Load the entity state from the configured store backend and print it as YAML or JSON.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&format, "format", "f", FormatYAML, "Output format (yaml, json)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.Init(env, configPath)
	if err != nil {
		return err
	}

	s, closeStore, err := bootstrap.OpenStore(context.Background(), cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	return Write(os.Stdout, s.Snapshot(), format)
}

// Document is the exported shape of the state.
type Document struct {
	Tickets  []*ticketdto.TicketDTO  `json:"tickets"`
	Clients  []*clientdto.ClientDTO  `json:"clients"`
	Team     []*teamdto.MemberDTO    `json:"team"`
	Settings *settingdto.SettingsDTO `json:"settings"`
}

func NewDocument(state *store.State) Document {
	return Document{
		Tickets:  ticketdto.ToTicketDTOList(state.Tickets, state.Clients),
		Clients:  clientdto.ToClientDTOList(state.Clients),
		Team:     teamdto.ToMemberDTOList(state.Team),
		Settings: settingdto.ToSettingsDTO(state.Settings),
	}
}

// Write renders the state in the requested format.
func Write(w io.Writer, state *store.State, outputFormat string) error {
	doc := NewDocument(state)

	switch strings.ToLower(outputFormat) {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)

	case FormatYAML, "":
		// route through JSON so the keys match the API field names
		raw, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encode snapshot: %w", err)
		}
		var generic map[string]any
		if err := json.Unmarshal(raw, &generic); err != nil {
			return fmt.Errorf("encode snapshot: %w", err)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(generic); err != nil {
			return fmt.Errorf("encode snapshot: %w", err)
		}
		return enc.Close()

	default:
		return fmt.Errorf("unsupported format %q, expected yaml or json", outputFormat)
	}
}
