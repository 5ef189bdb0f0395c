package migrate

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/nexus-desk/nexus/internal/infrastructure/database"
	"github.com/nexus-desk/nexus/internal/infrastructure/kvstore"
	"github.com/nexus-desk/nexus/internal/infrastructure/migration"
	"github.com/nexus-desk/nexus/internal/interfaces/cli/bootstrap"
	"github.com/nexus-desk/nexus/internal/shared/constants"
	"github.com/nexus-desk/nexus/internal/shared/logger"
)

var (
	env        string
	configPath string
	strategy   string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage the schema of the SQL store backend: apply pending migrations and show their status.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}

	cmd.Flags().StringVar(&strategy, "strategy", migration.StrategyGoose, "Migration strategy (goose, gorm)")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

type migrationEnv struct {
	db      *gorm.DB
	dialect string
	log     logger.Interface
}

func initEnv() (*migrationEnv, error) {
	cfg, log, err := bootstrap.Init(env, configPath)
	if err != nil {
		return nil, err
	}

	if cfg.Store.Backend != kvstore.BackendSQL {
		return nil, fmt.Errorf("migrations apply to the sql store backend only, configured backend is %q", cfg.Store.Backend)
	}

	db, err := database.Open(&cfg.Store.SQL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &migrationEnv{
		db:      db,
		dialect: database.GooseDialect(cfg.Store.SQL.Driver),
		log:     log,
	}, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	menv, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close(menv.db)

	manager, err := migration.NewManager(strategy, menv.dialect, menv.log)
	if err != nil {
		return err
	}
	if err := manager.Migrate(cmd.Context(), menv.db, migration.Models()...); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Store schema is up to date (%s)\n", manager.Strategy().Name())
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	menv, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close(menv.db)

	goose := migration.NewGooseStrategy(menv.dialect, menv.log)
	ctx := cmd.Context()

	version, err := goose.Version(ctx, menv.db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	scripts, err := goose.Status(ctx, menv.db)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Schema version: %d\n", version)
	for _, st := range scripts {
		state := "pending"
		if st.Applied {
			state = "applied " + st.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(out, "  %05d  %-40s %s\n", st.Version, st.Path, state)
	}
	return nil
}
