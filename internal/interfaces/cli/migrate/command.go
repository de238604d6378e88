package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"helioscale/internal/infrastructure/config"
	"helioscale/internal/infrastructure/database"
	"helioscale/internal/infrastructure/migration"
	"helioscale/internal/shared/logger"
)

const scriptsPath = "internal/infrastructure/migration/scripts"

var (
	env   string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations: apply pending migrations, roll back, and inspect the ledger version.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")
	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current migration version",
		RunE:  runStatus,
	}
}

func setup() (*migration.GooseStrategy, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	dialect := "sqlite3"
	if cfg.Database.Driver == "mysql" {
		dialect = "mysql"
	}

	return migration.NewGooseStrategy(scriptsPath, dialect), nil
}

func runUp(cmd *cobra.Command, args []string) error {
	strategy, err := setup()
	if err != nil {
		return err
	}
	defer database.Close()

	if err := strategy.Migrate(database.Get()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	version, err := strategy.GetVersion(database.Get())
	if err != nil {
		return err
	}
	fmt.Printf("migrations applied, current version: %d\n", version)
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	strategy, err := setup()
	if err != nil {
		return err
	}
	defer database.Close()

	for i := 0; i < steps; i++ {
		if err := strategy.Down(database.Get()); err != nil {
			return fmt.Errorf("rollback failed: %w", err)
		}
	}

	version, err := strategy.GetVersion(database.Get())
	if err != nil {
		return err
	}
	fmt.Printf("rolled back %d migration(s), current version: %d\n", steps, version)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	strategy, err := setup()
	if err != nil {
		return err
	}
	defer database.Close()

	version, err := strategy.GetVersion(database.Get())
	if err != nil {
		return err
	}
	fmt.Printf("current migration version: %d\n", version)
	return nil
}
