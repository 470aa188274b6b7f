package main

import (
	"fmt"
	"org-roster/internal/adapters/repositories"
	"org-roster/internal/config"
	"org-roster/internal/platform/db"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the employees table and import the seed file",
	Long: `seed initializes the schema of the configured SQL source (sqlite or
postgres) and upserts every employee from --seed-path.`,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	employees, err := repositories.LoadSeedFile(cfg.SeedPath)
	if err != nil {
		return err
	}

	switch cfg.Source {
	case config.SourceSqlite:
		conn, err := db.Open(db.DriverSqlite, cfg.DBPath)
		if err != nil {
			return err
		}
		defer conn.Close()

		if err := repositories.InitSchema(conn); err != nil {
			return err
		}
		if err := repositories.SeedEmployees(conn, employees); err != nil {
			return err
		}
	case config.SourcePostgres:
		conn, err := db.Open(db.DriverPostgres, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer conn.Close()

		if err := repositories.InitPostgresSchema(ctx, conn); err != nil {
			return err
		}
		if err := repositories.SeedPostgresEmployees(ctx, conn, employees); err != nil {
			return err
		}
	default:
		return fmt.Errorf("seed: source must be sqlite or postgres, got %q", cfg.Source)
	}

	logger.Info("seed complete",
		zap.String("source", cfg.Source),
		zap.String("seed_path", cfg.SeedPath),
		zap.Int("employees", len(employees)),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d employees into %s\n", len(employees), cfg.Source)
	return nil
}
