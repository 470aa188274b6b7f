package main

import (
	"context"
	"database/sql"
	"fmt"
	"org-roster/internal/adapters/repositories"
	"org-roster/internal/config"
	"org-roster/internal/platform/db"
	"org-roster/internal/platform/logging"
	"org-roster/internal/platform/obs"
	"org-roster/internal/ports"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

var (
	cfg     config.Config
	logger  *zap.Logger
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "roster",
	Short: "Employee, building and construction company roster report",
	Long: `roster builds an in-memory organization from an employee source
(builtin, seed file, SQLite or Postgres) and prints the roster report.

Running without a subcommand is the same as "roster report".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		applyFlagOverrides(cmd)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config: %w", err)
		}

		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level, cfg.LogFormat)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cmd.SetContext(obs.WithRunID(cmd.Context()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, args)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("source", "", "employee source: builtin, file, sqlite or postgres (env ROSTER_SOURCE)")
	pf.String("seed-path", "", "YAML or JSON seed file (env SEED_PATH)")
	pf.String("db-path", "", "SQLite database file (env DB_PATH)")
	pf.String("database-url", "", "Postgres connection string (env DATABASE_URL)")
	pf.String("log-format", "", "log format: console or json (env LOG_FORMAT)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	addReportFlags(rootCmd)
	rootCmd.AddCommand(reportCmd, seedCmd)
}

// Flags given on the command line win over the environment.
func applyFlagOverrides(cmd *cobra.Command) {
	overrides := map[string]*string{
		"source":       &cfg.Source,
		"seed-path":    &cfg.SeedPath,
		"db-path":      &cfg.DBPath,
		"database-url": &cfg.DatabaseURL,
		"log-format":   &cfg.LogFormat,
		"stage":        &cfg.Stage,
	}
	for name, dst := range overrides {
		f := cmd.Flags().Lookup(name)
		if f != nil && f.Changed {
			*dst = f.Value.String()
		}
	}
}

// Open the configured employee source. The returned closer is never nil.
func openRepository(cfg config.Config, logger *zap.Logger) (ports.EmployeeRepository, func(), error) {
	noop := func() {}

	switch cfg.Source {
	case config.SourceBuiltin:
		return repositories.NewBuiltinEmployeeRepository(), noop, nil
	case config.SourceFile:
		return repositories.NewFileEmployeeRepository(cfg.SeedPath), noop, nil
	case config.SourceSqlite:
		conn, err := db.Open(db.DriverSqlite, cfg.DBPath)
		if err != nil {
			return nil, noop, err
		}
		return repositories.NewSqliteEmployeeRepository(conn, logger), closer(conn), nil
	case config.SourcePostgres:
		conn, err := db.Open(db.DriverPostgres, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		return repositories.NewSQLEmployeeRepository(conn, logger), closer(conn), nil
	default:
		return nil, noop, fmt.Errorf("open repository: unknown source %q", cfg.Source)
	}
}

func closer(conn *sql.DB) func() {
	return func() { _ = conn.Close() }
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: load .env: %v\n", err)
	}

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
