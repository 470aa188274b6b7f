package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Supported employee sources.
const (
	SourceBuiltin  = "builtin"
	SourceFile     = "file"
	SourceSqlite   = "sqlite"
	SourcePostgres = "postgres"
)

// Config holds everything the roster CLI reads from the environment.
type Config struct {
	Source      string
	SeedPath    string
	DBPath      string
	DatabaseURL string

	LogLevel  string
	LogFormat string

	Stage                       string
	BuildingName                string
	BuildingArea                float64
	BuildingCategory            string
	CompanyName                 string
	ConstructionCompanyName     string
	ConstructionCompanyCategory string
}

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load reads the configuration from environment variables.
// Call godotenv.Load first to pick up a local .env file, and Validate
// once command-line overrides are applied.
func Load() (Config, error) {
	cfg := Config{
		Source:      strings.ToLower(Get("ROSTER_SOURCE", SourceBuiltin)),
		SeedPath:    Get("SEED_PATH", "data/seeds/employees.yaml"),
		DBPath:      Get("DB_PATH", "data/roster.db"),
		DatabaseURL: Get("DATABASE_URL", ""),

		LogLevel:  Get("LOG_LEVEL", "warn"),
		LogFormat: Get("LOG_FORMAT", "console"),

		Stage:                       Get("REPORT_STAGE", "construction"),
		BuildingName:                Get("BUILDING_NAME", "Warehouse"),
		BuildingCategory:            Get("BUILDING_CATEGORY", "WAREHOUSE"),
		CompanyName:                 Get("COMPANY_NAME", "SFBU Corp"),
		ConstructionCompanyName:     Get("CONSTRUCTION_COMPANY_NAME", "BuildItRight Inc."),
		ConstructionCompanyCategory: Get("CONSTRUCTION_COMPANY_CATEGORY", "GENERAL_CONTRACTOR"),
	}

	area, err := strconv.ParseFloat(Get("BUILDING_AREA", "2500"), 64)
	if err != nil {
		return Config{}, fmt.Errorf("load config: parse BUILDING_AREA: %w", err)
	}
	if area <= 0 {
		return Config{}, fmt.Errorf("load config: BUILDING_AREA must be positive, got %v", area)
	}
	cfg.BuildingArea = area

	return cfg, nil
}

// Validate checks that the selected source has what it needs.
func (c Config) Validate() error {
	switch c.Source {
	case SourceBuiltin:
	case SourceFile:
		if strings.TrimSpace(c.SeedPath) == "" {
			return fmt.Errorf("SEED_PATH is required for source %q", c.Source)
		}
	case SourceSqlite:
		if strings.TrimSpace(c.DBPath) == "" {
			return fmt.Errorf("DB_PATH is required for source %q", c.Source)
		}
	case SourcePostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("DATABASE_URL is required for source %q", c.Source)
		}
	default:
		return fmt.Errorf("unknown source %q", c.Source)
	}
	return nil
}
