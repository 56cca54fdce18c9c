package contract

import (
	"strings"
	"time"

	"github.com/IsaacParker30/paper-read/schema"
)

// Default values for configuration.
const (
	DefaultWeeks       = 12
	MaxWeeks           = 520
	DefaultResultLimit = 10
	MaxResultLimit     = 1000
	DefaultMinWords    = 100
)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for a paperforest invocation.
// This struct remains the "final, validated" config.
type Config struct {
	// Today is the reference day every streak and grid computation anchors
	// on. It is resolved once at the configuration boundary so the core
	// never reads the wall clock itself.
	Today time.Time

	Weeks       int  // Forest window size in weeks
	ResultLimit int  // Maximum number of entries to list
	MinWords    int  // Soft minimum word count for summaries
	Width       int  // Terminal width override (0 = auto-detect)
	UseColors   bool // Enable colored labels in output

	Output     schema.OutputMode
	OutputFile string

	// Log command inputs.
	Title    string    // Positional paper title
	PaperID  string    // Explicit external identifier, empty to auto-generate
	Summary  string    // Summary text, empty to read from stdin
	LoggedOn time.Time // Day override for the log command, zero means Today

	// Show/remove positional argument.
	PaperIDArg string

	StoreBackend   schema.StoreBackend
	StoreDBConnect string // Please use env var as this is plaintext

	// Migrate command input. -1 means latest.
	TargetVersion int
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// These are set manually from positional args, so no tag
	TitleStr      string
	PaperIDArgStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Weeks          int    `mapstructure:"weeks"`
	Limit          int    `mapstructure:"limit"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Color          string `mapstructure:"color"`
	Width          int    `mapstructure:"width"`
	StoreBackend   string `mapstructure:"store-backend"`
	StoreDBConnect string `mapstructure:"store-db-connect"`

	// --- Fields from logCmd.Flags() ---
	PaperID  string `mapstructure:"paper-id"`
	Summary  string `mapstructure:"summary"`
	Date     string `mapstructure:"date"`
	MinWords int    `mapstructure:"min-words"`

	// --- Fields from migrateCmd.Flags() ---
	TargetVersion int `mapstructure:"target-version"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct. Violations surface as ConfigError.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput, now time.Time) error {
	// All validation functions read from 'input' and populate 'cfg'.
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processLogInputs(cfg, input, now); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-log related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.TargetVersion = input.TargetVersion

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return NewConfigError("invalid --color value: %v", err)
	}
	cfg.UseColors = colors

	// --- 1. Weeks Validation ---
	if input.Weeks <= 0 || input.Weeks > MaxWeeks {
		return NewConfigError("weeks must be greater than 0 and cannot exceed %d (received %d)", MaxWeeks, input.Weeks)
	}
	cfg.Weeks = input.Weeks

	// --- 2. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return NewConfigError("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 3. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return NewConfigError("invalid output format '%s'. must be text, json, csv, parquet", input.Output)
	}

	return nil
}

// processLogInputs handles the log command fields and the reference day.
func processLogInputs(cfg *Config, input *ConfigRawInput, now time.Time) error {
	cfg.Today = schema.DayOf(now)
	cfg.Title = strings.TrimSpace(input.TitleStr)
	cfg.PaperID = strings.TrimSpace(input.PaperID)
	cfg.Summary = input.Summary
	cfg.PaperIDArg = strings.TrimSpace(input.PaperIDArgStr)

	if input.MinWords < 0 {
		return NewConfigError("min-words cannot be negative (received %d)", input.MinWords)
	}
	cfg.MinWords = input.MinWords

	if input.Date != "" {
		day, err := schema.ParseDay(input.Date)
		if err != nil {
			return NewConfigError("invalid date '%s'. Expected YYYY-MM-DD: %v", input.Date, err)
		}
		if day.After(cfg.Today) {
			return NewConfigError("date %s is in the future", input.Date)
		}
		cfg.LoggedOn = day
	}

	return nil
}

// validateBackendConfig validates the store backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.StoreBackend = schema.StoreBackend(strings.ToLower(input.StoreBackend))
	if _, ok := schema.ValidStoreBackends[cfg.StoreBackend]; !ok {
		return NewConfigError("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackend)
	}
	cfg.StoreDBConnect = input.StoreDBConnect
	return ValidateStoreConnectionString(cfg.StoreBackend, cfg.StoreDBConnect)
}

// ValidateStoreConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateStoreConnectionString(backend schema.StoreBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return NewConfigError("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return NewConfigError("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return NewConfigError("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return NewConfigError("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return NewConfigError("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return NewConfigError("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}
