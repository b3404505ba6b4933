package contract

import (
	"fmt"
	"strings"

	"github.com/3JRock3/Ver-2-Draft/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 0 // 0 = whole board
	MaxResultLimit     = 1000
	DefaultPrecision   = 3
	MaxPrecision       = 6
	DefaultSessionKey  = "default"
)

// League configuration bounds. Out-of-range values are clamped, not rejected.
const (
	MinTeams  = 2
	MaxTeams  = 16
	MinRounds = 1
	MaxRounds = 30
)

// Config holds the validated runtime configuration for one command.
// League settings, weight knobs and the show-taken toggle live in the
// session snapshot, not here; this struct carries the per-invocation
// surface: filters, output and store selection.
type Config struct {
	Pos          schema.Position // Board position filter, AllPositionsFilter = no filter
	Search       string          // Case-insensitive name substring filter
	ShowTaken    bool            // Keep taken players on the board
	ShowTakenSet bool            // Whether the flag overrides the persisted toggle
	Limit        int             // Max rows to display, 0 = all
	Explain      bool            // Print per-player scoring term breakdown
	Detail       bool            // Print per-player metadata columns

	Output     schema.OutputMode
	OutputFile string
	Precision  int // Decimal precision for numeric columns
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	SessionKey string // Snapshot key, allows multiple parallel sessions

	StoreBackend   schema.StoreBackend
	StoreDBConnect string // Please use env var as this is plaintext

	ArchiveBackend   schema.StoreBackend
	ArchiveDBConnect string // Please use env var as this is plaintext

	SummaryTopN int // Pool depth for the position counts
	BestK       int // Best-available list length
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct; ProcessAndValidate turns it
// into the final Config.
type ConfigRawInput struct {
	Pos        string `mapstructure:"pos"`
	Search     string `mapstructure:"search"`
	ShowTaken  string `mapstructure:"show-taken"`
	Limit      int    `mapstructure:"limit"`
	Explain    bool   `mapstructure:"explain"`
	Detail     bool   `mapstructure:"detail"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Precision  int    `mapstructure:"precision"`
	Width      int    `mapstructure:"width"`
	Color      string `mapstructure:"color"`

	Session string `mapstructure:"session"`

	StoreBackend   string `mapstructure:"store-backend"`
	StoreDBConnect string `mapstructure:"store-db-connect"`

	ArchiveBackend   string `mapstructure:"archive-backend"`
	ArchiveDBConnect string `mapstructure:"archive-db-connect"`

	SummaryTopN int `mapstructure:"top"`
	BestK       int `mapstructure:"best"`
}

// Clone returns a copy of the configuration. Handlers mutate the copy with
// per-request parameters without touching the base configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct. Numeric inputs are clamped to
// their bounds; only structurally invalid enums produce errors.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := processPositionFilter(cfg, input); err != nil {
		return err
	}
	cfg.Search = strings.TrimSpace(input.Search)

	if input.ShowTaken != "" {
		show, err := ParseBoolString(input.ShowTaken)
		if err != nil {
			return fmt.Errorf("invalid show-taken value: %w", err)
		}
		cfg.ShowTaken = show
		cfg.ShowTakenSet = true
	}

	cfg.Limit = input.Limit
	if cfg.Limit < 0 {
		cfg.Limit = 0
	}
	if cfg.Limit > MaxResultLimit {
		cfg.Limit = MaxResultLimit
	}

	cfg.Explain = input.Explain
	cfg.Detail = input.Detail

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output mode '%s'. must be text, csv, json, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	cfg.Precision = input.Precision
	if cfg.Precision < 1 {
		cfg.Precision = DefaultPrecision
	}
	if cfg.Precision > MaxPrecision {
		cfg.Precision = MaxPrecision
	}

	cfg.Width = input.Width

	if input.Color != "" {
		useColors, err := ParseBoolString(input.Color)
		if err != nil {
			return fmt.Errorf("invalid color value: %w", err)
		}
		cfg.UseColors = useColors
	} else {
		cfg.UseColors = true
	}

	cfg.SessionKey = strings.TrimSpace(input.Session)
	if cfg.SessionKey == "" {
		cfg.SessionKey = DefaultSessionKey
	}

	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}

	cfg.SummaryTopN = input.SummaryTopN
	cfg.BestK = input.BestK

	return nil
}

// processPositionFilter validates the board position filter.
func processPositionFilter(cfg *Config, input *ConfigRawInput) error {
	raw := strings.ToUpper(strings.TrimSpace(input.Pos))
	if raw == "" || raw == string(schema.AllPositionsFilter) {
		cfg.Pos = schema.AllPositionsFilter
		return nil
	}
	pos := schema.Position(raw)
	if _, ok := schema.ValidPositions[pos]; !ok {
		return fmt.Errorf("invalid position filter '%s'. must be QB, RB, WR, TE or ALL", input.Pos)
	}
	cfg.Pos = pos
	return nil
}

// validateBackendConfigs validates session and archive store backends.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	cfg.StoreBackend = schema.StoreBackend(strings.ToLower(input.StoreBackend))
	if cfg.StoreBackend == "" {
		cfg.StoreBackend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidStoreBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackend)
	}
	cfg.StoreDBConnect = input.StoreDBConnect
	if err := ValidateStoreConnectionString(cfg.StoreBackend, cfg.StoreDBConnect); err != nil {
		return err
	}

	cfg.ArchiveBackend = schema.StoreBackend(strings.ToLower(input.ArchiveBackend))
	if cfg.ArchiveBackend != "" {
		if _, ok := schema.ValidStoreBackends[cfg.ArchiveBackend]; !ok {
			return fmt.Errorf("invalid archive backend '%s'. must be sqlite, mysql, postgresql, none", input.ArchiveBackend)
		}
		cfg.ArchiveDBConnect = input.ArchiveDBConnect
		if err := ValidateStoreConnectionString(cfg.ArchiveBackend, cfg.ArchiveDBConnect); err != nil {
			return err
		}
	}

	return nil
}

// ValidateStoreConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateStoreConnectionString(backend schema.StoreBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// ClampLeague clamps a league configuration to its documented bounds.
func ClampLeague(league schema.LeagueConfig) schema.LeagueConfig {
	if league.Teams < MinTeams {
		league.Teams = MinTeams
	}
	if league.Teams > MaxTeams {
		league.Teams = MaxTeams
	}
	if league.Rounds < MinRounds {
		league.Rounds = MinRounds
	}
	if league.Rounds > MaxRounds {
		league.Rounds = MaxRounds
	}
	if league.MySlot < 1 {
		league.MySlot = 1
	}
	if league.MySlot > league.Teams {
		league.MySlot = league.Teams
	}
	return league
}
