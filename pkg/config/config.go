// Package config provides configuration management for oadb.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > oadb.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in oadb.yaml)
// - Environment variables match ToOptions() fields, except the
//   per-entity directory map (import.entities), which has no env var
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, oadb.yaml, and env vars):
//   - Database: host, port, user, password, database, ssl_mode
//   - Import: snapshot_dir, batch_size, progress_interval, parallel_parsers,
//     use_unlogged_tables, with_authors, state_file, log_dir
//     (plus entities, in ToOptions and oadb.yaml only)
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Import.Limit (per-file record cap for test runs)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use OADB_ prefix with underscores for nesting:
//
//	OADB_DATABASE_HOST=localhost
//	OADB_DATABASE_PORT=5432
//	OADB_IMPORT_SNAPSHOT_DIR=/data/openalex-snapshot/data
//	OADB_LOG_LEVEL=info
package config

// Config represents the complete oadb configuration.
type Config struct {
	// Database contains PostgreSQL connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Import contains settings for the snapshot ingestion engine.
	Import ImportConfig `mapstructure:"import" yaml:"import"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config, state and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`
}

// ImportConfig contains settings for the snapshot ingestion engine.
type ImportConfig struct {
	// SnapshotDir is the root of the uncompressed snapshot layout. Each
	// entity lives in <SnapshotDir>/<entity>/updated_date=*/part_*.gz.
	SnapshotDir string `mapstructure:"snapshot_dir" yaml:"snapshot_dir"`

	// Entities optionally overrides the input directory per entity type.
	// An entity without an override uses <SnapshotDir>/<entity>.
	Entities map[string]EntityConfig `mapstructure:"entities" yaml:"entities"`

	// BatchSize is the row count at which a table buffer is flushed to
	// the database in a single COPY. Larger batches are faster but use
	// more memory.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`

	// ProgressInterval is the number of records between progress reports.
	ProgressInterval int `mapstructure:"progress_interval" yaml:"progress_interval"`

	// ParallelParsers caps how many parsers of the reference phase run
	// concurrently, each on its own database connection.
	ParallelParsers int `mapstructure:"parallel_parsers" yaml:"parallel_parsers"`

	// UseUnloggedTables signals that the target tables are UNLOGGED for
	// faster load. The `create` command creates the tables UNLOGGED when
	// it is set; the ingestion engine does not change behavior, the flag
	// is recorded in logs for operators.
	UseUnloggedTables bool `mapstructure:"use_unlogged_tables" yaml:"use_unlogged_tables"`

	// WithAuthors enables the optional authors-snapshot parser. The
	// works-derived author_names extraction runs regardless.
	WithAuthors bool `mapstructure:"with_authors" yaml:"with_authors"`

	// StateFile is the path of the persistent progress document.
	// Empty means <share dir>/state.json.
	StateFile string `mapstructure:"state_file" yaml:"state_file"`

	// LogDir is the root for the orchestrator log and per-parser error
	// logs. Empty means the default share location.
	LogDir string `mapstructure:"log_dir" yaml:"log_dir"`

	// Limit caps the number of records read per input file. Zero means
	// no cap. Runtime-only, used for test loads.
	Limit int
}

// EntityConfig overrides input settings for one entity type.
type EntityConfig struct {
	// Directory is the input directory holding updated_date=*/part_*.gz
	// files for the entity.
	Directory string `mapstructure:"directory" yaml:"directory"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: "openalex",
			SSLMode:  "disable",
		},
		Import: ImportConfig{
			BatchSize:        50_000,
			ProgressInterval: 100_000,
			ParallelParsers:  4,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}

// EntityDir returns the input directory for an entity type, honoring
// per-entity overrides and falling back to <SnapshotDir>/<entity>.
func (c *Config) EntityDir(entity string) string {
	if e, ok := c.Import.Entities[entity]; ok && e.Directory != "" {
		return e.Directory
	}
	if c.Import.SnapshotDir == "" {
		return ""
	}
	return c.Import.SnapshotDir + "/" + entity
}
