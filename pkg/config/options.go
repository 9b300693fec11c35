package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptImportSnapshotDir sets the root directory of the snapshot layout.
func OptImportSnapshotDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Snapshot Dir", s) {
			c.Import.SnapshotDir = s
		}
	}
}

// OptImportEntities sets per-entity input directory overrides.
func OptImportEntities(m map[string]EntityConfig) Option {
	return func(c *Config) {
		if len(m) > 0 {
			c.Import.Entities = m
		}
	}
}

// OptImportBatchSize sets the buffer flush threshold in rows.
func OptImportBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Batch Size", i) {
			c.Import.BatchSize = i
		}
	}
}

// OptImportProgressInterval sets the number of records between progress
// reports.
func OptImportProgressInterval(i int) Option {
	return func(c *Config) {
		if isValidInt("Progress Interval", i) {
			c.Import.ProgressInterval = i
		}
	}
}

// OptImportParallelParsers caps the concurrent parsers of the
// reference phase.
func OptImportParallelParsers(i int) Option {
	return func(c *Config) {
		if isValidInt("Parallel Parsers", i) {
			c.Import.ParallelParsers = i
		}
	}
}

// OptImportUseUnloggedTables records the advisory unlogged-tables hint.
func OptImportUseUnloggedTables(b bool) Option {
	return func(c *Config) {
		c.Import.UseUnloggedTables = b
	}
}

// OptImportWithAuthors enables the optional authors-snapshot parser.
func OptImportWithAuthors(b bool) Option {
	return func(c *Config) {
		c.Import.WithAuthors = b
	}
}

// OptImportStateFile sets the path of the persistent progress document.
func OptImportStateFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("State File", s) {
			c.Import.StateFile = s
		}
	}
}

// OptImportLogDir sets the root for orchestrator and error logs.
func OptImportLogDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Log Dir", s) {
			c.Import.LogDir = s
		}
	}
}

// OptImportLimit caps the number of records read per input file.
// Runtime-only field - not in ToOptions().
func OptImportLimit(i int) Option {
	return func(c *Config) {
		if i > 0 {
			c.Import.Limit = i
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config, state, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
