package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/83years/oadb/internal/iofs"
	"github.com/83years/oadb/internal/iologger"
	"github.com/83years/oadb/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Exit codes of the CLI contract: 0 success, 2 partial (one or more
// parsers failed), 64 usage error, 70 internal error.
const (
	exitOK       = 0
	exitPartial  = 2
	exitUsage    = 64
	exitInternal = 70
)

// exitError carries a process exit code through cobra.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

var (
	homeDir string
	cfg     *config.Config
)

func run() int {
	rootCmd := getRootCmd()
	if err := rootCmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		// anything cobra itself rejects (unknown command, bad flag)
		// is a usage error
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}
	return exitOK
}

// getRootCmd creates and returns the root command.
// Extracted as a function to facilitate testing.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", Version, Build),
		Use:     "oadb",
		Short:   "oadb loads the OpenAlex snapshot into PostgreSQL",
		Long: `oadb is a command-line tool that materialises the OpenAlex bulk
snapshot into a relational PostgreSQL database optimised for bulk load.

The tool supports the following functionalities:

- Schema Management: create the constraint-free load schema.
- Snapshot Ingestion: stream the gzip JSON-lines part files of every
  entity type into their target tables via COPY.
- Resumable Progress: per-parser state survives interruptions; resume
  continues at the last completed file.

Configuration is managed through an oadb.yaml file, environment
variables (with OADB_ prefix), and command-line flags.

For more information, see the project's README file.`,
		PersistentPreRunE: bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "oadb version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.Flags().BoolP("version", "V", false, "version for oadb")

	rootCmd.AddCommand(
		getCreateCmd(),
		getStartCmd(),
		getResumeCmd(),
		getStatusCmd(),
		getResetCmd(),
		getTestCmd(),
	)

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error

	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults ASAP so all
	// subsequent logs are captured. Will be reconfigured later
	// with user's config settings.
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}

	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Bootstrap process started")

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		slog.Error("Failed to ensure config file", "error", err)
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	cfg.Update(cfgViper.ToOptions())
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings in the configured log
	// directory, appending so the bootstrap entries are preserved.
	logDir := cfg.ResolvedLogDir()
	if err = os.MkdirAll(logDir, 0755); err != nil {
		err = iofs.CreateDirError(logDir, err)
		gn.PrintErrorMessage(err)
		return err
	}
	if err = iologger.Init(logDir, cfg.Log, true); err != nil {
		slog.Error("Failed to reconfigure logging", "error", err)
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded successfully",
		"config_file", config.ConfigFilePath(homeDir),
		"log_format", cfg.Log.Format,
		"log_level", cfg.Log.Level,
		"database_host", cfg.Database.Host,
		"database_port", cfg.Database.Port,
		"database_name", cfg.Database.Database,
		"snapshot_dir", cfg.Import.SnapshotDir,
		"batch_size", cfg.Import.BatchSize,
		"parallel_parsers", cfg.Import.ParallelParsers)

	return nil
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)

	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		slog.Error("Failed to read config file",
			"error", err, "config_path", cfgPath)
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		slog.Error("Failed to unmarshal config",
			"error", err, "config_path", cfgPath)
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables
	// are allowed. These match the fields included in
	// config.ToOptions(), i.e. persistent configuration that can be
	// stored in oadb.yaml.

	v.SetEnvPrefix("OADB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Database configuration
	_ = v.BindEnv("database.host", "OADB_DATABASE_HOST")
	_ = v.BindEnv("database.port", "OADB_DATABASE_PORT")
	_ = v.BindEnv("database.user", "OADB_DATABASE_USER")
	_ = v.BindEnv("database.password", "OADB_DATABASE_PASSWORD")
	_ = v.BindEnv("database.database", "OADB_DATABASE_DATABASE")
	_ = v.BindEnv("database.ssl_mode", "OADB_DATABASE_SSL_MODE")

	// Import configuration
	_ = v.BindEnv("import.snapshot_dir", "OADB_IMPORT_SNAPSHOT_DIR")
	_ = v.BindEnv("import.batch_size", "OADB_IMPORT_BATCH_SIZE")
	_ = v.BindEnv("import.progress_interval", "OADB_IMPORT_PROGRESS_INTERVAL")
	_ = v.BindEnv("import.parallel_parsers", "OADB_IMPORT_PARALLEL_PARSERS")
	_ = v.BindEnv("import.use_unlogged_tables", "OADB_IMPORT_USE_UNLOGGED_TABLES")
	_ = v.BindEnv("import.with_authors", "OADB_IMPORT_WITH_AUTHORS")
	_ = v.BindEnv("import.state_file", "OADB_IMPORT_STATE_FILE")
	_ = v.BindEnv("import.log_dir", "OADB_IMPORT_LOG_DIR")

	// Log configuration
	_ = v.BindEnv("log.level", "OADB_LOG_LEVEL")
	_ = v.BindEnv("log.format", "OADB_LOG_FORMAT")
	_ = v.BindEnv("log.destination", "OADB_LOG_DESTINATION")

	v.AutomaticEnv()
}
