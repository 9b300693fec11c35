package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "oadb"

	// IDPrefix is the canonical URL prefix of OpenAlex identifiers.
	// All opaque identifiers in the snapshot appear as full URLs with
	// this host prefix; the engine strips it once at extraction.
	IDPrefix = "https://openalex.org/"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/oadb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// ShareDir returns the directory path for persistent application data.
// Returns ~/.local/share/oadb by default.
func ShareDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/oadb/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(ShareDir(homeDir), "logs")
}

// ConfigFilePath returns the full path to the oadb.yaml file.
// Returns ~/.config/oadb/oadb.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "oadb.yaml")
}

// StateFilePath returns the default path of the progress document.
// Returns ~/.local/share/oadb/state.json by default.
func StateFilePath(homeDir string) string {
	return filepath.Join(ShareDir(homeDir), "state.json")
}

// ResolvedStateFile returns the configured state file, or the default
// derived from HomeDir when unset.
func (c *Config) ResolvedStateFile() string {
	if c.Import.StateFile != "" {
		return c.Import.StateFile
	}
	return StateFilePath(c.HomeDir)
}

// ResolvedLogDir returns the configured log directory, or the default
// derived from HomeDir when unset.
func (c *Config) ResolvedLogDir() string {
	if c.Import.LogDir != "" {
		return c.Import.LogDir
	}
	return LogDir(c.HomeDir)
}
