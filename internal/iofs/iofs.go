// Package iofs prepares the filesystem layout oadb relies on:
// configuration, state and log directories, plus the default config
// file generated on first run.
package iofs

import (
	"os"
	"path/filepath"

	"github.com/83years/oadb/pkg/config"
	"gopkg.in/yaml.v3"
)

const configHeader = `# oadb configuration file.
# This file was auto-generated. Edit as needed.
#
# Configuration precedence (highest to lowest):
#   1. CLI flags
#   2. Environment variables (OADB_*)
#   3. This config file
#   4. Built-in defaults
#
# For all settings, see: go doc github.com/83years/oadb/pkg/config

`

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.ShareDir(homeDir),
		config.LogDir(homeDir),
		filepath.Join(config.LogDir(homeDir), "errors"),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the default oadb.yaml on first run. An
// existing file is never overwritten.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	data, err := yaml.Marshal(config.New())
	if err != nil {
		return WriteFileError(configPath, err)
	}

	content := append([]byte(configHeader), data...)
	if err := os.WriteFile(configPath, content, 0644); err != nil {
		return WriteFileError(configPath, err)
	}

	return nil
}

// ValidateConfigFile reads a config file back and checks it is
// well-formed YAML for the Config shape.
func ValidateConfigFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return ReadFileError(path, err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ReadFileError(path, err)
	}

	return nil
}
