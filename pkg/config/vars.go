package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths, log file names
	// and the default application_name of database sessions.
	AppName = "pgkeeper"

	// EnvPrefix is the prefix of environment variables that override
	// config.yaml values.
	EnvPrefix = "PGKEEPER"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/pgkeeper by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the default directory path for log files.
// Returns ~/.local/share/pgkeeper/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/pgkeeper/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// LocalConfigFiles are looked up in the working directory before the
// config file in ConfigDir.
var LocalConfigFiles = []string{"config.yml", "config.yaml"}
