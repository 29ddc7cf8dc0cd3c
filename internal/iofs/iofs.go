// Package iofs prepares the files pgkeeper reads and writes outside of
// the database: its config directory, the default log directory and a
// documented config.yaml.
package iofs

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"

	"github.com/gnames/pgkeeper/pkg/config"
)

// ConfigYAML is a documented config file with default values.
//
//go:embed config.yaml
var ConfigYAML string

// EnsureDirs creates the config directory and the default log directory
// under homeDir.
func EnsureDirs(homeDir string) error {
	for _, dir := range []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	} {
		if err := ensureDir(dir); err != nil {
			return err
		}
	}
	return nil
}

// ensureDir creates dir with parents. A file in its place is an error.
func ensureDir(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return CreateDirError(dir, errors.New("a file exists at this path"))
	}

	if err = os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}
	return nil
}

// HasLocalConfig reports whether workDir holds config.yml or config.yaml.
func HasLocalConfig(workDir string) bool {
	for _, v := range config.LocalConfigFiles {
		info, err := os.Stat(filepath.Join(workDir, v))
		if err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}

// EnsureConfigFile writes ConfigYAML to the user's config directory,
// unless a local config in workDir or an existing file there makes it
// unnecessary. It returns the path of the written file, or an empty
// string when nothing was written.
func EnsureConfigFile(homeDir, workDir string) (string, error) {
	if HasLocalConfig(workDir) {
		return "", nil
	}

	configPath := config.ConfigFilePath(homeDir)
	if _, err := os.Stat(configPath); err == nil {
		return "", nil
	}

	err := os.WriteFile(configPath, []byte(ConfigYAML), 0644)
	if err != nil {
		return "", WriteConfigError(configPath, err)
	}
	return configPath, nil
}
