// Package ioconfig provides I/O operations for loading configuration from
// files and environment variables.
// This is an impure package that handles file system operations.
package ioconfig

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/pgkeeper/pkg/config"
	"github.com/spf13/viper"
)

// LoadResult contains the loaded configuration and metadata about the source.
type LoadResult struct {
	Config *config.Config
	// SourcePath is the config file used, empty if none was found.
	SourcePath string
}

// FindConfigFile returns the config file to read. An explicit configPath
// must exist. Otherwise config.yml or config.yaml in workDir is used,
// then the config file in the user's config directory. Empty string
// means no file was found.
func FindConfigFile(configPath, workDir, homeDir string) (string, error) {
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return "", NotFoundError(configPath, err)
		}
		return configPath, nil
	}

	candidates := make([]string, 0, len(config.LocalConfigFiles)+1)
	for _, v := range config.LocalConfigFiles {
		candidates = append(candidates, filepath.Join(workDir, v))
	}
	candidates = append(candidates, config.ConfigFilePath(homeDir))

	for _, v := range candidates {
		if info, err := os.Stat(v); err == nil && !info.IsDir() {
			return v, nil
		}
	}
	return "", nil
}

// Load reads configuration from a YAML file and environment variables
// and returns a validated Config.
// Precedence: env vars > config file > defaults.
func Load(configPath, workDir, homeDir string) (*LoadResult, error) {
	path, err := FindConfigFile(configPath, workDir, homeDir)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	initEnvVars(v)

	if path != "" {
		v.SetConfigFile(path)
		if err = v.ReadInConfig(); err != nil {
			return nil, ParseError(path, err)
		}
	}

	var raw config.Config
	if err = v.Unmarshal(&raw); err != nil {
		return nil, ParseError(path, err)
	}

	if err = checkSchemas(raw.ExcludedSchemas); err != nil {
		return nil, err
	}

	cfg := config.New()
	cfg.Update(raw.ToOptions())
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return &LoadResult{Config: cfg, SourcePath: path}, nil
}

// setDefaults registers default values, so keys missing in the file do
// not unmarshal to zero values. excluded_schemas is left out: a missing
// key and an explicit empty list mean different things.
func setDefaults(v *viper.Viper) {
	d := config.New()
	v.SetDefault("vacuum", d.Vacuum)
	v.SetDefault("reindex", d.Reindex)
	v.SetDefault("refresh_matviews", d.RefreshMatviews)
	v.SetDefault("filter_matviews", d.FilterMatviews)
	v.SetDefault("pool.max_conns", d.Pool.MaxConns)
	v.SetDefault("pool.application_name", d.Pool.ApplicationName)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.destination", d.Log.Destination)
	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.trace_sql", d.Log.TraceSQL)
}

// initEnvVars binds environment variables explicitly, so it is clear which
// ones are allowed. They match the fields of config.ToOptions().
// PGKEEPER_LOG_LEVEL overrides log.level and so on.
func initEnvVars(v *viper.Viper) {
	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	keys := []string{
		"database",
		"excluded_schemas",
		"log_dir",
		"vacuum",
		"reindex",
		"refresh_matviews",
		"filter_matviews",
		"pool.max_conns",
		"pool.application_name",
		"log.format",
		"log.level",
		"log.destination",
		"log.max_size_mb",
		"log.trace_sql",
	}
	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

func checkSchemas(schemas []string) error {
	for _, v := range schemas {
		if strings.TrimSpace(v) == "" {
			return InvalidValueError(
				"excluded_schemas",
				errors.New("schema name cannot be blank"),
			)
		}
	}
	return nil
}
