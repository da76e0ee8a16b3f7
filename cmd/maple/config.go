package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fwojciec/maple"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	keyID             = "id"
	keyName           = "name"
	keyFamily         = "family"
	keyAuthor         = "author"
	keyVersion        = "version"
	keyDescription    = "description"
	keyRepository     = "repository"
	keyPalette        = "palette"
	keyOutputTheme    = "output.theme"
	keyOutputManifest = "output.manifest"
	keyStrict         = "strict"
	keyWorkers        = "workers"
	keyLogLevel       = "log_level"
	keySchemaDir      = "schema.dir"
)

// Config holds the settings shared by all commands.
type Config struct {
	Metadata     maple.Metadata
	Palette      string // YAML palette file; empty uses the built-in schemes
	ThemePath    string
	ManifestPath string
	Strict       bool
	Workers      int
	LogLevel     string
	SchemaDir    string
}

// newViper returns a viper instance with defaults and MAPLE_ environment
// variables. Nested keys map to underscores (output.theme → MAPLE_OUTPUT_THEME).
func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(keyID, "maple-theme")
	v.SetDefault(keyName, "Maple Theme")
	v.SetDefault(keyFamily, "Maple Theme")
	v.SetDefault(keyAuthor, "")
	v.SetDefault(keyVersion, "0.1.0")
	v.SetDefault(keyDescription, "Soft pastel theme for Zed")
	v.SetDefault(keyRepository, "")
	v.SetDefault(keyPalette, "")
	v.SetDefault(keyOutputTheme, "themes/maple.json")
	v.SetDefault(keyOutputManifest, "extension.toml")
	v.SetDefault(keyStrict, false)
	v.SetDefault(keyWorkers, maple.DefaultWorkers)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keySchemaDir, "schema")

	v.SetEnvPrefix("MAPLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// loadConfig reads the config file, if any, and returns the merged settings.
// An explicit path must exist; otherwise maple.yaml in the working directory
// is optional.
func loadConfig(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("maple")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: %w", err)
		}
	}

	cfg := Config{
		Metadata: maple.Metadata{
			ID:          v.GetString(keyID),
			Name:        v.GetString(keyName),
			Family:      v.GetString(keyFamily),
			Version:     v.GetString(keyVersion),
			Description: v.GetString(keyDescription),
			Repository:  v.GetString(keyRepository),
			Author:      v.GetString(keyAuthor),
		},
		Palette:      v.GetString(keyPalette),
		ThemePath:    v.GetString(keyOutputTheme),
		ManifestPath: v.GetString(keyOutputManifest),
		Strict:       v.GetBool(keyStrict),
		Workers:      v.GetInt(keyWorkers),
		LogLevel:     v.GetString(keyLogLevel),
		SchemaDir:    v.GetString(keySchemaDir),
	}
	if cfg.ThemePath == "" || cfg.ManifestPath == "" {
		return Config{}, errors.New("config: output paths must not be empty")
	}
	return cfg, nil
}

// newLogger returns a logger writing to w without timestamps.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	logger := log.New(w)
	logger.SetTimeFormat("")
	logger.SetLevel(lvl)
	return logger, nil
}
