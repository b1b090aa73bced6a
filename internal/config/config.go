// Package config loads and validates the service configuration.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Wiktionary WiktionaryConfig `mapstructure:"wiktionary"`
	Translator TranslatorConfig `mapstructure:"translator"`
	Cache      CacheConfig      `mapstructure:"cache"`
	History    HistoryConfig    `mapstructure:"history"`
	Outputs    OutputsConfig    `mapstructure:"outputs"`
	// Workers is the size of the shared pool for translation calls.
	Workers int `mapstructure:"workers" validate:"gte=1,lte=16"`
}

type ServerConfig struct {
	Address       string `mapstructure:"address" validate:"required"`
	AllowedOrigin string `mapstructure:"allowed_origin" validate:"required"`
}

type WiktionaryConfig struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"gte=1,lte=30"`
}

type TranslatorConfig struct {
	Endpoint       string `mapstructure:"endpoint" validate:"required,url"`
	Email          string `mapstructure:"email" validate:"omitempty,email"`
	Sentinel       string `mapstructure:"sentinel" validate:"required"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=1,lte=60"`
}

type CacheConfig struct {
	TTLSeconds int `mapstructure:"ttl_seconds" validate:"gte=1"`
	MaxEntries int `mapstructure:"max_entries" validate:"gte=1"`
}

type HistoryConfig struct {
	DatabasePath string `mapstructure:"database_path" validate:"required"`
}

type OutputsConfig struct {
	SheetDirectory string `mapstructure:"sheet_directory"`
}

// Load reads the configuration file, applies defaults and environment
// bindings, and validates the result. An empty configFile falls back
// to the default search paths.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/polydict")
	}

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.allowed_origin", "http://localhost:3000")
	v.SetDefault("wiktionary.timeout_seconds", 3)
	v.SetDefault("translator.endpoint", "https://api.mymemory.translated.net/get")
	v.SetDefault("translator.sentinel", "Non trouvé")
	v.SetDefault("translator.timeout_seconds", 10)
	v.SetDefault("cache.ttl_seconds", 3600)
	v.SetDefault("cache.max_entries", 1000)
	v.SetDefault("history.database_path", "search_history.db")
	v.SetDefault("outputs.sheet_directory", filepath.Join("outputs", "sheets"))
	v.SetDefault("workers", 4)

	// The contact email raises the translation API quota; it is bound
	// to the environment only, never read from the config file.
	if err := v.BindEnv("translator.email", "MYMEMORY_EMAIL"); err != nil {
		return nil, fmt.Errorf("failed to bind MYMEMORY_EMAIL environment variable: %w", err)
	}
	if err := v.BindEnv("history.database_path", "POLYDICT_HISTORY_DB"); err != nil {
		return nil, fmt.Errorf("failed to bind POLYDICT_HISTORY_DB environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("cfg.Validate() > %w", err)
	}

	return &cfg, nil
}
