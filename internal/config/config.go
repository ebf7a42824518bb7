// Package config loads application configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = ".env"

// Config holds the runtime configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Session  SessionConfig  `mapstructure:"session"`
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig contains the storage connection string.
type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

// SessionConfig contains cookie session options.
type SessionConfig struct {
	Lifetime time.Duration `mapstructure:"lifetime"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Database.DSN == "" {
		return errors.New("database.dsn is required (DATABASE_DSN)")
	}
	if c.Server.Addr == "" {
		return errors.New("server.addr is required")
	}
	return nil
}

// Load reads configuration from the environment, with an optional .env file
// supplying values that are not already set.
func Load() (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(envFile); err == nil {
		for key, val := range envMap {
			if _, exists := os.LookupEnv(key); !exists {
				_ = os.Setenv(key, val)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("session.lifetime", 12*time.Hour)
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"server.addr",
		"server.shutdown_timeout",
		"database.dsn",
		"session.lifetime",
	}
	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}
