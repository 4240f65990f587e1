package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
}

type AppConfig struct {
	Env    string `yaml:"env"`
	Port   int    `yaml:"port"`
	Secret string `yaml:"secret"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type AuthConfig struct {
	AccessTokenMinutes int `yaml:"access_token_minutes"`
	RefreshTokenHours  int `yaml:"refresh_token_hours"`
	SessionHours       int `yaml:"session_hours"`
}

func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:    "development",
			Port:   8000,
			Secret: "change-me-in-production",
		},
		Database: DatabaseConfig{
			Path: "./data/cruiseship.db",
		},
		Auth: AuthConfig{
			AccessTokenMinutes: 60,
			RefreshTokenHours:  24,
			SessionHours:       24,
		},
	}

	// Load from YAML if exists
	if data, err := os.ReadFile("config.yaml"); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	// Override with environment variables
	if env := os.Getenv("APP_ENV"); env != "" {
		cfg.App.Env = env
	}
	if port := os.Getenv("APP_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.App.Port = p
		}
	}
	if secret := os.Getenv("APP_SECRET"); secret != "" {
		cfg.App.Secret = secret
	}
	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		cfg.Database.Path = dbPath
	}
	if access := os.Getenv("ACCESS_TOKEN_MINUTES"); access != "" {
		if v, err := strconv.Atoi(access); err == nil {
			cfg.Auth.AccessTokenMinutes = v
		}
	}
	if refresh := os.Getenv("REFRESH_TOKEN_HOURS"); refresh != "" {
		if v, err := strconv.Atoi(refresh); err == nil {
			cfg.Auth.RefreshTokenHours = v
		}
	}
	if session := os.Getenv("SESSION_HOURS"); session != "" {
		if v, err := strconv.Atoi(session); err == nil {
			cfg.Auth.SessionHours = v
		}
	}

	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}
