package config

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/AlenaMolokova/checks/internal/constants"
)

type Config struct {
	RunAddr              string `env:"RUN_ADDRESS"`
	DatabaseURI          string `env:"DATABASE_URI"`
	BaseURL              string `env:"BASE_URL"`
	JWTSecret            string `env:"JWT_SECRET"`
	MigrationsDir        string `env:"MIGRATIONS_DIR"`
	AccessExpiryMinutes  int    `env:"ACCESS_TOKEN_EXPIRY_MINUTES"`
	RefreshExpiryMinutes int    `env:"REFRESH_TOKEN_EXPIRY_MINUTES"`
}

func (c *Config) AccessExpiry() time.Duration {
	return time.Duration(c.AccessExpiryMinutes) * time.Minute
}

func (c *Config) RefreshExpiry() time.Duration {
	return time.Duration(c.RefreshExpiryMinutes) * time.Minute
}

func NewConfig() (*Config, error) {
	cfg := &Config{
		RunAddr:              ":8080",
		BaseURL:              "http://localhost:8080",
		JWTSecret:            constants.DefaultJWTSecret,
		MigrationsDir:        "migrations",
		AccessExpiryMinutes:  constants.DefaultAccessExpiryMinutes,
		RefreshExpiryMinutes: constants.DefaultRefreshExpiryMinutes,
	}

	flag.StringVar(&cfg.RunAddr, "a", cfg.RunAddr, "server address")
	flag.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "database URI")
	flag.StringVar(&cfg.BaseURL, "b", cfg.BaseURL, "public base URL for check links")
	flag.StringVar(&cfg.JWTSecret, "j", cfg.JWTSecret, "JWT secret")
	flag.StringVar(&cfg.MigrationsDir, "m", cfg.MigrationsDir, "migrations directory")
	flag.Parse()

	// Environment overrides flags, same precedence as before.
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if cfg.DatabaseURI == "" {
		log.Printf("Error: DATABASE_URI is empty")
		return nil, errors.New("DATABASE_URI is required")
	}
	if cfg.AccessExpiryMinutes <= 0 || cfg.RefreshExpiryMinutes <= 0 {
		return nil, errors.New("token expiry minutes must be positive")
	}

	log.Printf("Config loaded: RunAddr=%s, BaseURL=%s, AccessExpiry=%dm, RefreshExpiry=%dm",
		cfg.RunAddr, cfg.BaseURL, cfg.AccessExpiryMinutes, cfg.RefreshExpiryMinutes)
	return cfg, nil
}
