// Package config maps OS environment variables into a typed struct,
// with defaults and early validation.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration for the API server.
type Config struct {
	Port         string `env:"PORT"          envDefault:"8080"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"artpieces.db"`

	// JWTSecret signs the session tokens issued by login.
	JWTSecret string `env:"JWT_SECRET,required"`

	// AppCode authenticates requests to the internal image service.
	AppCode         string `env:"APP_CODE,required"`
	ImageServiceURL string `env:"IMAGE_SERVICE_URL" envDefault:"http://127.0.0.1:4001"`

	// CompressedBaseURL is the public prefix under which the image
	// service exposes compressed variants of uploaded originals.
	CompressedBaseURL string `env:"COMPRESSED_BASE_URL" envDefault:"https://artpieces.cn/img/compressed"`

	FeedPageSize int `env:"FEED_PAGE_SIZE" envDefault:"6"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.FeedPageSize < 1 {
		return nil, fmt.Errorf("FEED_PAGE_SIZE must be positive, got %d", cfg.FeedPageSize)
	}
	return cfg, nil
}
