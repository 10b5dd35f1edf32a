// internal/config/config.go
package config

import (
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr               string   `env:"ADDR" envDefault:":8080"`
	DatabasePath       string   `env:"DATABASE_PATH" envDefault:"data/data.db"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// RandSeed seeds the send simulation. Zero means seed from the
	// current time; tests set it for reproducible outcomes.
	RandSeed int64 `env:"RAND_SEED" envDefault:"0"`
}

// Load reads .env if present, then parses the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
