package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port       int           `env:"PORT" envDefault:"8000"`
	DBDriver   string        `env:"DB_DRIVER" envDefault:"sqlite"`
	DSN        string        `env:"DSN" envDefault:"notenext.db"`
	JWTSecret  string        `env:"JWT_SECRET,required,notEmpty"`
	TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`
}

// Load reads envFile into the environment when it exists and then parses the
// environment. Variables already set win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("load %s: %w", envFile, err)
			}
			log.Printf("No %s file, using environment only", envFile)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DBDriver != "mysql" && cfg.DBDriver != "sqlite" {
		return Config{}, fmt.Errorf("DB_DRIVER must be mysql or sqlite, got %q", cfg.DBDriver)
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
