package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

type Config struct {
	Port           string        `env:"APP_PORT,default=8080"`
	DatabaseURL    string        `env:"DATABASE_URL,required"`
	JWTSecret      string        `env:"JWT_SECRET,required"`
	TokenTTL       time.Duration `env:"JWT_TTL,default=24h"`
	LogLevel       string        `env:"LOG_LEVEL,default=info"`
	LogFormat      string        `env:"LOG_FORMAT,default=text"`
	MigrateOnStart bool          `env:"MIGRATE_ON_START,default=true"`
	LoginRate      float64       `env:"LOGIN_RATE_PER_SEC,default=1"`
	LoginBurst     int           `env:"LOGIN_BURST,default=5"`

	SeedAdmin SeedAdmin
}

// SeedAdmin describes the bootstrap administrator created by cmd/seed.
type SeedAdmin struct {
	Username string `env:"SEED_ADMIN_USERNAME"`
	Email    string `env:"SEED_ADMIN_EMAIL"`
	Password string `env:"SEED_ADMIN_PASSWORD"`
}

// Load reads an optional .env file, then decodes the environment.
// Variables already set in the process environment take precedence.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
