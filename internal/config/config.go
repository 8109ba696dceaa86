package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppEnv   string `mapstructure:"APP_ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	HTTPPort        string        `mapstructure:"HTTP_PORT"`
	RequestTimeout  time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`

	DBHost        string `mapstructure:"POSTGRES_HOST"`
	DBPort        int    `mapstructure:"POSTGRES_PORT"`
	DBUser        string `mapstructure:"POSTGRES_USER"`
	DBPassword    string `mapstructure:"POSTGRES_PASSWORD"`
	DBName        string `mapstructure:"POSTGRES_DB"`
	DBSSLMode     string `mapstructure:"POSTGRES_SSLMODE"`
	MigrationsDir string `mapstructure:"MIGRATIONS_DIR"`

	TokenSigningKey string `mapstructure:"TOKEN_SIGNING_KEY"`
}

// Load reads configuration from an optional .env file and the environment;
// environment variables win.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("APP_ENV", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("REQUEST_TIMEOUT", 30*time.Second)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", 5432)
	v.SetDefault("POSTGRES_SSLMODE", "disable")
	v.SetDefault("MIGRATIONS_DIR", "./migrations")

	v.SetConfigFile(fmt.Sprintf("%s/.env", path))
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Running without a .env file is fine; everything can come from env.
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.TokenSigningKey == "" {
		return nil, fmt.Errorf("TOKEN_SIGNING_KEY must be set")
	}

	return &cfg, nil
}
