package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for the staffing API and the ingest tool.
// Values come from an optional YAML file plus environment variables;
// environment variables always win. The database password is env-only.
type Config struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
}

type AppConfig struct {
	Name        string `yaml:"name" env:"APP_NAME" env-default:"staff-planner"`
	Environment string `yaml:"environment" env:"APP_ENV" env-default:"local"`
	HTTPPort    string `yaml:"http_port" env:"HTTP_PORT" env-default:"8080"`
}

type DatabaseConfig struct {
	Host           string        `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port           string        `yaml:"port" env:"DB_PORT" env-default:"5432"`
	Name           string        `yaml:"name" env:"DB_NAME" env-default:"staffing"`
	User           string        `yaml:"user" env:"DB_USER" env-default:"staffing"`
	Password       string        `yaml:"-" env:"DB_PASSWORD"`
	SSLMode        string        `yaml:"ssl_mode" env:"DB_SSL_MODE" env-default:"disable"`
	PoolMaxConns   int32         `yaml:"pool_max_conns" env:"DB_POOL_MAX_CONNS" env-default:"10"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"DB_CONNECT_TIMEOUT" env-default:"5s"`
}

// Load reads configuration from path (when the file exists) and the
// environment. An empty path skips the file entirely.
func Load(path string) (Config, error) {
	var cfg Config

	if path != "" {
		err := cleanenv.ReadConfig(path, &cfg)
		if err == nil {
			return cfg, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
