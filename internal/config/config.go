package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name      string `envconfig:"APP_NAME" default:"mobility"`
		Port      int    `envconfig:"PORT" default:"8080"`
		LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
		LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	}

	Server struct {
		Timeout       time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		MaxUploadSize int64         `envconfig:"MAX_UPLOAD_SIZE" default:"5242880"`
		CORSOrigins   []string      `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`
	}

	Employees struct {
		URL     string        `envconfig:"EMPLOYEES_API_URL" default:"http://localhost:8000"`
		Secret  string        `envconfig:"EMPLOYEES_API_SECRET"`
		Timeout time.Duration `envconfig:"EMPLOYEES_API_TIMEOUT" default:"10s"`
	}

	// Catalog.Source is one of builtin, file or postgres.
	Catalog struct {
		Source string `envconfig:"CATALOG_SOURCE" default:"builtin"`
		File   string `envconfig:"CATALOG_FILE" default:"catalog.yaml"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"mobility"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
