package config

import "github.com/kelseyhightower/envconfig"

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port          int    `envconfig:"PORT" default:"8080"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	DatasetPath   string `envconfig:"DATASET_PATH" default:"Dataset/2024dataset_2countries_3tiresizes.csv"`
	SchemaPath    string `envconfig:"SCHEMA_PATH" default:""`
	DatabaseURL   string `envconfig:"DATABASE_URL" default:""`
	StrictDataset bool   `envconfig:"STRICT_DATASET" default:"false"`
	Version       string `envconfig:"VERSION" default:"dev"`
}

// Load reads configuration from environment variables into a Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
