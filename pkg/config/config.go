package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	AppEnv   string `envconfig:"APP_ENV" default:"dev"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// InventoryFile is resolved relative to the working directory when not
	// absolute, matching where the backing file has always lived.
	InventoryFile string `envconfig:"INVENTORY_FILE" default:"inventory.txt"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
