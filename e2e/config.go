package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// ServerAddr points at a running crafty server, e.g. http://localhost:3000.
	// The suite skips entirely when it is empty.
	ServerAddr string `envconfig:"CRAFTY_SERVER_ADDR"`

	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
