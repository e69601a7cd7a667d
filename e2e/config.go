package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_ENABLED runs the scenarios, they need a host with a multicast route
	Enabled      bool   `envconfig:"E2E_ENABLED" default:"false"`
	GroupAddress string `envconfig:"E2E_GROUP_ADDRESS" default:"239.255.19.65"`
	GroupPort    int    `envconfig:"E2E_GROUP_PORT" default:"19065"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours  bool   `envconfig:"E2E_COLOURS" default:"true"`
	LogLevel string `envconfig:"E2E_LOG_LEVEL" default:"DEBUG"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
