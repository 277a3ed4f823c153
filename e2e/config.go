package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_LABEL overrides the label of the roster created for each scenario
	Label string `envconfig:"E2E_LABEL" default:"e2e"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// E2E_DEBUG_OUTPUT dumps the full console transcript of every step
	DebugOutput bool `envconfig:"E2E_DEBUG_OUTPUT" default:"false"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
