package config

import (
	"github.com/multiversx/mx-chain-core-go/core"
	"github.com/pkg/errors"
)

// LoadMainConfig returns a Config by reading the config file provided
func LoadMainConfig(filepath string) (*Config, error) {
	cfg := &Config{}
	err := core.LoadTomlFile(cfg, filepath)
	if err != nil {
		return nil, errors.Wrap(err, "cannot load main config file "+filepath)
	}

	return cfg, nil
}

// LoadApiConfig returns an ApiRoutesConfig by reading the config file provided
func LoadApiConfig(filepath string) (*ApiRoutesConfig, error) {
	cfg := &ApiRoutesConfig{}
	err := core.LoadTomlFile(cfg, filepath)
	if err != nil {
		return nil, errors.Wrap(err, "cannot load api routes config file "+filepath)
	}

	return cfg, nil
}
