package config

import (
	"errors"
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// This is the global app config for the land registry.
type AppConfig struct {
	// How many pending transactions trigger block creation.
	BLOCK_THRESHOLD int `yaml:"block_threshold"`
	// Length of the alphanumeric challenge used to authorize a transfer.
	CHALLENGE_LENGTH int `yaml:"challenge_length"`
	// Validator name recorded in the genesis block.
	GENESIS_VALIDATOR string `yaml:"genesis_validator"`
	// Validators taking part in the stake lottery, in lottery order.
	VALIDATORS []ValidatorConfig `yaml:"validators"`
}

type ValidatorConfig struct {
	NAME  string  `yaml:"name"`
	STAKE float64 `yaml:"stake"`
}

// DefaultAppConfig returns the reference setup: blocks of 4 transfers and four validators.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		BLOCK_THRESHOLD:   4,
		CHALLENGE_LENGTH:  16,
		GENESIS_VALIDATOR: "genesis_validator",
		VALIDATORS: []ValidatorConfig{
			{NAME: "validator1", STAKE: 1000},
			{NAME: "validator2", STAKE: 800},
			{NAME: "validator3", STAKE: 1200},
			{NAME: "validator4", STAKE: 1500},
		},
	}
}

// Validate performs basic validation of the config. Stakes are checked when the validator
// registry is built.
func (c AppConfig) Validate() error {
	if c.BLOCK_THRESHOLD < 1 {
		return errors.New("block_threshold must be at least 1")
	}
	if c.CHALLENGE_LENGTH < 1 {
		return errors.New("challenge_length must be at least 1")
	}
	if c.GENESIS_VALIDATOR == "" {
		return errors.New("genesis_validator is empty")
	}
	if len(c.VALIDATORS) == 0 {
		return errors.New("no validators configured")
	}
	return nil
}

// ParseAppConfig reads a yaml config. Keys missing from the file keep their default value.
func ParseAppConfig(path string) (AppConfig, error) {
	yamlFile, err := ioutil.ReadFile(path)
	if err != nil {
		return AppConfig{}, err
	}
	return UnmarshalAppConfig(yamlFile)
}

func UnmarshalAppConfig(data []byte) (AppConfig, error) {
	c := DefaultAppConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return AppConfig{}, err
	}
	if err := c.Validate(); err != nil {
		return AppConfig{}, err
	}
	return c, nil
}
