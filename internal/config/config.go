// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"time"

	"github.com/iwvelando/loan-engine/pkg/constants"
	"github.com/iwvelando/loan-engine/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for loan-engine.
type Configuration struct {
	Loan    LoanConfig    `yaml:"loan,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Server  ServerConfig  `yaml:"server,omitempty"`
}

// LoanConfig holds default loan terms used when the CLI flags do not specify
// them. Rate is periodic, not annual.
type LoanConfig struct {
	Principal float64 `yaml:"principal,omitempty"`
	Rate      float64 `yaml:"rate,omitempty"`
	Periods   int     `yaml:"periods,omitempty"`
	StartDate string  `yaml:"startDate,omitempty"` // YYYY-MM, labels schedule rows
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// ServerConfig holds the HTTP API configuration.
type ServerConfig struct {
	Address string      `yaml:"address,omitempty"`
	Cache   CacheConfig `yaml:"cache,omitempty"`
}

// CacheConfig selects the schedule cache backend.
type CacheConfig struct {
	Type    string `yaml:"type,omitempty"`    // memory, redis
	Address string `yaml:"address,omitempty"` // redis only
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration checks for suspicious-but-legal settings and returns
// warnings for them. Hard errors are raised by the engine at computation time.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	// An absent loan section is fine; terms then come entirely from flags.
	if conf.Loan != (LoanConfig{}) {
		warnings = validation.ValidateLoanTerms(conf.Loan.Principal, conf.Loan.Rate, conf.Loan.Periods)
	}

	if conf.Loan.StartDate != "" {
		if _, err := time.Parse(constants.DateTimeLayout, conf.Loan.StartDate); err != nil {
			warnings = append(warnings, fmt.Sprintf(
				"loan start date %q is not in YYYY-MM format and will be ignored", conf.Loan.StartDate))
		}
	}

	switch conf.Server.Cache.Type {
	case "", "memory", "redis":
	default:
		warnings = append(warnings, fmt.Sprintf(
			"unknown cache type %q; falling back to %s", conf.Server.Cache.Type, constants.DefaultCacheType))
	}
	if conf.Server.Cache.Type == "redis" && conf.Server.Cache.Address == "" {
		warnings = append(warnings, "cache type is redis but no cache address is configured")
	}

	return warnings
}
