package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	path := writeConfigFile(t, `
loan:
  principal: 50000
  rate: 0.05
  periods: 36
  startDate: "2025-01"
logging:
  level: debug
  format: console
output:
  format: csv
server:
  address: ":9090"
  cache:
    type: redis
    address: "localhost:6379"
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Loan.Principal != 50000 {
		t.Errorf("Loan.Principal = %v, expected 50000", conf.Loan.Principal)
	}
	if conf.Loan.Rate != 0.05 {
		t.Errorf("Loan.Rate = %v, expected 0.05", conf.Loan.Rate)
	}
	if conf.Loan.Periods != 36 {
		t.Errorf("Loan.Periods = %v, expected 36", conf.Loan.Periods)
	}
	if conf.Loan.StartDate != "2025-01" {
		t.Errorf("Loan.StartDate = %v, expected 2025-01", conf.Loan.StartDate)
	}
	if conf.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %v, expected debug", conf.Logging.Level)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("Output.Format = %v, expected csv", conf.Output.Format)
	}
	if conf.Server.Address != ":9090" {
		t.Errorf("Server.Address = %v, expected :9090", conf.Server.Address)
	}
	if conf.Server.Cache.Type != "redis" {
		t.Errorf("Server.Cache.Type = %v, expected redis", conf.Server.Cache.Type)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Error("LoadConfiguration() expected error for missing file")
	}
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name          string
		conf          Configuration
		expectWarning string
	}{
		{
			name:          "Empty configuration",
			conf:          Configuration{},
			expectWarning: "",
		},
		{
			name: "Clean configuration",
			conf: Configuration{
				Loan: LoanConfig{Principal: 50000, Rate: 0.05, Periods: 36, StartDate: "2025-01"},
			},
			expectWarning: "",
		},
		{
			name: "Suspicious rate",
			conf: Configuration{
				Loan: LoanConfig{Principal: 50000, Rate: 0.50, Periods: 36},
			},
			expectWarning: "per period, not annual",
		},
		{
			name: "Bad start date",
			conf: Configuration{
				Loan: LoanConfig{Principal: 50000, Rate: 0.05, Periods: 36, StartDate: "January 2025"},
			},
			expectWarning: "not in YYYY-MM format",
		},
		{
			name: "Unknown cache type",
			conf: Configuration{
				Loan:   LoanConfig{Principal: 50000, Rate: 0.05, Periods: 36},
				Server: ServerConfig{Cache: CacheConfig{Type: "memcached"}},
			},
			expectWarning: "unknown cache type",
		},
		{
			name: "Redis without address",
			conf: Configuration{
				Loan:   LoanConfig{Principal: 50000, Rate: 0.05, Periods: 36},
				Server: ServerConfig{Cache: CacheConfig{Type: "redis"}},
			},
			expectWarning: "no cache address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.conf.ValidateConfiguration()
			if tt.expectWarning == "" {
				if len(warnings) != 0 {
					t.Errorf("ValidateConfiguration() = %v, expected no warnings", warnings)
				}
				return
			}
			found := false
			for _, w := range warnings {
				if strings.Contains(w, tt.expectWarning) {
					found = true
				}
			}
			if !found {
				t.Errorf("ValidateConfiguration() = %v, expected warning containing %q", warnings, tt.expectWarning)
			}
		})
	}
}
