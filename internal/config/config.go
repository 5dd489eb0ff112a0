// Package config provides the YAML scenario suite used by the strmath checker.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Operation names accepted in a scenario's op field.
const (
	OpLTrim = "ltrim"
	OpRTrim = "rtrim"
	OpTrim  = "trim"
	OpAdd   = "add"
)

// Configuration validation errors.
var (
	ErrNoScenarios           = errors.New("suite.scenarios must contain at least one scenario")
	ErrMissingScenarioName   = errors.New("scenario name is required")
	ErrDuplicateScenarioName = errors.New("scenario name must be unique")
	ErrUnknownOperation      = errors.New("scenario op must be one of: ltrim, rtrim, trim, add")
	ErrMissingExpectedSum    = errors.New("add scenario requires expected_sum")
	ErrInvalidLogLevel       = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete checker configuration.
type Config struct {
	Suite   SuiteConfig   `yaml:"suite"`
	Logging LoggingConfig `yaml:"logging"`
}

// SuiteConfig groups the scenarios and how their results are reported.
type SuiteConfig struct {
	Name      string       `yaml:"name"`
	Scenarios []Scenario   `yaml:"scenarios"`
	Report    ReportConfig `yaml:"report"`
	FailFast  bool         `yaml:"fail_fast"`
}

// Scenario is one literal-input, literal-expectation check.
type Scenario struct {
	Name        string `yaml:"name"`
	Op          string `yaml:"op"`
	Input       string `yaml:"input,omitempty"`
	Expected    string `yaml:"expected,omitempty"`
	A           int32  `yaml:"a,omitempty"`
	B           int32  `yaml:"b,omitempty"`
	ExpectedSum *int32 `yaml:"expected_sum,omitempty"`
}

// IsArithmetic returns true if the scenario exercises the adder.
func (s *Scenario) IsArithmetic() bool {
	return s.Op == OpAdd
}

// ReportConfig defines how results are printed.
type ReportConfig struct {
	ShowExecutable bool `yaml:"show_executable"`
	Quote          bool `yaml:"quote"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the built-in suite covering every public operation.
func DefaultConfig() *Config {
	sum := int32(3)

	return &Config{
		Suite: SuiteConfig{
			Name: "strmath",
			Scenarios: []Scenario{
				{Name: "ltrim leading whitespace", Op: OpLTrim, Input: " \t\n aaa ", Expected: "aaa "},
				{Name: "rtrim trailing whitespace", Op: OpRTrim, Input: " aaa \t\n ", Expected: " aaa"},
				{Name: "trim both ends", Op: OpTrim, Input: " \t\n aaa \t\n ", Expected: "aaa"},
				{Name: "add small integers", Op: OpAdd, A: 1, B: 2, ExpectedSum: &sum},
			},
			Report: ReportConfig{ShowExecutable: true, Quote: true},
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// LoadConfig loads configuration from YAML file.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if len(c.Suite.Scenarios) == 0 {
		return ErrNoScenarios
	}

	seen := make(map[string]bool, len(c.Suite.Scenarios))

	for i, sc := range c.Suite.Scenarios {
		if sc.Name == "" {
			return fmt.Errorf("%w: scenario[%d]", ErrMissingScenarioName, i)
		}

		if seen[sc.Name] {
			return fmt.Errorf("%w: scenario[%d] %q", ErrDuplicateScenarioName, i, sc.Name)
		}

		seen[sc.Name] = true

		switch sc.Op {
		case OpLTrim, OpRTrim, OpTrim:
		case OpAdd:
			if sc.ExpectedSum == nil {
				return fmt.Errorf("%w: scenario[%d] %q", ErrMissingExpectedSum, i, sc.Name)
			}
		default:
			return fmt.Errorf("%w: scenario[%d] op %q", ErrUnknownOperation, i, sc.Op)
		}
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// GetScenariosByOp returns the scenarios exercising op, in file order.
func (c *Config) GetScenariosByOp(op string) []Scenario {
	var scenarios []Scenario

	for _, sc := range c.Suite.Scenarios {
		if sc.Op == op {
			scenarios = append(scenarios, sc)
		}
	}

	return scenarios
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Suite: %s, Scenarios: %d, FailFast: %t}",
		c.Suite.Name,
		len(c.Suite.Scenarios),
		c.Suite.FailFast,
	)
}
