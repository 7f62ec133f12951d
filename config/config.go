// Package config loads and validates run configuration from YAML or JSON
// files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents one complete deficit-model run configuration.
type Config struct {
	Deficit DeficitConfig `json:"deficit" yaml:"deficit"`
	Pool    PoolConfig    `json:"pool" yaml:"pool"`
	Columns ColumnsConfig `json:"columns" yaml:"columns"`
	Run     RunConfig     `json:"run" yaml:"run"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
}

// DeficitConfig carries the three deficit-recurrence parameters.
//
// Numeric domains are documented, not enforced: f_e and f_twd are expected
// in [0,1], f_theta must be positive (it divides the soil moisture).
// Degenerate values are allowed through on purpose and show up as Inf/NaN
// in the outputs; rejecting them here would change the model contract.
type DeficitConfig struct {
	FE     float64 `json:"f_e" yaml:"f_e"`
	FTWD   float64 `json:"f_twd" yaml:"f_twd"`
	FTheta float64 `json:"f_theta" yaml:"f_theta"`
}

// PoolConfig carries the wood densities for storage-pool sizing. Only used
// when the column map names a wood-mass column.
type PoolConfig struct {
	RhoSat float64 `json:"rho_sat" yaml:"rho_sat"`
	RhoDry float64 `json:"rho_dry" yaml:"rho_dry"`
}

// ColumnsConfig maps logical roles to the column names of the input table.
// Exactly one of wood_mass and pool must be set.
type ColumnsConfig struct {
	Time     string `json:"time" yaml:"time"`
	E        string `json:"e" yaml:"e"`
	Theta    string `json:"theta" yaml:"theta"`
	WoodMass string `json:"wood_mass,omitempty" yaml:"wood_mass,omitempty"`
	Pool     string `json:"pool,omitempty" yaml:"pool,omitempty"`
}

// RunConfig points at the input table and seeds the deficit state.
type RunConfig struct {
	Input      string  `json:"input" yaml:"input"`
	InitialTWD float64 `json:"initial_twd" yaml:"initial_twd"`
}

// JournalConfig selects where computed rows go.
type JournalConfig struct {
	Type       string `json:"type" yaml:"type"` // "csv" or "sqlite"
	OutputFile string `json:"output_file,omitempty" yaml:"output_file,omitempty"`
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks structural requirements only: file paths, column names
// and the journal sink. It deliberately does not check the numeric domains
// of the model parameters (see DeficitConfig).
func (c *Config) Validate() error {
	if c.Run.Input == "" {
		return fmt.Errorf("run.input is required")
	}
	if c.Columns.Time == "" {
		return fmt.Errorf("columns.time is required")
	}
	if c.Columns.E == "" {
		return fmt.Errorf("columns.e is required")
	}
	if c.Columns.Theta == "" {
		return fmt.Errorf("columns.theta is required")
	}
	if (c.Columns.WoodMass == "") == (c.Columns.Pool == "") {
		return fmt.Errorf("exactly one of columns.wood_mass and columns.pool must be set")
	}
	if c.Journal.Type != "csv" && c.Journal.Type != "sqlite" {
		return fmt.Errorf("journal.type must be 'csv' or 'sqlite'")
	}
	if c.Journal.Type == "csv" && c.Journal.OutputFile == "" {
		return fmt.Errorf("journal.output_file required for CSV type")
	}
	if c.Journal.Type == "sqlite" && c.Journal.DBPath == "" {
		return fmt.Errorf("journal.db_path required for SQLite type")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Deficit: DeficitConfig{
			FE:     0.6,
			FTWD:   0.3,
			FTheta: 0.7,
		},
		Pool: PoolConfig{
			RhoSat: 1.07,
			RhoDry: 0.58,
		},
		Columns: ColumnsConfig{
			Time:     "time",
			E:        "E",
			Theta:    "theta_rel",
			WoodMass: "m_wood_dry",
		},
		Run: RunConfig{
			Input:      "./input.csv",
			InitialTWD: 0,
		},
		Journal: JournalConfig{
			Type:       "csv",
			OutputFile: "./twd.csv",
		},
	}
}
