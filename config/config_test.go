package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoadYAML(t *testing.T) {
	data := `
deficit:
  f_e: 0.6
  f_twd: 0.3
  f_theta: 0.7
pool:
  rho_sat: 1.07
  rho_dry: 0.58
columns:
  time: timestamp
  e: transpiration
  theta: swc_rel
  pool: pool_size
run:
  input: ./dendro.csv
  initial_twd: 0
journal:
  type: csv
  output_file: ./out.csv
`
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 0.6, cfg.Deficit.FE)
	assert.Equal(t, 0.7, cfg.Deficit.FTheta)
	assert.Equal(t, "swc_rel", cfg.Columns.Theta)
	assert.Equal(t, "pool_size", cfg.Columns.Pool)
	assert.Equal(t, "./dendro.csv", cfg.Run.Input)
}

func TestLoadJSON(t *testing.T) {
	cfg := Default()
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveLoadYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Run.InitialTWD = 2.5
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidateStructure(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing input", func(c *Config) { c.Run.Input = "" }},
		{"missing time column", func(c *Config) { c.Columns.Time = "" }},
		{"missing e column", func(c *Config) { c.Columns.E = "" }},
		{"missing theta column", func(c *Config) { c.Columns.Theta = "" }},
		{"both wood mass and pool", func(c *Config) { c.Columns.Pool = "W" }},
		{"neither wood mass nor pool", func(c *Config) { c.Columns.WoodMass = "" }},
		{"bad journal type", func(c *Config) { c.Journal.Type = "parquet" }},
		{"csv journal without output file", func(c *Config) { c.Journal.OutputFile = "" }},
		{"sqlite journal without db path", func(c *Config) {
			c.Journal.Type = "sqlite"
			c.Journal.DBPath = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidateLeavesNumericDomainsAlone(t *testing.T) {
	// Degenerate parameters are the model's documented Inf/NaN territory,
	// not a config error.
	cfg := Default()
	cfg.Deficit.FTheta = 0
	cfg.Deficit.FE = -3
	cfg.Pool.RhoDry = 0
	assert.NoError(t, cfg.Validate())
}
