package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValidates(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())

	cash, err := cfg.Account.ParseInitialCash()
	require.NoError(t, err)
	assert.True(t, cash.Equal(decimal.RequireFromString("10000")))
}

func TestLoadFromFileYAML(t *testing.T) {
	t.Parallel()

	content := `
data:
  file: ./prices.csv
  ticker: GC=F
  start_date: "2020-01-01"
  end_date: "2023-01-01"
account:
  initial_cash: "10000"
strategy:
  name: sma-cross
  fast: 9
  slow: 21
journal:
  type: sqlite
  db_path: ./bt.sqlite
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "GC=F", cfg.Data.Ticker)
	assert.Equal(t, "sma-cross", cfg.Strategy.Name)
	assert.Equal(t, 9, cfg.Strategy.Fast)
	assert.Equal(t, "sqlite", cfg.Journal.Type)

	start, err := cfg.Data.ParseStart()
	require.NoError(t, err)
	assert.Equal(t, 2020, start.Year())
}

func TestLoadFromFileJSON(t *testing.T) {
	t.Parallel()

	content := `{
  "data": {"file": "./prices.csv", "ticker": "GC=F"},
  "account": {"initial_cash": "5000"},
  "strategy": {"name": "hold"}
}`
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hold", cfg.Strategy.Name)
	assert.Empty(t, cfg.Journal.Type)
}

func TestSaveAndReload(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, Default().SaveToFile(path))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Data.Ticker, cfg.Data.Ticker)
}

func TestValidateErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"missing file", func(c *Config) { c.Data.File = "" }, "data.file is required"},
		{"missing ticker", func(c *Config) { c.Data.Ticker = "" }, "data.ticker is required"},
		{"bad start date", func(c *Config) { c.Data.StartDate = "01/02/2020" }, "data.start_date"},
		{"bad end date", func(c *Config) { c.Data.EndDate = "soon" }, "data.end_date"},
		{"start after end", func(c *Config) { c.Data.StartDate = "2023-01-01"; c.Data.EndDate = "2020-01-01" }, "must be before"},
		{"unparsable cash", func(c *Config) { c.Account.InitialCash = "lots" }, "account.initial_cash"},
		{"zero cash", func(c *Config) { c.Account.InitialCash = "0" }, "must be positive"},
		{"negative cash", func(c *Config) { c.Account.InitialCash = "-100" }, "must be positive"},
		{"missing strategy", func(c *Config) { c.Strategy.Name = "" }, "strategy.name is required"},
		{"bad journal type", func(c *Config) { c.Journal.Type = "parquet" }, "journal.type"},
		{"sqlite without path", func(c *Config) { c.Journal.Type = "sqlite"; c.Journal.DBPath = "" }, "db_path required"},
		{"csv without files", func(c *Config) { c.Journal.Type = "csv" }, "runs_file and trades_file required"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
