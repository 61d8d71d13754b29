package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/backtester/market"
)

// Config represents the complete backtest run configuration
type Config struct {
	Data     DataConfig     `json:"data" yaml:"data"`
	Account  AccountConfig  `json:"account" yaml:"account"`
	Strategy StrategyConfig `json:"strategy" yaml:"strategy"`
	Journal  JournalConfig  `json:"journal" yaml:"journal"`
}

// DataConfig names the already-fetched price file and the slice of it to
// replay. Fetching itself (ticker + date range against a provider) lives
// outside this repo; the engine only ever sees the resulting series.
type DataConfig struct {
	File      string `json:"file" yaml:"file"`
	Ticker    string `json:"ticker" yaml:"ticker"`
	StartDate string `json:"start_date,omitempty" yaml:"start_date,omitempty"` // 2006-01-02; empty = series start
	EndDate   string `json:"end_date,omitempty" yaml:"end_date,omitempty"`     // empty = series end
}

// ParseStart converts the start date; zero time when unset.
func (d DataConfig) ParseStart() (time.Time, error) {
	if d.StartDate == "" {
		return time.Time{}, nil
	}
	return time.Parse(market.DateLayout, d.StartDate)
}

// ParseEnd converts the end date; zero time when unset.
func (d DataConfig) ParseEnd() (time.Time, error) {
	if d.EndDate == "" {
		return time.Time{}, nil
	}
	return time.Parse(market.DateLayout, d.EndDate)
}

// AccountConfig contains account initialization parameters. InitialCash is a
// string so exact decimal values survive the YAML/JSON round trip.
type AccountConfig struct {
	InitialCash string `json:"initial_cash" yaml:"initial_cash"`
}

// ParseInitialCash converts the configured cash to a decimal.
func (a AccountConfig) ParseInitialCash() (decimal.Decimal, error) {
	return decimal.NewFromString(a.InitialCash)
}

// StrategyConfig contains strategy parameters
type StrategyConfig struct {
	Name string `json:"name" yaml:"name"`
	Fast int    `json:"fast,omitempty" yaml:"fast,omitempty"`
	Slow int    `json:"slow,omitempty" yaml:"slow,omitempty"`
}

// JournalConfig contains journaling parameters
type JournalConfig struct {
	Type       string `json:"type,omitempty" yaml:"type,omitempty"` // "", "csv" or "sqlite"
	RunsFile   string `json:"runs_file,omitempty" yaml:"runs_file,omitempty"`
	TradesFile string `json:"trades_file,omitempty" yaml:"trades_file,omitempty"`
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on content)
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

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
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

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Data.File == "" {
		return fmt.Errorf("data.file is required")
	}
	if c.Data.Ticker == "" {
		return fmt.Errorf("data.ticker is required")
	}

	start, err := c.Data.ParseStart()
	if err != nil {
		return fmt.Errorf("data.start_date: %w", err)
	}
	end, err := c.Data.ParseEnd()
	if err != nil {
		return fmt.Errorf("data.end_date: %w", err)
	}
	if !start.IsZero() && !end.IsZero() && !start.Before(end) {
		return fmt.Errorf("data.start_date must be before data.end_date")
	}

	cash, err := c.Account.ParseInitialCash()
	if err != nil {
		return fmt.Errorf("account.initial_cash: %w", err)
	}
	if !cash.IsPositive() {
		return fmt.Errorf("account.initial_cash must be positive")
	}

	if c.Strategy.Name == "" {
		return fmt.Errorf("strategy.name is required")
	}

	switch c.Journal.Type {
	case "":
		// journaling disabled
	case "csv":
		if c.Journal.RunsFile == "" || c.Journal.TradesFile == "" {
			return fmt.Errorf("journal runs_file and trades_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'csv' or 'sqlite'")
	}

	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Data: DataConfig{
			File:      "./prices.csv",
			Ticker:    "GC=F",
			StartDate: "2020-01-01",
			EndDate:   "2023-01-01",
		},
		Account: AccountConfig{
			InitialCash: "10000",
		},
		Strategy: StrategyConfig{
			Name: "sma-cross",
			Fast: 9,
			Slow: 21,
		},
		Journal: JournalConfig{
			Type:   "sqlite",
			DBPath: "./backtests.sqlite",
		},
	}
}
