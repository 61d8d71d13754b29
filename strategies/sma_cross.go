package strategies

import (
	"encoding/json"

	"github.com/rustyeddy/backtester/indicators"
	"github.com/rustyeddy/backtester/market"
)

// SMACross signals from a short/long simple moving average crossover:
// - Buy while the short SMA is above the long SMA
// - Sell while it is at or below
// - Hold until the long window has warmed up
//
// The engine's solvency rules turn the continuous signal stream into discrete
// trades: repeated Buys while invested are no-ops, so only the crossings
// themselves move the account.
type SMACross struct {
	*SMACrossConfig
}

type SMACrossConfig struct {
	ShortPeriod int `json:"short-period" yaml:"short-period"` // 9
	LongPeriod  int `json:"long-period" yaml:"long-period"`   // 21
}

func (c *SMACrossConfig) JSON() ([]byte, error) {
	return json.Marshal(c)
}

func SMACrossDefaults() *SMACrossConfig {
	return &SMACrossConfig{
		ShortPeriod: 9,
		LongPeriod:  21,
	}
}

func NewSMACross(cfg *SMACrossConfig) *SMACross {
	if cfg.ShortPeriod <= 0 {
		cfg.ShortPeriod = 9
	}
	if cfg.LongPeriod <= 0 {
		cfg.LongPeriod = 21
	}
	return &SMACross{SMACrossConfig: cfg}
}

func (s *SMACross) ProduceSignal(history market.View) Signal {
	if history.Len() < s.LongPeriod || history.Len() < s.ShortPeriod {
		return Hold
	}

	closes := history.Closes()

	short, err := indicators.MA(closes, s.ShortPeriod)
	if err != nil {
		return Hold
	}
	long, err := indicators.MA(closes, s.LongPeriod)
	if err != nil {
		return Hold
	}

	if short.GreaterThan(long) {
		return Buy
	}
	return Sell
}
