package strategies

import (
	"encoding/json"

	"github.com/rustyeddy/backtester/indicators"
	"github.com/rustyeddy/backtester/market"
)

// EMACross is the exponential sibling of SMACross: Buy while the fast EMA is
// above the slow EMA, Sell while it is at or below, Hold during warmup.
type EMACross struct {
	*EMACrossConfig
}

type EMACrossConfig struct {
	FastPeriod int `json:"fast-period" yaml:"fast-period"` // 10
	SlowPeriod int `json:"slow-period" yaml:"slow-period"` // 30
}

func (c *EMACrossConfig) JSON() ([]byte, error) {
	return json.Marshal(c)
}

func EMACrossDefaults() *EMACrossConfig {
	return &EMACrossConfig{
		FastPeriod: 10,
		SlowPeriod: 30,
	}
}

func NewEMACross(cfg *EMACrossConfig) *EMACross {
	if cfg.FastPeriod <= 0 {
		cfg.FastPeriod = 10
	}
	if cfg.SlowPeriod <= 0 {
		cfg.SlowPeriod = 30
	}
	return &EMACross{EMACrossConfig: cfg}
}

func (s *EMACross) ProduceSignal(history market.View) Signal {
	if history.Len() < s.SlowPeriod || history.Len() < s.FastPeriod {
		return Hold
	}

	closes := history.Closes()

	fast, err := indicators.EMA(closes, s.FastPeriod)
	if err != nil {
		return Hold
	}
	slow, err := indicators.EMA(closes, s.SlowPeriod)
	if err != nil {
		return Hold
	}

	if fast.GreaterThan(slow) {
		return Buy
	}
	return Sell
}
