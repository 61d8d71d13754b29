package strategies

import (
	"fmt"
	"strings"

	"github.com/rustyeddy/backtester/market"
)

// Signal is the strategy's decision for a single bar.
type Signal int8

const (
	Hold Signal = 0
	Buy  Signal = +1
	Sell Signal = -1
)

func (s Signal) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	default:
		return "HOLD"
	}
}

// SignalSource produces one Signal per bar from the price history available
// through that bar, and nothing after it.
//
// Implementations must be deterministic: the same history prefix must always
// yield the same Signal, or replays stop being reproducible.
type SignalSource interface {
	ProduceSignal(history market.View) Signal
}

var registry = make(map[string]SignalSource)

func Register(name string, src SignalSource) {
	registry[name] = src
}

func Get(name string) SignalSource {
	return registry[name]
}

// ByName builds one of the built-in strategies. Fast/slow apply to the
// crossover strategies; zero values fall back to their defaults.
func ByName(name string, fast, slow int) (SignalSource, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hold", "noop", "none":
		return HoldStrategy{}, nil

	case "sma-cross", "smacross":
		cfg := SMACrossDefaults()
		if fast > 0 {
			cfg.ShortPeriod = fast
		}
		if slow > 0 {
			cfg.LongPeriod = slow
		}
		return NewSMACross(cfg), nil

	case "ema-cross", "emacross":
		cfg := EMACrossDefaults()
		if fast > 0 {
			cfg.FastPeriod = fast
		}
		if slow > 0 {
			cfg.SlowPeriod = slow
		}
		return NewEMACross(cfg), nil

	default:
		return nil, fmt.Errorf("unknown strategy %q (supported: hold, sma-cross, ema-cross)", name)
	}
}
