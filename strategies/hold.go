package strategies

import "github.com/rustyeddy/backtester/market"

// HoldStrategy never trades. Useful as a wiring test and as the buy-and-hold
// baseline when comparing strategies over the same series.
type HoldStrategy struct{}

func (HoldStrategy) ProduceSignal(history market.View) Signal {
	_ = history
	return Hold
}
