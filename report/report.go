package report

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/backtester/sim"
)

// ErrZeroInitialCash signals a contract violation upstream: the engine
// rejects zero starting cash before a run begins, so a zero should never
// reach the reporter.
var ErrZeroInitialCash = errors.New("report: initial cash is zero")

var hundred = decimal.NewFromInt(100)

// Summary holds the derived performance figures for a completed run.
// It is recomputable at any time from the frozen run state.
type Summary struct {
	FinalBalance   decimal.Decimal
	TotalReturnPct decimal.Decimal
	TradeCount     int

	Buys  int
	Sells int

	// Round-trip stats over completed buy/sell pairs. A trip wins when it
	// sold above its entry price.
	RoundTrips int
	Wins       int
	Losses     int
}

// Summarize derives the performance figures for a frozen run. Units still
// held are marked to the last observed price, so unrealized value counts
// toward the final balance. Pure function; safe to call repeatedly.
func Summarize(acct sim.Account, lastPrice, initialCash decimal.Decimal, trades []sim.Trade) (Summary, error) {
	if initialCash.IsZero() {
		return Summary{}, ErrZeroInitialCash
	}

	s := Summary{
		FinalBalance: acct.Value(lastPrice),
		TradeCount:   len(trades),
	}
	s.TotalReturnPct = s.FinalBalance.Sub(initialCash).Div(initialCash).Mul(hundred)

	var entry decimal.Decimal
	inTrip := false
	for _, t := range trades {
		switch t.Action {
		case sim.ActionBuy:
			s.Buys++
			entry = t.Price
			inTrip = true
		case sim.ActionSell:
			s.Sells++
			if !inTrip {
				continue
			}
			s.RoundTrips++
			if t.Price.GreaterThan(entry) {
				s.Wins++
			} else {
				s.Losses++
			}
			inTrip = false
		}
	}

	return s, nil
}
