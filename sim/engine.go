package sim

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/backtester/market"
	"github.com/rustyeddy/backtester/strategies"
)

var (
	// ErrEmptySeries means there is no price data to simulate over.
	ErrEmptySeries = errors.New("sim: empty price series")

	// ErrInvalidCash means the starting cash is zero or negative.
	ErrInvalidCash = errors.New("sim: initial cash must be positive")
)

// Result is the frozen outcome of one run: the trade log in execution order
// and the terminal account state.
type Result struct {
	Trades  []Trade
	Account Account
}

// Engine replays a strategy over a price series, one bar at a time, keeping
// the account solvent by construction:
//   - a Buy executes only when cash > 0, converting all cash to units
//   - a Sell executes only when units > 0, converting all units to cash
//   - everything else (Hold, Buy while invested, Sell while flat) is a no-op
//
// All-in/all-out sizing means consecutive Buys cannot double-spend and
// consecutive Sells cannot go short; the alternating buy/sell shape of the
// trade log falls out of the cash/units checks rather than being enforced.
//
// Each Engine owns the state for a single run. The series is shared,
// read-only input, so independent engines may run over it in parallel.
type Engine struct {
	series      *market.Series
	initialCash decimal.Decimal

	acct   Account
	trades []Trade
}

func NewEngine(series *market.Series, initialCash decimal.Decimal) *Engine {
	return &Engine{
		series:      series,
		initialCash: initialCash,
	}
}

// Run executes the replay. Input validation happens before any state exists,
// so a failed run leaves no partial trade log behind.
//
// The strategy is queried once per bar with the history prefix through that
// bar, never with later bars.
func (e *Engine) Run(src strategies.SignalSource) (Result, error) {
	if src == nil {
		return Result{}, fmt.Errorf("sim: strategy is required")
	}
	if e.series == nil || e.series.Len() == 0 {
		return Result{}, ErrEmptySeries
	}
	if !e.initialCash.IsPositive() {
		return Result{}, ErrInvalidCash
	}

	e.acct = Account{Cash: e.initialCash, Units: decimal.Zero}
	e.trades = nil

	for i := 0; i < e.series.Len(); i++ {
		bar := e.series.Bar(i)
		signal := src.ProduceSignal(e.series.Prefix(i + 1))

		switch {
		case signal == strategies.Buy && e.acct.Cash.IsPositive():
			units := e.acct.Cash.Div(bar.Close)
			e.acct = Account{Cash: decimal.Zero, Units: units}
			e.trades = append(e.trades, Trade{
				Date:      bar.Date,
				Action:    ActionBuy,
				Price:     bar.Close,
				Units:     units,
				CashAfter: e.acct.Cash,
			})

		case signal == strategies.Sell && e.acct.Units.IsPositive():
			units := e.acct.Units
			e.acct = Account{Cash: units.Mul(bar.Close), Units: decimal.Zero}
			e.trades = append(e.trades, Trade{
				Date:      bar.Date,
				Action:    ActionSell,
				Price:     bar.Close,
				Units:     units,
				CashAfter: e.acct.Cash,
			})
		}
	}

	return Result{Trades: e.trades, Account: e.acct}, nil
}

// Run is the one-shot form: build an engine, replay, return the result.
func Run(series *market.Series, src strategies.SignalSource, initialCash decimal.Decimal) (Result, error) {
	return NewEngine(series, initialCash).Run(src)
}
