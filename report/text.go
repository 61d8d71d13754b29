package report

import (
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/backtester/market"
	"github.com/rustyeddy/backtester/sim"
)

// WriteLog renders the human-readable transaction log: one line per executed
// trade with date, action, fill price, units and resulting cash.
func WriteLog(w io.Writer, trades []sim.Trade) error {
	for _, t := range trades {
		_, err := fmt.Fprintf(w, "%s  %-4s %s @ %s  cash=%s\n",
			t.Date.Format(market.DateLayout),
			t.Action,
			t.Units.StringFixed(4),
			t.Price.StringFixed(2),
			t.CashAfter.StringFixed(2),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary renders the closing two lines of a run.
func WriteSummary(w io.Writer, s Summary) error {
	if _, err := fmt.Fprintf(w, "Final Balance: $%s\n", s.FinalBalance.StringFixed(2)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Total Return: %s%%\n", s.TotalReturnPct.StringFixed(2))
	return err
}

// Marker is the per-trade datum an external plotting collaborator needs to
// draw buy/sell markers over the price chart. No rendering happens here.
type Marker struct {
	Date   time.Time
	Price  decimal.Decimal
	Action sim.Action
}

// Markers extracts the plot feed from a trade log, in log order.
func Markers(trades []sim.Trade) []Marker {
	out := make([]Marker, len(trades))
	for i, t := range trades {
		out[i] = Marker{Date: t.Date, Price: t.Price, Action: t.Action}
	}
	return out
}
