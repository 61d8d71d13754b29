// journal/journal.go
package journal

import (
	"time"

	"github.com/shopspring/decimal"
)

// RunRecord mirrors the runs table: one row per completed backtest.
type RunRecord struct {
	RunID        string
	Created      time.Time
	Ticker       string
	Strategy     string
	Start        time.Time
	End          time.Time
	InitialCash  decimal.Decimal
	FinalBalance decimal.Decimal
	ReturnPct    decimal.Decimal
	Trades       int
}

// TradeRecord mirrors the trades table: one row per executed trade, keyed by
// run and sequence number so replays stay ordered.
type TradeRecord struct {
	RunID     string
	Seq       int
	Date      time.Time
	Action    string
	Price     decimal.Decimal
	Units     decimal.Decimal
	CashAfter decimal.Decimal
}

type Journal interface {
	RecordRun(RunRecord) error
	RecordTrade(TradeRecord) error
	Close() error
}
