package market

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the on-disk and on-screen format for bar dates.
const DateLayout = "2006-01-02"

// Bar is one daily price observation: the atomic unit of simulation time.
type Bar struct {
	Date  time.Time
	Close decimal.Decimal
}

// Series is an ordered, date-indexed sequence of daily closing prices for a
// single instrument. Construction validates the ordering and price invariants;
// a Series is never mutated afterwards, so it is safe to share across
// concurrent simulation runs.
type Series struct {
	Ticker string
	bars   []Bar
}

// NewSeries builds a Series from bars already in chronological order.
// Dates must be strictly increasing and every close must be positive.
func NewSeries(ticker string, bars []Bar) (*Series, error) {
	for i, b := range bars {
		if !b.Close.IsPositive() {
			return nil, fmt.Errorf("market: bar %d (%s): close must be positive, got %s",
				i, b.Date.Format(DateLayout), b.Close)
		}
		if i > 0 && !bars[i-1].Date.Before(b.Date) {
			return nil, fmt.Errorf("market: bar %d (%s): dates must be strictly increasing",
				i, b.Date.Format(DateLayout))
		}
	}

	return &Series{
		Ticker: ticker,
		bars:   append([]Bar(nil), bars...),
	}, nil
}

func (s *Series) Len() int { return len(s.bars) }

// Bar returns the i-th bar in chronological order.
func (s *Series) Bar(i int) Bar { return s.bars[i] }

// Last returns the most recent bar. Panics on an empty series; callers that
// may hold an empty series must check Len first.
func (s *Series) Last() Bar { return s.bars[len(s.bars)-1] }

// Prefix returns a read-only view of the first n bars. The simulation engine
// hands strategies a prefix through the current bar only, which makes
// look-ahead structurally impossible.
func (s *Series) Prefix(n int) View { return View{bars: s.bars[:n]} }

// View returns a read-only view of the whole series.
func (s *Series) View() View { return View{bars: s.bars} }

// Between returns a new Series restricted to bars with start <= date <= end.
// A zero start or end leaves that side unbounded.
func (s *Series) Between(start, end time.Time) *Series {
	var bars []Bar
	for _, b := range s.bars {
		if !start.IsZero() && b.Date.Before(start) {
			continue
		}
		if !end.IsZero() && b.Date.After(end) {
			continue
		}
		bars = append(bars, b)
	}
	return &Series{Ticker: s.Ticker, bars: bars}
}

// View is a read-only window over the beginning of a Series. It has no
// mutators and no way to reach bars beyond its length.
type View struct {
	bars []Bar
}

func (v View) Len() int { return len(v.bars) }

func (v View) Bar(i int) Bar { return v.bars[i] }

// Last returns the most recent bar in the view (the "current" bar during a
// simulation step). Panics if the view is empty.
func (v View) Last() Bar { return v.bars[len(v.bars)-1] }

// Closes returns the closing prices in chronological order, for feeding
// indicators.
func (v View) Closes() []decimal.Decimal {
	out := make([]decimal.Decimal, len(v.bars))
	for i, b := range v.bars {
		out[i] = b.Close
	}
	return out
}
