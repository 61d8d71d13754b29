package market

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// LoadCSV reads a daily close file into a Series.
//
// Expected layout: two columns per row, `date,close`, dates formatted as
// 2006-01-02, rows in chronological order. A header row is skipped when the
// first field is not a parsable date. Unlike minute-tick ingest there is no
// keep-first/skip policy here: daily files are small and hand-curated, so any
// bad row fails the load.
func LoadCSV(path, ticker string) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("market: open prices: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("market: read prices: %w", err)
	}

	var bars []Bar
	for i, row := range rows {
		if len(row) < 2 {
			return nil, fmt.Errorf("market: %s row %d: want date,close, got %d fields", path, i+1, len(row))
		}

		date, err := time.Parse(DateLayout, strings.TrimSpace(row[0]))
		if err != nil {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("market: %s row %d: bad date %q", path, i+1, row[0])
		}

		closePx, err := decimal.NewFromString(strings.TrimSpace(row[1]))
		if err != nil {
			return nil, fmt.Errorf("market: %s row %d: bad close %q", path, i+1, row[1])
		}

		bars = append(bars, Bar{Date: date, Close: closePx})
	}

	s, err := NewSeries(ticker, bars)
	if err != nil {
		return nil, fmt.Errorf("market: %s: %w", path, err)
	}
	return s, nil
}
