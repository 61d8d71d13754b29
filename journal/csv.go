// journal/csv.go
package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	runs   *csv.Writer
	trades *csv.Writer
	rf, tf *os.File
}

func NewCSV(runsPath, tradesPath string) (*CSVJournal, error) {
	rf, err := os.Create(runsPath)
	if err != nil {
		return nil, err
	}
	tf, err := os.Create(tradesPath)
	if err != nil {
		return nil, err
	}

	rw := csv.NewWriter(rf)
	tw := csv.NewWriter(tf)

	if err := rw.Write([]string{"run_id", "created", "ticker", "strategy", "start", "end", "initial_cash", "final_balance", "return_pct", "trades"}); err != nil {
		return nil, err
	}
	if err := tw.Write([]string{"run_id", "seq", "date", "action", "price", "units", "cash_after"}); err != nil {
		return nil, err
	}

	rw.Flush()
	if err := rw.Error(); err != nil {
		return nil, err
	}
	tw.Flush()
	if err := tw.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{rw, tw, rf, tf}, nil
}

func (j *CSVJournal) RecordRun(r RunRecord) error {
	err := j.runs.Write([]string{
		r.RunID,
		r.Created.Format(time.RFC3339),
		r.Ticker,
		r.Strategy,
		r.Start.Format(time.RFC3339),
		r.End.Format(time.RFC3339),
		r.InitialCash.String(),
		r.FinalBalance.String(),
		r.ReturnPct.String(),
		strconv.Itoa(r.Trades),
	})
	if err != nil {
		return err
	}

	j.runs.Flush()
	return j.runs.Error()
}

func (j *CSVJournal) RecordTrade(t TradeRecord) error {
	err := j.trades.Write([]string{
		t.RunID,
		strconv.Itoa(t.Seq),
		t.Date.Format(time.RFC3339),
		t.Action,
		t.Price.String(),
		t.Units.String(),
		t.CashAfter.String(),
	})
	if err != nil {
		return err
	}

	j.trades.Flush()
	return j.trades.Error()
}

func (j *CSVJournal) Close() error {
	j.runs.Flush()
	j.trades.Flush()

	if err := j.rf.Close(); err != nil {
		_ = j.tf.Close()
		return err
	}
	return j.tf.Close()
}
