package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordRun(r RunRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, created, ticker, strategy, start_date, end_date, initial_cash, final_balance, return_pct, trades)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Created, r.Ticker, r.Strategy, r.Start, r.End,
		r.InitialCash, r.FinalBalance, r.ReturnPct, r.Trades,
	)
	return err
}

func (j *SQLiteJournal) RecordTrade(t TradeRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(run_id, seq, date, action, price, units, cash_after)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.RunID, t.Seq, t.Date, t.Action, t.Price, t.Units, t.CashAfter,
	)
	return err
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
