// journal/schema.go
package journal

// Decimal columns are TEXT so values round-trip exactly through the
// shopspring/decimal Valuer/Scanner without float truncation.
const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	created DATETIME NOT NULL,
	ticker TEXT NOT NULL,
	strategy TEXT NOT NULL,
	start_date DATETIME NOT NULL,
	end_date DATETIME NOT NULL,
	initial_cash TEXT NOT NULL,
	final_balance TEXT NOT NULL,
	return_pct TEXT NOT NULL,
	trades INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS trades (
	run_id TEXT NOT NULL,
	seq INTEGER NOT NULL,
	date DATETIME NOT NULL,
	action TEXT NOT NULL,
	price TEXT NOT NULL,
	units TEXT NOT NULL,
	cash_after TEXT NOT NULL,
	PRIMARY KEY (run_id, seq)
);

CREATE INDEX IF NOT EXISTS idx_trades_run ON trades(run_id, seq);
`
