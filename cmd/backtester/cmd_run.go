package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/backtester/config"
	"github.com/rustyeddy/backtester/journal"
	"github.com/rustyeddy/backtester/market"
	"github.com/rustyeddy/backtester/pkg/id"
	"github.com/rustyeddy/backtester/report"
	"github.com/rustyeddy/backtester/sim"
	"github.com/rustyeddy/backtester/strategies"
)

var (
	cfgPath string
	flags   = config.Default()
)

var cmdRun = &cobra.Command{
	Use:   "run",
	Short: "Run a strategy backtest and print the trade log and summary",
	RunE:  runBacktest,
}

func init() {
	f := cmdRun.Flags()

	f.StringVar(&cfgPath, "config", "", "path to YAML/JSON config file (flags override it)")

	f.StringVar(&flags.Data.File, "prices", flags.Data.File, "path to daily close CSV (date,close)")
	f.StringVar(&flags.Data.Ticker, "ticker", flags.Data.Ticker, "instrument ticker, for labeling only")
	f.StringVar(&flags.Data.StartDate, "start", flags.Data.StartDate, "first date to replay (2006-01-02; empty = series start)")
	f.StringVar(&flags.Data.EndDate, "end", flags.Data.EndDate, "last date to replay (empty = series end)")

	f.StringVar(&flags.Account.InitialCash, "cash", flags.Account.InitialCash, "starting cash")

	f.StringVar(&flags.Strategy.Name, "strategy", flags.Strategy.Name, "strategy name (hold, sma-cross, ema-cross)")
	f.IntVar(&flags.Strategy.Fast, "fast", flags.Strategy.Fast, "fast/short moving average period")
	f.IntVar(&flags.Strategy.Slow, "slow", flags.Strategy.Slow, "slow/long moving average period")

	f.StringVar(&flags.Journal.Type, "journal", flags.Journal.Type, "journal type ('' disables, csv, sqlite)")
	f.StringVar(&flags.Journal.DBPath, "db", flags.Journal.DBPath, "path to SQLite journal DB")
	f.StringVar(&flags.Journal.RunsFile, "runs-csv", flags.Journal.RunsFile, "CSV journal runs file")
	f.StringVar(&flags.Journal.TradesFile, "trades-csv", flags.Journal.TradesFile, "CSV journal trades file")
}

// buildConfig layers explicitly-set flags over the config file, when one is
// given. Without a file the flag set (seeded from defaults) is the config.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	if cfgPath == "" {
		if err := flags.Validate(); err != nil {
			return nil, fmt.Errorf("invalid flags: %w", err)
		}
		return flags, nil
	}

	cfg, err := config.LoadFromFile(cfgPath)
	if err != nil {
		return nil, err
	}

	set := cmd.Flags().Changed
	if set("prices") {
		cfg.Data.File = flags.Data.File
	}
	if set("ticker") {
		cfg.Data.Ticker = flags.Data.Ticker
	}
	if set("start") {
		cfg.Data.StartDate = flags.Data.StartDate
	}
	if set("end") {
		cfg.Data.EndDate = flags.Data.EndDate
	}
	if set("cash") {
		cfg.Account.InitialCash = flags.Account.InitialCash
	}
	if set("strategy") {
		cfg.Strategy.Name = flags.Strategy.Name
	}
	if set("fast") {
		cfg.Strategy.Fast = flags.Strategy.Fast
	}
	if set("slow") {
		cfg.Strategy.Slow = flags.Strategy.Slow
	}
	if set("journal") {
		cfg.Journal.Type = flags.Journal.Type
	}
	if set("db") {
		cfg.Journal.DBPath = flags.Journal.DBPath
	}
	if set("runs-csv") {
		cfg.Journal.RunsFile = flags.Journal.RunsFile
	}
	if set("trades-csv") {
		cfg.Journal.TradesFile = flags.Journal.TradesFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func openJournal(cfg *config.Config) (journal.Journal, error) {
	switch cfg.Journal.Type {
	case "sqlite":
		return journal.NewSQLite(cfg.Journal.DBPath)
	case "csv":
		return journal.NewCSV(cfg.Journal.RunsFile, cfg.Journal.TradesFile)
	default:
		return nil, nil
	}
}

func runBacktest(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	series, err := market.LoadCSV(cfg.Data.File, cfg.Data.Ticker)
	if err != nil {
		return err
	}

	start, _ := cfg.Data.ParseStart()
	end, _ := cfg.Data.ParseEnd()
	series = series.Between(start, end)

	initialCash, err := cfg.Account.ParseInitialCash()
	if err != nil {
		return fmt.Errorf("initial cash: %w", err)
	}

	strat, err := strategies.ByName(cfg.Strategy.Name, cfg.Strategy.Fast, cfg.Strategy.Slow)
	if err != nil {
		return err
	}

	result, err := sim.Run(series, strat, initialCash)
	if err != nil {
		return err
	}

	summary, err := report.Summarize(result.Account, series.Last().Close, initialCash, result.Trades)
	if err != nil {
		return err
	}

	if err := report.WriteLog(os.Stdout, result.Trades); err != nil {
		return err
	}
	if err := report.WriteSummary(os.Stdout, summary); err != nil {
		return err
	}

	j, err := openJournal(cfg)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	if j == nil {
		return nil
	}
	defer j.Close()

	runID := id.New()
	if err := j.RecordRun(journal.RunRecord{
		RunID:        runID,
		Created:      time.Now().UTC(),
		Ticker:       cfg.Data.Ticker,
		Strategy:     cfg.Strategy.Name,
		Start:        series.Bar(0).Date,
		End:          series.Last().Date,
		InitialCash:  initialCash,
		FinalBalance: summary.FinalBalance,
		ReturnPct:    summary.TotalReturnPct,
		Trades:       summary.TradeCount,
	}); err != nil {
		return fmt.Errorf("record run: %w", err)
	}

	for i, t := range result.Trades {
		if err := j.RecordTrade(journal.TradeRecord{
			RunID:     runID,
			Seq:       i,
			Date:      t.Date,
			Action:    string(t.Action),
			Price:     t.Price,
			Units:     t.Units,
			CashAfter: t.CashAfter,
		}); err != nil {
			return fmt.Errorf("record trade %d: %w", i, err)
		}
	}

	fmt.Fprintf(os.Stderr, "journaled run %s (%d trades)\n", runID, summary.TradeCount)
	return nil
}
