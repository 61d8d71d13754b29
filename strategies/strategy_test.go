package strategies

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/backtester/market"
)

// view builds a history prefix from raw closes, one bar per day.
func view(t *testing.T, closes ...string) market.View {
	t.Helper()

	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]market.Bar, len(closes))
	for i, c := range closes {
		bars[i] = market.Bar{Date: day.AddDate(0, 0, i), Close: decimal.RequireFromString(c)}
	}

	s, err := market.NewSeries("TEST", bars)
	require.NoError(t, err)
	return s.View()
}

func TestSignalString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "BUY", Buy.String())
	assert.Equal(t, "SELL", Sell.String())
	assert.Equal(t, "HOLD", Hold.String())
	assert.Equal(t, "HOLD", Signal(42).String())
}

func TestByName(t *testing.T) {
	t.Parallel()

	t.Run("hold aliases", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"hold", "noop", "NONE", " Hold "} {
			strat, err := ByName(name, 0, 0)
			require.NoError(t, err, name)
			assert.IsType(t, HoldStrategy{}, strat)
		}
	})

	t.Run("sma-cross with overrides", func(t *testing.T) {
		t.Parallel()

		strat, err := ByName("sma-cross", 3, 7)
		require.NoError(t, err)

		sma, ok := strat.(*SMACross)
		require.True(t, ok)
		assert.Equal(t, 3, sma.ShortPeriod)
		assert.Equal(t, 7, sma.LongPeriod)
	})

	t.Run("sma-cross defaults", func(t *testing.T) {
		t.Parallel()

		strat, err := ByName("smacross", 0, 0)
		require.NoError(t, err)

		sma, ok := strat.(*SMACross)
		require.True(t, ok)
		assert.Equal(t, 9, sma.ShortPeriod)
		assert.Equal(t, 21, sma.LongPeriod)
	})

	t.Run("ema-cross", func(t *testing.T) {
		t.Parallel()

		strat, err := ByName("ema-cross", 5, 15)
		require.NoError(t, err)

		ema, ok := strat.(*EMACross)
		require.True(t, ok)
		assert.Equal(t, 5, ema.FastPeriod)
		assert.Equal(t, 15, ema.SlowPeriod)
	})

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()

		_, err := ByName("martingale", 0, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown strategy")
	})
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	Register("test-hold", HoldStrategy{})
	assert.NotNil(t, Get("test-hold"))
	assert.Nil(t, Get("never-registered"))
}
