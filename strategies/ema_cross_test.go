package strategies

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEMACrossWarmup(t *testing.T) {
	t.Parallel()

	strat := NewEMACross(&EMACrossConfig{FastPeriod: 2, SlowPeriod: 3})

	assert.Equal(t, Hold, strat.ProduceSignal(view(t, "10")))
	assert.Equal(t, Hold, strat.ProduceSignal(view(t, "10", "11")))
}

func TestEMACrossSignals(t *testing.T) {
	t.Parallel()

	strat := NewEMACross(&EMACrossConfig{FastPeriod: 2, SlowPeriod: 3})

	t.Run("rising closes buy", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, Buy, strat.ProduceSignal(view(t, "10", "11", "12", "13")))
	})

	t.Run("falling closes sell", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, Sell, strat.ProduceSignal(view(t, "13", "12", "11", "10")))
	})
}

func TestEMACrossDefaults(t *testing.T) {
	t.Parallel()

	strat := NewEMACross(&EMACrossConfig{})
	assert.Equal(t, 10, strat.FastPeriod)
	assert.Equal(t, 30, strat.SlowPeriod)
}
