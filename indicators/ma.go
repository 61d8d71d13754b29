package indicators

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MA calculates the Simple Moving Average of the last `period` closes.
func MA(closes []decimal.Decimal, period int) (decimal.Decimal, error) {
	if period <= 0 {
		return decimal.Zero, fmt.Errorf("period must be positive, got %d", period)
	}
	if len(closes) < period {
		return decimal.Zero, fmt.Errorf("not enough closes: need %d, got %d", period, len(closes))
	}

	sum := decimal.Zero
	for i := len(closes) - period; i < len(closes); i++ {
		sum = sum.Add(closes[i])
	}
	return sum.Div(decimal.NewFromInt(int64(period))), nil
}

// EMA calculates the Exponential Moving Average over the given closes.
//
// Seeded with the SMA of the first `period` closes, then smoothed forward
// with multiplier 2/(period+1).
func EMA(closes []decimal.Decimal, period int) (decimal.Decimal, error) {
	if period <= 0 {
		return decimal.Zero, fmt.Errorf("period must be positive, got %d", period)
	}
	if len(closes) < period {
		return decimal.Zero, fmt.Errorf("not enough closes: need %d, got %d", period, len(closes))
	}

	multiplier := decimal.NewFromInt(2).Div(decimal.NewFromInt(int64(period + 1)))

	sum := decimal.Zero
	for i := 0; i < period; i++ {
		sum = sum.Add(closes[i])
	}
	ema := sum.Div(decimal.NewFromInt(int64(period)))

	for i := period; i < len(closes); i++ {
		ema = closes[i].Sub(ema).Mul(multiplier).Add(ema)
	}

	return ema, nil
}
