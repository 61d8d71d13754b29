package sim

import "github.com/shopspring/decimal"

// Account is the running cash/units snapshot during a simulation run.
// The engine is its only writer; Cash and Units always change together.
type Account struct {
	Cash  decimal.Decimal
	Units decimal.Decimal
}

// Value marks the account to the given price: cash plus the value of any
// held units.
func (a Account) Value(price decimal.Decimal) decimal.Decimal {
	return a.Cash.Add(a.Units.Mul(price))
}
