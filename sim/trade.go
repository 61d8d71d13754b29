package sim

import (
	"time"

	"github.com/shopspring/decimal"
)

// Action is the side of an executed trade.
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
)

// Trade is a recorded, executed change in position. Records are append-only:
// once the engine emits one it is never modified.
type Trade struct {
	Date      time.Time
	Action    Action
	Price     decimal.Decimal
	Units     decimal.Decimal // units bought or sold at Price
	CashAfter decimal.Decimal
}
