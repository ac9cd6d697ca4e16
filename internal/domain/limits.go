package domain

import "github.com/shopspring/decimal"

// Limits carries the session ceilings applied to standard-mode money
// transactions, the cap on an account balance, and the holder-name length
// cap. Admin sessions are not subject to the per-transaction ceilings.
type Limits struct {
	Withdrawal    decimal.Decimal
	Transfer      decimal.Decimal
	Paybill       decimal.Decimal
	MaxBalance    decimal.Decimal
	MaxNameLength int
}

// DefaultLimits returns the stock front-end limits.
func DefaultLimits() Limits {
	return Limits{
		Withdrawal:    decimal.RequireFromString("500.00"),
		Transfer:      decimal.RequireFromString("1000.00"),
		Paybill:       decimal.RequireFromString("2000.00"),
		MaxBalance:    decimal.RequireFromString("99999.00"),
		MaxNameLength: 20,
	}
}
