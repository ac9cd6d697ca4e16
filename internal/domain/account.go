package domain

import (
	"github.com/shopspring/decimal"
)

// Status marks whether an account may take part in transactions.
type Status string

const (
	StatusActive   Status = "A"
	StatusDisabled Status = "D"
)

// Account represents one ledger record: a 5-digit account number, the
// holder's name, a status flag and a two-decimal currency balance.
type Account struct {
	Number  string
	Name    string
	Status  Status
	Balance decimal.Decimal
}

// Disabled reports whether the account is barred from transactions.
func (a *Account) Disabled() bool {
	return a.Status == StatusDisabled
}

// OwnedBy reports whether the account belongs to the named holder.
func (a *Account) OwnedBy(name string) bool {
	return a.Name == name
}
