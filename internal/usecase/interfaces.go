package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/iho/goteller/internal/domain"
)

// AccountStore defines access to the in-memory account ledger. All
// operations are straight map lookups and mutations; Balance and
// SetBalance must only be called for a number that Exists.
type AccountStore interface {
	Exists(number string) bool
	Disabled(number string) bool
	OwnedBy(number, name string) bool
	Balance(number string) decimal.Decimal
	SetBalance(number string, balance decimal.Decimal)
	NameExists(name string) bool
	Create(number, name string, balance decimal.Decimal)
	Delete(number string)
	Disable(number string)
	// NextAvailableNumber scans ascending from 10001 for the first unused
	// 5-digit account number; ok is false when the range is exhausted.
	NextAvailableNumber() (number string, ok bool)
}

// RecordSink accumulates daily transaction records during a session and
// persists the whole sequence when the engine flushes at logout.
type RecordSink interface {
	Append(rec domain.Record)
	Flush() error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
