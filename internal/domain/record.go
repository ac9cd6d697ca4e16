package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Record codes written to the daily transaction file.
const (
	RecordWithdrawal   = "01"
	RecordEndOfSession = "00"
)

const recordNameWidth = 20

// Record is one line of the daily transaction file before formatting.
type Record struct {
	Code    string
	Name    string
	Account string
	Amount  decimal.Decimal
	Misc    string
}

// NewRecord builds a record with the default blank misc field.
func NewRecord(code, name, account string, amount decimal.Decimal) Record {
	return Record{Code: code, Name: name, Account: account, Amount: amount}
}

// EndOfSessionRecord is the sentinel appended before each flush.
func EndOfSessionRecord() Record {
	return Record{Code: RecordEndOfSession, Account: "00000", Amount: decimal.Zero}
}

// Line renders the fixed 41-character layout: 2-char code, 20-char
// left-justified (and truncated) name, right-aligned 5-char account
// number, zero-padded 8-char amount with two decimals, 2-char misc.
func (r Record) Line() string {
	name := r.Name
	if len(name) > recordNameWidth {
		name = name[:recordNameWidth]
	}
	misc := r.Misc
	if misc == "" {
		misc = "  "
	}
	return fmt.Sprintf("%s %-20s %5s %s %s", r.Code, name, r.Account, padAmount(r.Amount), misc)
}

// padAmount renders an amount as an 8-character zero-padded field with two
// fractional digits, e.g. 100 -> "00100.00".
func padAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	for len(s) < 8 {
		s = "0" + s
	}
	return s
}
