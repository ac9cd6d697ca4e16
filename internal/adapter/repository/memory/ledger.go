// Package memory holds the in-process account ledger. The engine is the
// sole owner and access is strictly sequential, so the map needs no
// locking; a concurrent-session redesign would put a mutex or a
// transactional boundary here.
package memory

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iho/goteller/internal/domain"
)

// Account numbers are allocated ascending inside this half-open range.
const (
	firstAccountNumber = 10001
	lastAccountNumber  = 99999
)

// Ledger is the in-memory account table keyed by 5-digit account number.
type Ledger struct {
	accounts map[string]*domain.Account
}

// NewLedger builds a ledger from loaded account records. Later duplicates
// of a number overwrite earlier ones, matching the load order contract of
// the accounts file.
func NewLedger(accounts []domain.Account) *Ledger {
	l := &Ledger{accounts: make(map[string]*domain.Account, len(accounts))}
	for _, a := range accounts {
		acct := a
		l.accounts[acct.Number] = &acct
	}
	return l
}

// Exists reports whether the number is present in the ledger.
func (l *Ledger) Exists(number string) bool {
	_, ok := l.accounts[number]
	return ok
}

// Disabled reports whether the account is present and disabled.
func (l *Ledger) Disabled(number string) bool {
	a, ok := l.accounts[number]
	return ok && a.Disabled()
}

// OwnedBy reports whether the account is present and held by name.
func (l *Ledger) OwnedBy(number, name string) bool {
	a, ok := l.accounts[number]
	return ok && a.OwnedBy(name)
}

// Balance returns the account balance. The account must Exist.
func (l *Ledger) Balance(number string) decimal.Decimal {
	if a, ok := l.accounts[number]; ok {
		return a.Balance
	}
	return decimal.Zero
}

// SetBalance overwrites the account balance. The account must Exist.
func (l *Ledger) SetBalance(number string, balance decimal.Decimal) {
	if a, ok := l.accounts[number]; ok {
		a.Balance = balance
	}
}

// NameExists scans for any account held under name. Creation uses it to
// refuse a second account for the same holder.
func (l *Ledger) NameExists(name string) bool {
	for _, a := range l.accounts {
		if a.Name == name {
			return true
		}
	}
	return false
}

// Create inserts a new active account.
func (l *Ledger) Create(number, name string, balance decimal.Decimal) {
	l.accounts[number] = &domain.Account{
		Number:  number,
		Name:    name,
		Status:  domain.StatusActive,
		Balance: balance,
	}
}

// Delete removes an account; missing numbers are a no-op.
func (l *Ledger) Delete(number string) {
	delete(l.accounts, number)
}

// Disable marks an account disabled; missing numbers are a no-op.
func (l *Ledger) Disable(number string) {
	if a, ok := l.accounts[number]; ok {
		a.Status = domain.StatusDisabled
	}
}

// NextAvailableNumber returns the lowest unused account number at or above
// 10001; ok is false once the range below 99999 is exhausted.
func (l *Ledger) NextAvailableNumber() (string, bool) {
	for n := firstAccountNumber; n < lastAccountNumber; n++ {
		number := fmt.Sprintf("%05d", n)
		if _, taken := l.accounts[number]; !taken {
			return number, true
		}
	}
	return "", false
}

// Len returns the number of accounts in the ledger.
func (l *Ledger) Len() int {
	return len(l.accounts)
}
