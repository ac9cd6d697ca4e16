package mocks

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iho/goteller/internal/domain"
)

// MockAccountStore is a mock implementation of usecase.AccountStore. By
// default it behaves as a real in-memory ledger; any Func field overrides
// the corresponding method.
type MockAccountStore struct {
	accounts map[string]*domain.Account

	ExistsFunc              func(number string) bool
	DisabledFunc            func(number string) bool
	OwnedByFunc             func(number, name string) bool
	BalanceFunc             func(number string) decimal.Decimal
	SetBalanceFunc          func(number string, balance decimal.Decimal)
	NameExistsFunc          func(name string) bool
	CreateFunc              func(number, name string, balance decimal.Decimal)
	DeleteFunc              func(number string)
	DisableFunc             func(number string)
	NextAvailableNumberFunc func() (string, bool)
}

func NewMockAccountStore() *MockAccountStore {
	return &MockAccountStore{
		accounts: make(map[string]*domain.Account),
	}
}

// Seed inserts an account directly, bypassing any Func override.
func (m *MockAccountStore) Seed(a domain.Account) {
	acct := a
	m.accounts[acct.Number] = &acct
}

func (m *MockAccountStore) Exists(number string) bool {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(number)
	}
	_, ok := m.accounts[number]
	return ok
}

func (m *MockAccountStore) Disabled(number string) bool {
	if m.DisabledFunc != nil {
		return m.DisabledFunc(number)
	}
	a, ok := m.accounts[number]
	return ok && a.Disabled()
}

func (m *MockAccountStore) OwnedBy(number, name string) bool {
	if m.OwnedByFunc != nil {
		return m.OwnedByFunc(number, name)
	}
	a, ok := m.accounts[number]
	return ok && a.OwnedBy(name)
}

func (m *MockAccountStore) Balance(number string) decimal.Decimal {
	if m.BalanceFunc != nil {
		return m.BalanceFunc(number)
	}
	if a, ok := m.accounts[number]; ok {
		return a.Balance
	}
	return decimal.Zero
}

func (m *MockAccountStore) SetBalance(number string, balance decimal.Decimal) {
	if m.SetBalanceFunc != nil {
		m.SetBalanceFunc(number, balance)
		return
	}
	if a, ok := m.accounts[number]; ok {
		a.Balance = balance
	}
}

func (m *MockAccountStore) NameExists(name string) bool {
	if m.NameExistsFunc != nil {
		return m.NameExistsFunc(name)
	}
	for _, a := range m.accounts {
		if a.Name == name {
			return true
		}
	}
	return false
}

func (m *MockAccountStore) Create(number, name string, balance decimal.Decimal) {
	if m.CreateFunc != nil {
		m.CreateFunc(number, name, balance)
		return
	}
	m.accounts[number] = &domain.Account{
		Number:  number,
		Name:    name,
		Status:  domain.StatusActive,
		Balance: balance,
	}
}

func (m *MockAccountStore) Delete(number string) {
	if m.DeleteFunc != nil {
		m.DeleteFunc(number)
		return
	}
	delete(m.accounts, number)
}

func (m *MockAccountStore) Disable(number string) {
	if m.DisableFunc != nil {
		m.DisableFunc(number)
		return
	}
	if a, ok := m.accounts[number]; ok {
		a.Status = domain.StatusDisabled
	}
}

func (m *MockAccountStore) NextAvailableNumber() (string, bool) {
	if m.NextAvailableNumberFunc != nil {
		return m.NextAvailableNumberFunc()
	}
	for n := 10001; n < 99999; n++ {
		number := fmt.Sprintf("%05d", n)
		if _, taken := m.accounts[number]; !taken {
			return number, true
		}
	}
	return "", false
}

// StubIDGenerator returns a fixed ID, for tests that do not care about
// session correlation.
type StubIDGenerator struct {
	ID string
}

func (g *StubIDGenerator) Generate() string {
	if g.ID == "" {
		return "test-session-id"
	}
	return g.ID
}

// CollectingSink is a usecase.RecordSink that keeps everything in memory.
type CollectingSink struct {
	Records  []domain.Record
	Flushed  int
	FlushErr error
}

func (s *CollectingSink) Append(rec domain.Record) {
	s.Records = append(s.Records, rec)
}

func (s *CollectingSink) Flush() error {
	s.Flushed++
	return s.FlushErr
}
