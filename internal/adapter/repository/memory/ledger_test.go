package memory_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/goteller/internal/adapter/repository/memory"
	"github.com/iho/goteller/internal/domain"
)

func seedLedger(accounts ...domain.Account) *memory.Ledger {
	return memory.NewLedger(accounts)
}

func acct(number, name string, status domain.Status, balance string) domain.Account {
	return domain.Account{
		Number:  number,
		Name:    name,
		Status:  status,
		Balance: decimal.RequireFromString(balance),
	}
}

func TestLookups(t *testing.T) {
	l := seedLedger(
		acct("10001", "Alice", domain.StatusActive, "500.00"),
		acct("10002", "Bob", domain.StatusDisabled, "100.00"),
	)

	if !l.Exists("10001") || l.Exists("10003") {
		t.Fatal("Exists wrong")
	}
	if l.Disabled("10001") || !l.Disabled("10002") {
		t.Fatal("Disabled wrong")
	}
	if l.Disabled("10003") {
		t.Fatal("Disabled must be false for a missing account")
	}
	if !l.OwnedBy("10001", "Alice") || l.OwnedBy("10001", "Bob") || l.OwnedBy("10003", "Alice") {
		t.Fatal("OwnedBy wrong")
	}
	if !l.NameExists("Bob") || l.NameExists("Carol") {
		t.Fatal("NameExists wrong")
	}
}

func TestBalanceMutation(t *testing.T) {
	l := seedLedger(acct("10001", "Alice", domain.StatusActive, "500.00"))

	if !l.Balance("10001").Equal(decimal.RequireFromString("500.00")) {
		t.Fatalf("initial balance = %s", l.Balance("10001"))
	}

	l.SetBalance("10001", decimal.RequireFromString("400.00"))
	if !l.Balance("10001").Equal(decimal.RequireFromString("400.00")) {
		t.Fatalf("balance after set = %s", l.Balance("10001"))
	}
}

func TestCreateDeleteDisable(t *testing.T) {
	l := seedLedger()

	l.Create("10001", "Alice", decimal.RequireFromString("250.00"))
	if !l.Exists("10001") || l.Disabled("10001") {
		t.Fatal("created account must be active")
	}

	l.Disable("10001")
	if !l.Disabled("10001") {
		t.Fatal("Disable did not stick")
	}

	l.Delete("10001")
	if l.Exists("10001") {
		t.Fatal("Delete did not remove the account")
	}

	// No-ops on missing accounts.
	l.Delete("10001")
	l.Disable("10001")
}

func TestNextAvailableNumber(t *testing.T) {
	l := seedLedger()

	number, ok := l.NextAvailableNumber()
	if !ok || number != "10001" {
		t.Fatalf("empty ledger: got %q, %v", number, ok)
	}

	l.Create("10001", "Alice", decimal.Zero)
	l.Create("10002", "Bob", decimal.Zero)

	number, ok = l.NextAvailableNumber()
	if !ok || number != "10003" {
		t.Fatalf("after two creates: got %q, %v", number, ok)
	}

	// A gap is reused before the tail.
	l.Delete("10001")
	number, ok = l.NextAvailableNumber()
	if !ok || number != "10001" {
		t.Fatalf("after delete: got %q, %v", number, ok)
	}
}
