package usecase

import (
	"github.com/iho/goteller/internal/domain"
	"github.com/iho/goteller/internal/stream"
)

// The money-movement handlers read their full parameter shape before the
// first check, then run the rule chain in its fixed order: field presence,
// account shape, session availability, existence, status, ownership,
// amount parse, sign, funds and standard-mode ceiling. First failure wins
// and leaves ledger and log untouched.

// withdrawal debits an account and records a "01" line in the pending
// transaction log. The funds check precedes the standard-mode ceiling.
func (e *Engine) withdrawal(r *stream.Reader) string {
	if e.session.Admin() {
		r.Discard(1) // holder name line; admin acts on the account directly
	}
	number := readField(r)
	amountStr := readField(r)

	if number == "" || amountStr == "" {
		return respMalformed
	}
	if err := domain.ValidateAccountNumber(number); err != nil {
		return respInvalidAccountNumber
	}
	if msg := e.availability(number); msg != "" {
		return msg
	}
	if !e.accounts.Exists(number) {
		return respAccountMissing
	}
	if e.accounts.Disabled(number) {
		return respAccountDisabled
	}
	if msg := e.requireOwnership(number); msg != "" {
		return msg
	}

	amount, err := domain.ParseAmount(amountStr)
	if err != nil {
		return respInvalidAmount
	}
	if amount.IsNegative() {
		return respNegativeAmount
	}

	balance := e.accounts.Balance(number)
	if balance.LessThan(amount) {
		return respInsufficientFunds
	}
	if !e.session.Admin() && amount.GreaterThan(e.limits.Withdrawal) {
		return respWithdrawalLimit
	}

	e.accounts.SetBalance(number, balance.Sub(amount))
	e.sink.Append(domain.NewRecord(domain.RecordWithdrawal, e.session.Holder(), number, amount))

	return respWithdrawalAccepted
}

// deposit credits an account. No ceiling applies and no record is written.
func (e *Engine) deposit(r *stream.Reader) string {
	if e.session.Admin() {
		r.Discard(1)
	}
	number := readField(r)
	amountStr := readField(r)

	if number == "" || amountStr == "" {
		return respMalformed
	}
	if msg := e.availability(number); msg != "" {
		return msg
	}
	if !e.accounts.Exists(number) {
		return respAccountMissing
	}
	if e.accounts.Disabled(number) {
		return respAccountDisabled
	}
	if msg := e.requireOwnership(number); msg != "" {
		return msg
	}

	amount, err := domain.ParseAmount(amountStr)
	if err != nil {
		return respInvalidAmount
	}
	if amount.IsNegative() {
		return respNegativeAmount
	}

	e.accounts.SetBalance(number, e.accounts.Balance(number).Add(amount))

	return respDepositAccepted
}

// transfer moves money between two accounts. Only the source account's
// ownership is checked; availability and status apply to both ends.
func (e *Engine) transfer(r *stream.Reader) string {
	if e.session.Admin() {
		r.Discard(1)
	}
	from := readField(r)
	to := readField(r)
	amountStr := readField(r)

	if from == "" || to == "" || amountStr == "" {
		return respMalformed
	}
	// Deleted-this-session wins over created-this-session across both ends.
	if _, ok := e.deleted[from]; ok {
		return respAccountDeleted
	}
	if _, ok := e.deleted[to]; ok {
		return respAccountDeleted
	}
	if _, ok := e.created[from]; ok {
		return respAccountCreated
	}
	if _, ok := e.created[to]; ok {
		return respAccountCreated
	}
	if !e.accounts.Exists(from) {
		return respSourceMissing
	}
	if !e.accounts.Exists(to) {
		return respDestinationMissing
	}
	if e.accounts.Disabled(from) || e.accounts.Disabled(to) {
		return respAccountDisabled
	}
	if !e.session.Admin() && !e.accounts.OwnedBy(from, e.session.Holder()) {
		return respSourceNotOwned
	}

	amount, err := domain.ParseAmount(amountStr)
	if err != nil {
		return respInvalidAmount
	}
	if amount.IsNegative() {
		return respNegativeAmount
	}

	fromBalance := e.accounts.Balance(from)
	if fromBalance.LessThan(amount) {
		return respInsufficientFunds
	}
	if !e.session.Admin() && amount.GreaterThan(e.limits.Transfer) {
		return respTransferLimit
	}

	e.accounts.SetBalance(from, fromBalance.Sub(amount))
	e.accounts.SetBalance(to, e.accounts.Balance(to).Add(amount))

	return respTransferAccepted
}

// paybill debits an account in favor of a known biller. Unlike withdrawal
// and transfer, the standard-mode ceiling is checked before funds.
func (e *Engine) paybill(r *stream.Reader) string {
	if e.session.Admin() {
		r.Discard(1)
	}
	number := readField(r)
	company := readField(r)
	amountStr := readField(r)

	if number == "" || company == "" || amountStr == "" {
		return respMalformed
	}
	if msg := e.availability(number); msg != "" {
		return msg
	}
	if !e.accounts.Exists(number) {
		return respInvalidAccountNumber
	}
	if e.accounts.Disabled(number) {
		return respAccountDisabled
	}
	if msg := e.requireOwnership(number); msg != "" {
		return msg
	}
	if !domain.ValidBillCompany(company) {
		return respInvalidBillCompany
	}

	amount, err := domain.ParseAmount(amountStr)
	if err != nil {
		return respInvalidAmount
	}
	if amount.IsNegative() {
		return respNegativeAmount
	}

	if !e.session.Admin() && amount.GreaterThan(e.limits.Paybill) {
		return respPaybillLimit
	}
	balance := e.accounts.Balance(number)
	if balance.LessThan(amount) {
		return respInsufficientFunds
	}

	e.accounts.SetBalance(number, balance.Sub(amount))

	return respPaybillAccepted
}
