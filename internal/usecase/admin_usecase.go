package usecase

import (
	"github.com/iho/goteller/internal/domain"
	"github.com/iho/goteller/internal/stream"
)

// The privileged handlers read both parameter lines before the admin
// check, so a standard session that attempts one stays stream-aligned.

// create allocates the next free account number for a new holder. The
// duplicate check is by holder name; the initial balance is only capped
// from above.
func (e *Engine) create(r *stream.Reader) string {
	name := readField(r)
	balanceStr := readField(r)

	if !e.session.Admin() {
		return respNotPermitted
	}
	if name == "" || balanceStr == "" {
		return respMalformed
	}
	if err := domain.ValidateHolderName(name, e.limits.MaxNameLength); err != nil {
		return respNameTooLong
	}

	balance, err := domain.ParseAmount(balanceStr)
	if err != nil {
		return respInvalidAmount
	}
	if balance.GreaterThan(e.limits.MaxBalance) {
		return respBalanceTooHigh
	}
	if e.accounts.NameExists(name) {
		return respDuplicateName
	}

	number, ok := e.accounts.NextAvailableNumber()
	if !ok {
		return respCannotCreate
	}

	e.accounts.Create(number, name, balance)
	e.created[number] = struct{}{}

	e.log.Info().
		Str("session_id", e.sessionID).
		Str("account", number).
		Msg("account created")

	return respCreateRecorded
}

// delete removes an account after matching both the holder name and the
// number against the ledger. The two mismatch cases answer differently.
func (e *Engine) delete(r *stream.Reader) string {
	name := readField(r)
	number := readField(r)

	if !e.session.Admin() {
		return respNotPermitted
	}
	if name == "" || number == "" {
		return respMalformed
	}
	if !e.accounts.NameExists(name) {
		return respHolderMismatch
	}
	if !e.accounts.OwnedBy(number, name) {
		return respNumberMismatch
	}

	e.accounts.Delete(number)
	e.deleted[number] = struct{}{}

	e.log.Info().
		Str("session_id", e.sessionID).
		Str("account", number).
		Msg("account deleted")

	return respDeleteRecorded
}

// disable flips an account to Disabled after an exact holder match.
func (e *Engine) disable(r *stream.Reader) string {
	name := readField(r)
	number := readField(r)

	if !e.session.Admin() {
		return respNotPermitted
	}
	if name == "" || number == "" {
		return respMalformed
	}
	if !e.accounts.Exists(number) {
		return respAccountMissing
	}
	if !e.accounts.OwnedBy(number, name) {
		return respHolderOrAccount
	}

	e.accounts.Disable(number)

	return respDisabledOK
}

// changePlan acknowledges a plan change after an exact holder match. The
// ledger carries no plan attribute, so the operation mutates nothing.
func (e *Engine) changePlan(r *stream.Reader) string {
	name := readField(r)
	number := readField(r)

	if !e.session.Admin() {
		return respNotPermitted
	}
	if name == "" || number == "" {
		return respMalformed
	}
	if !e.accounts.Exists(number) || !e.accounts.OwnedBy(number, name) {
		return respHolderOrAccount
	}

	return respPlanChanged
}
