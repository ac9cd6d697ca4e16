// Package usecase implements the transaction validation-and-execution
// engine: dispatch by transaction code, the per-code rule chains, and the
// session bookkeeping that spans a login/logout pair.
package usecase

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/iho/goteller/internal/domain"
	"github.com/iho/goteller/internal/stream"
)

// Engine processes one transaction at a time against the session, the
// account ledger and the pending transaction log. It owns the transient
// created/deleted sets that make accounts touched earlier in the same
// session unavailable until the external batch re-sync.
type Engine struct {
	session  *domain.Session
	accounts AccountStore
	sink     RecordSink
	idGen    IDGenerator
	limits   domain.Limits
	log      zerolog.Logger

	sessionID string
	created   map[string]struct{}
	deleted   map[string]struct{}
}

// NewEngine creates an Engine over the given collaborators.
func NewEngine(
	session *domain.Session,
	accounts AccountStore,
	sink RecordSink,
	idGen IDGenerator,
	limits domain.Limits,
	log zerolog.Logger,
) *Engine {
	return &Engine{
		session:  session,
		accounts: accounts,
		sink:     sink,
		idGen:    idGen,
		limits:   limits,
		log:      log,
		created:  make(map[string]struct{}),
		deleted:  make(map[string]struct{}),
	}
}

// Handle dispatches one transaction. It consumes exactly the parameter
// lines the code owns from r, applies the rule chain, mutates ledger and
// log on acceptance, and returns the response. An empty response means
// print nothing (the suppressed login banner).
func (e *Engine) Handle(rawCode string, r *stream.Reader) string {
	code := domain.ParseCode(rawCode)

	var resp string
	switch code {
	case domain.CodeLogin:
		resp = e.login(r)
	case domain.CodeLogout:
		resp = e.logout()
	default:
		resp = e.handleOther(code, r)
	}

	e.log.Debug().
		Str("session_id", e.sessionID).
		Str("code", string(code)).
		Str("response", resp).
		Msg("transaction handled")

	return resp
}

// handleOther gates every non-session code on login state. A rejected
// transaction still discards the code's full parameter arity so the stream
// stays aligned for whatever follows.
func (e *Engine) handleOther(code domain.Code, r *stream.Reader) string {
	if !e.session.Active() {
		r.Discard(code.ParamArity())
		if e.session.EverLoggedIn() {
			return respLoginRequired
		}
		return respLoginRequiredFirst
	}

	switch code {
	case domain.CodeWithdrawal:
		return e.withdrawal(r)
	case domain.CodeDeposit:
		return e.deposit(r)
	case domain.CodeTransfer:
		return e.transfer(r)
	case domain.CodePaybill:
		return e.paybill(r)
	case domain.CodeCreate:
		return e.create(r)
	case domain.CodeDelete:
		return e.delete(r)
	case domain.CodeDisable:
		return e.disable(r)
	case domain.CodeChangePlan:
		return e.changePlan(r)
	}
	return respUnknownCode
}

// readField returns the next stream line trimmed, or the empty string at
// end of stream. Handlers treat a missing line like an empty field.
func readField(r *stream.Reader) string {
	line, ok := r.Next()
	if !ok {
		return ""
	}
	return strings.TrimSpace(line)
}

// availability rejects an account touched earlier in this session: deleted
// wins over created, matching the chain order of the rule table.
func (e *Engine) availability(number string) string {
	if _, ok := e.deleted[number]; ok {
		return respAccountDeleted
	}
	if _, ok := e.created[number]; ok {
		return respAccountCreated
	}
	return ""
}

// requireOwnership enforces that a standard session only moves money on
// the holder's own account. Admin sessions act on any account.
func (e *Engine) requireOwnership(number string) string {
	if e.session.Admin() {
		return ""
	}
	if !e.accounts.OwnedBy(number, e.session.Holder()) {
		return respNotOwned
	}
	return ""
}
