package usecase

import (
	"fmt"
	"strings"

	"github.com/iho/goteller/internal/domain"
	"github.com/iho/goteller/internal/stream"
)

// login starts a session. Two protocol quirks live here and are load
// bearing for the acceptance output:
//
//   - A standard login with a blank name answers "Malformed input." but
//     still starts an empty-named session, so a later logout can flush the
//     transaction file.
//   - After a successful login the engine peeks one line ahead; when the
//     next line is itself a money transaction the success banner is
//     suppressed and the peeked line is pushed back unconsumed.
func (e *Engine) login(r *stream.Reader) string {
	if e.session.Active() {
		// Drain the mode line, and the name line of a standard login, so
		// the stream stays aligned for the next transaction.
		mode := strings.ToLower(readField(r))
		if mode == domain.ModeStandard {
			r.Discard(1)
		}
		return respAlreadyLoggedIn
	}

	mode := strings.ToLower(readField(r))
	if mode != domain.ModeAdmin && mode != domain.ModeStandard {
		return respMalformed
	}

	name := ""
	if mode == domain.ModeStandard {
		name = readField(r)
		if name == "" {
			e.startSession(mode, "")
			return respMalformed
		}
	}

	e.startSession(mode, name)

	peek, ok := r.Next()
	r.PushBack(peek, ok)
	if domain.ParseCode(peek).BankOp() {
		return ""
	}

	return fmt.Sprintf("Login successful (%s).", mode)
}

// logout flushes the pending transaction log, appending the end-of-session
// sentinel first, and resets all per-session state.
func (e *Engine) logout() string {
	if !e.session.Active() {
		return respNoSession
	}

	e.sink.Append(domain.EndOfSessionRecord())
	if err := e.sink.Flush(); err != nil {
		e.log.Error().
			Str("session_id", e.sessionID).
			Err(err).
			Msg("transaction file flush failed")
	}

	e.log.Info().Str("session_id", e.sessionID).Msg("session ended")

	e.session.End()
	e.sessionID = ""
	e.created = make(map[string]struct{})
	e.deleted = make(map[string]struct{})

	return respFileWritten
}

func (e *Engine) startSession(mode, name string) {
	e.session.Start(mode, name)
	e.sessionID = e.idGen.Generate()
	e.log.Info().
		Str("session_id", e.sessionID).
		Str("mode", mode).
		Msg("session started")
}
