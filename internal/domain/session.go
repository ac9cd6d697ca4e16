package domain

import "strings"

// Session modes accepted on the line after a login code.
const (
	ModeAdmin    = "admin"
	ModeStandard = "standard"
)

// Session tracks the state of the single active front-end session: whether
// anyone is logged in, at which privilege level, and under which holder
// name. One instance lives for the whole process; Start and End flip it
// between sessions.
type Session struct {
	loggedIn     bool
	admin        bool
	holder       string
	everLoggedIn bool
}

// NewSession returns a logged-out session.
func NewSession() *Session {
	return &Session{}
}

// Start begins a session. The caller validates mode and holder first; admin
// sessions carry an empty holder name.
func (s *Session) Start(mode, holder string) {
	s.loggedIn = true
	s.admin = strings.EqualFold(mode, ModeAdmin)
	s.holder = holder
	s.everLoggedIn = true
}

// End resets the session to logged out. The ever-logged-in flag survives:
// it selects the wording of the not-logged-in rejection.
func (s *Session) End() {
	s.loggedIn = false
	s.admin = false
	s.holder = ""
}

// Active reports whether a session is in progress.
func (s *Session) Active() bool { return s.loggedIn }

// Admin reports whether the active session has admin privilege.
func (s *Session) Admin() bool { return s.admin }

// Holder returns the current account holder name; empty for admin.
func (s *Session) Holder() string { return s.holder }

// EverLoggedIn reports whether any login succeeded in this process.
func (s *Session) EverLoggedIn() bool { return s.everLoggedIn }
