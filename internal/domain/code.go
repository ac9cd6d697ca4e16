package domain

import "strings"

// Code is a transaction code read from the request stream.
type Code string

const (
	CodeLogin      Code = "login"
	CodeLogout     Code = "logout"
	CodeWithdrawal Code = "withdrawal"
	CodeDeposit    Code = "deposit"
	CodeTransfer   Code = "transfer"
	CodePaybill    Code = "paybill"
	CodeCreate     Code = "create"
	CodeDelete     Code = "delete"
	CodeDisable    Code = "disable"
	CodeChangePlan Code = "changeplan"
)

// paramArity is the number of parameter lines each code owns in the
// request stream. A handler must consume exactly this many lines even when
// it rejects, or every later transaction reads the wrong lines.
var paramArity = map[Code]int{
	CodeWithdrawal: 3,
	CodeDeposit:    3,
	CodeTransfer:   4,
	CodePaybill:    4,
	CodeCreate:     2,
	CodeDelete:     2,
	CodeDisable:    2,
	CodeChangePlan: 2,
}

// ParseCode normalizes a raw stream line into a Code. Unknown codes pass
// through so the engine can answer them explicitly.
func ParseCode(raw string) Code {
	return Code(strings.ToLower(strings.TrimSpace(raw)))
}

// ParamArity returns the parameter-line count for the code; zero for
// login, logout and unknown codes.
func (c Code) ParamArity() int {
	return paramArity[c]
}

// BankOp reports whether the code is a money-movement transaction. Login
// uses this on the looked-ahead line to decide banner suppression.
func (c Code) BankOp() bool {
	switch c {
	case CodeDeposit, CodeWithdrawal, CodeTransfer, CodePaybill:
		return true
	}
	return false
}

// Privileged reports whether the code is an admin-only ledger operation.
func (c Code) Privileged() bool {
	switch c {
	case CodeCreate, CodeDelete, CodeDisable, CodeChangePlan:
		return true
	}
	return false
}
