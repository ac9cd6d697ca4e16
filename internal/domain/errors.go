package domain

import "errors"

var (
	ErrInvalidAccountNumber = errors.New("account number must be exactly 5 digits")
	ErrInvalidAmount        = errors.New("amount is not a valid decimal")
	ErrNameTooLong          = errors.New("holder name exceeds maximum length")
)
