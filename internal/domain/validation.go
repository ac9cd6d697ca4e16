package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const accountNumberLen = 5

// billCompanies is the fixed set of known billers a paybill may target.
var billCompanies = map[string]bool{
	"EC": true,
	"CQ": true,
	"FI": true,
}

// ValidateAccountNumber checks the syntactic shape of an account number:
// exactly five ASCII digits.
func ValidateAccountNumber(number string) error {
	if len(number) != accountNumberLen {
		return ErrInvalidAccountNumber
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return ErrInvalidAccountNumber
		}
	}
	return nil
}

// ValidateHolderName checks the holder-name length cap for account
// creation.
func ValidateHolderName(name string, maxLen int) error {
	if len(name) > maxLen {
		return fmt.Errorf("%w: %d characters", ErrNameTooLong, len(name))
	}
	return nil
}

// ValidBillCompany reports whether the company code names a known biller.
func ValidBillCompany(code string) bool {
	return billCompanies[code]
}

// ParseAmount parses a decimal currency amount from a stream line.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}
