package domain

import (
	"errors"
	"testing"
)

func TestValidateAccountNumber(t *testing.T) {
	tests := []struct {
		number string
		valid  bool
	}{
		{"10001", true},
		{"00000", true},
		{"99999", true},
		{"1234", false},
		{"123456", false},
		{"1000a", false},
		{"10 01", false},
		{"", false},
		{"-1001", false},
	}

	for _, tt := range tests {
		err := ValidateAccountNumber(tt.number)
		if tt.valid && err != nil {
			t.Errorf("ValidateAccountNumber(%q) = %v, want nil", tt.number, err)
		}
		if !tt.valid && !errors.Is(err, ErrInvalidAccountNumber) {
			t.Errorf("ValidateAccountNumber(%q) = %v, want ErrInvalidAccountNumber", tt.number, err)
		}
	}
}

func TestValidateHolderName(t *testing.T) {
	if err := ValidateHolderName("BobSmith", 20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateHolderName("ExactlyTwentyCharsAA", 20); err != nil {
		t.Fatalf("boundary-length name rejected: %v", err)
	}
	if err := ValidateHolderName("TwentyOneCharactersXX", 20); !errors.Is(err, ErrNameTooLong) {
		t.Fatalf("expected ErrNameTooLong, got %v", err)
	}
}

func TestValidBillCompany(t *testing.T) {
	for _, code := range []string{"EC", "CQ", "FI"} {
		if !ValidBillCompany(code) {
			t.Errorf("expected %q to be a known biller", code)
		}
	}
	for _, code := range []string{"XX", "ec", "", "ECC"} {
		if ValidBillCompany(code) {
			t.Errorf("expected %q to be rejected", code)
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"100.00", "100", true},
		{"0.01", "0.01", true},
		{"-5.00", "-5", true},
		{" 250.00 ", "250", true},
		{"abc", "", false},
		{"1.2.3", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, err := ParseAmount(tt.input)
		if tt.ok {
			if err != nil {
				t.Errorf("ParseAmount(%q) error = %v", tt.input, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("ParseAmount(%q) = %s, want %s", tt.input, got, tt.want)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("ParseAmount(%q) = %v, want ErrInvalidAmount", tt.input, err)
		}
	}
}
