package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/shopspring/decimal"

	"github.com/iho/goteller/internal/domain"
)

// Config holds all application configuration. Defaults match the stock
// front-end rules; an env override changes the deployed limits without a
// rebuild.
type Config struct {
	// Session limits (standard mode only)
	WithdrawalLimit string `env:"TELLER_WITHDRAWAL_LIMIT" envDefault:"500.00"`
	TransferLimit   string `env:"TELLER_TRANSFER_LIMIT"   envDefault:"1000.00"`
	PaybillLimit    string `env:"TELLER_PAYBILL_LIMIT"    envDefault:"2000.00"`

	// Account constraints
	MaxBalance    string `env:"TELLER_MAX_BALANCE"     envDefault:"99999.00"`
	MaxNameLength int    `env:"TELLER_MAX_NAME_LENGTH" envDefault:"20"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Limits parses the configured amounts into domain limits.
func (c *Config) Limits() (domain.Limits, error) {
	var (
		limits domain.Limits
		err    error
	)

	if limits.Withdrawal, err = decimal.NewFromString(c.WithdrawalLimit); err != nil {
		return domain.Limits{}, fmt.Errorf("invalid withdrawal limit %q: %w", c.WithdrawalLimit, err)
	}
	if limits.Transfer, err = decimal.NewFromString(c.TransferLimit); err != nil {
		return domain.Limits{}, fmt.Errorf("invalid transfer limit %q: %w", c.TransferLimit, err)
	}
	if limits.Paybill, err = decimal.NewFromString(c.PaybillLimit); err != nil {
		return domain.Limits{}, fmt.Errorf("invalid paybill limit %q: %w", c.PaybillLimit, err)
	}
	if limits.MaxBalance, err = decimal.NewFromString(c.MaxBalance); err != nil {
		return domain.Limits{}, fmt.Errorf("invalid max balance %q: %w", c.MaxBalance, err)
	}
	limits.MaxNameLength = c.MaxNameLength

	return limits, nil
}
