// Package accountsfile loads the current-accounts file into account
// records. The file comes from an external batch process in one of two
// shapes, tried per line in order: the official fixed-width layout, then a
// whitespace-delimited fallback that may carry a trailing two-letter plan
// code. A record numbered 00000 terminates the load early.
package accountsfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iho/goteller/internal/domain"
)

const endMarker = "00000"

// Load reads the accounts file at path. A missing or unreadable file is
// the caller's one fatal startup condition.
func Load(path string) ([]domain.Account, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open accounts file: %w", err)
	}
	defer f.Close()

	accounts, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse accounts file %q: %w", path, err)
	}
	return accounts, nil
}

// Parse decodes account records from r until the stream or the 00000 end
// marker is reached. Lines that fit neither format are skipped, not
// fatal: the loader tolerates whatever the batch process last wrote.
func Parse(r io.Reader) ([]domain.Account, error) {
	var accounts []domain.Account

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, endMarker) {
			break
		}

		if acct, ok := parseFixedWidth(line); ok {
			accounts = append(accounts, acct)
			continue
		}

		acct, ok, end := parseDelimited(line)
		if end {
			break
		}
		if ok {
			accounts = append(accounts, acct)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return accounts, nil
}

// parseFixedWidth accepts a line only when it really looks fixed-width:
// separator spaces in the exact columns and a valid status byte.
// Columns: 0-4 number, 6-25 name, 27 status, 29-36 balance.
func parseFixedWidth(line string) (domain.Account, bool) {
	if len(line) < 37 {
		return domain.Account{}, false
	}
	number := line[0:5]
	if domain.ValidateAccountNumber(number) != nil {
		return domain.Account{}, false
	}
	if line[5] != ' ' || line[26] != ' ' || line[28] != ' ' {
		return domain.Account{}, false
	}
	status := domain.Status(line[27:28])
	if status != domain.StatusActive && status != domain.StatusDisabled {
		return domain.Account{}, false
	}

	balance, err := decimal.NewFromString(strings.TrimSpace(line[29:37]))
	if err != nil {
		return domain.Account{}, false
	}

	return domain.Account{
		Number:  number,
		Name:    strings.TrimSpace(line[6:26]),
		Status:  status,
		Balance: balance,
	}, true
}

// parseDelimited handles the split-based fallback: number, name words,
// status, balance, and an optional trailing two-letter plan code that is
// parsed and discarded. end reports the 00000 marker.
func parseDelimited(line string) (acct domain.Account, ok, end bool) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return domain.Account{}, false, false
	}
	if parts[0] == endMarker {
		return domain.Account{}, false, true
	}
	if len(parts) < 4 {
		return domain.Account{}, false, false
	}

	var status, balanceStr string
	var nameParts []string

	last := parts[len(parts)-1]
	if len(last) == 2 && isAlpha(last) {
		// plan suffix present
		if len(parts) < 5 {
			return domain.Account{}, false, false
		}
		status = parts[len(parts)-3]
		balanceStr = parts[len(parts)-2]
		nameParts = parts[1 : len(parts)-3]
	} else {
		status = parts[len(parts)-2]
		balanceStr = parts[len(parts)-1]
		nameParts = parts[1 : len(parts)-2]
	}

	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		return domain.Account{}, false, false
	}

	return domain.Account{
		Number:  parts[0],
		Name:    strings.TrimSpace(strings.Join(nameParts, " ")),
		Status:  domain.Status(status),
		Balance: balance,
	}, true, false
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
