package transactionfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/goteller/internal/adapter/transactionfile"
	"github.com/iho/goteller/internal/domain"
)

func TestFlushWritesFormattedRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.txt")
	w := transactionfile.NewWriter(path, zerolog.Nop())

	w.Append(domain.NewRecord(domain.RecordWithdrawal, "Alice", "10001", decimal.RequireFromString("100.00")))
	w.Append(domain.EndOfSessionRecord())

	require.NoError(t, w.Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := "01 Alice                10001 00100.00   \n" +
		"00                      00000 00000.00   \n"
	assert.Equal(t, want, string(data))
}

func TestFlushRewritesWholeSequence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.txt")
	w := transactionfile.NewWriter(path, zerolog.Nop())

	// First session.
	w.Append(domain.EndOfSessionRecord())
	require.NoError(t, w.Flush())

	// Second session in the same process run appends to the same sequence.
	w.Append(domain.NewRecord(domain.RecordWithdrawal, "Bob", "10002", decimal.NewFromInt(5)))
	w.Append(domain.EndOfSessionRecord())
	require.NoError(t, w.Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := "00                      00000 00000.00   \n" +
		"01 Bob                  10002 00005.00   \n" +
		"00                      00000 00000.00   \n"
	assert.Equal(t, want, string(data))
	assert.Equal(t, 3, w.Len())
}

func TestFlushEmptyWriterTruncatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale\n"), 0o644))

	w := transactionfile.NewWriter(path, zerolog.Nop())
	require.NoError(t, w.Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, string(data))
}

func TestFlushFailsWhenTargetIsUnwritable(t *testing.T) {
	// Target inside a directory that does not exist: every attempt fails
	// and the backoff gives up.
	path := filepath.Join(t.TempDir(), "missing", "transactions.txt")
	w := transactionfile.NewWriter(path, zerolog.Nop())
	w.Append(domain.EndOfSessionRecord())

	err := w.Flush()
	require.Error(t, err)
}
