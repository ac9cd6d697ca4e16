// Package transactionfile persists the daily transaction log. Records
// accumulate in memory for the life of the process and every flush
// rewrites the whole sequence, so the file on disk always reflects all
// sessions handled so far.
package transactionfile

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/iho/goteller/internal/domain"
)

// Writer implements usecase.RecordSink over a file path.
type Writer struct {
	path    string
	records []domain.Record
	log     zerolog.Logger

	maxElapsedTime time.Duration
}

// NewWriter creates a writer targeting path. Nothing touches the disk
// until the first Flush.
func NewWriter(path string, log zerolog.Logger) *Writer {
	return &Writer{
		path:           path,
		log:            log,
		maxElapsedTime: 2 * time.Second,
	}
}

// Append queues one record for the next flush.
func (w *Writer) Append(rec domain.Record) {
	w.records = append(w.records, rec)
}

// Flush writes every accumulated record, one formatted line each, through
// a temp file renamed into place. Transient write failures are retried
// with exponential backoff.
func (w *Writer) Flush() error {
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = w.maxElapsedTime

	attempt := 0
	err := backoff.Retry(func() error {
		if err := w.writeFile(); err != nil {
			attempt++
			w.log.Warn().Err(err).Int("attempt", attempt).Msg("transaction file write failed, retrying")
			return err
		}
		return nil
	}, b)
	if err != nil {
		return fmt.Errorf("flush transaction file %q: %w", w.path, err)
	}

	w.log.Debug().Int("records", len(w.records)).Str("path", w.path).Msg("transaction file written")
	return nil
}

// Len returns the number of queued records.
func (w *Writer) Len() int {
	return len(w.records)
}

// writeFile performs one atomic write: temp file first, then rename over
// the target so a failed write never leaves a truncated log behind.
func (w *Writer) writeFile() error {
	var sb strings.Builder
	for _, rec := range w.records {
		sb.WriteString(rec.Line())
		sb.WriteByte('\n')
	}

	tmp := w.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(sb.String()), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, w.path)
}
