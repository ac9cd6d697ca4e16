package usecase_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/iho/goteller/internal/adapter/repository/memory"
	"github.com/iho/goteller/internal/domain"
	"github.com/iho/goteller/internal/stream"
	"github.com/iho/goteller/internal/usecase"
	"github.com/iho/goteller/internal/usecase/mocks"
)

var errSentinel = errors.New("sink unavailable")

func TestLoginBannerSuppressedBeforeBankTransaction(t *testing.T) {
	tests := []struct {
		name     string
		nextLine string
		banner   bool
	}{
		{"deposit follows", "deposit", false},
		{"withdrawal follows", "withdrawal", false},
		{"transfer follows", "transfer", false},
		{"paybill follows", "paybill", false},
		{"logout follows", "logout", true},
		{"create follows", "create", true},
		{"end of stream follows", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _, _ := newEngine(active("10001", "Alice", "500.00"))

			input := "standard\nAlice\n"
			if tt.nextLine != "" {
				input += tt.nextLine + "\n"
			}
			r := stream.NewReader(strings.NewReader(input))

			resp := e.Handle("login", r)

			if tt.banner && resp != "Login successful (standard)." {
				t.Fatalf("resp = %q, want banner", resp)
			}
			if !tt.banner && resp != "" {
				t.Fatalf("resp = %q, want suppressed banner", resp)
			}

			if tt.nextLine != "" {
				// The peeked line must still be on the stream.
				line, ok := r.Next()
				if !ok || line != tt.nextLine {
					t.Fatalf("lookahead consumed the next line: got %q, %v", line, ok)
				}
			}
		})
	}
}

func TestLoginRejectsBadMode(t *testing.T) {
	e, _, _ := newEngine()

	r := stream.NewReader(strings.NewReader("superuser\n"))
	if resp := e.Handle("login", r); resp != "Malformed input." {
		t.Fatalf("resp = %q, want malformed", resp)
	}
}

func TestBlankStandardLoginStartsEmptySession(t *testing.T) {
	// The documented quirk: the malformed login still opens a session so
	// a later logout can write the transaction file.
	e, _, sink := newEngine()

	got := drive(e, "login\nstandard\n\nlogout\n")

	assertResponses(t, got, []string{
		"Malformed input.",
		"Transaction file written.",
	})
	if sink.Flushed != 1 {
		t.Fatalf("flushes = %d, want 1", sink.Flushed)
	}
}

func TestAlreadyLoggedInDrainsStandardNameLine(t *testing.T) {
	e, _, _ := newEngine(active("10001", "Alice", "500.00"))

	// The second login consumes "standard" and "Bob"; the deposit after
	// it must parse cleanly.
	got := drive(e, "login\nstandard\nAlice\nlogin\nstandard\nBob\ndeposit\n10001\n25.00\n")

	assertResponses(t, got, []string{
		"Already logged in.",
		"Deposit accepted.",
	})
}

func TestAlreadyLoggedInAdminModeConsumesOnlyModeLine(t *testing.T) {
	e, _, _ := newEngine(active("10001", "Alice", "500.00"))

	got := drive(e, "login\nstandard\nAlice\nlogin\nadmin\ndeposit\n10001\n25.00\n")

	assertResponses(t, got, []string{
		"Already logged in.",
		"Deposit accepted.",
	})
}

func TestLogoutWithoutSession(t *testing.T) {
	e, _, sink := newEngine()

	got := drive(e, "logout\n")

	assertResponses(t, got, []string{"No active session."})
	if sink.Flushed != 0 {
		t.Fatal("logout without a session must not flush")
	}
}

func TestLogoutAppendsSentinelAndFlushes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sink := mocks.NewMockRecordSink(ctrl)
	idGen := mocks.NewMockIDGenerator(ctrl)
	idGen.EXPECT().Generate().Return("01JSESSION")

	gomock.InOrder(
		sink.EXPECT().Append(domain.EndOfSessionRecord()),
		sink.EXPECT().Flush().Return(nil),
	)

	e := usecase.NewEngine(
		domain.NewSession(),
		memory.NewLedger(nil),
		sink,
		idGen,
		domain.DefaultLimits(),
		zerolog.Nop(),
	)

	drive(e, "login\nadmin\nlogout\n")
}

func TestFlushErrorDoesNotChangeLogoutResponse(t *testing.T) {
	e, _, sink := newEngine()
	sink.FlushErr = errSentinel

	got := drive(e, "login\nadmin\nlogout\n")

	assertResponses(t, got, []string{
		"Login successful (admin).",
		"Transaction file written.",
	})
}
