package log

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"budgetbook/internal/core"
)

func TestErrorType(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("%w: x", core.ErrInvalidAmount), ErrorTypeValidation},
		{fmt.Errorf("%w: x", core.ErrNoBudgetLimit), ErrorTypeValidation},
		{fmt.Errorf("%w: x", core.ErrUnknownCategory), ErrorTypeNotFound},
		{fmt.Errorf("%w: x", core.ErrDuplicateCategory), ErrorTypeConflict},
		{fmt.Errorf("%w: x", core.ErrInsufficientFunds), ErrorTypeFunds},
		{errors.New("boom"), ErrorTypeInternal},
	}
	for _, tt := range tests {
		if got := ErrorType(tt.err); got != tt.want {
			t.Errorf("ErrorType(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestLogFields(t *testing.T) {
	f := NewFields().
		WithOperation(OpRecordExpense).
		WithCategory("Food", "").
		WithAmount(12).
		WithError(nil)

	if f[FieldOperation] != OpRecordExpense || f[FieldCategory] != "Food" || f[FieldAmount] != int64(12) {
		t.Fatalf("unexpected fields: %v", f)
	}
	if _, ok := f[FieldLabel]; ok {
		t.Fatalf("empty label should be omitted")
	}
	if _, ok := f[FieldError]; ok {
		t.Fatalf("nil error should be omitted")
	}
	if len(f.ToSlice()) != 2*len(f) {
		t.Fatalf("slice length mismatch")
	}
}

func TestLoggerAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelDebug, Output: &buf, Component: ComponentLedger})
	l.Info("hello", FieldBalance, 10)
	out := buf.String()
	if !strings.Contains(out, "component=ledger") || !strings.Contains(out, "balance=10") {
		t.Fatalf("unexpected output: %q", out)
	}

	buf.Reset()
	l.WithComponent(ComponentMenu).Warn("careful")
	if !strings.Contains(buf.String(), "component=menu") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	if lvl, err := ParseLevel("warn"); err != nil || lvl != slog.LevelWarn {
		t.Fatalf("expected warn, got %v (err=%v)", lvl, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
