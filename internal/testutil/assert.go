// Package testutil provides shared test helpers for chess-rules-go.
package testutil

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// ChessOptions lets cmp compare values that hold chess types with
// unexported fields.
var ChessOptions = cmp.Options{
	cmp.Comparer(func(a, b chess.Coordinates) bool { return a == b }),
	cmp.Comparer(func(a, b chess.Move) bool { return a == b }),
}

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t *testing.T, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got, ChessOptions); diff != "" {
		report(t, formatMessage(msgAndArgs...), fmt.Sprintf("mismatch (-want +got):\n%s", diff))
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		report(t, formatMessage(msgAndArgs...), fmt.Sprintf("unexpected error: %v", err))
	}
}

// AssertError fails if err is nil when an error was expected.
func AssertError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err == nil {
		report(t, formatMessage(msgAndArgs...), "expected error but got nil")
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !stderrors.Is(err, target) {
		report(t, formatMessage(msgAndArgs...), fmt.Sprintf("error %v does not match %v", err, target))
	}
}

// AssertContains fails if substr is not found in got.
func AssertContains(t *testing.T, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if !strings.Contains(got, substr) {
		report(t, formatMessage(msgAndArgs...), fmt.Sprintf("%q does not contain %q", got, substr))
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !condition {
		report(t, formatMessage(msgAndArgs...), "expected true but got false")
	}
}

// AssertFalse fails if condition is true.
func AssertFalse(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if condition {
		report(t, formatMessage(msgAndArgs...), "expected false but got true")
	}
}

func report(t *testing.T, msg, failure string) {
	t.Helper()
	if msg != "" {
		t.Errorf("%s: %s", msg, failure)
		return
	}
	t.Error(failure)
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if s, ok := msgAndArgs[0].(string); ok {
		if len(msgAndArgs) == 1 {
			return s
		}
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
