package matchable_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/g-plane/matchable"
)

func TestInvalidPatternErrorMessage(t *testing.T) {
	_, err := matchable.Compile("(")
	if err == nil {
		t.Fatal("expected error")
	}
	const want = `invalid value "(": expected a valid regex pattern`
	if got := err.Error(); got != want {
		t.Fatalf("Error: got %q, want %q", got, want)
	}
}

func TestInvalidPatternErrorUnwrap(t *testing.T) {
	_, err := matchable.Parse("/)/")
	if err == nil {
		t.Fatal("expected error")
	}

	wrapped := fmt.Errorf("load rules: %w", err)
	var perr *matchable.InvalidPatternError
	if !errors.As(wrapped, &perr) {
		t.Fatalf("expected *InvalidPatternError through wrapping, got %T", err)
	}
	if perr.Pattern != ")" {
		t.Fatalf("Pattern: got %q, want %q", perr.Pattern, ")")
	}
	if perr.Unwrap() == nil {
		t.Fatal("expected wrapped engine error")
	}
}
