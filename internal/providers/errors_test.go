package providers

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestStatusErrorString(t *testing.T) {
	err := &StatusError{
		Provider:   "lqoweb",
		StatusCode: 503,
		Body:       "maintenance",
	}
	if got := err.Error(); !strings.Contains(got, "503") || !strings.Contains(got, "maintenance") {
		t.Fatalf("expected status and body in error string, got %q", got)
	}

	statusErr, ok := AsStatusError(err)
	if !ok || statusErr == nil {
		t.Fatalf("expected to unwrap status error")
	}

	noBody := &StatusError{Provider: "lqoweb", StatusCode: 404}
	if got := noBody.Error(); !strings.Contains(got, "404") {
		t.Fatalf("expected status in error string, got %q", got)
	}
}

func TestAsStatusErrorUnwrapsWrappedError(t *testing.T) {
	inner := &StatusError{Provider: "lqoweb", StatusCode: 500}
	wrapped := fmt.Errorf("fetch: %w", inner)

	statusErr, ok := AsStatusError(wrapped)
	if !ok || statusErr.StatusCode != 500 {
		t.Fatalf("expected wrapped status error, got %v ok=%v", statusErr, ok)
	}
}

func TestAsStatusErrorRejectsOtherErrors(t *testing.T) {
	if _, ok := AsStatusError(errors.New("plain")); ok {
		t.Fatal("expected plain error not to unwrap")
	}
	if _, ok := AsStatusError(nil); ok {
		t.Fatal("expected nil error not to unwrap")
	}
}
