package apperrors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestConfigError(t *testing.T) {
	err := NewConfigError("bad value %d for %s", 42, "port")
	want := "bad value 42 for port"
	if err.Error() != want {
		t.Errorf("ConfigError.Error() = %q, want %q", err.Error(), want)
	}

	var ce ConfigError
	if !errors.As(err, &ce) {
		t.Error("NewConfigError should produce a ConfigError")
	}
}

func TestInvalidArgumentError(t *testing.T) {
	err := NewInvalidArgument("n", 0, "must be at least 1")

	if !strings.Contains(err.Error(), "n=0") {
		t.Errorf("error message should name the field and value, got %q", err.Error())
	}
	if !IsInvalidArgument(err) {
		t.Error("IsInvalidArgument should recognize a direct InvalidArgumentError")
	}

	wrapped := WrapError(err, "parsing query %d", 3)
	if !IsInvalidArgument(wrapped) {
		t.Error("IsInvalidArgument should see through fmt.Errorf %%w wrapping")
	}
	if IsInvalidArgument(errors.New("other")) {
		t.Error("IsInvalidArgument should reject unrelated errors")
	}
}

func TestMissingCacheEntryError(t *testing.T) {
	err := MissingCacheEntryError{N: 77}

	if !strings.Contains(err.Error(), "n=77") {
		t.Errorf("error message should include the bound, got %q", err.Error())
	}
	if !IsMissingCacheEntry(err) {
		t.Error("IsMissingCacheEntry should recognize a MissingCacheEntryError")
	}
	if IsMissingCacheEntry(NewInvalidArgument("n", 0, "x")) {
		t.Error("IsMissingCacheEntry should reject other error types")
	}
}

func TestServerError(t *testing.T) {
	cause := errors.New("bind: address already in use")
	err := NewServerError("server failed to start", cause)

	if !strings.Contains(err.Error(), "address already in use") {
		t.Errorf("ServerError should include its cause, got %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause through Unwrap")
	}

	bare := ServerError{Message: "no cause"}
	if bare.Error() != "no cause" {
		t.Errorf("ServerError without cause = %q, want %q", bare.Error(), "no cause")
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}

	base := errors.New("boom")
	wrapped := WrapError(base, "solving batch of %d", 10)
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should match base with errors.Is")
	}
	want := "solving batch of 10: boom"
	if wrapped.Error() != want {
		t.Errorf("WrapError message = %q, want %q", wrapped.Error(), want)
	}
}

func TestIsContextError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"canceled", context.Canceled, true},
		{"wrapped canceled", fmt.Errorf("op: %w", context.Canceled), true},
		{"generic", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsContextError(tt.err); got != tt.want {
				t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
