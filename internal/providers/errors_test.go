package providers

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNetworkErrorMessageWithStatus(t *testing.T) {
	err := &NetworkError{Provider: "fpl", Endpoint: "/bootstrap-static/", StatusCode: 500}
	if !strings.Contains(err.Error(), "status 500") {
		t.Fatalf("expected status in message, got %q", err.Error())
	}
}

func TestNetworkErrorMessageWithCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := &NetworkError{Provider: "fpl", Endpoint: "/fixtures/", Err: cause}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("expected cause in message, got %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected Unwrap to expose cause")
	}
}

func TestAsNetworkErrorUnwrapsWrappedErrors(t *testing.T) {
	inner := &NetworkError{Provider: "fpl", Endpoint: "/fixtures/", StatusCode: 503}
	wrapped := fmt.Errorf("fetch fixtures: %w", inner)

	got, ok := AsNetworkError(wrapped)
	if !ok {
		t.Fatalf("expected wrapped NetworkError to unwrap")
	}
	if got.StatusCode != 503 {
		t.Fatalf("expected status 503, got %d", got.StatusCode)
	}
	if _, ok := AsNetworkError(errors.New("plain")); ok {
		t.Fatalf("expected plain error not to match")
	}
}

func TestAsDecodeErrorUnwrapsWrappedErrors(t *testing.T) {
	inner := &DecodeError{Provider: "fpl", Endpoint: "/bootstrap-static/", Err: errors.New("unexpected EOF")}
	wrapped := fmt.Errorf("fetch bootstrap: %w", inner)

	got, ok := AsDecodeError(wrapped)
	if !ok {
		t.Fatalf("expected wrapped DecodeError to unwrap")
	}
	if got.Endpoint != "/bootstrap-static/" {
		t.Fatalf("unexpected endpoint %q", got.Endpoint)
	}
	if _, ok := AsDecodeError(inner.Err); ok {
		t.Fatalf("expected bare cause not to match")
	}
}
