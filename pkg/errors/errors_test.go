package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestFromErrorPassesThroughAppError(t *testing.T) {
	err := FromError(ErrOrphanageNotFound)
	if err != ErrOrphanageNotFound {
		t.Fatalf("expected sentinel to be returned unchanged, got %v", err)
	}
	if err.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", err.StatusCode)
	}
}

func TestFromErrorWrapsGenericError(t *testing.T) {
	cause := errors.New("connection refused")
	err := FromError(cause)

	if err.Code != ErrServer.Code {
		t.Fatalf("expected server error code, got %s", err.Code)
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped error to unwrap to the cause")
	}
}

func TestWithInternalDoesNotMutateSentinel(t *testing.T) {
	cause := errors.New("boom")
	wrapped := ErrServer.WithInternal(cause)

	if ErrServer.Internal != nil {
		t.Fatal("sentinel must not carry the internal error")
	}
	if wrapped.Internal != cause {
		t.Fatal("copy should carry the internal error")
	}
	if wrapped.Message != ErrServer.Message {
		t.Fatal("copy should keep the public message")
	}
}

func TestNewNotFoundMessage(t *testing.T) {
	err := NewNotFound("Prayer not found")
	if err.StatusCode != http.StatusNotFound || err.Message != "Prayer not found" {
		t.Fatalf("unexpected error: %+v", err)
	}
}
