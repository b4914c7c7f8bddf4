package appErrors_test

import (
	"errors"
	"fmt"
	"testing"

	appErrors "github.com/unclebandit/storefront/internal/errors"
)

func TestStorageErrorWrapping(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := fmt.Errorf("place order: %w", appErrors.NewStorageError("insert customer", cause))

	if !appErrors.IsStorage(err) {
		t.Fatalf("expected storage error, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be reachable through Unwrap")
	}
	want := "place order: storage operation failed: insert customer: disk I/O error"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestNewStorageErrorNil(t *testing.T) {
	if err := appErrors.NewStorageError("noop", nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if appErrors.IsStorage(appErrors.ErrInvalidBody) {
		t.Errorf("invalid body must not be a storage error")
	}
}
