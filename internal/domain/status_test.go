package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/artpieces/backend/internal/domain"
)

func TestFail_KnownErrors(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{domain.ErrUnauthorized, domain.StatusUnauthorized},
		{domain.ErrForbidden, domain.StatusForbidden},
		{domain.ErrNotFound, domain.StatusNotFound},
		{domain.ErrDuplicate, domain.StatusConflict},
	}
	for _, tc := range tests {
		env := domain.Fail(tc.err)
		if env.Status != tc.wantStatus {
			t.Errorf("Fail(%v): status %d, want %d", tc.err, env.Status, tc.wantStatus)
		}
	}
}

func TestFail_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("fetch target: %w", domain.ErrNotFound)
	env := domain.Fail(wrapped)
	if env.Status != domain.StatusNotFound {
		t.Fatalf("expected wrapped sentinel to map, got %d", env.Status)
	}
}

func TestFail_UnknownError(t *testing.T) {
	env := domain.Fail(errors.New("disk on fire"))
	if env.Status != domain.StatusInternal {
		t.Fatalf("expected internal status, got %d", env.Status)
	}
	if env.Payload != "disk on fire" {
		t.Fatalf("expected the error text as payload, got %v", env.Payload)
	}
}

func TestOK(t *testing.T) {
	env := domain.OK("w1")
	if env.Status != domain.StatusOK || env.Payload != "w1" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}
