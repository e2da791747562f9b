package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/jobhive/jobhive/internal/apperr"
)

func TestErrCompanyExistsNamesBothConstraints(t *testing.T) {
	err := errCompanyExists("acme", "Acme Inc")
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("error kind = %v, want validation", err)
	}
	// A duplicate create can trip either the handle PK or the name
	// unique index; the message must not blame only one field.
	msg := err.Error()
	if !strings.Contains(msg, "acme") || !strings.Contains(msg, "Acme Inc") {
		t.Errorf("message %q should mention both handle and name", msg)
	}
}
