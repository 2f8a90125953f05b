package domain_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/domain"
)

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	err := &domain.ValidationError{
		Fields:   map[string]string{"title": domain.MsgRequired, "slug": domain.MsgRequired},
		Messages: []string{"Excerpt must be shorter than Content"},
	}

	want := "validation error: slug: is required; title: is required; Excerpt must be shorter than Content"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Error("errors.Is(err, ErrValidation) = false, want true")
	}
}
