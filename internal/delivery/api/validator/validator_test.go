package validator

import (
	"testing"

	domainerrors "wishlist/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerBody struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type linkBody struct {
	Title string `json:"title" validate:"required"`
	URL   string `json:"url" validate:"omitempty,url"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   any
		message string
	}{
		{name: "valid", input: &registerBody{Name: "a", Email: "b", Password: "c"}},
		{name: "one missing", input: &registerBody{Name: "a", Email: "b"}, message: "password is required"},
		{name: "two missing", input: &registerBody{Name: "a"}, message: "email and password are required"},
		{name: "all missing", input: &registerBody{}, message: "name, email and password are required"},
		{name: "invalid url", input: &linkBody{Title: "t", URL: "not a url"}, message: "invalid url"},
		{name: "mixed", input: &linkBody{URL: "nope"}, message: "title is required; invalid url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if tt.message == "" {
				assert.NoError(t, err)

				return
			}

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, 400, appErr.HTTPCode())
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
			assert.Equal(t, tt.message, appErr.Message())
		})
	}
}
