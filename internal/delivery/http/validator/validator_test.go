package validator

import (
	"testing"

	domainerrors "mise/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Ignored  string `json:"-" validate:"omitempty"`
}

func TestValidate_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&signupForm{
		Name:     "Jane Doe",
		Email:    "jane@cafe.com",
		Password: "secret1",
	})

	assert.NoError(t, err)
}

func TestValidate_ReportsEveryFieldByJSONName(t *testing.T) {
	v := New()

	err := v.Validate(&signupForm{Email: "not-an-address", Password: "abc"})
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))

	byField := make(map[string]string, len(validationErr.Fields()))
	for _, f := range validationErr.Fields() {
		byField[f.Field] = f.Reason
	}

	assert.Equal(t, map[string]string{
		"name":     "name is required",
		"email":    "email must be a valid address",
		"password": "password must be at least 6 characters",
	}, byField)
}
