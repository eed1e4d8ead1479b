package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Username string `validate:"required,min=3,max=20"`
	Email    string `validate:"required,email"`
	Status   string `validate:"omitempty,oneof=Requested Approved"`
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Status:   "Approved",
	})
	assert.NoError(t, err)
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{
		Username: "al",
		Email:    "not-an-email",
		Status:   "Pending",
	})
	require.Error(t, err)

	errs := cv.FormatValidationErrors(err)
	assert.Equal(t, "Username must be at least 3 characters", errs["Username"])
	assert.Equal(t, "Email must be a valid email address", errs["Email"])
	assert.Equal(t, "Status must be one of: Requested Approved", errs["Status"])
}

func TestFormatValidationErrorsRequired(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{})
	require.Error(t, err)

	errs := cv.FormatValidationErrors(err)
	assert.Equal(t, "Username is required", errs["Username"])
	assert.Equal(t, "Email is required", errs["Email"])
	assert.NotContains(t, errs, "Status")
}
