package utils

import (
	"testing"

	pkgerrors "user-service/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Name  string `json:"name" validate:"notblank"`
	Email string `json:"email" validate:"required,email"`
	Bio   string `json:"bio" validate:"max=5"`
	Nick  string `validate:"notblank"`
}

type contactForm struct {
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

func init() {
	RegisterStructRule("contactpresent", "Invalid contact form", func(sl validator.StructLevel) {
		form := sl.Current().Interface().(contactForm)
		if form.Phone == nil && form.Email == nil {
			sl.ReportError(form.Phone, "contactForm", "contactForm", "contactpresent", "")
		}
	}, contactForm{})
}

func TestValidateStruct_Valid(t *testing.T) {
	form := signupForm{Name: "joao", Email: "joao@silva.com", Bio: "hi", Nick: "jj"}

	assert.NoError(t, ValidateStruct(form))
}

func TestValidateStruct_ReportsEveryFieldInOrder(t *testing.T) {
	form := signupForm{Name: "   ", Email: "", Bio: "too long bio", Nick: ""}

	err := ValidateStruct(form)

	require.Error(t, err)
	appErr := pkgerrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.ErrorTypeValidation, appErr.Type)
	assert.Equal(t, []string{
		"'name' should not be null",
		"'email' should not be null",
		"'bio' must be at most 5 characters",
		"'Nick' should not be null",
	}, appErr.Errors)
}

func TestValidateStruct_StructRule(t *testing.T) {
	err := ValidateStruct(contactForm{})

	require.Error(t, err)
	appErr := pkgerrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, []string{"Invalid contact form"}, appErr.Errors)

	phone := "11999999999"
	assert.NoError(t, ValidateStruct(contactForm{Phone: &phone}))
}
