// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "orla/internal/domain/errors"

	playgroundvalidator "github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator instance so echo's c.Validate works on
// request DTOs tagged with `validate`.
type echoValidator struct {
	validate *playgroundvalidator.Validate
}

// New creates the echo validator.
func New() *echoValidator {
	return &echoValidator{
		validate: playgroundvalidator.New(playgroundvalidator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Failures surface as the application's
// validation error so the error handler renders them uniformly.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
