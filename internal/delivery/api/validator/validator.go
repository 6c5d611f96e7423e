// Package validator plugs go-playground/validator into echo's Context.Validate.
package validator

import (
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/util"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns an echo validator that reports failures as ErrValidationFailed.
func New() *CustomValidator {
	return &CustomValidator{validate: util.NewValidator()}
}

// Validate checks the struct tags of i.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(util.DescribeValidationErrors(err))
	}

	return nil
}
