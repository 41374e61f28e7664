// Package validator plugs go-playground/validator into echo.
package validator

import (
	"strings"

	domainerrors "storefront/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator with the storefront's custom tags registered.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("listing_tag", validateListingTag)

	return &CustomValidator{validate: validate}
}

// Validate validates a bound request and reports failures as VALIDATION_FAILED.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		var fields []string
		if validationErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range validationErrs {
				fields = append(fields, fieldErr.Namespace()+" failed "+fieldErr.Tag())
			}
		} else {
			fields = append(fields, err.Error())
		}

		return domainerrors.ErrValidationFailed.WithDetails(strings.Join(fields, "; "))
	}

	return nil
}

// validateListingTag accepts the listing tabs and an empty value.
func validateListingTag(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "all", "new", "featured", "sale", "trending":
		return true
	default:
		return false
	}
}
