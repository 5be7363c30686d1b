package handlers

import (
	"github.com/labstack/echo/v4"

	"financehub/internal/validation"
)

// CustomValidator implements echo.Validator interface
type CustomValidator struct{}

// NewValidator creates a new custom validator backed by the shared
// validation rules (category, source, iso_date, month).
func NewValidator() echo.Validator {
	return &CustomValidator{}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	return validation.GetValidator().GetValidate().Struct(i)
}
