package handlers

import (
	"budget-engine/internal/validation"

	"github.com/labstack/echo/v4"
)

// RequestValidator runs the shared request rules for c.Validate
type RequestValidator struct {
	rules *validation.Validator
}

// NewValidator returns the echo.Validator installed on the server
func NewValidator() echo.Validator {
	return &RequestValidator{rules: validation.GetValidator()}
}

func (v *RequestValidator) Validate(i interface{}) error {
	return v.rules.Struct(i)
}
