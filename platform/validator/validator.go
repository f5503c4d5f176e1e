// Package validator wraps go-playground validation for struct tags.
// This is part of the platform layer and contains no business logic.
package validator

import "github.com/go-playground/validator/v10"

// Validator wraps the go-playground validator so modules receive it by
// injection rather than through a package global.
type Validator struct {
	v *validator.Validate
}

// New creates a Validator instance.
func New() *Validator {
	return &Validator{v: validator.New()}
}

// Struct validates a struct based on its validation tags.
func (val *Validator) Struct(s interface{}) error {
	return val.v.Struct(s)
}

// Var validates a single value against a tag expression.
func (val *Validator) Var(field interface{}, tag string) error {
	return val.v.Var(field, tag)
}

// RegisterValidation registers a custom validation function.
func (val *Validator) RegisterValidation(tag string, fn validator.Func) error {
	return val.v.RegisterValidation(tag, fn)
}
