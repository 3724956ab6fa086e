// Package validate wraps a single shared validator instance so every
// handler applies the same struct tag rules.
package validate

import (
	"github.com/go-playground/validator/v10"
)

var v = validator.New(validator.WithRequiredStructEnabled())

func Struct(s interface{}) error {
	return v.Struct(s)
}
