package registry

import "github.com/nfrund/signin/internal/form"

// ValidatorKey returns the key under which a form variant registers its validator.
func ValidatorKey(variant string) Key[form.Validator] {
	return Key[form.Validator](variant + ".validator")
}
