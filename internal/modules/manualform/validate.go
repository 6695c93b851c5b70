package manualform

import (
	"regexp"

	"github.com/nfrund/signin/internal/domain"
	"github.com/nfrund/signin/internal/form"
)

// RE2's \s is ASCII only; \v, \p{Z} and U+FEFF are whitespace to browsers too.
var emailPattern = regexp.MustCompile(`(?i)^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]{2,}$`)

// Validate is the hand-written rule set of the manual form. Each field is
// checked independently.
func Validate(values form.Values) form.Errors {
	errs := form.Errors{}

	email := values[domain.FieldEmail]
	if email == "" {
		errs[domain.FieldEmail] = "Email is required"
	} else if !emailPattern.MatchString(email) {
		errs[domain.FieldEmail] = "Invalid Email"
	}

	password := values[domain.FieldPassword]
	if password == "" {
		errs[domain.FieldPassword] = "Password is required"
	} else if form.Length(password) < 4 {
		errs[domain.FieldPassword] = "Password too short"
	}

	return errs
}

// Validator is Validate as a form.Validator.
var Validator form.Validator = form.ValidatorFunc(Validate)
