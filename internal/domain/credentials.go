package domain

import "github.com/nfrund/signin/internal/form"

// Field names shared by both sign-in forms.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

// Credentials is the value set of a sign-in form.
type Credentials struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// InitialCredentials returns the values a sign-in form mounts with.
func InitialCredentials() form.Values {
	return Credentials{}.Values()
}

// Values converts the credentials to container values.
func (c Credentials) Values() form.Values {
	return form.Values{
		FieldEmail:    c.Email,
		FieldPassword: c.Password,
	}
}

// CredentialsFrom reads credentials back out of container values.
func CredentialsFrom(v form.Values) Credentials {
	return Credentials{
		Email:    v[FieldEmail],
		Password: v[FieldPassword],
	}
}
