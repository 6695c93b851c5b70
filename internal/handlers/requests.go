package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/nfrund/signin/internal/domain"
	"github.com/nfrund/signin/internal/form"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// SignInRequest is the DTO posted by both sign-in forms. Every request carries
// the full value set and the touched flags so the form state can be rebuilt.
type SignInRequest struct {
	Email    string   `form:"email"`
	Password string   `form:"password"`
	Touched  []string `form:"touched"`
}

// Values returns the posted values in container form.
func (r SignInRequest) Values() form.Values {
	return domain.Credentials{Email: r.Email, Password: r.Password}.Values()
}

// FieldEventRequest is posted by an input on change or blur.
type FieldEventRequest struct {
	Email    string   `form:"email"`
	Password string   `form:"password"`
	Touched  []string `form:"touched"`
	Event    string   `form:"event" validate:"required,oneof=input change blur focusout"`
	Field    string   `form:"field" validate:"required"`
}

// SignIn returns the value part of the event.
func (r FieldEventRequest) SignIn() SignInRequest {
	return SignInRequest{Email: r.Email, Password: r.Password, Touched: r.Touched}
}

// IsBlur reports whether the event marks the field as touched.
func (r FieldEventRequest) IsBlur() bool {
	return r.Event == "blur" || r.Event == "focusout"
}
