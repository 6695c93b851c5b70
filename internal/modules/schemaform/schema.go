package schemaform

import (
	"github.com/nfrund/signin/internal/domain"
	"github.com/nfrund/signin/internal/form/schema"
)

// SignInSchema is the declarative rule set of the schema form. The email
// shape rule deliberately keeps the engine's default message.
var SignInSchema = schema.MustObject(
	schema.String(domain.FieldEmail).Email().Required("Email is required"),
	schema.String(domain.FieldPassword).
		Required("Password is required").
		Min(4, "Password is too short - should be 4 chars minimum"),
)
