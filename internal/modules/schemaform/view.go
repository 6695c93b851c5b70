package schemaform

import (
	g "maragu.dev/gomponents"

	"github.com/nfrund/signin/internal/view/dto/signin"
	"github.com/nfrund/signin/internal/view/formui"
)

// SignInForm renders the form through schema-aware components.
func SignInForm(data signin.PageData) g.Node {
	b := formui.Binding{
		State:     data.State,
		ID:        data.FormID,
		SubmitURL: data.SubmitURL,
		EventURL:  data.EventURL,
	}
	return b.Form(
		b.Row("email",
			formui.Label("email", "email"),
			b.Field("email", "email", "email"),
			b.ErrorMessage("email"),
		),
		b.Row("password",
			formui.Label("password", "password"),
			b.Field("password", "password", "password"),
			b.ErrorMessage("password"),
		),
		b.SubmitButton("Sign In"),
	)
}
