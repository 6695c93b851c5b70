package manualform

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/signin/internal/view/dto/signin"
	"github.com/nfrund/signin/internal/view/formui"
)

// SignInForm renders the form with plain inputs. Each input's event wiring,
// error styling and error span are spelled out here rather than derived.
// Inputs survive swaps (hx-preserve) and the password is never echoed back.
func SignInForm(data signin.PageData) g.Node {
	s := data.State
	canSubmit := s.Dirty && s.IsValid
	showError := func(name string) bool { return s.Errors[name] != "" && s.Touched[name] }

	input := func(name, inputType string) g.Node {
		return h.Input(
			h.Type(inputType),
			h.Name(name),
			h.ID(name),
			g.If(inputType != "password", h.Value(s.Values[name])),
			g.Attr("hx-preserve", "true"),
			hx.Post(data.EventURL),
			hx.Trigger("input changed delay:250ms, blur"),
			hx.Target("#"+data.FormID),
			hx.Swap("outerHTML"),
			hx.Sync("closest form:replace"),
			hx.Vals(`js:{"event": event.type, "field": "`+name+`"}`),
		)
	}
	row := func(name string, children ...g.Node) g.Node {
		class := "form-row"
		if showError(name) {
			class += " input-error"
		}
		return h.Div(h.Class(class), g.Group(children))
	}
	errorSpan := func(name string) g.Node {
		return g.If(showError(name), h.Span(h.Class("error"), g.Text(s.Errors[name])))
	}

	return h.Form(
		h.ID(data.FormID),
		h.Method("post"),
		h.Action(data.SubmitURL),
		hx.Post(data.SubmitURL),
		hx.Target("this"),
		hx.Swap("outerHTML"),
		hx.Sync("this:replace"),
		g.Attr("data-status", string(s.Status)),
		formui.TouchedInputs(s),
		row("email",
			h.Label(h.For("email"), g.Text("Email")),
			input("email", "email"),
			errorSpan("email"),
		),
		row("password",
			h.Label(h.For("password"), g.Text("Password")),
			input("password", "password"),
			errorSpan("password"),
		),
		h.Button(
			h.Type("submit"),
			g.If(!canSubmit, h.Class("disabled-btn")),
			g.If(!canSubmit, h.Disabled()),
			g.Text("Sign In"),
		),
	)
}
