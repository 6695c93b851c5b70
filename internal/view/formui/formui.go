// Package formui provides form components bound to a form.State. Fields report
// change and blur events over htmx and the whole form is swapped with the
// response. Inputs are kept across swaps with hx-preserve, so the browser stays
// the source of truth for what the user is typing; everything else is
// re-rendered from the state. ErrorMessage renders only when its field is
// touched and invalid.
package formui

import (
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/signin/internal/form"
)

// Field and event parameter names posted back by the browser.
const (
	ParamTouched = "touched"
	ParamEvent   = "event"
	ParamField   = "field"
)

// hx-sync strategies. Field events abort an older in-flight event for the same
// form, and a submit aborts whatever event is still running.
const (
	SyncForm  = "this:replace"
	SyncField = "closest form:replace"
)

var title = cases.Title(language.English)

// Binding ties components to one form state.
type Binding struct {
	State     form.State
	ID        string
	SubmitURL string
	EventURL  string
}

// Form renders the form element. It posts to SubmitURL and replaces itself
// with the response. The touched flags travel with every request as hidden
// inputs.
func (b Binding) Form(children ...g.Node) g.Node {
	return h.Form(
		h.ID(b.ID),
		h.Method("post"),
		h.Action(b.SubmitURL),
		hx.Post(b.SubmitURL),
		hx.Target("this"),
		hx.Swap("outerHTML"),
		hx.Sync(SyncForm),
		g.Attr("data-status", string(b.State.Status)),
		TouchedInputs(b.State),
		g.Group(children),
	)
}

// Field renders an input that posts its change and blur events to EventURL.
// The value is only written for the first render of non-password inputs; after
// that hx-preserve keeps the live element, keystrokes made while a request is
// in flight included. A newer event replaces an in-flight one.
func (b Binding) Field(name, inputType, id string) g.Node {
	return h.Input(
		h.Type(inputType),
		h.Name(name),
		h.ID(id),
		g.If(inputType != "password", h.Value(b.State.Values[name])),
		Preserve(),
		hx.Post(b.EventURL),
		hx.Trigger("input changed delay:250ms, blur"),
		hx.Target("#"+b.ID),
		hx.Swap("outerHTML"),
		hx.Sync(SyncField),
		hx.Vals(`js:{"`+ParamEvent+`": event.type, "`+ParamField+`": "`+name+`"}`),
	)
}

// Row wraps a field's label, input and error. It carries the input-error class
// while the field's error is visible, since the preserved input itself is
// never re-rendered.
func (b Binding) Row(name string, children ...g.Node) g.Node {
	class := "form-row"
	if b.State.ShowError(name) {
		class += " input-error"
	}
	return h.Div(h.Class(class), g.Group(children))
}

// ErrorMessage renders the field's error in a span.error, or nothing when the
// field is untouched or valid.
func (b Binding) ErrorMessage(name string) g.Node {
	if !b.State.ShowError(name) {
		return nil
	}
	return h.Span(h.Class("error"), g.Text(b.State.Errors[name]))
}

// SubmitButton renders the submit button, disabled unless the form is dirty
// and valid.
func (b Binding) SubmitButton(text string) g.Node {
	enabled := b.State.CanSubmit()
	return h.Button(
		h.Type("submit"),
		g.If(!enabled, h.Class("disabled-btn")),
		g.If(!enabled, h.Disabled()),
		g.Text(text),
	)
}

// Label renders a label for the field, titled from its name.
func Label(name, forID string) g.Node {
	return h.Label(h.For(forID), g.Text(title.String(name)))
}

// Preserve marks an element to survive htmx swaps of its form. The element
// needs a stable id.
func Preserve() g.Node {
	return g.Attr("hx-preserve", "true")
}

// TouchedInputs renders one hidden input per touched field.
func TouchedInputs(s form.State) g.Node {
	names := make([]string, 0, len(s.Touched))
	for name, touched := range s.Touched {
		if touched {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return g.Map(names, func(name string) g.Node {
		return h.Input(h.Type("hidden"), h.Name(ParamTouched), h.Value(name))
	})
}
