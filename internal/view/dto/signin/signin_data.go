package signin

import "github.com/nfrund/signin/internal/form"

// PageData is the view model shared by both sign-in form templates.
type PageData struct {
	// FormID is the DOM id of the form element, the htmx swap target.
	FormID string
	// SubmitURL receives the form submission.
	SubmitURL string
	// EventURL receives change and blur events.
	EventURL string
	State    form.State
}
