package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	formdec "github.com/go-playground/form/v4"
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/signin/internal/domain"
	"github.com/nfrund/signin/internal/form"
	"github.com/nfrund/signin/internal/middleware"
	"github.com/nfrund/signin/internal/rendering"
	"github.com/nfrund/signin/internal/sink"
	"github.com/nfrund/signin/internal/view"
	"github.com/nfrund/signin/internal/view/dto/signin"
)

// SubmittedLabel is the sink label for accepted sign-in submissions.
const SubmittedLabel = "sign-in form submitted"

// FormTemplate renders the form element of a sign-in variant.
type FormTemplate func(data signin.PageData) g.Node

// FormOptions configures a FormHandler.
type FormOptions struct {
	// Name identifies the variant, e.g. "manual". It prefixes the form's DOM id.
	Name string
	// Title is the page title.
	Title string
	// BasePath is the mount path, e.g. "/manual".
	BasePath  string
	Validator form.Validator
	Template  FormTemplate
	Sink      sink.Sink
	Renderer  rendering.Renderer
}

// FormHandler serves one sign-in form variant. Each request rebuilds the form
// container from the posted values and touched flags, applies one event and
// re-renders the template from the resulting state.
type FormHandler struct {
	opts    FormOptions
	decoder *formdec.Decoder
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(opts FormOptions) *FormHandler {
	return &FormHandler{
		opts:    opts,
		decoder: formdec.NewDecoder(),
	}
}

// Mount registers the variant's routes on router. Middleware is applied to the
// submit route only.
func (fh *FormHandler) Mount(router *echo.Group, submitMiddleware ...echo.MiddlewareFunc) {
	grp := router.Group(fh.opts.BasePath)
	grp.GET("", fh.Get)
	grp.POST("", fh.Submit, submitMiddleware...)
	grp.POST("/event", fh.Event)
}

// Get renders the pristine form (GET /<variant>).
func (fh *FormHandler) Get(c echo.Context) error {
	f := fh.newForm(c.Request().Context())
	return fh.render(c, f.State())
}

// Event applies a change or blur event and returns the re-rendered form
// (POST /<variant>/event).
func (fh *FormHandler) Event(c echo.Context) error {
	var req FieldEventRequest
	if err := fh.bind(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	values := req.SignIn().Values()
	f := fh.newForm(ctx)
	f.Restore(ctx, values, req.Touched)

	var err error
	if req.IsBlur() {
		err = f.HandleBlur(ctx, req.Field)
	} else {
		err = f.HandleChange(ctx, req.Field, values[req.Field])
	}
	if errors.Is(err, form.ErrUnknownField) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return err
	}
	return fh.render(c, f.State())
}

// Submit handles the form submission (POST /<variant>). Values reach the sink
// only when validation passes; otherwise the form comes back with every field
// touched.
func (fh *FormHandler) Submit(c echo.Context) error {
	var req SignInRequest
	if err := fh.bind(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	f := fh.newForm(ctx)
	f.Restore(ctx, req.Values(), req.Touched)

	ran, err := f.HandleSubmit(ctx)
	if err != nil {
		return fmt.Errorf("%s submit: %w", fh.opts.Name, err)
	}
	middleware.FromContext(ctx).Debug("Sign-in form submitted",
		"variant", fh.opts.Name, "accepted", ran, "errors", len(f.State().Errors))
	return fh.render(c, f.State())
}

func (fh *FormHandler) newForm(ctx context.Context) *form.Form {
	return form.New(ctx, form.Config{
		InitialValues: domain.InitialCredentials(),
		Validator:     fh.opts.Validator,
		OnSubmit:      fh.submit,
	})
}

func (fh *FormHandler) submit(ctx context.Context, values form.Values) error {
	fh.opts.Sink.Inspect(ctx, SubmittedLabel, domain.CredentialsFrom(values))
	return nil
}

func (fh *FormHandler) bind(c echo.Context, dst interface{}) error {
	params, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form body")
	}
	if err := fh.decoder.Decode(dst, params); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// render writes just the form for htmx requests and the full page otherwise.
func (fh *FormHandler) render(c echo.Context, state form.State) error {
	data := signin.PageData{
		FormID:    fh.opts.Name + "-signin",
		SubmitURL: fh.opts.BasePath,
		EventURL:  fh.opts.BasePath + "/event",
		State:     state,
	}
	formNode := fh.opts.Template(data)
	if c.Request().Header.Get("HX-Request") == "true" {
		return fh.opts.Renderer.RenderPage(c, http.StatusOK, formNode)
	}
	return fh.opts.Renderer.RenderPage(c, http.StatusOK, view.Base(fh.opts.Title, signInPage(formNode)))
}

// signInPage is the container shared by both variants.
func signInPage(formNode g.Node) g.Node {
	return h.Div(
		h.Class("container"),
		h.H1(g.Text("Sign in to continue")),
		formNode,
	)
}
