package manualform_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/signin/internal/domain"
	"github.com/nfrund/signin/internal/handlers"
	"github.com/nfrund/signin/internal/modules/manualform"
	"github.com/nfrund/signin/internal/registry"
	"github.com/nfrund/signin/internal/rendering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu     sync.Mutex
	labels []string
	values []any
}

func (s *recordingSink) Inspect(_ context.Context, label string, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.labels = append(s.labels, label)
	s.values = append(s.values, v)
}

func setup(t *testing.T) (*echo.Echo, *recordingSink) {
	t.Helper()
	e := echo.New()
	e.Validator = handlers.NewValidator()
	rec := &recordingSink{}

	m := manualform.New(manualform.Dependencies{
		Renderer: rendering.NewUniversalRenderer(),
		Sink:     rec,
	})
	reg := registry.New()
	require.NoError(t, m.Register(reg))
	require.NoError(t, m.Boot(context.Background(), e.Group(""), reg))
	return e, rec
}

func post(e *echo.Echo, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestManualForm_Scenarios(t *testing.T) {
	e, sink := setup(t)

	t.Run("untouched form shows no errors and a disabled button", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/manual", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "<h1>Sign in to continue</h1>")
		assert.Contains(t, body, `<label for="email">Email</label>`)
		assert.Contains(t, body, `type="password"`)
		assert.NotContains(t, body, `class="error"`)
		assert.Contains(t, body, `<button type="submit" class="disabled-btn" disabled>Sign In</button>`)
	})

	t.Run("blurring an empty email shows the required message", func(t *testing.T) {
		rec := post(e, "/manual/event", url.Values{
			"email": {""}, "password": {""}, "event": {"blur"}, "field": {"email"},
		})

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `<span class="error">Email is required</span>`)
		assert.NotContains(t, body, "Password is required", "password is untouched")
		assert.Contains(t, body, `<input type="hidden" name="touched" value="email">`)
		assert.Contains(t, body, `<div class="form-row input-error"><label for="email">`)
		assert.NotContains(t, body, "<h1>", "htmx requests get the form fragment")
	})

	t.Run("short password keeps submit disabled", func(t *testing.T) {
		rec := post(e, "/manual/event", url.Values{
			"email": {"a@b.com"}, "password": {"abc"}, "touched": {"email", "password"},
			"event": {"input"}, "field": {"password"},
		})

		body := rec.Body.String()
		assert.Contains(t, body, `<span class="error">Password too short</span>`)
		assert.NotContains(t, body, "Email is required")
		assert.NotContains(t, body, "Invalid Email")
		assert.Contains(t, body, "disabled-btn")
	})

	t.Run("valid values enable submit", func(t *testing.T) {
		rec := post(e, "/manual/event", url.Values{
			"email": {"a@b.com"}, "password": {"abcd"}, "touched": {"email"},
			"event": {"input"}, "field": {"password"},
		})

		body := rec.Body.String()
		assert.NotContains(t, body, `class="error"`)
		assert.Contains(t, body, `<button type="submit">Sign In</button>`)
		assert.Contains(t, body, `value="a@b.com"`)
		assert.NotContains(t, body, "abcd", "the password is never written back")
		assert.Contains(t, body, `hx-preserve="true"`)
	})

	t.Run("valid submit reaches the sink", func(t *testing.T) {
		rec := post(e, "/manual", url.Values{"email": {"a@b.com"}, "password": {"abcd"}})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `data-status="submitted"`)
		require.Len(t, sink.values, 1)
		assert.Equal(t, handlers.SubmittedLabel, sink.labels[0])
		assert.Equal(t, domain.Credentials{Email: "a@b.com", Password: "abcd"}, sink.values[0])
	})

	t.Run("bad email blocks submit", func(t *testing.T) {
		rec := post(e, "/manual", url.Values{"email": {"bad-email"}, "password": {"abcd"}})

		body := rec.Body.String()
		assert.Contains(t, body, `<span class="error">Invalid Email</span>`)
		assert.Contains(t, body, "disabled-btn")
		assert.Len(t, sink.values, 1, "invalid submit does not reach the sink")
	})
}

func TestManualForm_BadEvents(t *testing.T) {
	e, _ := setup(t)

	rec := post(e, "/manual/event", url.Values{"event": {"click"}, "field": {"email"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(e, "/manual/event", url.Values{"event": {"blur"}, "field": {"username"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
