// Package form implements a form-state container. It owns the current values,
// touched flags and validation errors of a form and re-renders subscribers on
// every state change.
package form

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownField is returned when an event names a field the form was not
// configured with.
var ErrUnknownField = errors.New("unknown form field")

// Values maps a field name to its current input value.
type Values map[string]string

// Errors maps a field name to its validation message. An absent key means the
// field is valid.
type Errors map[string]string

// Touched records which fields have received and lost focus at least once.
type Touched map[string]bool

// Validator produces the validation errors for a set of values.
type Validator interface {
	Validate(ctx context.Context, values Values) Errors
}

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc func(values Values) Errors

// Validate implements Validator.
func (f ValidatorFunc) Validate(_ context.Context, values Values) Errors {
	return f(values)
}

// SubmitFunc is called with a copy of the values once a submit passes validation.
type SubmitFunc func(ctx context.Context, values Values) error

// RenderFunc receives a fresh snapshot after every state change.
type RenderFunc func(State)

// Status is the lifecycle position of a form.
type Status string

const (
	StatusPristine  Status = "pristine"
	StatusInvalid   Status = "invalid"
	StatusValid     Status = "valid"
	StatusSubmitted Status = "submitted"
)

// Config configures a new Form.
type Config struct {
	InitialValues Values
	Validator     Validator
	OnSubmit      SubmitFunc
}

// State is an immutable snapshot of a form.
type State struct {
	Values      Values
	Errors      Errors
	Touched     Touched
	Dirty       bool
	IsValid     bool
	SubmitCount int
	Status      Status
}

// ShowError reports whether the error for name should be visible.
func (s State) ShowError(name string) bool {
	return s.Touched[name] && s.Errors[name] != ""
}

// CanSubmit reports whether the submit control should be enabled.
func (s State) CanSubmit() bool {
	return s.Dirty && s.IsValid
}

// Form is the form-state container.
type Form struct {
	mu          sync.Mutex
	fields      []string
	initial     Values
	values      Values
	touched     Touched
	errors      Errors
	validator   Validator
	onSubmit    SubmitFunc
	submitCount int
	submitted   bool
	subscribers []RenderFunc
}

// New creates a form with the configured initial values. Errors are computed
// immediately so IsValid is meaningful before the first event.
func New(ctx context.Context, cfg Config) *Form {
	f := &Form{
		initial:   cfg.InitialValues.clone(),
		values:    cfg.InitialValues.clone(),
		touched:   Touched{},
		validator: cfg.Validator,
		onSubmit:  cfg.OnSubmit,
	}
	for name := range cfg.InitialValues {
		f.fields = append(f.fields, name)
	}
	sort.Strings(f.fields)
	f.validate(ctx)
	return f
}

// Fields returns the configured field names in sorted order.
func (f *Form) Fields() []string {
	out := make([]string, len(f.fields))
	copy(out, f.fields)
	return out
}

// Restore replaces the current values and touched flags, typically with the
// state posted back by a browser, and revalidates. Unknown names are ignored.
func (f *Form) Restore(ctx context.Context, values Values, touched []string) {
	f.mu.Lock()
	for name, v := range values {
		if f.known(name) {
			f.values[name] = v
		}
	}
	for _, name := range touched {
		if f.known(name) {
			f.touched[name] = true
		}
	}
	f.validate(ctx)
	f.mu.Unlock()
	f.notify()
}

// HandleChange sets the value of a field and revalidates.
func (f *Form) HandleChange(ctx context.Context, name, value string) error {
	f.mu.Lock()
	if !f.known(name) {
		f.mu.Unlock()
		return fmt.Errorf("change %q: %w", name, ErrUnknownField)
	}
	f.values[name] = value
	f.submitted = false
	f.validate(ctx)
	f.mu.Unlock()
	f.notify()
	return nil
}

// HandleBlur marks a field as touched and revalidates.
func (f *Form) HandleBlur(ctx context.Context, name string) error {
	f.mu.Lock()
	if !f.known(name) {
		f.mu.Unlock()
		return fmt.Errorf("blur %q: %w", name, ErrUnknownField)
	}
	f.touched[name] = true
	f.validate(ctx)
	f.mu.Unlock()
	f.notify()
	return nil
}

// HandleSubmit touches every field, validates, and calls OnSubmit only when
// there are no errors. It reports whether OnSubmit ran.
func (f *Form) HandleSubmit(ctx context.Context) (bool, error) {
	f.mu.Lock()
	for _, name := range f.fields {
		f.touched[name] = true
	}
	f.submitCount++
	f.validate(ctx)
	valid := len(f.errors) == 0
	values := f.values.clone()
	f.mu.Unlock()

	if !valid {
		f.notify()
		return false, nil
	}
	if f.onSubmit != nil {
		if err := f.onSubmit(ctx, values); err != nil {
			f.notify()
			return false, fmt.Errorf("submit: %w", err)
		}
	}

	f.mu.Lock()
	f.submitted = true
	f.mu.Unlock()
	f.notify()
	return true, nil
}

// Subscribe registers fn to be called after each state change. It is also
// called once immediately with the current state.
func (f *Form) Subscribe(fn RenderFunc) {
	f.mu.Lock()
	f.subscribers = append(f.subscribers, fn)
	f.mu.Unlock()
	fn(f.State())
}

// State returns a snapshot of the form.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshot()
}

func (f *Form) snapshot() State {
	s := State{
		Values:      f.values.clone(),
		Errors:      f.errors.clone(),
		Touched:     f.touched.clone(),
		Dirty:       f.dirty(),
		IsValid:     len(f.errors) == 0,
		SubmitCount: f.submitCount,
	}
	switch {
	case f.submitted:
		s.Status = StatusSubmitted
	case !s.Dirty && f.submitCount == 0:
		s.Status = StatusPristine
	case s.IsValid:
		s.Status = StatusValid
	default:
		s.Status = StatusInvalid
	}
	return s
}

func (f *Form) notify() {
	f.mu.Lock()
	subs := make([]RenderFunc, len(f.subscribers))
	copy(subs, f.subscribers)
	s := f.snapshot()
	f.mu.Unlock()
	for _, fn := range subs {
		fn(s)
	}
}

// validate must be called with mu held.
func (f *Form) validate(ctx context.Context) {
	if f.validator == nil {
		f.errors = Errors{}
		return
	}
	errs := f.validator.Validate(ctx, f.values.clone())
	if errs == nil {
		errs = Errors{}
	}
	f.errors = errs
}

func (f *Form) dirty() bool {
	for name, v := range f.values {
		if f.initial[name] != v {
			return true
		}
	}
	return false
}

func (f *Form) known(name string) bool {
	_, ok := f.initial[name]
	return ok
}

func (v Values) clone() Values {
	out := make(Values, len(v))
	for k, s := range v {
		out[k] = s
	}
	return out
}

func (e Errors) clone() Errors {
	out := make(Errors, len(e))
	for k, s := range e {
		out[k] = s
	}
	return out
}

func (t Touched) clone() Touched {
	out := make(Touched, len(t))
	for k, b := range t {
		out[k] = b
	}
	return out
}
