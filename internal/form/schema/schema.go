// Package schema is a declarative validation engine for string form fields.
//
// A schema is a list of field shapes. Each shape may be required and carries
// an ordered list of rules:
//
//	schema.MustObject(
//		schema.String("email").Email().Required("Email is required"),
//		schema.String("password").Required("Password is required").Min(4),
//	)
//
// Rule checks are delegated to go-playground/validator. Rules without an
// explicit message fall back to the engine's default locale, which names the
// field by its path.
package schema

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/nfrund/signin/internal/form"
)

// ErrInvalidSchema is wrapped by every error produced while building a schema.
var ErrInvalidSchema = errors.New("invalid schema")

// RuleKind names a field constraint.
type RuleKind string

const (
	RuleRequired RuleKind = "required"
	RuleEmail    RuleKind = "email"
	RuleMin      RuleKind = "min"
	RuleMax      RuleKind = "max"
	RuleMatches  RuleKind = "matches"
)

// Rule is one constraint on a field. Param holds the length bound for min and
// max, or the pattern for matches.
type Rule struct {
	Kind    RuleKind
	Param   string
	Message string

	limit   int
	pattern *regexp.Regexp
}

// StringSchema describes a single string field. Methods mutate and return the
// receiver so shapes can be declared in one expression.
type StringSchema struct {
	name        string
	required    bool
	requiredMsg string
	rules       []Rule
	errs        []error
}

// String starts a string field shape for the named field.
func String(name string) *StringSchema {
	return &StringSchema{name: name}
}

// Name returns the field path.
func (s *StringSchema) Name() string { return s.name }

// Required marks the field as required. An empty message selects the default.
func (s *StringSchema) Required(message ...string) *StringSchema {
	s.required = true
	s.requiredMsg = first(message)
	return s
}

// Email requires the value to be shaped like an email address.
func (s *StringSchema) Email(message ...string) *StringSchema {
	s.rules = append(s.rules, Rule{Kind: RuleEmail, Message: first(message)})
	return s
}

// Min requires at least n characters, counted as form.Length does.
func (s *StringSchema) Min(n int, message ...string) *StringSchema {
	return s.bound(RuleMin, n, message)
}

// Max allows at most n characters.
func (s *StringSchema) Max(n int, message ...string) *StringSchema {
	return s.bound(RuleMax, n, message)
}

// Matches requires the value to match pattern.
func (s *StringSchema) Matches(pattern string, message ...string) *StringSchema {
	re, err := regexp.Compile(pattern)
	if err != nil {
		s.errs = append(s.errs, fmt.Errorf("%w: field %q: matches: %v", ErrInvalidSchema, s.name, err))
		return s
	}
	s.rules = append(s.rules, Rule{Kind: RuleMatches, Param: pattern, Message: first(message), pattern: re})
	return s
}

func (s *StringSchema) bound(kind RuleKind, n int, message []string) *StringSchema {
	if n < 0 {
		s.errs = append(s.errs, fmt.Errorf("%w: field %q: %s must not be negative", ErrInvalidSchema, s.name, kind))
		return s
	}
	s.rules = append(s.rules, Rule{Kind: kind, Param: strconv.Itoa(n), Message: first(message), limit: n})
	return s
}

// Rules returns the field's rules, including required, in evaluation order.
func (s *StringSchema) Rules() []Rule {
	out := make([]Rule, 0, len(s.rules)+1)
	if s.required {
		out = append(out, Rule{Kind: RuleRequired, Message: s.requiredMsg})
	}
	return append(out, s.rules...)
}

// Schema is a compiled object shape. It satisfies form.Validator.
type Schema struct {
	fields   []*StringSchema
	validate *validator.Validate
	locale   *Locale
}

// Object compiles the field shapes into a Schema.
func Object(fields ...*StringSchema) (*Schema, error) {
	seen := make(map[string]bool, len(fields))
	var errs []error
	for _, f := range fields {
		if f.name == "" {
			errs = append(errs, fmt.Errorf("%w: field without a name", ErrInvalidSchema))
			continue
		}
		if seen[f.name] {
			errs = append(errs, fmt.Errorf("%w: duplicate field %q", ErrInvalidSchema, f.name))
		}
		seen[f.name] = true
		errs = append(errs, f.errs...)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	locale, err := DefaultLocale()
	if err != nil {
		return nil, err
	}
	v, err := newValidate()
	if err != nil {
		return nil, err
	}
	return &Schema{
		fields:   fields,
		validate: v,
		locale:   locale,
	}, nil
}

// Length bounds are checked in UTF-16 code units (see form.Length) rather
// than validator's built-in min/max, which count runes.
const (
	tagMinLength = "minlen"
	tagMaxLength = "maxlen"
)

func newValidate() (*validator.Validate, error) {
	v := validator.New()
	bounds := map[string]func(n, limit int) bool{
		tagMinLength: func(n, limit int) bool { return n >= limit },
		tagMaxLength: func(n, limit int) bool { return n <= limit },
	}
	for tag, ok := range bounds {
		if err := v.RegisterValidation(tag, lengthBound(ok)); err != nil {
			return nil, fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return v, nil
}

func lengthBound(ok func(n, limit int) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return ok(form.Length(fl.Field().String()), limit)
	}
}

// MustObject is like Object but panics on error. It is meant for package-level
// schema declarations.
func MustObject(fields ...*StringSchema) *Schema {
	s, err := Object(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Fields returns the field shapes in declaration order.
func (s *Schema) Fields() []*StringSchema {
	out := make([]*StringSchema, len(s.fields))
	copy(out, s.fields)
	return out
}

// Validate evaluates every field independently. Within a field an empty value
// only reports the required rule; otherwise the first failing rule wins.
func (s *Schema) Validate(_ context.Context, values form.Values) form.Errors {
	errs := form.Errors{}
	for _, f := range s.fields {
		if msg, ok := s.check(f, values[f.name]); !ok {
			errs[f.name] = msg
		}
	}
	return errs
}

func (s *Schema) check(f *StringSchema, value string) (string, bool) {
	if value == "" {
		if f.required {
			return s.message(f.name, Rule{Kind: RuleRequired, Message: f.requiredMsg}), false
		}
		return "", true
	}
	for _, r := range f.rules {
		if !s.passes(r, value) {
			return s.message(f.name, r), false
		}
	}
	return "", true
}

func (s *Schema) passes(r Rule, value string) bool {
	switch r.Kind {
	case RuleEmail:
		return s.validate.Var(value, "email") == nil
	case RuleMin:
		return s.validate.Var(value, tagMinLength+"="+r.Param) == nil
	case RuleMax:
		return s.validate.Var(value, tagMaxLength+"="+r.Param) == nil
	case RuleMatches:
		return r.pattern.MatchString(value)
	}
	return true
}

func (s *Schema) message(path string, r Rule) string {
	if r.Message != "" {
		return r.Message
	}
	return s.locale.Format(r.Kind, path, r.Param)
}

func first(message []string) string {
	if len(message) > 0 {
		return message[0]
	}
	return ""
}
