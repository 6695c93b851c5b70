package schema

import (
	"fmt"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
)

// defaultMessages is the engine's built-in English locale. {0} is the field
// path and {1} the rule parameter.
var defaultMessages = map[RuleKind]string{
	RuleRequired: "{0} is a required field",
	RuleEmail:    "{0} must be a valid email",
	RuleMin:      "{0} must be at least {1} characters",
	RuleMax:      "{0} must be at most {1} characters",
	RuleMatches:  `{0} must match the following: "{1}"`,
}

// Locale renders default rule messages.
type Locale struct {
	trans ut.Translator
}

// DefaultLocale returns the built-in English locale.
func DefaultLocale() (*Locale, error) {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	for kind, text := range defaultMessages {
		if err := trans.Add(string(kind), text, false); err != nil {
			return nil, fmt.Errorf("register %s message: %w", kind, err)
		}
	}
	return &Locale{trans: trans}, nil
}

// Format renders the default message for kind.
func (l *Locale) Format(kind RuleKind, path, param string) string {
	msg, err := l.trans.T(string(kind), path, param)
	if err != nil {
		return fmt.Sprintf("%s is invalid", path)
	}
	return msg
}
