package validation

import (
	"errors"
	"strings"
	"unicode/utf8"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
)

// Registered rule names
const (
	RuleTrim     = "trim"
	RuleRequired = "required"
	RuleLength   = "length"
	RuleEscape   = "escape"
)

// Rule is one step of a field chain. Apply returns the (possibly
// transformed) value, or an error whose message is shown to the user.
type Rule interface {
	Name() string
	Apply(value string) (string, error)
}

type trimRule struct{}

// Trim strips leading and trailing whitespace.
func Trim() Rule { return trimRule{} }

func (trimRule) Name() string { return RuleTrim }

func (trimRule) Apply(value string) (string, error) {
	return strings.TrimSpace(value), nil
}

type requiredRule struct {
	message string
}

// Required rejects empty values.
func Required(message string) Rule { return requiredRule{message: message} }

func (r requiredRule) Name() string { return RuleRequired }

func (r requiredRule) Apply(value string) (string, error) {
	if err := ozzo.Validate(value, ozzo.Required.Error(r.message)); err != nil {
		return value, err
	}
	return value, nil
}

// LengthConstraint is an inclusive rune-count bound. The same value is
// used by the input pipeline and by record validation before writes.
type LengthConstraint struct {
	Min        int
	Max        int
	MinMessage string
	MaxMessage string
}

// Check returns an error carrying MinMessage or MaxMessage when value is out of range.
// An empty value fails the minimum when Min > 0.
func (c LengthConstraint) Check(value string) error {
	n := utf8.RuneCountInString(value)
	if n == 0 && c.Min > 0 {
		return errors.New(c.MinMessage)
	}
	if err := ozzo.Validate(value, ozzo.RuneLength(c.Min, c.Max)); err == nil {
		return nil
	}
	if n < c.Min {
		return errors.New(c.MinMessage)
	}
	return errors.New(c.MaxMessage)
}

// OzzoRule adapts the constraint for ozzo.ValidateStruct.
func (c LengthConstraint) OzzoRule() ozzo.Rule {
	return ozzo.By(func(value interface{}) error {
		s, _ := value.(string)
		return c.Check(s)
	})
}

type lengthRule struct {
	constraint LengthConstraint
}

// Length enforces a LengthConstraint.
func Length(c LengthConstraint) Rule { return lengthRule{constraint: c} }

func (r lengthRule) Name() string { return RuleLength }

func (r lengthRule) Apply(value string) (string, error) {
	return value, r.constraint.Check(value)
}

// Besides the usual markup characters, slashes and backticks are escaped too.
var markupEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#x27;",
	"<", "&lt;",
	">", "&gt;",
	"/", "&#x2F;",
	`\`, "&#x5C;",
	"`", "&#96;",
)

type escapeRule struct{}

// Escape replaces markup characters with HTML entities.
func Escape() Rule { return escapeRule{} }

func (escapeRule) Name() string { return RuleEscape }

func (escapeRule) Apply(value string) (string, error) {
	return markupEscaper.Replace(value), nil
}
