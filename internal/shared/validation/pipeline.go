// Package validation runs ordered, field-scoped rule chains over untrusted
// form input and returns the sanitized values together with every failure.
package validation

import (
	"fmt"
	"strings"
)

// FieldError is a single rule failure for a field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
	Value   string `json:"value"`
}

// Errors accumulates failures in field order.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return strings.Join(msgs, "; ")
}

// For returns the failures recorded for field.
func (e Errors) For(field string) Errors {
	var out Errors
	for _, fe := range e {
		if fe.Field == field {
			out = append(out, fe)
		}
	}
	return out
}

// Chain is the ordered rule list for one field.
type Chain struct {
	Field string
	Rules []Rule
}

// Field builds a chain.
func Field(name string, rules ...Rule) Chain {
	return Chain{Field: name, Rules: rules}
}

// Pipeline is a set of field chains evaluated in declaration order.
type Pipeline struct {
	chains []Chain
}

func New(chains ...Chain) *Pipeline {
	return &Pipeline{chains: chains}
}

// Result holds the sanitized values and the accumulated failures.
type Result struct {
	Values map[string]string
	Errors Errors
}

func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

func (r Result) Value(field string) string {
	return r.Values[field]
}

// Run applies every chain to input. A failing rule records an error and the
// chain keeps going, so transformations later in the chain still apply to
// the value echoed back to the user. Other fields are never skipped.
func (p *Pipeline) Run(input map[string]string) Result {
	res := Result{Values: make(map[string]string, len(p.chains))}

	for _, chain := range p.chains {
		value := input[chain.Field]
		for _, rule := range chain.Rules {
			next, err := rule.Apply(value)
			if err != nil {
				res.Errors = append(res.Errors, FieldError{
					Field:   chain.Field,
					Rule:    rule.Name(),
					Message: err.Error(),
					Value:   value,
				})
			}
			value = next
		}
		res.Values[chain.Field] = value
	}

	return res
}
