// Package condition decides section inclusion during document generation.
// Sections with no conditions are always included; otherwise every predicate
// must hold (logical AND, no OR or grouping).
package condition

import (
	"github.com/goliatone/go-docgen/pkg/template"
)

// Evaluator determines whether a section should be included in the final
// document given the bindings supplied for a generation call.
type Evaluator interface {
	Evaluate(section template.Section, bindings template.Bindings) (bool, error)
}

// EvaluatorFunc adapts a function into an Evaluator.
type EvaluatorFunc func(section template.Section, bindings template.Bindings) (bool, error)

// Evaluate delegates to the underlying function.
func (fn EvaluatorFunc) Evaluate(section template.Section, bindings template.Bindings) (bool, error) {
	return fn(section, bindings)
}
