package condition

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-docgen/pkg/template"
)

// ErrUnknownOperator is returned in strict mode when a condition references an
// operator outside the recognized set. The default evaluator treats such
// conditions as false instead, so documents keep generating when a template
// carries a predicate this version does not understand.
var ErrUnknownOperator = errors.New("condition: unknown operator")

// Option customises evaluator behaviour.
type Option func(*Basic)

// Strict makes unknown operators surface ErrUnknownOperator instead of the
// permissive treat-as-false fallback.
func Strict() Option {
	return func(e *Basic) {
		e.strict = true
	}
}

// Basic is a small, dependency-free condition evaluator.
//
// Semantics per operator:
//   - `==` / `!=`: both operands normalized to string form before comparing,
//     so `true` matches "true" and 15 matches "15".
//   - `>` / `<`: numeric coercion of both sides; when either side is not a
//     number the comparison is false.
//   - `contains` / `not_contains`: substring test over the string form of the
//     bound value.
//
// A missing binding evaluates as the empty string, never as an error.
type Basic struct {
	strict bool
}

// New constructs an evaluator applying any provided options.
func New(options ...Option) *Basic {
	e := &Basic{}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Ensure Basic implements the Evaluator contract.
var _ Evaluator = (*Basic)(nil)

// Evaluate reports whether the section passes all of its conditions against
// the supplied bindings. Sections without conditions always pass.
func (e *Basic) Evaluate(section template.Section, bindings template.Bindings) (bool, error) {
	for _, cond := range section.Condiciones {
		ok, err := e.check(cond, bindings)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func (e *Basic) check(cond template.Condition, bindings template.Bindings) (bool, error) {
	value := bindings[cond.Variable]

	switch cond.Operador {
	case template.OpEquals:
		return coerceString(value) == cond.Valor, nil
	case template.OpNotEquals:
		return coerceString(value) != cond.Valor, nil
	case template.OpGreaterThan:
		bound, okBound := coerceNumber(value)
		want, okWant := coerceNumber(cond.Valor)
		return okBound && okWant && bound > want, nil
	case template.OpLessThan:
		bound, okBound := coerceNumber(value)
		want, okWant := coerceNumber(cond.Valor)
		return okBound && okWant && bound < want, nil
	case template.OpContains:
		return strings.Contains(coerceString(value), cond.Valor), nil
	case template.OpNotContains:
		return !strings.Contains(coerceString(value), cond.Valor), nil
	default:
		if e.strict {
			return false, fmt.Errorf("%w: %q on variable %q", ErrUnknownOperator, cond.Operador, cond.Variable)
		}
		return false, nil
	}
}

func coerceString(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprint(value)
	}
}

func coerceNumber(value any) (float64, bool) {
	if value == nil {
		return 0, false
	}
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
