package condition

import (
	"errors"
	"testing"

	"github.com/goliatone/go-docgen/pkg/template"
)

func section(conds ...template.Condition) template.Section {
	return template.Section{ID: "s", Titulo: "s", Condiciones: conds}
}

func TestEvaluateNoConditions(t *testing.T) {
	t.Parallel()

	eval := New()
	ok, err := eval.Evaluate(section(), nil)
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected section without conditions to pass")
	}
}

func TestEvaluateStringEquality(t *testing.T) {
	t.Parallel()

	eval := New()
	tests := []struct {
		name     string
		cond     template.Condition
		bindings template.Bindings
		want     bool
	}{
		{
			name:     "string match",
			cond:     template.Condition{Variable: "competiciones", Operador: template.OpEquals, Valor: "true"},
			bindings: template.Bindings{"competiciones": "true"},
			want:     true,
		},
		{
			name:     "bool coerced to string form",
			cond:     template.Condition{Variable: "competiciones", Operador: template.OpEquals, Valor: "true"},
			bindings: template.Bindings{"competiciones": true},
			want:     true,
		},
		{
			name:     "missing binding compares as empty string",
			cond:     template.Condition{Variable: "x", Operador: template.OpEquals, Valor: "v"},
			bindings: template.Bindings{},
			want:     false,
		},
		{
			name:     "missing binding equals empty literal",
			cond:     template.Condition{Variable: "x", Operador: template.OpEquals, Valor: ""},
			bindings: template.Bindings{},
			want:     true,
		},
		{
			name:     "not equals",
			cond:     template.Condition{Variable: "tipo", Operador: template.OpNotEquals, Valor: "deportivo"},
			bindings: template.Bindings{"tipo": "educativo"},
			want:     true,
		},
		{
			name:     "number coerced for equality",
			cond:     template.Condition{Variable: "plazas", Operador: template.OpEquals, Valor: "15"},
			bindings: template.Bindings{"plazas": 15},
			want:     true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := eval.Evaluate(section(tc.cond), tc.bindings)
			if err != nil {
				t.Fatalf("Evaluate returned error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestEvaluateNumericComparison(t *testing.T) {
	t.Parallel()

	eval := New()
	tests := []struct {
		name     string
		cond     template.Condition
		bindings template.Bindings
		want     bool
	}{
		{
			name:     "int greater than literal",
			cond:     template.Condition{Variable: "edad", Operador: template.OpGreaterThan, Valor: "12"},
			bindings: template.Bindings{"edad": 15},
			want:     true,
		},
		{
			name:     "non numeric binding is false",
			cond:     template.Condition{Variable: "edad", Operador: template.OpGreaterThan, Valor: "12"},
			bindings: template.Bindings{"edad": "niño"},
			want:     false,
		},
		{
			name:     "numeric string less than",
			cond:     template.Condition{Variable: "menores", Operador: template.OpLessThan, Valor: "50"},
			bindings: template.Bindings{"menores": "20"},
			want:     true,
		},
		{
			name:     "missing binding never compares numerically",
			cond:     template.Condition{Variable: "edad", Operador: template.OpLessThan, Valor: "12"},
			bindings: template.Bindings{},
			want:     false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := eval.Evaluate(section(tc.cond), tc.bindings)
			if err != nil {
				t.Fatalf("Evaluate returned error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestEvaluateContains(t *testing.T) {
	t.Parallel()

	eval := New()

	ok, err := eval.Evaluate(section(template.Condition{
		Variable: "actividades", Operador: template.OpContains, Valor: "natacion",
	}), template.Bindings{"actividades": "futbol,natacion,baloncesto"})
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected contains to match")
	}

	ok, err = eval.Evaluate(section(template.Condition{
		Variable: "actividades", Operador: template.OpNotContains, Valor: "escalada",
	}), template.Bindings{"actividades": "futbol,natacion"})
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected not_contains to match")
	}
}

func TestEvaluateAllConditionsMustPass(t *testing.T) {
	t.Parallel()

	eval := New()
	s := section(
		template.Condition{Variable: "competiciones", Operador: template.OpEquals, Valor: "true"},
		template.Condition{Variable: "edad", Operador: template.OpGreaterThan, Valor: "12"},
	)

	ok, err := eval.Evaluate(s, template.Bindings{"competiciones": "true", "edad": 15})
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected both conditions to pass")
	}

	ok, err = eval.Evaluate(s, template.Bindings{"competiciones": "true", "edad": 10})
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if ok {
		t.Fatalf("expected AND semantics to reject when one condition fails")
	}
}

func TestEvaluateUnknownOperator(t *testing.T) {
	t.Parallel()

	s := section(template.Condition{Variable: "x", Operador: "between", Valor: "1"})

	ok, err := New().Evaluate(s, template.Bindings{"x": "1"})
	if err != nil {
		t.Fatalf("permissive evaluator returned error: %v", err)
	}
	if ok {
		t.Fatalf("expected unknown operator to evaluate false")
	}

	_, err = New(Strict()).Evaluate(s, template.Bindings{"x": "1"})
	if !errors.Is(err, ErrUnknownOperator) {
		t.Fatalf("expected ErrUnknownOperator, got %v", err)
	}
}
