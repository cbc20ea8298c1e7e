package prompt

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-docgen/pkg/template"
)

const dateLayout = "2006-01-02"

// CollectBindings walks the declared variables in order and asks the driver
// for a value for each one. Optional variables answered with an empty value
// are left unbound so placeholder passthrough still applies downstream.
func CollectBindings(ctx context.Context, driver PromptDriver, variables []template.Variable) (template.Bindings, error) {
	bindings := make(template.Bindings, len(variables))
	for _, v := range variables {
		value, ok, err := collectOne(ctx, driver, v)
		if err != nil {
			return nil, fmt.Errorf("collect variable %q: %w", v.ID, err)
		}
		if ok {
			bindings[v.ID] = value
		}
	}
	return bindings, nil
}

func collectOne(ctx context.Context, driver PromptDriver, v template.Variable) (any, bool, error) {
	message := v.Nombre
	if message == "" {
		message = v.ID
	}

	switch v.Tipo {
	case template.VariableBoolean:
		value, err := driver.Confirm(ctx, ConfirmConfig{
			Message: message,
			Default: defaultBool(v.ValorDefecto),
			Help:    v.Descripcion,
		})
		if err != nil {
			return nil, false, err
		}
		return value, true, nil

	case template.VariableList:
		if len(v.Opciones) == 0 {
			return collectText(ctx, driver, v, message, nil)
		}
		index, err := driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      v.Opciones,
			DefaultIndex: defaultIndex(v.Opciones, v.ValorDefecto),
			Help:         v.Descripcion,
		})
		if err != nil {
			return nil, false, err
		}
		if index < 0 || index >= len(v.Opciones) {
			return nil, false, nil
		}
		return v.Opciones[index], true, nil

	case template.VariableNumber:
		raw, ok, err := collectText(ctx, driver, v, message, func(s string) error {
			if s == "" && !v.Requerida {
				return nil
			}
			if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
				return fmt.Errorf("introduce un número válido")
			}
			return nil
		})
		if err != nil || !ok {
			return nil, false, err
		}
		number, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, false, fmt.Errorf("parse number: %w", err)
		}
		return number, true, nil

	case template.VariableDate:
		value, ok, err := collectText(ctx, driver, v, message, func(s string) error {
			if s == "" && !v.Requerida {
				return nil
			}
			if _, err := time.Parse(dateLayout, strings.TrimSpace(s)); err != nil {
				return fmt.Errorf("introduce una fecha AAAA-MM-DD")
			}
			return nil
		})
		if err != nil || !ok {
			return nil, false, err
		}
		return value, true, nil

	default:
		return collectText(ctx, driver, v, message, nil)
	}
}

func collectText(ctx context.Context, driver PromptDriver, v template.Variable, message string, validator func(string) error) (string, bool, error) {
	if v.Requerida {
		inner := validator
		validator = func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("el campo es obligatorio")
			}
			if inner != nil {
				return inner(s)
			}
			return nil
		}
	}
	value, err := driver.Input(ctx, InputConfig{
		Message:   message,
		Default:   defaultString(v.ValorDefecto),
		Help:      v.Descripcion,
		Validator: validator,
	})
	if err != nil {
		return "", false, err
	}
	if strings.TrimSpace(value) == "" {
		return "", false, nil
	}
	return value, true, nil
}

func defaultString(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}

func defaultBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		parsed, err := strconv.ParseBool(v)
		return err == nil && parsed
	default:
		return false
	}
}

func defaultIndex(options []string, value any) int {
	want := defaultString(value)
	if want == "" {
		return 0
	}
	for i, option := range options {
		if option == want {
			return i
		}
	}
	return 0
}
