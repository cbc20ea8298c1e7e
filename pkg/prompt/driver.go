// Package prompt collects template variable bindings interactively. The
// terminal interaction sits behind PromptDriver so collection logic is
// testable without a TTY.
package prompt

import (
	"context"
	"errors"
)

// ErrAborted is returned when the user interrupts the prompt flow.
var ErrAborted = errors.New("prompt: aborted by user")

// InputConfig configures a free-text prompt.
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
}

// ConfirmConfig configures a yes/no prompt.
type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// SelectConfig configures a single or multi-select prompt.
type SelectConfig struct {
	Message      string
	Options      []string
	DefaultIndex int
	Defaults     []int // indices into Options, used by MultiSelect
	Help         string
	PageSize     int
}

// PromptDriver abstracts the terminal so binding collection can be tested
// and callers can swap implementations.
type PromptDriver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	Select(ctx context.Context, cfg SelectConfig) (int, error)
	MultiSelect(ctx context.Context, cfg SelectConfig) ([]int, error)
	Info(ctx context.Context, msg string) error
}
