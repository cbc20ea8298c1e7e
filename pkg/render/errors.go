package render

import (
	"errors"
	"fmt"
)

// Kind classifies renderer errors so callers can branch on failure cause
// without string matching.
type Kind string

const (
	// KindRenderFailure marks failures of the external rendering step (a
	// missing native dependency, a converter that refused the input). The
	// template itself is not at fault and callers can present a generic
	// "try again later" message.
	KindRenderFailure Kind = "render_failure"
	// KindBadTemplate marks documents the renderer cannot work with at all,
	// such as a nil or empty assembly.
	KindBadTemplate Kind = "bad_template"
)

// Error is the typed failure renderers return.
type Error struct {
	Kind     Kind
	Renderer string
	Err      error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("render: %s: %s", e.Renderer, e.Kind)
	}
	return fmt.Sprintf("render: %s: %s: %v", e.Renderer, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewRenderFailure wraps an external converter failure.
func NewRenderFailure(renderer string, err error) *Error {
	return &Error{Kind: KindRenderFailure, Renderer: renderer, Err: err}
}

// NewBadTemplate wraps an unusable-document failure.
func NewBadTemplate(renderer string, err error) *Error {
	return &Error{Kind: KindBadTemplate, Renderer: renderer, Err: err}
}

// IsRenderFailure reports whether err (or anything it wraps) is an external
// rendering failure.
func IsRenderFailure(err error) bool {
	var re *Error
	return errors.As(err, &re) && re.Kind == KindRenderFailure
}
