// Package template defines the seam between document renderers and the
// underlying page-template engine, mirroring the github.com/goliatone/go-template
// contract so engines can be swapped without touching renderer logic.
package template

import "io"

// TemplateRenderer renders named templates or inline template content into
// strings, optionally streaming the result to the supplied writers.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
