// Package template declares the template-engine seam renderers depend on so
// render logic stays testable without binding to a concrete engine.
package template

import "io"

// TemplateRenderer is the engine contract. RenderTemplate resolves a named
// template from the engine's file set; RenderString parses inline content.
// Render dispatches between the two based on whether the argument looks like
// template content or a template name.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
