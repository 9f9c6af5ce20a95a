package template

import (
	"io"
)

// TemplateRenderer is the engine contract shared by the components. It
// matches the github.com/goliatone/go-template engine surface so either can be
// plugged in.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
