package template

import (
	"io"

	"github.com/goliatone/go-formtag/pkg/markup"
)

// TemplateRenderer is the seam between page templates and form markup.
// Implementations render named templates or inline template content, writing
// the result to every supplied writer as well as returning it.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}

// FormRenderer renders templates with form builders bound to a Helper.
type FormRenderer interface {
	TemplateRenderer
	RenderWith(h *markup.Helper, name string, data any, out ...io.Writer) (string, error)
}
