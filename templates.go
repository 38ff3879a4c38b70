package formtag

import (
	"embed"
	"io/fs"

	"github.com/goliatone/go-formtag/pkg/render/template/pongo"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// EmbeddedTemplates exposes the bundled page templates, including the demo
// form used by cmd/formtag-demo and the HTTP example.
func EmbeddedTemplates() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// NewTemplateEngine returns a pongo2 engine over the bundled templates with
// the form builders of h available under "form". Additional options may add
// template sources or globals.
func NewTemplateEngine(h *Helper, options ...pongo.Option) (*pongo.Engine, error) {
	opts := append([]pongo.Option{
		pongo.WithFS(EmbeddedTemplates()),
		pongo.WithHelper(h),
	}, options...)
	return pongo.New(opts...)
}
