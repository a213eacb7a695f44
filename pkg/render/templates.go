// Package render ships the built-in templates used to wrap widget markup and
// to print page script blocks.
package render

import (
	"embed"
	"io/fs"

	"github.com/goliatone/go-dynamicform/pkg/render/template/gotemplate"
)

// Built-in template names.
const (
	TemplateWrapper = "wrapper"
	TemplateHead    = "head"
	TemplateBodyEnd = "body_end"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS returns the built-in templates rooted at the templates folder.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// NewEngine returns a pongo2 engine that resolves the built-in templates after
// any sources supplied through opts, so callers can override them by name.
func NewEngine(opts ...gotemplate.Option) (*gotemplate.Engine, error) {
	all := make([]gotemplate.Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, gotemplate.WithFS(TemplatesFS()))
	return gotemplate.New(all...)
}
