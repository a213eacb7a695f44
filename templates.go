package dynamicform

import (
	"io/fs"

	"github.com/goliatone/go-dynamicform/pkg/config"
	"github.com/goliatone/go-dynamicform/pkg/render"
)

// EmbeddedTemplates exposes the built-in wrapper and page templates so callers
// can copy or override them.
func EmbeddedTemplates() fs.FS {
	return render.TemplatesFS()
}

// ExampleDefinitions exposes the bundled example widget definitions and their
// body templates.
func ExampleDefinitions() fs.FS {
	return config.EmbeddedFS()
}
