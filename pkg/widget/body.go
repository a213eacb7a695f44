package widget

import (
	"context"
	"errors"
	"io"

	"github.com/goliatone/go-dynamicform/pkg/render/template"
)

// BodyFunc writes the widget body, usually the form inputs for one or more
// items, to w.
type BodyFunc func(ctx context.Context, w io.Writer) error

// BodyFromTemplate renders the named template with data as the widget body.
func BodyFromTemplate(renderer template.TemplateRenderer, name string, data any) BodyFunc {
	return func(_ context.Context, w io.Writer) error {
		if renderer == nil {
			return errors.New("widget: template renderer is nil")
		}
		_, err := renderer.Render(name, data, w)
		return err
	}
}

// BodyFromString writes markup verbatim.
func BodyFromString(markup string) BodyFunc {
	return func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, markup)
		return err
	}
}
