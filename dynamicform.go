package dynamicform

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-dynamicform/pkg/config"
	"github.com/goliatone/go-dynamicform/pkg/model"
	"github.com/goliatone/go-dynamicform/pkg/page"
	"github.com/goliatone/go-dynamicform/pkg/render/template"
	"github.com/goliatone/go-dynamicform/pkg/schema"
	"github.com/goliatone/go-dynamicform/pkg/widget"
)

// Config aliases model.Config.
type Config = model.Config

// Record aliases model.Record.
type Record = model.Record

// StaticRecord aliases model.StaticRecord.
type StaticRecord = model.StaticRecord

// BodyFunc aliases widget.BodyFunc.
type BodyFunc = widget.BodyFunc

// Definition aliases config.Definition.
type Definition = config.Definition

// DefaultConfig returns a configuration seeded with the runtime defaults.
func DefaultConfig() Config {
	return model.DefaultConfig()
}

// NewPage constructs the per-request page state.
func NewPage(opts ...page.Option) (*page.Page, error) {
	return page.New(opts...)
}

// NewWidget validates cfg and returns a widget bound to record.
func NewWidget(cfg Config, record Record, opts ...widget.Option) (*widget.Widget, error) {
	return widget.New(cfg, record, opts...)
}

// Result holds the printable parts of a rendered page.
type Result struct {
	// Head goes inside <head>.
	Head string
	// Markup is the wrapped widget.
	Markup string
	// BodyEnd goes right before </body>.
	BodyEnd string
}

// Render renders a single widget on a fresh page and returns the widget markup
// together with the page head and body-end output.
func Render(ctx context.Context, cfg Config, record Record, body BodyFunc, opts ...widget.Option) (Result, error) {
	p, err := page.New()
	if err != nil {
		return Result{}, err
	}
	w, err := widget.New(cfg, record, opts...)
	if err != nil {
		return Result{}, err
	}
	markup, err := w.Run(ctx, p, body)
	if err != nil {
		return Result{}, err
	}
	return Finish(p, markup)
}

// Finish renders the head and body-end output of p around markup.
func Finish(p *page.Page, markup string) (Result, error) {
	if p == nil {
		return Result{}, errors.New("dynamicform: page is nil")
	}
	head, err := p.RenderHead()
	if err != nil {
		return Result{}, err
	}
	bodyEnd, err := p.RenderBodyEnd()
	if err != nil {
		return Result{}, err
	}
	return Result{Head: head, Markup: markup, BodyEnd: bodyEnd}, nil
}

// RenderDefinition runs the widget described by def on p, rendering the body
// from def.Template with renderer. When renderer is nil the page renderer is
// used.
func RenderDefinition(ctx context.Context, p *page.Page, def Definition, renderer template.TemplateRenderer, opts ...widget.Option) (string, error) {
	if p == nil {
		return "", errors.New("dynamicform: page is nil")
	}
	if def.Template == "" {
		return "", fmt.Errorf("dynamicform: definition %q has no body template", def.Name)
	}
	if renderer == nil {
		renderer = p.Renderer()
	}

	w, err := widget.New(def.Config, def.Record, opts...)
	if err != nil {
		return "", fmt.Errorf("dynamicform: definition %q: %w", def.Name, err)
	}
	return w.Run(ctx, p, widget.BodyFromTemplate(renderer, def.Template, def.Data))
}

// LoadDefinitions parses widget definitions from fsys.
func LoadDefinitions(fsys fs.FS) (*config.Store, error) {
	return config.LoadFS(fsys)
}

// FieldsFromOpenAPI derives a field list from an OpenAPI component schema.
func FieldsFromOpenAPI(ctx context.Context, data []byte, component, property string) ([]string, error) {
	return schema.FieldsFromOpenAPI(ctx, data, component, property)
}
