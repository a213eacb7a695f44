package gotemplate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-dynamicform/pkg/model"
	"github.com/goliatone/go-dynamicform/pkg/render/template"
)

// TemplateExt is appended to template names that carry no extension.
const TemplateExt = ".tpl"

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	sources []fs.FS
}

// WithFS adds an fs.FS to the template search path. Sources are consulted in
// the order they were added, so earlier sources override later ones.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.sources = append(cfg.sources, files)
		}
	}
}

// Engine implements template.TemplateRenderer with a pongo2 template set
// shared by widget bodies and page script blocks.
type Engine struct {
	mu sync.RWMutex

	set   *pongo2.TemplateSet
	cache map[string]*pongo2.Template
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New constructs an Engine. At least one source is required.
func New(options ...Option) (*Engine, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}
	if len(cfg.sources) == 0 {
		return nil, errors.New("gotemplate: at least one template source is required")
	}

	loaders := make([]pongo2.TemplateLoader, 0, len(cfg.sources))
	for _, files := range cfg.sources {
		loaders = append(loaders, pongo2.NewFSLoader(files))
	}

	registerDefaultFilters()
	return &Engine{
		set:   pongo2.NewSet(model.WidgetName, loaders...),
		cache: make(map[string]*pongo2.Template),
	}, nil
}

// Render treats name as inline template content when it contains template
// tags, otherwise as a template name.
func (e *Engine) Render(name string, data any, out ...io.Writer) (string, error) {
	if isTemplateContent(name) {
		return e.RenderString(name, data, out...)
	}
	return e.RenderTemplate(name, data, out...)
}

// RenderTemplate renders a named template from the configured sources.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("gotemplate: engine is nil")
	}
	templatePath := name
	if path.Ext(templatePath) == "" {
		templatePath += TemplateExt
	}

	tmpl, err := e.getTemplate(templatePath)
	if err != nil {
		return "", err
	}
	rendered, err := e.execute(tmpl, data)
	if err != nil {
		return "", fmt.Errorf("gotemplate: execute template %q: %w", templatePath, err)
	}
	return rendered, writeAll(rendered, out)
}

// RenderString renders inline template content.
func (e *Engine) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("gotemplate: engine is nil")
	}

	tmpl, err := e.set.FromString(templateContent)
	if err != nil {
		return "", fmt.Errorf("gotemplate: parse template string: %w", err)
	}
	rendered, err := e.execute(tmpl, data)
	if err != nil {
		return "", fmt.Errorf("gotemplate: execute template string: %w", err)
	}
	return rendered, writeAll(rendered, out)
}

func (e *Engine) execute(tmpl *pongo2.Template, data any) (string, error) {
	viewContext, err := convertToContext(data)
	if err != nil {
		return "", fmt.Errorf("convert data: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(viewContext, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (e *Engine) getTemplate(key string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.cache[key]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.cache[key]; ok {
		return tmpl, nil
	}

	tmpl, err := e.set.FromFile(key)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: load template %q: %w", key, err)
	}

	e.cache[key] = tmpl
	return tmpl, nil
}

func writeAll(rendered string, out []io.Writer) error {
	for _, w := range out {
		if w == nil {
			continue
		}
		if _, err := io.WriteString(w, rendered); err != nil {
			return err
		}
	}
	return nil
}

func isTemplateContent(s string) bool {
	return strings.Contains(s, "{{") || strings.Contains(s, "{%")
}

// convertToContext turns data into a pongo2 context. Structs are flattened
// through their JSON form so templates address them by JSON field names.
func convertToContext(data any) (pongo2.Context, error) {
	var in map[string]any
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		in = v
	case map[string]any:
		in = v
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &in); err != nil {
			return nil, err
		}
	}

	out := make(pongo2.Context, len(in))
	for key, value := range in {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		out[key] = convertValue(value)
	}
	return out, nil
}

func convertValue(value any) any {
	switch v := value.(type) {
	case nil, string, bool, int, int64, float64, *pongo2.Value:
		return v
	case pongo2.Context:
		return convertMap(v)
	case map[string]any:
		return convertMap(v)
	case []any:
		out := make([]any, 0, len(v))
		for _, item := range v {
			out = append(out, convertValue(item))
		}
		return out
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return value
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return value
	}
	return convertValue(decoded)
}

func convertMap(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for key, value := range in {
		out[key] = convertValue(value)
	}
	return out
}
