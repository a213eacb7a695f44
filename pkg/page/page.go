package page

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-dynamicform/pkg/assets"
	"github.com/goliatone/go-dynamicform/pkg/registry"
	"github.com/goliatone/go-dynamicform/pkg/render"
	"github.com/goliatone/go-dynamicform/pkg/render/template"
	"github.com/goliatone/go-dynamicform/pkg/script"
)

// Option customises a Page.
type Option func(*config)

type config struct {
	id       string
	store    registry.Store
	registry *registry.Registry
	assets   *assets.Registry
	renderer template.TemplateRenderer
	logger   *slog.Logger
}

// WithID overrides the generated page identifier.
func WithID(id string) Option {
	return func(cfg *config) {
		cfg.id = strings.TrimSpace(id)
	}
}

// WithStore backs the page registry with store instead of a fresh
// registry.MemoryStore. Use a shared store to deduplicate across pages.
func WithStore(store registry.Store) Option {
	return func(cfg *config) {
		cfg.store = store
	}
}

// WithRegistry supplies a fully configured registry. It takes precedence over
// WithStore.
func WithRegistry(reg *registry.Registry) Option {
	return func(cfg *config) {
		cfg.registry = reg
	}
}

// WithAssets sets the bundle registry used to resolve script and stylesheet
// URLs.
func WithAssets(reg *assets.Registry) Option {
	return func(cfg *config) {
		cfg.assets = reg
	}
}

// WithRenderer sets the engine used for the head and body-end templates.
func WithRenderer(renderer template.TemplateRenderer) Option {
	return func(cfg *config) {
		cfg.renderer = renderer
	}
}

// WithLogger sets the logger handed to the default registry.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// Page collects scripts and bundle requirements for one rendered document. It
// implements script.Sink and assets.Sink.
type Page struct {
	id       string
	registry *registry.Registry
	scripts  *script.Collector
	assets   *assets.Registry
	renderer template.TemplateRenderer

	mu      sync.Mutex
	bundles []string
}

var (
	_ script.Sink = (*Page)(nil)
	_ assets.Sink = (*Page)(nil)
)

// New constructs a Page. Without options it owns a request-scoped memory
// registry, the default asset bundles and the built-in templates.
func New(opts ...Option) (*Page, error) {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.id == "" {
		cfg.id = uuid.NewString()
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.registry == nil {
		regOpts := []registry.Option{registry.WithLogger(cfg.logger.With("page", cfg.id))}
		if cfg.store != nil {
			regOpts = append(regOpts, registry.WithStore(cfg.store))
		}
		cfg.registry = registry.New(regOpts...)
	}
	if cfg.assets == nil {
		cfg.assets = assets.Defaults("", assets.DefaultBaseURL)
	}
	if cfg.renderer == nil {
		engine, err := render.NewEngine()
		if err != nil {
			return nil, fmt.Errorf("page: template engine: %w", err)
		}
		cfg.renderer = engine
	}

	return &Page{
		id:       cfg.id,
		registry: cfg.registry,
		scripts:  script.NewCollector(),
		assets:   cfg.assets,
		renderer: cfg.renderer,
	}, nil
}

// ID returns the page identifier.
func (p *Page) ID() string { return p.id }

// Registry returns the options registry shared by the widgets on this page.
func (p *Page) Registry() *registry.Registry { return p.registry }

// Scripts returns the collected script statements.
func (p *Page) Scripts() *script.Collector { return p.scripts }

// Renderer returns the template engine the page renders with.
func (p *Page) Renderer() template.TemplateRenderer { return p.renderer }

// RegisterJS adds a statement at pos.
func (p *Page) RegisterJS(pos script.Position, key, js string) {
	p.scripts.RegisterJS(pos, key, js)
}

// RegisterBundle records that the page needs the named asset bundle.
func (p *Page) RegisterBundle(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, existing := range p.bundles {
		if existing == name {
			return
		}
	}
	p.bundles = append(p.bundles, name)
}

// Bundles returns the required bundle names in registration order.
func (p *Page) Bundles() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.bundles...)
}

// RenderHead renders stylesheet links and the head script block.
func (p *Page) RenderHead(out ...io.Writer) (string, error) {
	stylesheets, _, err := p.assets.Assets(p.Bundles()...)
	if err != nil {
		return "", fmt.Errorf("page: resolve assets: %w", err)
	}

	data := map[string]any{
		"stylesheets": stylesheets,
		"head":        p.scripts.Block(script.Head),
	}
	rendered, err := p.renderer.RenderTemplate(render.TemplateHead, data, out...)
	if err != nil {
		return "", fmt.Errorf("page: render head: %w", err)
	}
	return rendered, nil
}

// RenderBodyEnd renders bundle script tags followed by the ready and load
// blocks.
func (p *Page) RenderBodyEnd(out ...io.Writer) (string, error) {
	_, scripts, err := p.assets.Assets(p.Bundles()...)
	if err != nil {
		return "", fmt.Errorf("page: resolve assets: %w", err)
	}

	tags := make([]map[string]any, 0, len(scripts))
	for _, s := range scripts {
		tags = append(tags, map[string]any{
			"src":   s.Src,
			"type":  s.Type,
			"async": s.Async,
			"defer": s.Defer,
		})
	}
	var blocks []string
	for _, pos := range []script.Position{script.Ready, script.Load} {
		if block := p.scripts.Block(pos); block != "" {
			blocks = append(blocks, block)
		}
	}

	data := map[string]any{
		"scripts": tags,
		"blocks":  blocks,
	}
	rendered, err := p.renderer.RenderTemplate(render.TemplateBodyEnd, data, out...)
	if err != nil {
		return "", fmt.Errorf("page: render body end: %w", err)
	}
	return rendered, nil
}

type pageKey struct{}

// WithPage returns a context carrying p.
func WithPage(ctx context.Context, p *Page) context.Context {
	return context.WithValue(ctx, pageKey{}, p)
}

// FromContext returns the Page stored by WithPage.
func FromContext(ctx context.Context) (*Page, bool) {
	if ctx == nil {
		return nil, false
	}
	p, ok := ctx.Value(pageKey{}).(*Page)
	return p, ok && p != nil
}
