package widget

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/goliatone/go-dynamicform/pkg/dom"
	"github.com/goliatone/go-dynamicform/pkg/emitter"
	"github.com/goliatone/go-dynamicform/pkg/model"
	"github.com/goliatone/go-dynamicform/pkg/options"
	"github.com/goliatone/go-dynamicform/pkg/page"
	"github.com/goliatone/go-dynamicform/pkg/render"
	"github.com/goliatone/go-dynamicform/pkg/render/template"
)

// SpanName is the name of the span recorded for every Run.
const SpanName = "dynamicform.widget.run"

const instrumentationName = "github.com/goliatone/go-dynamicform/pkg/widget"

// Span attribute keys.
const (
	AttrContainer  = "dynamicform.container"
	AttrHashVar    = "dynamicform.hash_var"
	AttrRegistered = "dynamicform.registered"
	AttrItems      = "dynamicform.items"
	AttrStripped   = "dynamicform.stripped"
)

// Option customises a Widget.
type Option func(*Widget)

// WithBinder overrides the input naming convention.
func WithBinder(binder model.Binder) Option {
	return func(w *Widget) {
		if binder != nil {
			w.binder = binder
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Widget) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithTracer sets the tracer used for Run spans. The global provider is used
// otherwise.
func WithTracer(tracer trace.Tracer) Option {
	return func(w *Widget) {
		if tracer != nil {
			w.tracer = tracer
		}
	}
}

// WithSanitizer cleans the extracted template before it is serialized.
func WithSanitizer(sanitizer dom.Sanitizer) Option {
	return func(w *Widget) {
		w.sanitizer = sanitizer
	}
}

// WithTemplateRenderer overrides the engine used for the wrapper template.
// The renderer must resolve render.TemplateWrapper.
func WithTemplateRenderer(renderer template.TemplateRenderer) Option {
	return func(w *Widget) {
		w.renderer = renderer
	}
}

// Widget is a validated dynamic form configuration bound to a record.
type Widget struct {
	cfg    model.Config
	record model.Record

	binder    model.Binder
	logger    *slog.Logger
	tracer    trace.Tracer
	sanitizer dom.Sanitizer
	renderer  template.TemplateRenderer
}

// New normalizes and validates cfg. A non-nil error joins one
// *model.ConfigValidationError per violated property.
func New(cfg model.Config, record model.Record, opts ...Option) (*Widget, error) {
	cfg = cfg.Normalize()
	if err := model.Validate(cfg, record); err != nil {
		return nil, err
	}

	w := &Widget{
		cfg:    cfg,
		record: record,
		binder: model.BracketBinder{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer: otel.Tracer(instrumentationName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	return w, nil
}

// Run renders body and returns the wrapped widget markup. Scripts and bundle
// requirements are registered on p, or on the page carried by ctx when p is
// nil. Scripts are emitted only by the first widget registered for the
// container on that page's registry.
func (w *Widget) Run(ctx context.Context, p *page.Page, body BodyFunc) (string, error) {
	ctx, span := w.tracer.Start(ctx, SpanName,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String(AttrContainer, w.cfg.Container)),
	)
	defer span.End()

	out, err := w.run(ctx, span, p, body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	span.SetStatus(codes.Ok, "")
	return out, nil
}

func (w *Widget) run(ctx context.Context, span trace.Span, p *page.Page, body BodyFunc) (string, error) {
	if p == nil {
		var ok bool
		if p, ok = page.FromContext(ctx); !ok {
			return "", errors.New("widget: page is required")
		}
	}
	if body == nil {
		return "", errors.New("widget: body is required")
	}

	rec, err := options.Build(w.cfg, w.record, w.binder)
	if err != nil {
		return "", err
	}

	buf := getBuffer()
	defer putBuffer(buf)

	if err := body(ctx, buf); err != nil {
		return "", fmt.Errorf("widget: render body: %w", err)
	}

	strip := w.cfg.ShouldStripItems(w.record)
	extraction, err := dom.Extract(buf.String(), w.cfg.Item, strip)
	if err != nil {
		return "", fmt.Errorf("widget: extract template: %w", err)
	}

	tmpl := extraction.Template
	if w.sanitizer != nil {
		tmpl = w.sanitizer.Sanitize(tmpl)
	}
	rec = rec.WithTemplate(tmpl)

	reg, err := p.Registry().RegisterIfAbsent(ctx, w.cfg.Container, rec)
	if err != nil {
		return "", fmt.Errorf("widget: %w", err)
	}
	span.SetAttributes(
		attribute.String(AttrHashVar, reg.HashVar),
		attribute.Bool(AttrRegistered, reg.Registered),
		attribute.Int(AttrItems, extraction.Items),
		attribute.Bool(AttrStripped, strip),
	)

	if err := emitter.Emit(p, reg, rec); err != nil {
		return "", fmt.Errorf("widget: emit scripts: %w", err)
	}

	renderer := w.renderer
	if renderer == nil {
		renderer = p.Renderer()
	}
	wrapped, err := renderer.RenderTemplate(render.TemplateWrapper, map[string]any{
		"container": w.cfg.Container,
		"hash_var":  reg.HashVar,
		"content":   extraction.Content,
	})
	if err != nil {
		return "", fmt.Errorf("widget: render wrapper: %w", err)
	}

	w.logger.Debug("dynamicform widget rendered",
		slog.String("page", p.ID()),
		slog.String("container", w.cfg.Container),
		slog.String("hash_var", reg.HashVar),
		slog.Bool("registered", reg.Registered),
		slog.Int("items", extraction.Items),
	)
	return strings.TrimSuffix(wrapped, "\n"), nil
}
