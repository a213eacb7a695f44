package registry

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/goliatone/go-dynamicform/pkg/model"
	"github.com/goliatone/go-dynamicform/pkg/options"
)

// Registration is the outcome of RegisterIfAbsent.
type Registration struct {
	// HashVar is the resolved variable name for the container. It equals
	// Computed only when this call registered the container.
	HashVar string
	// Computed is the name derived from this call's own payload.
	Computed string
	// Registered is true for the first registration of the container.
	Registered bool
	// Encoded is this call's serialized payload.
	Encoded []byte
}

// Option configures a Registry.
type Option func(*Registry)

// WithStore swaps the backing store.
func WithStore(store Store) Option {
	return func(r *Registry) {
		if store != nil {
			r.store = store
		}
	}
}

// WithLogger sets the logger used to report shadowed configurations.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Registry hashes option records and records the first one per container.
type Registry struct {
	store  Store
	logger *slog.Logger
}

// New returns a Registry backed by a fresh MemoryStore unless overridden.
func New(opts ...Option) *Registry {
	r := &Registry{
		store:  NewMemoryStore(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Store exposes the backing store.
func (r *Registry) Store() Store {
	return r.store
}

// RegisterIfAbsent encodes rec, derives its hash variable and records it for
// container unless the container was registered before.
func (r *Registry) RegisterIfAbsent(ctx context.Context, container string, rec options.Record) (Registration, error) {
	if !model.ValidContainer(container) {
		return Registration{}, &model.ConfigValidationError{Property: "container", Reason: "allowed only alphanumeric characters plus underscore: [A-Za-z0-9_]"}
	}

	encoded, err := options.Encode(rec)
	if err != nil {
		return Registration{}, err
	}
	computed := HashVarName(encoded)

	stored, added, err := r.store.Add(ctx, container, computed)
	if err != nil {
		return Registration{}, fmt.Errorf("registry: register %q: %w", container, err)
	}

	if !added && stored != computed {
		r.logger.Warn("dynamicform container already registered with a different configuration",
			slog.String("container", container),
			slog.String("stored", stored),
			slog.String("computed", computed),
		)
	}

	return Registration{
		HashVar:    stored,
		Computed:   computed,
		Registered: added,
		Encoded:    encoded,
	}, nil
}
