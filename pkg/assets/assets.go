// Package assets describes the script and stylesheet bundles a dynamic form
// page depends on and resolves them in dependency order.
package assets

import (
	"fmt"
	"path"
	"slices"
	"strings"
	"sync"
)

// Bundle names known to the default registry.
const (
	BundleJQuery      = "jquery"
	BundleYii         = "yii"
	BundleActiveForm  = "yii.activeForm"
	BundleDynamicForm = "dynamicform"
)

// EnvDev selects unminified runtime scripts.
const EnvDev = "dev"

// DefaultBaseURL is where bundles are published unless overridden.
const DefaultBaseURL = "/assets"

// Script describes a script tag emitted for a bundle.
type Script struct {
	Src   string
	Type  string
	Async bool
	Defer bool
}

// Bundle groups files published under a common base URL.
type Bundle struct {
	Name        string
	BaseURL     string
	Scripts     []Script
	Stylesheets []string
	Depends     []string
}

// Sink receives bundle requirements from components that render markup.
type Sink interface {
	RegisterBundle(name string)
}

// Registry tracks bundles keyed by name.
type Registry struct {
	mu      sync.RWMutex
	bundles map[string]Bundle
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{bundles: make(map[string]Bundle)}
}

// Defaults returns a registry with the bundles required by the dynamic form
// runtime. In the dev environment the unminified runtime is served.
func Defaults(env, baseURL string) *Registry {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	runtime := "yii2-dynamic-form.min.js"
	if env == EnvDev {
		runtime = "yii2-dynamic-form.js"
	}

	reg := New()
	reg.MustRegister(Bundle{
		Name:    BundleJQuery,
		BaseURL: path.Join(baseURL, "jquery"),
		Scripts: []Script{{Src: "jquery.js"}},
	})
	reg.MustRegister(Bundle{
		Name:    BundleYii,
		BaseURL: path.Join(baseURL, "yii"),
		Scripts: []Script{{Src: "yii.js"}},
		Depends: []string{BundleJQuery},
	})
	reg.MustRegister(Bundle{
		Name:    BundleActiveForm,
		BaseURL: path.Join(baseURL, "yii"),
		Scripts: []Script{{Src: "yii.activeForm.js"}},
		Depends: []string{BundleYii},
	})
	reg.MustRegister(Bundle{
		Name:    BundleDynamicForm,
		BaseURL: path.Join(baseURL, "dynamicform"),
		Scripts: []Script{{Src: runtime}},
		Depends: []string{BundleJQuery, BundleActiveForm},
	})
	return reg
}

// Register adds or replaces a bundle.
func (r *Registry) Register(bundle Bundle) error {
	name := normalize(bundle.Name)
	if name == "" {
		return fmt.Errorf("assets: bundle name is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	bundle.Name = name
	r.bundles[name] = cloneBundle(bundle)
	return nil
}

// MustRegister panics when Register fails.
func (r *Registry) MustRegister(bundle Bundle) {
	if err := r.Register(bundle); err != nil {
		panic(err)
	}
}

// Bundle fetches a bundle by name.
func (r *Registry) Bundle(name string) (Bundle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	bundle, ok := r.bundles[normalize(name)]
	if !ok {
		return Bundle{}, false
	}
	return cloneBundle(bundle), true
}

// Names returns the registered bundle names sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.bundles))
	for name := range r.bundles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Resolve returns the requested bundles and their dependencies, each
// dependency ahead of its dependents. Unknown names and cycles are errors.
func (r *Registry) Resolve(names ...string) ([]Bundle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	const (
		visiting = 1
		done     = 2
	)
	state := make(map[string]int)
	var ordered []Bundle

	var visit func(name string, chain []string) error
	visit = func(name string, chain []string) error {
		name = normalize(name)
		switch state[name] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("assets: dependency cycle %s", strings.Join(append(chain, name), " -> "))
		}
		bundle, ok := r.bundles[name]
		if !ok {
			if len(chain) > 0 {
				return fmt.Errorf("assets: bundle %q required by %q not registered", name, chain[len(chain)-1])
			}
			return fmt.Errorf("assets: bundle %q not registered", name)
		}
		state[name] = visiting
		for _, dep := range bundle.Depends {
			if err := visit(dep, append(chain, name)); err != nil {
				return err
			}
		}
		state[name] = done
		ordered = append(ordered, cloneBundle(bundle))
		return nil
	}

	for _, name := range names {
		if err := visit(name, nil); err != nil {
			return nil, err
		}
	}
	return ordered, nil
}

// Assets flattens the resolved bundles into deduplicated stylesheet URLs and
// scripts with absolute sources.
func (r *Registry) Assets(names ...string) (stylesheets []string, scripts []Script, err error) {
	bundles, err := r.Resolve(names...)
	if err != nil {
		return nil, nil, err
	}

	seenStyles := make(map[string]struct{})
	seenScripts := make(map[string]struct{})
	for _, bundle := range bundles {
		for _, href := range bundle.Stylesheets {
			href = join(bundle.BaseURL, href)
			if _, exists := seenStyles[href]; exists {
				continue
			}
			seenStyles[href] = struct{}{}
			stylesheets = append(stylesheets, href)
		}
		for _, s := range bundle.Scripts {
			s.Src = join(bundle.BaseURL, s.Src)
			if _, exists := seenScripts[s.Src]; exists {
				continue
			}
			seenScripts[s.Src] = struct{}{}
			scripts = append(scripts, s)
		}
	}
	return stylesheets, scripts, nil
}

func join(base, ref string) string {
	if ref == "" || base == "" || strings.Contains(ref, "://") || strings.HasPrefix(ref, "/") {
		return ref
	}
	return strings.TrimRight(base, "/") + "/" + ref
}

func cloneBundle(src Bundle) Bundle {
	clone := src
	clone.Stylesheets = slices.Clone(src.Stylesheets)
	clone.Depends = slices.Clone(src.Depends)
	clone.Scripts = slices.Clone(src.Scripts)
	return clone
}

func normalize(name string) string {
	return strings.TrimSpace(name)
}
