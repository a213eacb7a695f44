package config

import (
	"maps"
	"slices"

	"github.com/goliatone/go-dynamicform/pkg/model"
)

// Definition is a validated widget configuration loaded from a file.
type Definition struct {
	// Name is the key the widget was declared under.
	Name string
	// Source is the path of the declaring file within the loaded FS.
	Source string
	Config model.Config
	Record model.StaticRecord
	// Template names the body template rendered inside the widget.
	Template string
	// Data is passed to the body template.
	Data map[string]any
}

// Store holds definitions keyed by name.
type Store struct {
	definitions map[string]Definition
}

// Definition returns the named definition.
func (s *Store) Definition(name string) (Definition, bool) {
	if s == nil {
		return Definition{}, false
	}
	def, ok := s.definitions[name]
	if !ok {
		return Definition{}, false
	}
	return def.clone(), true
}

// Names returns the definition names sorted.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.definitions))
}

// Empty reports whether the store holds any definitions.
func (s *Store) Empty() bool {
	return s == nil || len(s.definitions) == 0
}

func (d Definition) clone() Definition {
	out := d
	out.Config = d.Config.Clone()
	out.Data = maps.Clone(d.Data)
	return out
}
