package schema

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// ErrNotArray is returned when the requested property is not an array of
// objects.
var ErrNotArray = errors.New("schema: property is not an array")

// FieldsFromOpenAPI loads an OpenAPI 3 document and returns the sorted item
// property names of the array property on the named component schema. With
// an empty property the component's own properties are returned. Properties
// contributed through allOf are merged.
func FieldsFromOpenAPI(ctx context.Context, data []byte, component, property string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("schema: document payload is empty")
	}
	component = strings.TrimSpace(component)
	if component == "" {
		return nil, errors.New("schema: component name is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("schema: load document: %w", err)
	}
	if doc.Components == nil {
		return nil, fmt.Errorf("schema: component %q not found", component)
	}
	ref, ok := doc.Components.Schemas[component]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("schema: component %q not found", component)
	}

	return Fields(ref.Value, property)
}

// Fields returns the sorted property names of s, or of the items of its array
// property when property is set.
func Fields(s *openapi3.Schema, property string) ([]string, error) {
	if s == nil {
		return nil, errors.New("schema: schema is nil")
	}
	target := s
	if property = strings.TrimSpace(property); property != "" {
		props := properties(s)
		ref, ok := props[property]
		if !ok || ref == nil || ref.Value == nil {
			return nil, fmt.Errorf("schema: property %q not found", property)
		}
		if !ref.Value.Type.Is(openapi3.TypeArray) || ref.Value.Items == nil || ref.Value.Items.Value == nil {
			return nil, fmt.Errorf("%w: %q", ErrNotArray, property)
		}
		target = ref.Value.Items.Value
	}

	names := slices.Sorted(maps.Keys(properties(target)))
	if len(names) == 0 {
		return nil, errors.New("schema: schema declares no properties")
	}
	return names, nil
}

func properties(s *openapi3.Schema) openapi3.Schemas {
	out := make(openapi3.Schemas, len(s.Properties))
	for _, ref := range s.AllOf {
		if ref == nil || ref.Value == nil {
			continue
		}
		maps.Copy(out, properties(ref.Value))
	}
	maps.Copy(out, s.Properties)
	return out
}
