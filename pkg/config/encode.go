package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-dynamicform/pkg/model"
)

// Encode renders definitions as a YAML document that LoadFS accepts.
// Definitions are validated first.
func Encode(defs ...Definition) ([]byte, error) {
	doc := documentFile{Widgets: make(map[string]widgetFile, len(defs))}
	for _, def := range defs {
		name := strings.TrimSpace(def.Name)
		if name == "" {
			return nil, fmt.Errorf("config: definition name is required")
		}
		if _, exists := doc.Widgets[name]; exists {
			return nil, fmt.Errorf("config: duplicate widget %q", name)
		}
		cfg := def.Config.Normalize()
		if err := model.Validate(cfg, def.Record); err != nil {
			return nil, fmt.Errorf("config: widget %q: %w", name, err)
		}

		minItems, limit := cfg.Min, cfg.Limit
		doc.Widgets[name] = widgetFile{
			Container:       cfg.Container,
			Body:            cfg.Body,
			Item:            cfg.Item,
			FormID:          cfg.FormID,
			InsertButton:    cfg.InsertButton,
			DeleteButton:    cfg.DeleteButton,
			InsertPosition:  string(cfg.InsertPosition),
			Min:             &minItems,
			Limit:           &limit,
			PreloadedModels: cfg.PreloadedModels,
			Fields:          cfg.Fields,
			Template:        def.Template,
			Record:          recordFile{FormName: def.Record.Name, NewRecord: def.Record.New},
			Data:            def.Data,
		}
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	return out, nil
}
