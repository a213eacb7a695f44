package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-dynamicform/pkg/model"
)

// LoadFS walks fsys and parses every JSON/YAML definition file. A nil fsys
// yields an empty store.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{definitions: make(map[string]Definition)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for rawName, raw := range doc.Widgets {
			name := strings.TrimSpace(rawName)
			if name == "" {
				return fmt.Errorf("config: file %s defines a widget with an empty name", path)
			}
			if existing, exists := store.definitions[name]; exists {
				return fmt.Errorf("config: duplicate widget %q (file %s, first declared in %s)", name, path, existing.Source)
			}
			def, err := normaliseWidget(raw, name, path)
			if err != nil {
				return err
			}
			store.definitions[name] = def
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

type documentFile struct {
	Widgets map[string]widgetFile `json:"widgets" yaml:"widgets"`
}

type widgetFile struct {
	Container       string         `json:"container" yaml:"container"`
	Body            string         `json:"body" yaml:"body"`
	Item            string         `json:"item" yaml:"item"`
	FormID          string         `json:"formId" yaml:"formId"`
	InsertButton    string         `json:"insertButton" yaml:"insertButton"`
	DeleteButton    string         `json:"deleteButton" yaml:"deleteButton"`
	InsertPosition  string         `json:"insertPosition" yaml:"insertPosition,omitempty"`
	Min             *int           `json:"min" yaml:"min,omitempty"`
	Limit           *int           `json:"limit" yaml:"limit,omitempty"`
	PreloadedModels bool           `json:"preloadedModels" yaml:"preloadedModels,omitempty"`
	Fields          []string       `json:"fields" yaml:"fields"`
	Template        string         `json:"template" yaml:"template,omitempty"`
	Record          recordFile     `json:"record" yaml:"record"`
	Data            map[string]any `json:"data" yaml:"data,omitempty"`
}

type recordFile struct {
	FormName  string `json:"formName" yaml:"formName"`
	NewRecord bool   `json:"newRecord" yaml:"newRecord"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("config: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("config: parse %s: invalid JSON or YAML", source)
}

func normaliseWidget(raw widgetFile, name, source string) (Definition, error) {
	cfg := model.DefaultConfig()
	cfg.Container = raw.Container
	cfg.Body = raw.Body
	cfg.Item = raw.Item
	cfg.FormID = raw.FormID
	cfg.InsertButton = raw.InsertButton
	cfg.DeleteButton = raw.DeleteButton
	if strings.TrimSpace(raw.InsertPosition) != "" {
		cfg.InsertPosition = model.InsertPosition(raw.InsertPosition)
	}
	if raw.Min != nil {
		cfg.Min = *raw.Min
	}
	if raw.Limit != nil {
		cfg.Limit = *raw.Limit
	}
	cfg.PreloadedModels = raw.PreloadedModels
	cfg.Fields = append([]string(nil), raw.Fields...)
	cfg = cfg.Normalize()

	record := model.StaticRecord{
		Name: strings.TrimSpace(raw.Record.FormName),
		New:  raw.Record.NewRecord,
	}
	if err := model.Validate(cfg, record); err != nil {
		return Definition{}, fmt.Errorf("config: widget %q (file %s): %w", name, source, err)
	}

	return Definition{
		Name:     name,
		Source:   source,
		Config:   cfg,
		Record:   record,
		Template: strings.TrimSpace(raw.Template),
		Data:     raw.Data,
	}, nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
