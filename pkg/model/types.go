package model

import "strings"

// WidgetName prefixes hash variable names and registry keys.
const WidgetName = "dynamicform"

// IndexPlaceholder marks the item index inside generated input ids and names.
const IndexPlaceholder = "{}"

// Default limits applied by DefaultConfig.
const (
	DefaultLimit = 999
	DefaultMin   = 1
)

// InsertPosition controls where the runtime inserts cloned items.
type InsertPosition string

const (
	InsertBottom InsertPosition = "bottom"
	InsertTop    InsertPosition = "top"
)

// Valid reports whether the position is one of the supported values.
func (p InsertPosition) Valid() bool {
	switch p {
	case InsertBottom, InsertTop:
		return true
	default:
		return false
	}
}

// Config describes a single dynamic form widget instance.
type Config struct {
	// Container is the class shared by every repeated block of this widget.
	// It doubles as the registry key and must match ^\w+$.
	Container string `json:"widgetContainer" yaml:"container"`
	// Body selects the element that holds the items.
	Body string `json:"widgetBody" yaml:"body"`
	// Item selects one repeatable block; its first match becomes the template.
	Item string `json:"widgetItem" yaml:"item"`
	// FormID is the id of the enclosing form, without the leading '#'.
	FormID         string         `json:"formId" yaml:"formId"`
	InsertButton   string         `json:"insertButton" yaml:"insertButton"`
	DeleteButton   string         `json:"deleteButton" yaml:"deleteButton"`
	InsertPosition InsertPosition `json:"insertPosition" yaml:"insertPosition"`
	Min            int            `json:"min" yaml:"min"`
	Limit          int            `json:"limit" yaml:"limit"`
	// PreloadedModels signals that the initial items come from persisted data.
	PreloadedModels bool `json:"preloadedModels" yaml:"preloadedModels"`
	// Fields lists the per-item attributes in render order.
	Fields []string `json:"fields" yaml:"fields"`
}

// DefaultConfig returns a Config seeded with the runtime defaults.
func DefaultConfig() Config {
	return Config{
		InsertPosition: InsertBottom,
		Limit:          DefaultLimit,
		Min:            DefaultMin,
	}
}

// Clone returns a copy that does not share the Fields slice.
func (c Config) Clone() Config {
	clone := c
	clone.Fields = append([]string(nil), c.Fields...)
	return clone
}

// Normalize trims whitespace around selectors and field names and drops empty
// field entries. Container is left untouched so padded names still fail
// validation.
func (c Config) Normalize() Config {
	out := c.Clone()
	out.Body = strings.TrimSpace(out.Body)
	out.Item = strings.TrimSpace(out.Item)
	out.FormID = strings.TrimPrefix(strings.TrimSpace(out.FormID), "#")
	out.InsertButton = strings.TrimSpace(out.InsertButton)
	out.DeleteButton = strings.TrimSpace(out.DeleteButton)
	out.InsertPosition = InsertPosition(strings.ToLower(strings.TrimSpace(string(out.InsertPosition))))

	fields := out.Fields[:0]
	for _, field := range out.Fields {
		if trimmed := strings.TrimSpace(field); trimmed != "" {
			fields = append(fields, trimmed)
		}
	}
	out.Fields = fields
	return out
}

// ShouldStripItems reports whether rendered items must be removed from the
// initial markup. Form helpers bound to a record always emit one block, so a
// widget that allows zero items strips them after rendering while keeping the
// extracted template.
func (c Config) ShouldStripItems(record Record) bool {
	if record == nil || c.PreloadedModels || c.Min != 0 {
		return false
	}
	return record.IsNewRecord()
}

// Record is the slice of the host model the widget depends on.
type Record interface {
	// FormName is the prefix used for input names, e.g. "Address".
	FormName() string
	// IsNewRecord reports whether the record has not been persisted yet.
	IsNewRecord() bool
}

// StaticRecord is a Record backed by fixed values. It suits callers that do
// not carry a model object through their templates.
type StaticRecord struct {
	Name string `json:"formName" yaml:"formName"`
	New  bool   `json:"newRecord" yaml:"newRecord"`
}

func (r StaticRecord) FormName() string  { return r.Name }
func (r StaticRecord) IsNewRecord() bool { return r.New }
