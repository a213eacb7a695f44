// Package options assembles the configuration record consumed by the browser
// runtime and serializes it deterministically.
package options

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-dynamicform/pkg/model"
)

// Field carries the placeholder id/name pair for one item attribute.
type Field struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Record is the JSON payload assigned to the widget's global variable. Field
// order here is the serialized key order.
type Record struct {
	PreloadedModels bool                 `json:"preloadedModels"`
	DeleteButton    string               `json:"deleteButton"`
	Fields          []Field              `json:"fields"`
	FormID          string               `json:"formId"`
	InsertButton    string               `json:"insertButton"`
	InsertPosition  model.InsertPosition `json:"insertPosition"`
	Limit           int                  `json:"limit"`
	Min             int                  `json:"min"`
	WidgetBody      string               `json:"widgetBody"`
	WidgetContainer string               `json:"widgetContainer"`
	WidgetItem      string               `json:"widgetItem"`
	Template        string               `json:"template"`
}

// Build validates cfg and derives the record. The template is left empty
// until WithTemplate is called with the extracted markup.
func Build(cfg model.Config, record model.Record, binder model.Binder) (Record, error) {
	if err := model.Validate(cfg, record); err != nil {
		return Record{}, err
	}
	if binder == nil {
		binder = model.BracketBinder{}
	}

	fields := make([]Field, 0, len(cfg.Fields))
	for _, attribute := range cfg.Fields {
		placeholder := model.PlaceholderAttribute(attribute)
		fields = append(fields, Field{
			ID:   binder.InputID(record, placeholder),
			Name: binder.InputName(record, placeholder),
		})
	}

	return Record{
		PreloadedModels: cfg.PreloadedModels,
		DeleteButton:    cfg.DeleteButton,
		Fields:          fields,
		FormID:          cfg.FormID,
		InsertButton:    cfg.InsertButton,
		InsertPosition:  cfg.InsertPosition,
		Limit:           cfg.Limit,
		Min:             cfg.Min,
		WidgetBody:      cfg.Body,
		WidgetContainer: cfg.Container,
		WidgetItem:      cfg.Item,
	}, nil
}

// WithTemplate returns a copy of r carrying the extracted item template.
func (r Record) WithTemplate(template string) Record {
	out := r
	out.Fields = append([]Field(nil), r.Fields...)
	out.Template = template
	return out
}

// Encode serializes r as compact JSON. The output is stable for equal
// records; markup characters are escaped so the payload is safe inside a
// <script> element.
func Encode(r Record) ([]byte, error) {
	if r.Fields == nil {
		r.Fields = []Field{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	if err := enc.Encode(r); err != nil {
		return nil, fmt.Errorf("options: encode: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Decode parses a payload produced by Encode.
func Decode(data []byte) (Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("options: decode: %w", err)
	}
	return r, nil
}
