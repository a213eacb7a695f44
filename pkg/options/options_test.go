package options_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"

	"github.com/goliatone/go-dynamicform/pkg/model"
	"github.com/goliatone/go-dynamicform/pkg/options"
)

func addressConfig() model.Config {
	cfg := model.DefaultConfig()
	cfg.Container = "dynamicform_wrapper"
	cfg.Body = ".container-items"
	cfg.Item = ".item"
	cfg.FormID = "dynamic-form"
	cfg.InsertButton = ".add-item"
	cfg.DeleteButton = ".remove-item"
	cfg.Fields = []string{"street", "city"}
	return cfg
}

func TestBuild_DerivesPlaceholderFields(t *testing.T) {
	rec, err := options.Build(addressConfig(), model.StaticRecord{Name: "Address", New: true}, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	want := []options.Field{
		{ID: "address-{}-street", Name: "Address[{}][street]"},
		{ID: "address-{}-city", Name: "Address[{}][city]"},
	}
	if diff := cmp.Diff(want, rec.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if rec.Template != "" {
		t.Fatalf("template must be empty before extraction, got %q", rec.Template)
	}
	if rec.Limit != model.DefaultLimit || rec.Min != model.DefaultMin || rec.InsertPosition != model.InsertBottom {
		t.Fatalf("defaults not carried: %+v", rec)
	}
}

func TestBuild_ValidationFailsFirst(t *testing.T) {
	cfg := addressConfig()
	cfg.Fields = nil

	_, err := options.Build(cfg, model.StaticRecord{Name: "Address"}, nil)
	if !errors.Is(err, model.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestEncode_KeyOrder(t *testing.T) {
	rec, err := options.Build(addressConfig(), model.StaticRecord{Name: "Address"}, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	rec = rec.WithTemplate(`<input name="Address[{}][street]">`)

	got, err := options.Encode(rec)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	want := `{"preloadedModels":false,"deleteButton":".remove-item",` +
		`"fields":[{"id":"address-{}-street","name":"Address[{}][street]"},{"id":"address-{}-city","name":"Address[{}][city]"}],` +
		`"formId":"dynamic-form","insertButton":".add-item","insertPosition":"bottom","limit":999,"min":1,` +
		`"widgetBody":".container-items","widgetContainer":"dynamicform_wrapper","widgetItem":".item",` +
		`"template":"\u003cinput name=\"Address[{}][street]\"\u003e"}`
	if string(got) != want {
		t.Fatalf("encoded mismatch\nwant: %s\n got: %s", want, got)
	}
}

func TestEncode_EmptyFieldsIsArray(t *testing.T) {
	got, err := options.Encode(options.Record{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := options.Decode(got)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Fields == nil {
		t.Fatalf("expected fields to decode as an empty array, payload %s", got)
	}
}

func TestWithTemplate_DoesNotShareFields(t *testing.T) {
	rec := options.Record{Fields: []options.Field{{ID: "a", Name: "A"}}}
	next := rec.WithTemplate("<b>x</b>")
	next.Fields[0].ID = "mutated"

	if rec.Fields[0].ID != "a" {
		t.Fatalf("WithTemplate shares the fields slice")
	}
	if rec.Template != "" {
		t.Fatalf("WithTemplate mutated receiver")
	}
}

func TestEncodeDecode_PreservesRecord(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		names := rapid.SliceOfN(rapid.StringMatching(`[a-z][a-z0-9_]{0,12}`), 1, 8).Draw(rt, "fields")
		fields := make([]options.Field, 0, len(names))
		for _, name := range names {
			fields = append(fields, options.Field{ID: "form-{}-" + name, Name: "Form[{}][" + name + "]"})
		}
		rec := options.Record{
			PreloadedModels: rapid.Bool().Draw(rt, "preloaded"),
			DeleteButton:    rapid.String().Draw(rt, "delete"),
			Fields:          fields,
			FormID:          rapid.String().Draw(rt, "form"),
			InsertButton:    rapid.String().Draw(rt, "insert"),
			InsertPosition:  rapid.SampledFrom([]model.InsertPosition{model.InsertTop, model.InsertBottom}).Draw(rt, "position"),
			Limit:           rapid.IntRange(0, 1000).Draw(rt, "limit"),
			Min:             rapid.IntRange(0, 10).Draw(rt, "min"),
			WidgetBody:      rapid.String().Draw(rt, "body"),
			WidgetContainer: rapid.StringMatching(`[A-Za-z0-9_]{1,16}`).Draw(rt, "container"),
			WidgetItem:      rapid.String().Draw(rt, "item"),
			Template:        rapid.String().Draw(rt, "template"),
		}

		encoded, err := options.Encode(rec)
		if err != nil {
			rt.Fatalf("encode: %v", err)
		}
		decoded, err := options.Decode(encoded)
		if err != nil {
			rt.Fatalf("decode: %v", err)
		}
		if diff := cmp.Diff(rec, decoded); diff != "" {
			rt.Fatalf("round trip mismatch (-want +got):\n%s", diff)
		}
	})
}
