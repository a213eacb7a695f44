package model_test

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"

	"github.com/goliatone/go-dynamicform/pkg/model"
)

func validConfig() model.Config {
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

func TestValidate_AcceptsCompleteConfig(t *testing.T) {
	if err := model.Validate(validConfig(), model.StaticRecord{Name: "Address", New: true}); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	cfg := model.Config{InsertPosition: "middle", Min: -1, Limit: -5}

	err := model.Validate(cfg, nil)
	if !errors.Is(err, model.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}

	var got []string
	for _, violation := range model.ValidationErrors(err) {
		got = append(got, violation.Property)
	}
	sort.Strings(got)

	want := []string{"body", "container", "fields", "formId", "insertPosition", "item", "limit", "min", "model"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("violations mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_TypedNilRecord(t *testing.T) {
	var record *model.StaticRecord

	err := model.Validate(validConfig(), record)
	violations := model.ValidationErrors(err)
	if len(violations) != 1 || violations[0].Property != "model" {
		t.Fatalf("expected a single model violation, got %v", err)
	}
}

func TestValidate_ContainerProperty(t *testing.T) {
	record := model.StaticRecord{Name: "Address"}

	t.Run("word characters pass", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			cfg := validConfig()
			cfg.Container = rapid.StringMatching(`[A-Za-z0-9_]{1,32}`).Draw(rt, "container")
			if err := model.Validate(cfg, record); err != nil {
				rt.Fatalf("container %q rejected: %v", cfg.Container, err)
			}
		})
	})

	t.Run("other characters fail", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			head := rapid.StringMatching(`[A-Za-z0-9_]{0,16}`).Draw(rt, "head")
			tail := rapid.StringMatching(`[A-Za-z0-9_]{0,16}`).Draw(rt, "tail")
			bad := rapid.SampledFrom([]string{"-", " ", ".", "#", "é", "[", "\n"}).Draw(rt, "bad")

			cfg := validConfig()
			cfg.Container = head + bad + tail
			err := model.Validate(cfg, record)
			violations := model.ValidationErrors(err)
			if len(violations) != 1 || violations[0].Property != "container" {
				rt.Fatalf("container %q: expected container violation, got %v", cfg.Container, err)
			}
		})
	})

	t.Run("empty fails", func(t *testing.T) {
		cfg := validConfig()
		cfg.Container = ""
		if err := model.Validate(cfg, record); !errors.Is(err, model.ErrInvalidConfig) {
			t.Fatalf("expected ErrInvalidConfig, got %v", err)
		}
	})
}

func TestValidate_RejectsPaddedContainer(t *testing.T) {
	for _, container := range []string{" addr", "addr ", "\taddr", "addr\n"} {
		cfg := validConfig()
		cfg.Container = container

		err := model.Validate(cfg.Normalize(), model.StaticRecord{Name: "Address"})
		violations := model.ValidationErrors(err)
		if len(violations) != 1 || violations[0].Property != "container" {
			t.Fatalf("container %q: expected a single container violation, got %v", container, err)
		}
	}
}

func TestValidate_RejectsUncompilableSelectors(t *testing.T) {
	cfg := validConfig()
	cfg.Body = "div["
	cfg.Item = "[["

	err := model.Validate(cfg, model.StaticRecord{Name: "Address"})
	if !errors.Is(err, model.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}

	var got []string
	for _, violation := range model.ValidationErrors(err) {
		got = append(got, violation.Property)
	}
	if diff := cmp.Diff([]string{"body", "item"}, got); diff != "" {
		t.Fatalf("violations mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_RequiresFormName(t *testing.T) {
	err := model.Validate(validConfig(), model.StaticRecord{New: true})
	violations := model.ValidationErrors(err)
	if len(violations) != 1 || violations[0].Property != "model" {
		t.Fatalf("expected a single model violation, got %v", err)
	}
	if !strings.Contains(violations[0].Reason, "form name") {
		t.Fatalf("unexpected reason %q", violations[0].Reason)
	}
}

func TestConfig_Normalize(t *testing.T) {
	cfg := model.Config{
		Container:      " wrapper ",
		Item:           " .item ",
		FormID:         " #form ",
		InsertPosition: " TOP ",
		Fields:         []string{" street ", "", "city"},
	}

	got := cfg.Normalize()
	if got.Container != " wrapper " {
		t.Fatalf("normalize must not rewrite the container, got %q", got.Container)
	}
	if got.Item != ".item" || got.FormID != "form" || got.InsertPosition != model.InsertTop {
		t.Fatalf("unexpected normalized config: %+v", got)
	}
	if diff := cmp.Diff([]string{"street", "city"}, got.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if cfg.Fields[0] != " street " {
		t.Fatalf("normalize mutated the receiver: %q", cfg.Fields)
	}
}

func TestConfig_ShouldStripItems(t *testing.T) {
	cases := []struct {
		name      string
		min       int
		preloaded bool
		record    model.Record
		want      bool
	}{
		{name: "zero min new record", min: 0, record: model.StaticRecord{New: true}, want: true},
		{name: "zero min persisted record", min: 0, record: model.StaticRecord{New: false}},
		{name: "preloaded models", min: 0, preloaded: true, record: model.StaticRecord{New: true}},
		{name: "one item required", min: 1, record: model.StaticRecord{New: true}},
		{name: "nil record", min: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Min = tc.min
			cfg.PreloadedModels = tc.preloaded
			if got := cfg.ShouldStripItems(tc.record); got != tc.want {
				t.Fatalf("ShouldStripItems() = %v, want %v", got, tc.want)
			}
		})
	}
}
