package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dynamicform/pkg/model"
)

// HashPlaceholder replaces generated hash variable names in normalized
// output.
const HashPlaceholder = "dynamicform_HASH"

var hashVarPattern = regexp.MustCompile(`dynamicform_[0-9a-f]{8}`)

// NormalizeHashVars swaps every generated hash variable name in s for
// HashPlaceholder so markup snapshots stay stable when option payloads change.
func NormalizeHashVars(s string) string {
	return hashVarPattern.ReplaceAllString(s, HashPlaceholder)
}

// AddressConfig returns a valid configuration for an "Address" repeatable
// group with street and city fields.
func AddressConfig() model.Config {
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

// Record returns a static record with the given form name.
func Record(formName string, isNew bool) model.StaticRecord {
	return model.StaticRecord{Name: formName, New: isNew}
}

// WriteGolden writes value as indented JSON when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	writeFile(t, path, payload)
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	writeFile(t, path, data)
	return true
}

// AssertGoldenString compares got with the golden file at path, rewriting the
// file instead when UPDATE_GOLDENS is set.
func AssertGoldenString(t *testing.T, path, got string) {
	t.Helper()
	if WriteMaybeGolden(t, path, []byte(got)) {
		return
	}
	want := MustReadGoldenString(t, path)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("golden mismatch %s (-want +got):\n%s", path, diff)
	}
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}
