package template_test

import (
	"embed"
	"io"
	"io/fs"
	"testing"

	"github.com/goliatone/go-dynamicform/pkg/render/template/gotemplate"
	"github.com/goliatone/go-dynamicform/pkg/testsupport"
)

//go:embed testdata/templates/*.tpl
var embeddedTemplates embed.FS

func TestEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})

	if result != "Hello Ada!" || written != result {
		t.Fatalf("unexpected output result=%q written=%q", result, written)
	}
}

func TestEngine_IndexedFilter(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.RenderTemplate("item", map[string]any{
		"name":  "Address[{}][street]",
		"index": 2,
		"value": "  Main St ",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := `<input name="Address[2][street]" value="Main St">`; got != want {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestEngine_JSONFilter(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.RenderString(`var cfg = {{ cfg|json }};`, map[string]any{
		"cfg": map[string]any{"template": "<b>x</b>"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := `var cfg = {"template":"\u003cb\u003ex\u003c/b\u003e"};`; got != want {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestEngine_RenderInline(t *testing.T) {
	engine := newEngine(t)

	inline, err := engine.Render(`{{ name|trim }}!`, map[string]any{"name": "  ada "})
	if err != nil {
		t.Fatalf("render inline: %v", err)
	}
	if inline != "ada!" {
		t.Fatalf("unexpected inline output %q", inline)
	}

	named, err := engine.Render("hello", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render named: %v", err)
	}
	if named != "Hello Ada!" {
		t.Fatalf("unexpected named output %q", named)
	}
}

func TestEngine_StructData(t *testing.T) {
	engine := newEngine(t)
	data := struct {
		Name string `json:"name"`
	}{Name: "Grace"}

	got, err := engine.RenderTemplate("hello", data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello Grace!" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestNew_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without template sources")
	}
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	templatesFS, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}

	engine, err := gotemplate.New(gotemplate.WithFS(templatesFS))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
