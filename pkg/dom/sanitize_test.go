package dom_test

import (
	"strings"
	"testing"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-dynamicform/pkg/dom"
)

func TestSanitizeTemplate_FormPolicy(t *testing.T) {
	markup := `<div class="row" data-index="{}"><label for="a-{}-street">Street</label>` +
		`<input type="text" id="a-{}-street" name="A[{}][street]" onclick="alert(1)">` +
		`<script>alert(1)</script></div>`

	got := dom.SanitizeTemplate(markup, nil)

	for _, unwanted := range []string{"<script", "alert(1)", "onclick"} {
		if strings.Contains(got, unwanted) {
			t.Fatalf("sanitized template still contains %q: %s", unwanted, got)
		}
	}
	for _, wanted := range []string{`name="A[{}][street]"`, `id="a-{}-street"`, `data-index="{}"`, `for="a-{}-street"`, `class="row"`} {
		if !strings.Contains(got, wanted) {
			t.Fatalf("sanitized template lost %q: %s", wanted, got)
		}
	}
}

func TestSanitizeTemplate_Empty(t *testing.T) {
	if got := dom.SanitizeTemplate("   ", nil); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestPolicySanitizer_CustomPolicy(t *testing.T) {
	sanitizer := dom.PolicySanitizer(bluemonday.StrictPolicy())
	if got := sanitizer.Sanitize(`<b>bold</b> text`); got != "bold text" {
		t.Fatalf("unexpected strict output %q", got)
	}
}
