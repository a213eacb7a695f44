package dom_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/goliatone/go-dynamicform/pkg/dom"
)

const addressBody = `<div class="container-items">
  <div class="item panel">
    <label>Street</label><input type="text" id="address-0-street" name="Address[0][street]">
  </div>
</div>`

func TestExtractTemplate_FirstMatchTrimmed(t *testing.T) {
	got, err := dom.ExtractTemplate(addressBody, ".item")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	want := `<label>Street</label><input type="text" id="address-0-street" name="Address[0][street]"/>`
	if got != want {
		t.Fatalf("template mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestExtractTemplate_UsesFirstOfMany(t *testing.T) {
	content := `<div class="body"><div class="item"><b>first</b></div><div class="item"><b>second</b></div></div>`

	got, err := dom.ExtractTemplate(content, "div.item")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if got != "<b>first</b>" {
		t.Fatalf("unexpected template %q", got)
	}
}

func TestExtractTemplate_NoMatch(t *testing.T) {
	_, err := dom.ExtractTemplate(addressBody, ".missing")
	if !errors.Is(err, dom.ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}

	var notFound *dom.TemplateNotFoundError
	if !errors.As(err, &notFound) || notFound.Selector != ".missing" {
		t.Fatalf("expected TemplateNotFoundError for .missing, got %#v", err)
	}
}

func TestExtractTemplate_InvalidSelector(t *testing.T) {
	for _, selector := range []string{"", "  ", "div["} {
		_, err := dom.ExtractTemplate(addressBody, selector)
		var invalid *dom.InvalidSelectorError
		if !errors.As(err, &invalid) {
			t.Fatalf("selector %q: expected InvalidSelectorError, got %v", selector, err)
		}
	}
}

func TestRemoveItems(t *testing.T) {
	content := `<div class="body"><div class="item"><b>x</b></div><div class="item"><b>y</b></div><p>keep</p></div>`

	got, err := dom.RemoveItems(content, ".item")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if want := `<div class="body"><p>keep</p></div>`; got != want {
		t.Fatalf("stripped mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestRemoveItems_KeepsLeadingScript(t *testing.T) {
	content := `<script>var seeded = 1;</script><div class="item">x</div>`

	got, err := dom.RemoveItems(content, ".item")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if want := `<script>var seeded = 1;</script>`; got != want {
		t.Fatalf("stripped mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestExtract_StripKeepsTemplate(t *testing.T) {
	original, err := dom.ExtractTemplate(addressBody, ".item")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	result, err := dom.Extract(addressBody, ".item", true)
	if err != nil {
		t.Fatalf("extract with strip: %v", err)
	}
	if result.Template == "" || result.Template != original {
		t.Fatalf("template changed by stripping\nwant: %q\n got: %q", original, result.Template)
	}
	if result.Items != 1 {
		t.Fatalf("expected 1 matched item, got %d", result.Items)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(result.Content))
	if err != nil {
		t.Fatalf("parse stripped: %v", err)
	}
	if n := doc.Find(".item").Length(); n != 0 {
		t.Fatalf("expected no items after strip, found %d", n)
	}
	if n := doc.Find(".container-items").Length(); n != 1 {
		t.Fatalf("expected body wrapper to survive, found %d", n)
	}
}

func TestExtract_NoStripReturnsOriginal(t *testing.T) {
	result, err := dom.Extract(addressBody, ".item", false)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if result.Content != addressBody {
		t.Fatalf("content rewritten without strip:\n%s", result.Content)
	}
}
