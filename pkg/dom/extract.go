package dom

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Extraction is the result of a single pass over rendered widget markup.
type Extraction struct {
	// Template is the trimmed inner HTML of the first matching item.
	Template string
	// Content is the markup to place inside the widget wrapper. When items
	// were stripped it no longer contains any element matching the selector.
	Content string
	// Items counts the elements that matched the selector.
	Items int
}

// ExtractTemplate returns the trimmed inner HTML of the first element in
// content matching itemSelector.
func ExtractTemplate(content, itemSelector string) (string, error) {
	result, err := Extract(content, itemSelector, false)
	if err != nil {
		return "", err
	}
	return result.Template, nil
}

// RemoveItems returns content with every element matching itemSelector
// removed.
func RemoveItems(content, itemSelector string) (string, error) {
	matcher, err := compile(itemSelector)
	if err != nil {
		return "", err
	}
	doc, err := parseFragment(content)
	if err != nil {
		return "", err
	}
	doc.FindMatcher(matcher).Remove()
	return render(doc)
}

// Extract parses content once, captures the template from the first match and,
// when strip is true, removes every match from the returned Content.
func Extract(content, itemSelector string, strip bool) (Extraction, error) {
	matcher, err := compile(itemSelector)
	if err != nil {
		return Extraction{}, err
	}
	doc, err := parseFragment(content)
	if err != nil {
		return Extraction{}, err
	}

	items := doc.FindMatcher(matcher)
	if items.Length() == 0 {
		return Extraction{}, &TemplateNotFoundError{Selector: itemSelector}
	}

	inner, err := items.First().Html()
	if err != nil {
		return Extraction{}, fmt.Errorf("dom: serialize template: %w", err)
	}

	result := Extraction{
		Template: strings.TrimSpace(inner),
		Content:  content,
		Items:    items.Length(),
	}
	if !strip {
		return result, nil
	}

	items.Remove()
	stripped, err := render(doc)
	if err != nil {
		return Extraction{}, err
	}
	result.Content = stripped
	return result, nil
}

func compile(selector string) (cascadia.Selector, error) {
	trimmed := strings.TrimSpace(selector)
	if trimmed == "" {
		return nil, &InvalidSelectorError{Selector: selector, Err: fmt.Errorf("selector is empty")}
	}
	matcher, err := cascadia.Compile(trimmed)
	if err != nil {
		return nil, &InvalidSelectorError{Selector: selector, Err: err}
	}
	return matcher, nil
}

func parseFragment(content string) (*goquery.Document, error) {
	root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(content), root)
	if err != nil {
		return nil, fmt.Errorf("dom: parse content: %w", err)
	}
	for _, node := range nodes {
		root.AppendChild(node)
	}
	return goquery.NewDocumentFromNode(root), nil
}

func render(doc *goquery.Document) (string, error) {
	out, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("dom: serialize content: %w", err)
	}
	return out, nil
}
