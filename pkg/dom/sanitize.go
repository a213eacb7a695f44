package dom

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	formPolicyOnce sync.Once
	formPolicy     *bluemonday.Policy
)

// Sanitizer cleans an extracted template before it is embedded in the
// generated options.
type Sanitizer interface {
	Sanitize(markup string) string
}

// SanitizerFunc adapts a function into a Sanitizer.
type SanitizerFunc func(string) string

func (fn SanitizerFunc) Sanitize(markup string) string {
	return fn(markup)
}

// SanitizeTemplate runs markup through policy, defaulting to FormPolicy.
func SanitizeTemplate(markup string, policy *bluemonday.Policy) string {
	trimmed := strings.TrimSpace(markup)
	if trimmed == "" {
		return ""
	}
	if policy == nil {
		policy = FormPolicy()
	}
	return strings.TrimSpace(policy.Sanitize(trimmed))
}

// FormPolicy keeps form controls, their naming attributes and common layout
// markup while dropping scripts, inline event handlers and styles.
func FormPolicy() *bluemonday.Policy {
	formPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements(
			"div", "span", "p", "label", "fieldset", "legend", "small", "strong", "em",
			"ul", "ol", "li", "i", "b",
			"input", "select", "option", "optgroup", "textarea", "button",
		)
		policy.AllowAttrs("class", "id", "title", "role").Globally()
		policy.AllowDataAttributes()
		policy.AllowAttrs("aria-label", "aria-describedby", "aria-hidden", "aria-invalid", "aria-required").Globally()
		policy.AllowAttrs("for").OnElements("label")
		policy.AllowAttrs(
			"type", "name", "value", "placeholder", "checked", "disabled", "readonly",
			"required", "maxlength", "minlength", "min", "max", "step", "pattern",
			"autocomplete", "multiple", "size",
		).OnElements("input")
		policy.AllowAttrs("name", "multiple", "disabled", "required", "size").OnElements("select")
		policy.AllowAttrs("value", "selected", "disabled", "label").OnElements("option")
		policy.AllowAttrs("label", "disabled").OnElements("optgroup")
		policy.AllowAttrs("name", "rows", "cols", "placeholder", "disabled", "readonly", "required", "maxlength").OnElements("textarea")
		policy.AllowAttrs("type", "name", "value", "disabled").OnElements("button")
		formPolicy = policy
	})
	return formPolicy
}

// PolicySanitizer wraps a bluemonday policy as a Sanitizer.
func PolicySanitizer(policy *bluemonday.Policy) Sanitizer {
	return SanitizerFunc(func(markup string) string {
		return SanitizeTemplate(markup, policy)
	})
}
