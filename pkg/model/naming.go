package model

import "strings"

// Binder derives input ids and names for a record attribute. Attributes may
// carry a bracketed prefix such as "[{}]street" for tabular inputs.
type Binder interface {
	InputID(record Record, attribute string) string
	InputName(record Record, attribute string) string
}

// BracketBinder implements the nested array convention used by server-side
// form helpers: the name is Form[prefix]attr[suffix] and the id is the
// lowercased name with brackets folded into dashes.
type BracketBinder struct{}

var _ Binder = BracketBinder{}

// idReplacements are applied one after another, not as a single pass.
var idReplacements = [][2]string{
	{"[]", ""},
	{"][", "-"},
	{"[", "-"},
	{"]", ""},
	{" ", "-"},
	{".", "-"},
}

// InputName returns the input name for attribute.
func (BracketBinder) InputName(record Record, attribute string) string {
	prefix, attr, suffix := splitAttribute(attribute)
	formName := ""
	if record != nil {
		formName = record.FormName()
	}
	if formName == "" {
		return prefix + attr + suffix
	}
	return formName + prefix + "[" + attr + "]" + suffix
}

// InputID returns the input id for attribute.
func (b BracketBinder) InputID(record Record, attribute string) string {
	id := strings.ToLower(b.InputName(record, attribute))
	for _, pair := range idReplacements {
		id = strings.ReplaceAll(id, pair[0], pair[1])
	}
	return id
}

// splitAttribute separates "[0]items[1]" into "[0]", "items" and "[1]".
func splitAttribute(attribute string) (prefix, attr, suffix string) {
	attribute = strings.TrimSpace(attribute)
	rest := attribute
	for strings.HasPrefix(rest, "[") {
		end := strings.Index(rest, "]")
		if end < 0 {
			break
		}
		rest = rest[end+1:]
	}
	prefix = attribute[:len(attribute)-len(rest)]

	if idx := strings.Index(rest, "["); idx >= 0 {
		return prefix, rest[:idx], rest[idx:]
	}
	return prefix, rest, ""
}

// PlaceholderAttribute prefixes attribute with the index placeholder.
func PlaceholderAttribute(attribute string) string {
	return "[" + IndexPlaceholder + "]" + attribute
}
