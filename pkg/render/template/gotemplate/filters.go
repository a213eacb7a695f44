package gotemplate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-dynamicform/pkg/model"
)

func registerDefaultFilters() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", filterTrim)
	}
	if !pongo2.FilterExists("json") {
		_ = pongo2.RegisterFilter("json", filterJSON)
	}
	if !pongo2.FilterExists("indexed") {
		_ = pongo2.RegisterFilter("indexed", filterIndexed)
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterJSON encodes the input as JSON. The output is marked safe; the
// encoder escapes <, > and & so it can be embedded in script blocks.
func filterJSON(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	raw, err := json.Marshal(in.Interface())
	if err != nil {
		return nil, &pongo2.Error{Sender: "filter:json", OrigError: err}
	}
	return pongo2.AsSafeValue(string(raw)), nil
}

// filterIndexed replaces the item index placeholder with the parameter, so
// body templates can stamp "Address[{}][street]" for a concrete row.
func filterIndexed(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	index := model.IndexPlaceholder
	if param != nil && !param.IsNil() {
		index = fmt.Sprint(param.Interface())
	}
	return pongo2.AsValue(strings.ReplaceAll(in.String(), model.IndexPlaceholder, index)), nil
}
