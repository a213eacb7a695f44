// Package emitter writes the script statements that bind a dynamic form
// widget to the browser runtime.
package emitter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goliatone/go-dynamicform/pkg/assets"
	"github.com/goliatone/go-dynamicform/pkg/options"
	"github.com/goliatone/go-dynamicform/pkg/registry"
	"github.com/goliatone/go-dynamicform/pkg/script"
)

// PluginName is the jQuery plugin exposed by the browser runtime.
const PluginName = "yiiDynamicForm"

// Emit registers the configuration variable, the insert and delete click
// handlers and the initializer on sink. Nothing is written unless reg is the
// first registration for its container.
func Emit(sink script.Sink, reg registry.Registration, rec options.Record) error {
	if !reg.Registered {
		return nil
	}
	if sink == nil {
		return fmt.Errorf("emitter: script sink is nil")
	}

	encoded := reg.Encoded
	if len(encoded) == 0 {
		var err error
		if encoded, err = options.Encode(rec); err != nil {
			return err
		}
	}

	if bundles, ok := sink.(assets.Sink); ok {
		bundles.RegisterBundle(assets.BundleDynamicForm)
	}

	sink.RegisterJS(script.Head, "", HeadStatement(reg.HashVar, encoded))
	sink.RegisterJS(script.Ready, "", InsertHandler(reg.HashVar, rec))
	sink.RegisterJS(script.Ready, "", DeleteHandler(reg.HashVar, rec))
	sink.RegisterJS(script.Load, "", Initializer(reg.HashVar, rec))
	return nil
}

// HeadStatement declares the global options variable.
func HeadStatement(hashVar string, encoded []byte) string {
	return "var " + hashVar + " = " + string(encoded) + ";\n"
}

// InsertHandler binds the insert button through the form element.
func InsertHandler(hashVar string, rec options.Record) string {
	container := containerQuery(rec.WidgetContainer)

	var b strings.Builder
	b.WriteString(formQuery(rec.FormID) + `.on("click", ` + jsString(rec.InsertButton) + ", function(e) {\n")
	b.WriteString("    e.preventDefault();\n")
	b.WriteString("    " + container + `.triggerHandler("beforeInsert", [jQuery(this)]);` + "\n")
	b.WriteString("    " + container + `.` + PluginName + `("addItem", ` + hashVar + ", e, jQuery(this));\n")
	b.WriteString("});\n")
	return b.String()
}

// DeleteHandler binds the delete button through the form element.
func DeleteHandler(hashVar string, rec options.Record) string {
	container := containerQuery(rec.WidgetContainer)

	var b strings.Builder
	b.WriteString(formQuery(rec.FormID) + `.on("click", ` + jsString(rec.DeleteButton) + ", function(e) {\n")
	b.WriteString("    e.preventDefault();\n")
	b.WriteString("    " + container + `.` + PluginName + `("deleteItem", ` + hashVar + ", e, jQuery(this));\n")
	b.WriteString("});\n")
	return b.String()
}

// Initializer starts the runtime on the form.
func Initializer(hashVar string, rec options.Record) string {
	return formQuery(rec.FormID) + "." + PluginName + "(" + hashVar + ");\n"
}

func formQuery(formID string) string {
	return "jQuery(" + jsString("#"+formID) + ")"
}

func containerQuery(container string) string {
	return "jQuery(" + jsString("."+container) + ")"
}

// jsString quotes s as a JavaScript string literal that is also safe inside
// an HTML <script> element.
func jsString(s string) string {
	out, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(out)
}
