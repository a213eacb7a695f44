// Package widget renders a dynamic form widget: it validates the
// configuration, renders the body, extracts the item template, registers the
// serialized options on the page and wraps the markup for the browser
// runtime.
package widget
