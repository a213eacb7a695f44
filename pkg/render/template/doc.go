// Package template defines the template rendering seam used for widget
// bodies, the widget wrapper and page script blocks. The gotemplate
// subpackage provides the pongo2-backed implementation.
package template
