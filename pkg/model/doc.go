// Package model defines the dynamic form widget configuration, the narrow
// record capability the widget needs from the host model layer, and the
// input naming convention used to derive per-field id/name patterns. Field
// patterns carry the `{}` index placeholder so the browser runtime can stamp
// real indices when it clones an item.
package model
