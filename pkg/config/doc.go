// Package config loads named dynamic form widget definitions from JSON or
// YAML files. Each file holds a "widgets" map keyed by definition name; every
// entry starts from model.DefaultConfig and is validated on load.
package config
