package config

import (
	"embed"
	"io/fs"
)

//go:embed defaults/*
var embeddedDefaults embed.FS

// EmbeddedFS returns the bundled example definitions together with their body
// templates. It can be passed to LoadFS and to a template engine.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedDefaults, "defaults")
	if err != nil {
		panic(err)
	}
	return sub
}
