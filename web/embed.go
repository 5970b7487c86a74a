package web

import (
	"embed"
	"io/fs"
)

// FS contains the embedded static assets served under /static and copied by
// the exporter. The patterns are relative to this file's directory.
//
//go:embed static/*
var FS embed.FS

// Static returns the static assets rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(FS, "static")
	if err != nil {
		// "static" is embedded above, so Sub cannot fail.
		panic(err)
	}
	return sub
}
