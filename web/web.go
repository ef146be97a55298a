// Package web holds the catalog's HTML pages and static assets, embedded
// into the binary.
package web

import (
	"embed"
	"io/fs"
	"path"
)

//go:embed frontend static
var files embed.FS

// Pages are the HTML files served at /<name>; index.html is also served at /.
var Pages = []string{
	"index.html",
	"add.html",
	"actors.html",
	"add_actor.html",
	"movie_actors.html",
}

func Page(name string) ([]byte, error) {
	return files.ReadFile(path.Join("frontend", name))
}

// Static returns the asset tree served under /static/.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
