// Package web holds the server-rendered views.
package web

import "embed"

// Templates contains the HTML views parsed by the api package
//
//go:embed templates/*.html
var Templates embed.FS
