// Package static exposes embedded site assets for HTTP serving.
package static

import "embed"

// FS holds the stylesheet and any other bundled assets.
//
//go:embed *.css
var FS embed.FS
