// Package migrations embeds the SQLite schema migrations for site content.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
