package migrations

import "embed"

// FS contains embedded SQLite migrations for language storage.
//
//go:embed *.sql
var FS embed.FS
