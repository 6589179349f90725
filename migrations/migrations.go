// Package migrations embeds the goose SQL migrations so the server binary
// and integration tests can apply the schema without external files.
package migrations

import "embed"

// FS holds the embedded migration files.
//
//go:embed *.sql
var FS embed.FS
