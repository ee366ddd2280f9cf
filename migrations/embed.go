// Package migrations embeds the SQL schema files so the ingest binary can
// apply them without shipping the directory alongside the executable.
package migrations

import "embed"

//go:embed V*.sql
var FS embed.FS
