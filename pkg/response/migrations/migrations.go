// Package migrations embeds the goose migrations for the responses table.
package migrations

import "embed"

// VersionTable keeps response migrations apart from the customers schema.
const VersionTable = "response_schema_migrations"

//go:embed *.sql
var FS embed.FS
