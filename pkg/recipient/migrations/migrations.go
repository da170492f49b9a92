// Package migrations embeds the goose migrations for the customers table.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
