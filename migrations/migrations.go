// Package migrations embeds the schema files consumed by golang-migrate.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
