// Package migrations embeds the SQL migrations for the server's PostgreSQL
// database, applied with goose on startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
