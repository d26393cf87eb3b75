// Package db provides embedded database schema migration files.
package db

import "embed"

// MigrationFS embeds the goose SQL migrations from db/migrations. The migrate
// CLI (cmd/migrate) applies them against DATABASE_URL.
//
//go:embed migrations/*.sql
var MigrationFS embed.FS
