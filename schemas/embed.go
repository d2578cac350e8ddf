// Package schemas provides embedded SQL migration files.
package schemas

import "embed"

// Migrations contains the table definitions for each supported driver,
// under migrations/<driver>/NNN_name.sql.
//
//go:embed migrations/*/*.sql
var Migrations embed.FS
