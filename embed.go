// Package registro exposes embedded assets shared by the binaries, currently
// the SQL migration files applied by the migrate command and the tests.
package registro

import "embed"

// Migrations holds the embedded goose migration files.
//
//go:embed migrations/*.sql
var Migrations embed.FS
