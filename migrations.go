// Package directorybolt holds assets shared by the binaries, such as the
// embedded SQL migrations.
package directorybolt

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
