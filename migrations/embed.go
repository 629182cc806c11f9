// Package migrations embeds all SQL migrations so they can be applied by the
// db CLI subcommand and the test database template setup alike.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
