// Package migrations holds the SQL schema applied before the service starts.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
