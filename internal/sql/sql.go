// Package sql embeds the database schema and queries.
package sql

import (
	_ "embed"
)

//go:embed schema.sql
var schema string

// Schema returns the DDL applied when the recipes table is missing.
func Schema() string {
	return schema
}
