package repositories

import _ "embed"

// Schema is the PostgreSQL DDL the repositories expect.
//
//go:embed schema.sql
var Schema string
