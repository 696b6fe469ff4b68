package db

import "embed"

//go:embed schema.sql
var Schema string

//go:embed fixtures/*.json
var Fixtures embed.FS
