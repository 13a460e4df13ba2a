// Package data embeds the default visa table so the planner works without
// a database or any files next to the binary.
package data

import _ "embed"

// VisaTable contains the raw bytes of visa_table.yaml, embedded at compile time.
// It can be replaced at runtime with VISA_TABLE_PATH or by a Postgres table.
//
//go:embed visa_table.yaml
var VisaTable []byte
