// Package mstjson formats cmd/mstbench's JSON stdout output. It is a thin
// wrapper over encoding/json: the CLI's output shape is a handful of flat
// maps and structs, which encoding/json serializes directly with no need
// for a third-party encoder's extra performance or schema-validation
// features (see DESIGN.md).
package mstjson
