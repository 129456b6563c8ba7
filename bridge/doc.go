// Package bridge converts between IR nodes, generic Go values and the
// JSON and YAML formats.
//
// Dicts are carried as [yaml.MapSlice] so member order survives the trip
// through JSON or YAML.
package bridge
