// Package hcl provides the HCL implementation of the config.Loader interface.
// It parses spec files and translates their `spec`, `describe`, `context` and
// `it` blocks into the format-agnostic config model, keeping the order in
// which blocks appear in the file.
package hcl
