// Package config defines the format-agnostic model of spec files and the
// Loader interface implemented by the format-specific packages (hcl,
// yamlspec).
//
// A spec file declares one or more trees of groups and examples. Bodies and
// hooks are not code but names of handlers registered in the handlers
// registry; the script package resolves those names and turns a tree into a
// declaration script.
package config
