// Package strings holds the small string invariants the module wiring relies on
package strings

import std "strings"

// IfEmpty substitutes def for an empty slice
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustString panics when s is blank; name labels the panic
func MustString(s, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes a mount path to a single leading slash and no
// trailing slash, panicking on blank input. "/charts/" becomes "/charts"
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}
