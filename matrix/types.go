// SPDX-License-Identifier: MIT

// Package matrix: small domain-facing types shared by the generic base types.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// IIndex is an enumerated index: anything that maps itself to a zero-based
// integer position. Beam phase coordinates (X, XP, ..., HOM) and the R3
// axes are IIndex values; every indexed accessor has an IIndex twin
// (AtIndex / SetIndex) so callers never convert by hand.
type IIndex interface {
	Val() int
}

// AttrValues is the attribute key under which matrices and vectors persist
// their token string ("{ { a b }{ c d } }" / "{ a b  }").
const AttrValues = "values"

// DataAdaptor is the minimal key/value persistence surface used by Save and
// Load. Implementations live outside this package (see archive.Map and the
// YAML-backed archive.Node).
type DataAdaptor interface {
	// SetValue stores value under key, replacing any previous value.
	SetValue(key, value string)

	// GetValue returns the value stored under key and whether it exists.
	GetValue(key string) (string, bool)
}
