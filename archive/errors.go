// SPDX-License-Identifier: MIT

package archive

import "errors"

var (
	// ErrFormat is returned when a YAML document does not have the node shape
	// (mappings of scalars, mappings and sequences of mappings).
	ErrFormat = errors.New("archive: malformed document")

	// ErrMissingChild is returned by Require when a named child is absent.
	ErrMissingChild = errors.New("archive: missing child node")
)
