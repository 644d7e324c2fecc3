// SPDX-License-Identifier: MIT
// Package elementary: sentinel error set.
// Every function that can fail on user input returns one of these sentinels,
// optionally wrapped with fmt.Errorf("<Func>(%g): %w", ...). Match via errors.Is.

package elementary

import "errors"

var (
	// ErrDomain signals an argument outside the mathematical domain of the
	// function (Acosh below 1, Atanh outside (-1, 1), negative exponents or
	// factorial arguments on the integer paths).
	ErrDomain = errors.New("elementary: argument outside function domain")

	// ErrOverflow signals that an integer result does not fit into int.
	ErrOverflow = errors.New("elementary: integer overflow")
)
