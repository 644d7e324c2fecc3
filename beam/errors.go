// SPDX-License-Identifier: MIT

package beam

import "errors"

var (
	// ErrAsymmetric is returned when a covariance read from text or an archive
	// is not symmetric to SymmetryDigits decimal digits. It is always
	// joined with matrix.ErrAsymmetry.
	ErrAsymmetric = errors.New("beam: covariance matrix is not symmetric")

	// ErrEmittance is returned when an emittance cannot be rescaled because
	// the current value is zero or not a number.
	ErrEmittance = errors.New("beam: degenerate rms emittance")

	// ErrEmptyEnsemble is returned when moments are requested for no particles.
	ErrEmptyEnsemble = errors.New("beam: empty particle ensemble")

	// ErrNilTransfer is returned when a beamline element has no transfer matrix.
	ErrNilTransfer = errors.New("beam: element without transfer matrix")
)
