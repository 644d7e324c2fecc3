// SPDX-License-Identifier: MIT

package beam

import (
	"fmt"

	"github.com/katalvlaran/xalmath/matrix"
)

const (
	ctxEnsembleMoments = "beam.EnsembleMoments"
	ctxEnsembleMean    = "beam.EnsembleMean"
)

// samples stacks the particles as the rows of an n×7 sample matrix.
func samples(particles []*PhaseVector) (*matrix.Dense, error) {
	if len(particles) == 0 {
		return nil, ErrEmptyEnsemble
	}
	rows := make([][]float64, len(particles))
	for k, p := range particles {
		if p == nil {
			return nil, fmt.Errorf("particle %d: %w", k, matrix.ErrNilMatrix)
		}
		rows[k] = p.Array()
		rows[k][HOM] = 1
	}

	return matrix.NewDenseFromRows(rows)
}

// EnsembleMoments returns the moment matrix σ = ⟨z·zᵀ⟩ of a particle cloud.
// Implementation:
//   - Stage 1: stack the particles into an n×7 sample matrix with HOM = 1.
//   - Stage 2: matrix.SecondMoments gives (ZᵀZ)/n; the HOM column of Z turns
//     row and column HOM into the centroid and σ(HOM,HOM) into 1.
//
// Errors:
//   - ErrEmptyEnsemble for no particles; matrix.ErrNilMatrix for a nil one.
//
// Complexity:
//   - Time O(n·7²), Space O(n·7).
func EnsembleMoments(particles []*PhaseVector) (*CovarianceMatrix, error) {
	Z, err := samples(particles)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxEnsembleMoments, err)
	}
	S, err := matrix.SecondMoments(Z)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxEnsembleMoments, err)
	}
	m, err := NewPhaseMatrixFrom(S.Array())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxEnsembleMoments, err)
	}

	return &CovarianceMatrix{PhaseMatrix: m}, nil
}

// EnsembleMean returns the centroid of a particle cloud.
//
// Errors:
//   - ErrEmptyEnsemble for no particles; matrix.ErrNilMatrix for a nil one.
func EnsembleMean(particles []*PhaseVector) (*PhaseVector, error) {
	Z, err := samples(particles)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxEnsembleMean, err)
	}
	means, err := matrix.ColumnMeans(Z)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxEnsembleMean, err)
	}

	return PhaseVectorFromArray(means)
}
