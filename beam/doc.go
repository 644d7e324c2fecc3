// Package beam models the second-order statistics of a charged-particle
// beam in homogeneous phase space.
//
// The beam package provides:
//
//   - PhaseVector, the 7-vector (x, x', y, y', z, z', 1). The homogeneous
//     coordinate stays 1 through every algebraic operation.
//   - PhaseMatrix, the 7×7 transfer matrix acting on PhaseVector. Its last
//     column carries translations, so affine maps compose by multiplication.
//   - CovarianceMatrix, the moment matrix ⟨z·zᵀ⟩ of an ensemble. The
//     homogeneous row and column hold the centroid, so one matrix carries
//     both first and second moments.
//   - Twiss, the Courant-Snyder parameters (α, β, ε) of one phase plane.
//   - EnsembleMoments and Transport, which build a CovarianceMatrix from a
//     particle cloud and push it through a beamline (σ ↦ Φ·σ·Φᵀ).
//
// All types embed the generic bases of package matrix, so PhaseMatrix.Plus
// returns a *PhaseMatrix and Inverse, Det or ConditionNumber come for free.
package beam
