// SPDX-License-Identifier: MIT
package matrix

// Test-Bridge (White-Box) for private kernels and the options snapshot.
//
// Purpose:
//   - Expose UNEXPORTED helpers and the internal Options to matrix_test ONLY.
//   - The file ends in _test.go, so it never reaches production builds.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields.

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	ValidateNaNInf bool
	EigenTol       float64
	EigenMaxIter   int
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		ValidateNaNInf: o.validateNaNInf,
		EigenTol:       o.eigenTol,
		EigenMaxIter:   o.eigenMaxIter,
	}
}

// LUFactor_TestOnly forwards to luFactor and returns the packed factors as rows.
func LUFactor_TestOnly(a *Dense) (lu [][]float64, perm []int, sign float64, singular bool) {
	d, p, s, sing := luFactor(a)

	return d.rowsCopy(), p, s, sing
}

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicEigenTolInvalid_TestOnly  = panicEigenTolInvalid
	PanicEigenIterInvalid_TestOnly = panicEigenIterInvalid
	PanicFactoryDim_TestOnly       = panicFactoryDim
	PanicVecFactory_TestOnly       = panicVecFactory
)
