// Package xalmath is the numeric core of an accelerator modelling toolkit:
// scalar helpers, complex and interval arithmetic, and fixed-size dense
// matrices that carry their concrete type through every operation.
//
// What is inside?
//
//	elementary/  ULP comparisons, Sinc/Sinch, integer powers and factorials
//	complexnum/  Complex with polar form and transcendental functions
//	interval/    closed and open intervals: membership, overlap, convex hull
//	matrix/      Dense storage, BaseMatrix, SquareMatrix and BaseVector generics,
//	             decompositions (LU, SVD, symmetric eigen), norms and statistics
//	archive/     DataAdaptor implementations: flat Map and YAML Node trees
//	r3/          R3 vectors, R3x3 rotations and Jacobi decomposition
//	beam/        7-D homogeneous phase space, covariance moments, Twiss
//	             parameters and beamline transport
//	cmd/xalmat/  command line front end over matrix and beam
//
// Why a generic base?
//
//   - A type such as beam.PhaseMatrix embeds matrix.SquareMatrix[*PhaseMatrix]
//     and every inherited Plus, Transpose or Inverse returns *PhaseMatrix.
//   - Shape and index errors are sentinels; wrap checks use errors.Is.
//   - Numerics run on gonum; nothing uses cgo.
//
// Quick example:
//
//	tw := beam.NewTwiss(0, 2, 1e-6)
//	phi := beam.IdentityPhaseMatrix()
//	_ = phi.SetElem(beam.X, beam.Xp, 1.0) // 1 m drift in x
//	sigma := beam.BuildCovariance(tw, tw, tw)
//	out, _ := sigma.Propagate(phi)
//	fmt.Println(out.Twiss()[beam.PlaneX].Beta()) // 2.5
//
//	go get github.com/katalvlaran/xalmath
package xalmath
