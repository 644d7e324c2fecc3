// Package r3 implements Cartesian three-space: the vector R3 and the 3×3
// matrix R3x3, both built on the generic bases of package matrix.
//
// The r3 package provides:
//
//   - R3 with the cross product, component squares and conversions between
//     Cartesian, cylindrical and spherical coordinates.
//   - R3x3 with counter-clockwise rotations about each axis, the action on
//     R3, and a Jacobi eigen-decomposition of symmetric matrices.
//
// Index enumerates the axes and satisfies matrix.IIndex. Pos enumerates the
// element positions of an R3x3 and is read through Elem/SetElem.
package r3
