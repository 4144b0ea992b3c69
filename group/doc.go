// Package group defines abstract interfaces for the elliptic-curve groups
// used to commit to integer vectors and check linear relations on them.
//
// This package provides three core interfaces:
//
//   - [Scalar]: Elements of the scalar field (integers modulo the group order)
//   - [Point]: Elements of the group (points on an elliptic curve)
//   - [Group]: Factory methods for creating scalars and points
//
// # Design Philosophy
//
// The interfaces use a mutable receiver pattern. Operations like Add and
// ScalarMult set the receiver to the result and return it, allowing method
// chaining:
//
//	// Compute a*P + b*Q
//	aP := g.NewPoint().ScalarMult(a, P)
//	bQ := g.NewPoint().ScalarMult(b, Q)
//	sum := g.NewPoint().Add(aP, bQ)
//
// Scalar multiplication only depends on the multiplier modulo the group
// order n. Two integers congruent modulo n produce the same point; code
// built on these interfaces inherits that property.
//
// # Implementing a Group
//
//  1. Create a Scalar type that wraps your field element and implements [Scalar]
//  2. Create a Point type that wraps your curve point and implements [Point]
//  3. Create a Group type that implements [Group] as a factory
//
// See the bn254 and bjj packages for implementations.
//
// # Security Considerations
//
// Implementations must ensure:
//
//   - Scalar arithmetic is performed modulo the group order
//   - Random scalars are generated from the supplied source only
//   - Invalid curve points are rejected in SetBytes and SetCoordinates
//     with [ErrInvalidPoint]
package group
