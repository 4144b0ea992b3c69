// Package bjj provides a Baby Jubjub elliptic curve implementation of the
// [group.Group] interface.
//
// Baby Jubjub is a twisted Edwards curve defined over the scalar field of
// BN254 (also known as alt_bn128). It is commonly used in zero-knowledge
// proof systems because its arithmetic is cheap inside BN254 circuits.
//
// This package wraps the Baby Jubjub implementation from gnark-crypto,
// providing a clean interface that satisfies [group.Group], [group.Scalar],
// and [group.Point].
//
// # Curve Parameters
//
// Baby Jubjub is defined by the equation:
//
//	a*x^2 + y^2 = 1 + d*x^2*y^2
//
// where a = 168700 and d = 168696 over the BN254 scalar field.
//
// The curve has a prime-order subgroup of size:
//
//	2736030358979909402780800718157159386076813972158567259200215660948447373041
//
// # Usage
//
// Create a BJJ group and commit to a solution vector with it:
//
//	g := &bjj.BJJ{}
//	p := session.NewProver(g)
//
// # Security
//
// The curve has cofactor 8. Points entering through [Point.SetBytes] or
// [Point.SetCoordinates] are checked to lie in the prime-order subgroup,
// so small-order components cannot be smuggled into a proof.
package bjj
