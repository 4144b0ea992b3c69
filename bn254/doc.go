// Package bn254 provides the G1 group of the BN254 (alt_bn128) curve as an
// implementation of the [group.Group] interface.
//
// BN254 is the pairing-friendly curve exposed by the Ethereum precompiles.
// Its first source group G1 is defined by
//
//	y^2 = x^3 + 3
//
// over a 254-bit prime field, has cofactor 1 and the standard generator
// (1, 2). The group order is
//
//	21888242871839275222246405745257275088548364400416034343698204186575808495617
//
// This package wraps the G1 arithmetic from gnark-crypto. It is the default
// group for committing to solution vectors.
//
// # Usage
//
//	g := &bn254.BN254{}
//	k := g.NewScalar().SetBigInt(big.NewInt(15))
//	commitment := g.NewPoint().ScalarMult(k, g.Generator())
//
// # Security
//
// Any on-curve point is a member of G1 since the cofactor is 1, so
// [Point.SetBytes] and [Point.SetCoordinates] only need the curve equation
// and field range checks to reject foreign data.
package bn254
