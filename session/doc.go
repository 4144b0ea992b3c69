// Package session provides a high-level API for proving knowledge of a
// solution to a public linear system A·x = b. It wraps the primitives in
// the [linsys] package with a stateful [Prover] that keeps x to itself and
// a stateless [Verifier].
//
// # Proving
//
//	p, err := session.NewProver(&bn254.BN254{})
//	if err != nil {
//		return err
//	}
//	if err := p.SetClaim(A, x, b); err != nil {
//		return err // linsys.ErrDimensionMismatch
//	}
//	proof, err := p.GenerateProof()
//
//	// Publish A and b (p.PublicView()) together with the proof.
//
// # Verifying
//
//	v, err := session.NewVerifier(&bn254.BN254{}, session.WithWorkers(4))
//	if err != nil {
//		return err
//	}
//	ok, err := v.Verify(proof, A, b)
//
// A false result means the proof does not match the statement; errors are
// reserved for malformed input such as mismatched dimensions or invalid
// curve points.
//
// # Transport Agnostic
//
// This package does not handle network communication. Proofs can be
// serialized with [linsys.MarshalProof] and checked on arrival with
// [Verifier.VerifyEncoded].
package session
