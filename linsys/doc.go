// Package linsys implements the primitives of a one-shot proof that the
// prover knows an integer vector x with A·x = b, without sending x.
//
// The proof is the list of commitments x_i*G for a group generator G.
// Scalar multiplication is additive in its multiplier, so for a row a of A
//
//	a_1*(x_1*G) + ... + a_c*(x_c*G) = (a·x)*G
//
// and the verifier, who knows A and b but not x, checks each row by
// comparing the left side, computed by [System.HomomorphicDot], against
// b_i*G.
//
// # Flow
//
//	sys, _ := linsys.New(&bn254.BN254{})
//	claim, err := linsys.NewClaim(A, x, b)   // prover side
//	proof := sys.Commit(claim)
//	ok, err := sys.Verify(proof, claim.Statement()) // verifier side
//
// Proofs cross process boundaries with [MarshalProof] and
// [UnmarshalProof]; decoding is where untrusted points enter the group and
// are validated.
//
// # Limitations
//
// Commitments depend on x only modulo the group order n, so a passing
// verification shows Σ A[i][j]·x[j] ≡ b[i] (mod n), not exact integer
// equality. For systems whose values stay far below n the two coincide.
// Use [Claim.Satisfied] when exact equality must be checked by the party
// holding x.
//
// Commitments are not blinded. Anyone who can enumerate candidate values
// of x_i can test them against the proof, so small solutions are not
// hidden.
package linsys
