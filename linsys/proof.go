package linsys

import (
	"encoding/hex"

	"github.com/f3rmion/axb/group"
	"golang.org/x/crypto/blake2b"
)

// digestPrefix domain-separates proof digests from other Blake2b uses.
const digestPrefix = "AXB-PROOF-BLAKE2B256-v1"

// Proof is the ordered list of commitments x_i*G, one per column of A.
type Proof []group.Point

// Commit produces the proof for a claim: element i is x[i]*G.
// The result depends only on x, so repeated calls agree point by point.
func (s *System) Commit(c *Claim) Proof {
	proof := make(Proof, len(c.x))
	for i, xi := range c.x {
		proof[i] = s.commitTo(xi)
	}
	return proof
}

// Equal reports whether p and q hold equal points in the same order.
func (p Proof) Equal(q Proof) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if !p[i].Equal(q[i]) {
			return false
		}
	}
	return true
}

// nilMarker stands in for a missing commitment in digests. Point
// encodings are never a single byte, so it cannot collide with one.
var nilMarker = []byte{0x00}

// Digest returns a Blake2b-256 fingerprint of the proof's point encodings.
// Nil commitments are hashed as a fixed marker.
func (p Proof) Digest() [32]byte {
	hasher, _ := blake2b.New256(nil)
	hasher.Write([]byte(digestPrefix))
	for _, pt := range p {
		if pt == nil {
			hasher.Write(nilMarker)
			continue
		}
		hasher.Write(pt.Bytes())
	}
	var out [32]byte
	copy(out[:], hasher.Sum(nil))
	return out
}

// String returns the hex digest, so logging a proof never prints
// coordinates.
func (p Proof) String() string {
	d := p.Digest()
	return hex.EncodeToString(d[:])
}
