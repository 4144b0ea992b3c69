package linsys

import (
	"fmt"

	"github.com/f3rmion/axb/group"
	"github.com/fxamacker/cbor/v2"
	"github.com/go-errors/errors"
)

// MaxProofPoints bounds the number of commitments accepted when decoding.
const MaxProofPoints = 1 << 16

// encodedProof is the CBOR envelope of a Proof.
type encodedProof struct {
	Curve  string   `cbor:"1,keyasint"`
	Points [][]byte `cbor:"2,keyasint"`
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encOptions := cbor.EncOptions{
		IndefLength: cbor.IndefLengthForbidden,
		Sort:        cbor.SortCoreDeterministic,
		TagsMd:      cbor.TagsForbidden,
	}
	if encMode, err = encOptions.EncMode(); err != nil {
		panic(err)
	}
	decOptions := cbor.DecOptions{
		IndefLength:      cbor.IndefLengthForbidden,
		DupMapKey:        cbor.DupMapKeyEnforcedAPF,
		MaxArrayElements: MaxProofPoints,
		TagsMd:           cbor.TagsForbidden,
	}
	if decMode, err = decOptions.DecMode(); err != nil {
		panic(err)
	}
}

// MarshalProof encodes proof as deterministic CBOR tagged with the name of
// the group its points belong to.
func MarshalProof(g group.Group, proof Proof) ([]byte, error) {
	env := encodedProof{
		Curve:  g.Name(),
		Points: make([][]byte, len(proof)),
	}
	for i, pt := range proof {
		env.Points[i] = pt.Bytes()
	}
	data, err := encMode.Marshal(&env)
	if err != nil {
		return nil, errors.WrapPrefix(err, "failed to encode proof", 0)
	}
	return data, nil
}

// UnmarshalProof decodes a proof produced by [MarshalProof]. Every point
// is validated against g; off-curve or foreign points yield
// [group.ErrInvalidPoint].
func UnmarshalProof(g group.Group, data []byte) (Proof, error) {
	var env encodedProof
	if err := decMode.Unmarshal(data, &env); err != nil {
		return nil, errors.WrapPrefix(err, "failed to decode proof", 0)
	}
	if env.Curve != g.Name() {
		return nil, errors.WrapPrefix(ErrCurveMismatch,
			fmt.Sprintf("got %q, want %q", env.Curve, g.Name()), 0)
	}
	proof := make(Proof, len(env.Points))
	for i, raw := range env.Points {
		pt, err := g.NewPoint().SetBytes(raw)
		if err != nil {
			return nil, errors.WrapPrefix(err, fmt.Sprintf("commitment %d", i), 0)
		}
		proof[i] = pt
	}
	return proof, nil
}
