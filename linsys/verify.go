package linsys

import (
	"fmt"
	"math/big"

	"github.com/f3rmion/axb/group"
	"github.com/go-errors/errors"
)

// CheckProof verifies that every commitment of proof is a point of the
// System's group. Foreign points fail with [ErrCurveMismatch] and nil
// points with [ErrMissingEntry].
func (s *System) CheckProof(proof Proof) error {
	for i, pt := range proof {
		if pt == nil {
			return errors.WrapPrefix(ErrMissingEntry, fmt.Sprintf("commitment %d is nil", i), 0)
		}
		if !s.group.Owns(pt) {
			return errors.WrapPrefix(ErrCurveMismatch,
				fmt.Sprintf("commitment %d is not a %s point", i, s.group.Name()), 0)
		}
	}
	return nil
}

// HomomorphicDot computes sum(coeffs[j] * proof[j]) as a left fold seeded
// with the identity. When proof[j] = x[j]*G the result is (coeffs·x)*G,
// with the dot product taken modulo the group order.
func (s *System) HomomorphicDot(proof Proof, coeffs Vector) (group.Point, error) {
	if len(proof) != len(coeffs) {
		return nil, errors.WrapPrefix(ErrLengthMismatch,
			fmt.Sprintf("%d commitments against %d coefficients", len(proof), len(coeffs)), 0)
	}
	if err := s.CheckProof(proof); err != nil {
		return nil, err
	}
	acc := s.group.NewPoint()
	for j, c := range coeffs {
		if c == nil {
			return nil, errors.WrapPrefix(ErrMissingEntry, fmt.Sprintf("term %d is nil", j), 0)
		}
		term := s.group.NewPoint().ScalarMult(s.scalar(c), proof[j])
		acc = s.group.NewPoint().Add(acc, term)
	}
	return acc, nil
}

// CheckRow reports whether row·x ≡ bi (mod n), where proof commits to x.
func (s *System) CheckRow(proof Proof, row Vector, bi *big.Int) (bool, error) {
	lhs, err := s.HomomorphicDot(proof, row)
	if err != nil {
		return false, err
	}
	return lhs.Equal(s.commitTo(bi)), nil
}

// Verify checks every row of the statement against the proof and reports
// whether all of them hold. Shape errors are returned before any curve
// arithmetic; an unsatisfied row is (false, nil).
func (s *System) Verify(proof Proof, st *Statement) (bool, error) {
	if err := st.Validate(len(proof)); err != nil {
		return false, err
	}
	if err := s.CheckProof(proof); err != nil {
		return false, err
	}
	for i, row := range st.A {
		ok, err := s.CheckRow(proof, row, st.B[i])
		if err != nil {
			return false, errors.WrapPrefix(err, fmt.Sprintf("row %d", i), 0)
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
