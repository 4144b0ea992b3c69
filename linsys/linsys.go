package linsys

import (
	"math/big"

	"github.com/f3rmion/axb/group"
	"github.com/go-errors/errors"
)

// System binds the protocol primitives to a curve group.
type System struct {
	group group.Group
}

// New creates a System over the given group.
func New(g group.Group) (*System, error) {
	if g == nil {
		return nil, errors.New("group must not be nil")
	}
	return &System{group: g}, nil
}

// Group returns the group the System commits in.
func (s *System) Group() group.Group {
	return s.group
}

// scalar maps an integer onto the group's scalar field.
func (s *System) scalar(v *big.Int) group.Scalar {
	return s.group.NewScalar().SetBigInt(v)
}

// commitTo returns v*G.
func (s *System) commitTo(v *big.Int) group.Point {
	return s.group.NewPoint().ScalarMult(s.scalar(v), s.group.Generator())
}
