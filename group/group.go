package group

import (
	"io"
	"math/big"

	"github.com/go-errors/errors"
)

// ErrInvalidPoint is returned when external data (an encoding or a pair of
// affine coordinates) does not describe an element of the group.
var ErrInvalidPoint = errors.New("invalid curve point")

// Scalar represents an element of the scalar field associated with a
// cryptographic group. Scalars are integers modulo the group order n and
// are used as multipliers in scalar multiplication.
//
// All arithmetic methods use a mutable receiver pattern: they modify
// the receiver, store the result in it, and return it.
//
// Implementations must ensure all operations produce results in the
// valid range [0, n).
type Scalar interface {
	// Add sets the receiver to a+b and returns it.
	Add(a, b Scalar) Scalar
	// Sub sets the receiver to a-b and returns it.
	Sub(a, b Scalar) Scalar
	// Mul sets the receiver to a*b and returns it.
	Mul(a, b Scalar) Scalar
	// Negate sets the receiver to -a and returns it.
	Negate(a Scalar) Scalar
	// Set sets the receiver to a and returns it.
	Set(a Scalar) Scalar
	// SetBigInt sets the receiver to v mod n and returns it.
	// Negative values are accepted and map to their additive inverse.
	SetBigInt(v *big.Int) Scalar
	// BigInt returns the canonical value of the scalar in [0, n).
	BigInt() *big.Int
	// Bytes returns the canonical byte representation of the scalar.
	Bytes() []byte
	// SetBytes sets the receiver from a big-endian byte slice, reduced
	// modulo n, and returns it.
	SetBytes(data []byte) (Scalar, error)
	// Equal reports whether the receiver equals b.
	Equal(b Scalar) bool
	// IsZero reports whether the receiver is zero.
	IsZero() bool
}

// Point represents an element of a cryptographic group, a point on an
// elliptic curve. Points support addition, subtraction, negation,
// and scalar multiplication.
//
// Like [Scalar], all arithmetic methods use a mutable receiver pattern.
//
// The identity element (point at infinity) is the additive identity:
// P + Identity = P for all points P.
type Point interface {
	// Add sets the receiver to a+b and returns it.
	Add(a, b Point) Point
	// Sub sets the receiver to a-b and returns it.
	Sub(a, b Point) Point
	// Negate sets the receiver to -a and returns it.
	Negate(a Point) Point
	// ScalarMult sets the receiver to s*p and returns it.
	ScalarMult(s Scalar, p Point) Point
	// Set sets the receiver to a and returns it.
	Set(a Point) Point
	// Bytes returns the canonical byte representation of the point.
	Bytes() []byte
	// SetBytes sets the receiver from a byte slice and returns it.
	// Returns an error wrapping [ErrInvalidPoint] if the data does not
	// encode a group element.
	SetBytes(data []byte) (Point, error)
	// SetCoordinates sets the receiver from affine coordinates and
	// returns it. Returns an error wrapping [ErrInvalidPoint] if (x, y)
	// is not a group element.
	SetCoordinates(x, y *big.Int) (Point, error)
	// Coordinates returns the affine coordinates of the point.
	Coordinates() (x, y *big.Int)
	// Equal reports whether the receiver equals b.
	Equal(b Point) bool
	// IsIdentity reports whether the receiver is the identity element.
	IsIdentity() bool
}

// Group defines a prime-order elliptic-curve group. It provides factory
// methods for creating scalars and points and access to the group's
// generator and order.
//
// Example usage:
//
//	g := &bn254.BN254{}
//	k := g.NewScalar().SetBigInt(big.NewInt(21))
//	point := g.NewPoint().ScalarMult(k, g.Generator())
type Group interface {
	// Name returns a stable identifier of the curve.
	Name() string
	// NewScalar returns a new zero scalar.
	NewScalar() Scalar
	// NewPoint returns a new identity point.
	NewPoint() Point
	// Generator returns the group's base point.
	Generator() Point
	// RandomScalar returns a uniformly random scalar read from r.
	RandomScalar(r io.Reader) (Scalar, error)
	// Order returns the group order as a big-endian byte slice.
	Order() []byte
	// Owns reports whether p is a non-nil point of this group
	// implementation. Points of other groups must not be mixed in
	// arithmetic with this group's points.
	Owns(p Point) bool
}
