package bjj

import (
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"
	"github.com/f3rmion/axb/group"
	"github.com/go-errors/errors"
)

// Name identifies the curve in encoded proofs.
const Name = "babyjubjub"

// curveOrder is the Baby Jubjub subgroup order.
// This is distinct from the BN254 scalar field order (Fr).
var curveOrder *big.Int

// fieldModulus is the base field of Baby Jubjub, the BN254 scalar field.
var fieldModulus = fr.Modulus()

func init() {
	curve := twistededwards.GetEdwardsCurve()
	curveOrder = new(big.Int).Set(&curve.Order)
}

// Scalar represents an element of the Baby Jubjub scalar field.
// It implements [group.Scalar] using big.Int with modular arithmetic
// over the curve's subgroup order.
type Scalar struct {
	inner *big.Int
}

func newScalar() *Scalar {
	return &Scalar{inner: new(big.Int)}
}

// reduce ensures the scalar is in the range [0, curveOrder).
func (s *Scalar) reduce() {
	s.inner.Mod(s.inner, curveOrder)
}

// Add sets s to a + b (mod curveOrder) and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	s.inner.Add(aScalar.inner, bScalar.inner)
	s.reduce()
	return s
}

// Sub sets s to a - b (mod curveOrder) and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	s.inner.Sub(aScalar.inner, bScalar.inner)
	s.reduce()
	return s
}

// Mul sets s to a * b (mod curveOrder) and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	s.inner.Mul(aScalar.inner, bScalar.inner)
	s.reduce()
	return s
}

// Negate sets s to -a (mod curveOrder) and returns s.
func (s *Scalar) Negate(a group.Scalar) group.Scalar {
	s.inner.Neg(a.(*Scalar).inner)
	s.reduce()
	return s
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	s.inner.Set(a.(*Scalar).inner)
	return s
}

// SetBigInt sets s to v (mod curveOrder) and returns s.
func (s *Scalar) SetBigInt(v *big.Int) group.Scalar {
	s.inner.Set(v)
	s.reduce()
	return s
}

// BigInt returns a copy of the reduced value of s.
func (s *Scalar) BigInt() *big.Int {
	return new(big.Int).Set(s.inner)
}

// Bytes returns the scalar as a 32-byte big-endian representation.
func (s *Scalar) Bytes() []byte {
	padded := make([]byte, 32)
	s.inner.FillBytes(padded)
	return padded
}

// SetBytes sets s from a big-endian byte slice and returns s.
// The value is reduced modulo the curve order.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	s.inner.SetBytes(data)
	s.reduce()
	return s, nil
}

// Equal reports whether s and b represent the same scalar value.
func (s *Scalar) Equal(b group.Scalar) bool {
	return s.inner.Cmp(b.(*Scalar).inner) == 0
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.inner.Sign() == 0
}

// Point represents a point on the Baby Jubjub curve.
// It implements [group.Point] by wrapping gnark-crypto's PointAffine.
//
// Points are represented in affine coordinates (x, y) on the twisted
// Edwards curve. The identity element is (0, 1).
type Point struct {
	inner twistededwards.PointAffine
}

func identity() *Point {
	var p Point
	p.inner.X.SetZero()
	p.inner.Y.SetOne()
	return &p
}

// Add sets p to a + b and returns p.
func (p *Point) Add(a, b group.Point) group.Point {
	p.inner.Add(&a.(*Point).inner, &b.(*Point).inner)
	return p
}

// Sub sets p to a - b and returns p.
func (p *Point) Sub(a, b group.Point) group.Point {
	var negB twistededwards.PointAffine
	negB.Neg(&b.(*Point).inner)
	p.inner.Add(&a.(*Point).inner, &negB)
	return p
}

// Negate sets p to -a and returns p.
func (p *Point) Negate(a group.Point) group.Point {
	p.inner.Neg(&a.(*Point).inner)
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	scalar := s.(*Scalar)
	if scalar.IsZero() {
		p.inner = identity().inner
		return p
	}
	p.inner.ScalarMultiplication(&q.(*Point).inner, scalar.inner)
	return p
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a group.Point) group.Point {
	p.inner.Set(&a.(*Point).inner)
	return p
}

// Bytes returns the compressed point encoding as a byte slice.
func (p *Point) Bytes() []byte {
	bytes := p.inner.Bytes()
	return bytes[:]
}

// SetBytes sets p from a compressed point encoding and returns p.
// The decoded point must lie in the prime-order subgroup.
func (p *Point) SetBytes(data []byte) (group.Point, error) {
	var decoded twistededwards.PointAffine
	if err := decoded.Unmarshal(data); err != nil {
		return nil, errors.WrapPrefix(group.ErrInvalidPoint, err.Error(), 0)
	}
	if err := checkSubgroup(&decoded); err != nil {
		return nil, err
	}
	p.inner = decoded
	return p, nil
}

// SetCoordinates sets p to the affine point (x, y) and returns p.
func (p *Point) SetCoordinates(x, y *big.Int) (group.Point, error) {
	if !inField(x) || !inField(y) {
		return nil, errors.WrapPrefix(group.ErrInvalidPoint, "coordinate outside base field", 0)
	}
	var candidate twistededwards.PointAffine
	candidate.X.SetBigInt(x)
	candidate.Y.SetBigInt(y)
	if err := checkSubgroup(&candidate); err != nil {
		return nil, err
	}
	p.inner = candidate
	return p, nil
}

// Coordinates returns the affine coordinates of p; (0, 1) for the identity.
func (p *Point) Coordinates() (x, y *big.Int) {
	return p.inner.X.BigInt(new(big.Int)), p.inner.Y.BigInt(new(big.Int))
}

// Equal reports whether p and b represent the same curve point.
func (p *Point) Equal(b group.Point) bool {
	return p.inner.Equal(&b.(*Point).inner)
}

// IsIdentity reports whether p is the identity element (0, 1).
func (p *Point) IsIdentity() bool {
	return p.inner.IsZero()
}

// checkSubgroup rejects points off the curve and points of the small
// cofactor-8 torsion part.
func checkSubgroup(pt *twistededwards.PointAffine) error {
	if !pt.IsOnCurve() {
		return errors.WrapPrefix(group.ErrInvalidPoint, "point not on curve", 0)
	}
	var check twistededwards.PointAffine
	check.ScalarMultiplication(pt, curveOrder)
	if !check.IsZero() {
		return errors.WrapPrefix(group.ErrInvalidPoint, "point not in prime-order subgroup", 0)
	}
	return nil
}

func inField(v *big.Int) bool {
	return v != nil && v.Sign() >= 0 && v.Cmp(fieldModulus) < 0
}

// BJJ implements [group.Group] for the Baby Jubjub curve.
//
// BJJ is a zero-sized type that provides access to Baby Jubjub curve
// operations. Create an instance with &BJJ{} or new(BJJ).
type BJJ struct{}

// Name returns the curve identifier used in encoded proofs.
func (g *BJJ) Name() string {
	return Name
}

// NewScalar returns a new scalar initialized to zero.
func (g *BJJ) NewScalar() group.Scalar {
	return newScalar()
}

// NewPoint returns a new point initialized to the identity element (0, 1).
func (g *BJJ) NewPoint() group.Point {
	return identity()
}

// Generator returns the standard base point for the Baby Jubjub curve.
func (g *BJJ) Generator() group.Point {
	var p Point
	p.inner = twistededwards.GetEdwardsCurve().Base
	return &p
}

// RandomScalar generates a random scalar using the provided random
// source, reduced into [0, curveOrder).
func (g *BJJ) RandomScalar(r io.Reader) (group.Scalar, error) {
	var buf [64]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	s := newScalar()
	s.inner.SetBytes(buf[:])
	s.reduce()
	return s, nil
}

// Order returns the order of the Baby Jubjub curve's prime-order subgroup
// as a big-endian byte slice.
func (g *BJJ) Order() []byte {
	return curveOrder.Bytes()
}

// Owns reports whether p was created by this package.
func (g *BJJ) Owns(p group.Point) bool {
	pt, ok := p.(*Point)
	return ok && pt != nil
}
