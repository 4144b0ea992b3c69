package bn254

import (
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/f3rmion/axb/group"
	"github.com/go-errors/errors"
)

// Name identifies the curve in encoded proofs.
const Name = "bn254-g1"

// groupOrder is the order r of G1, which equals the modulus of fr.
var groupOrder = fr.Modulus()

// baseModulus is the characteristic p of the field G1 is defined over.
var baseModulus = fp.Modulus()

// g1Gen is the standard generator (1, 2) of G1.
var g1Gen bn254.G1Affine

func init() {
	_, _, g1Gen, _ = bn254.Generators()
}

// Scalar represents an element of the BN254 scalar field Fr.
// It implements [group.Scalar] using big.Int with modular arithmetic
// over the order of G1.
type Scalar struct {
	inner *big.Int
}

func newScalar() *Scalar {
	return &Scalar{inner: new(big.Int)}
}

// reduce brings the scalar into [0, groupOrder). big.Int.Mod is Euclidean,
// so negative values land on their additive inverse.
func (s *Scalar) reduce() {
	s.inner.Mod(s.inner, groupOrder)
}

// Add sets s to a + b (mod r) and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	s.inner.Add(a.(*Scalar).inner, b.(*Scalar).inner)
	s.reduce()
	return s
}

// Sub sets s to a - b (mod r) and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	s.inner.Sub(a.(*Scalar).inner, b.(*Scalar).inner)
	s.reduce()
	return s
}

// Mul sets s to a * b (mod r) and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	s.inner.Mul(a.(*Scalar).inner, b.(*Scalar).inner)
	s.reduce()
	return s
}

// Negate sets s to -a (mod r) and returns s.
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

// SetBigInt sets s to v (mod r) and returns s.
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
	out := make([]byte, fr.Bytes)
	s.inner.FillBytes(out)
	return out
}

// SetBytes sets s from a big-endian byte slice and returns s.
// The value is reduced modulo r.
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

// Point represents a point of BN254 G1 in affine coordinates.
// It implements [group.Point] by wrapping gnark-crypto's G1Affine.
//
// The identity element is encoded as (0, 0), which is not on the curve
// y^2 = x^3 + 3.
type Point struct {
	inner bn254.G1Affine
}

// Add sets p to a + b and returns p.
func (p *Point) Add(a, b group.Point) group.Point {
	p.inner.Add(&a.(*Point).inner, &b.(*Point).inner)
	return p
}

// Sub sets p to a - b and returns p.
func (p *Point) Sub(a, b group.Point) group.Point {
	var negB bn254.G1Affine
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
	qPoint := q.(*Point)
	if scalar.IsZero() || qPoint.IsIdentity() {
		p.inner = bn254.G1Affine{}
		return p
	}
	p.inner.ScalarMultiplication(&qPoint.inner, scalar.inner)
	return p
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a group.Point) group.Point {
	p.inner = a.(*Point).inner
	return p
}

// Bytes returns the 32-byte compressed point encoding.
func (p *Point) Bytes() []byte {
	b := p.inner.Bytes()
	return b[:]
}

// SetBytes sets p from a compressed or uncompressed encoding and returns p.
func (p *Point) SetBytes(data []byte) (group.Point, error) {
	var decoded bn254.G1Affine
	n, err := decoded.SetBytes(data)
	if err != nil {
		return nil, errors.WrapPrefix(group.ErrInvalidPoint, err.Error(), 0)
	}
	if n != len(data) {
		return nil, errors.WrapPrefix(group.ErrInvalidPoint, "trailing bytes after point encoding", 0)
	}
	if !decoded.IsInfinity() && !decoded.IsOnCurve() {
		return nil, errors.WrapPrefix(group.ErrInvalidPoint, "point not on curve", 0)
	}
	p.inner = decoded
	return p, nil
}

// SetCoordinates sets p to the affine point (x, y) and returns p.
// (0, 0) is accepted as the identity.
func (p *Point) SetCoordinates(x, y *big.Int) (group.Point, error) {
	if !inField(x) || !inField(y) {
		return nil, errors.WrapPrefix(group.ErrInvalidPoint, "coordinate outside base field", 0)
	}
	var candidate bn254.G1Affine
	candidate.X.SetBigInt(x)
	candidate.Y.SetBigInt(y)
	if !candidate.IsInfinity() && !candidate.IsOnCurve() {
		return nil, errors.WrapPrefix(group.ErrInvalidPoint, "point not on curve", 0)
	}
	p.inner = candidate
	return p, nil
}

// Coordinates returns the affine coordinates of p; (0, 0) for the identity.
func (p *Point) Coordinates() (x, y *big.Int) {
	return p.inner.X.BigInt(new(big.Int)), p.inner.Y.BigInt(new(big.Int))
}

// Equal reports whether p and b represent the same curve point.
func (p *Point) Equal(b group.Point) bool {
	return p.inner.Equal(&b.(*Point).inner)
}

// IsIdentity reports whether p is the point at infinity.
func (p *Point) IsIdentity() bool {
	return p.inner.IsInfinity()
}

func inField(v *big.Int) bool {
	return v != nil && v.Sign() >= 0 && v.Cmp(baseModulus) < 0
}

// BN254 implements [group.Group] for the G1 subgroup of the BN254
// (alt_bn128) pairing-friendly curve.
//
// BN254 is a zero-sized type. Create an instance with &BN254{} or new(BN254).
type BN254 struct{}

// Name returns the curve identifier used in encoded proofs.
func (g *BN254) Name() string {
	return Name
}

// NewScalar returns a new scalar initialized to zero.
func (g *BN254) NewScalar() group.Scalar {
	return newScalar()
}

// NewPoint returns a new point initialized to the identity element.
func (g *BN254) NewPoint() group.Point {
	return &Point{}
}

// Generator returns the standard generator (1, 2) of G1.
func (g *BN254) Generator() group.Point {
	return &Point{inner: g1Gen}
}

// RandomScalar reads 64 bytes from r and reduces them modulo the group
// order, keeping the bias of the reduction negligible.
func (g *BN254) RandomScalar(r io.Reader) (group.Scalar, error) {
	var buf [2 * fr.Bytes]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	s := newScalar()
	s.inner.SetBytes(buf[:])
	s.reduce()
	return s, nil
}

// Order returns the order of G1 as a big-endian byte slice.
func (g *BN254) Order() []byte {
	return groupOrder.Bytes()
}

// Owns reports whether p was created by this package.
func (g *BN254) Owns(p group.Point) bool {
	pt, ok := p.(*Point)
	return ok && pt != nil
}
