package linsys

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/f3rmion/axb/bjj"
	"github.com/f3rmion/axb/bn254"
	"github.com/f3rmion/axb/group"
	"github.com/go-errors/errors"
	"github.com/stretchr/testify/require"
)

var groups = []group.Group{&bn254.BN254{}, &bjj.BJJ{}}

func consistentSystem() (Matrix, Vector, Vector) {
	a := NewMatrix(
		[]int64{3, 4, 2},
		[]int64{2, 3, 1},
		[]int64{1, 2, 3},
	)
	return a, NewVector(3, 2, 2), NewVector(21, 14, 13)
}

// otherGroup returns a group whose points g does not own.
func otherGroup(g group.Group) group.Group {
	if g.Name() == bn254.Name {
		return &bjj.BJJ{}
	}
	return &bn254.BN254{}
}

func randomVector(t *testing.T, n int) Vector {
	t.Helper()
	bound := big.NewInt(1 << 20)
	v := make(Vector, n)
	for i := range v {
		x, err := rand.Int(rand.Reader, bound)
		require.NoError(t, err)
		v[i] = x.Sub(x, big.NewInt(1<<19))
	}
	return v
}

func TestNewClaim(t *testing.T) {
	a, x, b := consistentSystem()

	t.Run("Valid", func(t *testing.T) {
		c, err := NewClaim(a, x, b)
		require.NoError(t, err)
		require.Equal(t, 3, c.Unknowns())
		require.True(t, c.Satisfied())
	})

	t.Run("Inconsistent", func(t *testing.T) {
		c, err := NewClaim(a, NewVector(1, 1, 2), b)
		require.NoError(t, err)
		require.False(t, c.Satisfied())
	})

	cases := []struct {
		name string
		a    Matrix
		x, b Vector
		want error
	}{
		{"ShortX", a, NewVector(3, 2), b, ErrDimensionMismatch},
		{"LongX", a, NewVector(3, 2, 2, 1), b, ErrDimensionMismatch},
		{"ShortB", a, x, NewVector(21, 14), ErrDimensionMismatch},
		{"EmptyMatrix", Matrix{}, Vector{}, Vector{}, ErrDimensionMismatch},
		{"EmptyRows", Matrix{Vector{}}, Vector{}, NewVector(0), ErrDimensionMismatch},
		{"Ragged", NewMatrix([]int64{1, 2}, []int64{3}), NewVector(1, 1), NewVector(3, 3), ErrDimensionMismatch},
		{"NilInA", Matrix{Vector{big.NewInt(1), nil}}, NewVector(1, 1), NewVector(1), ErrMissingEntry},
		{"NilInX", a, Vector{big.NewInt(1), nil, big.NewInt(1)}, b, ErrMissingEntry},
		{"NilInB", a, x, Vector{big.NewInt(1), nil, big.NewInt(1)}, ErrMissingEntry},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NewClaim(tc.a, tc.x, tc.b)
			require.Nil(t, c)
			require.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestClaimIsolation(t *testing.T) {
	a, x, b := consistentSystem()
	c, err := NewClaim(a, x, b)
	require.NoError(t, err)

	x[0].SetInt64(100)
	a[0][0].SetInt64(100)
	b[0].SetInt64(100)
	require.True(t, c.Satisfied(), "caller mutation leaked into the claim")

	st := c.Statement()
	st.A[1][1].SetInt64(-7)
	st.B[1] = big.NewInt(-7)
	require.Equal(t, int64(3), c.Statement().A[1][1].Int64())
	require.Equal(t, int64(14), c.Statement().B[1].Int64())
}

func TestNew(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)

	sys, err := New(&bn254.BN254{})
	require.NoError(t, err)
	require.Equal(t, bn254.Name, sys.Group().Name())
}

func TestCommit(t *testing.T) {
	for _, g := range groups {
		t.Run(g.Name(), func(t *testing.T) {
			sys, err := New(g)
			require.NoError(t, err)

			a, x, b := consistentSystem()
			c, err := NewClaim(a, x, b)
			require.NoError(t, err)

			proof := sys.Commit(c)
			require.Len(t, proof, 3)
			for i, xi := range x {
				want := g.NewPoint().ScalarMult(g.NewScalar().SetBigInt(xi), g.Generator())
				require.True(t, proof[i].Equal(want), "commitment %d", i)
			}

			again := sys.Commit(c)
			require.True(t, proof.Equal(again))
			require.Equal(t, proof.Digest(), again.Digest())
		})
	}
}

func TestHomomorphicDot(t *testing.T) {
	for _, g := range groups {
		t.Run(g.Name(), func(t *testing.T) {
			sys, err := New(g)
			require.NoError(t, err)

			t.Run("MatchesIntegerDot", func(t *testing.T) {
				for n := 1; n <= 6; n++ {
					v := randomVector(t, n)
					r := randomVector(t, n)
					proof := make(Proof, n)
					for i := range v {
						proof[i] = sys.commitTo(v[i])
					}

					got, err := sys.HomomorphicDot(proof, r)
					require.NoError(t, err)

					dot, err := r.Dot(v)
					require.NoError(t, err)
					require.True(t, got.Equal(sys.commitTo(dot)), "n=%d", n)
				}
			})

			t.Run("EachTermOnce", func(t *testing.T) {
				proof := Proof{sys.commitTo(big.NewInt(1)), sys.commitTo(big.NewInt(2)), sys.commitTo(big.NewInt(4)), sys.commitTo(big.NewInt(8))}
				got, err := sys.HomomorphicDot(proof, NewVector(1, 1, 1, 1))
				require.NoError(t, err)
				require.True(t, got.Equal(sys.commitTo(big.NewInt(15))))
			})

			t.Run("SingleColumn", func(t *testing.T) {
				got, err := sys.HomomorphicDot(Proof{sys.commitTo(big.NewInt(6))}, NewVector(7))
				require.NoError(t, err)
				require.True(t, got.Equal(sys.commitTo(big.NewInt(42))))
			})

			t.Run("Empty", func(t *testing.T) {
				got, err := sys.HomomorphicDot(Proof{}, Vector{})
				require.NoError(t, err)
				require.True(t, got.IsIdentity())
			})

			t.Run("LengthMismatch", func(t *testing.T) {
				_, err := sys.HomomorphicDot(Proof{sys.commitTo(big.NewInt(1))}, NewVector(1, 2))
				require.True(t, errors.Is(err, ErrLengthMismatch), "got %v", err)
			})

			t.Run("ForeignPoint", func(t *testing.T) {
				proof := Proof{sys.commitTo(big.NewInt(1)), otherGroup(g).Generator()}
				_, err := sys.HomomorphicDot(proof, NewVector(1, 1))
				require.True(t, errors.Is(err, ErrCurveMismatch), "got %v", err)
			})

			t.Run("NilPoint", func(t *testing.T) {
				_, err := sys.HomomorphicDot(Proof{nil}, NewVector(1))
				require.True(t, errors.Is(err, ErrMissingEntry), "got %v", err)
			})
		})
	}
}

func TestVerify(t *testing.T) {
	for _, g := range groups {
		t.Run(g.Name(), func(t *testing.T) {
			sys, err := New(g)
			require.NoError(t, err)
			a, x, b := consistentSystem()

			t.Run("ValidSystem", func(t *testing.T) {
				c, err := NewClaim(a, x, b)
				require.NoError(t, err)
				ok, err := sys.Verify(sys.Commit(c), c.Statement())
				require.NoError(t, err)
				require.True(t, ok)
			})

			t.Run("InvalidSystem", func(t *testing.T) {
				c, err := NewClaim(a, NewVector(1, 1, 2), b)
				require.NoError(t, err)
				ok, err := sys.Verify(sys.Commit(c), c.Statement())
				require.NoError(t, err)
				require.False(t, ok)
			})

			t.Run("OnlyLastRowFails", func(t *testing.T) {
				c, err := NewClaim(a, x, NewVector(21, 14, 12))
				require.NoError(t, err)
				ok, err := sys.Verify(sys.Commit(c), c.Statement())
				require.NoError(t, err)
				require.False(t, ok)
			})

			t.Run("NegativeEntries", func(t *testing.T) {
				c, err := NewClaim(NewMatrix([]int64{-2, 5}, []int64{4, -1}), NewVector(-3, 7), NewVector(41, -19))
				require.NoError(t, err)
				require.True(t, c.Satisfied())
				ok, err := sys.Verify(sys.Commit(c), c.Statement())
				require.NoError(t, err)
				require.True(t, ok)
			})

			t.Run("SumOfTwo", func(t *testing.T) {
				// x + y == 15
				c, err := NewClaim(NewMatrix([]int64{1, 1}), NewVector(5, 10), NewVector(15))
				require.NoError(t, err)
				ok, err := sys.Verify(sys.Commit(c), c.Statement())
				require.NoError(t, err)
				require.True(t, ok)
			})

			t.Run("CongruentModOrder", func(t *testing.T) {
				n := new(big.Int).SetBytes(g.Order())
				x := Vector{new(big.Int).Add(n, big.NewInt(5))}
				c, err := NewClaim(NewMatrix([]int64{1}), x, NewVector(5))
				require.NoError(t, err)
				require.False(t, c.Satisfied())

				ok, err := sys.Verify(sys.Commit(c), c.Statement())
				require.NoError(t, err)
				require.True(t, ok, "verification only holds modulo the group order")
			})

			t.Run("DimensionMismatch", func(t *testing.T) {
				c, err := NewClaim(a, x, b)
				require.NoError(t, err)
				proof := sys.Commit(c)

				_, err = sys.Verify(proof[:2], c.Statement())
				require.True(t, errors.Is(err, ErrDimensionMismatch), "got %v", err)

				_, err = sys.Verify(proof, &Statement{A: a, B: NewVector(21, 14)})
				require.True(t, errors.Is(err, ErrDimensionMismatch), "got %v", err)
			})
		})
	}
}

func TestProofEncoding(t *testing.T) {
	for _, g := range groups {
		t.Run(g.Name(), func(t *testing.T) {
			sys, err := New(g)
			require.NoError(t, err)
			a, x, b := consistentSystem()
			c, err := NewClaim(a, x, b)
			require.NoError(t, err)
			proof := sys.Commit(c)

			data, err := MarshalProof(g, proof)
			require.NoError(t, err)

			decoded, err := UnmarshalProof(g, data)
			require.NoError(t, err)
			require.True(t, decoded.Equal(proof))

			ok, err := sys.Verify(decoded, c.Statement())
			require.NoError(t, err)
			require.True(t, ok)

			again, err := MarshalProof(g, proof)
			require.NoError(t, err)
			require.Equal(t, data, again, "encoding must be deterministic")
		})
	}

	t.Run("CurveMismatch", func(t *testing.T) {
		g := &bn254.BN254{}
		data, err := MarshalProof(g, Proof{g.Generator()})
		require.NoError(t, err)

		_, err = UnmarshalProof(&bjj.BJJ{}, data)
		require.True(t, errors.Is(err, ErrCurveMismatch), "got %v", err)
	})

	t.Run("InvalidPoint", func(t *testing.T) {
		// Uncompressed encoding of (1, 3), which is not on y^2 = x^3 + 3.
		raw := make([]byte, 64)
		raw[31] = 1
		raw[63] = 3
		data, err := encMode.Marshal(&encodedProof{Curve: bn254.Name, Points: [][]byte{raw}})
		require.NoError(t, err)

		_, err = UnmarshalProof(&bn254.BN254{}, data)
		require.True(t, errors.Is(err, group.ErrInvalidPoint), "got %v", err)
	})

	t.Run("TruncatedPoint", func(t *testing.T) {
		data, err := encMode.Marshal(&encodedProof{Curve: bjj.Name, Points: [][]byte{{0x01, 0x02}}})
		require.NoError(t, err)

		_, err = UnmarshalProof(&bjj.BJJ{}, data)
		require.True(t, errors.Is(err, group.ErrInvalidPoint), "got %v", err)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := UnmarshalProof(&bn254.BN254{}, []byte{0xff, 0x00, 0x13})
		require.Error(t, err)
	})
}

func TestDigest(t *testing.T) {
	g := &bn254.BN254{}
	sys, err := New(g)
	require.NoError(t, err)

	p1 := Proof{sys.commitTo(big.NewInt(1)), sys.commitTo(big.NewInt(2))}
	p2 := Proof{sys.commitTo(big.NewInt(2)), sys.commitTo(big.NewInt(1))}

	require.NotEqual(t, p1.Digest(), p2.Digest(), "digest must depend on order")
	require.Len(t, p1.String(), 64)
}

func TestVerifyForeignProof(t *testing.T) {
	for _, g := range groups {
		t.Run(g.Name(), func(t *testing.T) {
			sys, err := New(g)
			require.NoError(t, err)
			other, err := New(otherGroup(g))
			require.NoError(t, err)

			a, x, b := consistentSystem()
			claim, err := NewClaim(a, x, b)
			require.NoError(t, err)
			proof := other.Commit(claim)
			st := claim.Statement()

			ok, err := sys.Verify(proof, st)
			require.True(t, errors.Is(err, ErrCurveMismatch), "got %v", err)
			require.False(t, ok)

			mixed := sys.Commit(claim)
			mixed[2] = proof[2]
			ok, err = sys.Verify(mixed, st)
			require.True(t, errors.Is(err, ErrCurveMismatch), "got %v", err)
			require.False(t, ok)
		})
	}
}

func TestDigestNilPoint(t *testing.T) {
	sys, err := New(&bn254.BN254{})
	require.NoError(t, err)

	one := sys.commitTo(big.NewInt(1))
	withNil := Proof{one, nil}

	require.NotPanics(t, func() { _ = withNil.String() })
	require.Equal(t, withNil.Digest(), Proof{one, nil}.Digest())
	require.NotEqual(t, withNil.Digest(), Proof{one}.Digest())
	require.NotEqual(t, withNil.Digest(), Proof{nil, one}.Digest())
}
