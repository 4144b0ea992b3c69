package linsys

import (
	"fmt"
	"math/big"

	"github.com/go-errors/errors"
)

// Vector is a sequence of arbitrary-precision integers.
type Vector []*big.Int

// Matrix is a row-major sequence of equal-length integer rows.
type Matrix []Vector

// NewVector builds a Vector from int64 values.
func NewVector(values ...int64) Vector {
	v := make(Vector, len(values))
	for i, x := range values {
		v[i] = big.NewInt(x)
	}
	return v
}

// NewMatrix builds a Matrix from int64 rows.
func NewMatrix(rows ...[]int64) Matrix {
	m := make(Matrix, len(rows))
	for i, r := range rows {
		m[i] = NewVector(r...)
	}
	return m
}

// Clone returns a deep copy of v.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	for i, x := range v {
		if x != nil {
			out[i] = new(big.Int).Set(x)
		}
	}
	return out
}

// Dot returns the exact integer dot product of v and w.
func (v Vector) Dot(w Vector) (*big.Int, error) {
	if len(v) != len(w) {
		return nil, errors.WrapPrefix(ErrLengthMismatch,
			fmt.Sprintf("dot product of %d and %d elements", len(v), len(w)), 0)
	}
	sum := new(big.Int)
	term := new(big.Int)
	for i := range v {
		sum.Add(sum, term.Mul(v[i], w[i]))
	}
	return sum, nil
}

// Rows returns the number of rows of m.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the length of the first row of m, or 0 for an empty matrix.
// Use [Matrix.Validate] to check that every row has this length.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = row.Clone()
	}
	return out
}

// Validate checks that m is non-empty, rectangular and free of nil entries.
func (m Matrix) Validate() error {
	if m.Rows() == 0 || m.Cols() == 0 {
		return errors.WrapPrefix(ErrDimensionMismatch, "matrix is empty", 0)
	}
	cols := m.Cols()
	for i, row := range m {
		if len(row) != cols {
			return errors.WrapPrefix(ErrDimensionMismatch,
				fmt.Sprintf("row %d has %d columns, expected %d", i, len(row), cols), 0)
		}
		if err := row.validate(fmt.Sprintf("A[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func (v Vector) validate(name string) error {
	for i, x := range v {
		if x == nil {
			return errors.WrapPrefix(ErrMissingEntry, fmt.Sprintf("%s[%d] is nil", name, i), 0)
		}
	}
	return nil
}

// Statement is the public half of a claim: the system A·x = b without x.
type Statement struct {
	A Matrix
	B Vector
}

// Validate checks the shape of the statement against the number of
// unknowns it is paired with (len(x) for a claim, len(proof) for a proof).
func (st *Statement) Validate(unknowns int) error {
	if err := st.A.Validate(); err != nil {
		return err
	}
	if err := st.B.validate("b"); err != nil {
		return err
	}
	if st.A.Rows() != len(st.B) {
		return errors.WrapPrefix(ErrDimensionMismatch,
			fmt.Sprintf("A has %d rows but b has %d entries", st.A.Rows(), len(st.B)), 0)
	}
	if st.A.Cols() != unknowns {
		return errors.WrapPrefix(ErrDimensionMismatch,
			fmt.Sprintf("A has %d columns but there are %d unknowns", st.A.Cols(), unknowns), 0)
	}
	return nil
}

// Clone returns a deep copy of st.
func (st *Statement) Clone() *Statement {
	return &Statement{A: st.A.Clone(), B: st.B.Clone()}
}

// Claim pairs a public statement with a private solution x. The solution
// is held in an unexported field and only leaves the claim as commitments
// through [System.Commit].
type Claim struct {
	public Statement
	x      Vector
}

// NewClaim validates and copies A, x and b into a new Claim. The caller
// may reuse or modify its slices afterwards without affecting the claim.
func NewClaim(a Matrix, x, b Vector) (*Claim, error) {
	st := Statement{A: a, B: b}
	if err := st.Validate(len(x)); err != nil {
		return nil, err
	}
	if err := x.validate("x"); err != nil {
		return nil, err
	}
	return &Claim{
		public: *st.Clone(),
		x:      x.Clone(),
	}, nil
}

// Statement returns a copy of the public statement of the claim.
func (c *Claim) Statement() *Statement {
	return c.public.Clone()
}

// Unknowns returns len(x).
func (c *Claim) Unknowns() int {
	return len(c.x)
}

// Satisfied reports whether A·x equals b over the integers. It is an exact
// check, stricter than what a proof can show.
func (c *Claim) Satisfied() bool {
	for i, row := range c.public.A {
		dot, err := row.Dot(c.x)
		if err != nil || dot.Cmp(c.public.B[i]) != 0 {
			return false
		}
	}
	return true
}
