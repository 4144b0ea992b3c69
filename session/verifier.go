package session

import (
	"context"
	"fmt"
	"runtime"

	"github.com/f3rmion/axb/group"
	"github.com/f3rmion/axb/linsys"
	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// errRowFailed stops outstanding row checks once one row is known to fail.
var errRowFailed = errors.New("row not satisfied")

// Verifier checks proofs against public statements. It keeps no state
// between calls and is safe for concurrent use.
type Verifier struct {
	sys     *linsys.System
	workers int
	logger  *logrus.Logger
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithWorkers bounds the number of rows checked concurrently.
// Values below 1 are treated as 1, which checks rows in order.
func WithWorkers(n int) Option {
	return func(v *Verifier) {
		if n < 1 {
			n = 1
		}
		v.workers = n
	}
}

// WithLogger sets the logger used instead of the package [Logger].
func WithLogger(l *logrus.Logger) Option {
	return func(v *Verifier) {
		v.logger = l
	}
}

// NewVerifier creates a Verifier over group g. By default rows are
// checked by up to GOMAXPROCS goroutines.
func NewVerifier(g group.Group, opts ...Option) (*Verifier, error) {
	sys, err := linsys.New(g)
	if err != nil {
		return nil, errors.WrapPrefix(err, "failed to create verifier", 0)
	}
	v := &Verifier{
		sys:     sys,
		workers: runtime.GOMAXPROCS(0),
		logger:  Logger,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// Verify reports whether proof commits to some x with A·x ≡ b modulo the
// group order.
//
// It fails with [linsys.ErrDimensionMismatch] unless rows(A) == len(b) and
// cols(A) == len(proof), and with [linsys.ErrCurveMismatch] if the proof
// holds points of another group. An unsatisfied row is reported as (false, nil).
// Rows are independent, so the answer does not depend on the order in
// which concurrent checks finish.
func (v *Verifier) Verify(proof linsys.Proof, a linsys.Matrix, b linsys.Vector) (bool, error) {
	st := &linsys.Statement{A: a, B: b}
	if err := st.Validate(len(proof)); err != nil {
		return false, err
	}
	if err := v.sys.CheckProof(proof); err != nil {
		return false, err
	}

	var ok bool
	var err error
	if v.workers == 1 || st.A.Rows() == 1 {
		ok, err = v.sys.Verify(proof, st)
	} else {
		ok, err = v.verifyRows(proof, st)
	}
	if err != nil {
		return false, err
	}

	v.logger.WithFields(logrus.Fields{
		"rows":     st.A.Rows(),
		"cols":     st.A.Cols(),
		"verified": ok,
	}).Debug("proof checked")
	return ok, nil
}

// VerifyEncoded decodes a proof produced by [linsys.MarshalProof] and
// verifies it. Points that are not in the group fail with
// [group.ErrInvalidPoint].
func (v *Verifier) VerifyEncoded(data []byte, a linsys.Matrix, b linsys.Vector) (bool, error) {
	proof, err := linsys.UnmarshalProof(v.sys.Group(), data)
	if err != nil {
		return false, err
	}
	return v.Verify(proof, a, b)
}

func (v *Verifier) verifyRows(proof linsys.Proof, st *linsys.Statement) (bool, error) {
	eg, ctx := errgroup.WithContext(context.Background())
	eg.SetLimit(v.workers)

	for i, row := range st.A {
		i, row := i, row
		eg.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			ok, err := v.sys.CheckRow(proof, row, st.B[i])
			if err != nil {
				return errors.WrapPrefix(err, fmt.Sprintf("row %d", i), 0)
			}
			if !ok {
				v.logger.WithField("row", i).Trace("row not satisfied")
				return errRowFailed
			}
			return nil
		})
	}

	switch err := eg.Wait(); {
	case err == nil:
		return true, nil
	case err == errRowFailed:
		return false, nil
	default:
		return false, err
	}
}
