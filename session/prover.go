package session

import (
	"sync"

	"github.com/f3rmion/axb/group"
	"github.com/f3rmion/axb/linsys"
	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
)

// ErrNoClaimSet is returned when a Prover is asked for its claim or a
// proof before SetClaim succeeded.
var ErrNoClaimSet = errors.New("no claim set")

// State is the lifecycle stage of a Prover.
type State int

const (
	// Uninitialized is the state of a new Prover.
	Uninitialized State = iota
	// Claimed is entered by a successful SetClaim. Proofs can be generated
	// any number of times from this state.
	Claimed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Claimed:
		return "claimed"
	default:
		return "unknown"
	}
}

// Prover holds a claim "A·x = b" together with the private solution x.
// Create instances using [NewProver].
//
// The solution is only reachable through the commitments returned by
// GenerateProof; no method returns x.
type Prover struct {
	mu    sync.Mutex
	sys   *linsys.System
	claim *linsys.Claim
}

// NewProver creates a Prover committing in group g.
func NewProver(g group.Group) (*Prover, error) {
	sys, err := linsys.New(g)
	if err != nil {
		return nil, errors.WrapPrefix(err, "failed to create prover", 0)
	}
	return &Prover{sys: sys}, nil
}

// State returns the lifecycle stage of the prover.
func (p *Prover) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.claim == nil {
		return Uninitialized
	}
	return Claimed
}

// SetClaim records the claim that x solves A·x = b.
//
// It fails with [linsys.ErrDimensionMismatch] unless rows(A) == len(b)
// and cols(A) == len(x). A successful call replaces any earlier claim;
// a failed call leaves the prover unchanged. The arguments are copied.
func (p *Prover) SetClaim(a linsys.Matrix, x, b linsys.Vector) error {
	claim, err := linsys.NewClaim(a, x, b)
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.claim = claim
	p.mu.Unlock()

	Logger.WithFields(logrus.Fields{
		"rows": a.Rows(),
		"cols": a.Cols(),
	}).Debug("claim set")
	return nil
}

// PublicView returns copies of the public matrix A and vector b.
func (p *Prover) PublicView() (linsys.Matrix, linsys.Vector, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.claim == nil {
		return nil, nil, ErrNoClaimSet
	}
	st := p.claim.Statement()
	return st.A, st.B, nil
}

// GenerateProof returns the commitments x_i*G in column order.
//
// There is no randomness involved: as long as the claim is unchanged,
// every call returns the same points.
func (p *Prover) GenerateProof() (linsys.Proof, error) {
	p.mu.Lock()
	claim := p.claim
	p.mu.Unlock()

	if claim == nil {
		return nil, ErrNoClaimSet
	}

	proof := p.sys.Commit(claim)
	if Logger.IsLevelEnabled(logrus.TraceLevel) {
		Logger.WithField("digest", proof.String()).Trace("proof generated")
	}
	return proof, nil
}
