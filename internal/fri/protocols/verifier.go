package protocols

import (
	"errors"
	"fmt"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/DanTehrani/fri/internal/fri/core"
	"github.com/DanTehrani/fri/internal/fri/logger"
	"github.com/DanTehrani/fri/internal/fri/utils"
)

var (
	// ErrProofShape is returned when the proof's layer or opening counts do
	// not match the verifier's parameters.
	ErrProofShape = errors.New("fri: malformed proof shape")

	// ErrLowDegree is returned when the terminal codeword interpolates to a
	// polynomial above the degree bound.
	ErrLowDegree = errors.New("fri: reduced codeword exceeds the degree bound")

	// ErrColinearity is returned when an (A, B, C) point triple does not lie
	// on a common line.
	ErrColinearity = errors.New("fri: colinearity check failed")

	// ErrMerklePath is returned when an authentication path does not fold to
	// its root.
	ErrMerklePath = errors.New("fri: merkle path verification failed")

	// ErrMerkleRoot is returned when roots that must agree, within a query,
	// across queries, or across layers, do not.
	ErrMerkleRoot = errors.New("fri: merkle roots do not agree")

	// ErrPositionBinding is returned when an opening's recorded index is not
	// the index the verifier derived from the transcript.
	ErrPositionBinding = errors.New("fri: opened position does not match the queried index")

	// ErrCommitment is returned when the layer-0 root does not match the
	// polynomial commitment.
	ErrCommitment = errors.New("fri: proof does not match the polynomial commitment")
)

// Verifier checks FRI proofs. It re-derives every challenge from the
// transcript, so a proof only verifies against the commitment it was
// produced for.
type Verifier struct {
	domain               []fr.Element
	domainLength         int
	expansionFactor      int
	numColinearityChecks int
	terminalSlack        int
	hasher               core.Hasher
}

// NewVerifier creates a verifier for the same degree bound and default
// parameters as NewProver.
func NewVerifier(maxDegree int) *Verifier {
	return NewVerifierWithParams(maxDegree, DefaultExpansionFactor, DefaultNumColinearityChecks, DefaultTerminalSlack, core.NewMiMCHasher())
}

// NewVerifierWithParams creates a verifier with explicit protocol
// parameters. They must match the prover's.
func NewVerifierWithParams(maxDegree, expansionFactor, numColinearityChecks, terminalSlack int, hasher core.Hasher) *Verifier {
	if !core.IsPowerOfTwo(maxDegree) {
		panic(fmt.Sprintf("fri: max degree %d is not a power of two", maxDegree))
	}
	if expansionFactor < 2 {
		panic(fmt.Sprintf("fri: expansion factor %d must be at least 2", expansionFactor))
	}
	if numColinearityChecks < 1 {
		panic(fmt.Sprintf("fri: need at least one colinearity check, got %d", numColinearityChecks))
	}

	domainLength := core.NextPowerOfTwo(maxDegree * expansionFactor)
	if core.Log2(domainLength) <= terminalSlack {
		panic(fmt.Sprintf("fri: domain of size %d leaves no rounds with terminal slack %d", domainLength, terminalSlack))
	}

	return &Verifier{
		domain:               core.Domain(domainLength),
		domainLength:         domainLength,
		expansionFactor:      expansionFactor,
		numColinearityChecks: numColinearityChecks,
		terminalSlack:        terminalSlack,
		hasher:               hasher,
	}
}

// NumRounds returns the number of folding rounds the verifier expects.
func (v *Verifier) NumRounds() int {
	return core.Log2(v.domainLength) - v.terminalSlack
}

// Verify checks the proof against the polynomial commitment. A nil return
// is an acceptance; any error is a rejection. The first failed check
// terminates verification.
func (v *Verifier) Verify(proof Proof, commitment fr.Element, transcript *utils.Transcript) error {
	start := time.Now()

	rounds := v.NumRounds()
	if len(proof.Queries) != rounds {
		return fmt.Errorf("%w: expected %d layers, got %d", ErrProofShape, rounds, len(proof.Queries))
	}
	for i := range proof.Queries {
		if len(proof.Queries[i].Openings) != v.numColinearityChecks {
			return fmt.Errorf("%w: layer %d: expected %d openings, got %d",
				ErrProofShape, i, v.numColinearityChecks, len(proof.Queries[i].Openings))
		}
	}
	if len(proof.ReducedCodeword) != v.domainLength>>rounds {
		return fmt.Errorf("%w: expected reduced codeword of length %d, got %d",
			ErrProofShape, v.domainLength>>rounds, len(proof.ReducedCodeword))
	}

	// Replay the commit phase: absorb each layer's root and squeeze the
	// fold challenge. The roots are recovered from the A openings.
	alphas := make([]fr.Element, rounds)
	for i := range proof.Queries {
		root := proof.Queries[i].Openings[0].A.Root
		rootBytes := root.Bytes()
		transcript.Append("root", rootBytes[:])
		alphas[i] = transcript.ChallengeScalar("alpha")
	}

	// Low-degree check on the terminal codeword.
	reducedDomain := v.domain
	for i := 0; i < rounds; i++ {
		reducedDomain = core.SquareDomain(reducedDomain)
	}
	interpolant := core.Interpolate(reducedDomain, proof.ReducedCodeword)

	maxReducedDegree := 0
	if len(proof.ReducedCodeword) > 1 {
		maxReducedDegree = len(proof.ReducedCodeword) / v.expansionFactor
	}
	if interpolant.Degree() > maxReducedDegree {
		return fmt.Errorf("%w: interpolant has degree %d, bound is %d",
			ErrLowDegree, interpolant.Degree(), maxReducedDegree)
	}

	// The terminal layer's C openings must commit to the codeword the
	// verifier just interpolated.
	terminalTree := core.NewMerkleTree(v.hasher)
	terminalRoot := terminalTree.Commit(proof.ReducedCodeword)

	indices := utils.SampleIndices(
		v.numColinearityChecks,
		v.domainLength,
		v.domainLength>>(rounds-1),
		transcript,
	)

	domain := v.domain
	size := v.domainLength
	for i := 0; i < rounds; i++ {
		layer := proof.Queries[i]
		half := size / 2

		for j := range indices {
			if half == 0 {
				indices[j] = 0
			} else {
				indices[j] %= half
			}
		}

		for j := range layer.Openings {
			if err := v.verifyOpening(layer.Openings[j], indices[j], half, domain, alphas[i]); err != nil {
				return fmt.Errorf("layer %d, query %d: %w", i, j, err)
			}

			// Roots must agree across the queries of a layer.
			if j > 0 {
				prev := layer.Openings[j-1]
				if !prev.A.Root.Equal(&layer.Openings[j].A.Root) || !prev.C.Root.Equal(&layer.Openings[j].C.Root) {
					return fmt.Errorf("layer %d, query %d: %w", i, j, ErrMerkleRoot)
				}
			}
		}

		// The layer-0 tree is the polynomial commitment; each layer's C
		// openings must point into the tree the next layer opens A against,
		// and the last layer's C openings into the reduced codeword's tree.
		if i == 0 {
			if !layer.Openings[0].A.Root.Equal(&commitment) {
				return fmt.Errorf("layer 0: %w", ErrCommitment)
			}
		} else {
			prevC := proof.Queries[i-1].Openings[0].C.Root
			if !layer.Openings[0].A.Root.Equal(&prevC) {
				return fmt.Errorf("layer %d: %w", i, ErrMerkleRoot)
			}
		}
		if i == rounds-1 {
			if !layer.Openings[0].C.Root.Equal(&terminalRoot) {
				return fmt.Errorf("layer %d: %w", i, ErrMerkleRoot)
			}
		}

		domain = core.SquareDomain(domain)
		size = half
	}

	log := logger.Logger()
	log.Debug().
		Int("rounds", rounds).
		Int("queries", v.numColinearityChecks).
		Dur("took", time.Since(start)).
		Msg("fri verify")

	return nil
}

// verifyOpening checks a single (A, B, C) triple: the opened positions are
// the queried ones, the three points are colinear, and every authentication
// path folds to its root.
func (v *Verifier) verifyOpening(op Opening, a, half int, domain []fr.Element, alpha fr.Element) error {
	b := half + a

	if op.A.Index != a || op.B.Index != b || op.C.Index != a {
		return ErrPositionBinding
	}

	xA := domain[a]
	xB := domain[b]
	yA := op.A.Leaf
	yB := op.B.Leaf
	yC := op.C.Leaf

	// C carries the folded value, which lies on the line through
	// (x_A, y_A) and (x_B, y_B) at x = α.
	var slope, dx, intercept, t, expected fr.Element
	dx.Sub(&xA, &xB)
	dx.Inverse(&dx)
	slope.Sub(&yA, &yB)
	slope.Mul(&slope, &dx)
	t.Mul(&slope, &xA)
	intercept.Sub(&yA, &t)
	expected.Mul(&slope, &alpha)
	expected.Add(&expected, &intercept)

	if !yC.Equal(&expected) {
		return ErrColinearity
	}

	if !op.A.Verify(v.hasher) || !op.B.Verify(v.hasher) || !op.C.Verify(v.hasher) {
		return ErrMerklePath
	}
	if !op.A.Root.Equal(&op.B.Root) {
		return ErrMerkleRoot
	}

	return nil
}
