package protocols

import (
	"fmt"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/DanTehrani/fri/internal/fri/core"
	"github.com/DanTehrani/fri/internal/fri/logger"
	"github.com/DanTehrani/fri/internal/fri/utils"
)

// Protocol defaults. Conformant provers and verifiers must agree on these
// for interoperability; the *WithParams constructors exist for deployments
// that need a different soundness budget.
const (
	// DefaultExpansionFactor is the inverse rate ρ of the Reed-Solomon code.
	DefaultExpansionFactor = 2

	// DefaultNumColinearityChecks is the number of query repetitions per
	// layer.
	DefaultNumColinearityChecks = 2

	// DefaultTerminalSlack stops the folding log2(terminal codeword size)
	// rounds early, leaving a codeword the verifier interpolates directly.
	DefaultTerminalSlack = 3
)

// Prover produces FRI proofs that a committed codeword is close to a
// Reed-Solomon codeword of the configured degree bound. A Prover owns all
// state of a proving run; it is not safe for concurrent use.
type Prover struct {
	domain               []fr.Element
	domainLength         int
	expansionFactor      int
	numColinearityChecks int
	terminalSlack        int
	hasher               core.Hasher
}

// NewProver creates a prover for polynomials of degree at most maxDegree,
// which must be a power of two, with the protocol's default parameters and
// the MiMC tree hasher.
func NewProver(maxDegree int) *Prover {
	return NewProverWithParams(maxDegree, DefaultExpansionFactor, DefaultNumColinearityChecks, DefaultTerminalSlack, core.NewMiMCHasher())
}

// NewProverWithParams creates a prover with explicit protocol parameters.
func NewProverWithParams(maxDegree, expansionFactor, numColinearityChecks, terminalSlack int, hasher core.Hasher) *Prover {
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

	return &Prover{
		domain:               core.Domain(domainLength),
		domainLength:         domainLength,
		expansionFactor:      expansionFactor,
		numColinearityChecks: numColinearityChecks,
		terminalSlack:        terminalSlack,
		hasher:               hasher,
	}
}

// NumRounds returns the number of folding rounds.
func (p *Prover) NumRounds() int {
	return core.Log2(p.domainLength) - p.terminalSlack
}

// DomainLength returns the size of the initial evaluation domain.
func (p *Prover) DomainLength() int {
	return p.domainLength
}

// Fold halves the codeword under the challenge alpha:
//
//	c'[i] = 1/2 * ((1 + α·ω^(-i))·c[i] + (1 - α·ω^(-i))·c[i + n/2])
//
// using ω^(-i) = ω^(n-i) to read the inverse power out of the domain.
func Fold(codeword, domain []fr.Element, alpha fr.Element) []fr.Element {
	if len(codeword) != len(domain) {
		panic(fmt.Sprintf("fri: codeword length %d does not match domain size %d", len(codeword), len(domain)))
	}

	n := len(codeword)
	one := fr.One()
	var twoInv fr.Element
	twoInv.SetUint64(2).Inverse(&twoInv)

	folded := make([]fr.Element, n/2)
	var omegaInv, t, l, r fr.Element
	for i := 0; i < n/2; i++ {
		if i == 0 {
			omegaInv.SetOne()
		} else {
			omegaInv.Set(&domain[n-i])
		}

		t.Mul(&alpha, &omegaInv)
		l.Add(&one, &t)
		l.Mul(&l, &codeword[i])
		r.Sub(&one, &t)
		r.Mul(&r, &codeword[i+n/2])
		folded[i].Add(&l, &r)
		folded[i].Mul(&folded[i], &twoInv)
	}
	return folded
}

// commit runs the folding rounds: commit the current codeword, absorb the
// root, squeeze the fold challenge, fold, square the domain. It returns all
// codewords c_0..c_R and the trees T_0..T_R; the terminal tree backs the C
// openings of the last layer and is never absorbed into the transcript (the
// verifier recomputes it from the reduced codeword).
func (p *Prover) commit(codeword []fr.Element, transcript *utils.Transcript) ([][]fr.Element, []*core.MerkleTree) {
	rounds := p.NumRounds()
	codewords := make([][]fr.Element, 0, rounds+1)
	codewords = append(codewords, codeword)
	trees := make([]*core.MerkleTree, 0, rounds+1)

	domain := p.domain
	for i := 0; i < rounds; i++ {
		current := codewords[i]

		tree := core.NewMerkleTree(p.hasher)
		root := tree.Commit(current)
		trees = append(trees, tree)

		rootBytes := root.Bytes()
		transcript.Append("root", rootBytes[:])
		alpha := transcript.ChallengeScalar("alpha")

		codewords = append(codewords, Fold(current, domain, alpha))
		domain = core.SquareDomain(domain)
	}

	terminal := core.NewMerkleTree(p.hasher)
	terminal.Commit(codewords[rounds])
	trees = append(trees, terminal)

	return codewords, trees
}

// query emits the per-layer openings for the sampled indices. For layer i
// the A and B proofs open T_i at a and a + n/2, and the C proof opens
// T_(i+1) at a, the folded position. Indices are reduced into each layer's
// half-size before opening.
func (p *Prover) query(codewords [][]fr.Element, trees []*core.MerkleTree, indices []int) []LayerProof {
	if len(indices) != p.numColinearityChecks {
		panic(fmt.Sprintf("fri: expected %d query indices, got %d", p.numColinearityChecks, len(indices)))
	}

	queries := make([]LayerProof, 0, len(codewords)-1)

	for i := 0; i < len(codewords)-1; i++ {
		half := len(codewords[i]) / 2

		for j := range indices {
			if half == 0 {
				indices[j] = 0
			} else {
				indices[j] %= half
			}
		}

		openings := make([]Opening, 0, p.numColinearityChecks)
		for j := 0; j < p.numColinearityChecks; j++ {
			a := indices[j]
			b := half + a

			aProof, err := trees[i].OpenIndex(a)
			if err != nil {
				panic(err)
			}
			bProof, err := trees[i].OpenIndex(b)
			if err != nil {
				panic(err)
			}
			cProof, err := trees[i+1].OpenIndex(a)
			if err != nil {
				panic(err)
			}

			openings = append(openings, Opening{A: aProof, B: bProof, C: cProof})
		}

		queries = append(queries, LayerProof{Openings: openings})
	}

	return queries
}

// Prove builds a FRI proof for a codeword already in evaluation form on the
// prover's domain.
func (p *Prover) Prove(codeword []fr.Element, transcript *utils.Transcript) Proof {
	if len(codeword) != p.domainLength {
		panic(fmt.Sprintf("fri: codeword length %d does not match domain size %d", len(codeword), p.domainLength))
	}

	start := time.Now()

	codewords, trees := p.commit(codeword, transcript)

	indices := utils.SampleIndices(
		p.numColinearityChecks,
		len(codewords[0]),
		len(codewords[len(codewords)-2]),
		transcript,
	)

	queries := p.query(codewords, trees, indices)

	log := logger.Logger()
	log.Debug().
		Int("domain", p.domainLength).
		Int("rounds", p.NumRounds()).
		Int("queries", p.numColinearityChecks).
		Dur("took", time.Since(start)).
		Msg("fri prove")

	return Proof{
		ReducedCodeword: codewords[len(codewords)-1],
		Queries:         queries,
		Commitment:      trees[0].Root(),
	}
}

// ProveDegree builds a FRI proof that poly has degree within the prover's
// bound. The coefficient vector is padded to the domain size and encoded
// with the NTT before proving.
func (p *Prover) ProveDegree(poly core.UniPoly, transcript *utils.Transcript) Proof {
	if len(poly.Coeffs) > p.domainLength {
		panic(fmt.Sprintf("fri: polynomial with %d coefficients exceeds domain of size %d", len(poly.Coeffs), p.domainLength))
	}

	coeffs := make([]fr.Element, p.domainLength)
	copy(coeffs, poly.Coeffs)

	return p.Prove(core.FFT(coeffs, p.domain), transcript)
}
