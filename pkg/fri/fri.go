package fri

import (
	"github.com/DanTehrani/fri/internal/fri/core"
	"github.com/DanTehrani/fri/internal/fri/protocols"
	"github.com/DanTehrani/fri/internal/fri/utils"
)

// Prover is the public proving interface. A Prover is configured for a
// single degree bound; it may be reused across proofs but is not safe for
// concurrent use.
type Prover struct {
	inner *protocols.Prover
}

// NewProver creates a prover for polynomials of degree at most maxDegree,
// which must be a power of two.
func NewProver(maxDegree int) (*Prover, error) {
	if err := validateMaxDegree(maxDegree); err != nil {
		return nil, err
	}

	return &Prover{inner: protocols.NewProver(maxDegree)}, nil
}

// validateMaxDegree checks that the degree bound is a power of two large
// enough for the default parameters to leave at least one folding round.
func validateMaxDegree(maxDegree int) error {
	if !core.IsPowerOfTwo(maxDegree) {
		return &Error{
			Code:    ErrInvalidConfig,
			Message: "max degree must be a power of two",
		}
	}
	domainLength := core.NextPowerOfTwo(maxDegree * protocols.DefaultExpansionFactor)
	if core.Log2(domainLength) <= protocols.DefaultTerminalSlack {
		return &Error{
			Code:    ErrInvalidConfig,
			Message: "max degree leaves no folding rounds with the default parameters",
		}
	}
	return nil
}

// Prove builds a proof for the polynomial with the given uint64
// coefficients, lowest degree first.
func (p *Prover) Prove(coeffs []uint64) (Proof, error) {
	return p.ProveElements(core.NewUniPolyFromUint64(coeffs).Coeffs)
}

// ProveElements builds a proof for the polynomial with the given field
// coefficients, lowest degree first. The returned proof carries the
// polynomial commitment the verifier checks it against.
func (p *Prover) ProveElements(coeffs []Element) (Proof, error) {
	if len(coeffs) == 0 {
		return Proof{}, &Error{
			Code:    ErrInvalidInput,
			Message: "polynomial must have at least one coefficient",
		}
	}
	if len(coeffs) > p.inner.DomainLength() {
		return Proof{}, &Error{
			Code:    ErrInvalidInput,
			Message: "polynomial has more coefficients than the evaluation domain",
		}
	}

	poly := core.NewUniPoly(coeffs)
	return p.inner.ProveDegree(poly, utils.NewTranscript()), nil
}

// NumRounds returns the number of folding rounds the prover performs.
func (p *Prover) NumRounds() int {
	return p.inner.NumRounds()
}

// Verifier is the public verification interface.
type Verifier struct {
	inner *protocols.Verifier
}

// NewVerifier creates a verifier for the same degree bound as NewProver.
func NewVerifier(maxDegree int) (*Verifier, error) {
	if err := validateMaxDegree(maxDegree); err != nil {
		return nil, err
	}

	return &Verifier{inner: protocols.NewVerifier(maxDegree)}, nil
}

// Verify checks the proof against the polynomial commitment. A nil return
// is an acceptance; any error is a rejection.
func (v *Verifier) Verify(proof Proof, commitment Element) error {
	if err := v.inner.Verify(proof, commitment, utils.NewTranscript()); err != nil {
		return &Error{
			Code:    ErrProofVerification,
			Message: "proof rejected",
			Cause:   err,
		}
	}
	return nil
}
