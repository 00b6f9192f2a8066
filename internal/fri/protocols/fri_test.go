package protocols

import (
	"errors"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	"github.com/DanTehrani/fri/internal/fri/core"
	"github.com/DanTehrani/fri/internal/fri/utils"
)

// rangePoly builds the polynomial with coefficients [0, 1, ..., degree].
func rangePoly(degree int) core.UniPoly {
	coeffs := make([]fr.Element, degree+1)
	for i := range coeffs {
		coeffs[i].SetUint64(uint64(i))
	}
	return core.NewUniPoly(coeffs)
}

func TestNumRounds(t *testing.T) {
	require.Equal(t, 2, NewProver(16).NumRounds())
	require.Equal(t, 8, NewProver(1024).NumRounds())
}

func TestProveVerifyDegree16(t *testing.T) {
	prover := NewProver(16)
	proof := prover.ProveDegree(rangePoly(16), utils.NewTranscript())

	require.Len(t, proof.Queries, prover.NumRounds())
	require.Len(t, proof.ReducedCodeword, prover.DomainLength()>>prover.NumRounds())

	verifier := NewVerifier(16)
	require.NoError(t, verifier.Verify(proof, proof.Commitment, utils.NewTranscript()))
}

func TestProveVerifyDegree1024(t *testing.T) {
	prover := NewProver(1024)
	proof := prover.ProveDegree(rangePoly(1024), utils.NewTranscript())

	verifier := NewVerifier(1024)
	require.NoError(t, verifier.Verify(proof, proof.Commitment, utils.NewTranscript()))
}

func TestProveVerifyLowerDegree(t *testing.T) {
	// A polynomial well below the bound must still be accepted.
	prover := NewProver(16)
	proof := prover.ProveDegree(rangePoly(5), utils.NewTranscript())

	verifier := NewVerifier(16)
	require.NoError(t, verifier.Verify(proof, proof.Commitment, utils.NewTranscript()))
}

func TestProofDeterminism(t *testing.T) {
	prover := NewProver(16)
	a := prover.ProveDegree(rangePoly(16), utils.NewTranscript())
	b := prover.ProveDegree(rangePoly(16), utils.NewTranscript())

	require.Equal(t, a, b)
}

func TestFoldMatchesFoldedPolynomial(t *testing.T) {
	// Folding the codeword of p under α must equal the codeword, on the
	// squared domain, of p_e + α·p_o where p(x) = p_e(x²) + x·p_o(x²).
	n := 16
	domain := core.Domain(n)

	coeffs := make([]fr.Element, n)
	for i := range coeffs {
		coeffs[i].SetUint64(uint64(3*i + 1))
	}

	var alpha fr.Element
	alpha.SetUint64(7)

	folded := Fold(core.FFT(coeffs, domain), domain, alpha)

	foldedCoeffs := make([]fr.Element, n/2)
	var t1 fr.Element
	for i := 0; i < n/2; i++ {
		t1.Mul(&alpha, &coeffs[2*i+1])
		foldedCoeffs[i].Add(&coeffs[2*i], &t1)
	}
	expected := core.FFT(foldedCoeffs, core.SquareDomain(domain))

	for i := range expected {
		require.True(t, folded[i].Equal(&expected[i]), "folded codeword differs at position %d", i)
	}
}

func TestTamperedReducedCodeword(t *testing.T) {
	prover := NewProver(16)
	proof := prover.ProveDegree(rangePoly(16), utils.NewTranscript())

	one := fr.One()
	proof.ReducedCodeword[0].Add(&proof.ReducedCodeword[0], &one)

	verifier := NewVerifier(16)
	require.Error(t, verifier.Verify(proof, proof.Commitment, utils.NewTranscript()))
}

func TestTamperedOpening(t *testing.T) {
	prover := NewProver(16)
	proof := prover.ProveDegree(rangePoly(16), utils.NewTranscript())

	one := fr.One()
	proof.Queries[0].Openings[0].A.Leaf.Add(&proof.Queries[0].Openings[0].A.Leaf, &one)

	verifier := NewVerifier(16)
	require.Error(t, verifier.Verify(proof, proof.Commitment, utils.NewTranscript()))
}

func TestWrongCommitment(t *testing.T) {
	prover := NewProver(16)
	proof := prover.ProveDegree(rangePoly(16), utils.NewTranscript())

	one := fr.One()
	var wrong fr.Element
	wrong.Add(&proof.Commitment, &one)

	verifier := NewVerifier(16)
	err := verifier.Verify(proof, wrong, utils.NewTranscript())
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrCommitment))
}

func TestMalformedProofShape(t *testing.T) {
	prover := NewProver(16)
	proof := prover.ProveDegree(rangePoly(16), utils.NewTranscript())

	proof.Queries = proof.Queries[:1]

	verifier := NewVerifier(16)
	err := verifier.Verify(proof, proof.Commitment, utils.NewTranscript())
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrProofShape))
}

func TestKeccakHasherEndToEnd(t *testing.T) {
	hasher := core.NewKeccakHasher()
	prover := NewProverWithParams(16, DefaultExpansionFactor, DefaultNumColinearityChecks, DefaultTerminalSlack, hasher)
	verifier := NewVerifierWithParams(16, DefaultExpansionFactor, DefaultNumColinearityChecks, DefaultTerminalSlack, hasher)

	proof := prover.ProveDegree(rangePoly(16), utils.NewTranscript())
	require.NoError(t, verifier.Verify(proof, proof.Commitment, utils.NewTranscript()))
}

func TestHasherMismatchRejects(t *testing.T) {
	prover := NewProverWithParams(16, DefaultExpansionFactor, DefaultNumColinearityChecks, DefaultTerminalSlack, core.NewKeccakHasher())
	proof := prover.ProveDegree(rangePoly(16), utils.NewTranscript())

	verifier := NewVerifier(16)
	require.Error(t, verifier.Verify(proof, proof.Commitment, utils.NewTranscript()))
}

func TestMoreColinearityChecks(t *testing.T) {
	hasher := core.NewMiMCHasher()
	prover := NewProverWithParams(64, DefaultExpansionFactor, 4, DefaultTerminalSlack, hasher)
	verifier := NewVerifierWithParams(64, DefaultExpansionFactor, 4, DefaultTerminalSlack, hasher)

	proof := prover.ProveDegree(rangePoly(64), utils.NewTranscript())
	require.NoError(t, verifier.Verify(proof, proof.Commitment, utils.NewTranscript()))
}
