package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/DanTehrani/fri/internal/fri/logger"
	"github.com/DanTehrani/fri/pkg/fri"
)

// ClaimInput is the JSON claim read from stdin: the polynomial's
// coefficients, lowest degree first, and the degree bound to prove against.
type ClaimInput struct {
	Coefficients []uint64 `json:"coefficients"`
	MaxDegree    int      `json:"max_degree"`
}

// ProofOutput is written to stdout once the proof has been generated and
// checked.
type ProofOutput struct {
	Verified        bool   `json:"verified"`
	Commitment      string `json:"commitment"`
	Rounds          int    `json:"rounds"`
	ReducedCodeword int    `json:"reduced_codeword_len"`
	ProveMs         int64  `json:"prove_ms"`
	VerifyMs        int64  `json:"verify_ms"`
}

func main() {
	log := logger.Logger().Level(zerolog.InfoLevel)
	logger.Set(log)

	// Read the JSON claim from stdin
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 1024*1024), 64*1024*1024)
	if !scanner.Scan() {
		fatal("Failed to read claim")
	}
	var claim ClaimInput
	if err := json.Unmarshal(scanner.Bytes(), &claim); err != nil {
		fatal(fmt.Sprintf("Failed to parse claim: %v", err))
	}
	if len(claim.Coefficients) == 0 {
		fatal("Claim has no coefficients")
	}
	if claim.MaxDegree == 0 {
		claim.MaxDegree = nextPowerOfTwo(len(claim.Coefficients) - 1)
	}

	log.Info().
		Int("coefficients", len(claim.Coefficients)).
		Int("max_degree", claim.MaxDegree).
		Msg("creating prover")

	prover, err := fri.NewProver(claim.MaxDegree)
	if err != nil {
		fatal(fmt.Sprintf("Failed to create prover: %v", err))
	}

	proveStart := time.Now()
	proof, err := prover.Prove(claim.Coefficients)
	if err != nil {
		fatal(fmt.Sprintf("Proof generation failed: %v", err))
	}
	proveTook := time.Since(proveStart)
	log.Info().Int("rounds", prover.NumRounds()).Dur("took", proveTook).Msg("proof generated")

	verifier, err := fri.NewVerifier(claim.MaxDegree)
	if err != nil {
		fatal(fmt.Sprintf("Failed to create verifier: %v", err))
	}

	verifyStart := time.Now()
	if err := verifier.Verify(proof, proof.Commitment); err != nil {
		fatal(fmt.Sprintf("Proof verification failed: %v", err))
	}
	verifyTook := time.Since(verifyStart)
	log.Info().Dur("took", verifyTook).Msg("proof verified")

	out := ProofOutput{
		Verified:        true,
		Commitment:      proof.Commitment.String(),
		Rounds:          prover.NumRounds(),
		ReducedCodeword: len(proof.ReducedCodeword),
		ProveMs:         proveTook.Milliseconds(),
		VerifyMs:        verifyTook.Milliseconds(),
	}
	outBytes, err := json.Marshal(out)
	if err != nil {
		fatal(fmt.Sprintf("Failed to serialize output: %v", err))
	}
	os.Stdout.Write(outBytes)
	os.Stdout.Write([]byte("\n"))
}

func nextPowerOfTwo(n int) int {
	power := 1
	for power < n {
		power <<= 1
	}
	return power
}

func fatal(msg string) {
	l := logger.Logger()
	l.Error().Msg(msg)
	os.Exit(1)
}
