// Package fri provides a FRI (Fast Reed-Solomon Interactive Oracle Proof of
// Proximity) prover and verifier over the BN254 scalar field.
//
// FRI is the low-degree test used as a polynomial commitment scheme in
// hash-based proof systems. Given a polynomial of degree at most d, the
// prover encodes it as a Reed-Solomon codeword on a multiplicative subgroup
// of size ρ·d, then repeatedly commits to the codeword with a Merkle tree
// and folds it in half under a transcript-derived challenge. The proof
// consists of the terminal codeword plus Merkle openings for a handful of
// transcript-sampled colinearity checks per layer; the verifier replays the
// transcript, interpolates the terminal codeword to check the degree bound,
// and checks every opening against the commitment chain.
//
// Basic usage:
//
//	prover, err := fri.NewProver(1024)
//	if err != nil { ... }
//	proof, err := prover.Prove(coeffs)
//	if err != nil { ... }
//
//	verifier, err := fri.NewVerifier(1024)
//	if err != nil { ... }
//	if err := verifier.Verify(proof, proof.Commitment); err != nil {
//		// proof rejected
//	}
//
// All challenges are derived non-interactively from a merlin transcript under
// a fixed context label, so proving is deterministic: identical inputs yield
// byte-identical proofs.
//
// The protocol parameters (expansion factor, colinearity checks per layer,
// terminal codeword size) default to interoperable values; deployments with
// different soundness budgets can tune them through the WithParams
// constructors of the internal packages.
package fri
