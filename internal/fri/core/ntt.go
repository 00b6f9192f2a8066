package core

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// FFT evaluates the polynomial given by coeffs on the subgroup domain
// [1, ω, ..., ω^(n-1)] using the radix-2 Cooley-Tukey recursion. The
// coefficient vector and the domain must have the same power-of-two length.
func FFT(coeffs, domain []fr.Element) []fr.Element {
	if len(coeffs) != len(domain) {
		panic(fmt.Sprintf("fft: coefficient count %d does not match domain size %d", len(coeffs), len(domain)))
	}
	if !IsPowerOfTwo(len(coeffs)) {
		panic(fmt.Sprintf("fft: size %d is not a power of two", len(coeffs)))
	}
	return fftRecursive(coeffs, domain)
}

func fftRecursive(coeffs, domain []fr.Element) []fr.Element {
	n := len(coeffs)
	if n == 1 {
		out := make([]fr.Element, 1)
		out[0].Set(&coeffs[0])
		return out
	}

	// Split into even- and odd-indexed coefficients.
	even := make([]fr.Element, n/2)
	odd := make([]fr.Element, n/2)
	for i := 0; i < n/2; i++ {
		even[i].Set(&coeffs[2*i])
		odd[i].Set(&coeffs[2*i+1])
	}

	squared := SquareDomain(domain)
	fftE := fftRecursive(even, squared)
	fftO := fftRecursive(odd, squared)

	// evals[i]       = E(ω^2i) + ω^i * O(ω^2i)
	// evals[i + n/2] = E(ω^2i) - ω^i * O(ω^2i)
	evals := make([]fr.Element, n)
	var t fr.Element
	for i := 0; i < n/2; i++ {
		t.Mul(&fftO[i], &domain[i])
		evals[i].Add(&fftE[i], &t)
		evals[i+n/2].Sub(&fftE[i], &t)
	}
	return evals
}

// IFFT interpolates the coefficient vector of the polynomial whose
// evaluations on the subgroup domain are evals. It runs the forward FFT and
// reverses the tail, exploiting ω^(-k) = ω^(n-k) in the subgroup, with every
// output scaled by n⁻¹.
func IFFT(domain, evals []fr.Element) []fr.Element {
	if len(evals) != len(domain) {
		panic(fmt.Sprintf("ifft: evaluation count %d does not match domain size %d", len(evals), len(domain)))
	}

	n := len(domain)
	var nInv fr.Element
	nInv.SetUint64(uint64(n)).Inverse(&nInv)

	vals := FFT(evals, domain)

	coeffs := make([]fr.Element, n)
	coeffs[0].Mul(&vals[0], &nInv)
	for i := 1; i < n; i++ {
		coeffs[i].Mul(&vals[n-i], &nInv)
	}
	return coeffs
}
