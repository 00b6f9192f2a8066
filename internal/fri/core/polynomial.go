package core

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// UniPoly is a univariate polynomial in dense coefficient form,
// [a_0, a_1, ..., a_d] for a_0 + a_1·x + ... + a_d·x^d.
type UniPoly struct {
	Coeffs []fr.Element
}

// NewUniPoly creates a polynomial from its coefficient vector.
func NewUniPoly(coeffs []fr.Element) UniPoly {
	return UniPoly{Coeffs: coeffs}
}

// NewUniPolyFromUint64 creates a polynomial from uint64 coefficients.
func NewUniPolyFromUint64(coeffs []uint64) UniPoly {
	elems := make([]fr.Element, len(coeffs))
	for i, c := range coeffs {
		elems[i].SetUint64(c)
	}
	return UniPoly{Coeffs: elems}
}

// Degree returns the degree of the polynomial. Coefficient vectors are not
// normalized, so trailing zeros count towards the degree except after
// interpolation.
func (p UniPoly) Degree() int {
	return len(p.Coeffs) - 1
}

// Eval evaluates the polynomial at x using Horner's rule.
func (p UniPoly) Eval(x fr.Element) fr.Element {
	var result fr.Element
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		result.Mul(&result, &x)
		result.Add(&result, &p.Coeffs[i])
	}
	return result
}

// Interpolate recovers the polynomial whose evaluations on the subgroup
// domain are evals, trimming the coefficient vector to the highest non-zero
// index.
func Interpolate(domain, evals []fr.Element) UniPoly {
	if len(domain) != len(evals) {
		panic(fmt.Sprintf("interpolate: domain size %d does not match evaluation count %d", len(domain), len(evals)))
	}

	coeffs := IFFT(domain, evals)

	degree := 0
	for i := range coeffs {
		if !coeffs[i].IsZero() {
			degree = i
		}
	}

	return UniPoly{Coeffs: coeffs[:degree+1]}
}
