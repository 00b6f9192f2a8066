package core

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"
)

// Domain returns the evaluation domain [1, ω, ω², ..., ω^(order-1)] where ω
// is a primitive order-th root of unity of the scalar field. The generator is
// taken from the field's canonical 2-adic root of unity, so squaring the
// domain element-wise collapses onto the domain of half the order.
func Domain(order int) []fr.Element {
	if !IsPowerOfTwo(order) {
		panic(fmt.Sprintf("domain order %d is not a power of two", order))
	}

	omega := RootOfUnity(order)

	domain := make([]fr.Element, order)
	domain[0].SetOne()
	for i := 1; i < order; i++ {
		domain[i].Mul(&domain[i-1], &omega)
	}
	return domain
}

// RootOfUnity returns a primitive order-th root of unity. The order must be a
// power of two within the 2-adicity of the field.
func RootOfUnity(order int) fr.Element {
	if !IsPowerOfTwo(order) {
		panic(fmt.Sprintf("subgroup order %d is not a power of two", order))
	}
	return fft.NewDomain(uint64(order)).Generator
}

// SquareDomain maps a size-n subgroup domain to the size-n/2 subgroup domain
// obtained by squaring. Squaring a subgroup of order n collapses each pair
// {ω^i, ω^(n/2+i)} to the same value, so the first half of the squared
// sequence already enumerates the smaller subgroup in order.
func SquareDomain(domain []fr.Element) []fr.Element {
	half := len(domain) / 2
	if half == 0 {
		half = 1
	}
	squared := make([]fr.Element, half)
	for i := 0; i < half; i++ {
		squared[i].Square(&domain[i])
	}
	return squared
}

// FromWideBytes reduces 64 uniform bytes into a field element. The wide
// reduction keeps challenge scalars statistically uniform modulo the field
// prime.
func FromWideBytes(b []byte) fr.Element {
	var v big.Int
	v.SetBytes(b)

	var e fr.Element
	e.SetBigInt(&v)
	return e
}

// IsPowerOfTwo checks if a number is a power of 2
func IsPowerOfTwo(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}

// Log2 computes the base-2 logarithm of a power of 2
func Log2(n int) int {
	if !IsPowerOfTwo(n) {
		return -1
	}

	result := 0
	for n > 1 {
		n >>= 1
		result++
	}
	return result
}

// NextPowerOfTwo returns the smallest power of 2 >= n
func NextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	if IsPowerOfTwo(n) {
		return n
	}

	power := 1
	for power < n {
		power <<= 1
	}
	return power
}
