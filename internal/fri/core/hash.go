package core

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
	"golang.org/x/crypto/sha3"
)

// Hasher is the two-to-one compression function used to build Merkle trees
// over field elements.
type Hasher interface {
	// Hash compresses two field elements into one.
	Hash(left, right fr.Element) fr.Element

	// Name identifies the hash function.
	Name() string
}

// MiMCHasher compresses with the MiMC permutation over the scalar field.
// Field-friendly, so commitments stay cheap to open inside other proof
// systems.
type MiMCHasher struct{}

// NewMiMCHasher creates a MiMC-backed two-to-one hasher.
func NewMiMCHasher() MiMCHasher {
	return MiMCHasher{}
}

// Hash compresses two field elements into one.
func (MiMCHasher) Hash(left, right fr.Element) fr.Element {
	h := mimc.NewMiMC()
	lb := left.Bytes()
	rb := right.Bytes()
	h.Write(lb[:])
	h.Write(rb[:])

	var out fr.Element
	out.SetBytes(h.Sum(nil))
	return out
}

// Name identifies the hash function.
func (MiMCHasher) Name() string {
	return "mimc"
}

// KeccakHasher compresses with Keccak-256 over the concatenated canonical
// encodings, reducing the digest into the field.
type KeccakHasher struct{}

// NewKeccakHasher creates a Keccak-256-backed two-to-one hasher.
func NewKeccakHasher() KeccakHasher {
	return KeccakHasher{}
}

// Hash compresses two field elements into one.
func (KeccakHasher) Hash(left, right fr.Element) fr.Element {
	h := sha3.NewLegacyKeccak256()
	lb := left.Bytes()
	rb := right.Bytes()
	h.Write(lb[:])
	h.Write(rb[:])

	var out fr.Element
	out.SetBytes(h.Sum(nil))
	return out
}

// Name identifies the hash function.
func (KeccakHasher) Name() string {
	return "keccak256"
}
