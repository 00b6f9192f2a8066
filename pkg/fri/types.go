package fri

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/DanTehrani/fri/internal/fri/core"
	"github.com/DanTehrani/fri/internal/fri/protocols"
	"github.com/DanTehrani/fri/internal/fri/utils"
)

// Element is an element of the proof system's field
type Element = fr.Element

// Proof is a complete FRI proof
type Proof = protocols.Proof

// LayerProof holds one folding round's openings
type LayerProof = protocols.LayerProof

// Opening is a single colinearity check's Merkle openings
type Opening = protocols.Opening

// MerkleProof is a single-leaf authentication path
type MerkleProof = core.MerkleProof

// MerkleTree commits to a vector of field elements
type MerkleTree = core.MerkleTree

// Hasher is the two-to-one compression function used by the Merkle trees
type Hasher = core.Hasher

// UniPoly is a dense-coefficient univariate polynomial
type UniPoly = core.UniPoly

// Transcript is the Fiat-Shamir channel
type Transcript = utils.Transcript
