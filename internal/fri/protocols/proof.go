package protocols

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/DanTehrani/fri/internal/fri/core"
)

// Opening is one colinearity check's worth of Merkle openings in a layer.
// A and B open the current layer's codeword at ω^i and ω^(n/2+i) = -ω^i;
// C opens the next layer's codeword at the folded position, in the next
// layer's tree.
type Opening struct {
	A core.MerkleProof
	B core.MerkleProof
	C core.MerkleProof
}

// LayerProof holds the openings of a single folding round, one triple per
// colinearity check.
type LayerProof struct {
	Openings []Opening
}

// Proof is a complete FRI proof. It is a pure value object; callers may
// serialize it however they like.
type Proof struct {
	// ReducedCodeword is the terminal codeword, small enough for the
	// verifier to interpolate directly.
	ReducedCodeword []fr.Element

	// Queries holds the per-layer openings for every surviving round.
	Queries []LayerProof

	// Commitment is the Merkle root of the initial codeword. It is the
	// polynomial commitment the verifier checks the layer-0 openings
	// against.
	Commitment fr.Element
}
