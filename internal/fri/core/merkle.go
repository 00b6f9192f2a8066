package core

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// MerkleTree commits to a vector of field elements. Layers are kept
// leaf-to-root so openings can be extracted after committing.
type MerkleTree struct {
	layers [][]fr.Element
	hasher Hasher
}

// MerkleProof is an opening of a single leaf. Index records the leaf's
// position in the committed vector; it orders each hash pair during
// verification and lets protocol layers assert the opened position is the
// one they expect.
type MerkleProof struct {
	Root     fr.Element
	Leaf     fr.Element
	Index    int
	Siblings []fr.Element
}

// NewMerkleTree creates an empty tree using the given two-to-one hasher.
func NewMerkleTree(hasher Hasher) *MerkleTree {
	return &MerkleTree{hasher: hasher}
}

// Commit builds the tree over the leaves and returns the root. The leaf
// count must be a power of two. If an odd layer ever arises, the last
// element is paired with itself.
func (t *MerkleTree) Commit(leaves []fr.Element) fr.Element {
	n := len(leaves)
	if !IsPowerOfTwo(n) {
		panic(fmt.Sprintf("merkle: leaf count %d is not a power of two", n))
	}

	layer := make([]fr.Element, n)
	copy(layer, leaves)
	t.layers = [][]fr.Element{layer}

	for len(layer) > 1 {
		next := make([]fr.Element, 0, (len(layer)+1)/2)
		for i := 0; i < len(layer); i += 2 {
			if i == len(layer)-1 {
				next = append(next, t.hasher.Hash(layer[i], layer[i]))
			} else {
				next = append(next, t.hasher.Hash(layer[i], layer[i+1]))
			}
		}
		t.layers = append(t.layers, next)
		layer = next
	}

	return layer[0]
}

// Root returns the committed root.
func (t *MerkleTree) Root() fr.Element {
	if len(t.layers) == 0 {
		panic("merkle: tree has no committed leaves")
	}
	return t.layers[len(t.layers)-1][0]
}

// Open locates the leaf by equality in the leaf layer, first occurrence
// winning, and returns its authentication path.
func (t *MerkleTree) Open(leaf fr.Element) (MerkleProof, error) {
	if len(t.layers) == 0 {
		return MerkleProof{}, fmt.Errorf("merkle: tree has no committed leaves")
	}

	for i := range t.layers[0] {
		if t.layers[0][i].Equal(&leaf) {
			return t.OpenIndex(i)
		}
	}
	return MerkleProof{}, fmt.Errorf("merkle: leaf %s not found", leaf.String())
}

// OpenIndex returns the authentication path for the leaf at the given
// position. The sibling at each level is the pair partner, except that the
// rightmost node of an odd layer is its own sibling, mirroring the
// duplication rule in Commit.
func (t *MerkleTree) OpenIndex(index int) (MerkleProof, error) {
	if len(t.layers) == 0 {
		return MerkleProof{}, fmt.Errorf("merkle: tree has no committed leaves")
	}
	if index < 0 || index >= len(t.layers[0]) {
		return MerkleProof{}, fmt.Errorf("merkle: index %d out of range [0, %d)", index, len(t.layers[0]))
	}

	siblings := make([]fr.Element, 0, len(t.layers)-1)
	current := index
	for i := 0; i < len(t.layers)-1; i++ {
		sibling := current ^ 1
		if sibling >= len(t.layers[i]) {
			sibling = current
		}
		siblings = append(siblings, t.layers[i][sibling])
		current >>= 1
	}

	return MerkleProof{
		Root:     t.Root(),
		Leaf:     t.layers[0][index],
		Index:    index,
		Siblings: siblings,
	}, nil
}

// Verify folds the leaf upward through the siblings and compares the result
// with the proof's root. The index bit at each level decides which side of
// the pair the running hash sits on.
func (p MerkleProof) Verify(hasher Hasher) bool {
	current := p.Leaf
	index := p.Index
	for _, sibling := range p.Siblings {
		if index&1 == 0 {
			current = hasher.Hash(current, sibling)
		} else {
			current = hasher.Hash(sibling, current)
		}
		index >>= 1
	}
	return current.Equal(&p.Root)
}
