package utils

import "testing"

// TestSampleIndices tests the count, range, and reduced-distinctness of the
// sampled indices
func TestSampleIndices(t *testing.T) {
	transcript := NewTranscript()
	transcript.Append("root", []byte("seed"))

	numIndices := 4
	maxIndex := 64
	reducedMaxIndex := 16

	indices := SampleIndices(numIndices, maxIndex, reducedMaxIndex, transcript)

	if len(indices) != numIndices {
		t.Fatalf("expected %d indices, got %d", numIndices, len(indices))
	}

	seen := make(map[int]struct{})
	for _, idx := range indices {
		if idx < 0 || idx >= maxIndex {
			t.Errorf("index %d out of range [0, %d)", idx, maxIndex)
		}
		reduced := idx % reducedMaxIndex
		if _, dup := seen[reduced]; dup {
			t.Errorf("reduced identity %d sampled twice", reduced)
		}
		seen[reduced] = struct{}{}
	}
}

// TestSampleIndicesDeterminism tests that identical transcripts sample
// identical indices
func TestSampleIndicesDeterminism(t *testing.T) {
	a := NewTranscript()
	b := NewTranscript()
	a.Append("root", []byte{7})
	b.Append("root", []byte{7})

	ia := SampleIndices(3, 128, 32, a)
	ib := SampleIndices(3, 128, 32, b)

	for i := range ia {
		if ia[i] != ib[i] {
			t.Fatalf("index %d differs: %d vs %d", i, ia[i], ib[i])
		}
	}
}

// TestSampleIndicesPrecondition tests the precondition that the reduced
// space holds at least as many identities as indices requested
func TestSampleIndicesPrecondition(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("sampling more indices than the reduced space holds should panic")
		}
	}()
	SampleIndices(8, 64, 4, NewTranscript())
}
