package utils

import (
	"bytes"
	"testing"
)

// TestTranscriptDeterminism tests that identical append sequences produce
// identical challenges
func TestTranscriptDeterminism(t *testing.T) {
	a := NewTranscript()
	b := NewTranscript()

	a.Append("root", []byte{1, 2, 3})
	b.Append("root", []byte{1, 2, 3})

	ca := a.Challenge("alpha", 64)
	cb := b.Challenge("alpha", 64)
	if !bytes.Equal(ca, cb) {
		t.Error("identical transcripts should squeeze identical challenges")
	}

	sa := a.ChallengeScalar("alpha")
	sb := b.ChallengeScalar("alpha")
	if !sa.Equal(&sb) {
		t.Error("identical transcripts should squeeze identical scalars")
	}
}

// TestTranscriptDivergence tests that differing appends or labels change
// subsequent challenges
func TestTranscriptDivergence(t *testing.T) {
	t.Run("Different_Data", func(t *testing.T) {
		a := NewTranscript()
		b := NewTranscript()
		a.Append("root", []byte{1})
		b.Append("root", []byte{2})

		if bytes.Equal(a.Challenge("alpha", 32), b.Challenge("alpha", 32)) {
			t.Error("different appends should diverge")
		}
	})

	t.Run("Different_Label", func(t *testing.T) {
		a := NewTranscript()
		b := NewTranscript()
		a.Append("root", []byte{1})
		b.Append("leaf", []byte{1})

		if bytes.Equal(a.Challenge("alpha", 32), b.Challenge("alpha", 32)) {
			t.Error("different append labels should diverge")
		}
	})

	t.Run("Different_Context", func(t *testing.T) {
		a := NewTranscript()
		b := NewTranscriptWithLabel("test_fri")

		if bytes.Equal(a.Challenge("alpha", 32), b.Challenge("alpha", 32)) {
			t.Error("different context labels should diverge")
		}
	})

	t.Run("AppendU64", func(t *testing.T) {
		a := NewTranscript()
		b := NewTranscript()
		a.AppendU64("counter", 0)
		b.AppendU64("counter", 1)

		if bytes.Equal(a.Challenge("index", 32), b.Challenge("index", 32)) {
			t.Error("different counters should diverge")
		}
	})
}

// TestTranscriptStateful tests that squeezing advances the duplex state
func TestTranscriptStateful(t *testing.T) {
	tr := NewTranscript()
	first := tr.Challenge("alpha", 32)
	second := tr.Challenge("alpha", 32)

	if bytes.Equal(first, second) {
		t.Error("consecutive squeezes should differ")
	}
}
