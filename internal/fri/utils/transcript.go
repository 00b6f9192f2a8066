package utils

import (
	"encoding/binary"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/gtank/merlin"

	"github.com/DanTehrani/fri/internal/fri/core"
)

// ProtocolLabel is the transcript context label fixed by the protocol.
// Interoperable provers and verifiers must use it; tests and benchmarks may
// pick their own.
const ProtocolLabel = "Fast Reed-Solomon Interactive Oracle Proof of Proximity"

// Transcript is the Fiat-Shamir channel. It wraps a merlin duplex so that,
// given the same sequence of labeled appends, every challenge is
// byte-identical across prover and verifier.
type Transcript struct {
	inner *merlin.Transcript
}

// NewTranscript creates a transcript under the protocol's context label.
func NewTranscript() *Transcript {
	return NewTranscriptWithLabel(ProtocolLabel)
}

// NewTranscriptWithLabel creates a transcript under a caller-chosen context
// label.
func NewTranscriptWithLabel(label string) *Transcript {
	return &Transcript{inner: merlin.NewTranscript(label)}
}

// Append absorbs data into the transcript under the given label.
func (t *Transcript) Append(label string, data []byte) {
	t.inner.AppendMessage([]byte(label), data)
}

// AppendU64 absorbs a u64 under the given label, little-endian.
func (t *Transcript) AppendU64(label string, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	t.inner.AppendMessage([]byte(label), buf[:])
}

// Challenge squeezes n uniform pseudorandom bytes under the given label.
func (t *Transcript) Challenge(label string, n int) []byte {
	return t.inner.ExtractBytes([]byte(label), n)
}

// ChallengeScalar squeezes 64 bytes under the given label and wide-reduces
// them into the field.
func (t *Transcript) ChallengeScalar(label string) fr.Element {
	return core.FromWideBytes(t.Challenge(label, 64))
}
