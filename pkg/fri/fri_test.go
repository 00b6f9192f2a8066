package fri

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewProverConfig(t *testing.T) {
	t.Run("Power_Of_Two", func(t *testing.T) {
		prover, err := NewProver(1024)
		require.NoError(t, err)
		require.NotNil(t, prover)
	})

	t.Run("Not_Power_Of_Two", func(t *testing.T) {
		_, err := NewProver(1000)
		require.Error(t, err)
		require.True(t, errors.Is(err, &Error{Code: ErrInvalidConfig}))
	})

	t.Run("Too_Small_For_Defaults", func(t *testing.T) {
		_, err := NewProver(2)
		require.Error(t, err)
		require.True(t, errors.Is(err, &Error{Code: ErrInvalidConfig}))
	})
}

func TestProveVerify(t *testing.T) {
	coeffs := make([]uint64, 17)
	for i := range coeffs {
		coeffs[i] = uint64(i)
	}

	prover, err := NewProver(16)
	require.NoError(t, err)

	proof, err := prover.Prove(coeffs)
	require.NoError(t, err)

	verifier, err := NewVerifier(16)
	require.NoError(t, err)

	require.NoError(t, verifier.Verify(proof, proof.Commitment))
}

func TestProveInvalidInput(t *testing.T) {
	prover, err := NewProver(16)
	require.NoError(t, err)

	t.Run("Empty", func(t *testing.T) {
		_, err := prover.Prove(nil)
		require.Error(t, err)
		require.True(t, errors.Is(err, &Error{Code: ErrInvalidInput}))
	})

	t.Run("Too_Many_Coefficients", func(t *testing.T) {
		_, err := prover.Prove(make([]uint64, 64))
		require.Error(t, err)
		require.True(t, errors.Is(err, &Error{Code: ErrInvalidInput}))
	})
}

func TestVerifyRejection(t *testing.T) {
	coeffs := make([]uint64, 17)
	for i := range coeffs {
		coeffs[i] = uint64(i)
	}

	prover, err := NewProver(16)
	require.NoError(t, err)
	proof, err := prover.Prove(coeffs)
	require.NoError(t, err)

	verifier, err := NewVerifier(16)
	require.NoError(t, err)

	var wrong Element
	wrong.SetUint64(12345)
	err = verifier.Verify(proof, wrong)
	require.Error(t, err)
	require.True(t, errors.Is(err, &Error{Code: ErrProofVerification}))

	var friErr *Error
	require.True(t, errors.As(err, &friErr))
	require.NotNil(t, friErr.Cause)
}

func TestErrorFormatting(t *testing.T) {
	t.Run("Without_Cause", func(t *testing.T) {
		e := &Error{Code: ErrInvalidConfig, Message: "bad degree"}
		require.Contains(t, e.Error(), "bad degree")
	})

	t.Run("With_Cause", func(t *testing.T) {
		cause := errors.New("inner")
		e := &Error{Code: ErrProofVerification, Message: "proof rejected", Cause: cause}
		require.Contains(t, e.Error(), "inner")
		require.Equal(t, cause, errors.Unwrap(e))
	})
}
