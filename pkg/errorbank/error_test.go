package errorbank

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError(t *testing.T) {
	cause := errors.New("connection reset")

	t.Run("message with cause", func(t *testing.T) {
		err := Internal("failed to load product", WithCause(cause))
		assert.Equal(t, "failed to load product: connection reset", err.Error())
		assert.Equal(t, "failed to load product", err.Message())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("empty message falls back to kind", func(t *testing.T) {
		err := NotFound("")
		assert.Equal(t, "not_found", err.Message())
	})

	t.Run("nil receiver", func(t *testing.T) {
		var err *AppError
		assert.Equal(t, KindInternal, err.Kind())
		assert.Equal(t, "<nil>", err.Error())
		assert.Nil(t, err.Unwrap())
	})
}

func TestFrom(t *testing.T) {
	assert.Nil(t, From(nil))

	wrapped := fmt.Errorf("service: %w", InvalidReference("Invalid Customer ID"))
	appErr := From(wrapped)
	require.NotNil(t, appErr)
	assert.Equal(t, KindInvalidReference, appErr.Kind())
	assert.Equal(t, "Invalid Customer ID", appErr.Message())

	plain := From(errors.New("boom"))
	assert.Equal(t, KindInternal, plain.Kind())
	assert.Equal(t, "internal error", plain.Message())
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("wrap: %w", ValidationFailure("duplicate username"))
	assert.True(t, IsKind(err, KindValidationFailure))
	assert.False(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(errors.New("plain"), KindInternal))
}
