package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf_TaggedError(t *testing.T) {
	err := Conflict("seat already reserved")
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, "seat already reserved", MessageOf(err))
}

func TestKindOf_WrappedError(t *testing.T) {
	err := fmt.Errorf("create reservation: %w", NotFound("ride not found"))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "ride not found", MessageOf(err))
}

func TestKindOf_UntaggedError(t *testing.T) {
	err := errors.New("connection refused")
	assert.Equal(t, KindInternal, KindOf(err))
	assert.Equal(t, "internal server error", MessageOf(err))
}

func TestInternal_KeepsCauseOutOfMessage(t *testing.T) {
	cause := errors.New("pq: deadlock detected")
	err := Internal(cause)

	assert.Equal(t, "internal server error", MessageOf(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "deadlock")
}

func TestIsKind(t *testing.T) {
	assert.True(t, IsKind(Forbidden("not the ride's driver"), KindForbidden))
	assert.False(t, IsKind(Forbidden("not the ride's driver"), KindConflict))
}
