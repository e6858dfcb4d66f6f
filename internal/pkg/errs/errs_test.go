//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"vehicle-rental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestKinded(t *testing.T) {
	errOverlap := errs.Kinded("rental window overlaps", errs.ErrConflict)

	t.Run("sentinel matches its kind", func(t *testing.T) {
		assert.ErrorIs(t, errOverlap, errs.ErrConflict)
		assert.NotErrorIs(t, errOverlap, errs.ErrValidation)
	})

	t.Run("kind survives wrapping", func(t *testing.T) {
		wrapped := errs.Wrap(errOverlap, "create rental")
		assert.ErrorIs(t, wrapped, errOverlap)
		assert.ErrorIs(t, wrapped, errs.ErrConflict)
		assert.True(t, errs.Is(wrapped, errs.ErrConflict))
		assert.Contains(t, wrapped.Error(), "create rental")
	})

	t.Run("mark adds a retryable kind", func(t *testing.T) {
		marked := errs.Mark(errors.New("serialization failure"), errs.ErrStorageConflict)
		assert.True(t, errs.IsRetryable(marked))
		assert.False(t, errs.IsRetryable(errOverlap))
	})

	t.Run("mark of nil returns the mark", func(t *testing.T) {
		assert.Equal(t, errs.ErrNotFound, errs.Mark(nil, errs.ErrNotFound))
	})
}
