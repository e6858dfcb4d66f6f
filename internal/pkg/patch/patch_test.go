//go:build unit

package patch_test

import (
	"testing"

	"vehicle-rental/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	v := 5
	assert.Equal(t, 5, patch.Coalesce(&v, 9))
	assert.Equal(t, 9, patch.Coalesce[int](nil, 9))
}
