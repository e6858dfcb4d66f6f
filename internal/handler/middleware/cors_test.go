//go:build unit

package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithRequired(t *testing.T) {
	got := withRequired([]string{"Content-Length", "Location"}, requiredExposeHeaders)
	assert.Equal(t, []string{"Content-Length", "Location", "Retry-After", ReplayedHeader}, got)
}
