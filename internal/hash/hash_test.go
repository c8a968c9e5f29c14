package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheck(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("masala")
	require.NoError(t, err)
	assert.NotEqual(t, "masala", h)
	assert.True(t, IsHash(h))

	assert.True(t, CheckPassword(h, "masala"))
	assert.False(t, CheckPassword(h, "Masala"))
	assert.False(t, CheckPassword("plain", "plain"))
}

func TestIsHash(t *testing.T) {
	t.Parallel()

	assert.False(t, IsHash("admin123"))
	assert.False(t, IsHash(""))
}
