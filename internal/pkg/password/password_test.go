package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("kruger123")
	require.NoError(t, err)
	require.NotEqual(t, "kruger123", hash)

	assert.True(t, Verify("kruger123", hash))
	assert.False(t, Verify("wrong", hash))
	assert.False(t, Verify("kruger123", "not-a-hash"))
}
