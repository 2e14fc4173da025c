package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/AlibekovAA/course-advisor/backend/internal/common/crypto"
)

func TestBcryptHasher_VerifyMatches(t *testing.T) {
	h := crypto.NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := h.Hash("password123")
	require.NoError(t, err)

	assert.True(t, h.Verify("password123", hash))
	assert.False(t, h.Verify("password124", hash))
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	h := crypto.NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := h.Hash("password123")
	require.NoError(t, err)
	second, err := h.Hash("password123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("password123", first))
	assert.True(t, h.Verify("password123", second))
}

func TestBcryptHasher_MalformedHashIsMismatch(t *testing.T) {
	h := crypto.NewBcryptHasherWithCost(bcrypt.MinCost)

	for _, hash := range []string{"", "not-a-bcrypt-hash", "$2a$10$short"} {
		assert.False(t, h.Verify("password123", hash), "hash %q", hash)
	}
}

func TestUUIDGenerator_Unique(t *testing.T) {
	g := crypto.NewUUIDGenerator()

	a, err := g.NewID()
	require.NoError(t, err)
	b, err := g.NewID()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36)
}
