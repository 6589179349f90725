package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	// bcrypt.MinCost keeps these tests fast; production uses DefaultHashCost.
	hasher := NewBcryptHasher(bcrypt.MinCost)

	t.Run("hash verifies against its own password", func(t *testing.T) {
		t.Parallel()
		digest, err := hasher.Hash("pw123")
		require.NoError(t, err)
		require.NotEmpty(t, digest)
		assert.NotEqual(t, "pw123", digest)

		assert.NoError(t, hasher.Compare(digest, "pw123"))
	})

	t.Run("hash rejects a different password", func(t *testing.T) {
		t.Parallel()
		digest, err := hasher.Hash("pw123")
		require.NoError(t, err)

		assert.Error(t, hasher.Compare(digest, "other-password"))
	})

	t.Run("salting makes output non-deterministic", func(t *testing.T) {
		t.Parallel()
		first, err := hasher.Hash("pw123")
		require.NoError(t, err)
		second, err := hasher.Hash("pw123")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.NoError(t, hasher.Compare(first, "pw123"))
		assert.NoError(t, hasher.Compare(second, "pw123"))
	})

	t.Run("malformed digest fails verification without panicking", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, hasher.Compare("not-a-bcrypt-digest", "pw123"))
		assert.Error(t, hasher.Compare("", "pw123"))
	})
}

func TestNewBcryptHasherCost(t *testing.T) {
	t.Parallel()

	t.Run("configured cost is embedded in the digest", func(t *testing.T) {
		t.Parallel()
		hasher := NewBcryptHasher(DefaultHashCost)
		digest, err := hasher.Hash("pw123")
		require.NoError(t, err)

		cost, err := bcrypt.Cost([]byte(digest))
		require.NoError(t, err)
		assert.Equal(t, DefaultHashCost, cost)
	})

	t.Run("out of range cost falls back to default", func(t *testing.T) {
		t.Parallel()
		hasher := NewBcryptHasher(99)
		assert.Equal(t, DefaultHashCost, hasher.cost)

		hasher = NewBcryptHasher(-1)
		assert.Equal(t, DefaultHashCost, hasher.cost)
	})

	t.Run("digest uses the standard bcrypt format", func(t *testing.T) {
		t.Parallel()
		hasher := NewBcryptHasher(bcrypt.MinCost)
		digest, err := hasher.Hash("pw123")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(digest, "$2a$"))
	})
}
