package authtoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndParse(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	token, err := manager.Create("user-1", "admin", "admin@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Parse(token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "admin@example.com", claims.Email)
}

func TestParseErrors(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	t.Run("мусор вместо токена", func(t *testing.T) {
		_, err := manager.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("чужой секрет", func(t *testing.T) {
		other := NewManager("other-secret", time.Hour)
		token, err := other.Create("user-1", "user", "ivan@example.com")
		require.NoError(t, err)

		_, err = manager.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("просроченный токен", func(t *testing.T) {
		expired := NewManager("test-secret", -time.Minute)
		token, err := expired.Create("user-1", "user", "ivan@example.com")
		require.NoError(t, err)

		_, err = manager.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
