package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelpirates/leaderboard/internal/access"
)

func TestManager_IssueAndParse(t *testing.T) {
	m := NewManager("secret", time.Hour, "leaderboard")

	signed, err := m.Issue("acc-1", access.RoleOwner, "owner@example.com")
	require.NoError(t, err)

	claims, err := m.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", claims.AccountID)
	assert.Equal(t, access.RoleOwner, claims.Role)
	assert.Equal(t, "owner@example.com", claims.Email)
	assert.Equal(t, "acc-1", claims.Subject)
}

func TestManager_ParseRejects(t *testing.T) {
	m := NewManager("secret", time.Hour, "leaderboard")
	valid, err := m.Issue("acc-1", access.RoleCoordinator, "c@example.com")
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		other := NewManager("other", time.Hour, "leaderboard")
		_, err := other.Parse(valid)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := NewManager("secret", time.Hour, "someone-else")
		_, err := other.Parse(valid)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewManager("secret", time.Hour, "leaderboard")
		expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		signed, err := expired.Issue("acc-1", access.RoleOwner, "o@example.com")
		require.NoError(t, err)

		_, err = m.Parse(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Parse("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("none algorithm", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
			AccountID: "acc-1",
			Role:      access.RoleCoordinator,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "leaderboard",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		signed, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = m.Parse(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unknown role", func(t *testing.T) {
		signed, err := m.Issue("acc-1", access.Role("admin"), "a@example.com")
		require.NoError(t, err)

		_, err = m.Parse(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
