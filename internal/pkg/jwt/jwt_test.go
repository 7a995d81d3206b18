package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndValidate(t *testing.T) {
	token, err := Generate("u1", "ranger@kruger.co.za", "kruger_staff", "Kruger Park Ranger", testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := Validate(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "ranger@kruger.co.za", claims.Email)
	assert.Equal(t, "kruger_staff", claims.Role)
	assert.Equal(t, "Kruger Park Ranger", claims.Name)
}

func TestValidateExpiredToken(t *testing.T) {
	token, err := Generate("u1", "a@b.c", "admin", "A", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = Validate(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateWrongSecret(t *testing.T) {
	token, err := Generate("u1", "a@b.c", "admin", "A", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = Validate(token, "other-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateGarbage(t *testing.T) {
	_, err := Validate("not-a-token", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestExpiryMatchesTTL(t *testing.T) {
	ttl := 24 * time.Hour
	token, err := Generate("u1", "a@b.c", "admin", "A", testSecret, ttl)
	require.NoError(t, err)

	claims, err := Validate(token, testSecret)
	require.NoError(t, err)

	expected := time.Now().Add(ttl)
	assert.WithinDuration(t, expected, claims.ExpiresAt.Time, 5*time.Second)
}
