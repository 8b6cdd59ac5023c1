package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test_secret"))
	require.NoError(t, err)
	return signed
}

func TestTokenExpiresAt(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := signedToken(t, jwt.MapClaims{"sub": "1", "exp": exp.Unix()})

	got, err := TokenExpiresAt(raw)
	require.NoError(t, err)
	assert.True(t, got.Equal(exp))
}

func TestTokenExpiresAtMalformed(t *testing.T) {
	_, err := TokenExpiresAt("not-a-jwt")
	assert.Error(t, err)
}

func TestTokenExpiresAtMissingClaim(t *testing.T) {
	raw := signedToken(t, jwt.MapClaims{"sub": "1"})

	_, err := TokenExpiresAt(raw)
	assert.Error(t, err)
}
