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
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := signedToken(t, jwt.MapClaims{
		"sub": "dana@hospital.test",
		"exp": exp.Unix(),
	})

	got, ok := TokenExpiry(tok)
	require.True(t, ok)
	assert.True(t, got.Equal(exp))
}

func TestTokenExpiryWithoutClaim(t *testing.T) {
	tok := signedToken(t, jwt.MapClaims{"sub": "dana@hospital.test"})

	_, ok := TokenExpiry(tok)
	assert.False(t, ok)
}

func TestTokenExpiryOpaqueToken(t *testing.T) {
	_, ok := TokenExpiry("not-a-jwt-at-all")
	assert.False(t, ok)
}

func TestTokenExpired(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{
			name:  "live token",
			token: signedToken(t, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()}),
			want:  false,
		},
		{
			name:  "expired token",
			token: signedToken(t, jwt.MapClaims{"exp": now.Add(-time.Hour).Unix()}),
			want:  true,
		},
		{
			// The backend gets the final word on opaque tokens.
			name:  "opaque token",
			token: "opaque-session-id",
			want:  false,
		},
		{
			name:  "no expiry claim",
			token: signedToken(t, jwt.MapClaims{"sub": "x"}),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TokenExpired(tt.token, now))
		})
	}
}
