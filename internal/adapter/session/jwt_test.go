package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-market/internal/config/configs"
	"mesa-market/internal/core/domain"
)

var carol = domain.User{ID: "user-carol", Email: "carol@example.com", Name: "Carol"}

// signSession mints a token the way the identity provider does.
func signSession(t *testing.T, secret string, user domain.User, ttl time.Duration, issuer, audience string) string {
	t.Helper()
	now := time.Now()
	claims := sessionClaims{
		Email: user.Email,
		Name:  user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if audience != "" {
		claims.Audience = jwt.ClaimStrings{audience}
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestValidate(t *testing.T) {
	v := NewJWTValidator(configs.Auth{Secret: "s3cret"})

	token := signSession(t, "s3cret", carol, time.Hour, "", "")

	got, err := v.Validate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, carol, got)
}

func TestValidateRejects(t *testing.T) {
	v := NewJWTValidator(configs.Auth{Secret: "s3cret", Issuer: "identity", Audience: "market"})

	expired := signSession(t, "s3cret", carol, -time.Hour, "identity", "market")
	wrongKey := signSession(t, "other", carol, time.Hour, "identity", "market")
	wrongAud := signSession(t, "s3cret", carol, time.Hour, "identity", "elsewhere")
	wrongIss := signSession(t, "s3cret", carol, time.Hour, "someone", "market")
	noSubject := signSession(t, "s3cret", domain.User{Email: "x@example.com"}, time.Hour, "identity", "market")
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": carol.ID,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	cases := map[string]string{
		"empty":      "",
		"garbage":    "not.a.jwt",
		"expired":    expired,
		"wrong key":  wrongKey,
		"audience":   wrongAud,
		"issuer":     wrongIss,
		"no subject": noSubject,
		"alg none":   none,
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := v.Validate(context.Background(), token)
			assert.ErrorIs(t, err, domain.ErrUnauthenticated)
		})
	}
}
