package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"mesa-market/internal/config/configs"
	"mesa-market/internal/core/domain"
)

// JWTValidator implements port.SessionValidator for HS256 session tokens
// issued by the identity provider. The subject claim is the user id.
type JWTValidator struct {
	secret []byte
	opts   []jwt.ParserOption
}

type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

func NewJWTValidator(cfg configs.Auth) *JWTValidator {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(30 * time.Second),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}
	return &JWTValidator{secret: []byte(cfg.Secret), opts: opts}
}

// Validate parses token and returns the user it was issued to. Every
// failure matches domain.ErrUnauthenticated.
func (v *JWTValidator) Validate(_ context.Context, token string) (domain.User, error) {
	if token == "" {
		return domain.User{}, domain.ErrUnauthenticated
	}
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, v.opts...)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %s", domain.ErrUnauthenticated, reason(err))
	}
	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return domain.User{}, fmt.Errorf("%w: invalid claims", domain.ErrUnauthenticated)
	}
	return domain.User{ID: claims.Subject, Email: claims.Email, Name: claims.Name}, nil
}

func reason(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "token expired"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "bad signature"
	case errors.Is(err, jwt.ErrTokenInvalidIssuer), errors.Is(err, jwt.ErrTokenInvalidAudience):
		return "wrong issuer or audience"
	default:
		return "malformed token"
	}
}
