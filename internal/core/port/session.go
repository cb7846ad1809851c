package port

import (
	"context"

	"mesa-market/internal/core/domain"
)

// SessionValidator resolves a session token issued by the identity provider
// into the calling user. Invalid or expired tokens yield an error matching
// domain.ErrUnauthenticated.
type SessionValidator interface {
	Validate(ctx context.Context, token string) (domain.User, error)
}
