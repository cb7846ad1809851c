package port

import (
	"context"

	"github.com/google/uuid"

	"mesa-market/internal/core/domain"
)

// SponsorRepository persists sponsors. Lookups return (nil, nil) when the
// row does not exist.
type SponsorRepository interface {
	// FindByUserID returns the sponsor owned by userID.
	FindByUserID(ctx context.Context, userID string) (*domain.Sponsor, error)
	// Get returns a sponsor by id.
	Get(ctx context.Context, id uuid.UUID) (*domain.Sponsor, error)
	// ListByUserID returns the sponsors owned by userID with campaign counts.
	ListByUserID(ctx context.Context, userID string) ([]domain.SponsorSummary, error)
	// Create inserts s. A second sponsor for the same user fails with
	// domain.ErrConflict.
	Create(ctx context.Context, s *domain.Sponsor) error
	// Update writes the mutable fields of s.
	Update(ctx context.Context, s *domain.Sponsor) error
	// CountActive counts sponsors with is_active set.
	CountActive(ctx context.Context) (int64, error)
}
