package port

import (
	"context"

	"github.com/google/uuid"

	"mesa-market/internal/core/domain"
)

// PublisherRepository persists publishers. Lookups return (nil, nil) when
// the row does not exist.
type PublisherRepository interface {
	FindByUserID(ctx context.Context, userID string) (*domain.Publisher, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Publisher, error)
	ListByUserID(ctx context.Context, userID string) ([]domain.PublisherSummary, error)
	Create(ctx context.Context, p *domain.Publisher) error
	CountActive(ctx context.Context) (int64, error)
}
