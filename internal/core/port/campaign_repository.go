package port

import (
	"context"

	"github.com/google/uuid"

	"mesa-market/internal/core/domain"
)

// CampaignRepository persists campaigns. Get returns (nil, nil) when absent.
type CampaignRepository interface {
	// ListBySponsor returns the sponsor's campaigns, newest first,
	// optionally narrowed to one status.
	ListBySponsor(ctx context.Context, sponsorID uuid.UUID, status *domain.CampaignStatus) ([]domain.Campaign, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	Create(ctx context.Context, c *domain.Campaign) error
	Update(ctx context.Context, c *domain.Campaign) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByStatus(ctx context.Context, status domain.CampaignStatus) (int64, error)
}
