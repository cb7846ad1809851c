package port

import (
	"context"

	"github.com/google/uuid"

	"mesa-market/internal/core/domain"
)

// PlacementRepository persists placements.
type PlacementRepository interface {
	// List returns placements visible through filter, newest first.
	List(ctx context.Context, filter domain.PlacementFilter) ([]domain.PlacementListItem, error)
	ListByAdSlot(ctx context.Context, adSlotID uuid.UUID) ([]domain.SlotPlacement, error)
	ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]domain.CampaignPlacement, error)
	Create(ctx context.Context, p *domain.Placement) error
	Count(ctx context.Context) (int64, error)
	// Metrics sums impressions, clicks and conversions over all placements.
	Metrics(ctx context.Context) (domain.PlacementMetrics, error)
}
