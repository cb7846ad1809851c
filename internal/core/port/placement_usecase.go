package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mesa-market/internal/core/domain"
)

type PlacementUseCase interface {
	// List returns placements on the caller's campaigns or ad slots.
	List(ctx context.Context, caller domain.User, req ListPlacementsReq) ([]domain.PlacementListItem, error)
	// Create requests a placement of a caller-owned campaign on an
	// available slot.
	Create(ctx context.Context, caller domain.User, in CreatePlacementInput) (*domain.Placement, error)
}

type ListPlacementsReq struct {
	CampaignID  *uuid.UUID              `json:"campaignId"`
	PublisherID *uuid.UUID              `json:"publisherId"`
	Status      *domain.PlacementStatus `json:"status" validate:"omitempty,oneof=PENDING APPROVED ACTIVE PAUSED COMPLETED REJECTED"`
}

type CreatePlacementInput struct {
	CampaignID   uuid.UUID            `json:"campaignId" validate:"required"`
	CreativeID   uuid.UUID            `json:"creativeId" validate:"required"`
	AdSlotID     uuid.UUID            `json:"adSlotId" validate:"required"`
	PublisherID  uuid.UUID            `json:"publisherId" validate:"required"`
	AgreedPrice  decimal.Decimal      `json:"agreedPrice" validate:"required,gt=0"`
	PricingModel *domain.PricingModel `json:"pricingModel" validate:"omitempty,oneof=CPM CPC CPA FLAT_RATE"`
	StartDate    string               `json:"startDate" validate:"required"`
	EndDate      string               `json:"endDate" validate:"required"`
}
