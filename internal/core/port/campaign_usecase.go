package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mesa-market/internal/core/domain"
)

type CampaignUseCase interface {
	// List returns the caller's sponsor campaigns, or none when the caller
	// is not a sponsor.
	List(ctx context.Context, caller domain.User, req ListCampaignsReq) ([]domain.Campaign, error)
	Get(ctx context.Context, caller domain.User, id uuid.UUID) (*domain.CampaignDetail, error)
	Create(ctx context.Context, caller domain.User, in CreateCampaignInput) (*domain.Campaign, error)
	Update(ctx context.Context, caller domain.User, id uuid.UUID, in UpdateCampaignInput) (*domain.Campaign, error)
	Delete(ctx context.Context, caller domain.User, id uuid.UUID) error
}

type ListCampaignsReq struct {
	Status *domain.CampaignStatus `json:"status" validate:"omitempty,oneof=DRAFT PENDING_REVIEW APPROVED ACTIVE PAUSED COMPLETED CANCELLED"`
}

// Dates accept RFC 3339 timestamps or plain YYYY-MM-DD dates.
type CreateCampaignInput struct {
	Name             string           `json:"name" validate:"required"`
	Description      *string          `json:"description"`
	Budget           decimal.Decimal  `json:"budget" validate:"required,gt=0"`
	CPMRate          *decimal.Decimal `json:"cpmRate" validate:"omitempty,gte=0"`
	CPCRate          *decimal.Decimal `json:"cpcRate" validate:"omitempty,gte=0"`
	StartDate        string           `json:"startDate" validate:"required"`
	EndDate          string           `json:"endDate" validate:"required"`
	TargetCategories []string         `json:"targetCategories"`
	TargetRegions    []string         `json:"targetRegions"`
	SponsorID        uuid.UUID        `json:"sponsorId" validate:"required"`
}

type UpdateCampaignInput struct {
	Name             *string                `json:"name" validate:"omitempty,min=1"`
	Description      *string                `json:"description"`
	Budget           *decimal.Decimal       `json:"budget" validate:"omitempty,gt=0"`
	CPMRate          *decimal.Decimal       `json:"cpmRate" validate:"omitempty,gte=0"`
	CPCRate          *decimal.Decimal       `json:"cpcRate" validate:"omitempty,gte=0"`
	StartDate        *string                `json:"startDate"`
	EndDate          *string                `json:"endDate"`
	TargetCategories []string               `json:"targetCategories"`
	TargetRegions    []string               `json:"targetRegions"`
	Status           *domain.CampaignStatus `json:"status" validate:"omitempty,oneof=DRAFT PENDING_REVIEW APPROVED ACTIVE PAUSED COMPLETED CANCELLED"`
}
