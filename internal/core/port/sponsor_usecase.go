package port

import (
	"context"

	"github.com/google/uuid"

	"mesa-market/internal/core/domain"
)

type SponsorUseCase interface {
	List(ctx context.Context, caller domain.User) ([]domain.SponsorSummary, error)
	Get(ctx context.Context, caller domain.User, id uuid.UUID) (*domain.SponsorDetail, error)
	// Create registers the caller as a sponsor.
	Create(ctx context.Context, caller domain.User, in CreateSponsorInput) (*domain.Sponsor, error)
	Update(ctx context.Context, caller domain.User, id uuid.UUID, in UpdateSponsorInput) (*domain.Sponsor, error)
}

type CreateSponsorInput struct {
	Name        string  `json:"name" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Website     *string `json:"website" validate:"omitempty,url"`
	Logo        *string `json:"logo" validate:"omitempty,url"`
	Description *string `json:"description"`
	Industry    *string `json:"industry"`
}

type UpdateSponsorInput struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Website     *string `json:"website" validate:"omitempty,url"`
	Logo        *string `json:"logo" validate:"omitempty,url"`
	Description *string `json:"description"`
	Industry    *string `json:"industry"`
}
