package port

import (
	"context"

	"github.com/google/uuid"

	"mesa-market/internal/core/domain"
)

type PublisherUseCase interface {
	List(ctx context.Context, caller domain.User) ([]domain.PublisherSummary, error)
	Get(ctx context.Context, caller domain.User, id uuid.UUID) (*domain.PublisherDetail, error)
	// Create registers the caller as a publisher.
	Create(ctx context.Context, caller domain.User, in CreatePublisherInput) (*domain.Publisher, error)
}

type CreatePublisherInput struct {
	Name         string  `json:"name" validate:"required"`
	Email        string  `json:"email" validate:"required,email"`
	Website      *string `json:"website" validate:"omitempty,url"`
	Category     *string `json:"category"`
	MonthlyViews *int64  `json:"monthlyViews" validate:"omitempty,gte=0"`
}
