package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mesa-market/internal/core/domain"
)

// AdSlotUseCase covers ad slot inventory and the booking state machine.
type AdSlotUseCase interface {
	// List browses the marketplace. Any authenticated user may list.
	List(ctx context.Context, req ListAdSlotsReq) ([]domain.AdSlotListItem, domain.Pagination, error)
	// Get returns a slot with its publisher and placements.
	Get(ctx context.Context, caller domain.User, id uuid.UUID) (*domain.AdSlotDetail, error)
	// Create adds a slot to a publisher the caller owns.
	Create(ctx context.Context, caller domain.User, in CreateAdSlotInput) (*domain.AdSlot, error)
	Update(ctx context.Context, caller domain.User, id uuid.UUID, in UpdateAdSlotInput) (*domain.AdSlot, error)
	Delete(ctx context.Context, caller domain.User, id uuid.UUID) error
	// Book moves an available slot to booked on behalf of a sponsor the
	// caller owns. Booking a booked slot fails with domain.ErrSlotUnavailable.
	Book(ctx context.Context, caller domain.User, id uuid.UUID, in BookInput) (*domain.AdSlot, error)
	// Unbook makes a slot available again. It is idempotent.
	Unbook(ctx context.Context, caller domain.User, id uuid.UUID) (*domain.AdSlot, error)
}

const (
	DefaultAdSlotPage  = 1
	DefaultAdSlotLimit = 6
)

type ListAdSlotsReq struct {
	Type          *domain.AdSlotType `json:"type" validate:"omitempty,oneof=DISPLAY VIDEO NATIVE NEWSLETTER PODCAST"`
	AvailableOnly bool               `json:"available"`
	PublisherID   *uuid.UUID         `json:"publisherId"`
	Page          int                `json:"page" validate:"min=1"`
	Limit         int                `json:"limit" validate:"min=1,max=50"`
}

type CreateAdSlotInput struct {
	Name        string            `json:"name" validate:"required"`
	Description *string           `json:"description"`
	Type        domain.AdSlotType `json:"type" validate:"required,oneof=DISPLAY VIDEO NATIVE NEWSLETTER PODCAST"`
	Position    *string           `json:"position"`
	Width       *int32            `json:"width" validate:"omitempty,gt=0"`
	Height      *int32            `json:"height" validate:"omitempty,gt=0"`
	BasePrice   decimal.Decimal   `json:"basePrice" validate:"required,gt=0"`
	CPMFloor    *decimal.Decimal  `json:"cpmFloor" validate:"omitempty,gte=0"`
	PublisherID uuid.UUID         `json:"publisherId" validate:"required"`
}

// UpdateAdSlotInput is a partial update; nil fields are left unchanged.
type UpdateAdSlotInput struct {
	Name        *string            `json:"name" validate:"omitempty,min=1"`
	Description *string            `json:"description"`
	Type        *domain.AdSlotType `json:"type" validate:"omitempty,oneof=DISPLAY VIDEO NATIVE NEWSLETTER PODCAST"`
	BasePrice   *decimal.Decimal   `json:"basePrice" validate:"omitempty,gt=0"`
	CPMFloor    *decimal.Decimal   `json:"cpmFloor" validate:"omitempty,gte=0"`
	IsAvailable *bool              `json:"isAvailable"`
}

type BookInput struct {
	SponsorID uuid.UUID `json:"sponsorId" validate:"required"`
	Message   *string   `json:"message"`
}
