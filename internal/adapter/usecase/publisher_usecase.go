package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mesa-market/internal/core/domain"
	"mesa-market/internal/core/port"
)

type PublisherUseCase struct {
	publishers port.PublisherRepository
	slots      port.AdSlotRepository
}

func NewPublisherUseCase(publishers port.PublisherRepository, slots port.AdSlotRepository) *PublisherUseCase {
	return &PublisherUseCase{publishers: publishers, slots: slots}
}

func (u *PublisherUseCase) List(ctx context.Context, caller domain.User) ([]domain.PublisherSummary, error) {
	pubs, err := u.publishers.ListByUserID(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("list publishers: %w", err)
	}
	return pubs, nil
}

func (u *PublisherUseCase) Get(ctx context.Context, caller domain.User, id uuid.UUID) (*domain.PublisherDetail, error) {
	p, err := u.publishers.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get publisher: %w", err)
	}
	if err = authorize(p != nil, p != nil && p.UserID == caller.ID, "Publisher"); err != nil {
		return nil, err
	}
	slots, err := u.slots.ListByPublisher(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list publisher ad slots: %w", err)
	}
	return &domain.PublisherDetail{Publisher: *p, AdSlots: slots}, nil
}

func (u *PublisherUseCase) Create(ctx context.Context, caller domain.User, in port.CreatePublisherInput) (*domain.Publisher, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	p := &domain.Publisher{
		ID:        uuid.New(),
		UserID:    caller.ID,
		Name:      in.Name,
		Email:     in.Email,
		Website:   in.Website,
		Category:  in.Category,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.MonthlyViews != nil {
		p.MonthlyViews = *in.MonthlyViews
	}
	if err := u.publishers.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create publisher: %w", err)
	}
	return p, nil
}
