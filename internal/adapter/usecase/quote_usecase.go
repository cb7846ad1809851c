package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mesa-market/internal/core/domain"
	"mesa-market/internal/core/port"
)

// QuoteUseCase runs the quote request lifecycle. Statuses form a flat set:
// the owning publisher may move a quote between any two of them.
type QuoteUseCase struct {
	quotes port.QuoteRepository
	slots  port.AdSlotRepository
	owner  *OwnershipResolver
}

func NewQuoteUseCase(quotes port.QuoteRepository, slots port.AdSlotRepository, owner *OwnershipResolver) *QuoteUseCase {
	return &QuoteUseCase{quotes: quotes, slots: slots, owner: owner}
}

func (u *QuoteUseCase) RequestQuote(ctx context.Context, caller domain.User, in port.RequestQuoteInput) (*domain.QuoteRequest, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	slot, err := u.slots.Get(ctx, in.AdSlotID)
	if err != nil {
		return nil, fmt.Errorf("get ad slot: %w", err)
	}
	if slot == nil {
		return nil, domain.NotFound("Ad slot")
	}

	now := time.Now().UTC()
	userID := caller.ID
	q := &domain.QuoteRequest{
		ID:          uuid.New(),
		AdSlotID:    slot.ID,
		UserID:      &userID,
		CompanyName: in.CompanyName,
		Email:       in.Email,
		Phone:       in.Phone,
		Message:     in.Message,
		Status:      domain.QuotePending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err = u.quotes.Create(ctx, q); err != nil {
		return nil, fmt.Errorf("create quote: %w", err)
	}
	return q, nil
}

func (u *QuoteUseCase) ListMine(ctx context.Context, caller domain.User, adSlotID *uuid.UUID) ([]domain.QuoteRequest, error) {
	quotes, err := u.quotes.ListByUser(ctx, caller.ID, adSlotID)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	return quotes, nil
}

// ListForPublisher returns the inbox of the caller's publisher. Callers
// without a publisher get domain.ErrNotPublisher.
func (u *QuoteUseCase) ListForPublisher(ctx context.Context, caller domain.User) ([]domain.PublisherQuoteRequest, error) {
	pub, err := u.owner.ownedPublisher(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	if pub == nil {
		return nil, domain.ErrNotPublisher
	}
	quotes, err := u.quotes.ListByPublisher(ctx, pub.ID)
	if err != nil {
		return nil, fmt.Errorf("list publisher quotes: %w", err)
	}
	return quotes, nil
}

// UpdateStatus follows quote -> ad slot -> publisher and requires that
// publisher to be the caller's.
func (u *QuoteUseCase) UpdateStatus(ctx context.Context, caller domain.User, id uuid.UUID, in port.UpdateQuoteStatusInput) error {
	if err := validateInput(in); err != nil {
		return err
	}
	quote, err := u.quotes.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get quote: %w", err)
	}
	if quote == nil {
		return domain.NotFound("Quote request")
	}

	pub, err := u.owner.ownedPublisher(ctx, caller.ID)
	if err != nil {
		return err
	}
	if pub == nil {
		return domain.ErrNotPublisher
	}

	slot, err := u.slots.Get(ctx, quote.AdSlotID)
	if err != nil {
		return fmt.Errorf("get ad slot: %w", err)
	}
	if slot == nil || slot.PublisherID != pub.ID {
		return domain.Forbidden("Not authorized to update this quote")
	}

	if err = u.quotes.UpdateStatus(ctx, id, in.Status); err != nil {
		return fmt.Errorf("update quote status: %w", err)
	}
	return nil
}
