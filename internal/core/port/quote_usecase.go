package port

import (
	"context"

	"github.com/google/uuid"

	"mesa-market/internal/core/domain"
)

// QuoteUseCase covers the quote request lifecycle.
type QuoteUseCase interface {
	// RequestQuote files a PENDING quote for an existing slot. Any
	// authenticated user may request a quote.
	RequestQuote(ctx context.Context, caller domain.User, in RequestQuoteInput) (*domain.QuoteRequest, error)
	// ListMine returns the caller's own quotes.
	ListMine(ctx context.Context, caller domain.User, adSlotID *uuid.UUID) ([]domain.QuoteRequest, error)
	// ListForPublisher returns quotes against the caller's publisher slots.
	ListForPublisher(ctx context.Context, caller domain.User) ([]domain.PublisherQuoteRequest, error)
	// UpdateStatus sets a quote's status. Only the publisher owning the
	// quoted slot may do so.
	UpdateStatus(ctx context.Context, caller domain.User, id uuid.UUID, in UpdateQuoteStatusInput) error
}

type RequestQuoteInput struct {
	CompanyName string    `json:"companyName" validate:"required"`
	Email       string    `json:"email" validate:"required,email"`
	Phone       *string   `json:"phone"`
	Message     *string   `json:"message"`
	AdSlotID    uuid.UUID `json:"adSlotId" validate:"required"`
}

type UpdateQuoteStatusInput struct {
	Status domain.QuoteStatus `json:"status" validate:"required,oneof=PENDING RESPONDED ACCEPTED DECLINED"`
}
