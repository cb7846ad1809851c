package port

import (
	"context"

	"github.com/google/uuid"

	"mesa-market/internal/core/domain"
)

// QuoteRepository persists quote requests.
type QuoteRepository interface {
	Create(ctx context.Context, q *domain.QuoteRequest) error
	// Get returns a quote by id, or nil when absent.
	Get(ctx context.Context, id uuid.UUID) (*domain.QuoteRequest, error)
	// ListByUser returns quotes submitted by userID, newest first,
	// optionally narrowed to one slot.
	ListByUser(ctx context.Context, userID string, adSlotID *uuid.UUID) ([]domain.QuoteRequest, error)
	// ListByPublisher returns quotes for every slot of the publisher.
	ListByPublisher(ctx context.Context, publisherID uuid.UUID) ([]domain.PublisherQuoteRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.QuoteStatus) error
}
