package port

import (
	"context"

	"github.com/google/uuid"

	"mesa-market/internal/core/domain"
)

// AdSlotRepository persists ad slots. It is the only place the
// availability flag is written, and implementations must make MarkBooked a
// single conditional write so concurrent bookings have at most one winner.
type AdSlotRepository interface {
	// List returns one page of slots matching filter and the total number
	// of matching slots.
	List(ctx context.Context, filter domain.AdSlotFilter) ([]domain.AdSlotListItem, int64, error)
	// ListByPublisher returns every slot of a publisher.
	ListByPublisher(ctx context.Context, publisherID uuid.UUID) ([]domain.AdSlot, error)
	// Get returns a slot by id, or nil when absent.
	Get(ctx context.Context, id uuid.UUID) (*domain.AdSlot, error)
	Create(ctx context.Context, slot *domain.AdSlot) error
	// Update writes the non-nil fields of patch and returns the stored
	// slot, or nil when it does not exist.
	Update(ctx context.Context, id uuid.UUID, patch domain.AdSlotPatch) (*domain.AdSlot, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// MarkBooked flips an available slot to booked and returns it. When the
	// slot is not available (or no longer exists) it returns
	// domain.ErrSlotUnavailable without changing anything.
	MarkBooked(ctx context.Context, id uuid.UUID) (*domain.AdSlot, error)
	// MarkAvailable sets the slot available regardless of its state. It
	// returns nil when the slot does not exist.
	MarkAvailable(ctx context.Context, id uuid.UUID) (*domain.AdSlot, error)
}
