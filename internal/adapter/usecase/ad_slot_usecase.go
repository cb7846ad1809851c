package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mesa-market/internal/core/domain"
	"mesa-market/internal/core/port"
)

// AdSlotUseCase manages publisher inventory and the booking state machine.
// Booking state lives only in the repository; the use case never reads the
// flag and writes it back.
type AdSlotUseCase struct {
	slots      port.AdSlotRepository
	placements port.PlacementRepository
	publishers port.PublisherRepository
	owner      *OwnershipResolver
	logger     *slog.Logger
}

func NewAdSlotUseCase(
	slots port.AdSlotRepository,
	placements port.PlacementRepository,
	publishers port.PublisherRepository,
	owner *OwnershipResolver,
	logger *slog.Logger,
) *AdSlotUseCase {
	return &AdSlotUseCase{
		slots:      slots,
		placements: placements,
		publishers: publishers,
		owner:      owner,
		logger:     logger,
	}
}

func (u *AdSlotUseCase) List(ctx context.Context, req port.ListAdSlotsReq) ([]domain.AdSlotListItem, domain.Pagination, error) {
	if req.Page == 0 {
		req.Page = port.DefaultAdSlotPage
	}
	if req.Limit == 0 {
		req.Limit = port.DefaultAdSlotLimit
	}
	if err := validateInput(req); err != nil {
		return nil, domain.Pagination{}, err
	}

	items, total, err := u.slots.List(ctx, domain.AdSlotFilter{
		Type:          req.Type,
		AvailableOnly: req.AvailableOnly,
		PublisherID:   req.PublisherID,
		Limit:         req.Limit,
		Offset:        domain.Offset(req.Page, req.Limit),
	})
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("list ad slots: %w", err)
	}
	return items, domain.NewPagination(req.Page, req.Limit, total), nil
}

// Get returns the slot to any authenticated viewer.
func (u *AdSlotUseCase) Get(ctx context.Context, _ domain.User, id uuid.UUID) (*domain.AdSlotDetail, error) {
	slot, err := u.slots.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get ad slot: %w", err)
	}
	if slot == nil {
		return nil, domain.NotFound("Ad slot")
	}

	detail := &domain.AdSlotDetail{AdSlot: *slot}
	pub, err := u.publishers.Get(ctx, slot.PublisherID)
	if err != nil {
		return nil, fmt.Errorf("get publisher: %w", err)
	}
	if pub != nil {
		detail.Publisher = *pub
	}
	detail.Placements, err = u.placements.ListByAdSlot(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list slot placements: %w", err)
	}
	return detail, nil
}

func (u *AdSlotUseCase) Create(ctx context.Context, caller domain.User, in port.CreateAdSlotInput) (*domain.AdSlot, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	owned, err := u.owner.ownsPublisher(ctx, caller.ID, in.PublisherID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, domain.Forbidden("")
	}

	now := time.Now().UTC()
	slot := &domain.AdSlot{
		ID:          uuid.New(),
		PublisherID: in.PublisherID,
		Name:        in.Name,
		Description: in.Description,
		Type:        in.Type,
		Position:    in.Position,
		Width:       in.Width,
		Height:      in.Height,
		BasePrice:   in.BasePrice,
		CPMFloor:    nullDecimal(in.CPMFloor),
		IsAvailable: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err = u.slots.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("create ad slot: %w", err)
	}
	return slot, nil
}

// Update applies a partial update. Only the fields the caller sent are
// written, so a concurrent booking is never overwritten by a rename.
func (u *AdSlotUseCase) Update(ctx context.Context, caller domain.User, id uuid.UUID, in port.UpdateAdSlotInput) (*domain.AdSlot, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if _, err := u.ownedSlot(ctx, caller, id); err != nil {
		return nil, err
	}

	slot, err := u.slots.Update(ctx, id, domain.AdSlotPatch{
		Name:        in.Name,
		Description: in.Description,
		Type:        in.Type,
		BasePrice:   in.BasePrice,
		CPMFloor:    in.CPMFloor,
		IsAvailable: in.IsAvailable,
	})
	if err != nil {
		return nil, fmt.Errorf("update ad slot: %w", err)
	}
	if slot == nil {
		return nil, domain.NotFound("Ad slot")
	}
	return slot, nil
}

func (u *AdSlotUseCase) Delete(ctx context.Context, caller domain.User, id uuid.UUID) error {
	if _, err := u.ownedSlot(ctx, caller, id); err != nil {
		return err
	}
	if err := u.slots.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete ad slot: %w", err)
	}
	return nil
}

// Book transitions AVAILABLE -> BOOKED. The slot is looked up before the
// sponsor so an unknown slot is always reported as not found. The
// transition itself is a single conditional write in the repository; of
// any number of concurrent bookings at most one succeeds and the rest get
// domain.ErrSlotUnavailable.
func (u *AdSlotUseCase) Book(ctx context.Context, caller domain.User, id uuid.UUID, in port.BookInput) (*domain.AdSlot, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	slot, err := u.slots.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get ad slot: %w", err)
	}
	if slot == nil {
		return nil, domain.NotFound("Ad slot")
	}
	owned, err := u.owner.ownsSponsor(ctx, caller.ID, in.SponsorID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, domain.Forbidden("")
	}

	booked, err := u.slots.MarkBooked(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrSlotUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("book ad slot: %w", err)
	}

	attrs := []any{
		slog.String("ad_slot_id", id.String()),
		slog.String("sponsor_id", in.SponsorID.String()),
		slog.String("user_id", caller.ID),
	}
	if in.Message != nil {
		attrs = append(attrs, slog.String("message", *in.Message))
	}
	u.logger.InfoContext(ctx, "ad slot booked", attrs...)
	return booked, nil
}

// Unbook transitions the slot back to AVAILABLE. Only the owning publisher
// may do this; unbooking an available slot is a no-op success.
func (u *AdSlotUseCase) Unbook(ctx context.Context, caller domain.User, id uuid.UUID) (*domain.AdSlot, error) {
	if _, err := u.ownedSlot(ctx, caller, id); err != nil {
		return nil, err
	}
	slot, err := u.slots.MarkAvailable(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("unbook ad slot: %w", err)
	}
	if slot == nil {
		return nil, domain.NotFound("Ad slot")
	}
	u.logger.InfoContext(ctx, "ad slot unbooked",
		slog.String("ad_slot_id", id.String()),
		slog.String("user_id", caller.ID),
	)
	return slot, nil
}

// ownedSlot loads a slot the caller's publisher owns.
func (u *AdSlotUseCase) ownedSlot(ctx context.Context, caller domain.User, id uuid.UUID) (*domain.AdSlot, error) {
	slot, err := u.slots.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get ad slot: %w", err)
	}
	owned := false
	if slot != nil {
		if owned, err = u.owner.ownsPublisher(ctx, caller.ID, slot.PublisherID); err != nil {
			return nil, err
		}
	}
	if err = authorize(slot != nil, owned, "Ad slot"); err != nil {
		return nil, err
	}
	return slot, nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}
