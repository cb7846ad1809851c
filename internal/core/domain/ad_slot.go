package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AdSlotType string

const (
	AdSlotDisplay    AdSlotType = "DISPLAY"
	AdSlotVideo      AdSlotType = "VIDEO"
	AdSlotNative     AdSlotType = "NATIVE"
	AdSlotNewsletter AdSlotType = "NEWSLETTER"
	AdSlotPodcast    AdSlotType = "PODCAST"
)

// AvailabilityState is the booking state of an ad slot. It is derived from
// AdSlot.IsAvailable, which is the only stored flag.
type AvailabilityState string

const (
	StateAvailable AvailabilityState = "AVAILABLE"
	StateBooked    AvailabilityState = "BOOKED"
)

// AdSlot is a unit of sellable inventory owned by a publisher.
type AdSlot struct {
	ID          uuid.UUID           `json:"id"`
	PublisherID uuid.UUID           `json:"publisherId"`
	Name        string              `json:"name"`
	Description *string             `json:"description"`
	Type        AdSlotType          `json:"type"`
	Position    *string             `json:"position"`
	Width       *int32              `json:"width"`
	Height      *int32              `json:"height"`
	BasePrice   decimal.Decimal     `json:"basePrice"`
	CPMFloor    decimal.NullDecimal `json:"cpmFloor"`
	IsAvailable bool                `json:"isAvailable"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

func (s AdSlot) State() AvailabilityState {
	if s.IsAvailable {
		return StateAvailable
	}
	return StateBooked
}

// AdSlotPublisher is the publisher excerpt shown on marketplace listings.
type AdSlotPublisher struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Category     *string   `json:"category"`
	MonthlyViews int64     `json:"monthlyViews"`
}

type AdSlotListItem struct {
	AdSlot
	Publisher AdSlotPublisher `json:"publisher"`
	Count     struct {
		Placements int64 `json:"placements"`
	} `json:"_count"`
}

// AdSlotDetail is a slot with its publisher and placements.
type AdSlotDetail struct {
	AdSlot
	Publisher  Publisher       `json:"publisher"`
	Placements []SlotPlacement `json:"placements"`
}

// AdSlotPatch is a partial update of an ad slot. Only non-nil fields are
// written; IsAvailable is nil unless the owner sets the flag explicitly.
type AdSlotPatch struct {
	Name        *string
	Description *string
	Type        *AdSlotType
	BasePrice   *decimal.Decimal
	CPMFloor    *decimal.Decimal
	IsAvailable *bool
}

// AdSlotFilter narrows a marketplace listing.
type AdSlotFilter struct {
	Type          *AdSlotType
	AvailableOnly bool
	PublisherID   *uuid.UUID
	Limit         int
	Offset        int
}
