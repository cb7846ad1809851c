package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PricingModel string

const (
	PricingCPM      PricingModel = "CPM"
	PricingCPC      PricingModel = "CPC"
	PricingCPA      PricingModel = "CPA"
	PricingFlatRate PricingModel = "FLAT_RATE"
)

type PlacementStatus string

const (
	PlacementPending   PlacementStatus = "PENDING"
	PlacementApproved  PlacementStatus = "APPROVED"
	PlacementActive    PlacementStatus = "ACTIVE"
	PlacementPaused    PlacementStatus = "PAUSED"
	PlacementCompleted PlacementStatus = "COMPLETED"
	PlacementRejected  PlacementStatus = "REJECTED"
)

// Placement links a campaign and creative to a publisher's ad slot.
type Placement struct {
	ID           uuid.UUID       `json:"id"`
	CampaignID   uuid.UUID       `json:"campaignId"`
	CreativeID   uuid.UUID       `json:"creativeId"`
	AdSlotID     uuid.UUID       `json:"adSlotId"`
	PublisherID  uuid.UUID       `json:"publisherId"`
	AgreedPrice  decimal.Decimal `json:"agreedPrice"`
	PricingModel PricingModel    `json:"pricingModel"`
	StartDate    time.Time       `json:"startDate"`
	EndDate      time.Time       `json:"endDate"`
	Status       PlacementStatus `json:"status"`
	Impressions  int64           `json:"impressions"`
	Clicks       int64           `json:"clicks"`
	Conversions  int64           `json:"conversions"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// Ref is an id/name excerpt of a related record.
type Ref struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type PlacementListItem struct {
	Placement
	Campaign Ref `json:"campaign"`
	Creative struct {
		Ref
		Type CreativeType `json:"type"`
	} `json:"creative"`
	AdSlot struct {
		Ref
		Type AdSlotType `json:"type"`
	} `json:"adSlot"`
	Publisher Ref `json:"publisher"`
}

// SlotPlacement is a placement as listed on an ad slot.
type SlotPlacement struct {
	Placement
	Campaign struct {
		Ref
		Status CampaignStatus `json:"status"`
	} `json:"campaign"`
}

// CampaignPlacement is a placement as listed on a campaign.
type CampaignPlacement struct {
	Placement
	AdSlot struct {
		Ref
		Type AdSlotType `json:"type"`
	} `json:"adSlot"`
	Publisher struct {
		Ref
		Category *string `json:"category"`
	} `json:"publisher"`
}

// PlacementFilter scopes a placement listing. SponsorID and PublisherID are
// the caller's own records; a placement matches when it belongs to either.
// CampaignID, ForPublisherID and Status are optional narrowing filters.
type PlacementFilter struct {
	SponsorID      *uuid.UUID
	PublisherID    *uuid.UUID
	CampaignID     *uuid.UUID
	ForPublisherID *uuid.UUID
	Status         *PlacementStatus
}

// PlacementMetrics sums delivery counters across placements.
type PlacementMetrics struct {
	Impressions int64
	Clicks      int64
	Conversions int64
}
