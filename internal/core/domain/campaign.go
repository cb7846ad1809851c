package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CampaignStatus string

const (
	CampaignDraft         CampaignStatus = "DRAFT"
	CampaignPendingReview CampaignStatus = "PENDING_REVIEW"
	CampaignApproved      CampaignStatus = "APPROVED"
	CampaignActive        CampaignStatus = "ACTIVE"
	CampaignPaused        CampaignStatus = "PAUSED"
	CampaignCompleted     CampaignStatus = "COMPLETED"
	CampaignCancelled     CampaignStatus = "CANCELLED"
)

// Campaign represents a sponsor's advertising campaign.
// Money fields are fixed-point decimals.
type Campaign struct {
	ID          uuid.UUID           `json:"id"`
	SponsorID   uuid.UUID           `json:"sponsorId"`
	Name        string              `json:"name"`
	Description *string             `json:"description"`
	Budget      decimal.Decimal     `json:"budget"`
	Spent       decimal.Decimal     `json:"spent"`
	CPMRate     decimal.NullDecimal `json:"cpmRate"` // cost per thousand impressions
	CPCRate     decimal.NullDecimal `json:"cpcRate"` // cost per click
	StartDate   time.Time           `json:"startDate"`
	EndDate     time.Time           `json:"endDate"`
	Targeting
	Status    CampaignStatus `json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// CampaignDetail is a campaign with its placements.
type CampaignDetail struct {
	Campaign
	Placements []CampaignPlacement `json:"placements"`
}
