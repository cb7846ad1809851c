package domain

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionTier string

const (
	TierFree         SubscriptionTier = "FREE"
	TierStarter      SubscriptionTier = "STARTER"
	TierProfessional SubscriptionTier = "PROFESSIONAL"
	TierEnterprise   SubscriptionTier = "ENTERPRISE"
)

// Sponsor is the buyer-side tenant. Each sponsor belongs to one user.
type Sponsor struct {
	ID               uuid.UUID        `json:"id"`
	UserID           string           `json:"userId"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Website          *string          `json:"website"`
	Logo             *string          `json:"logo"`
	Description      *string          `json:"description"`
	Industry         *string          `json:"industry"`
	SubscriptionTier SubscriptionTier `json:"subscriptionTier"`
	IsVerified       bool             `json:"isVerified"`
	IsActive         bool             `json:"isActive"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// SponsorSummary is a sponsor row with related record counts.
type SponsorSummary struct {
	Sponsor
	Count struct {
		Campaigns int64 `json:"campaigns"`
	} `json:"_count"`
}

// SponsorDetail is a sponsor with its campaigns.
type SponsorDetail struct {
	Sponsor
	Campaigns []Campaign `json:"campaigns"`
}
