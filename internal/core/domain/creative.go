package domain

import (
	"time"

	"github.com/google/uuid"
)

type CreativeType string

const (
	CreativeBanner        CreativeType = "BANNER"
	CreativeVideo         CreativeType = "VIDEO"
	CreativeNative        CreativeType = "NATIVE"
	CreativeSponsoredPost CreativeType = "SPONSORED_POST"
	CreativePodcastRead   CreativeType = "PODCAST_READ"
)

// Creative is an advertisement asset belonging to a campaign.
type Creative struct {
	ID         uuid.UUID    `json:"id"`
	CampaignID uuid.UUID    `json:"campaignId"`
	Name       string       `json:"name"`
	Type       CreativeType `json:"type"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}
