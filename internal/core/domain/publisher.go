package domain

import (
	"time"

	"github.com/google/uuid"
)

// Publisher is the seller-side tenant that owns ad slots.
type Publisher struct {
	ID           uuid.UUID `json:"id"`
	UserID       string    `json:"userId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Website      *string   `json:"website"`
	Category     *string   `json:"category"`
	MonthlyViews int64     `json:"monthlyViews"`
	IsVerified   bool      `json:"isVerified"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type PublisherSummary struct {
	Publisher
	Count struct {
		AdSlots    int64 `json:"adSlots"`
		Placements int64 `json:"placements"`
	} `json:"_count"`
}

type PublisherDetail struct {
	Publisher
	AdSlots []AdSlot `json:"adSlots"`
}
