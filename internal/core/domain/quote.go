package domain

import (
	"time"

	"github.com/google/uuid"
)

// QuoteStatus is a flat set; any status may be set to any other.
type QuoteStatus string

const (
	QuotePending   QuoteStatus = "PENDING"
	QuoteResponded QuoteStatus = "RESPONDED"
	QuoteAccepted  QuoteStatus = "ACCEPTED"
	QuoteDeclined  QuoteStatus = "DECLINED"
)

// QuoteRequest is a pricing inquiry against an ad slot.
type QuoteRequest struct {
	ID          uuid.UUID   `json:"id"`
	AdSlotID    uuid.UUID   `json:"adSlotId"`
	UserID      *string     `json:"userId"`
	CompanyName string      `json:"companyName"`
	Email       string      `json:"email"`
	Phone       *string     `json:"phone"`
	Message     *string     `json:"message"`
	Status      QuoteStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// PublisherQuoteRequest is a quote as seen in a publisher's inbox.
type PublisherQuoteRequest struct {
	QuoteRequest
	AdSlot Ref `json:"adSlot"`
}
