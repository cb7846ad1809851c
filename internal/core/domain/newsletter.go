package domain

import (
	"time"

	"github.com/google/uuid"
)

type NewsletterSubscriber struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
