package port

import (
	"context"

	"mesa-market/internal/core/domain"
)

type NewsletterRepository interface {
	// Subscribe upserts email; subscribing twice is not an error.
	Subscribe(ctx context.Context, email string) (*domain.NewsletterSubscriber, error)
}
