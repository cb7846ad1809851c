package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-market/internal/core/domain"
)

// NewsletterRepository implements port.NewsletterRepository using pgxpool.
type NewsletterRepository struct {
	pool *pgxpool.Pool
}

func NewNewsletterRepository(pool *pgxpool.Pool) *NewsletterRepository {
	return &NewsletterRepository{pool: pool}
}

// Subscribe upserts on email so a repeat subscription returns the existing
// row.
func (r *NewsletterRepository) Subscribe(ctx context.Context, email string) (*domain.NewsletterSubscriber, error) {
	var s domain.NewsletterSubscriber
	err := r.pool.QueryRow(ctx, `INSERT INTO newsletter_subscribers (id, email)
VALUES ($1, $2)
ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
RETURNING id, email, created_at`, uuid.New(), email).Scan(&s.ID, &s.Email, &s.CreatedAt)
	if err != nil {
		return nil, mapError("subscribe", err)
	}
	return &s, nil
}
