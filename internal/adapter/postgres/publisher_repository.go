package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-market/internal/core/domain"
)

const publisherColumns = `p.id, p.user_id, p.name, p.email, p.website, p.category, p.monthly_views,
	p.is_verified, p.is_active, p.created_at, p.updated_at`

// PublisherRepository implements port.PublisherRepository using pgxpool.
type PublisherRepository struct {
	pool *pgxpool.Pool
}

func NewPublisherRepository(pool *pgxpool.Pool) *PublisherRepository {
	return &PublisherRepository{pool: pool}
}

func scanPublisher(row pgx.Row, p *domain.Publisher, extra ...any) error {
	dest := []any{
		&p.ID, &p.UserID, &p.Name, &p.Email, &p.Website, &p.Category, &p.MonthlyViews,
		&p.IsVerified, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

func (r *PublisherRepository) getBy(ctx context.Context, where string, arg any) (*domain.Publisher, error) {
	var p domain.Publisher
	err := scanPublisher(r.pool.QueryRow(ctx, `SELECT `+publisherColumns+` FROM publishers p WHERE `+where, arg), &p)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PublisherRepository) FindByUserID(ctx context.Context, userID string) (*domain.Publisher, error) {
	return r.getBy(ctx, "p.user_id = $1", userID)
}

func (r *PublisherRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Publisher, error) {
	return r.getBy(ctx, "p.id = $1", id)
}

func (r *PublisherRepository) ListByUserID(ctx context.Context, userID string) ([]domain.PublisherSummary, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT `+publisherColumns+`,
            (SELECT count(*) FROM ad_slots s WHERE s.publisher_id = p.id),
            (SELECT count(*) FROM placements pl WHERE pl.publisher_id = p.id)
        FROM publishers p
        WHERE p.user_id = $1
        ORDER BY p.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PublisherSummary, error) {
		var p domain.PublisherSummary
		err := scanPublisher(row, &p.Publisher, &p.Count.AdSlots, &p.Count.Placements)
		return p, err
	})
}

func (r *PublisherRepository) Create(ctx context.Context, p *domain.Publisher) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO publishers
    (id, user_id, name, email, website, category, monthly_views, is_verified, is_active, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		p.ID, p.UserID, p.Name, p.Email, p.Website, p.Category, p.MonthlyViews,
		p.IsVerified, p.IsActive, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return mapError("insert publisher", err)
	}
	return nil
}

func (r *PublisherRepository) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM publishers WHERE is_active`).Scan(&n)
	return n, err
}
