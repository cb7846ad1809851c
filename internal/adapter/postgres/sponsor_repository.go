package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-market/internal/core/domain"
)

const sponsorColumns = `s.id, s.user_id, s.name, s.email, s.website, s.logo, s.description, s.industry,
	s.subscription_tier, s.is_verified, s.is_active, s.created_at, s.updated_at`

// SponsorRepository implements port.SponsorRepository using pgxpool.
type SponsorRepository struct {
	pool *pgxpool.Pool
}

func NewSponsorRepository(pool *pgxpool.Pool) *SponsorRepository {
	return &SponsorRepository{pool: pool}
}

func scanSponsor(row pgx.Row, s *domain.Sponsor, extra ...any) error {
	dest := []any{
		&s.ID, &s.UserID, &s.Name, &s.Email, &s.Website, &s.Logo, &s.Description, &s.Industry,
		&s.SubscriptionTier, &s.IsVerified, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

func (r *SponsorRepository) getBy(ctx context.Context, where string, arg any) (*domain.Sponsor, error) {
	var s domain.Sponsor
	err := scanSponsor(r.pool.QueryRow(ctx, `SELECT `+sponsorColumns+` FROM sponsors s WHERE `+where, arg), &s)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SponsorRepository) FindByUserID(ctx context.Context, userID string) (*domain.Sponsor, error) {
	return r.getBy(ctx, "s.user_id = $1", userID)
}

func (r *SponsorRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Sponsor, error) {
	return r.getBy(ctx, "s.id = $1", id)
}

func (r *SponsorRepository) ListByUserID(ctx context.Context, userID string) ([]domain.SponsorSummary, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT `+sponsorColumns+`,
            (SELECT count(*) FROM campaigns c WHERE c.sponsor_id = s.id)
        FROM sponsors s
        WHERE s.user_id = $1
        ORDER BY s.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SponsorSummary, error) {
		var s domain.SponsorSummary
		err := scanSponsor(row, &s.Sponsor, &s.Count.Campaigns)
		return s, err
	})
}

// Create inserts s. The user_id unique constraint turns a second sponsor
// for the same user into domain.ErrConflict.
func (r *SponsorRepository) Create(ctx context.Context, s *domain.Sponsor) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO sponsors
    (id, user_id, name, email, website, logo, description, industry,
     subscription_tier, is_verified, is_active, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		s.ID, s.UserID, s.Name, s.Email, s.Website, s.Logo, s.Description, s.Industry,
		s.SubscriptionTier, s.IsVerified, s.IsActive, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return mapError("insert sponsor", err)
	}
	return nil
}

func (r *SponsorRepository) Update(ctx context.Context, s *domain.Sponsor) error {
	tag, err := r.pool.Exec(ctx, `UPDATE sponsors
SET name = $2, email = $3, website = $4, logo = $5, description = $6, industry = $7, updated_at = $8
WHERE id = $1`,
		s.ID, s.Name, s.Email, s.Website, s.Logo, s.Description, s.Industry, s.UpdatedAt)
	if err != nil {
		return mapError("update sponsor", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("Sponsor")
	}
	return nil
}

func (r *SponsorRepository) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM sponsors WHERE is_active`).Scan(&n)
	return n, err
}
