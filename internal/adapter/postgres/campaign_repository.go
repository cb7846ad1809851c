package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-market/internal/core/domain"
)

const campaignColumns = `c.id, c.sponsor_id, c.name, c.description, c.budget, c.spent, c.cpm_rate, c.cpc_rate,
	c.start_date, c.end_date, c.target_categories, c.target_regions, c.status, c.created_at, c.updated_at`

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

func scanCampaign(row pgx.Row, c *domain.Campaign) error {
	return row.Scan(
		&c.ID, &c.SponsorID, &c.Name, &c.Description, &c.Budget, &c.Spent, &c.CPMRate, &c.CPCRate,
		&c.StartDate, &c.EndDate, &c.Categories, &c.Regions, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
}

func (r *CampaignRepository) ListBySponsor(ctx context.Context, sponsorID uuid.UUID, status *domain.CampaignStatus) ([]domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns c WHERE c.sponsor_id = $1`
	args := []any{sponsorID}
	if status != nil {
		query += ` AND c.status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY c.created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var c domain.Campaign
		err := scanCampaign(row, &c)
		return c, err
	})
}

// Get returns a campaign by id, or nil when absent.
func (r *CampaignRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	var c domain.Campaign
	err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns c WHERE c.id = $1`, id), &c)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO campaigns
    (id, sponsor_id, name, description, budget, spent, cpm_rate, cpc_rate, start_date, end_date,
     target_categories, target_regions, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
		c.ID, c.SponsorID, c.Name, c.Description, c.Budget, c.Spent, c.CPMRate, c.CPCRate,
		c.StartDate, c.EndDate, c.Categories, c.Regions, c.Status, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return mapError("insert campaign", err)
	}
	return nil
}

func (r *CampaignRepository) Update(ctx context.Context, c *domain.Campaign) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns
SET name = $2, description = $3, budget = $4, cpm_rate = $5, cpc_rate = $6, start_date = $7, end_date = $8,
    target_categories = $9, target_regions = $10, status = $11, updated_at = $12
WHERE id = $1`,
		c.ID, c.Name, c.Description, c.Budget, c.CPMRate, c.CPCRate, c.StartDate, c.EndDate,
		c.Categories, c.Regions, c.Status, c.UpdatedAt)
	if err != nil {
		return mapError("update campaign", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("Campaign")
	}
	return nil
}

func (r *CampaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	return err
}

func (r *CampaignRepository) CountByStatus(ctx context.Context, status domain.CampaignStatus) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM campaigns WHERE status = $1`, status).Scan(&n)
	return n, err
}
