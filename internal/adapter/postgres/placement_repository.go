package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-market/internal/core/domain"
)

const placementColumns = `pl.id, pl.campaign_id, pl.creative_id, pl.ad_slot_id, pl.publisher_id, pl.agreed_price,
	pl.pricing_model, pl.start_date, pl.end_date, pl.status, pl.impressions, pl.clicks, pl.conversions,
	pl.created_at, pl.updated_at`

// PlacementRepository implements port.PlacementRepository using pgxpool.
type PlacementRepository struct {
	pool *pgxpool.Pool
}

func NewPlacementRepository(pool *pgxpool.Pool) *PlacementRepository {
	return &PlacementRepository{pool: pool}
}

func scanPlacement(row pgx.Row, p *domain.Placement, extra ...any) error {
	dest := []any{
		&p.ID, &p.CampaignID, &p.CreativeID, &p.AdSlotID, &p.PublisherID, &p.AgreedPrice,
		&p.PricingModel, &p.StartDate, &p.EndDate, &p.Status, &p.Impressions, &p.Clicks, &p.Conversions,
		&p.CreatedAt, &p.UpdatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

// List returns placements on the filter's sponsor campaigns or publisher
// slots. A filter naming neither matches nothing.
func (r *PlacementRepository) List(ctx context.Context, f domain.PlacementFilter) ([]domain.PlacementListItem, error) {
	var (
		scope []string
		where []string
		args  []any
	)
	if f.SponsorID != nil {
		args = append(args, *f.SponsorID)
		scope = append(scope, fmt.Sprintf("c.sponsor_id = $%d", len(args)))
	}
	if f.PublisherID != nil {
		args = append(args, *f.PublisherID)
		scope = append(scope, fmt.Sprintf("pl.publisher_id = $%d", len(args)))
	}
	if len(scope) == 0 {
		return []domain.PlacementListItem{}, nil
	}
	where = append(where, "("+strings.Join(scope, " OR ")+")")
	if f.CampaignID != nil {
		args = append(args, *f.CampaignID)
		where = append(where, fmt.Sprintf("pl.campaign_id = $%d", len(args)))
	}
	if f.ForPublisherID != nil {
		args = append(args, *f.ForPublisherID)
		where = append(where, fmt.Sprintf("pl.publisher_id = $%d", len(args)))
	}
	if f.Status != nil {
		args = append(args, *f.Status)
		where = append(where, fmt.Sprintf("pl.status = $%d", len(args)))
	}

	rows, err := r.pool.Query(ctx, `
        SELECT `+placementColumns+`,
            c.id, c.name,
            cr.id, cr.name, cr.type,
            s.id, s.name, s.type,
            p.id, p.name
        FROM placements pl
        JOIN campaigns c ON c.id = pl.campaign_id
        JOIN creatives cr ON cr.id = pl.creative_id
        JOIN ad_slots s ON s.id = pl.ad_slot_id
        JOIN publishers p ON p.id = pl.publisher_id
        WHERE `+strings.Join(where, " AND ")+`
        ORDER BY pl.created_at DESC`, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PlacementListItem, error) {
		var it domain.PlacementListItem
		err := scanPlacement(row, &it.Placement,
			&it.Campaign.ID, &it.Campaign.Name,
			&it.Creative.ID, &it.Creative.Name, &it.Creative.Type,
			&it.AdSlot.ID, &it.AdSlot.Name, &it.AdSlot.Type,
			&it.Publisher.ID, &it.Publisher.Name)
		return it, err
	})
}

func (r *PlacementRepository) ListByAdSlot(ctx context.Context, adSlotID uuid.UUID) ([]domain.SlotPlacement, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT `+placementColumns+`, c.id, c.name, c.status
        FROM placements pl
        JOIN campaigns c ON c.id = pl.campaign_id
        WHERE pl.ad_slot_id = $1
        ORDER BY pl.created_at DESC`, adSlotID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SlotPlacement, error) {
		var sp domain.SlotPlacement
		err := scanPlacement(row, &sp.Placement, &sp.Campaign.ID, &sp.Campaign.Name, &sp.Campaign.Status)
		return sp, err
	})
}

func (r *PlacementRepository) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]domain.CampaignPlacement, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT `+placementColumns+`, s.id, s.name, s.type, p.id, p.name, p.category
        FROM placements pl
        JOIN ad_slots s ON s.id = pl.ad_slot_id
        JOIN publishers p ON p.id = pl.publisher_id
        WHERE pl.campaign_id = $1
        ORDER BY pl.created_at DESC`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignPlacement, error) {
		var cp domain.CampaignPlacement
		err := scanPlacement(row, &cp.Placement,
			&cp.AdSlot.ID, &cp.AdSlot.Name, &cp.AdSlot.Type,
			&cp.Publisher.ID, &cp.Publisher.Name, &cp.Publisher.Category)
		return cp, err
	})
}

func (r *PlacementRepository) Create(ctx context.Context, p *domain.Placement) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO placements
    (id, campaign_id, creative_id, ad_slot_id, publisher_id, agreed_price, pricing_model,
     start_date, end_date, status, impressions, clicks, conversions, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
		p.ID, p.CampaignID, p.CreativeID, p.AdSlotID, p.PublisherID, p.AgreedPrice, p.PricingModel,
		p.StartDate, p.EndDate, p.Status, p.Impressions, p.Clicks, p.Conversions, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return mapError("insert placement", err)
	}
	return nil
}

func (r *PlacementRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM placements`).Scan(&n)
	return n, err
}

func (r *PlacementRepository) Metrics(ctx context.Context) (domain.PlacementMetrics, error) {
	var m domain.PlacementMetrics
	err := r.pool.QueryRow(ctx, `SELECT
        COALESCE(sum(impressions), 0), COALESCE(sum(clicks), 0), COALESCE(sum(conversions), 0)
    FROM placements`).Scan(&m.Impressions, &m.Clicks, &m.Conversions)
	return m, err
}
