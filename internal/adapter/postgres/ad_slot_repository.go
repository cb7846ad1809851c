package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-market/internal/core/domain"
)

const adSlotColumns = `s.id, s.publisher_id, s.name, s.description, s.type, s.position, s.width, s.height,
	s.base_price, s.cpm_floor, s.is_available, s.created_at, s.updated_at`

// AdSlotRepository implements port.AdSlotRepository using pgxpool. The
// availability flag is only written by single-statement updates that never
// carry a value read earlier in the request.
type AdSlotRepository struct {
	pool *pgxpool.Pool
}

func NewAdSlotRepository(pool *pgxpool.Pool) *AdSlotRepository {
	return &AdSlotRepository{pool: pool}
}

func scanAdSlot(row pgx.Row, s *domain.AdSlot, extra ...any) error {
	dest := []any{
		&s.ID, &s.PublisherID, &s.Name, &s.Description, &s.Type, &s.Position, &s.Width, &s.Height,
		&s.BasePrice, &s.CPMFloor, &s.IsAvailable, &s.CreatedAt, &s.UpdatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

// List returns one page of the marketplace, most expensive first.
func (r *AdSlotRepository) List(ctx context.Context, f domain.AdSlotFilter) ([]domain.AdSlotListItem, int64, error) {
	var (
		where []string
		args  []any
	)
	if f.Type != nil {
		args = append(args, *f.Type)
		where = append(where, fmt.Sprintf("s.type = $%d", len(args)))
	}
	if f.AvailableOnly {
		where = append(where, "s.is_available")
	}
	if f.PublisherID != nil {
		args = append(args, *f.PublisherID)
		where = append(where, fmt.Sprintf("s.publisher_id = $%d", len(args)))
	}
	whereSQL := ""
	if len(where) > 0 {
		whereSQL = "WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM ad_slots s `+whereSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
        SELECT `+adSlotColumns+`,
            p.id, p.name, p.category, p.monthly_views,
            (SELECT count(*) FROM placements pl WHERE pl.ad_slot_id = s.id)
        FROM ad_slots s
        JOIN publishers p ON p.id = s.publisher_id
        %s
        ORDER BY s.base_price DESC, s.created_at DESC, s.id
        LIMIT $%d OFFSET $%d`, whereSQL, len(args)+1, len(args)+2)
	rows, err := r.pool.Query(ctx, query, append(args, f.Limit, f.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AdSlotListItem, error) {
		var it domain.AdSlotListItem
		err := scanAdSlot(row, &it.AdSlot,
			&it.Publisher.ID, &it.Publisher.Name, &it.Publisher.Category, &it.Publisher.MonthlyViews,
			&it.Count.Placements)
		return it, err
	})
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *AdSlotRepository) ListByPublisher(ctx context.Context, publisherID uuid.UUID) ([]domain.AdSlot, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+adSlotColumns+` FROM ad_slots s
        WHERE s.publisher_id = $1
        ORDER BY s.created_at DESC`, publisherID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AdSlot, error) {
		var s domain.AdSlot
		err := scanAdSlot(row, &s)
		return s, err
	})
}

// Get returns a slot by id, or nil when absent.
func (r *AdSlotRepository) Get(ctx context.Context, id uuid.UUID) (*domain.AdSlot, error) {
	var s domain.AdSlot
	err := scanAdSlot(r.pool.QueryRow(ctx, `SELECT `+adSlotColumns+` FROM ad_slots s WHERE s.id = $1`, id), &s)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *AdSlotRepository) Create(ctx context.Context, s *domain.AdSlot) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO ad_slots
    (id, publisher_id, name, description, type, position, width, height,
     base_price, cpm_floor, is_available, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		s.ID, s.PublisherID, s.Name, s.Description, s.Type, s.Position, s.Width, s.Height,
		s.BasePrice, s.CPMFloor, s.IsAvailable, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return mapError("insert ad slot", err)
	}
	return nil
}

// Update writes only the columns present in patch, so an update that
// does not name is_available never touches the booking state.
func (r *AdSlotRepository) Update(ctx context.Context, id uuid.UUID, patch domain.AdSlotPatch) (*domain.AdSlot, error) {
	set, args := adSlotPatchSet(patch)
	args = append(args, id)
	query := `UPDATE ad_slots AS s
SET ` + strings.Join(set, ", ") + fmt.Sprintf(`
WHERE s.id = $%d
RETURNING `, len(args)) + adSlotColumns

	var s domain.AdSlot
	err := scanAdSlot(r.pool.QueryRow(ctx, query, args...), &s)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError("update ad slot", err)
	}
	return &s, nil
}

// adSlotPatchSet builds the SET assignments for the non-nil fields of
// patch. updated_at is always refreshed.
func adSlotPatchSet(patch domain.AdSlotPatch) ([]string, []any) {
	var (
		set  []string
		args []any
	)
	add := func(column string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Type != nil {
		add("type", *patch.Type)
	}
	if patch.BasePrice != nil {
		add("base_price", *patch.BasePrice)
	}
	if patch.CPMFloor != nil {
		add("cpm_floor", *patch.CPMFloor)
	}
	if patch.IsAvailable != nil {
		add("is_available", *patch.IsAvailable)
	}
	return append(set, "updated_at = now()"), args
}

func (r *AdSlotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM ad_slots WHERE id = $1`, id)
	return err
}

// MarkBooked is the AVAILABLE -> BOOKED transition. The predicate on
// is_available makes the statement a compare-and-set: when several
// transactions race, Postgres serialises them on the row lock and every
// loser re-evaluates the predicate against the winner's write and matches
// nothing.
func (r *AdSlotRepository) MarkBooked(ctx context.Context, id uuid.UUID) (*domain.AdSlot, error) {
	var s domain.AdSlot
	err := scanAdSlot(r.pool.QueryRow(ctx, `UPDATE ad_slots AS s
SET is_available = false, updated_at = now()
WHERE s.id = $1 AND s.is_available
RETURNING `+adSlotColumns, id), &s)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSlotUnavailable
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// MarkAvailable sets the slot available whatever its current state.
func (r *AdSlotRepository) MarkAvailable(ctx context.Context, id uuid.UUID) (*domain.AdSlot, error) {
	var s domain.AdSlot
	err := scanAdSlot(r.pool.QueryRow(ctx, `UPDATE ad_slots AS s
SET is_available = true, updated_at = now()
WHERE s.id = $1
RETURNING `+adSlotColumns, id), &s)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
