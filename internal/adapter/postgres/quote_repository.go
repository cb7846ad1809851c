package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-market/internal/core/domain"
)

const quoteColumns = `q.id, q.ad_slot_id, q.user_id, q.company_name, q.email, q.phone, q.message, q.status,
	q.created_at, q.updated_at`

// QuoteRepository implements port.QuoteRepository using pgxpool.
type QuoteRepository struct {
	pool *pgxpool.Pool
}

func NewQuoteRepository(pool *pgxpool.Pool) *QuoteRepository {
	return &QuoteRepository{pool: pool}
}

func scanQuote(row pgx.Row, q *domain.QuoteRequest, extra ...any) error {
	dest := []any{
		&q.ID, &q.AdSlotID, &q.UserID, &q.CompanyName, &q.Email, &q.Phone, &q.Message, &q.Status,
		&q.CreatedAt, &q.UpdatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

func (r *QuoteRepository) Create(ctx context.Context, q *domain.QuoteRequest) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO quote_requests
    (id, ad_slot_id, user_id, company_name, email, phone, message, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		q.ID, q.AdSlotID, q.UserID, q.CompanyName, q.Email, q.Phone, q.Message, q.Status, q.CreatedAt, q.UpdatedAt)
	if err != nil {
		return mapError("insert quote", err)
	}
	return nil
}

// Get returns a quote by id, or nil when absent.
func (r *QuoteRepository) Get(ctx context.Context, id uuid.UUID) (*domain.QuoteRequest, error) {
	var q domain.QuoteRequest
	err := scanQuote(r.pool.QueryRow(ctx, `SELECT `+quoteColumns+` FROM quote_requests q WHERE q.id = $1`, id), &q)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuoteRepository) ListByUser(ctx context.Context, userID string, adSlotID *uuid.UUID) ([]domain.QuoteRequest, error) {
	query := `SELECT ` + quoteColumns + ` FROM quote_requests q WHERE q.user_id = $1`
	args := []any{userID}
	if adSlotID != nil {
		query += ` AND q.ad_slot_id = $2`
		args = append(args, *adSlotID)
	}
	query += ` ORDER BY q.created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.QuoteRequest, error) {
		var q domain.QuoteRequest
		err := scanQuote(row, &q)
		return q, err
	})
}

// ListByPublisher joins through ad_slots; quotes carry no publisher id of
// their own.
func (r *QuoteRepository) ListByPublisher(ctx context.Context, publisherID uuid.UUID) ([]domain.PublisherQuoteRequest, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT `+quoteColumns+`, s.id, s.name
        FROM quote_requests q
        JOIN ad_slots s ON s.id = q.ad_slot_id
        WHERE s.publisher_id = $1
        ORDER BY q.created_at DESC`, publisherID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PublisherQuoteRequest, error) {
		var q domain.PublisherQuoteRequest
		err := scanQuote(row, &q.QuoteRequest, &q.AdSlot.ID, &q.AdSlot.Name)
		return q, err
	})
}

func (r *QuoteRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.QuoteStatus) error {
	tag, err := r.pool.Exec(ctx, `UPDATE quote_requests SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return mapError("update quote status", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("Quote request")
	}
	return nil
}
