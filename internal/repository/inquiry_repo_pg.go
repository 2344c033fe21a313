package repository

import (
	"context"

	"github.com/finestevents/backend/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *domain.Inquiry) error
	List(ctx context.Context) ([]domain.Inquiry, error)
	MarkRead(ctx context.Context, id string) error
}

type PGInquiryRepository struct {
	db *pgxpool.Pool
}

func NewInquiryRepository(db *pgxpool.Pool) InquiryRepository {
	return &PGInquiryRepository{db: db}
}

func (r *PGInquiryRepository) Create(ctx context.Context, inquiry *domain.Inquiry) error {
	return r.db.QueryRow(ctx, `INSERT INTO inquiries (id, name, email, event_type, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING is_read, created_at`,
		inquiry.ID, inquiry.Name, inquiry.Email, inquiry.EventType, inquiry.Message).
		Scan(&inquiry.IsRead, &inquiry.CreatedAt)
}

func (r *PGInquiryRepository) List(ctx context.Context) ([]domain.Inquiry, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, email, event_type, message, is_read, created_at FROM inquiries ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inquiries := make([]domain.Inquiry, 0)
	for rows.Next() {
		var i domain.Inquiry
		if err := rows.Scan(&i.ID, &i.Name, &i.Email, &i.EventType, &i.Message, &i.IsRead, &i.CreatedAt); err != nil {
			return nil, err
		}
		inquiries = append(inquiries, i)
	}
	return inquiries, rows.Err()
}

// MarkRead is idempotent: re-marking a read inquiry succeeds.
func (r *PGInquiryRepository) MarkRead(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `UPDATE inquiries SET is_read=true WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ InquiryRepository = (*PGInquiryRepository)(nil)
