package repository

import (
	"context"
	"errors"

	"github.com/finestevents/backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository interface {
	List(ctx context.Context) ([]domain.Event, error)
	ListFeatured(ctx context.Context) ([]domain.Event, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	Create(ctx context.Context, event *domain.Event) error
	Update(ctx context.Context, event *domain.Event) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
}

type PGEventRepository struct {
	db *pgxpool.Pool
}

func NewEventRepository(db *pgxpool.Pool) EventRepository {
	return &PGEventRepository{db: db}
}

const eventColumns = `id, title, description, category, image_url, location, event_date, guest_count, is_featured, created_at, updated_at`

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var e domain.Event
	if err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Category, &e.ImageURL, &e.Location, &e.EventDate, &e.GuestCount, &e.IsFeatured, &e.CreatedAt, &e.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *PGEventRepository) List(ctx context.Context) ([]domain.Event, error) {
	rows, err := r.db.Query(ctx, `SELECT `+eventColumns+` FROM events ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEvents(rows)
}

func (r *PGEventRepository) ListFeatured(ctx context.Context) ([]domain.Event, error) {
	rows, err := r.db.Query(ctx, `SELECT `+eventColumns+` FROM events WHERE is_featured ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEvents(rows)
}

func collectEvents(rows pgx.Rows) ([]domain.Event, error) {
	events := make([]domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (r *PGEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	row := r.db.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id=$1`, id)
	return scanEvent(row)
}

func (r *PGEventRepository) Create(ctx context.Context, event *domain.Event) error {
	return r.db.QueryRow(ctx, `INSERT INTO events (id, title, description, category, image_url, location, event_date, guest_count, is_featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`,
		event.ID, event.Title, event.Description, event.Category, event.ImageURL, event.Location, event.EventDate, event.GuestCount, event.IsFeatured).
		Scan(&event.CreatedAt, &event.UpdatedAt)
}

func (r *PGEventRepository) Update(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	row := r.db.QueryRow(ctx, `UPDATE events SET title=$2, description=$3, category=$4, image_url=$5, location=$6, event_date=$7, guest_count=$8, is_featured=$9, updated_at=now()
		WHERE id=$1 RETURNING `+eventColumns,
		event.ID, event.Title, event.Description, event.Category, event.ImageURL, event.Location, event.EventDate, event.GuestCount, event.IsFeatured)
	return scanEvent(row)
}

func (r *PGEventRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM events WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ EventRepository = (*PGEventRepository)(nil)
