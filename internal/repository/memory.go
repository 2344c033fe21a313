// In-memory repositories back the service when no database DSN is configured
// and serve as fixtures in tests. They hold the same contract as the pg
// implementations, including newest-first ordering.
package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/finestevents/backend/internal/domain"
	"github.com/google/uuid"
)

type MemoryEventRepository struct {
	mu     sync.RWMutex
	events map[string]domain.Event
}

func NewMemoryEventRepository(seed []domain.Event) *MemoryEventRepository {
	r := &MemoryEventRepository{events: make(map[string]domain.Event)}
	for _, e := range seed {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		r.events[e.ID] = e
	}
	return r
}

func (r *MemoryEventRepository) List(ctx context.Context) ([]domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	events := make([]domain.Event, 0, len(r.events))
	for _, e := range r.events {
		events = append(events, e)
	}
	sortEventsNewestFirst(events)
	return events, nil
}

func (r *MemoryEventRepository) ListFeatured(ctx context.Context) ([]domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	events := make([]domain.Event, 0)
	for _, e := range r.events {
		if e.IsFeatured {
			events = append(events, e)
		}
	}
	sortEventsNewestFirst(events)
	return events, nil
}

func (r *MemoryEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &e, nil
}

func (r *MemoryEventRepository) Create(ctx context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now
	r.events[event.ID] = *event
	return nil
}

func (r *MemoryEventRepository) Update(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.events[event.ID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	event.CreatedAt = existing.CreatedAt
	event.UpdatedAt = time.Now()
	r.events[event.ID] = *event
	updated := *event
	return &updated, nil
}

func (r *MemoryEventRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.events, id)
	return nil
}

func sortEventsNewestFirst(events []domain.Event) {
	sort.Slice(events, func(i, j int) bool {
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})
}

type MemoryInquiryRepository struct {
	mu        sync.RWMutex
	inquiries map[string]domain.Inquiry
}

func NewMemoryInquiryRepository() *MemoryInquiryRepository {
	return &MemoryInquiryRepository{inquiries: make(map[string]domain.Inquiry)}
}

func (r *MemoryInquiryRepository) Create(ctx context.Context, inquiry *domain.Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inquiry.IsRead = false
	inquiry.CreatedAt = time.Now()
	r.inquiries[inquiry.ID] = *inquiry
	return nil
}

func (r *MemoryInquiryRepository) List(ctx context.Context) ([]domain.Inquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inquiries := make([]domain.Inquiry, 0, len(r.inquiries))
	for _, i := range r.inquiries {
		inquiries = append(inquiries, i)
	}
	sort.Slice(inquiries, func(i, j int) bool {
		return inquiries[i].CreatedAt.After(inquiries[j].CreatedAt)
	})
	return inquiries, nil
}

func (r *MemoryInquiryRepository) MarkRead(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.inquiries[id]
	if !ok {
		return domain.ErrNotFound
	}
	i.IsRead = true
	r.inquiries[id] = i
	return nil
}

type MemoryBookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]domain.Booking
}

func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{bookings: make(map[string]domain.Booking)}
}

func (r *MemoryBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking.Status = domain.BookingStatusPending
	booking.CreatedAt = time.Now()
	r.bookings[booking.ID] = *booking
	return nil
}

func (r *MemoryBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	bookings := make([]domain.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		bookings = append(bookings, b)
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
	return bookings, nil
}

func (r *MemoryBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

func (r *MemoryBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	b.Status = status
	r.bookings[id] = b
	return &b, nil
}

func (r *MemoryBookingRepository) ListDatesByStatus(ctx context.Context, status domain.BookingStatus) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]struct{})
	dates := make([]string, 0)
	for _, b := range r.bookings {
		if b.Status != status {
			continue
		}
		if _, ok := seen[b.Date]; ok {
			continue
		}
		seen[b.Date] = struct{}{}
		dates = append(dates, b.Date)
	}
	sort.Strings(dates)
	return dates, nil
}

var (
	_ EventRepository   = (*MemoryEventRepository)(nil)
	_ InquiryRepository = (*MemoryInquiryRepository)(nil)
	_ BookingRepository = (*MemoryBookingRepository)(nil)
)
