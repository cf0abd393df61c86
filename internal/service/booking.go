package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"valia_backend/internal/model"
	"valia_backend/pkg/seed"
	"valia_backend/pkg/store"
)

// BookingService owns the bookings collection.
type BookingService struct {
	store *store.Store
	seeds seed.Source
}

func NewBookingService(st *store.Store, seeds seed.Source) *BookingService {
	return &BookingService{store: st, seeds: seeds}
}

func (s *BookingService) load() []model.Booking {
	items := store.Get[model.Booking](s.store, store.KeyBookings)
	if len(items) == 0 {
		items = s.seeds.Bookings()
		if len(items) > 0 {
			store.Put(s.store, store.KeyBookings, items)
		}
	}
	return items
}

// List returns bookings newest first, paginated.
func (s *BookingService) List(ctx context.Context, filters *model.BookingFilters) (model.Page[model.Booking], error) {
	items := s.load()

	filtered := make([]model.Booking, 0, len(items))
	for _, b := range items {
		if filters != nil {
			if filters.PropertyID != "" && b.PropertyID != filters.PropertyID {
				continue
			}
			if filters.Status != "" && b.Status != filters.Status {
				continue
			}
		}
		filtered = append(filtered, b)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	page, pageSize := 0, 0
	if filters != nil {
		page, pageSize = filters.Page, filters.PageSize
	}
	return paginate(filtered, page, pageSize), nil
}

func (s *BookingService) Get(ctx context.Context, id string) (*model.Booking, error) {
	items := s.load()
	for i := range items {
		if items[i].ID == id {
			b := items[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (s *BookingService) Create(ctx context.Context, b model.Booking) (*model.Booking, error) {
	items := s.load()

	b.ID = uuid.NewString()
	b.CreatedAt = time.Now().UTC()
	if b.Status == "" {
		b.Status = model.BookingStatusPending
	}

	items = append(items, b)
	store.Put(s.store, store.KeyBookings, items)
	return &b, nil
}

func (s *BookingService) Update(ctx context.Context, id string, patch model.BookingPatch) (*model.Booking, error) {
	items := s.load()
	for i := range items {
		if items[i].ID != id {
			continue
		}
		patch.Apply(&items[i])
		store.Put(s.store, store.KeyBookings, items)
		b := items[i]
		return &b, nil
	}
	return nil, fmt.Errorf("booking %s: %w", id, ErrNotFound)
}

func (s *BookingService) Remove(ctx context.Context, id string) error {
	items := s.load()
	kept := make([]model.Booking, 0, len(items))
	for _, b := range items {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(items) {
		return nil
	}
	store.Put(s.store, store.KeyBookings, kept)
	return nil
}
