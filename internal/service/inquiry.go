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

// InquiryService owns the inquiries collection.
type InquiryService struct {
	store *store.Store
	seeds seed.Source
}

func NewInquiryService(st *store.Store, seeds seed.Source) *InquiryService {
	return &InquiryService{store: st, seeds: seeds}
}

func (s *InquiryService) load() []model.Inquiry {
	items := store.Get[model.Inquiry](s.store, store.KeyInquiries)
	if len(items) == 0 {
		items = s.seeds.Inquiries()
		if len(items) > 0 {
			store.Put(s.store, store.KeyInquiries, items)
		}
	}
	return items
}

// List returns inquiries newest first, paginated.
func (s *InquiryService) List(ctx context.Context, filters *model.InquiryFilters) (model.Page[model.Inquiry], error) {
	items := s.load()

	filtered := make([]model.Inquiry, 0, len(items))
	for _, q := range items {
		if filters != nil {
			if filters.PropertyID != "" && q.PropertyID != filters.PropertyID {
				continue
			}
			if filters.Status != "" && q.Status != filters.Status {
				continue
			}
			if filters.Type != "" && q.Type != filters.Type {
				continue
			}
		}
		filtered = append(filtered, q)
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

func (s *InquiryService) Get(ctx context.Context, id string) (*model.Inquiry, error) {
	items := s.load()
	for i := range items {
		if items[i].ID == id {
			q := items[i]
			return &q, nil
		}
	}
	return nil, nil
}

func (s *InquiryService) Create(ctx context.Context, q model.Inquiry) (*model.Inquiry, error) {
	items := s.load()

	q.ID = uuid.NewString()
	q.CreatedAt = time.Now().UTC()
	if q.Status == "" {
		q.Status = model.InquiryStatusNew
	}

	items = append(items, q)
	store.Put(s.store, store.KeyInquiries, items)
	return &q, nil
}

func (s *InquiryService) Update(ctx context.Context, id string, patch model.InquiryPatch) (*model.Inquiry, error) {
	items := s.load()
	for i := range items {
		if items[i].ID != id {
			continue
		}
		patch.Apply(&items[i])
		store.Put(s.store, store.KeyInquiries, items)
		q := items[i]
		return &q, nil
	}
	return nil, fmt.Errorf("inquiry %s: %w", id, ErrNotFound)
}

func (s *InquiryService) Remove(ctx context.Context, id string) error {
	items := s.load()
	kept := make([]model.Inquiry, 0, len(items))
	for _, q := range items {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	if len(kept) == len(items) {
		return nil
	}
	store.Put(s.store, store.KeyInquiries, kept)
	return nil
}
