package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"valia_backend/internal/model"
	"valia_backend/pkg/seed"
	"valia_backend/pkg/store"
)

// PropertyService owns the properties collection.
type PropertyService struct {
	store *store.Store
	seeds seed.Source
}

func NewPropertyService(st *store.Store, seeds seed.Source) *PropertyService {
	return &PropertyService{store: st, seeds: seeds}
}

// load reads the collection, seeding and persisting it the first time it
// comes back empty.
func (s *PropertyService) load() []model.Property {
	items := store.Get[model.Property](s.store, store.KeyProperties)
	if len(items) == 0 {
		items = s.seeds.Properties()
		if len(items) > 0 {
			store.Put(s.store, store.KeyProperties, items)
		}
	}
	return items
}

// List applies the filter clauses conjunctively, sorts the whole filtered
// set, then paginates.
func (s *PropertyService) List(ctx context.Context, filters *model.PropertyFilters) (model.Page[model.Property], error) {
	items := s.load()

	filtered := make([]model.Property, 0, len(items))
	for _, p := range items {
		if matchProperty(filters, p) {
			filtered = append(filtered, p)
		}
	}

	var order model.PropertySort
	page, pageSize := 0, 0
	if filters != nil {
		order = filters.Sort
		page, pageSize = filters.Page, filters.PageSize
	}
	sortProperties(filtered, order)

	return paginate(filtered, page, pageSize), nil
}

func (s *PropertyService) Get(ctx context.Context, id string) (*model.Property, error) {
	items := s.load()
	for i := range items {
		if items[i].ID == id {
			p := items[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (s *PropertyService) GetBySlug(ctx context.Context, propertySlug string) (*model.Property, error) {
	items := s.load()
	for i := range items {
		if items[i].Slug == propertySlug {
			p := items[i]
			return &p, nil
		}
	}
	return nil, nil
}

// Create assigns id, slug and timestamps, appends and persists. The slug is
// derived from the title; a collision gets a random suffix.
func (s *PropertyService) Create(ctx context.Context, p model.Property) (*model.Property, error) {
	items := s.load()

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.Slug = uniquePropertySlug(items, p.Title)
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = model.PropertyStatusActive
	}

	items = append(items, p)
	store.Put(s.store, store.KeyProperties, items)
	return &p, nil
}

// Update shallow-merges the patch into the record and re-stamps updatedAt.
// A missing id is a detectable failure, unlike Get.
func (s *PropertyService) Update(ctx context.Context, id string, patch model.PropertyPatch) (*model.Property, error) {
	items := s.load()
	for i := range items {
		if items[i].ID != id {
			continue
		}
		patch.Apply(&items[i])
		items[i].UpdatedAt = time.Now().UTC()
		store.Put(s.store, store.KeyProperties, items)
		p := items[i]
		return &p, nil
	}
	return nil, fmt.Errorf("property %s: %w", id, ErrNotFound)
}

// Remove deletes the record if present. Removing an absent id is a no-op.
func (s *PropertyService) Remove(ctx context.Context, id string) error {
	items := s.load()
	kept := make([]model.Property, 0, len(items))
	for _, p := range items {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(items) {
		return nil
	}
	store.Put(s.store, store.KeyProperties, kept)
	return nil
}

func matchProperty(f *model.PropertyFilters, p model.Property) bool {
	if f == nil {
		return true
	}
	if f.Operation != "" && p.Operation != f.Operation {
		return false
	}
	if f.PropertyType != "" && p.PropertyType != f.PropertyType {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.MinPrice > 0 && p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	if f.Bedrooms > 0 && p.Bedrooms < f.Bedrooms {
		return false
	}
	if f.Bathrooms > 0 && p.Bathrooms < f.Bathrooms {
		return false
	}
	if f.MinArea > 0 && p.AreaBuilt < f.MinArea {
		return false
	}
	if f.MaxArea > 0 && p.AreaBuilt > f.MaxArea {
		return false
	}
	if f.City != "" && !containsFold(p.City, f.City) {
		return false
	}
	if f.Zone != "" && !containsFold(p.Zone, f.Zone) {
		return false
	}
	if f.Location != "" &&
		!containsFold(p.City, f.Location) &&
		!containsFold(p.Zone, f.Location) &&
		!containsFold(p.Title, f.Location) {
		return false
	}
	if f.Furnished != nil && p.Furnished != *f.Furnished {
		return false
	}
	if f.Featured != nil && p.Featured != *f.Featured {
		return false
	}
	return true
}

// sortProperties totally reorders items; ties keep their previous relative
// order.
func sortProperties(items []model.Property, order model.PropertySort) {
	switch order {
	case model.SortPriceLow:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	case model.SortPriceHigh:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price > items[j].Price })
	case model.SortAreaLarge:
		sort.SliceStable(items, func(i, j int) bool { return items[i].AreaBuilt > items[j].AreaBuilt })
	case model.SortAreaSmall:
		sort.SliceStable(items, func(i, j int) bool { return items[i].AreaBuilt < items[j].AreaBuilt })
	default: // newest
		sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func uniquePropertySlug(items []model.Property, title string) string {
	candidate := slug.Make(title)
	if candidate == "" {
		candidate = "property"
	}
	for i := range items {
		if items[i].Slug == candidate {
			return candidate + "-" + uuid.NewString()[:8]
		}
	}
	return candidate
}
