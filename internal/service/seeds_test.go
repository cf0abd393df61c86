package service_test

import (
	"path/filepath"
	"testing"
	"time"

	"valia_backend/internal/model"
	"valia_backend/pkg/store"
)

// fakeSeeds counts loader invocations so seed-once semantics are checkable.
type fakeSeeds struct {
	propertyCalls int
	properties    []model.Property
	agents        []model.Agent
	inquiries     []model.Inquiry
	bookings      []model.Booking
}

func (f *fakeSeeds) Properties() []model.Property {
	f.propertyCalls++
	return f.properties
}

func (f *fakeSeeds) Agents() []model.Agent {
	return f.agents
}

func (f *fakeSeeds) Inquiries() []model.Inquiry {
	return f.inquiries
}

func (f *fakeSeeds) Bookings() []model.Booking {
	return f.bookings
}

func newStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.Open(filepath.Join(t.TempDir(), "store.db"))
	t.Cleanup(func() { s.Close() })
	return s
}

var seedBase = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

// threeProperties mirrors the canonical listing mix: two for sale, one for
// rent, prices spanning the filter bounds used in tests.
func threeProperties() []model.Property {
	return []model.Property{
		{
			ID: "p1", Slug: "luxury-villa", Title: "Villa de Lujo",
			Operation: model.OperationSale, PropertyType: model.PropertyTypeVilla,
			Status: model.PropertyStatusActive, Price: 850000, Currency: model.CurrencyUSD,
			Bedrooms: 4, Bathrooms: 3, AreaBuilt: 350,
			City: "Punta Cana", Zone: "Cap Cana",
			CreatedAt: seedBase, UpdatedAt: seedBase,
		},
		{
			ID: "p2", Slug: "modern-apartment", Title: "Apartamento Moderno",
			Operation: model.OperationRental, PropertyType: model.PropertyTypeApartment,
			Status: model.PropertyStatusActive, Price: 2500, Currency: model.CurrencyUSD,
			Bedrooms: 2, Bathrooms: 2, AreaBuilt: 120,
			City: "Santo Domingo", Zone: "Zona Colonial",
			CreatedAt: seedBase.AddDate(0, 0, 5), UpdatedAt: seedBase.AddDate(0, 0, 5),
		},
		{
			ID: "p3", Slug: "beachfront-condo", Title: "Condominio Frente al Mar",
			Operation: model.OperationSale, PropertyType: model.PropertyTypeApartment,
			Status: model.PropertyStatusActive, Price: 450000, Currency: model.CurrencyUSD,
			Bedrooms: 3, Bathrooms: 2, AreaBuilt: 180,
			City: "Bávaro", Zone: "Playa Bávaro",
			CreatedAt: seedBase.AddDate(0, 0, 10), UpdatedAt: seedBase.AddDate(0, 0, 10),
		},
	}
}
