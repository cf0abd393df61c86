// Package dataclient is the single construction point for the entity
// services. UI-facing code is built against the service contracts here, not
// against a concrete adapter.
package dataclient

import (
	"context"
	"fmt"

	"valia_backend/internal/model"
	"valia_backend/internal/service"
	"valia_backend/pkg/seed"
	"valia_backend/pkg/store"
)

// Mode selects which adapter backs the client's services.
type Mode string

const (
	// ModeMock serves everything from the local persistent store.
	ModeMock Mode = "mock"
	// ModeRest will serve everything from the remote API. Its operations
	// fail with ErrNotImplemented until that client exists.
	ModeRest Mode = "rest"
)

type PropertyService interface {
	List(ctx context.Context, filters *model.PropertyFilters) (model.Page[model.Property], error)
	Get(ctx context.Context, id string) (*model.Property, error)
	GetBySlug(ctx context.Context, slug string) (*model.Property, error)
	Create(ctx context.Context, p model.Property) (*model.Property, error)
	Update(ctx context.Context, id string, patch model.PropertyPatch) (*model.Property, error)
	Remove(ctx context.Context, id string) error
}

type AgentService interface {
	List(ctx context.Context) ([]model.Agent, error)
	Get(ctx context.Context, id string) (*model.Agent, error)
	GetBySlug(ctx context.Context, slug string) (*model.Agent, error)
	Create(ctx context.Context, a model.Agent) (*model.Agent, error)
	Update(ctx context.Context, id string, patch model.AgentPatch) (*model.Agent, error)
	Remove(ctx context.Context, id string) error
	Properties(ctx context.Context, agentID string) ([]model.Property, error)
}

type InquiryService interface {
	List(ctx context.Context, filters *model.InquiryFilters) (model.Page[model.Inquiry], error)
	Get(ctx context.Context, id string) (*model.Inquiry, error)
	Create(ctx context.Context, q model.Inquiry) (*model.Inquiry, error)
	Update(ctx context.Context, id string, patch model.InquiryPatch) (*model.Inquiry, error)
	Remove(ctx context.Context, id string) error
}

type BookingService interface {
	List(ctx context.Context, filters *model.BookingFilters) (model.Page[model.Booking], error)
	Get(ctx context.Context, id string) (*model.Booking, error)
	Create(ctx context.Context, b model.Booking) (*model.Booking, error)
	Update(ctx context.Context, id string, patch model.BookingPatch) (*model.Booking, error)
	Remove(ctx context.Context, id string) error
}

// Client bundles the four entity services. It routes and owns no state of
// its own.
type Client struct {
	Properties PropertyService
	Agents     AgentService
	Inquiries  InquiryService
	Bookings   BookingService
}

// Options carries the adapter dependencies. Store and Seeds back ModeMock;
// BaseURL backs ModeRest.
type Options struct {
	Store   *store.Store
	Seeds   seed.Source
	BaseURL string
}

// New builds a client for the given mode. An unrecognized mode fails here,
// at construction, not on first use.
func New(mode Mode, opts Options) (*Client, error) {
	switch mode {
	case ModeMock:
		if opts.Seeds == nil {
			opts.Seeds = seed.Fixtures()
		}
		props := service.NewPropertyService(opts.Store, opts.Seeds)
		return &Client{
			Properties: props,
			Agents:     service.NewAgentService(opts.Store, opts.Seeds, props),
			Inquiries:  service.NewInquiryService(opts.Store, opts.Seeds),
			Bookings:   service.NewBookingService(opts.Store, opts.Seeds),
		}, nil
	case ModeRest:
		return &Client{
			Properties: &restPropertyService{baseURL: opts.BaseURL},
			Agents:     &restAgentService{baseURL: opts.BaseURL},
			Inquiries:  &restInquiryService{baseURL: opts.BaseURL},
			Bookings:   &restBookingService{baseURL: opts.BaseURL},
		}, nil
	default:
		return nil, fmt.Errorf("unsupported data client mode %q", mode)
	}
}
