package dataclient

import (
	"context"
	"errors"
	"fmt"

	"valia_backend/internal/model"
)

// ErrNotImplemented is returned by every rest adapter operation until the
// remote API client is built. It must reach the caller unchanged.
var ErrNotImplemented = errors.New("rest adapter not implemented")

func notImplemented(op string) error {
	return fmt.Errorf("%s: %w", op, ErrNotImplemented)
}

// The rest services already satisfy the same contracts as the mock ones;
// list filters will be serialized as query parameters once the HTTP calls
// exist.

type restPropertyService struct {
	baseURL string
}

func (r *restPropertyService) List(ctx context.Context, filters *model.PropertyFilters) (model.Page[model.Property], error) {
	return model.Page[model.Property]{}, notImplemented("properties.list")
}

func (r *restPropertyService) Get(ctx context.Context, id string) (*model.Property, error) {
	return nil, notImplemented("properties.get")
}

func (r *restPropertyService) GetBySlug(ctx context.Context, slug string) (*model.Property, error) {
	return nil, notImplemented("properties.getBySlug")
}

func (r *restPropertyService) Create(ctx context.Context, p model.Property) (*model.Property, error) {
	return nil, notImplemented("properties.create")
}

func (r *restPropertyService) Update(ctx context.Context, id string, patch model.PropertyPatch) (*model.Property, error) {
	return nil, notImplemented("properties.update")
}

func (r *restPropertyService) Remove(ctx context.Context, id string) error {
	return notImplemented("properties.remove")
}

type restAgentService struct {
	baseURL string
}

func (r *restAgentService) List(ctx context.Context) ([]model.Agent, error) {
	return nil, notImplemented("agents.list")
}

func (r *restAgentService) Get(ctx context.Context, id string) (*model.Agent, error) {
	return nil, notImplemented("agents.get")
}

func (r *restAgentService) GetBySlug(ctx context.Context, slug string) (*model.Agent, error) {
	return nil, notImplemented("agents.getBySlug")
}

func (r *restAgentService) Create(ctx context.Context, a model.Agent) (*model.Agent, error) {
	return nil, notImplemented("agents.create")
}

func (r *restAgentService) Update(ctx context.Context, id string, patch model.AgentPatch) (*model.Agent, error) {
	return nil, notImplemented("agents.update")
}

func (r *restAgentService) Remove(ctx context.Context, id string) error {
	return notImplemented("agents.remove")
}

func (r *restAgentService) Properties(ctx context.Context, agentID string) ([]model.Property, error) {
	return nil, notImplemented("agents.properties")
}

type restInquiryService struct {
	baseURL string
}

func (r *restInquiryService) List(ctx context.Context, filters *model.InquiryFilters) (model.Page[model.Inquiry], error) {
	return model.Page[model.Inquiry]{}, notImplemented("inquiries.list")
}

func (r *restInquiryService) Get(ctx context.Context, id string) (*model.Inquiry, error) {
	return nil, notImplemented("inquiries.get")
}

func (r *restInquiryService) Create(ctx context.Context, q model.Inquiry) (*model.Inquiry, error) {
	return nil, notImplemented("inquiries.create")
}

func (r *restInquiryService) Update(ctx context.Context, id string, patch model.InquiryPatch) (*model.Inquiry, error) {
	return nil, notImplemented("inquiries.update")
}

func (r *restInquiryService) Remove(ctx context.Context, id string) error {
	return notImplemented("inquiries.remove")
}

type restBookingService struct {
	baseURL string
}

func (r *restBookingService) List(ctx context.Context, filters *model.BookingFilters) (model.Page[model.Booking], error) {
	return model.Page[model.Booking]{}, notImplemented("bookings.list")
}

func (r *restBookingService) Get(ctx context.Context, id string) (*model.Booking, error) {
	return nil, notImplemented("bookings.get")
}

func (r *restBookingService) Create(ctx context.Context, b model.Booking) (*model.Booking, error) {
	return nil, notImplemented("bookings.create")
}

func (r *restBookingService) Update(ctx context.Context, id string, patch model.BookingPatch) (*model.Booking, error) {
	return nil, notImplemented("bookings.update")
}

func (r *restBookingService) Remove(ctx context.Context, id string) error {
	return notImplemented("bookings.remove")
}
