// Package report computes derived summary statistics on demand from the
// entity collections. Nothing here is persisted.
package report

import (
	"context"
	"fmt"
	"time"

	"valia_backend/internal/dataclient"
	"valia_backend/internal/model"
)

// Window names a reporting time window for createdAt-based counts.
type Window string

const (
	WindowToday      Window = "today"
	WindowThisWeek   Window = "this-week"
	WindowThisMonth  Window = "this-month"
	WindowLastMonth  Window = "last-month"
	WindowYearToDate Window = "year-to-date"
	WindowAll        Window = "all"
)

// commissionRate turns for-sale listing prices into a revenue estimate. It
// is an estimate, not a ledger figure.
const commissionRate = 0.03

// Aggregates need whole collections, not a listing page.
const fetchAll = 1 << 20

// Service composes the entity services into KPI snapshots and trends.
type Service struct {
	client *dataclient.Client
	now    func() time.Time
}

func NewService(client *dataclient.Client) *Service {
	return &Service{client: client, now: time.Now}
}

// Snapshot computes the dashboard KPIs. The window bounds only the inquiry
// and booking counts; property and agent totals are unwindowed.
func (s *Service) Snapshot(ctx context.Context, window Window) (*model.KPISnapshot, error) {
	properties, err := s.client.Properties.List(ctx, &model.PropertyFilters{PageSize: fetchAll})
	if err != nil {
		return nil, fmt.Errorf("listing properties: %w", err)
	}
	agents, err := s.client.Agents.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing agents: %w", err)
	}
	inquiries, err := s.client.Inquiries.List(ctx, &model.InquiryFilters{PageSize: fetchAll})
	if err != nil {
		return nil, fmt.Errorf("listing inquiries: %w", err)
	}
	bookings, err := s.client.Bookings.List(ctx, &model.BookingFilters{PageSize: fetchAll})
	if err != nil {
		return nil, fmt.Errorf("listing bookings: %w", err)
	}

	now := s.now()
	start := windowStart(window, now)

	snapshot := &model.KPISnapshot{
		TotalProperties: properties.Total,
		ActiveAgents:    len(agents),
	}

	for _, q := range inquiries.Items {
		if inWindow(q.CreatedAt, start, now) {
			snapshot.NewInquiries++
		}
	}
	for _, b := range bookings.Items {
		if inWindow(b.CreatedAt, start, now) {
			snapshot.ScheduledViewings++
		}
	}
	for _, p := range properties.Items {
		if p.Operation == model.OperationSale && p.Status == model.PropertyStatusActive {
			snapshot.ForSale++
			snapshot.MonthlyRevenue += p.Price * commissionRate
		}
	}

	return snapshot, nil
}

// Trend buckets one metric by calendar month, oldest bucket first, covering
// the given number of months up to the current one.
func (s *Service) Trend(ctx context.Context, metric string, months int) ([]model.TrendPoint, error) {
	if months < 1 {
		months = 6
	}

	var createdAts []time.Time
	switch metric {
	case "inquiries":
		page, err := s.client.Inquiries.List(ctx, &model.InquiryFilters{PageSize: fetchAll})
		if err != nil {
			return nil, fmt.Errorf("listing inquiries: %w", err)
		}
		for _, q := range page.Items {
			createdAts = append(createdAts, q.CreatedAt)
		}
	case "bookings":
		page, err := s.client.Bookings.List(ctx, &model.BookingFilters{PageSize: fetchAll})
		if err != nil {
			return nil, fmt.Errorf("listing bookings: %w", err)
		}
		for _, b := range page.Items {
			createdAts = append(createdAts, b.CreatedAt)
		}
	case "properties":
		page, err := s.client.Properties.List(ctx, &model.PropertyFilters{PageSize: fetchAll})
		if err != nil {
			return nil, fmt.Errorf("listing properties: %w", err)
		}
		for _, p := range page.Items {
			createdAts = append(createdAts, p.CreatedAt)
		}
	default:
		return nil, fmt.Errorf("unknown trend metric %q", metric)
	}

	now := s.now()
	points := make([]model.TrendPoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		monthStart := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		monthEnd := monthStart.AddDate(0, 1, 0)

		point := model.TrendPoint{Label: monthStart.Format("2006-01")}
		for _, at := range createdAts {
			if !at.Before(monthStart) && at.Before(monthEnd) {
				point.Value++
			}
		}
		points = append(points, point)
	}
	return points, nil
}

// ParseWindow maps a query value onto a Window; anything unrecognized means
// all time.
func ParseWindow(value string) Window {
	switch Window(value) {
	case WindowToday, WindowThisWeek, WindowThisMonth, WindowLastMonth, WindowYearToDate:
		return Window(value)
	default:
		return WindowAll
	}
}

func windowStart(window Window, now time.Time) time.Time {
	switch window {
	case WindowToday:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case WindowThisWeek:
		return now.Add(-7 * 24 * time.Hour)
	case WindowThisMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case WindowLastMonth:
		// The window runs from the first of the previous month through now,
		// so current-month records are counted too.
		return time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
	case WindowYearToDate:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Time{}
	}
}

func inWindow(at, start, now time.Time) bool {
	return !at.Before(start) && !at.After(now)
}
