package report

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"valia_backend/internal/dataclient"
	"valia_backend/internal/model"
	"valia_backend/pkg/store"
)

// reportNow anchors every window test to a known instant.
var reportNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

type reportSeeds struct {
	properties []model.Property
	agents     []model.Agent
	inquiries  []model.Inquiry
	bookings   []model.Booking
}

func (r *reportSeeds) Properties() []model.Property { return r.properties }
func (r *reportSeeds) Agents() []model.Agent        { return r.agents }
func (r *reportSeeds) Inquiries() []model.Inquiry   { return r.inquiries }
func (r *reportSeeds) Bookings() []model.Booking    { return r.bookings }

func newService(t *testing.T, seeds *reportSeeds) *Service {
	t.Helper()
	st := store.Open(filepath.Join(t.TempDir(), "store.db"))
	t.Cleanup(func() { st.Close() })

	client, err := dataclient.New(dataclient.ModeMock, dataclient.Options{Store: st, Seeds: seeds})
	require.NoError(t, err)

	svc := NewService(client)
	svc.now = func() time.Time { return reportNow }
	return svc
}

func dashboardSeeds() *reportSeeds {
	at := func(year int, month time.Month, day int) time.Time {
		return time.Date(year, month, day, 9, 0, 0, 0, time.UTC)
	}
	return &reportSeeds{
		properties: []model.Property{
			{ID: "p1", Operation: model.OperationSale, Status: model.PropertyStatusActive, Price: 850000, CreatedAt: at(2026, 6, 1)},
			{ID: "p2", Operation: model.OperationSale, Status: model.PropertyStatusActive, Price: 450000, CreatedAt: at(2026, 7, 1)},
			{ID: "p3", Operation: model.OperationRental, Status: model.PropertyStatusActive, Price: 2500, CreatedAt: at(2026, 8, 1)},
			{ID: "p4", Operation: model.OperationSale, Status: model.PropertyStatusSold, Price: 600000, CreatedAt: at(2026, 8, 2)},
		},
		agents: []model.Agent{
			{ID: "a1", Name: "María"},
			{ID: "a2", Name: "Carlos"},
		},
		inquiries: []model.Inquiry{
			{ID: "q1", CreatedAt: at(2026, 8, 28)}, // today
			{ID: "q2", CreatedAt: at(2026, 8, 5)},  // this month
			{ID: "q3", CreatedAt: at(2026, 7, 10)}, // last month
			{ID: "q4", CreatedAt: at(2026, 2, 1)},  // earlier this year
			{ID: "q5", CreatedAt: at(2025, 12, 1)}, // last year
		},
		bookings: []model.Booking{
			{ID: "b1", CreatedAt: at(2026, 8, 28)},
			{ID: "b2", CreatedAt: at(2026, 7, 20)},
		},
	}
}

func TestSnapshotTotalsAndRevenue(t *testing.T) {
	svc := newService(t, dashboardSeeds())

	snap, err := svc.Snapshot(context.Background(), WindowAll)
	require.NoError(t, err)

	require.Equal(t, 4, snap.TotalProperties)
	require.Equal(t, 2, snap.ActiveAgents)
	require.Equal(t, 5, snap.NewInquiries)
	require.Equal(t, 2, snap.ScheduledViewings)

	// Sold and rental listings contribute nothing to the estimate.
	require.Equal(t, 2, snap.ForSale)
	require.InDelta(t, 39000.0, snap.MonthlyRevenue, 0.01)
}

func TestSnapshotWindowsBoundInquiryCounts(t *testing.T) {
	svc := newService(t, dashboardSeeds())
	ctx := context.Background()

	cases := []struct {
		window    Window
		inquiries int
		bookings  int
	}{
		{WindowToday, 1, 1},
		{WindowThisMonth, 2, 1},
		{WindowLastMonth, 3, 2}, // runs through now, so this month counts too
		{WindowYearToDate, 4, 2},
		{WindowAll, 5, 2},
	}
	for _, tc := range cases {
		snap, err := svc.Snapshot(ctx, tc.window)
		require.NoError(t, err)
		require.Equal(t, tc.inquiries, snap.NewInquiries, "window %s", tc.window)
		require.Equal(t, tc.bookings, snap.ScheduledViewings, "window %s", tc.window)
	}
}

func TestTrendBucketsByMonth(t *testing.T) {
	svc := newService(t, dashboardSeeds())

	points, err := svc.Trend(context.Background(), "inquiries", 3)
	require.NoError(t, err)
	require.Equal(t, []model.TrendPoint{
		{Label: "2026-06", Value: 0},
		{Label: "2026-07", Value: 1},
		{Label: "2026-08", Value: 2},
	}, points)
}

func TestTrendRejectsUnknownMetric(t *testing.T) {
	svc := newService(t, dashboardSeeds())

	_, err := svc.Trend(context.Background(), "revenue", 6)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown trend metric")
}

func TestSnapshotPropagatesAdapterErrors(t *testing.T) {
	client, err := dataclient.New(dataclient.ModeRest, dataclient.Options{BaseURL: "https://api.example.com"})
	require.NoError(t, err)

	_, err = NewService(client).Snapshot(context.Background(), WindowAll)
	require.ErrorIs(t, err, dataclient.ErrNotImplemented)
}

func TestParseWindowDefaultsToAll(t *testing.T) {
	require.Equal(t, WindowToday, ParseWindow("today"))
	require.Equal(t, WindowLastMonth, ParseWindow("last-month"))
	require.Equal(t, WindowAll, ParseWindow(""))
	require.Equal(t, WindowAll, ParseWindow("fortnight"))
}
