package dataclient_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"valia_backend/internal/dataclient"
	"valia_backend/pkg/store"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.Open(filepath.Join(t.TempDir(), "store.db"))
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewRejectsUnknownMode(t *testing.T) {
	_, err := dataclient.New("graphql", dataclient.Options{Store: newStore(t)})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported")
}

func TestMockModeServesEmbeddedFixtures(t *testing.T) {
	ctx := context.Background()
	client, err := dataclient.New(dataclient.ModeMock, dataclient.Options{Store: newStore(t)})
	require.NoError(t, err)

	page, err := client.Properties.List(ctx, nil)
	require.NoError(t, err)
	require.NotEmpty(t, page.Items)
	require.Equal(t, len(page.Items), page.Total)

	agents, err := client.Agents.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, agents)
}

func TestRestModeFailsWithNotImplemented(t *testing.T) {
	ctx := context.Background()
	client, err := dataclient.New(dataclient.ModeRest, dataclient.Options{BaseURL: "https://api.example.com"})
	require.NoError(t, err)

	_, err = client.Properties.List(ctx, nil)
	require.ErrorIs(t, err, dataclient.ErrNotImplemented)

	_, err = client.Agents.Get(ctx, "agent-001")
	require.ErrorIs(t, err, dataclient.ErrNotImplemented)

	err = client.Bookings.Remove(ctx, "b1")
	require.ErrorIs(t, err, dataclient.ErrNotImplemented)
}
