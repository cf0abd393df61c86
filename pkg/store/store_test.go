package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"valia_backend/internal/model"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s := Open(filepath.Join(t.TempDir(), "store.db"))
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCollectionRoundTrip(t *testing.T) {
	s := newStore(t)

	require.Empty(t, Get[model.Agent](s, KeyAgents))

	Put(s, KeyAgents, []model.Agent{
		{ID: "a1", Name: "María Rodríguez"},
		{ID: "a2", Name: "Carlos Méndez"},
	})

	got := Get[model.Agent](s, KeyAgents)
	require.Len(t, got, 2)
	require.Equal(t, "a1", got[0].ID)
	require.Equal(t, "Carlos Méndez", got[1].Name)
}

func TestPutReplacesWholeCollection(t *testing.T) {
	s := newStore(t)

	Put(s, KeyBookings, []model.Booking{{ID: "b1"}, {ID: "b2"}})
	Put(s, KeyBookings, []model.Booking{{ID: "b3"}})

	got := Get[model.Booking](s, KeyBookings)
	require.Len(t, got, 1)
	require.Equal(t, "b3", got[0].ID)
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")

	first := Open(path)
	Put(first, KeyProperties, []model.Property{{ID: "p1", Title: "Villa"}})
	require.NoError(t, first.Close())

	second := Open(path)
	defer second.Close()
	got := Get[model.Property](second, KeyProperties)
	require.Len(t, got, 1)
	require.Equal(t, "Villa", got[0].Title)
}

func TestUnavailableMediumIsAbsorbed(t *testing.T) {
	// Parent directory does not exist, so the medium can never be prepared.
	s := Open(filepath.Join(t.TempDir(), "missing", "sub", "store.db"))
	defer s.Close()

	Put(s, KeyProperties, []model.Property{{ID: "p1"}})
	require.Empty(t, Get[model.Property](s, KeyProperties))
	require.Equal(t, model.DefaultSettings(), s.Settings())
}

func TestCorruptDataReadsEmpty(t *testing.T) {
	s := newStore(t)

	Put(s, KeyInquiries, []model.Inquiry{{ID: "q1"}})
	_, err := s.db.Exec(`UPDATE collections SET data = ? WHERE key = ?`,
		"{definitely not json", string(KeyInquiries))
	require.NoError(t, err)

	require.Empty(t, Get[model.Inquiry](s, KeyInquiries))
}

func TestSettingsDefaultsAndOverwrite(t *testing.T) {
	s := newStore(t)

	got := s.Settings()
	require.Equal(t, model.CurrencyUSD, got.DefaultCurrency)
	require.Equal(t, "America/Santo_Domingo", got.Timezone)

	got.DefaultCurrency = model.CurrencyDOP
	got.Company.Phone = "+1-809-816-6766"
	s.SetSettings(got)

	reread := s.Settings()
	require.Equal(t, model.CurrencyDOP, reread.DefaultCurrency)
	require.Equal(t, "+1-809-816-6766", reread.Company.Phone)
}
