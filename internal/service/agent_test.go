package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"valia_backend/internal/model"
	"valia_backend/internal/service"
)

func newAgentFixture(t *testing.T, seeds *fakeSeeds) *service.AgentService {
	t.Helper()
	st := newStore(t)
	props := service.NewPropertyService(st, seeds)
	return service.NewAgentService(st, seeds, props)
}

func TestAgentListIsPlain(t *testing.T) {
	ctx := context.Background()
	svc := newAgentFixture(t, &fakeSeeds{agents: []model.Agent{
		{ID: "a1", Name: "María"},
		{ID: "a2", Name: "Carlos"},
	}})

	agents, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, agents, 2)
}

func TestAgentPropertiesUnion(t *testing.T) {
	ctx := context.Background()
	seeds := &fakeSeeds{
		agents: []model.Agent{
			{ID: "a1", Name: "María", Properties: []string{"p1"}},
		},
		properties: []model.Property{
			{ID: "p1", Title: "Named by agent", CreatedAt: seedBase},
			{ID: "p2", Title: "Points at agent", AgentID: "a1", CreatedAt: seedBase.AddDate(0, 0, 1)},
			{ID: "p3", Title: "Unrelated", CreatedAt: seedBase.AddDate(0, 0, 2)},
		},
	}
	svc := newAgentFixture(t, seeds)

	listings, err := svc.Properties(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, listings, 2)
	// Newest first.
	require.Equal(t, "p2", listings[0].ID)
	require.Equal(t, "p1", listings[1].ID)
}

func TestAgentPropertiesUnionDedupes(t *testing.T) {
	ctx := context.Background()
	seeds := &fakeSeeds{
		agents: []model.Agent{
			{ID: "a1", Name: "María", Properties: []string{"p1"}},
		},
		properties: []model.Property{
			// Both relations point at the same property.
			{ID: "p1", Title: "Doubly linked", AgentID: "a1", CreatedAt: seedBase},
		},
	}
	svc := newAgentFixture(t, seeds)

	listings, err := svc.Properties(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, listings, 1)
	require.Equal(t, "p1", listings[0].ID)
}

func TestAgentPropertiesUnknownAgent(t *testing.T) {
	ctx := context.Background()
	svc := newAgentFixture(t, &fakeSeeds{})

	_, err := svc.Properties(ctx, "ghost")
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestAgentCreateAndUpdate(t *testing.T) {
	ctx := context.Background()
	svc := newAgentFixture(t, &fakeSeeds{})

	created, err := svc.Create(ctx, model.Agent{Name: "Pedro Santana", Experience: 3})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "pedro-santana", created.Slug)

	bio := "Agente de la zona norte."
	updated, err := svc.Update(ctx, created.ID, model.AgentPatch{Bio: &bio})
	require.NoError(t, err)
	require.Equal(t, bio, updated.Bio)
	require.Equal(t, "Pedro Santana", updated.Name)
	require.Equal(t, 3, updated.Experience)
}
