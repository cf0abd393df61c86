package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"valia_backend/internal/model"
	"valia_backend/pkg/seed"
	"valia_backend/pkg/store"
)

// AgentService owns the agents collection. It reads properties through the
// property service when resolving an agent's listings.
type AgentService struct {
	store *store.Store
	seeds seed.Source
	props *PropertyService
}

func NewAgentService(st *store.Store, seeds seed.Source, props *PropertyService) *AgentService {
	return &AgentService{store: st, seeds: seeds, props: props}
}

func (s *AgentService) load() []model.Agent {
	items := store.Get[model.Agent](s.store, store.KeyAgents)
	if len(items) == 0 {
		items = s.seeds.Agents()
		if len(items) > 0 {
			store.Put(s.store, store.KeyAgents, items)
		}
	}
	return items
}

// List returns all agents unpaginated. Callers depend on getting a plain
// list here, unlike the other collections.
func (s *AgentService) List(ctx context.Context) ([]model.Agent, error) {
	return s.load(), nil
}

func (s *AgentService) Get(ctx context.Context, id string) (*model.Agent, error) {
	items := s.load()
	for i := range items {
		if items[i].ID == id {
			a := items[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (s *AgentService) GetBySlug(ctx context.Context, agentSlug string) (*model.Agent, error) {
	items := s.load()
	for i := range items {
		if items[i].Slug == agentSlug {
			a := items[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (s *AgentService) Create(ctx context.Context, a model.Agent) (*model.Agent, error) {
	items := s.load()

	now := time.Now().UTC()
	a.ID = uuid.NewString()
	a.Slug = uniqueAgentSlug(items, a.Name)
	a.CreatedAt = now
	a.UpdatedAt = now

	items = append(items, a)
	store.Put(s.store, store.KeyAgents, items)
	return &a, nil
}

func (s *AgentService) Update(ctx context.Context, id string, patch model.AgentPatch) (*model.Agent, error) {
	items := s.load()
	for i := range items {
		if items[i].ID != id {
			continue
		}
		patch.Apply(&items[i])
		items[i].UpdatedAt = time.Now().UTC()
		store.Put(s.store, store.KeyAgents, items)
		a := items[i]
		return &a, nil
	}
	return nil, fmt.Errorf("agent %s: %w", id, ErrNotFound)
}

func (s *AgentService) Remove(ctx context.Context, id string) error {
	items := s.load()
	kept := make([]model.Agent, 0, len(items))
	for _, a := range items {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(items) {
		return nil
	}
	store.Put(s.store, store.KeyAgents, kept)
	return nil
}

// Properties resolves the agent's listings as the union of properties whose
// agentId points at the agent and properties the agent's own list names,
// deduped by property id. The two relations drift independently, so both
// are honored.
func (s *AgentService) Properties(ctx context.Context, agentID string) ([]model.Property, error) {
	agent, err := s.Get(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, fmt.Errorf("agent %s: %w", agentID, ErrNotFound)
	}

	all := s.props.load()
	seen := make(map[string]bool, len(all))
	var listings []model.Property

	for _, p := range all {
		if p.AgentID == agentID {
			listings = append(listings, p)
			seen[p.ID] = true
		}
	}
	for _, pid := range agent.Properties {
		if seen[pid] {
			continue
		}
		for _, p := range all {
			if p.ID == pid {
				listings = append(listings, p)
				seen[pid] = true
				break
			}
		}
	}

	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].CreatedAt.After(listings[j].CreatedAt)
	})
	return listings, nil
}

func uniqueAgentSlug(items []model.Agent, name string) string {
	candidate := slug.Make(name)
	if candidate == "" {
		candidate = "agent"
	}
	for i := range items {
		if items[i].Slug == candidate {
			return candidate + "-" + uuid.NewString()[:8]
		}
	}
	return candidate
}
