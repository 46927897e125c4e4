// Package store implements the durable state of a timelock instance.
package store

import (
	"context"
	"slices"
	"sync"

	sdkerrors "github.com/smartcontractkit/subdao/sdk/errors"
	"github.com/smartcontractkit/subdao/types"
)

// MemoryStore keeps the timelock state in memory. Records are copied in and out so callers never
// share state with the store.
type MemoryStore struct {
	mu        sync.RWMutex
	config    *types.TimelockConfig
	proposals map[uint64]types.TimelockedProposal
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{proposals: make(map[uint64]types.TimelockedProposal)}
}

func (s *MemoryStore) LoadConfig(_ context.Context) (*types.TimelockConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.config == nil {
		return nil, sdkerrors.ErrNotFound
	}
	cfg := *s.config

	return &cfg, nil
}

func (s *MemoryStore) SaveConfig(_ context.Context, cfg types.TimelockConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.config = &cfg

	return nil
}

func (s *MemoryStore) LoadProposal(_ context.Context, id uint64) (*types.TimelockedProposal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.proposals[id]
	if !ok {
		return nil, sdkerrors.ErrNotFound
	}
	p = cloneProposal(p)

	return &p, nil
}

func (s *MemoryStore) SaveProposal(_ context.Context, proposal types.TimelockedProposal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.proposals[proposal.ID] = cloneProposal(proposal)

	return nil
}

func (s *MemoryStore) ListProposals(
	_ context.Context, startAfter *uint64, limit int,
) ([]types.TimelockedProposal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]uint64, 0, len(s.proposals))
	for id := range s.proposals {
		if startAfter == nil || id > *startAfter {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	if limit >= 0 && len(ids) > limit {
		ids = ids[:limit]
	}

	out := make([]types.TimelockedProposal, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneProposal(s.proposals[id]))
	}

	return out, nil
}

func cloneProposal(p types.TimelockedProposal) types.TimelockedProposal {
	if p.Msgs == nil {
		return p
	}

	msgs := make([]types.ChainMsg, len(p.Msgs))
	for i, m := range p.Msgs {
		msgs[i] = types.ChainMsg{
			To:    m.To,
			Data:  slices.Clone(m.Data),
			Funds: slices.Clone(m.Funds),
		}
	}
	p.Msgs = msgs

	return p
}
