package subdao

import (
	"context"
	"fmt"

	"github.com/smartcontractkit/subdao/internal/utils/safecast"
	"github.com/smartcontractkit/subdao/types"
)

const (
	// DefaultLimit is the page size of ListProposals when no limit is requested.
	DefaultLimit = 30
	// MaxLimit caps the page size of ListProposals whatever limit is requested.
	MaxLimit = 100
)

// Config returns the timelock configuration.
func (t *Timelock) Config(ctx context.Context) (*types.TimelockConfig, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.loadConfig(ctx)
}

// Proposal returns the proposal stored under id.
func (t *Timelock) Proposal(ctx context.Context, id uint64) (*types.TimelockedProposal, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.loadProposal(ctx, id)
}

// ListProposals returns proposals ascending by ID, starting after startAfter (exclusive). A nil
// or zero limit means DefaultLimit and limits above MaxLimit are clamped.
func (t *Timelock) ListProposals(
	ctx context.Context, startAfter *uint64, limit *uint64,
) (*types.ProposalListResponse, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	pageSize, err := pageLimit(limit)
	if err != nil {
		return nil, err
	}

	proposals, err := t.store.ListProposals(ctx, startAfter, pageSize)
	if err != nil {
		return nil, fmt.Errorf("unable to list proposals: %w", err)
	}
	if proposals == nil {
		proposals = []types.TimelockedProposal{}
	}

	return &types.ProposalListResponse{Proposals: proposals}, nil
}

func pageLimit(limit *uint64) (int, error) {
	if limit == nil || *limit == 0 {
		return DefaultLimit, nil
	}

	return safecast.Uint64ToInt(min(*limit, MaxLimit))
}
