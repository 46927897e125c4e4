package sdk

import (
	"context"

	"github.com/smartcontractkit/subdao/types"
)

// ProposalStore is the durable state of a single timelock instance. Implementations return
// sdkerrors.ErrNotFound for missing records.
type ProposalStore interface {
	LoadConfig(ctx context.Context) (*types.TimelockConfig, error)
	SaveConfig(ctx context.Context, cfg types.TimelockConfig) error
	LoadProposal(ctx context.Context, id uint64) (*types.TimelockedProposal, error)
	// SaveProposal inserts or replaces the proposal keyed by its ID.
	SaveProposal(ctx context.Context, proposal types.TimelockedProposal) error
	// ListProposals returns up to limit proposals with an ID greater than startAfter (or from
	// the first one when startAfter is nil), ascending by ID.
	ListProposals(ctx context.Context, startAfter *uint64, limit int) ([]types.TimelockedProposal, error)
}
