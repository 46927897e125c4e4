package sdk

import (
	"context"

	"github.com/smartcontractkit/subdao/types"
)

// TimelockQuerier reads the state of a subDAO timelock contract.
type TimelockQuerier interface {
	TimelockConfig(ctx context.Context, timelock string) (*types.TimelockConfig, error)
	TimelockProposal(ctx context.Context, timelock string, proposalID uint64) (*types.TimelockedProposal, error)
}
