package subdao

import (
	"context"

	"github.com/smartcontractkit/subdao/sdk"
	sdkerrors "github.com/smartcontractkit/subdao/sdk/errors"
	"github.com/smartcontractkit/subdao/types"
)

// hostQuerier answers the queries a locally operated timelock issues. The instantiating sender
// is treated as a pre-propose module serving a single proposal module of the configured subDAO;
// every other query is unsupported.
type hostQuerier struct {
	subdao string
}

var _ sdk.Querier = hostQuerier{}

func (q hostQuerier) ProposalModule(_ context.Context, prePropose string) (string, error) {
	return prePropose, nil
}

func (q hostQuerier) Dao(_ context.Context, module string) (string, error) {
	if q.subdao == "" {
		return "", sdkerrors.NewUnsupportedQueryError(module, "dao")
	}

	return q.subdao, nil
}

func (q hostQuerier) TimelockConfig(_ context.Context, timelock string) (*types.TimelockConfig, error) {
	return nil, sdkerrors.NewUnsupportedQueryError(timelock, "config")
}

func (q hostQuerier) TimelockProposal(_ context.Context, timelock string, _ uint64) (*types.TimelockedProposal, error) {
	return nil, sdkerrors.NewUnsupportedQueryError(timelock, "proposal")
}

func (q hostQuerier) SubDaoConfig(_ context.Context, addr string) (*types.SubDaoConfig, error) {
	return nil, sdkerrors.NewUnsupportedQueryError(addr, "config")
}

func (q hostQuerier) ProposalModules(_ context.Context, addr string, _ *string, _ *uint32) ([]types.ProposalModule, error) {
	return nil, sdkerrors.NewUnsupportedQueryError(addr, "proposal_modules")
}

func (q hostQuerier) ProposalCreationPolicy(_ context.Context, module string) (types.ProposalCreationPolicy, error) {
	return types.ProposalCreationPolicy{}, sdkerrors.NewUnsupportedQueryError(module, "proposal_creation_policy")
}

func (q hostQuerier) ProposalCount(_ context.Context, module string) (uint64, error) {
	return 0, sdkerrors.NewUnsupportedQueryError(module, "proposal_count")
}

func (q hostQuerier) TimelockAddress(_ context.Context, prePropose string) (string, error) {
	return "", sdkerrors.NewUnsupportedQueryError(prePropose, "timelock_address")
}

func (q hostQuerier) ListSubDaos(_ context.Context, mainDao string, _ *string, _ *uint32) ([]types.SubDao, error) {
	return nil, sdkerrors.NewUnsupportedQueryError(mainDao, "list_sub_daos")
}
