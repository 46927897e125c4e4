package sdk

import (
	"context"

	"github.com/smartcontractkit/subdao/types"
)

// SubDaoQuerier reads the state of a subDAO core contract.
type SubDaoQuerier interface {
	SubDaoConfig(ctx context.Context, subdao string) (*types.SubDaoConfig, error)
	ProposalModules(ctx context.Context, subdao string, startAfter *string, limit *uint32) ([]types.ProposalModule, error)
}

// ProposalModuleQuerier reads the state of a DAO proposal module.
type ProposalModuleQuerier interface {
	ProposalCreationPolicy(ctx context.Context, module string) (types.ProposalCreationPolicy, error)
	// Dao returns the address of the DAO core contract that owns the module.
	Dao(ctx context.Context, module string) (string, error)
	// ProposalCount returns the number of proposals created so far.
	ProposalCount(ctx context.Context, module string) (uint64, error)
}

// PreProposeQuerier reads the state of a pre-propose module.
type PreProposeQuerier interface {
	TimelockAddress(ctx context.Context, prePropose string) (string, error)
	ProposalModule(ctx context.Context, prePropose string) (string, error)
}

// MainDaoQuerier reads the subDAO registry of a main DAO core contract.
type MainDaoQuerier interface {
	ListSubDaos(ctx context.Context, mainDao string, startAfter *string, limit *uint32) ([]types.SubDao, error)
}

// Querier is every cross-contract query the governance contracts issue.
type Querier interface {
	TimelockQuerier
	SubDaoQuerier
	ProposalModuleQuerier
	PreProposeQuerier
	MainDaoQuerier
}
