package sdk

import (
	"context"

	"github.com/smartcontractkit/subdao/types"
)

// ProposalSubmitter hands a governance proposal to the voting flow of the DAO the pre-propose
// module serves. It is the shared pre-propose base: deposits and hooks live behind it.
type ProposalSubmitter interface {
	Submit(ctx context.Context, proposal types.GovernanceProposal) (*types.Response, error)
}
