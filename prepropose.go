package subdao

import (
	"context"
	"fmt"
	"sync"

	"github.com/smartcontractkit/subdao/sdk"
	"github.com/smartcontractkit/subdao/types"
)

// PrePropose is the subDAO pre-propose module. Proposals created through it do not carry their
// messages directly: the messages are wrapped into a single timelock_proposal message so that an
// approved proposal lands in the subDAO timelock instead of being executed.
type PrePropose struct {
	mu             sync.Mutex
	proposalModule string
	timelock       string
	querier        sdk.ProposalModuleQuerier
}

// NewPrePropose creates a PrePropose serving the subDAO proposal module at proposalModule.
func NewPrePropose(proposalModule string, querier sdk.ProposalModuleQuerier) *PrePropose {
	return &PrePropose{
		proposalModule: proposalModule,
		querier:        querier,
	}
}

// ProposalModule returns the address of the proposal module the pre-propose module serves.
func (p *PrePropose) ProposalModule() string {
	return p.proposalModule
}

// SetTimelockModule records the timelock instantiated for the subDAO. It can only be set once.
func (p *PrePropose) SetTimelockModule(ctx context.Context, addr string) (*types.Response, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.timelock != "" {
		return nil, ErrMultipleTimelockModules
	}
	if addr == "" {
		return nil, fmt.Errorf("%w: empty timelock address", ErrTimelockModuleNotSet)
	}
	p.timelock = addr

	sdk.LoggerFrom(ctx).Infow("timelock module recorded", "proposalModule", p.proposalModule, "timelock", addr)

	return types.NewResponse().AddAttribute("timelock_module_addr", addr), nil
}

// TimelockAddress returns the recorded timelock.
func (p *PrePropose) TimelockAddress() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.timelock == "" {
		return "", ErrTimelockModuleNotSet
	}

	return p.timelock, nil
}

// Propose builds the subDAO proposal for msgs. The proposal ID the timelock will see is the one
// the proposal module assigns next.
func (p *PrePropose) Propose(
	ctx context.Context, sender, title, description string, msgs []types.ChainMsg,
) (*types.GovernanceProposal, error) {
	timelock, err := p.TimelockAddress()
	if err != nil {
		return nil, err
	}

	count, err := p.querier.ProposalCount(ctx, p.proposalModule)
	if err != nil {
		return nil, fmt.Errorf("unable to query proposal count of %s: %w", p.proposalModule, err)
	}

	wrapped, err := types.NewWasmMsg(timelock, types.TimelockExecuteMsg{
		TimelockProposal: &types.TimelockProposalMsg{ProposalID: count + 1, Msgs: msgs},
	})
	if err != nil {
		return nil, err
	}

	return &types.GovernanceProposal{
		Proposer:    sender,
		Title:       title,
		Description: description,
		Msgs:        []types.ChainMsg{wrapped},
	}, nil
}
