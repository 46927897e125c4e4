package subdao

import (
	"context"
	"errors"
	"fmt"

	"github.com/smartcontractkit/subdao/sdk"
	"github.com/smartcontractkit/subdao/types"
)

// Execute dispatches the messages of a timelocked proposal whose delay has elapsed. Anyone may
// call it.
//
// The proposal is marked executed before the messages run. Each message is returned as a sub
// message tagged with the proposal ID that only reports back on failure; the host delivers
// such failures to Reply, which downgrades the status to execution_failed.
func (t *Timelock) Execute(
	ctx context.Context, env types.Env, sender string, proposalID uint64,
) (*types.Response, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cfg, err := t.loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	proposal, err := t.loadProposal(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	if proposal.Status.IsTerminal() {
		return nil, NewWrongProposalStatusError(proposal.Status)
	}

	if !proposal.Executable(env.BlockTime, cfg.TimelockDuration) {
		return nil, NewProposalTimelockedError(proposalID, proposal.ExecutableAt(cfg.TimelockDuration))
	}

	proposal.Status = types.ProposalStatusExecuted
	if err := t.store.SaveProposal(ctx, *proposal); err != nil {
		return nil, fmt.Errorf("unable to save proposal %d: %w", proposalID, err)
	}
	t.transitions.record(ctx, env.Contract, proposal.Status)

	resp := types.NewResponse().
		AddAttribute("action", "execute_proposal").
		AddAttribute("sender", sender).
		AddUint64Attribute("proposal_id", proposalID)
	for _, msg := range proposal.Msgs {
		resp.AddSubMsg(types.NewReplyOnError(msg, proposal.ID))
	}

	sdk.LoggerFrom(ctx).Infow("proposal executed",
		"contract", env.Contract, "proposalID", proposalID, "sender", sender, "msgs", len(proposal.Msgs))

	return resp, nil
}

// Reply reconciles the outcome of a sub message dispatched by Execute. Only failures are
// requested, so a success outcome is acknowledged without any change.
//
// A failure moves an executed proposal to execution_failed whatever the error says. Further
// failures for the same proposal (one per failing message) are acknowledged as no-ops. A
// failure for a proposal that was never dispatched is rejected.
func (t *Timelock) Reply(ctx context.Context, env types.Env, reply types.Reply) (*types.Response, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !reply.Failed() {
		return types.NewResponse(), nil
	}

	proposal, err := t.loadProposal(ctx, reply.ID)
	if err != nil {
		var notFound *ProposalNotFoundError
		if errors.As(err, &notFound) {
			return nil, NewNoSuchProposalError(reply.ID)
		}

		return nil, err
	}

	resp := types.NewResponse().
		AddUint64Attribute("timelocked_proposal_execution_failed", reply.ID)

	switch proposal.Status {
	case types.ProposalStatusExecutionFailed:
		sdk.LoggerFrom(ctx).Debugw("proposal already marked as failed",
			"contract", env.Contract, "proposalID", reply.ID, "error", reply.Err)

		return resp, nil
	case types.ProposalStatusTimelocked, types.ProposalStatusOverruled:
		return nil, NewWrongProposalStatusError(proposal.Status)
	}

	proposal.Status = types.ProposalStatusExecutionFailed
	if err := t.store.SaveProposal(ctx, *proposal); err != nil {
		return nil, fmt.Errorf("unable to save proposal %d: %w", reply.ID, err)
	}
	t.transitions.record(ctx, env.Contract, proposal.Status)

	sdk.LoggerFrom(ctx).Warnw("proposal execution failed",
		"contract", env.Contract, "proposalID", reply.ID, "error", reply.Err)

	return resp, nil
}
