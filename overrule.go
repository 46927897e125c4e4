package subdao

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/smartcontractkit/subdao/sdk"
	"github.com/smartcontractkit/subdao/types"
)

// OverruleValidator is the main DAO pre-propose module for overrule proposals. It accepts a
// request to veto a timelocked subDAO proposal only after corroborating every hop between the
// claimed timelock and the main DAO registry, and then hands an overrule proposal to the main
// DAO voting flow. It never overrules anything itself.
type OverruleValidator struct {
	// proposalModule is the main DAO proposal module this pre-propose module serves.
	proposalModule string
	querier        sdk.Querier
	submitter      sdk.ProposalSubmitter
	registry       *RegistryWalker
	validate       *validator.Validate
}

// NewOverruleValidator creates an OverruleValidator for the main DAO proposal module at
// proposalModule.
func NewOverruleValidator(
	proposalModule string, querier sdk.Querier, submitter sdk.ProposalSubmitter,
) *OverruleValidator {
	return &OverruleValidator{
		proposalModule: proposalModule,
		querier:        querier,
		submitter:      submitter,
		registry:       NewRegistryWalker(querier),
		validate:       validator.New(),
	}
}

// ProposalModule returns the address of the proposal module the validator serves.
func (v *OverruleValidator) ProposalModule() string {
	return v.proposalModule
}

// HandlePropose is the propose entry point. Only the propose_overrule shape is supported.
func (v *OverruleValidator) HandlePropose(
	ctx context.Context, sender string, msg types.ProposeMessage,
) (*types.Response, error) {
	if msg.ProposeOverrule == nil {
		return nil, ErrMessageUnsupported
	}

	_, resp, err := v.submit(ctx, sender, *msg.ProposeOverrule)

	return resp, err
}

// HandleRawPropose decodes a propose request and hands it to HandlePropose. Any shape other
// than propose_overrule, unknown fields included, is ErrMessageUnsupported.
func (v *OverruleValidator) HandleRawPropose(ctx context.Context, sender string, data []byte) (*types.Response, error) {
	msg, err := types.ParseProposeMessage(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMessageUnsupported, err)
	}

	return v.HandlePropose(ctx, sender, msg)
}

// SubmitOverruleRequest validates the request and submits the resulting overrule proposal to
// the main DAO. The proposer is always sender.
func (v *OverruleValidator) SubmitOverruleRequest(
	ctx context.Context, sender string, timelockAddr string, proposalID uint64,
) (*types.GovernanceProposal, error) {
	proposal, _, err := v.submit(ctx, sender, types.ProposeOverrule{
		TimelockContract: timelockAddr,
		ProposalID:       proposalID,
	})

	return proposal, err
}

func (v *OverruleValidator) submit(
	ctx context.Context, sender string, req types.ProposeOverrule,
) (*types.GovernanceProposal, *types.Response, error) {
	proposal, err := v.BuildOverruleProposal(ctx, sender, req.TimelockContract, req.ProposalID)
	if err != nil {
		return nil, nil, err
	}

	resp, err := v.submitter.Submit(ctx, *proposal)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to submit overrule proposal: %w", err)
	}

	return proposal, resp, nil
}

// BuildOverruleProposal runs the trust chain and returns the overrule proposal without
// submitting it. The checks run in order and the first failing one aborts:
//
//  1. the claimed timelock reports its subDAO;
//  2. the subDAO reports, through its proposal module and pre-propose module, its own timelock
//     (ErrSubdaoMisconfigured when the proposal module has no pre-propose module);
//  3. that timelock must be timelockAddr (ErrSubdaoMisconfigured);
//  4. the subDAO must be registered under the main DAO owning the validator proposal module
//     (ErrForbiddenSubdao);
//  5. the proposal must still be timelocked (ErrProposalWrongState).
func (v *OverruleValidator) BuildOverruleProposal(
	ctx context.Context, sender string, timelockAddr string, proposalID uint64,
) (*types.GovernanceProposal, error) {
	req := types.ProposeOverrule{TimelockContract: timelockAddr, ProposalID: proposalID}
	if err := v.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid overrule request: %w", err)
	}

	requestID := uuid.NewString()
	ctx, span := tracer().Start(ctx, "subdao.overrule.validate", trace.WithAttributes(
		attribute.String("request_id", requestID),
		attribute.String("timelock", timelockAddr),
		attribute.String("proposal_id", strconv.FormatUint(proposalID, 10)),
	))
	defer span.End()

	lggr := sdk.LoggerFrom(ctx)

	subdaoAddr, err := traced(ctx, "subdao.overrule.timelock_subdao", func(ctx context.Context) (string, error) {
		cfg, err := v.querier.TimelockConfig(ctx, timelockAddr)
		if err != nil {
			return "", fmt.Errorf("unable to query timelock config of %s: %w", timelockAddr, err)
		}

		return cfg.Subdao, nil
	})
	if err != nil {
		return nil, err
	}

	genuineTimelock, err := traced(ctx, "subdao.overrule.subdao_timelock", func(ctx context.Context) (string, error) {
		return v.timelockOfSubdao(ctx, subdaoAddr)
	})
	if err != nil {
		return nil, err
	}

	if genuineTimelock != timelockAddr {
		lggr.Warnw("overrule request names a timelock the subdao does not corroborate",
			"requestID", requestID, "timelock", timelockAddr, "subdao", subdaoAddr, "subdaoTimelock", genuineTimelock)

		return nil, ErrSubdaoMisconfigured
	}

	legit, err := traced(ctx, "subdao.overrule.registry", func(ctx context.Context) (bool, error) {
		mainDao, err := v.querier.Dao(ctx, v.proposalModule)
		if err != nil {
			return false, fmt.Errorf("unable to query dao of %s: %w", v.proposalModule, err)
		}

		return v.registry.IsSubdaoLegitimate(ctx, mainDao, subdaoAddr)
	})
	if err != nil {
		return nil, err
	}
	if !legit {
		lggr.Warnw("overrule request for an unregistered subdao", "requestID", requestID, "subdao", subdaoAddr)

		return nil, ErrForbiddenSubdao
	}

	timelocked, err := traced(ctx, "subdao.overrule.proposal_status", func(ctx context.Context) (bool, error) {
		proposal, err := v.querier.TimelockProposal(ctx, timelockAddr, proposalID)
		if err != nil {
			return false, fmt.Errorf("unable to query proposal %d of %s: %w", proposalID, timelockAddr, err)
		}

		return proposal.Status == types.ProposalStatusTimelocked, nil
	})
	if err != nil {
		return nil, err
	}
	if !timelocked {
		return nil, ErrProposalWrongState
	}

	subdaoCfg, err := v.querier.SubDaoConfig(ctx, subdaoAddr)
	if err != nil {
		return nil, fmt.Errorf("unable to query config of subdao %s: %w", subdaoAddr, err)
	}
	if err := subdaoCfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSubdaoMisconfigured, err)
	}

	overrule, err := types.NewWasmMsg(timelockAddr, types.TimelockExecuteMsg{
		OverruleProposal: &types.ProposalIDMsg{ProposalID: proposalID},
	})
	if err != nil {
		return nil, err
	}

	lggr.Infow("overrule request accepted",
		"requestID", requestID, "sender", sender, "subdao", subdaoCfg.Name, "timelock", timelockAddr, "proposalID", proposalID)

	return &types.GovernanceProposal{
		Proposer:    sender,
		Title:       fmt.Sprintf("Overrule proposal %d of %s", proposalID, subdaoCfg.Name),
		Description: fmt.Sprintf("Reject the decision made by the %s subdao", subdaoCfg.Name),
		Msgs:        []types.ChainMsg{overrule},
	}, nil
}

// timelockOfSubdao resolves the timelock a subDAO itself registers: its first proposal module
// must delegate proposal creation to a pre-propose module, which knows the timelock.
func (v *OverruleValidator) timelockOfSubdao(ctx context.Context, subdaoAddr string) (string, error) {
	limit := uint32(1)
	modules, err := v.querier.ProposalModules(ctx, subdaoAddr, nil, &limit)
	if err != nil {
		return "", fmt.Errorf("unable to query proposal modules of %s: %w", subdaoAddr, err)
	}
	if len(modules) == 0 {
		return "", ErrSubdaoMisconfigured
	}

	policy, err := v.querier.ProposalCreationPolicy(ctx, modules[0].Address)
	if err != nil {
		return "", fmt.Errorf("unable to query proposal creation policy of %s: %w", modules[0].Address, err)
	}

	prePropose, ok := policy.ModuleAddr()
	if !ok {
		return "", ErrSubdaoMisconfigured
	}

	timelock, err := v.querier.TimelockAddress(ctx, prePropose)
	if err != nil {
		return "", fmt.Errorf("unable to query timelock address of %s: %w", prePropose, err)
	}

	return timelock, nil
}
