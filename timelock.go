package subdao

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/smartcontractkit/subdao/sdk"
	sdkerrors "github.com/smartcontractkit/subdao/sdk/errors"
	"github.com/smartcontractkit/subdao/types"
)

// Timelock holds proposals approved by a single subDAO until they are executed or overruled by
// the owner. Every request is processed to completion under a lock and performs at most one
// store write, after all of its checks have passed.
type Timelock struct {
	mu          sync.Mutex
	store       sdk.ProposalStore
	querier     sdk.Querier
	validate    *validator.Validate
	transitions transitionCounter
}

// NewTimelock creates a Timelock over store. The querier is only used to resolve the subDAO of
// the instantiating pre-propose module.
func NewTimelock(store sdk.ProposalStore, querier sdk.Querier) *Timelock {
	return &Timelock{
		store:       store,
		querier:     querier,
		validate:    validator.New(),
		transitions: newTransitionCounter(),
	}
}

// Instantiate configures the timelock. The sender must be the subDAO pre-propose module: the
// subDAO address is derived from it and never taken from the message.
func (t *Timelock) Instantiate(
	ctx context.Context, env types.Env, sender string, msg types.InstantiateMsg,
) (*types.Response, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.validate.Struct(msg); err != nil {
		return nil, err
	}

	proposalModule, err := t.querier.ProposalModule(ctx, sender)
	if err != nil {
		return nil, fmt.Errorf("unable to query proposal module of %s: %w", sender, err)
	}
	subdao, err := t.querier.Dao(ctx, proposalModule)
	if err != nil {
		return nil, fmt.Errorf("unable to query dao of %s: %w", proposalModule, err)
	}

	cfg := types.TimelockConfig{
		Owner:            msg.Owner,
		TimelockDuration: msg.TimelockDuration,
		Subdao:           subdao,
	}
	if err := t.store.SaveConfig(ctx, cfg); err != nil {
		return nil, fmt.Errorf("unable to save config: %w", err)
	}

	sdk.LoggerFrom(ctx).Infow("timelock instantiated",
		"contract", env.Contract, "owner", cfg.Owner, "subdao", cfg.Subdao, "duration", cfg.TimelockDuration)

	return types.NewResponse().
		AddAttribute("action", "instantiate").
		AddAttribute("owner", cfg.Owner).
		AddUint64Attribute("timelock_duration", cfg.TimelockDuration), nil
}

// HandleExecuteMsg routes a decoded execute message to the matching operation.
func (t *Timelock) HandleExecuteMsg(
	ctx context.Context, env types.Env, sender string, msg types.TimelockExecuteMsg,
) (*types.Response, error) {
	if err := msg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMessageUnsupported, err)
	}

	switch {
	case msg.TimelockProposal != nil:
		return t.LockProposal(ctx, env, sender, msg.TimelockProposal.ProposalID, msg.TimelockProposal.Msgs)
	case msg.ExecuteProposal != nil:
		return t.Execute(ctx, env, sender, msg.ExecuteProposal.ProposalID)
	case msg.OverruleProposal != nil:
		return t.Overrule(ctx, env, sender, msg.OverruleProposal.ProposalID)
	default:
		return t.UpdateConfig(ctx, env, sender, *msg.UpdateConfig)
	}
}

// LockProposal stores msgs under proposalID in the timelocked status. Only the configured subDAO
// may call it.
func (t *Timelock) LockProposal(
	ctx context.Context, env types.Env, sender string, proposalID uint64, msgs []types.ChainMsg,
) (*types.Response, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cfg, err := t.loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	if sender != cfg.Subdao {
		return nil, ErrUnauthorized
	}

	_, err = t.store.LoadProposal(ctx, proposalID)
	switch {
	case err == nil:
		return nil, NewProposalExistsError(proposalID)
	case !errors.Is(err, sdkerrors.ErrNotFound):
		return nil, fmt.Errorf("unable to load proposal %d: %w", proposalID, err)
	}

	proposal := types.TimelockedProposal{
		ID:         proposalID,
		TimelockTS: env.BlockTime,
		Msgs:       msgs,
		Status:     types.ProposalStatusTimelocked,
	}
	if err := t.store.SaveProposal(ctx, proposal); err != nil {
		return nil, fmt.Errorf("unable to save proposal %d: %w", proposalID, err)
	}
	t.transitions.record(ctx, env.Contract, proposal.Status)

	sdk.LoggerFrom(ctx).Infow("proposal timelocked",
		"contract", env.Contract, "proposalID", proposalID, "msgs", len(msgs),
		"executableAt", proposal.ExecutableAt(cfg.TimelockDuration))

	return types.NewResponse().
		AddAttribute("action", "timelock_proposal").
		AddAttribute("sender", sender).
		AddUint64Attribute("proposal_id", proposalID).
		AddAttribute("status", proposal.Status.String()), nil
}

// Overrule vetoes a timelocked proposal. Only the owner may call it and no message is
// dispatched.
func (t *Timelock) Overrule(
	ctx context.Context, env types.Env, sender string, proposalID uint64,
) (*types.Response, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cfg, err := t.loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	if sender != cfg.Owner {
		return nil, ErrUnauthorized
	}

	proposal, err := t.loadProposal(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	if proposal.Status.IsTerminal() {
		return nil, NewWrongProposalStatusError(proposal.Status)
	}

	proposal.Status = types.ProposalStatusOverruled
	if err := t.store.SaveProposal(ctx, *proposal); err != nil {
		return nil, fmt.Errorf("unable to save proposal %d: %w", proposalID, err)
	}
	t.transitions.record(ctx, env.Contract, proposal.Status)

	sdk.LoggerFrom(ctx).Infow("proposal overruled", "contract", env.Contract, "proposalID", proposalID)

	return types.NewResponse().
		AddAttribute("action", "overrule_proposal").
		AddAttribute("sender", sender).
		AddUint64Attribute("proposal_id", proposalID), nil
}

// UpdateConfig applies the fields set in msg. Only the owner may call it; the subDAO address is
// never changed.
func (t *Timelock) UpdateConfig(
	ctx context.Context, env types.Env, sender string, msg types.UpdateConfigMsg,
) (*types.Response, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cfg, err := t.loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	if sender != cfg.Owner {
		return nil, ErrUnauthorized
	}

	if msg.Owner != nil {
		if *msg.Owner == "" {
			return nil, fmt.Errorf("%w: owner must not be empty", types.ErrInvalidConfig)
		}
		cfg.Owner = *msg.Owner
	}
	if msg.TimelockDuration != nil {
		cfg.TimelockDuration = *msg.TimelockDuration
	}

	if err := t.store.SaveConfig(ctx, *cfg); err != nil {
		return nil, fmt.Errorf("unable to save config: %w", err)
	}

	sdk.LoggerFrom(ctx).Infow("timelock config updated",
		"contract", env.Contract, "owner", cfg.Owner, "duration", cfg.TimelockDuration)

	return types.NewResponse().
		AddAttribute("action", "update_config").
		AddAttribute("owner", cfg.Owner).
		AddUint64Attribute("timelock_duration", cfg.TimelockDuration), nil
}

func (t *Timelock) loadConfig(ctx context.Context) (*types.TimelockConfig, error) {
	cfg, err := t.store.LoadConfig(ctx)
	if err != nil {
		if errors.Is(err, sdkerrors.ErrNotFound) {
			return nil, ErrConfigNotFound
		}

		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	return cfg, nil
}

func (t *Timelock) loadProposal(ctx context.Context, id uint64) (*types.TimelockedProposal, error) {
	proposal, err := t.store.LoadProposal(ctx, id)
	if err != nil {
		if errors.Is(err, sdkerrors.ErrNotFound) {
			return nil, NewProposalNotFoundError(id)
		}

		return nil, fmt.Errorf("unable to load proposal %d: %w", id, err)
	}

	return proposal, nil
}
