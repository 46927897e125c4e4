// Package ledgersim implements a simulated ledger hosting the governance contracts for testing
// purposes. It routes queries and messages by contract address and dispatches the sub messages
// a contract returns, delivering the replies they ask for.
//
// A Ledger is not safe for concurrent use.
package ledgersim

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/subdao"
	"github.com/smartcontractkit/subdao/internal/testutils/chaintest"
	"github.com/smartcontractkit/subdao/sdk"
	sdkerrors "github.com/smartcontractkit/subdao/sdk/errors"
	"github.com/smartcontractkit/subdao/store"
	"github.com/smartcontractkit/subdao/types"
)

// TargetFunc handles a message dispatched to a plain target contract.
type TargetFunc func(ctx context.Context, sender string, msg types.ChainMsg) error

// Dispatch is a message a target contract accepted.
type Dispatch struct {
	Sender string
	Msg    types.ChainMsg
}

// DaoCore is a DAO core contract: its config, its proposal modules and, for a main DAO, its
// subDAO registry.
type DaoCore struct {
	Config          types.SubDaoConfig
	ProposalModules []types.ProposalModule
	SubDaos         []types.SubDao
}

// ProposalModule is a single choice proposal module. Proposals pass as soon as they are created
// and are executed by PassProposal.
type ProposalModule struct {
	Dao       string
	Policy    types.ProposalCreationPolicy
	Proposals []types.GovernanceProposal
}

type preProposeModule interface {
	ProposalModule() string
}

type timelockRecorder interface {
	TimelockAddress() (string, error)
}

type proposeHandler interface {
	HandleRawPropose(ctx context.Context, sender string, data []byte) (*types.Response, error)
}

// Ledger is the simulated ledger.
type Ledger struct {
	t *testing.T

	height uint64
	now    time.Time

	// RegistryLimit caps the page size of subDAO registry queries.
	RegistryLimit uint32

	cores      map[string]*DaoCore
	modules    map[string]*ProposalModule
	prePropose map[string]preProposeModule
	timelocks  map[string]*subdao.Timelock
	targets    map[string]TargetFunc

	dispatched []Dispatch
}

var _ sdk.Querier = (*Ledger)(nil)

// New creates an empty ledger at chaintest.GenesisTime with an accepting target at
// chaintest.TargetAddr and a rejecting one at chaintest.FailingTargetAddr.
func New(t *testing.T) *Ledger {
	t.Helper()

	l := &Ledger{
		t:             t,
		height:        1,
		now:           chaintest.GenesisTime,
		RegistryLimit: 30,
		cores:         make(map[string]*DaoCore),
		modules:       make(map[string]*ProposalModule),
		prePropose:    make(map[string]preProposeModule),
		timelocks:     make(map[string]*subdao.Timelock),
		targets:       make(map[string]TargetFunc),
	}

	l.AddTarget(chaintest.TargetAddr, func(context.Context, string, types.ChainMsg) error { return nil })
	l.AddTarget(chaintest.FailingTargetAddr, func(_ context.Context, _ string, msg types.ChainMsg) error {
		return fmt.Errorf("execution reverted: %s", msg.Data)
	})

	return l
}

// Env returns the environment a request to contract is processed in.
func (l *Ledger) Env(contract string) types.Env {
	return types.Env{BlockHeight: l.height, BlockTime: l.now, Contract: contract}
}

// Advance moves the ledger forward by seconds, producing a new block.
func (l *Ledger) Advance(seconds uint64) {
	l.height++
	l.now = l.now.Add(time.Duration(seconds) * time.Second)
}

// AddTarget hosts fn at addr.
func (l *Ledger) AddTarget(addr string, fn TargetFunc) {
	l.targets[addr] = fn
}

// AddDaoCore hosts a DAO core contract at addr.
func (l *Ledger) AddDaoCore(addr string, cfg types.SubDaoConfig, modules ...types.ProposalModule) *DaoCore {
	core := &DaoCore{Config: cfg, ProposalModules: modules}
	l.cores[addr] = core

	return core
}

// RegisterSubDao adds subdaoAddr to the registry of the main DAO at mainDao.
func (l *Ledger) RegisterSubDao(mainDao, subdaoAddr string) {
	l.t.Helper()

	core, ok := l.cores[mainDao]
	require.True(l.t, ok, "no dao core at %s", mainDao)

	core.SubDaos = append(core.SubDaos, types.SubDao{Addr: subdaoAddr})
	slices.SortFunc(core.SubDaos, func(a, b types.SubDao) int { return strings.Compare(a.Addr, b.Addr) })
}

// AddProposalModule hosts a proposal module owned by dao at addr.
func (l *Ledger) AddProposalModule(addr, dao string, policy types.ProposalCreationPolicy) *ProposalModule {
	module := &ProposalModule{Dao: dao, Policy: policy}
	l.modules[addr] = module

	return module
}

// AddPrePropose hosts a pre-propose module at addr.
func (l *Ledger) AddPrePropose(addr string, module preProposeModule) {
	l.prePropose[addr] = module
}

// DeployTimelock instantiates a timelock at addr on behalf of the subDAO pre-propose module at
// prePropose and records it there. A nil store means an in-memory one.
func (l *Ledger) DeployTimelock(
	ctx context.Context, addr, prePropose string, s sdk.ProposalStore, msg types.InstantiateMsg,
) *subdao.Timelock {
	l.t.Helper()

	if s == nil {
		s = store.NewMemoryStore()
	}

	timelock := subdao.NewTimelock(s, l)
	_, err := timelock.Instantiate(ctx, l.Env(addr), prePropose, msg)
	require.NoError(l.t, err)
	l.timelocks[addr] = timelock

	module, ok := l.prePropose[prePropose].(*subdao.PrePropose)
	require.True(l.t, ok, "no subdao pre-propose module at %s", prePropose)
	_, err = module.SetTimelockModule(ctx, addr)
	require.NoError(l.t, err)

	return timelock
}

// Timelock returns the timelock hosted at addr.
func (l *Ledger) Timelock(addr string) *subdao.Timelock {
	return l.timelocks[addr]
}

// Submitter returns the voting flow of the proposal module at module.
func (l *Ledger) Submitter(module string) sdk.ProposalSubmitter {
	return submitter{ledger: l, module: module}
}

// Proposal returns proposal id (1-based) of the proposal module at module.
func (l *Ledger) Proposal(module string, id uint64) (types.GovernanceProposal, bool) {
	m, ok := l.modules[module]
	if !ok || id == 0 || id > uint64(len(m.Proposals)) {
		return types.GovernanceProposal{}, false
	}

	return m.Proposals[id-1], true
}

// PassProposal executes the messages of proposal id of the proposal module at module, on
// behalf of the DAO core owning the module.
func (l *Ledger) PassProposal(ctx context.Context, module string, id uint64) error {
	proposal, ok := l.Proposal(module, id)
	if !ok {
		return fmt.Errorf("proposal %d of %s: %w", id, module, sdkerrors.ErrNotFound)
	}

	for _, msg := range proposal.Msgs {
		if _, err := l.Execute(ctx, l.modules[module].Dao, msg); err != nil {
			return err
		}
	}

	return nil
}

// Dispatched returns the messages accepted by target contracts so far.
func (l *Ledger) Dispatched() []Dispatch {
	return slices.Clone(l.dispatched)
}

// Execute delivers msg from sender. Messages to a pre-propose module are propose requests.
// Sub messages returned by a timelock are dispatched in order
// once the timelock request completes; a failing sub message that asked for a reply is
// reported back instead of failing the whole request.
func (l *Ledger) Execute(ctx context.Context, sender string, msg types.ChainMsg) (*types.Response, error) {
	if fn, ok := l.targets[msg.To]; ok {
		if err := fn(ctx, sender, msg); err != nil {
			return nil, err
		}
		l.dispatched = append(l.dispatched, Dispatch{Sender: sender, Msg: msg})

		return types.NewResponse(), nil
	}

	if p, ok := l.prePropose[msg.To]; ok {
		handler, ok := p.(proposeHandler)
		if !ok {
			return nil, fmt.Errorf("%w: %s does not accept propose requests", subdao.ErrMessageUnsupported, msg.To)
		}

		return handler.HandleRawPropose(ctx, sender, msg.Data)
	}

	timelock, ok := l.timelocks[msg.To]
	if !ok {
		return nil, sdkerrors.NewNoSuchContractError(msg.To)
	}

	var execMsg types.TimelockExecuteMsg
	dec := json.NewDecoder(bytes.NewReader(msg.Data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&execMsg); err != nil {
		return nil, fmt.Errorf("%w: %w", subdao.ErrMessageUnsupported, err)
	}

	env := l.Env(msg.To)
	resp, err := timelock.HandleExecuteMsg(ctx, env, sender, execMsg)
	if err != nil {
		return nil, err
	}

	for _, sub := range resp.Messages {
		_, subErr := l.Execute(ctx, msg.To, sub.Msg)
		failed := subErr != nil
		if !sub.WantsReply(failed) {
			if failed {
				return nil, subErr
			}

			continue
		}

		reply := types.Reply{ID: sub.ID}
		if failed {
			reply.Err = subErr.Error()
		}
		if _, err := timelock.Reply(ctx, env, reply); err != nil {
			return nil, fmt.Errorf("reply to sub message %d: %w", sub.ID, err)
		}
	}

	return resp, nil
}

func (l *Ledger) TimelockConfig(ctx context.Context, timelock string) (*types.TimelockConfig, error) {
	t, ok := l.timelocks[timelock]
	if !ok {
		return nil, l.missing(timelock, "config")
	}

	return t.Config(ctx)
}

func (l *Ledger) TimelockProposal(
	ctx context.Context, timelock string, proposalID uint64,
) (*types.TimelockedProposal, error) {
	t, ok := l.timelocks[timelock]
	if !ok {
		return nil, l.missing(timelock, "proposal")
	}

	return t.Proposal(ctx, proposalID)
}

func (l *Ledger) SubDaoConfig(_ context.Context, addr string) (*types.SubDaoConfig, error) {
	core, ok := l.cores[addr]
	if !ok {
		return nil, l.missing(addr, "config")
	}
	cfg := core.Config

	return &cfg, nil
}

func (l *Ledger) ProposalModules(
	_ context.Context, addr string, startAfter *string, limit *uint32,
) ([]types.ProposalModule, error) {
	core, ok := l.cores[addr]
	if !ok {
		return nil, l.missing(addr, "proposal_modules")
	}

	return page(core.ProposalModules, func(m types.ProposalModule) string { return m.Address }, startAfter, limit, 0), nil
}

func (l *Ledger) ProposalCreationPolicy(_ context.Context, module string) (types.ProposalCreationPolicy, error) {
	m, ok := l.modules[module]
	if !ok {
		return types.ProposalCreationPolicy{}, l.missing(module, "proposal_creation_policy")
	}

	return m.Policy, nil
}

func (l *Ledger) Dao(_ context.Context, module string) (string, error) {
	m, ok := l.modules[module]
	if !ok {
		return "", l.missing(module, "dao")
	}

	return m.Dao, nil
}

func (l *Ledger) ProposalCount(_ context.Context, module string) (uint64, error) {
	m, ok := l.modules[module]
	if !ok {
		return 0, l.missing(module, "proposal_count")
	}

	return uint64(len(m.Proposals)), nil
}

func (l *Ledger) TimelockAddress(_ context.Context, prePropose string) (string, error) {
	p, ok := l.prePropose[prePropose]
	if !ok {
		return "", l.missing(prePropose, "timelock_address")
	}

	recorder, ok := p.(timelockRecorder)
	if !ok {
		return "", sdkerrors.NewUnsupportedQueryError(prePropose, "timelock_address")
	}

	return recorder.TimelockAddress()
}

func (l *Ledger) ProposalModule(_ context.Context, prePropose string) (string, error) {
	p, ok := l.prePropose[prePropose]
	if !ok {
		return "", l.missing(prePropose, "proposal_module")
	}

	return p.ProposalModule(), nil
}

func (l *Ledger) ListSubDaos(
	_ context.Context, mainDao string, startAfter *string, limit *uint32,
) ([]types.SubDao, error) {
	core, ok := l.cores[mainDao]
	if !ok {
		return nil, l.missing(mainDao, "list_sub_daos")
	}

	return page(core.SubDaos, func(s types.SubDao) string { return s.Addr }, startAfter, limit, l.RegistryLimit), nil
}

// missing reports a query against addr: a contract of another kind answers with an unsupported
// query error, an empty address with no such contract.
func (l *Ledger) missing(addr, query string) error {
	_, isCore := l.cores[addr]
	_, isModule := l.modules[addr]
	_, isPrePropose := l.prePropose[addr]
	_, isTimelock := l.timelocks[addr]
	_, isTarget := l.targets[addr]
	if isCore || isModule || isPrePropose || isTimelock || isTarget {
		return sdkerrors.NewUnsupportedQueryError(addr, query)
	}

	return sdkerrors.NewNoSuchContractError(addr)
}

// page returns the entries sorted by key after startAfter, at most limit of them (capped at
// maxLimit when it is not zero).
func page[T any](entries []T, key func(T) string, startAfter *string, limit *uint32, maxLimit uint32) []T {
	start := 0
	if startAfter != nil {
		start = len(entries)
		for i, e := range entries {
			if key(e) > *startAfter {
				start = i
				break
			}
		}
	}

	n := len(entries) - start
	if limit != nil && int(*limit) < n {
		n = int(*limit)
	}
	if maxLimit != 0 && int(maxLimit) < n {
		n = int(maxLimit)
	}

	return slices.Clone(entries[start : start+n])
}

type submitter struct {
	ledger *Ledger
	module string
}

func (s submitter) Submit(_ context.Context, proposal types.GovernanceProposal) (*types.Response, error) {
	m, ok := s.ledger.modules[s.module]
	if !ok {
		return nil, sdkerrors.NewNoSuchContractError(s.module)
	}
	m.Proposals = append(m.Proposals, proposal)

	return types.NewResponse().
		AddAttribute("action", "propose").
		AddAttribute("proposer", proposal.Proposer).
		AddUint64Attribute("proposal_id", uint64(len(m.Proposals))), nil
}
