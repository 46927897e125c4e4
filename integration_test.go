package subdao_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/subdao"
	cs "github.com/smartcontractkit/subdao/internal/testutils/chaintest"
	"github.com/smartcontractkit/subdao/internal/testutils/ledgersim"
	"github.com/smartcontractkit/subdao/sdk"
	"github.com/smartcontractkit/subdao/store"
	"github.com/smartcontractkit/subdao/types"
)

const (
	testDuration = 20
	memberAddr   = "neutron1member"
)

type governance struct {
	ledger     *ledgersim.Ledger
	prePropose *subdao.PrePropose
	validator  *subdao.OverruleValidator
}

// setupGovernance deploys a main DAO with an overrule pre-propose module and a registered
// subDAO whose timelock is owned by the main DAO core. Filler subDAOs are registered ahead of
// it so the registry walk spans several pages.
func setupGovernance(t *testing.T, s sdk.ProposalStore) *governance {
	t.Helper()
	ctx := context.Background()

	l := ledgersim.New(t)

	l.AddDaoCore(cs.MainDaoCoreAddr,
		types.SubDaoConfig{Name: "Neutron DAO", MainDao: cs.MainDaoCoreAddr},
		types.ProposalModule{Address: cs.MainDaoProposalModuleAddr, Status: types.ProposalModuleStatusEnabled},
	)
	l.AddProposalModule(cs.MainDaoProposalModuleAddr, cs.MainDaoCoreAddr, types.ModulePolicy(cs.OverrulePreProposeAddr))
	validator := subdao.NewOverruleValidator(cs.MainDaoProposalModuleAddr, l, l.Submitter(cs.MainDaoProposalModuleAddr))
	l.AddPrePropose(cs.OverrulePreProposeAddr, validator)

	l.AddDaoCore(cs.SubdaoCoreAddr,
		types.SubDaoConfig{Name: "Security", MainDao: cs.MainDaoCoreAddr},
		types.ProposalModule{Address: cs.SubdaoProposalModuleAddr, Status: types.ProposalModuleStatusEnabled},
	)
	l.AddProposalModule(cs.SubdaoProposalModuleAddr, cs.SubdaoCoreAddr, types.ModulePolicy(cs.SubdaoPreProposeAddr))
	prePropose := subdao.NewPrePropose(cs.SubdaoProposalModuleAddr, l)
	l.AddPrePropose(cs.SubdaoPreProposeAddr, prePropose)

	for i := range 25 {
		l.RegisterSubDao(cs.MainDaoCoreAddr, fmt.Sprintf("neutron1filler%02d", i))
	}
	l.RegisterSubDao(cs.MainDaoCoreAddr, cs.SubdaoCoreAddr)

	l.DeployTimelock(ctx, cs.TimelockAddr, cs.SubdaoPreProposeAddr, s, types.InstantiateMsg{
		Owner:            cs.MainDaoCoreAddr,
		TimelockDuration: testDuration,
	})

	return &governance{ledger: l, prePropose: prePropose, validator: validator}
}

// passSubdaoProposal creates a subDAO proposal carrying msgs and passes it, which timelocks it.
func (g *governance) passSubdaoProposal(t *testing.T, msgs ...types.ChainMsg) uint64 {
	t.Helper()
	ctx := context.Background()

	proposal, err := g.prePropose.Propose(ctx, memberAddr, "Send funds", "Routine transfer", msgs)
	require.NoError(t, err)

	resp, err := g.ledger.Submitter(cs.SubdaoProposalModuleAddr).Submit(ctx, *proposal)
	require.NoError(t, err)
	idAttr, ok := resp.Attribute("proposal_id")
	require.True(t, ok)

	var id uint64
	_, err = fmt.Sscan(idAttr, &id)
	require.NoError(t, err)

	require.NoError(t, g.ledger.PassProposal(ctx, cs.SubdaoProposalModuleAddr, id))

	return id
}

func (g *governance) status(t *testing.T, timelock string, id uint64) types.ProposalStatus {
	t.Helper()

	proposal, err := g.ledger.TimelockProposal(context.Background(), timelock, id)
	require.NoError(t, err)

	return proposal.Status
}

func executeMsg(t *testing.T, timelock string, id uint64) types.ChainMsg {
	t.Helper()

	msg, err := types.NewWasmMsg(timelock, types.TimelockExecuteMsg{
		ExecuteProposal: &types.ProposalIDMsg{ProposalID: id},
	})
	require.NoError(t, err)

	return msg
}

func TestGovernance_ExecuteAfterDelay(t *testing.T) {
	t.Parallel()

	sqlite, err := store.OpenSQLite(filepath.Join(t.TempDir(), "timelock.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })

	stores := map[string]sdk.ProposalStore{
		"memory": nil,
		"sqlite": sqlite,
	}

	for name, s := range stores {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()

			g := setupGovernance(t, s)
			transfer := types.ChainMsg{To: cs.TargetAddr, Data: []byte(`{"transfer":{}}`)}
			id := g.passSubdaoProposal(t, transfer)
			require.Equal(t, uint64(1), id)
			assert.Equal(t, types.ProposalStatusTimelocked, g.status(t, cs.TimelockAddr, id))

			g.ledger.Advance(testDuration - 1)
			_, err := g.ledger.Execute(ctx, memberAddr, executeMsg(t, cs.TimelockAddr, id))
			var timelocked *subdao.ProposalTimelockedError
			require.ErrorAs(t, err, &timelocked)
			assert.Empty(t, g.ledger.Dispatched())

			g.ledger.Advance(1)
			_, err = g.ledger.Execute(ctx, memberAddr, executeMsg(t, cs.TimelockAddr, id))
			require.NoError(t, err)
			assert.Equal(t, types.ProposalStatusExecuted, g.status(t, cs.TimelockAddr, id))
			assert.Equal(t, []ledgersim.Dispatch{{Sender: cs.TimelockAddr, Msg: transfer}}, g.ledger.Dispatched())

			_, err = g.ledger.Execute(ctx, memberAddr, executeMsg(t, cs.TimelockAddr, id))
			require.ErrorContains(t, err, "wrong proposal status (executed)")
		})
	}
}

func TestGovernance_ExecutionFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	g := setupGovernance(t, nil)
	id := g.passSubdaoProposal(t,
		types.ChainMsg{To: cs.TargetAddr, Data: []byte{0x01}},
		types.ChainMsg{To: cs.FailingTargetAddr, Data: []byte("first")},
		types.ChainMsg{To: cs.FailingTargetAddr, Data: []byte("second")},
	)

	g.ledger.Advance(testDuration)
	_, err := g.ledger.Execute(ctx, memberAddr, executeMsg(t, cs.TimelockAddr, id))
	require.NoError(t, err)

	assert.Equal(t, types.ProposalStatusExecutionFailed, g.status(t, cs.TimelockAddr, id))
	assert.Len(t, g.ledger.Dispatched(), 1)

	_, err = g.ledger.Execute(ctx, memberAddr, executeMsg(t, cs.TimelockAddr, id))
	require.ErrorContains(t, err, "wrong proposal status (execution_failed)")
}

func TestGovernance_Overrule(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	g := setupGovernance(t, nil)
	id := g.passSubdaoProposal(t, types.ChainMsg{To: cs.TargetAddr, Data: []byte{0x01}})

	request, err := types.NewWasmMsg(cs.OverrulePreProposeAddr, types.ProposeMessage{
		ProposeOverrule: &types.ProposeOverrule{TimelockContract: cs.TimelockAddr, ProposalID: id},
	})
	require.NoError(t, err)
	resp, err := g.ledger.Execute(ctx, memberAddr, request)
	require.NoError(t, err)
	proposer, _ := resp.Attribute("proposer")
	assert.Equal(t, memberAddr, proposer)

	overrule, ok := g.ledger.Proposal(cs.MainDaoProposalModuleAddr, 1)
	require.True(t, ok)
	assert.Equal(t, "Overrule proposal 1 of Security", overrule.Title)
	assert.Equal(t, memberAddr, overrule.Proposer)

	require.NoError(t, g.ledger.PassProposal(ctx, cs.MainDaoProposalModuleAddr, 1))
	assert.Equal(t, types.ProposalStatusOverruled, g.status(t, cs.TimelockAddr, id))

	g.ledger.Advance(testDuration)
	_, err = g.ledger.Execute(ctx, memberAddr, executeMsg(t, cs.TimelockAddr, id))
	require.ErrorContains(t, err, "wrong proposal status (overruled)")
	assert.Empty(t, g.ledger.Dispatched())

	_, err = g.validator.SubmitOverruleRequest(ctx, memberAddr, cs.TimelockAddr, id)
	require.ErrorIs(t, err, subdao.ErrProposalWrongState)
}

func TestGovernance_OverruleOnlyByOwner(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	g := setupGovernance(t, nil)
	id := g.passSubdaoProposal(t, types.ChainMsg{To: cs.TargetAddr})

	msg, err := types.NewWasmMsg(cs.TimelockAddr, types.TimelockExecuteMsg{
		OverruleProposal: &types.ProposalIDMsg{ProposalID: id},
	})
	require.NoError(t, err)

	_, err = g.ledger.Execute(ctx, cs.SubdaoCoreAddr, msg)
	require.ErrorIs(t, err, subdao.ErrUnauthorized)
	assert.Equal(t, types.ProposalStatusTimelocked, g.status(t, cs.TimelockAddr, id))
}

func TestGovernance_OverruleImpersonatingTimelock(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	const (
		fakeModule     = "neutron1fakeproposalmodule"
		fakePrePropose = "neutron1fakepreprop"
		fakeTimelock   = "neutron1faketimelock"
	)

	g := setupGovernance(t, nil)
	g.passSubdaoProposal(t, types.ChainMsg{To: cs.TargetAddr})

	// A timelock instantiated through a module claiming to belong to the registered subDAO.
	g.ledger.AddProposalModule(fakeModule, cs.SubdaoCoreAddr, types.ModulePolicy(fakePrePropose))
	g.ledger.AddPrePropose(fakePrePropose, subdao.NewPrePropose(fakeModule, g.ledger))
	fake := g.ledger.DeployTimelock(ctx, fakeTimelock, fakePrePropose, nil, types.InstantiateMsg{
		Owner:            cs.MainDaoCoreAddr,
		TimelockDuration: testDuration,
	})
	_, err := fake.LockProposal(ctx, g.ledger.Env(fakeTimelock), cs.SubdaoCoreAddr, 1, nil)
	require.NoError(t, err)

	_, err = g.validator.SubmitOverruleRequest(ctx, memberAddr, fakeTimelock, 1)
	require.ErrorIs(t, err, subdao.ErrSubdaoMisconfigured)

	_, ok := g.ledger.Proposal(cs.MainDaoProposalModuleAddr, 1)
	assert.False(t, ok)
}

func TestGovernance_OverruleUnregisteredSubdao(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	const (
		rogueCore       = "neutron1roguecore"
		rogueModule     = "neutron1rogueproposalmodule"
		roguePrePropose = "neutron1roguepreprop"
		rogueTimelock   = "neutron1roguetimelock"
	)

	g := setupGovernance(t, nil)

	g.ledger.AddDaoCore(rogueCore,
		types.SubDaoConfig{Name: "Rogue", MainDao: cs.MainDaoCoreAddr},
		types.ProposalModule{Address: rogueModule, Status: types.ProposalModuleStatusEnabled},
	)
	g.ledger.AddProposalModule(rogueModule, rogueCore, types.ModulePolicy(roguePrePropose))
	g.ledger.AddPrePropose(roguePrePropose, subdao.NewPrePropose(rogueModule, g.ledger))
	rogue := g.ledger.DeployTimelock(ctx, rogueTimelock, roguePrePropose, nil, types.InstantiateMsg{
		Owner:            cs.MainDaoCoreAddr,
		TimelockDuration: testDuration,
	})
	_, err := rogue.LockProposal(ctx, g.ledger.Env(rogueTimelock), rogueCore, 1, nil)
	require.NoError(t, err)

	_, err = g.validator.SubmitOverruleRequest(ctx, memberAddr, rogueTimelock, 1)
	require.ErrorIs(t, err, subdao.ErrForbiddenSubdao)
}

func TestGovernance_LockOnlyBySubdao(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	g := setupGovernance(t, nil)

	msg, err := types.NewWasmMsg(cs.TimelockAddr, types.TimelockExecuteMsg{
		TimelockProposal: &types.TimelockProposalMsg{ProposalID: 1},
	})
	require.NoError(t, err)

	_, err = g.ledger.Execute(ctx, memberAddr, msg)
	require.ErrorIs(t, err, subdao.ErrUnauthorized)

	_, err = g.ledger.Execute(ctx, cs.SubdaoCoreAddr, msg)
	require.NoError(t, err)

	_, err = g.ledger.Execute(ctx, cs.SubdaoCoreAddr, msg)
	var exists *subdao.ProposalExistsError
	require.ErrorAs(t, err, &exists)
}

func TestGovernance_UnsupportedProposeRequest(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	g := setupGovernance(t, nil)
	id := g.passSubdaoProposal(t, types.ChainMsg{To: cs.TargetAddr})

	tests := []struct {
		name string
		give types.ChainMsg
	}{
		{
			name: "proposer supplied by the caller",
			give: types.ChainMsg{To: cs.OverrulePreProposeAddr, Data: []byte(fmt.Sprintf(
				`{"propose_overrule":{"timelock_contract":%q,"proposal_id":%d,"proposer":"neutron1victim"}}`,
				cs.TimelockAddr, id))},
		},
		{
			name: "generic proposal",
			give: types.ChainMsg{To: cs.OverrulePreProposeAddr, Data: []byte(`{"propose":{"title":"t","msgs":[]}}`)},
		},
		{
			name: "subdao pre-propose module",
			give: types.ChainMsg{To: cs.SubdaoPreProposeAddr, Data: []byte(`{}`)},
		},
	}

	for _, tt := range tests {
		_, err := g.ledger.Execute(ctx, memberAddr, tt.give)
		require.ErrorIs(t, err, subdao.ErrMessageUnsupported, tt.name)
	}

	_, ok := g.ledger.Proposal(cs.MainDaoProposalModuleAddr, 1)
	assert.False(t, ok)
	assert.Equal(t, types.ProposalStatusTimelocked, g.status(t, cs.TimelockAddr, id))
}

func TestGovernance_UnsupportedMessage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	g := setupGovernance(t, nil)

	_, err := g.ledger.Execute(ctx, memberAddr, types.ChainMsg{
		To:   cs.TimelockAddr,
		Data: []byte(`{"propose":{"title":"t"}}`),
	})
	require.ErrorIs(t, err, subdao.ErrMessageUnsupported)

	_, err = g.ledger.Execute(ctx, memberAddr, types.ChainMsg{To: cs.TimelockAddr, Data: []byte(`{}`)})
	require.ErrorIs(t, err, subdao.ErrMessageUnsupported)
}
