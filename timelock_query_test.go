package subdao

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/subdao/internal/testutils/chaintest"
	"github.com/smartcontractkit/subdao/types"
)

func Test_Timelock_Config(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	timelock, _ := newTestTimelock(t, nil)
	_, err := timelock.Config(ctx)
	require.ErrorIs(t, err, ErrConfigNotFound)

	cfg := testConfig
	cfg.TimelockDuration = 20
	timelock, _ = newTestTimelock(t, &cfg)
	got, err := timelock.Config(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg, *got)
}

func Test_Timelock_Proposal(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	timelock, _ := newTestTimelock(t, &testConfig, numberedProposals(100)...)

	for i := uint64(1); i <= 100; i++ {
		got, err := timelock.Proposal(ctx, i)
		require.NoError(t, err)
		assert.Equal(t, numberedProposal(i), *got)
	}

	_, err := timelock.Proposal(ctx, 101)
	require.EqualError(t, err, "proposal 101 not found")
}

func Test_Timelock_ListProposals(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ptr := func(v uint64) *uint64 { return &v }

	tests := []struct {
		name       string
		startAfter *uint64
		limit      *uint64
		wantFirst  uint64
		wantLen    int
	}{
		{name: "default limit", wantFirst: 1, wantLen: DefaultLimit},
		{name: "zero limit means default", limit: ptr(0), wantFirst: 1, wantLen: DefaultLimit},
		{name: "explicit limit", limit: ptr(10), wantFirst: 1, wantLen: 10},
		{name: "max limit", limit: ptr(100), wantFirst: 1, wantLen: 100},
		{name: "limit above max is clamped", limit: ptr(1000), wantFirst: 1, wantLen: MaxLimit},
		{name: "start after", startAfter: ptr(50), wantFirst: 51, wantLen: DefaultLimit},
		{name: "start after near the end", startAfter: ptr(90), wantFirst: 91, wantLen: 10},
		{name: "start after the last", startAfter: ptr(100), wantLen: 0},
	}

	timelock, _ := newTestTimelock(t, &testConfig, numberedProposals(100)...)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := timelock.ListProposals(ctx, tt.startAfter, tt.limit)
			require.NoError(t, err)
			require.NotNil(t, got.Proposals)
			require.Len(t, got.Proposals, tt.wantLen)

			for i, p := range got.Proposals {
				assert.Equal(t, numberedProposal(tt.wantFirst+uint64(i)), p)
			}
		})
	}
}

func Test_Timelock_ListProposals_Empty(t *testing.T) {
	t.Parallel()

	timelock, _ := newTestTimelock(t, &testConfig)

	got, err := timelock.ListProposals(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []types.TimelockedProposal{}, got.Proposals)
}

func numberedProposal(i uint64) types.TimelockedProposal {
	return types.TimelockedProposal{
		ID:         i,
		TimelockTS: chaintest.GenesisTime,
		Msgs: []types.ChainMsg{{
			To:   chaintest.TargetAddr,
			Data: []byte(fmt.Sprintf(`{"remove_interchain_query":{"query_id":%d}}`, i)),
		}},
		Status: types.ProposalStatusTimelocked,
	}
}

func numberedProposals(n uint64) []types.TimelockedProposal {
	out := make([]types.TimelockedProposal, 0, n)
	for i := uint64(1); i <= n; i++ {
		out = append(out, numberedProposal(i))
	}

	return out
}
