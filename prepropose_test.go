package subdao

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/subdao/internal/testutils/chaintest"
	"github.com/smartcontractkit/subdao/sdk/mocks"
	"github.com/smartcontractkit/subdao/types"
)

func Test_PrePropose_SetTimelockModule(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := NewPrePropose(chaintest.SubdaoProposalModuleAddr, mocks.NewQuerier(t))
	assert.Equal(t, chaintest.SubdaoProposalModuleAddr, p.ProposalModule())

	_, err := p.TimelockAddress()
	require.ErrorIs(t, err, ErrTimelockModuleNotSet)

	_, err = p.SetTimelockModule(ctx, "")
	require.ErrorIs(t, err, ErrTimelockModuleNotSet)

	resp, err := p.SetTimelockModule(ctx, chaintest.TimelockAddr)
	require.NoError(t, err)
	assert.Equal(t, attrs("timelock_module_addr", chaintest.TimelockAddr), resp.Attributes)

	_, err = p.SetTimelockModule(ctx, "neutron1secondtimelock")
	require.ErrorIs(t, err, ErrMultipleTimelockModules)

	got, err := p.TimelockAddress()
	require.NoError(t, err)
	assert.Equal(t, chaintest.TimelockAddr, got)
}

func Test_PrePropose_Propose(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tests := []struct {
		name     string
		timelock string
		setup    func(q *mocks.Querier)
		wantData string
		wantErr  string
	}{
		{
			name:     "success",
			timelock: chaintest.TimelockAddr,
			setup: func(q *mocks.Querier) {
				q.EXPECT().ProposalCount(ctx, chaintest.SubdaoProposalModuleAddr).Return(uint64(4), nil).Once()
			},
			wantData: `{"timelock_proposal":{"proposal_id":5,"msgs":[{"to":"neutron1target","data":"0x01"}]}}`,
		},
		{
			name:    "failure: no timelock recorded",
			setup:   func(*mocks.Querier) {},
			wantErr: "timelock module is not set",
		},
		{
			name:     "failure: proposal count query fails",
			timelock: chaintest.TimelockAddr,
			setup: func(q *mocks.Querier) {
				q.EXPECT().ProposalCount(ctx, chaintest.SubdaoProposalModuleAddr).
					Return(uint64(0), errors.New("out of gas")).Once()
			},
			wantErr: "unable to query proposal count of neutron1subdaoproposalmodule: out of gas",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			querier := mocks.NewQuerier(t)
			tt.setup(querier)
			p := NewPrePropose(chaintest.SubdaoProposalModuleAddr, querier)
			if tt.timelock != "" {
				_, err := p.SetTimelockModule(ctx, tt.timelock)
				require.NoError(t, err)
			}

			msgs := []types.ChainMsg{{To: chaintest.TargetAddr, Data: []byte{0x01}}}
			got, err := p.Propose(ctx, "neutron1member", "Raise limits", "Raise the bridge limits", msgs)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "neutron1member", got.Proposer)
			assert.Equal(t, "Raise limits", got.Title)
			assert.Equal(t, "Raise the bridge limits", got.Description)
			require.Len(t, got.Msgs, 1)
			assert.Equal(t, tt.timelock, got.Msgs[0].To)
			assert.JSONEq(t, tt.wantData, string(got.Msgs[0].Data))
		})
	}
}
