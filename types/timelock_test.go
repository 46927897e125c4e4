package types

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseProposalStatus(t *testing.T) {
	t.Parallel()

	for s, want := range StringToProposalStatus {
		got, err := ParseProposalStatus(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, s, got.String())
	}

	_, err := ParseProposalStatus("Executed")
	require.EqualError(t, err, `unknown proposal status: "Executed"`)
}

func Test_ProposalStatus_IsTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, ProposalStatusTimelocked.IsTerminal())
	assert.True(t, ProposalStatusExecuted.IsTerminal())
	assert.True(t, ProposalStatusExecutionFailed.IsTerminal())
	assert.True(t, ProposalStatusOverruled.IsTerminal())
}

func Test_ProposalStatus_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    string
		want    ProposalStatus
		wantErr string
	}{
		{name: "timelocked", give: `"timelocked"`, want: ProposalStatusTimelocked},
		{name: "execution failed", give: `"execution_failed"`, want: ProposalStatusExecutionFailed},
		{name: "unknown", give: `"vetoed"`, wantErr: `unknown proposal status: "vetoed"`},
		{name: "not a string", give: `1`, wantErr: "json: cannot unmarshal number into Go value of type string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got ProposalStatus
			err := json.Unmarshal([]byte(tt.give), &got)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_TimelockedProposal_ExecutableAt(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := TimelockedProposal{ID: 1, TimelockTS: ts, Status: ProposalStatusTimelocked}

	assert.Equal(t, ts, p.ExecutableAt(0))
	assert.Equal(t, ts.Add(10*time.Second), p.ExecutableAt(10))
	assert.Equal(t, ts.Add(72*time.Hour), p.ExecutableAt(259200))

	// no wrap around into the past
	assert.True(t, p.ExecutableAt(MaxDelaySeconds).After(ts))
	assert.True(t, p.ExecutableAt(MaxDelaySeconds+1).After(p.ExecutableAt(MaxDelaySeconds)))
	assert.True(t, p.ExecutableAt(math.MaxUint64).After(p.ExecutableAt(MaxDelaySeconds+1)))
}

func Test_TimelockedProposal_Executable(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := TimelockedProposal{ID: 1, TimelockTS: ts, Status: ProposalStatusTimelocked}

	tests := []struct {
		name     string
		giveNow  time.Time
		giveSecs uint64
		want     bool
	}{
		{name: "no delay", giveNow: ts, giveSecs: 0, want: true},
		{name: "before the lock", giveNow: ts.Add(-time.Second), giveSecs: 0, want: false},
		{name: "one second early", giveNow: ts.Add(9 * time.Second), giveSecs: 10, want: false},
		{name: "at the boundary", giveNow: ts.Add(10 * time.Second), giveSecs: 10, want: true},
		{name: "longest delay not elapsed", giveNow: ts.Add(time.Second), giveSecs: MaxDelaySeconds, want: false},
		{name: "longest delay elapsed", giveNow: ts.Add(time.Duration(MaxDelaySeconds) * time.Second), giveSecs: MaxDelaySeconds, want: true},
		{name: "delay above the longest", giveNow: ts.Add(time.Second), giveSecs: MaxDelaySeconds + 1, want: false},
		{name: "max uint64 delay", giveNow: ts.Add(time.Duration(math.MaxInt64)), giveSecs: math.MaxUint64, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, p.Executable(tt.giveNow, tt.giveSecs))
		})
	}
}

func Test_TimelockedProposal_JSON(t *testing.T) {
	t.Parallel()

	p := TimelockedProposal{
		ID:         10,
		TimelockTS: time.Date(2024, 1, 1, 0, 0, 10, 0, time.UTC),
		Msgs:       []ChainMsg{{To: "neutron1target", Data: []byte{0xca, 0xfe}}},
		Status:     ProposalStatusExecutionFailed,
	}

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 10,
		"timelock_ts": "2024-01-01T00:00:10Z",
		"msgs": [{"to": "neutron1target", "data": "0xcafe"}],
		"status": "execution_failed"
	}`, string(b))
}
