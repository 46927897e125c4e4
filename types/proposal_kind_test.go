package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gotest.tools/v3/assert"
)

func TestProposalCreationPolicy_JSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		give     string
		want     ProposalCreationPolicy
		wantAddr string
		wantErr  string
	}{
		{
			name: "anyone",
			give: `{"anyone":{}}`,
			want: AnyonePolicy(),
		},
		{
			name:     "module",
			give:     `{"module":{"addr":"neutron1preprop"}}`,
			want:     ModulePolicy("neutron1preprop"),
			wantAddr: "neutron1preprop",
		},
		{
			name:    "module without address",
			give:    `{"module":{"addr":""}}`,
			wantErr: "invalid proposal creation policy: module address must not be empty",
		},
		{
			name:    "no variant",
			give:    `{}`,
			wantErr: "invalid proposal creation policy: exactly one variant must be set",
		},
		{
			name:    "both variants",
			give:    `{"anyone":{},"module":{"addr":"neutron1preprop"}}`,
			wantErr: "invalid proposal creation policy: exactly one variant must be set",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var got ProposalCreationPolicy
			err := json.Unmarshal([]byte(tc.give), &got)
			if tc.wantErr != "" {
				assert.Error(t, err, tc.wantErr)
				return
			}
			assert.NilError(t, err)
			assert.DeepEqual(t, tc.want, got)

			addr, ok := got.ModuleAddr()
			assert.Equal(t, tc.wantAddr != "", ok)
			assert.Equal(t, tc.wantAddr, addr)

			b, err := json.Marshal(got)
			require.NoError(t, err)
			require.JSONEq(t, tc.give, string(b))
		})
	}
}

func TestProposalCreationPolicy_MarshalInvalid(t *testing.T) {
	t.Parallel()

	_, err := json.Marshal(ProposalCreationPolicy{Kind: "vote"})
	assert.ErrorContains(t, err, `invalid proposal creation policy: kind "vote"`)
}
