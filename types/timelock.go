package types

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

const (
	// MaxDelaySeconds is the longest delay expressible as a time.Duration.
	MaxDelaySeconds = uint64(math.MaxInt64 / int64(time.Second))

	// maxExecutableAtSeconds caps the offset ExecutableAt adds so the result never wraps.
	maxExecutableAtSeconds = uint64(1 << 62)
)

// ProposalStatus is the lifecycle state of a timelocked proposal.
type ProposalStatus string

const (
	// ProposalStatusTimelocked is the only non-terminal status. A proposal waits in it until it
	// is executed or overruled.
	ProposalStatusTimelocked ProposalStatus = "timelocked"
	// ProposalStatusExecuted is set optimistically when the proposal messages are dispatched.
	ProposalStatusExecuted ProposalStatus = "executed"
	// ProposalStatusExecutionFailed is set when a dispatched message reports a failure.
	ProposalStatusExecutionFailed ProposalStatus = "execution_failed"
	// ProposalStatusOverruled is set when the owner vetoes the proposal.
	ProposalStatusOverruled ProposalStatus = "overruled"
)

// StringToProposalStatus converts a string to a ProposalStatus.
var StringToProposalStatus = map[string]ProposalStatus{
	"timelocked":       ProposalStatusTimelocked,
	"executed":         ProposalStatusExecuted,
	"execution_failed": ProposalStatusExecutionFailed,
	"overruled":        ProposalStatusOverruled,
}

// String implements fmt.Stringer.
func (s ProposalStatus) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition out of the status is allowed.
func (s ProposalStatus) IsTerminal() bool {
	return s != ProposalStatusTimelocked
}

// ParseProposalStatus parses the snake_case name of a status.
func ParseProposalStatus(s string) (ProposalStatus, error) {
	status, ok := StringToProposalStatus[s]
	if !ok {
		return "", fmt.Errorf("unknown proposal status: %q", s)
	}

	return status, nil
}

// UnmarshalJSON rejects unknown statuses.
func (s *ProposalStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	status, err := ParseProposalStatus(raw)
	if err != nil {
		return err
	}
	*s = status

	return nil
}

// TimelockedProposal is a proposal approved by a subDAO and held by its timelock.
type TimelockedProposal struct {
	// ID is assigned by the subDAO proposal module and is never regenerated by the timelock.
	ID uint64 `json:"id"`

	// TimelockTS is the block time at which the proposal entered the timelocked status.
	TimelockTS time.Time `json:"timelock_ts"`

	// Msgs are dispatched in order when the proposal is executed.
	Msgs []ChainMsg `json:"msgs"`

	Status ProposalStatus `json:"status"`
}

// ExecutableAt returns the first block time at which the proposal may be executed. Delays
// beyond MaxDelaySeconds are added in whole seconds and saturate far past any block time.
func (p TimelockedProposal) ExecutableAt(duration uint64) time.Time {
	if duration <= MaxDelaySeconds {
		return p.TimelockTS.Add(time.Duration(duration) * time.Second)
	}

	secs := p.TimelockTS.Unix() + int64(min(duration, maxExecutableAtSeconds))

	return time.Unix(secs, int64(p.TimelockTS.Nanosecond())).In(p.TimelockTS.Location())
}

// Executable reports whether duration seconds have elapsed between TimelockTS and now.
func (p TimelockedProposal) Executable(now time.Time, duration uint64) bool {
	if duration > MaxDelaySeconds {
		// the elapsed time of any two block times fits in a time.Duration
		return false
	}

	return now.Sub(p.TimelockTS) >= time.Duration(duration)*time.Second
}

// TimelockConfig is the singleton configuration of a timelock instance.
type TimelockConfig struct {
	// Owner may overrule proposals and update the config.
	Owner string `json:"owner" yaml:"owner" validate:"required"`

	// TimelockDuration is the number of seconds a proposal must wait before execution.
	TimelockDuration uint64 `json:"timelock_duration" yaml:"timelock_duration"`

	// Subdao is the only address allowed to timelock proposals. It is captured from the
	// instantiating module and never changes afterwards.
	Subdao string `json:"subdao" yaml:"subdao" validate:"required"`
}

// InstantiateMsg configures a new timelock.
type InstantiateMsg struct {
	Owner            string `json:"owner" validate:"required"`
	TimelockDuration uint64 `json:"timelock_duration"`
}

// UpdateConfigMsg updates the fields that are set and leaves the others unchanged.
type UpdateConfigMsg struct {
	Owner            *string `json:"owner,omitempty"`
	TimelockDuration *uint64 `json:"timelock_duration,omitempty"`
}

// ProposalListResponse is a page of timelocked proposals.
type ProposalListResponse struct {
	Proposals []TimelockedProposal `json:"proposals"`
}
