package types

import (
	"bytes"
	"encoding/json"
	"errors"
)

var (
	// ErrEmptyMessage is returned when a message union has no variant set.
	ErrEmptyMessage = errors.New("message has no variant set")
	// ErrAmbiguousMessage is returned when a message union has more than one variant set.
	ErrAmbiguousMessage = errors.New("message has more than one variant set")
)

// TimelockProposalMsg asks the timelock to hold msgs under proposalID.
type TimelockProposalMsg struct {
	ProposalID uint64     `json:"proposal_id"`
	Msgs       []ChainMsg `json:"msgs"`
}

// ProposalIDMsg addresses a single timelocked proposal.
type ProposalIDMsg struct {
	ProposalID uint64 `json:"proposal_id"`
}

// TimelockExecuteMsg is the set of state changing requests a timelock accepts. Exactly one
// field is set.
type TimelockExecuteMsg struct {
	TimelockProposal *TimelockProposalMsg `json:"timelock_proposal,omitempty"`
	ExecuteProposal  *ProposalIDMsg       `json:"execute_proposal,omitempty"`
	OverruleProposal *ProposalIDMsg       `json:"overrule_proposal,omitempty"`
	UpdateConfig     *UpdateConfigMsg     `json:"update_config,omitempty"`
}

// Validate checks that exactly one variant is set.
func (m TimelockExecuteMsg) Validate() error {
	set := 0
	if m.TimelockProposal != nil {
		set++
	}
	if m.ExecuteProposal != nil {
		set++
	}
	if m.OverruleProposal != nil {
		set++
	}
	if m.UpdateConfig != nil {
		set++
	}

	switch set {
	case 0:
		return ErrEmptyMessage
	case 1:
		return nil
	default:
		return ErrAmbiguousMessage
	}
}

// ProposeOverrule asks the main DAO to veto proposalID held by the timelock at
// TimelockContract.
type ProposeOverrule struct {
	TimelockContract string `json:"timelock_contract" validate:"required"`
	ProposalID       uint64 `json:"proposal_id"`
}

// ProposeMessage is the propose request accepted by the overrule pre-propose module. The
// proposer is never part of it; it is taken from the verified sender.
type ProposeMessage struct {
	ProposeOverrule *ProposeOverrule `json:"propose_overrule,omitempty"`
}

// ParseProposeMessage strictly decodes a ProposeMessage. Unknown fields are rejected.
func ParseProposeMessage(b []byte) (ProposeMessage, error) {
	var msg ProposeMessage

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&msg); err != nil {
		return ProposeMessage{}, err
	}

	if msg.ProposeOverrule == nil {
		return ProposeMessage{}, ErrEmptyMessage
	}

	return msg, nil
}

// GovernanceProposal is a proposal submitted to a DAO voting flow.
type GovernanceProposal struct {
	Proposer    string     `json:"proposer" validate:"required"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Msgs        []ChainMsg `json:"msgs" validate:"dive"`
}

// NewWasmMsg encodes payload as the Data of a message sent to contract.
func NewWasmMsg(contract string, payload any) (ChainMsg, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return ChainMsg{}, err
	}

	return ChainMsg{To: contract, Data: data}, nil
}
