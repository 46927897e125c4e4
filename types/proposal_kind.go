package types //nolint:revive

import (
	"encoding/json"
	"errors"
	"fmt"
)

// PolicyKind names the variant of a ProposalCreationPolicy.
type PolicyKind string

const (
	// PolicyAnyone lets any address create proposals directly.
	PolicyAnyone PolicyKind = "anyone"
	// PolicyModule delegates proposal creation to a pre-propose module.
	PolicyModule PolicyKind = "module"
)

// ErrInvalidPolicy is returned for a proposal creation policy that is malformed or sets no single variant.
var ErrInvalidPolicy = errors.New("invalid proposal creation policy")

// ProposalCreationPolicy describes who may submit proposals to a proposal module.
//
// JSON form is either {"anyone":{}} or {"module":{"addr":"..."}}.
type ProposalCreationPolicy struct {
	Kind PolicyKind
	// Addr is the pre-propose module address. Only set for PolicyModule.
	Addr string
}

// AnyonePolicy returns the open submission policy.
func AnyonePolicy() ProposalCreationPolicy {
	return ProposalCreationPolicy{Kind: PolicyAnyone}
}

// ModulePolicy returns the policy delegating to the pre-propose module at addr.
func ModulePolicy(addr string) ProposalCreationPolicy {
	return ProposalCreationPolicy{Kind: PolicyModule, Addr: addr}
}

// ModuleAddr returns the pre-propose module address if the policy is the module variant.
func (p ProposalCreationPolicy) ModuleAddr() (string, bool) {
	if p.Kind != PolicyModule || p.Addr == "" {
		return "", false
	}

	return p.Addr, true
}

type policyModuleJSON struct {
	Addr string `json:"addr"`
}

type policyJSON struct {
	Anyone *struct{}         `json:"anyone,omitempty"`
	Module *policyModuleJSON `json:"module,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (p ProposalCreationPolicy) MarshalJSON() ([]byte, error) {
	switch p.Kind {
	case PolicyAnyone:
		return json.Marshal(policyJSON{Anyone: &struct{}{}})
	case PolicyModule:
		return json.Marshal(policyJSON{Module: &policyModuleJSON{Addr: p.Addr}})
	default:
		return nil, fmt.Errorf("%w: kind %q", ErrInvalidPolicy, p.Kind)
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *ProposalCreationPolicy) UnmarshalJSON(b []byte) error {
	var v policyJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch {
	case v.Anyone != nil && v.Module == nil:
		*p = AnyonePolicy()
	case v.Module != nil && v.Anyone == nil:
		if v.Module.Addr == "" {
			return fmt.Errorf("%w: module address must not be empty", ErrInvalidPolicy)
		}
		*p = ModulePolicy(v.Module.Addr)
	default:
		return fmt.Errorf("%w: exactly one variant must be set", ErrInvalidPolicy)
	}

	return nil
}
