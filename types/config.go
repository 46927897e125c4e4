package types //nolint:revive

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a subDAO config misses a required field.
var ErrInvalidConfig = errors.New("invalid subDAO config")

// SubDao is an entry of the main DAO subDAO registry.
type SubDao struct {
	// Addr is the address of the subDAO core contract.
	Addr    string  `json:"addr"`
	Charter *string `json:"charter,omitempty"`
}

// SubDaoConfig is the configuration exposed by a subDAO core contract.
type SubDaoConfig struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	DaoURI      *string `json:"dao_uri,omitempty"`
	// MainDao is the address of the DAO the subDAO reports to.
	MainDao string `json:"main_dao"`
}

// Validate checks the fields every subDAO must expose.
func (c *SubDaoConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidConfig)
	}

	if c.MainDao == "" {
		return fmt.Errorf("%w: main DAO address must not be empty", ErrInvalidConfig)
	}

	return nil
}

// ProposalModuleStatus tells whether a proposal module still accepts proposals.
type ProposalModuleStatus string

const (
	ProposalModuleStatusEnabled  ProposalModuleStatus = "enabled"
	ProposalModuleStatusDisabled ProposalModuleStatus = "disabled"
)

// ProposalModule is a proposal module registered in a DAO core contract.
type ProposalModule struct {
	Address string               `json:"address"`
	Prefix  string               `json:"prefix"`
	Status  ProposalModuleStatus `json:"status"`
}
