// Package chaintest holds the addresses and block environment shared by the governance tests.
package chaintest

import (
	"time"

	"github.com/smartcontractkit/subdao/types"
)

const (
	MainDaoCoreAddr           = "neutron1maindaocore"
	MainDaoProposalModuleAddr = "neutron1maindaoproposalmodule"
	OverrulePreProposeAddr    = "neutron1overrulepreprop"

	SubdaoCoreAddr           = "neutron1subdaocore"
	SubdaoProposalModuleAddr = "neutron1subdaoproposalmodule"
	SubdaoPreProposeAddr     = "neutron1subdaopreprop"
	TimelockAddr             = "neutron1subdaotimelock"

	// OwnerAddr owns the timelock. In a deployment it is the main DAO core.
	OwnerAddr = "owner"

	// TargetAddr accepts every message dispatched to it.
	TargetAddr = "neutron1target"
	// FailingTargetAddr rejects every message dispatched to it.
	FailingTargetAddr = "neutron1failingtarget"

	UnknownAddr = "neutron1unknown"
)

// GenesisTime is the block time of the first block of every test ledger.
var GenesisTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// EnvAt returns the environment of contract at genesis plus offset seconds.
func EnvAt(contract string, offset uint64) types.Env {
	return types.Env{
		BlockHeight: 1 + offset/6,
		BlockTime:   GenesisTime.Add(time.Duration(offset) * time.Second),
		Contract:    contract,
	}
}
