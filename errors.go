package subdao

import (
	"errors"
	"fmt"
	"time"

	sdkerrors "github.com/smartcontractkit/subdao/sdk/errors"
	"github.com/smartcontractkit/subdao/types"
)

var (
	// ErrUnauthorized is returned when the sender is not allowed to perform a gated action.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrConfigNotFound is returned when the timelock has not been instantiated.
	ErrConfigNotFound = fmt.Errorf("timelock config %w", sdkerrors.ErrNotFound)

	// ErrProposalTimelocked is returned when a proposal is executed before its delay elapsed.
	ErrProposalTimelocked = errors.New("proposal is timelocked")

	// ErrSubdaoMisconfigured is returned when the subDAO does not corroborate the claimed
	// timelock through its own proposal module.
	ErrSubdaoMisconfigured = errors.New("subdao is misconfigured")

	// ErrForbiddenSubdao is returned when the subDAO is not registered under the main DAO.
	ErrForbiddenSubdao = errors.New("subdao is not registered under the main dao")

	// ErrProposalWrongState is returned when an overrule targets a proposal that is no longer
	// timelocked.
	ErrProposalWrongState = errors.New("proposal is in the wrong state to be overruled")

	// ErrMessageUnsupported is returned for request shapes an entry point does not accept.
	ErrMessageUnsupported = errors.New("message unsupported")

	// ErrMultipleTimelockModules is returned when a pre-propose module is asked to record a
	// second timelock.
	ErrMultipleTimelockModules = errors.New("multiple timelock modules are not allowed")

	// ErrTimelockModuleNotSet is returned when a pre-propose module has no timelock yet.
	ErrTimelockModuleNotSet = errors.New("timelock module is not set")

	// ErrRegistryCursorStalled is returned when a registry page does not move the cursor.
	ErrRegistryCursorStalled = errors.New("subdao registry cursor did not advance")

	// ErrRegistryWalkExhausted is returned when the registry walk runs out of pages to fetch.
	ErrRegistryWalkExhausted = errors.New("subdao registry walk exceeded the page limit")
)

// ProposalNotFoundError is returned when a proposal ID is not stored by the timelock.
type ProposalNotFoundError struct {
	ProposalID uint64
}

// NewProposalNotFoundError creates a new ProposalNotFoundError.
func NewProposalNotFoundError(id uint64) *ProposalNotFoundError {
	return &ProposalNotFoundError{ProposalID: id}
}

func (e *ProposalNotFoundError) Error() string {
	return fmt.Sprintf("proposal %d not found", e.ProposalID)
}

// Unwrap lets errors.Is match sdkerrors.ErrNotFound.
func (e *ProposalNotFoundError) Unwrap() error {
	return sdkerrors.ErrNotFound
}

// ProposalExistsError is returned when a proposal ID is timelocked a second time.
type ProposalExistsError struct {
	ProposalID uint64
}

// NewProposalExistsError creates a new ProposalExistsError.
func NewProposalExistsError(id uint64) *ProposalExistsError {
	return &ProposalExistsError{ProposalID: id}
}

func (e *ProposalExistsError) Error() string {
	return fmt.Sprintf("proposal %d is already timelocked", e.ProposalID)
}

// WrongProposalStatusError is returned when an action requires a status the proposal is not in.
type WrongProposalStatusError struct {
	Status types.ProposalStatus
}

// NewWrongProposalStatusError creates a new WrongProposalStatusError.
func NewWrongProposalStatusError(status types.ProposalStatus) *WrongProposalStatusError {
	return &WrongProposalStatusError{Status: status}
}

func (e *WrongProposalStatusError) Error() string {
	return fmt.Sprintf("wrong proposal status (%s)", e.Status)
}

// ProposalTimelockedError is returned when a proposal is executed before ExecutableAt.
type ProposalTimelockedError struct {
	ProposalID   uint64
	ExecutableAt time.Time
}

// NewProposalTimelockedError creates a new ProposalTimelockedError.
func NewProposalTimelockedError(id uint64, executableAt time.Time) *ProposalTimelockedError {
	return &ProposalTimelockedError{ProposalID: id, ExecutableAt: executableAt}
}

func (e *ProposalTimelockedError) Error() string {
	return fmt.Sprintf("%s: proposal %d can be executed at %s",
		ErrProposalTimelocked, e.ProposalID, e.ExecutableAt.UTC().Format(time.RFC3339))
}

// Unwrap lets errors.Is match ErrProposalTimelocked.
func (e *ProposalTimelockedError) Unwrap() error {
	return ErrProposalTimelocked
}

// NoSuchProposalError is returned when an execution outcome is tagged with an unknown proposal
// ID. It points at a dispatch bug, not at a business failure.
type NoSuchProposalError struct {
	ProposalID uint64
}

// NewNoSuchProposalError creates a new NoSuchProposalError.
func NewNoSuchProposalError(id uint64) *NoSuchProposalError {
	return &NoSuchProposalError{ProposalID: id}
}

func (e *NoSuchProposalError) Error() string {
	return fmt.Sprintf("no such proposal (%d)", e.ProposalID)
}
