package sdkerrors

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by stores and queriers when a record does not exist.
var ErrNotFound = errors.New("not found")

// NoSuchContractError is returned by a host when a query or message targets an address with no
// contract behind it.
type NoSuchContractError struct {
	Address string
}

func (e *NoSuchContractError) Error() string {
	return fmt.Sprintf("no such contract: %s", e.Address)
}

func NewNoSuchContractError(address string) *NoSuchContractError {
	return &NoSuchContractError{Address: address}
}

// UnsupportedQueryError is returned when a contract does not answer the requested query.
type UnsupportedQueryError struct {
	Address string
	Query   string
}

func (e *UnsupportedQueryError) Error() string {
	return fmt.Sprintf("contract %s does not support query %s", e.Address, e.Query)
}

func NewUnsupportedQueryError(address, query string) *UnsupportedQueryError {
	return &UnsupportedQueryError{Address: address, Query: query}
}
