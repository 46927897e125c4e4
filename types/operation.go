package types

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Coin is an amount of a native denomination attached to a message.
type Coin struct {
	Denom  string `json:"denom" validate:"required"`
	Amount string `json:"amount" validate:"required,numeric"`
}

// ChainMsg is an opaque chain message. The timelock never inspects Data, it only stores and
// dispatches it.
type ChainMsg struct {
	// To is the address of the contract the message is executed against.
	To    string        `json:"to" validate:"required"`
	Data  hexutil.Bytes `json:"data"`
	Funds []Coin        `json:"funds,omitempty" validate:"omitempty,dive"`
}

// ReplyOn selects which sub-call outcomes are reported back to the dispatching contract.
type ReplyOn string

const (
	ReplyNever   ReplyOn = "never"
	ReplyError   ReplyOn = "error"
	ReplySuccess ReplyOn = "success"
	ReplyAlways  ReplyOn = "always"
)

// SubMsg is a message dispatched by a contract as an independent sub-call. ID is the
// correlation tag carried back in the Reply.
type SubMsg struct {
	ID      uint64   `json:"id"`
	Msg     ChainMsg `json:"msg"`
	ReplyOn ReplyOn  `json:"reply_on"`
}

// NewReplyOnError wraps msg so that only a failure is reported back, tagged with id.
func NewReplyOnError(msg ChainMsg, id uint64) SubMsg {
	return SubMsg{ID: id, Msg: msg, ReplyOn: ReplyError}
}

// WantsReply reports whether an outcome (failed or not) must be delivered for this sub-call.
func (m SubMsg) WantsReply(failed bool) bool {
	switch m.ReplyOn {
	case ReplyAlways:
		return true
	case ReplyError:
		return failed
	case ReplySuccess:
		return !failed
	default:
		return false
	}
}

// Reply is the asynchronous outcome of a sub-call. An empty Err is a success.
type Reply struct {
	ID  uint64 `json:"id"`
	Err string `json:"error,omitempty"`
}

// Failed reports whether the sub-call failed.
func (r Reply) Failed() bool {
	return r.Err != ""
}
