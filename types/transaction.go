package types

import (
	"strconv"
	"time"
)

// Env is the ledger environment a request is processed in.
type Env struct {
	BlockHeight uint64    `json:"block_height"`
	BlockTime   time.Time `json:"block_time"`
	// Contract is the address of the contract handling the request.
	Contract string `json:"contract"`
}

// Attribute is a key/value pair of an acknowledgement record.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// NewAttribute creates an Attribute.
func NewAttribute(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Response is the acknowledgement of a state changing request. Messages are dispatched by the
// host after the request commits.
type Response struct {
	Attributes []Attribute `json:"attributes"`
	Messages   []SubMsg    `json:"messages"`
}

// NewResponse returns an empty Response.
func NewResponse() *Response {
	return &Response{Attributes: []Attribute{}, Messages: []SubMsg{}}
}

// AddAttribute appends an attribute and returns the response for chaining.
func (r *Response) AddAttribute(key, value string) *Response {
	r.Attributes = append(r.Attributes, NewAttribute(key, value))

	return r
}

// AddUint64Attribute appends a decimal attribute.
func (r *Response) AddUint64Attribute(key string, value uint64) *Response {
	return r.AddAttribute(key, strconv.FormatUint(value, 10))
}

// AddSubMsg appends a sub message.
func (r *Response) AddSubMsg(msg SubMsg) *Response {
	r.Messages = append(r.Messages, msg)

	return r
}

// Attribute returns the value of the first attribute with key.
func (r *Response) Attribute(key string) (string, bool) {
	for _, a := range r.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}

	return "", false
}
