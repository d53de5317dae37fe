package nftswap

import (
	"encoding/json"

	"github.com/tendermint/tendermint/libs/common"
)

// Handler is a core engine that can process a few specific messages
// This could represent "token transfer", or "fund an escrow"
type Handler interface {
	Checker
	Deliverer
}

// Checker is a subset of Handler to verify the validity of a transaction.
// It is its own interface to allow better type controls in the next
// arguments in Decorator
type Checker interface {
	Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer is a subset of Handler to execute a transaction.
// It is its own interface to allow better type controls in the next
// arguments in Decorator
type Deliverer interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Decorator wraps a Handler to provide common functionality
// like authentication, or logging, to many Handlers
type Decorator interface {
	Check(ctx Context, store KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, store KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Registry is an interface to register your handler,
// the setup side of a Router. Handlers are routed by the
// path of the message they process.
type Registry interface {
	Handle(m Msg, h Handler)
}

// CheckResult captures any non-error abci result
// to make sure people use error for error cases
type CheckResult struct {
	// Data is a machine-parseable return value, like id of created entity
	Data []byte
	// Log is human-readable informational string
	Log string
	// GasAllocated is the maximum units of work we allow this tx to perform
	GasAllocated int64
}

// NewCheck sets the gas used
func NewCheck(gasAllocated int64, log string) *CheckResult {
	return &CheckResult{
		Log:          log,
		GasAllocated: gasAllocated,
	}
}

// DeliverResult captures any non-error abci result
// to make sure people use error for error cases
type DeliverResult struct {
	// Data is a machine-parseable return value, like id of created entity
	Data []byte
	// Log is human-readable informational string
	Log string
	// Tags, if present, will be used by tendermint to index and search the
	// transaction history
	Tags []common.KVPair
	// GasUsed is the units of work this transaction consumed
	GasUsed int64
}

// Options are the app options
// Each extension can look up it's key and parse the json as desired
type Options map[string]json.RawMessage

// ReadOptions reads the values stored under a given key,
// and parses the json into the given obj.
// Returns an error if it cannot parse.
// Noop and no error if key is missing
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	return json.Unmarshal(msg, obj)
}

// Initializer implementations are used to initialize
// extensions from genesis file contents
type Initializer interface {
	FromGenesis(Options, KVStore) error
}
