package weavetest

import (
	"encoding/binary"
	"sync/atomic"
	"testing"

	"github.com/iov-one/nftswap"
)

var condSeq uint64

// NewCondition returns a unique signature condition. Each call returns a
// different value.
func NewCondition() nftswap.Condition {
	data := make([]byte, 8)
	binary.BigEndian.PutUint64(data, atomic.AddUint64(&condSeq, 1))
	return nftswap.NewCondition("test", "seq", data)
}

// ParseAddress takes an address in a human readable format and returns
// its binary representation, failing the test on error.
func ParseAddress(t testing.TB, encodedAddress string) nftswap.Address {
	t.Helper()

	addr, err := nftswap.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}

// Tx represents a transaction with a single message.
type Tx struct {
	// Msg is the message that is to be processed by this transaction.
	Msg nftswap.Msg
	// Err if set is returned by any method call.
	Err error
}

var _ nftswap.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (nftswap.Msg, error) {
	return tx.Msg, tx.Err
}

func (tx *Tx) Unmarshal([]byte) error {
	panic("not implemented")
}

func (tx *Tx) Marshal() ([]byte, error) {
	panic("not implemented")
}

// Handler is a mock counting its calls and returning the configured
// results.
type Handler struct {
	checkCall   int
	CheckResult nftswap.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult nftswap.DeliverResult
	DeliverErr    error
}

var _ nftswap.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
