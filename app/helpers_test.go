package app

import (
	"github.com/iov-one/nftswap"
)

// testMsg routes by a free form path. The path is its whole serialization.
type testMsg struct {
	path string
}

func (m *testMsg) Path() string             { return m.path }
func (m *testMsg) Validate() error          { return nil }
func (m *testMsg) Marshal() ([]byte, error) { return []byte(m.path), nil }
func (m *testMsg) Unmarshal(b []byte) error { m.path = string(b); return nil }

type testTx struct {
	msg *testMsg
}

func (tx *testTx) GetMsg() (nftswap.Msg, error) { return tx.msg, nil }
func (tx *testTx) Marshal() ([]byte, error)     { return tx.msg.Marshal() }
func (tx *testTx) Unmarshal(b []byte) error {
	tx.msg = &testMsg{}
	return tx.msg.Unmarshal(b)
}

func decodeTestTx(raw []byte) (nftswap.Tx, error) {
	var tx testTx
	if err := tx.Unmarshal(raw); err != nil {
		return nil, err
	}
	return &tx, nil
}

// writeHandler stores its message path under the given key.
type writeHandler struct {
	key []byte
}

func (h writeHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	return &nftswap.CheckResult{GasAllocated: 10}, nil
}

func (h writeHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	if err := db.Set(h.key, []byte(nftswap.GetPath(tx))); err != nil {
		return nil, err
	}
	return &nftswap.DeliverResult{Data: h.key}, nil
}

// countingDecorator counts calls in and out of the wrapped handler.
type countingDecorator struct {
	count *int
}

func newCountingDecorator() countingDecorator {
	return countingDecorator{count: new(int)}
}

func (d countingDecorator) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx, next nftswap.Checker) (*nftswap.CheckResult, error) {
	*d.count++
	defer func() { *d.count++ }()
	return next.Check(ctx, db, tx)
}

func (d countingDecorator) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx, next nftswap.Deliverer) (*nftswap.DeliverResult, error) {
	*d.count++
	defer func() { *d.count++ }()
	return next.Deliver(ctx, db, tx)
}

// panicDecorator panics for every call made at or above the given height.
type panicDecorator struct {
	height int64
}

func (d panicDecorator) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx, next nftswap.Checker) (*nftswap.CheckResult, error) {
	d.maybePanic(ctx)
	return next.Check(ctx, db, tx)
}

func (d panicDecorator) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx, next nftswap.Deliverer) (*nftswap.DeliverResult, error) {
	d.maybePanic(ctx)
	return next.Deliver(ctx, db, tx)
}

func (d panicDecorator) maybePanic(ctx nftswap.Context) {
	if h, ok := nftswap.GetHeight(ctx); ok && h >= d.height {
		panic("too high")
	}
}
