package utils

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
)

// Savepoint will isolate all data inside of the call,
// and commit/rollback to savepoint based on if error
type Savepoint struct {
	onCheck   bool
	onDeliver bool
}

var _ nftswap.Decorator = Savepoint{}

// NewSavepoint creates a Savepoint decorator,
// but you must call OnCheck/OnDeliver so it will be triggered
func NewSavepoint() Savepoint {
	return Savepoint{}
}

// OnCheck returns a savepoint that will trigger on CheckTx
func (s Savepoint) OnCheck() Savepoint {
	s.onCheck = true
	return s
}

// OnDeliver returns a savepoint that will trigger on DeliverTx
func (s Savepoint) OnDeliver() Savepoint {
	s.onDeliver = true
	return s
}

// Check will optionally set a checkpoint
func (s Savepoint) Check(ctx nftswap.Context, store nftswap.KVStore, tx nftswap.Tx, next nftswap.Checker) (*nftswap.CheckResult, error) {
	cstore, ok := store.(nftswap.CacheableKVStore)
	if !s.onCheck || !ok {
		return next.Check(ctx, store, tx)
	}

	cache := cstore.CacheWrap()
	res, err := next.Check(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "writing savepoint")
	}
	return res, nil
}

// Deliver will optionally set a checkpoint
func (s Savepoint) Deliver(ctx nftswap.Context, store nftswap.KVStore, tx nftswap.Tx, next nftswap.Deliverer) (*nftswap.DeliverResult, error) {
	cstore, ok := store.(nftswap.CacheableKVStore)
	if !s.onDeliver || !ok {
		return next.Deliver(ctx, store, tx)
	}

	cache := cstore.CacheWrap()
	res, err := next.Deliver(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "writing savepoint")
	}
	return res, nil
}
