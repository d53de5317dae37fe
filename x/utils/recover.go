package utils

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
)

// Recovery is a decorator to recover from panics in transactions,
// so we can log them as errors
type Recovery struct{}

var _ nftswap.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (r Recovery) Check(ctx nftswap.Context, store nftswap.KVStore, tx nftswap.Tx, next nftswap.Checker) (_ *nftswap.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors
func (r Recovery) Deliver(ctx nftswap.Context, store nftswap.KVStore, tx nftswap.Tx, next nftswap.Deliverer) (_ *nftswap.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
