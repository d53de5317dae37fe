/*
Package sigs provides basic authentication
middleware to verify the signatures on the transaction,
and maintain nonces for replay protection.
*/
package sigs

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
)

// RegisterQuery will register this bucket as "/auth"
func RegisterQuery(qr nftswap.QueryRouter) {
	NewBucket().Register("auth", qr)
}

// Decorator verifies the signatures and adds them to the context
type Decorator struct {
	allowMissingSigs bool
}

var _ nftswap.Decorator = Decorator{}

// NewDecorator returns a default authentication decorator,
// which appends the chainID before checking the signature,
// and requires at least one signature to be present
func NewDecorator() Decorator {
	return Decorator{allowMissingSigs: false}
}

// AllowMissingSigs allows us to pass along items with no signatures
func (d Decorator) AllowMissingSigs() Decorator {
	d.allowMissingSigs = true
	return d
}

// Check verifies signatures before calling down the stack.
func (d Decorator) Check(ctx nftswap.Context, store nftswap.KVStore, tx nftswap.Tx, next nftswap.Checker) (*nftswap.CheckResult, error) {
	ctx, err := d.authenticate(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	return next.Check(ctx, store, tx)
}

// Deliver verifies signatures before calling down the stack.
func (d Decorator) Deliver(ctx nftswap.Context, store nftswap.KVStore, tx nftswap.Tx, next nftswap.Deliverer) (*nftswap.DeliverResult, error) {
	ctx, err := d.authenticate(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(ctx, store, tx)
}

func (d Decorator) authenticate(ctx nftswap.Context, store nftswap.KVStore, tx nftswap.Tx) (nftswap.Context, error) {
	stx, ok := tx.(SignedTx)
	if !ok {
		return ctx, nil
	}
	signers, err := VerifyTxSignatures(store, stx, nftswap.GetChainID(ctx))
	if err != nil {
		return nil, errors.Wrap(err, "cannot verify signatures")
	}
	if len(signers) == 0 && !d.allowMissingSigs {
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return withSigners(ctx, signers), nil
}
