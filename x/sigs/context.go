package sigs

import (
	"context"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/x"
)

type contextKey int // local to the sigs module

const (
	contextKeySigners contextKey = iota
)

// withSigners is a private method, as only this module
// can add a signer
func withSigners(ctx nftswap.Context, signers []nftswap.Condition) nftswap.Context {
	return context.WithValue(ctx, contextKeySigners, signers)
}

// Authenticate reads the signers placed in the context by the Decorator.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns who signed the current Context.
// May be empty
func (a Authenticate) GetConditions(ctx nftswap.Context) []nftswap.Condition {
	// (val, ok) form to return nil instead of panic if unset
	val, _ := ctx.Value(contextKeySigners).([]nftswap.Condition)
	return val
}

// HasAddress returns true if the given address signed the current Context.
func (a Authenticate) HasAddress(ctx nftswap.Context, addr nftswap.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
