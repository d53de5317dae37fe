package weavetest

import (
	"context"
	"fmt"

	"github.com/iov-one/nftswap"
)

// Auth is a mock implementing x.Authenticator interface.
//
// This structure authenticates any of referenced conditions.
// You can use either Signer or Signers (or both) attributes to reference
// conditions.
type Auth struct {
	// Signer represents an authentication of a single signer.
	Signer nftswap.Condition

	// Signers represents an authentication of multiple signers.
	Signers []nftswap.Condition
}

func (a *Auth) GetConditions(nftswap.Context) []nftswap.Condition {
	if a.Signer != nil {
		return append(a.Signers, a.Signer)
	}
	return a.Signers
}

func (a *Auth) HasAddress(ctx nftswap.Context, addr nftswap.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}

// CtxAuth is a mock implementing x.Authenticator interface.
//
// This implementation is using context to store and retrieve permissions.
type CtxAuth struct {
	// Key used to set and retrieve conditions from the context. For
	// convinience only string type keys are allowed.
	Key string
}

func (a *CtxAuth) SetConditions(ctx nftswap.Context, permissions ...nftswap.Condition) nftswap.Context {
	return context.WithValue(ctx, a.Key, permissions)
}

func (a *CtxAuth) GetConditions(ctx nftswap.Context) []nftswap.Condition {
	val := ctx.Value(a.Key)
	if val == nil {
		return nil
	}
	conds, ok := val.([]nftswap.Condition)
	if !ok {
		panic(fmt.Sprintf("instead of []nftswap.Condition got %T", val))
	}
	return conds
}

func (a *CtxAuth) HasAddress(ctx nftswap.Context, addr nftswap.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
