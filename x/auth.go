package x

import (
	"github.com/iov-one/nftswap"
)

// Authenticator is an interface we can use to extract authentication info
// from the context. This should be passed into the constructor of
// handlers, so we can plug in another authentication system,
// rather than hard-coding x/sigs for all extensions.
type Authenticator interface {
	// GetConditions reveals all Conditions fulfilled
	GetConditions(nftswap.Context) []nftswap.Condition
	// HasAddress checks if any condition matches this address
	HasAddress(nftswap.Context, nftswap.Address) bool
}

// MultiAuth chains together many Authenticators into one
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticator
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// GetConditions combines all Conditions from all Authenticators
func (m MultiAuth) GetConditions(ctx nftswap.Context) []nftswap.Condition {
	var res []nftswap.Condition
	for _, impl := range m.impls {
		add := impl.GetConditions(ctx)
		if len(add) > 0 {
			res = append(res, add...)
		}
	}
	return res
}

// HasAddress returns true iff any Authenticator support this
func (m MultiAuth) HasAddress(ctx nftswap.Context, addr nftswap.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// MainSigner returns the first permission if any, otherwise nil
func MainSigner(ctx nftswap.Context, auth Authenticator) nftswap.Condition {
	signers := auth.GetConditions(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}

// HasAllAddresses returns true if all elements in required are
// also in context.
func HasAllAddresses(ctx nftswap.Context, auth Authenticator, required []nftswap.Address) bool {
	for _, r := range required {
		if !auth.HasAddress(ctx, r) {
			return false
		}
	}
	return true
}
