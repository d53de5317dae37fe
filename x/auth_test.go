package x_test

import (
	"context"
	"testing"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/weavetest"
	"github.com/iov-one/nftswap/x"
	"github.com/stretchr/testify/assert"
)

func TestChainAuth(t *testing.T) {
	a := weavetest.NewCondition()
	b := weavetest.NewCondition()
	c := weavetest.NewCondition()

	ctxAuth := &weavetest.CtxAuth{Key: "auth"}
	ctx := ctxAuth.SetConditions(context.Background(), a)
	static := &weavetest.Auth{Signer: b}

	auth := x.ChainAuth(ctxAuth, static)
	assert.Equal(t, []nftswap.Condition{a, b}, auth.GetConditions(ctx))
	assert.True(t, auth.HasAddress(ctx, a.Address()))
	assert.True(t, auth.HasAddress(ctx, b.Address()))
	assert.False(t, auth.HasAddress(ctx, c.Address()))

	assert.Equal(t, a, x.MainSigner(ctx, auth))
	assert.True(t, x.HasAllAddresses(ctx, auth, []nftswap.Address{a.Address(), b.Address()}))
	assert.False(t, x.HasAllAddresses(ctx, auth, []nftswap.Address{a.Address(), c.Address()}))

	assert.Nil(t, x.MainSigner(context.Background(), x.ChainAuth(ctxAuth)))
}
