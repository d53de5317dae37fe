package sigs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/crypto"
	"github.com/iov-one/nftswap/store"
)

func TestDecorator(t *testing.T) {
	kv := store.MemStore()
	checkKv := kv.CacheWrap()
	signers := new(SigCheckHandler)
	d := NewDecorator()
	chainID := "deco-rate"
	ctx := nftswap.WithChainID(context.Background(), chainID)

	priv := crypto.GenPrivKeyEd25519()
	perms := []nftswap.Condition{priv.PublicKey().Condition()}

	tx := NewStdTx([]byte("art"))
	sig, err := SignTx(priv, tx, chainID, 0)
	require.NoError(t, err)
	sig1, err := SignTx(priv, tx, chainID, 1)
	require.NoError(t, err)

	deliver := func(dec nftswap.Decorator, my nftswap.Tx) error {
		_, err := dec.Deliver(ctx, kv, my, signers)
		return err
	}
	check := func(dec nftswap.Decorator, my nftswap.Tx) error {
		_, err := dec.Check(ctx, checkKv, my, signers)
		return err
	}

	for i, fn := range []func(nftswap.Decorator, nftswap.Tx) error{check, deliver} {
		// test with no sigs
		tx.Signatures = nil
		err := fn(d, tx)
		assert.Error(t, err, "%d", i)

		// test with one
		tx.Signatures = []*StdSignature{sig}
		err = fn(d, tx)
		assert.NoError(t, err, "%d", i)
		assert.Equal(t, perms, signers.Signers)

		// test with replay
		err = fn(d, tx)
		assert.True(t, ErrInvalidSequence.Is(err), "%d: %v", i, err)

		// test allowing none
		ad := d.AllowMissingSigs()
		tx.Signatures = nil
		err = fn(ad, tx)
		assert.NoError(t, err, "%d", i)
		assert.Equal(t, []nftswap.Condition{}, signers.Signers)

		// test allowing, with next sequence
		tx.Signatures = []*StdSignature{sig1}
		err = fn(ad, tx)
		assert.NoError(t, err, "%d", i)
		assert.Equal(t, perms, signers.Signers)
	}
}

func TestDecoratorIgnoresUnsignedTx(t *testing.T) {
	signers := new(SigCheckHandler)
	ctx := nftswap.WithChainID(context.Background(), "no-sigs-here")

	var tx nftswap.Tx = &plainTx{}
	_, err := NewDecorator().Deliver(ctx, store.MemStore(), tx, signers)
	require.NoError(t, err)
	assert.Empty(t, signers.Signers)
}

type plainTx struct {
	nftswap.Tx
}
