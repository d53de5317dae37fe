package cash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/coin"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/store"
	"github.com/iov-one/nftswap/weavetest"
)

func balance(t *testing.T, kv nftswap.ReadOnlyKVStore, addr nftswap.Address, ticker string) coin.Coin {
	t.Helper()
	set, err := NewBucket().Get(kv, addr)
	require.NoError(t, err)
	return set.Balance(ticker)
}

func TestIssueCoins(t *testing.T) {
	kv := store.MemStore()
	addr := weavetest.NewCondition().Address()
	addr2 := weavetest.NewCondition().Address()

	controller := NewController(NewBucket())

	plus := coin.NewCoin(500, 1000, "FOO")
	minus := coin.NewCoin(-400, -600, "FOO")
	total := coin.NewCoin(100, 400, "FOO")
	other := coin.NewCoin(1, 0, "DING")

	require.NoError(t, controller.IssueCoins(kv, addr, plus))
	assert.Equal(t, plus, balance(t, kv, addr, "FOO"))
	assert.True(t, balance(t, kv, addr2, "FOO").IsZero())

	require.NoError(t, controller.IssueCoins(kv, addr, minus))
	assert.Equal(t, total, balance(t, kv, addr, "FOO"))

	require.NoError(t, controller.IssueCoins(kv, addr, other))
	coins, err := controller.Balance(kv, addr)
	require.NoError(t, err)
	require.Len(t, coins, 2)
	assert.Equal(t, "DING", coins[0].Ticker)
	assert.Equal(t, "FOO", coins[1].Ticker)

	// cannot go below zero
	err = controller.IssueCoins(kv, addr, coin.NewCoin(-200, 0, "FOO"))
	assert.True(t, errors.ErrInsufficientAmount.Is(err))
	assert.Equal(t, total, balance(t, kv, addr, "FOO"))
}

func TestMoveCoins(t *testing.T) {
	kv := store.MemStore()
	src := weavetest.NewCondition().Address()
	dest := weavetest.NewCondition().Address()
	controller := NewController(NewBucket())

	require.NoError(t, controller.IssueCoins(kv, src, coin.NewCoin(5, 0, "RNT")))

	cases := map[string]struct {
		from, to nftswap.Address
		amount   coin.Coin
		wantErr  *errors.Error
	}{
		"non positive amount": {
			from: src, to: dest, amount: coin.NewCoin(0, 0, "RNT"),
			wantErr: errors.ErrAmount,
		},
		"empty wallet": {
			from: dest, to: src, amount: coin.NewCoin(1, 0, "RNT"),
			wantErr: errors.ErrEmpty,
		},
		"too much": {
			from: src, to: dest, amount: coin.NewCoin(6, 0, "RNT"),
			wantErr: errors.ErrInsufficientAmount,
		},
		"other currency": {
			from: src, to: dest, amount: coin.NewCoin(1, 0, "ABC"),
			wantErr: errors.ErrInsufficientAmount,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db := kv.CacheWrap()
			err := controller.MoveCoins(db, tc.from, tc.to, tc.amount)
			assert.True(t, tc.wantErr.Is(err), "got %v", err)
		})
	}

	require.NoError(t, controller.MoveCoins(kv, src, dest, coin.NewCoin(2, 500000000, "RNT")))
	assert.Equal(t, coin.NewCoin(2, 500000000, "RNT"), balance(t, kv, src, "RNT"))
	assert.Equal(t, coin.NewCoin(2, 500000000, "RNT"), balance(t, kv, dest, "RNT"))

	// moving everything removes the wallet
	require.NoError(t, controller.MoveCoins(kv, dest, src, coin.NewCoin(2, 500000000, "RNT")))
	ok, err := NewBucket().Has(kv, dest)
	require.NoError(t, err)
	assert.False(t, ok)

	// moving to self keeps the balance
	require.NoError(t, controller.MoveCoins(kv, src, src, coin.NewCoin(1, 0, "RNT")))
	assert.Equal(t, coin.NewCoin(5, 0, "RNT"), balance(t, kv, src, "RNT"))
}
