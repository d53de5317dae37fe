package token

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/coin"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/x/cash"
)

// PayRent moves the rent deposit for a new account from the payer to the
// wallet at the account address. An empty rent is a noop.
func PayRent(db nftswap.KVStore, ctrl cash.Controller, rent *coin.Coin, payer, account nftswap.Address) error {
	if coin.IsEmpty(rent) {
		return nil
	}
	if err := ctrl.MoveCoins(db, payer, account, *rent); err != nil {
		return errors.Wrap(err, "rent deposit")
	}
	return nil
}

// ReclaimRent moves everything held at the account address to the
// destination.
func ReclaimRent(db nftswap.KVStore, ctrl cash.Controller, account, destination nftswap.Address) error {
	coins, err := ctrl.Balance(db, account)
	if err != nil {
		return err
	}
	for _, c := range coins {
		if err := ctrl.MoveCoins(db, account, destination, *c); err != nil {
			return errors.Wrap(err, "rent reclaim")
		}
	}
	return nil
}
