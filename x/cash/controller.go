package cash

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/coin"
	"github.com/iov-one/nftswap/errors"
)

// Controller is the functionality needed by other extensions to move
// coins around.
type Controller interface {
	Balance(nftswap.ReadOnlyKVStore, nftswap.Address) ([]*coin.Coin, error)
	MoveCoins(db nftswap.KVStore, src, dest nftswap.Address, amount coin.Coin) error
	IssueCoins(db nftswap.KVStore, dest nftswap.Address, amount coin.Coin) error
}

// BaseController is the default Controller, backed by a Bucket.
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a controller working on the given bucket.
func NewController(bucket Bucket) BaseController {
	return BaseController{bucket: bucket}
}

// Balance returns the coins held at the given address.
func (c BaseController) Balance(db nftswap.ReadOnlyKVStore, addr nftswap.Address) ([]*coin.Coin, error) {
	set, err := c.bucket.Get(db, addr)
	if err != nil {
		return nil, err
	}
	return set.Coins, nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c BaseController) MoveCoins(db nftswap.KVStore, src, dest nftswap.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount: %s", amount)
	}

	sender, err := c.bucket.Get(db, src)
	if err != nil {
		return err
	}
	if sender.IsEmpty() {
		return errors.Wrapf(errors.ErrEmpty, "wallet %s", src)
	}
	if !sender.Contains(amount) {
		return errors.Wrapf(errors.ErrInsufficientAmount, "wallet %s holds less than %s", src, amount)
	}
	if err := sender.Add(amount.Negative()); err != nil {
		return err
	}
	if err := c.bucket.Save(db, src, sender); err != nil {
		return err
	}

	// Loaded after the sender was saved, so moving to self is a noop.
	recipient, err := c.bucket.Get(db, dest)
	if err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}
	return c.bucket.Save(db, dest, recipient)
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
//
// Note the amount may also be negative.
func (c BaseController) IssueCoins(db nftswap.KVStore, dest nftswap.Address, amount coin.Coin) error {
	recipient, err := c.bucket.Get(db, dest)
	if err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}
	return c.bucket.Save(db, dest, recipient)
}
