package token

import (
	"math"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/x"
	"github.com/iov-one/nftswap/x/cash"
)

// Controller is the token ledger API used by handlers of this and other
// extensions. Every state changing operation takes the authenticator that
// must prove authority over the accounts involved.
type Controller interface {
	CreateMint(ctx nftswap.Context, db nftswap.KVStore, auth x.Authenticator, payer, mint, authority nftswap.Address) error
	MintTo(ctx nftswap.Context, db nftswap.KVStore, auth x.Authenticator, mint, account nftswap.Address, amount uint64) error
	FreezeMint(ctx nftswap.Context, db nftswap.KVStore, auth x.Authenticator, mint nftswap.Address) error
	CreateAccount(ctx nftswap.Context, db nftswap.KVStore, auth x.Authenticator, payer, account, mint, owner nftswap.Address) error
	Transfer(ctx nftswap.Context, db nftswap.KVStore, auth x.Authenticator, src, dest nftswap.Address, amount uint64) error
	CloseAccount(ctx nftswap.Context, db nftswap.KVStore, auth x.Authenticator, account, destination nftswap.Address) error
	Account(db nftswap.ReadOnlyKVStore, addr nftswap.Address) (*Account, error)
	Mint(db nftswap.ReadOnlyKVStore, addr nftswap.Address) (*Mint, error)
}

// BaseController is the Controller implementation backed by the token
// buckets. Rent deposits are kept by the cash controller.
type BaseController struct {
	accounts AccountBucket
	mints    MintBucket
	cash     cash.Controller
}

var _ Controller = BaseController{}

// NewController returns a controller keeping rent deposits in cash
// wallets.
func NewController(cashctrl cash.Controller) BaseController {
	return BaseController{
		accounts: NewAccountBucket(),
		mints:    NewMintBucket(),
		cash:     cashctrl,
	}
}

// Account returns the token account at the given address.
func (c BaseController) Account(db nftswap.ReadOnlyKVStore, addr nftswap.Address) (*Account, error) {
	return c.accounts.Get(db, addr)
}

// Mint returns the mint at the given address.
func (c BaseController) Mint(db nftswap.ReadOnlyKVStore, addr nftswap.Address) (*Mint, error) {
	return c.mints.Get(db, addr)
}

// CreateMint creates a new mint at an address authorized by the caller.
// The payer deposits the rent.
func (c BaseController) CreateMint(ctx nftswap.Context, db nftswap.KVStore, auth x.Authenticator, payer, mint, authority nftswap.Address) error {
	if !x.HasAllAddresses(ctx, auth, []nftswap.Address{payer, mint}) {
		return errors.Wrap(errors.ErrUnauthorized, "payer and mint signatures required")
	}
	if err := c.mints.Create(db, mint, &Mint{Authority: authority}); err != nil {
		return err
	}
	return c.payRent(db, payer, mint)
}

// MintTo creates new units of the mint in the given account. Only the mint
// authority can do this.
func (c BaseController) MintTo(ctx nftswap.Context, db nftswap.KVStore, auth x.Authenticator, mint, account nftswap.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "cannot mint zero units")
	}
	m, err := c.mints.Get(db, mint)
	if err != nil {
		return err
	}
	if m.Frozen() {
		return errors.Wrapf(errors.ErrInvalidMint, "mint %s is frozen", mint)
	}
	if !auth.HasAddress(ctx, m.Authority) {
		return errors.Wrap(errors.ErrUnauthorized, "mint authority signature missing")
	}
	acc, err := c.accounts.Get(db, account)
	if err != nil {
		return err
	}
	if !acc.Mint.Equals(mint) {
		return errors.Wrapf(errors.ErrMintMismatch, "account %s holds mint %s", account, acc.Mint)
	}
	if m.Supply > math.MaxUint64-amount {
		return errors.Wrap(errors.ErrOverflow, "supply")
	}
	m.Supply += amount
	acc.Amount += amount
	if err := c.mints.Put(db, mint, m); err != nil {
		return err
	}
	return c.accounts.Put(db, account, acc)
}

// FreezeMint removes the mint authority so that no more units can ever be
// created.
func (c BaseController) FreezeMint(ctx nftswap.Context, db nftswap.KVStore, auth x.Authenticator, mint nftswap.Address) error {
	m, err := c.mints.Get(db, mint)
	if err != nil {
		return err
	}
	if m.Frozen() {
		return errors.Wrapf(errors.ErrInvalidMint, "mint %s is frozen", mint)
	}
	if !auth.HasAddress(ctx, m.Authority) {
		return errors.Wrap(errors.ErrUnauthorized, "mint authority signature missing")
	}
	m.Authority = nil
	return c.mints.Put(db, mint, m)
}

// CreateAccount creates an empty token account of the given mint at an
// address authorized by the caller. The payer deposits the rent.
func (c BaseController) CreateAccount(ctx nftswap.Context, db nftswap.KVStore, auth x.Authenticator, payer, account, mint, owner nftswap.Address) error {
	if !x.HasAllAddresses(ctx, auth, []nftswap.Address{payer, account}) {
		return errors.Wrap(errors.ErrUnauthorized, "payer and account signatures required")
	}
	switch ok, err := c.mints.Has(db, mint); {
	case err != nil:
		return err
	case !ok:
		return errors.Wrapf(errors.ErrNotFound, "mint %s", mint)
	}
	if err := c.accounts.Create(db, account, &Account{Owner: owner, Mint: mint}); err != nil {
		return err
	}
	return c.payRent(db, payer, account)
}

// Transfer moves units between two accounts of the same mint. The owner of
// the source account must authorize it.
func (c BaseController) Transfer(ctx nftswap.Context, db nftswap.KVStore, auth x.Authenticator, src, dest nftswap.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "cannot transfer zero units")
	}
	from, err := c.accounts.Get(db, src)
	if err != nil {
		return errors.Wrap(err, "source")
	}
	to, err := c.accounts.Get(db, dest)
	if err != nil {
		return errors.Wrap(err, "destination")
	}
	if !auth.HasAddress(ctx, from.Owner) {
		return errors.Wrap(errors.ErrUnauthorized, "source owner signature missing")
	}
	if !from.Mint.Equals(to.Mint) {
		return errors.Wrapf(errors.ErrMintMismatch, "%s to %s", from.Mint, to.Mint)
	}
	if from.Amount < amount {
		return errors.Wrapf(errors.ErrInsufficientAmount, "account %s holds %d", src, from.Amount)
	}
	if src.Equals(dest) {
		return nil
	}
	from.Amount -= amount
	to.Amount += amount
	if err := c.accounts.Put(db, src, from); err != nil {
		return err
	}
	return c.accounts.Put(db, dest, to)
}

// CloseAccount deletes an empty token account and returns its rent deposit
// to the destination. The owner must authorize it.
func (c BaseController) CloseAccount(ctx nftswap.Context, db nftswap.KVStore, auth x.Authenticator, account, destination nftswap.Address) error {
	acc, err := c.accounts.Get(db, account)
	if err != nil {
		return err
	}
	if !auth.HasAddress(ctx, acc.Owner) {
		return errors.Wrap(errors.ErrUnauthorized, "account owner signature missing")
	}
	if acc.Amount != 0 {
		return errors.Wrapf(errors.ErrState, "account %s still holds %d", account, acc.Amount)
	}
	if err := c.accounts.Delete(db, account); err != nil {
		return err
	}
	return ReclaimRent(db, c.cash, account, destination)
}

func (c BaseController) payRent(db nftswap.KVStore, payer, account nftswap.Address) error {
	conf, err := loadConf(db)
	if err != nil {
		return err
	}
	return PayRent(db, c.cash, conf.Rent, payer, account)
}
