package token

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/gconf"
)

const optKey = "token"

// GenesisMint is a mint created at chain start.
type GenesisMint struct {
	Address   nftswap.Address `json:"address"`
	Authority nftswap.Address `json:"authority"`
}

// GenesisAccount is a token account created at chain start. Its units are
// minted from the mint.
type GenesisAccount struct {
	Address nftswap.Address `json:"address"`
	Owner   nftswap.Address `json:"owner"`
	Mint    nftswap.Address `json:"mint"`
	Amount  uint64          `json:"amount"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ nftswap.Initializer = Initializer{}

// FromGenesis stores the configuration and creates the mints and accounts
// listed in the genesis file. No rent is charged.
func (Initializer) FromGenesis(opts nftswap.Options, db nftswap.KVStore) error {
	if err := gconf.InitConfig(db, opts, confPkg, &Configuration{}); err != nil {
		return errors.Wrap(err, "init config")
	}

	var state struct {
		Mints    []GenesisMint    `json:"mints"`
		Accounts []GenesisAccount `json:"accounts"`
	}
	if err := opts.ReadOptions(optKey, &state); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	mints := NewMintBucket()
	for i, m := range state.Mints {
		if err := m.Address.Validate(); err != nil {
			return errors.Wrapf(err, "mint %d", i)
		}
		if err := mints.Create(db, m.Address, &Mint{Authority: m.Authority}); err != nil {
			return errors.Wrapf(err, "mint %d", i)
		}
	}

	accounts := NewAccountBucket()
	for i, a := range state.Accounts {
		if err := a.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		mint, err := mints.Get(db, a.Mint)
		if err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		mint.Supply += a.Amount
		if err := mints.Put(db, a.Mint, mint); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		acc := Account{Owner: a.Owner, Mint: a.Mint, Amount: a.Amount}
		if err := accounts.Create(db, a.Address, &acc); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
	}
	return nil
}
