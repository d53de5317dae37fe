package cash

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/coin"
	"github.com/iov-one/nftswap/errors"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file
type GenesisAccount struct {
	Address nftswap.Address `json:"address"`
	Coins   []*coin.Coin    `json:"coins"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ nftswap.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts nftswap.Options, kv nftswap.KVStore) error {
	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	bucket := NewBucket()
	for i, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrapf(err, "cash account %d", i)
		}
		set, err := bucket.Get(kv, acct.Address)
		if err != nil {
			return err
		}
		for _, c := range acct.Coins {
			if err := set.Add(*c); err != nil {
				return errors.Wrapf(err, "cash account %d", i)
			}
		}
		if err := bucket.Save(kv, acct.Address, set); err != nil {
			return errors.Wrapf(err, "cash account %d", i)
		}
	}
	return nil
}
