package app

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
)

// ChainInitializers lets you initialize many extensions with one function
func ChainInitializers(inits ...nftswap.Initializer) nftswap.Initializer {
	return chainInitializer{inits}
}

type chainInitializer struct {
	inits []nftswap.Initializer
}

// FromGenesis will pass opts to all Initializers in the list,
// aborting at the first error.
func (c chainInitializer) FromGenesis(opts nftswap.Options, kv nftswap.KVStore) error {
	for _, i := range c.inits {
		if err := i.FromGenesis(opts, kv); err != nil {
			return err
		}
	}
	return nil
}

// _sw: is a prefix for internal data of the application
const chainIDKey = "_sw:chainID"

// loadChainID returns the chain id stored if any
func loadChainID(kv nftswap.ReadOnlyKVStore) (string, error) {
	v, err := kv.Get([]byte(chainIDKey))
	if err != nil {
		return "", errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return string(v), nil
}

// saveChainID stores a chain id in the kv store.
// Returns error if already set, or invalid name
func saveChainID(kv nftswap.KVStore, chainID string) error {
	if !nftswap.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}
	k := []byte(chainIDKey)
	exists, err := kv.Has(k)
	if err != nil {
		return errors.Wrap(err, "load chain id")
	}
	if exists {
		return errors.Wrap(errors.ErrUnauthorized, "can't modify chain id after genesis init")
	}
	if err := kv.Set(k, []byte(chainID)); err != nil {
		return errors.Wrap(err, "save chain id")
	}
	return nil
}
