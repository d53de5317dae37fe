package server

import (
	"encoding/json"
	"io/ioutil"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/store"
)

// ValidateGenesis loads the app_state of every given genesis file into a
// throwaway store and reports the first file that does not initialize.
func ValidateGenesis(ini nftswap.Initializer, genesisPaths []string) error {
	for _, path := range genesisPaths {
		if err := validateGenesis(ini, path); err != nil {
			return errors.Wrap(err, path)
		}
	}
	return nil
}

func validateGenesis(ini nftswap.Initializer, genesisPath string) error {
	b, err := ioutil.ReadFile(genesisPath)
	if err != nil {
		return errors.Wrap(err, "cannot read genesis file")
	}

	var genesis struct {
		State nftswap.Options `json:"app_state"`
	}
	if err := json.Unmarshal(b, &genesis); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if genesis.State == nil {
		return errors.Wrap(errors.ErrEmpty, "app_state")
	}

	// Use in memory store because we want to discard the result.
	db := store.MemStore()

	if err := ini.FromGenesis(genesis.State, db); err != nil {
		return errors.Wrap(err, "cannot initialize from genesis")
	}

	return nil
}
