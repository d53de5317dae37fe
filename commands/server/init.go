package server

import (
	"encoding/json"
	"flag"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/crypto"
	"github.com/iov-one/nftswap/errors"
)

const (
	appStateKey = "app_state"
	flagForce   = "f"
)

// GenOptions can parse command-line and flag to
// generate default app_state for the genesis file.
// This is application-specific
type GenOptions func(args []string) (json.RawMessage, error)

// GenerateCoinKey returns the address of a new public key together with
// the private key. You can give coins to this address and hand the key to
// the user to access them.
func GenerateCoinKey() (nftswap.Address, *crypto.PrivateKey) {
	key := crypto.GenPrivKeyEd25519()
	return key.PublicKey().Address(), key
}

// InitCmd will add the app_state produced by gen to the genesis file that
// `tendermint init` created in the home directory.
//
// An existing app_state is only replaced when -f is given.
func InitCmd(gen GenOptions, logger log.Logger, home string, args []string) error {
	var force bool
	initFlags := flag.NewFlagSet("init", flag.ContinueOnError)
	initFlags.BoolVar(&force, flagForce, false, "overwrite existing app_state")
	if err := initFlags.Parse(args); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	genFile := filepath.Join(home, "config", "genesis.json")
	if _, err := os.Stat(genFile); err != nil {
		return errors.Wrapf(errors.ErrNotFound, "genesis file %q, run tendermint init first", genFile)
	}

	options, err := gen(initFlags.Args())
	if err != nil {
		return err
	}
	if err := addGenesisOptions(genFile, options, force); err != nil {
		return err
	}
	logger.Info("App initialized", "genesis", genFile)
	return nil
}

// genesisDoc involves some tendermint-specific structures we don't
// want to parse, so we just grab it into a raw object format,
// so we can add one line.
type genesisDoc map[string]json.RawMessage

func addGenesisOptions(filename string, options json.RawMessage, force bool) error {
	bz, err := ioutil.ReadFile(filename)
	if err != nil {
		return errors.Wrap(err, "cannot read genesis file")
	}

	var doc genesisDoc
	if err := json.Unmarshal(bz, &doc); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	if v, ok := doc[appStateKey]; ok && !force && len(v) > 0 && string(v) != "null" {
		return errors.Wrap(errors.ErrDuplicate, "app_state already set, use -f to overwrite")
	}

	doc[appStateKey] = options
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "cannot serialize genesis")
	}

	return ioutil.WriteFile(filename, out, 0600)
}
