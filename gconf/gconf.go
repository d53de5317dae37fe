/*
Package gconf keeps the configuration of each extension in the application
state. The configuration is read from the genesis file under
conf.<package name> during chain initialization and loaded by the handlers
whenever they need it.
*/
package gconf

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
)

// ReadStore is a subset of nftswap.ReadOnlyKVStore.
type ReadStore interface {
	Get([]byte) ([]byte, error)
}

// Store is a subset of nftswap.KVStore.
type Store interface {
	ReadStore
	Set([]byte, []byte) error
}

// ValidMarshaler is implemented by object that can serialize itself to a binary
// representation. You must add your own Validate method
type ValidMarshaler interface {
	Marshal() ([]byte, error)
	Validate() error
}

// Unmarshaler is implemented by object that can load their state from given
// binary representation.
type Unmarshaler interface {
	Unmarshal([]byte) error
}

// Configuration is an object that can be stored as the configuration
// of a package.
type Configuration interface {
	ValidMarshaler
	Unmarshaler
}

func key(pkg string) []byte {
	return []byte("_c:" + pkg)
}

// Save will Validate the object, before writing it to a special "configuration"
// singleton for that package name.
func Save(db Store, pkg string, src ValidMarshaler) error {
	k := key(pkg)
	if err := src.Validate(); err != nil {
		return errors.Wrapf(err, "validation: key %q", k)
	}
	raw, err := src.Marshal()
	if err != nil {
		return errors.Wrapf(err, "marshal: key %q", k)
	}
	return db.Set(k, raw)
}

// Load reads the configuration of the given package into dst.
func Load(db ReadStore, pkg string, dst Unmarshaler) error {
	k := key(pkg)
	raw, err := db.Get(k)
	if err != nil {
		return err
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "key %q", k)
	}
	if err := dst.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "unmarshal: key %q", k)
	}
	return nil
}

// InitConfig will take opts["conf"][pkg], parse it into the given Configuration object
// validate it, and store under the proper key in the database
// Returns an error if anything goes wrong
func InitConfig(db Store, opts nftswap.Options, pkg string, conf Configuration) error {
	var confOptions nftswap.Options
	if err := opts.ReadOptions("conf", &confOptions); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if confOptions[pkg] == nil {
		return errors.Wrapf(errors.ErrNotFound, "no configuration in genesis for %q package", pkg)
	}
	if err := confOptions.ReadOptions(pkg, conf); err != nil {
		return errors.Wrapf(errors.ErrInput, "read configuration for %s: %s", pkg, err)
	}
	if err := Save(db, pkg, conf); err != nil {
		return errors.Wrapf(err, "save configuration for %s", pkg)
	}
	return nil
}
