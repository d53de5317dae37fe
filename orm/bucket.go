/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
Each bucket contains only one type of object, stored under a key
chosen by the extension. For the swap ledger the key is almost always
the address of the account the object represents.
*/
package orm

import (
	"fmt"
	"regexp"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Model is the persistent representation of an object kept in a bucket.
type Model interface {
	nftswap.Persistent
	Validate() error
}

// Bucket is a prefixed subspace of the DB.
//
// This is a generic building block that should generally
// be embedded in a type-safe wrapper to ensure all data
// is the same type.
type Bucket struct {
	name   string
	prefix []byte
}

var _ nftswap.QueryHandler = Bucket{}

// NewBucket creates a bucket to store data
func NewBucket(name string) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}
	return Bucket{
		name:   name,
		prefix: append([]byte(name), ':'),
	}
}

// Name returns the name of the bucket.
func (b Bucket) Name() string {
	return b.name
}

// DBKey is the full key we store in the db, including prefix
// We copy into a new array rather than use append, as we don't
// want consequetive calls to overwrite the same byte array.
func (b Bucket) DBKey(key []byte) []byte {
	l := len(b.prefix)
	res := make([]byte, l+len(key))
	copy(res, b.prefix)
	copy(res[l:], key)
	return res
}

// Has returns true if an object is stored under the given key.
func (b Bucket) Has(db nftswap.ReadOnlyKVStore, key []byte) (bool, error) {
	ok, err := db.Has(b.DBKey(key))
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return ok, nil
}

// One loads the object stored under the given key into dest.
// ErrNotFound is returned when there is no such object.
func (b Bucket) One(db nftswap.ReadOnlyKVStore, key []byte, dest Model) error {
	raw, err := db.Get(b.DBKey(key))
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%s %X", b.name, key)
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "%s %X", b.name, key)
	}
	return nil
}

// Put validates and saves the object under the given key,
// overwriting any previous value.
func (b Bucket) Put(db nftswap.KVStore, key []byte, m Model) error {
	if err := m.Validate(); err != nil {
		return errors.Wrapf(err, "invalid %s", b.name)
	}
	raw, err := m.Marshal()
	if err != nil {
		return errors.Wrapf(err, "marshal %s", b.name)
	}
	return db.Set(b.DBKey(key), raw)
}

// Create saves the object only if the key is not yet used.
// ErrDuplicate is returned otherwise.
func (b Bucket) Create(db nftswap.KVStore, key []byte, m Model) error {
	switch ok, err := b.Has(db, key); {
	case err != nil:
		return err
	case ok:
		return errors.Wrapf(errors.ErrDuplicate, "%s %X", b.name, key)
	}
	return b.Put(db, key, m)
}

// Delete removes the object stored under the given key.
// ErrNotFound is returned when there is no such object.
func (b Bucket) Delete(db nftswap.KVStore, key []byte) error {
	switch ok, err := b.Has(db, key); {
	case err != nil:
		return err
	case !ok:
		return errors.Wrapf(errors.ErrNotFound, "%s %X", b.name, key)
	}
	return db.Delete(b.DBKey(key))
}

// Register registers this Bucket for queries. You can define a name here
// for queries, which is different than the bucket name used to prefix the
// data
func (b Bucket) Register(name string, r nftswap.QueryRouter) {
	if name == "" {
		name = b.name
	}
	r.Register("/"+name, b)
}

// Query handles queries from the QueryRouter. Only exact key
// lookups are supported.
func (b Bucket) Query(db nftswap.ReadOnlyKVStore, mod string, data []byte) ([]nftswap.Model, error) {
	if mod != nftswap.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
	key := b.DBKey(data)
	value, err := db.Get(key)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if value == nil {
		return nil, nil
	}
	return []nftswap.Model{nftswap.Pair(key, value)}, nil
}
