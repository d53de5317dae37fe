package store

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
)

// EmptyKVStore never holds any data, used as a base layer to test caching
type EmptyKVStore struct{}

var _ nftswap.KVStore = EmptyKVStore{}

// Get always returns nil
func (e EmptyKVStore) Get(key []byte) ([]byte, error) { return nil, nil }

// Has always returns false
func (e EmptyKVStore) Has(key []byte) (bool, error) { return false, nil }

// Set is a noop
func (e EmptyKVStore) Set(key, value []byte) error { return nil }

// Delete is a noop
func (e EmptyKVStore) Delete(key []byte) error { return nil }

// NewBatch returns a batch that can write to this tree later
func (e EmptyKVStore) NewBatch() nftswap.Batch {
	return NewNonAtomicBatch(e)
}

type opKind int32

const (
	setKind opKind = iota + 1
	delKind
)

// Op is either set or delete
type Op struct {
	kind  opKind
	key   []byte
	value []byte // only for set
}

// Apply performs the operation on the given store.
func (o Op) Apply(out nftswap.SetDeleter) error {
	switch o.kind {
	case setKind:
		return out.Set(o.key, o.value)
	case delKind:
		return out.Delete(o.key)
	default:
		return errors.Wrapf(errors.ErrDatabase, "unknown kind: %d", o.kind)
	}
}

// NonAtomicBatch just piles up ops and executes them later
// on the underlying store. Can be used when there is no better
// option (for in-memory stores).
//
// NOTE: Never use this for KVStores that are persistent
type NonAtomicBatch struct {
	out nftswap.SetDeleter
	ops []Op
}

var _ nftswap.Batch = (*NonAtomicBatch)(nil)

// NewNonAtomicBatch creates an empty batch to be later writen
// to the KVStore
func NewNonAtomicBatch(out nftswap.SetDeleter) *NonAtomicBatch {
	return &NonAtomicBatch{
		out: out,
	}
}

// Set adds a set operation to the batch
func (b *NonAtomicBatch) Set(key, value []byte) error {
	b.ops = append(b.ops, Op{kind: setKind, key: key, value: value})
	return nil
}

// Delete adds a delete operation to the batch
func (b *NonAtomicBatch) Delete(key []byte) error {
	b.ops = append(b.ops, Op{kind: delKind, key: key})
	return nil
}

// Write writes all the ops to the underlying store and resets
func (b *NonAtomicBatch) Write() error {
	for _, op := range b.ops {
		if err := op.Apply(b.out); err != nil {
			return err
		}
	}
	b.ops = nil
	return nil
}

// Len returns the number of pending operations.
func (b *NonAtomicBatch) Len() int {
	return len(b.ops)
}
