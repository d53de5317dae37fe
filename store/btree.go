package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
)

const (
	// DefaultFreeListSize is the size we hold for free node in btree
	DefaultFreeListSize = btree.DefaultFreeListSize
)

// BTreeCacheable adds a simple btree-based CacheWrap
// strategy to a KVStore
type BTreeCacheable struct {
	nftswap.KVStore
}

var _ nftswap.CacheableKVStore = BTreeCacheable{}

// CacheWrap returns a BTreeCacheWrap that can be later
// written to this store, or rolled back
func (b BTreeCacheable) CacheWrap() nftswap.KVCacheWrap {
	return NewBTreeCacheWrap(b.KVStore, b.NewBatch(), nil)
}

// MemStore returns a simple implementation useful for tests.
// There is no persistence here....
func MemStore() nftswap.CacheableKVStore {
	e := EmptyKVStore{}
	return NewBTreeCacheWrap(e, e.NewBatch(), nil)
}

// BTreeCacheWrap places a btree cache over a KVStore
type BTreeCacheWrap struct {
	bt    *btree.BTree
	free  *btree.FreeList
	back  nftswap.ReadOnlyKVStore
	batch nftswap.Batch
}

var _ nftswap.KVCacheWrap = BTreeCacheWrap{}

// NewBTreeCacheWrap initializes a BTree to cache around this
// kv store. Use ReadOnlyKVStore to emphasize that all writes
// must go through the Batch.
//
// free may be nil, but set to an existing list to reuse it
// for memory savings
func NewBTreeCacheWrap(kv nftswap.ReadOnlyKVStore, batch nftswap.Batch, free *btree.FreeList) BTreeCacheWrap {
	if free == nil {
		free = btree.NewFreeList(DefaultFreeListSize)
	}
	return BTreeCacheWrap{
		bt:    btree.NewWithFreeList(2, free),
		free:  free,
		back:  kv,
		batch: batch,
	}
}

// CacheWrap layers another BTree on top of this one.
func (b BTreeCacheWrap) CacheWrap() nftswap.KVCacheWrap {
	return NewBTreeCacheWrap(b, b.NewBatch(), b.free)
}

// NewBatch returns a non-atomic batch that eventually may write to
// our cachewrap
func (b BTreeCacheWrap) NewBatch() nftswap.Batch {
	return NewNonAtomicBatch(b)
}

// Write syncs with the underlying store.
// And then cleans up
func (b BTreeCacheWrap) Write() error {
	err := b.batch.Write()
	b.Discard()
	return err
}

// Discard invalidates this CacheWrap and releases all data
func (b BTreeCacheWrap) Discard() {
	// clean up the btree -> freelist
	for b.bt.DeleteMin() != nil {
	}
}

// Set writes to the BTree and to the batch
func (b BTreeCacheWrap) Set(key, value []byte) error {
	if key == nil {
		return errors.Wrap(errors.ErrDatabase, "nil key")
	}
	b.bt.ReplaceOrInsert(setItem{bkey{key}, value})
	return b.batch.Set(key, value)
}

// Delete deletes from the BTree and to the batch
func (b BTreeCacheWrap) Delete(key []byte) error {
	b.bt.ReplaceOrInsert(deletedItem{bkey{key}})
	return b.batch.Delete(key)
}

// Get reads from btree if there, else backing store
func (b BTreeCacheWrap) Get(key []byte) ([]byte, error) {
	switch t := b.bt.Get(bkey{key}).(type) {
	case nil:
		return b.back.Get(key)
	case setItem:
		return t.value, nil
	case deletedItem:
		return nil, nil
	default:
		return nil, errors.Wrapf(errors.ErrDatabase, "unknown item in btree: %#v", t)
	}
}

// Has reads from btree if there, else backing store
func (b BTreeCacheWrap) Has(key []byte) (bool, error) {
	switch t := b.bt.Get(bkey{key}).(type) {
	case nil:
		return b.back.Has(key)
	case setItem:
		return true, nil
	case deletedItem:
		return false, nil
	default:
		return false, errors.Wrapf(errors.ErrDatabase, "unknown item in btree: %#v", t)
	}
}

// we enforce all data in our btree implements keyer so we
// can compare nicely
type keyer interface {
	Key() []byte
}

// bkey implements keyer and btree.Item
// and may be used for queries or embedded in data to store
type bkey struct {
	key []byte
}

var _ btree.Item = bkey{}

func (k bkey) Key() []byte {
	return k.key
}

// Less returns true iff second argument is greater than first
//
// panics if the item to compare doesn't implement keyer.
func (k bkey) Less(item btree.Item) bool {
	return bytes.Compare(k.key, item.(keyer).Key()) < 0
}

type deletedItem struct {
	bkey
}

type setItem struct {
	bkey
	value []byte
}
