package app

import (
	"sync"

	"github.com/iov-one/nftswap"
)

// CommitStore handles loading from a CommitKVStore, maintaining different
// CacheWraps for Deliver and Check, and returning useful state info.
type CommitStore struct {
	mu        sync.Mutex
	committed nftswap.CommitKVStore
	deliver   nftswap.KVCacheWrap
	check     nftswap.KVCacheWrap
}

// NewCommitStore loads the CommitKVStore from disk or panics. It sets up the
// deliver and check caches.
func NewCommitStore(store nftswap.CommitKVStore) *CommitStore {
	if err := store.LoadLatestVersion(); err != nil {
		panic(err)
	}
	return &CommitStore{
		committed: store,
		deliver:   store.CacheWrap(),
		check:     store.CacheWrap(),
	}
}

// CommitInfo returns the current height and hash
func (cs *CommitStore) CommitInfo() (nftswap.CommitID, error) {
	return cs.committed.LatestVersion()
}

// Commit will flush deliver to the underlying store and commit it
// to disk. It then regenerates new deliver/check caches
func (cs *CommitStore) Commit() (nftswap.CommitID, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	// flush deliver to store and discard check
	if err := cs.deliver.Write(); err != nil {
		return nftswap.CommitID{}, err
	}
	cs.check.Discard()

	res, err := cs.committed.Commit()
	if err != nil {
		return res, err
	}

	cs.deliver = cs.committed.CacheWrap()
	cs.check = cs.committed.CacheWrap()
	return res, nil
}

// CheckStore returns a store implementation that must be used during the
// checking phase.
func (cs *CommitStore) CheckStore() nftswap.CacheableKVStore {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.check
}

// DeliverStore returns a store implementation that must be used during the
// delivery phase.
func (cs *CommitStore) DeliverStore() nftswap.CacheableKVStore {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.deliver
}

// QueryStore returns a read only view of the last committed state.
func (cs *CommitStore) QueryStore() nftswap.ReadOnlyKVStore {
	return cs.committed.CacheWrap()
}
