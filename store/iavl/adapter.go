/*
Package iavl keeps the application state in a versioned merkle tree
persisted with a tendermint database backend.
*/
package iavl

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/store"
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"
)

const cacheSize = 10000

// CommitStore manages a iavl committed state
type CommitStore struct {
	tree *iavl.MutableTree
	db   dbm.DB
	last nftswap.CommitID
}

var _ nftswap.CommitKVStore = (*CommitStore)(nil)

// NewCommitStore creates a new store with disk backing in the given
// directory. The name is used for the database file.
func NewCommitStore(dir, name string) *CommitStore {
	db := dbm.NewDB(name, dbm.GoLevelDBBackend, dir)
	return newCommitStore(db)
}

// NewMemCommitStore creates a store kept entirely in memory.
// Useful for tests.
func NewMemCommitStore() *CommitStore {
	return newCommitStore(dbm.NewMemDB())
}

func newCommitStore(db dbm.DB) *CommitStore {
	return &CommitStore{
		tree: iavl.NewMutableTree(db, cacheSize),
		db:   db,
	}
}

// Get returns the value at last written state
// returns nil iff key doesn't exist.
func (s *CommitStore) Get(key []byte) ([]byte, error) {
	_, val := s.tree.Get(key)
	return val, nil
}

// Commit the next version to disk, and returns info
func (s *CommitStore) Commit() (nftswap.CommitID, error) {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return nftswap.CommitID{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	s.last = nftswap.CommitID{
		Version: version,
		Hash:    hash,
	}
	return s.last, nil
}

// LoadLatestVersion loads the latest persisted version.
// If there was a crash during the last commit, it is guaranteed
// to return a stable state, even if older.
func (s *CommitStore) LoadLatestVersion() error {
	if _, err := s.tree.Load(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// LatestVersion returns info on the latest version saved to disk
func (s *CommitStore) LatestVersion() (nftswap.CommitID, error) {
	if s.last.Version > 0 {
		return s.last, nil
	}
	return nftswap.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}, nil
}

// CacheWrap gives us a savepoint to perform actions.
// Writing the cache updates the working tree; Commit persists it.
func (s *CommitStore) CacheWrap() nftswap.KVCacheWrap {
	t := treeAdapter{s.tree}
	return store.NewBTreeCacheWrap(t, t.NewBatch(), nil)
}

// Close releases the database handle.
func (s *CommitStore) Close() {
	s.db.Close()
}

// treeAdapter exposes the working tree as a KVStore.
type treeAdapter struct {
	tree *iavl.MutableTree
}

var _ nftswap.KVStore = treeAdapter{}

func (t treeAdapter) Get(key []byte) ([]byte, error) {
	_, val := t.tree.Get(key)
	return val, nil
}

func (t treeAdapter) Has(key []byte) (bool, error) {
	return t.tree.Has(key), nil
}

func (t treeAdapter) Set(key, value []byte) error {
	t.tree.Set(key, value)
	return nil
}

func (t treeAdapter) Delete(key []byte) error {
	t.tree.Remove(key)
	return nil
}

func (t treeAdapter) NewBatch() nftswap.Batch {
	return store.NewNonAtomicBatch(t)
}
