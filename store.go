package nftswap

// ReadOnlyKVStore is a simple interface to query data.
type ReadOnlyKVStore interface {
	// Get returns nil iff key doesn't exist. Panics on nil key.
	Get(key []byte) ([]byte, error)

	// Has checks if a key exists. Panics on nil key.
	Has(key []byte) (bool, error)
}

// SetDeleter is a minimal interface for writing,
// Unifying KVStore and Batch
type SetDeleter interface {
	Set(key, value []byte) error // CONTRACT: key, value readonly []byte
	Delete(key []byte) error     // CONTRACT: key readonly []byte
}

// KVStore is a simple interface to get/set data
//
// For simplicity, we require all backing stores to implement this
// interface. They *may* implement other methods as well, but
// at least these are required.
type KVStore interface {
	ReadOnlyKVStore
	SetDeleter
	// NewBatch returns a batch that can write multiple ops atomically
	NewBatch() Batch
}

// Batch can write multiple ops atomically to an underlying KVStore
type Batch interface {
	SetDeleter
	Write() error
}

// CacheableKVStore is a KVStore that supports CacheWrapping
//
// CacheWrap() should not return a Committer, since Commit() on
// cache-wraps make no sense.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap allows us to maintain a scratch-pad of uncommitted data
// that we can view with all queries.
//
// At the end, the data is either written to the parent store or
// discarded. Once Write or Discard is called, the cache must not be
// used again.
type KVCacheWrap interface {
	// CacheableKVStore allows us to use this Cache recursively
	CacheableKVStore

	// Write syncs with the underlying store.
	Write() error

	// Discard invalidates this CacheWrap and releases all data
	Discard()
}

// CommitKVStore is a root store that can make atomic commits
// to disk.
// We modify it in batch by getting a CacheWrap() and then Write().
// Commit() will persist all changes to disk
//
// This store should also be able to return merkle proofs for
// any committed state.
type CommitKVStore interface {
	// Get returns the value at last committed state
	// returns nil iff key doesn't exist. Panics on nil key.
	Get(key []byte) ([]byte, error)

	// TODO: return merkle proofs together with the value.

	// Get a CacheWrap to perform actions
	CacheWrap() KVCacheWrap

	// Commit the next version to disk, and returns info
	Commit() (CommitID, error)

	// LoadLatestVersion loads the latest persisted version.
	// If there was a crash during the last commit, it is guaranteed
	// to return a stable state, even if older.
	LoadLatestVersion() error

	// LatestVersion returns info on the latest version saved to disk
	LatestVersion() (CommitID, error)
}

// CommitID contains the tree version number and its merkle root.
type CommitID struct {
	Version int64
	Hash    []byte
}
