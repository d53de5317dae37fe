package iavl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitStoreVersions(t *testing.T) {
	s := NewMemCommitStore()
	require.NoError(t, s.LoadLatestVersion())

	c := s.CacheWrap()
	require.NoError(t, c.Set([]byte("escrow"), []byte("open")))
	// not visible before the cache is written
	val, err := s.Get([]byte("escrow"))
	require.NoError(t, err)
	assert.Nil(t, val)
	require.NoError(t, c.Write())

	first, err := s.Commit()
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Version)
	assert.NotEmpty(t, first.Hash)

	c = s.CacheWrap()
	require.NoError(t, c.Set([]byte("escrow"), []byte("completed")))
	require.NoError(t, c.Delete([]byte("missing")))
	require.NoError(t, c.Write())

	second, err := s.Commit()
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Version)
	assert.NotEqual(t, first.Hash, second.Hash)

	val, err = s.Get([]byte("escrow"))
	require.NoError(t, err)
	assert.Equal(t, []byte("completed"), val)

	latest, err := s.LatestVersion()
	require.NoError(t, err)
	assert.Equal(t, second, latest)
}

func TestCommitStoreDiscard(t *testing.T) {
	s := NewMemCommitStore()
	c := s.CacheWrap()
	require.NoError(t, c.Set([]byte("a"), []byte("b")))
	c.Discard()

	has, err := s.CacheWrap().Has([]byte("a"))
	require.NoError(t, err)
	assert.False(t, has)
}
