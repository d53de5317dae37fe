package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStoreSetGetDelete(t *testing.T) {
	db := MemStore()

	val, err := db.Get([]byte("missing"))
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, db.Set([]byte("a"), []byte("1")))
	val, err = db.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), val)

	has, err := db.Has([]byte("a"))
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, db.Delete([]byte("a")))
	has, err = db.Has([]byte("a"))
	require.NoError(t, err)
	assert.False(t, has)
}

func TestCacheWrapWriteAndDiscard(t *testing.T) {
	db := MemStore()
	require.NoError(t, db.Set([]byte("keep"), []byte("v0")))

	// discarded changes never reach the parent
	c := db.CacheWrap()
	require.NoError(t, c.Set([]byte("tmp"), []byte("x")))
	require.NoError(t, c.Delete([]byte("keep")))
	has, err := c.Has([]byte("keep"))
	require.NoError(t, err)
	assert.False(t, has)
	c.Discard()

	val, err := db.Get([]byte("keep"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v0"), val)
	has, err = db.Has([]byte("tmp"))
	require.NoError(t, err)
	assert.False(t, has)

	// written changes are visible in the parent
	c = db.CacheWrap()
	require.NoError(t, c.Set([]byte("keep"), []byte("v1")))
	nested := c.CacheWrap()
	require.NoError(t, nested.Set([]byte("deep"), []byte("d")))
	require.NoError(t, nested.Write())
	require.NoError(t, c.Write())

	val, err = db.Get([]byte("keep"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), val)
	val, err = db.Get([]byte("deep"))
	require.NoError(t, err)
	assert.Equal(t, []byte("d"), val)
}

func TestNonAtomicBatch(t *testing.T) {
	db := MemStore()
	b := NewNonAtomicBatch(db)
	require.NoError(t, b.Set([]byte("x"), []byte("y")))
	require.NoError(t, b.Delete([]byte("z")))
	assert.Equal(t, 2, b.Len())

	has, err := db.Has([]byte("x"))
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, b.Write())
	assert.Equal(t, 0, b.Len())
	has, err = db.Has([]byte("x"))
	require.NoError(t, err)
	assert.True(t, has)
}
