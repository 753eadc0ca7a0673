package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/finvault/errors"
)

func TestCacheWrapWriteAndDiscard(t *testing.T) {
	base := MemStore()
	require.NoError(t, base.Set([]byte("a"), []byte("1")))

	// writes inside a discarded cache never reach the parent
	cache := base.CacheWrap()
	require.NoError(t, cache.Set([]byte("b"), []byte("2")))
	require.NoError(t, cache.Delete([]byte("a")))
	cache.Discard()

	val, err := base.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), val)
	has, err := base.Has([]byte("b"))
	require.NoError(t, err)
	assert.False(t, has)

	// written caches flush both sets and deletes
	cache = base.CacheWrap()
	require.NoError(t, cache.Set([]byte("b"), []byte("2")))
	require.NoError(t, cache.Delete([]byte("a")))
	require.NoError(t, cache.Write())

	val, err = base.Get([]byte("b"))
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), val)
	has, err = base.Has([]byte("a"))
	require.NoError(t, err)
	assert.False(t, has)
}

func TestCacheWrapShadowsParent(t *testing.T) {
	base := MemStore()
	require.NoError(t, base.Set([]byte("a"), []byte("old")))

	cache := base.CacheWrap()
	require.NoError(t, cache.Set([]byte("a"), []byte("new")))

	val, err := cache.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), val)

	// the parent still sees the old value until Write
	val, err = base.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("old"), val)

	require.NoError(t, cache.Delete([]byte("a")))
	has, err := cache.Has([]byte("a"))
	require.NoError(t, err)
	assert.False(t, has)
}

func TestMergedIterator(t *testing.T) {
	base := MemStore()
	require.NoError(t, base.Set([]byte("a"), []byte("1")))
	require.NoError(t, base.Set([]byte("c"), []byte("3")))
	require.NoError(t, base.Set([]byte("e"), []byte("5")))

	cache := base.CacheWrap()
	// overlay adds, updates and deletes
	require.NoError(t, cache.Set([]byte("b"), []byte("2")))
	require.NoError(t, cache.Set([]byte("c"), []byte("3!")))
	require.NoError(t, cache.Delete([]byte("e")))

	collect := func(iter Iterator) []Model {
		defer iter.Release()
		var out []Model
		for {
			key, value, err := iter.Next()
			if err != nil {
				require.True(t, errors.ErrIteratorDone.Is(err))
				return out
			}
			out = append(out, Model{Key: key, Value: value})
		}
	}

	iter, err := cache.Iterator(nil, nil)
	require.NoError(t, err)
	got := collect(iter)
	want := []Model{
		{Key: []byte("a"), Value: []byte("1")},
		{Key: []byte("b"), Value: []byte("2")},
		{Key: []byte("c"), Value: []byte("3!")},
	}
	assert.Equal(t, want, got)

	// a bounded range excludes the end key
	iter, err = cache.Iterator([]byte("b"), []byte("c"))
	require.NoError(t, err)
	got = collect(iter)
	assert.Equal(t, []Model{{Key: []byte("b"), Value: []byte("2")}}, got)

	// reverse order
	iter, err = cache.ReverseIterator(nil, nil)
	require.NoError(t, err)
	got = collect(iter)
	require.Len(t, got, 3)
	assert.Equal(t, []byte("c"), got[0].Key)
	assert.Equal(t, []byte("a"), got[2].Key)
}

func TestNonAtomicBatchShowOps(t *testing.T) {
	store, batch := LogableStore()
	require.NoError(t, store.Set([]byte("a"), []byte("1")))
	require.NoError(t, store.Delete([]byte("b")))

	ops := batch.ShowOps()
	require.Len(t, ops, 2)
	assert.True(t, ops[0].IsSetOp())
	assert.Equal(t, []byte("a"), ops[0].Key())
	assert.False(t, ops[1].IsSetOp())
	assert.Equal(t, []byte("b"), ops[1].Key())
}
