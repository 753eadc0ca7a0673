package orm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/finvault/errors"
	"github.com/iov-one/finvault/store"
)

func TestModelBucket(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	require.NoError(t, b.Put(db, []byte("c1"), &counter{Count: 1}))

	var c counter
	require.NoError(t, b.One(db, []byte("c1"), &c))
	assert.Equal(t, int64(1), c.Count)

	require.NoError(t, b.Has(db, []byte("c1")))
	assert.True(t, errors.ErrNotFound.Is(b.Has(db, []byte("c2"))))

	err := b.One(db, []byte("c2"), &c)
	assert.True(t, errors.ErrNotFound.Is(err))

	require.NoError(t, b.Delete(db, []byte("c1")))
	assert.True(t, errors.ErrNotFound.Is(b.Delete(db, []byte("c1"))))
}

func TestModelBucketPutWrongType(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	err := b.Put(db, []byte("c1"), &other{})
	assert.True(t, errors.ErrType.Is(err))
}

type other struct {
	counter
}

func (o *other) Copy() CloneableData {
	return &other{}
}
