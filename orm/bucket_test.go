package orm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	finvault "github.com/iov-one/finvault"
	"github.com/iov-one/finvault/store"
)

// counter is a minimal model for bucket tests.
type counter struct {
	Count int64
}

var _ CloneableData = (*counter)(nil)

func (c *counter) Marshal() ([]byte, error) {
	return EncodeSequence(c.Count), nil
}

func (c *counter) Unmarshal(raw []byte) error {
	c.Count = DecodeSequence(raw)
	return nil
}

func (c *counter) Validate() error {
	return nil
}

func (c *counter) Copy() CloneableData {
	return &counter{Count: c.Count}
}

func newCounterBucket() Bucket {
	return NewBucket("cnt", NewSimpleObj(nil, &counter{}))
}

func TestBucketSaveGetDelete(t *testing.T) {
	db := store.MemStore()
	b := newCounterBucket()

	obj, err := b.Get(db, []byte("some"))
	require.NoError(t, err)
	assert.Nil(t, obj)

	require.NoError(t, b.Save(db, NewSimpleObj([]byte("some"), &counter{Count: 5})))

	obj, err = b.Get(db, []byte("some"))
	require.NoError(t, err)
	require.NotNil(t, obj)
	assert.Equal(t, []byte("some"), obj.Key())
	assert.Equal(t, int64(5), obj.Value().(*counter).Count)

	require.NoError(t, b.Delete(db, []byte("some")))
	obj, err = b.Get(db, []byte("some"))
	require.NoError(t, err)
	assert.Nil(t, obj)

	// deleting a missing key is a noop
	require.NoError(t, b.Delete(db, []byte("gone")))
}

func TestBucketRequiresKey(t *testing.T) {
	db := store.MemStore()
	b := newCounterBucket()
	err := b.Save(db, NewSimpleObj(nil, &counter{Count: 5}))
	require.Error(t, err)
}

func TestBucketPrefixIsolation(t *testing.T) {
	db := store.MemStore()
	b1 := newCounterBucket()
	b2 := NewBucket("two", NewSimpleObj(nil, &counter{}))

	require.NoError(t, b1.Save(db, NewSimpleObj([]byte("a"), &counter{Count: 1})))

	obj, err := b2.Get(db, []byte("a"))
	require.NoError(t, err)
	assert.Nil(t, obj)
}

func TestBucketQuery(t *testing.T) {
	db := store.MemStore()
	b := newCounterBucket()
	require.NoError(t, b.Save(db, NewSimpleObj([]byte("aa"), &counter{Count: 1})))
	require.NoError(t, b.Save(db, NewSimpleObj([]byte("ab"), &counter{Count: 2})))
	require.NoError(t, b.Save(db, NewSimpleObj([]byte("zz"), &counter{Count: 3})))

	qr := finvault.NewQueryRouter()
	b.Register("counters", qr)
	h := qr.Handler("/counters")
	require.NotNil(t, h)

	// point query
	models, err := h.Query(db, finvault.KeyQueryMod, []byte("ab"))
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, b.DBKey([]byte("ab")), models[0].Key)

	// miss returns nothing
	models, err = h.Query(db, finvault.KeyQueryMod, []byte("xx"))
	require.NoError(t, err)
	assert.Len(t, models, 0)

	// prefix query
	models, err = h.Query(db, finvault.PrefixQueryMod, []byte("a"))
	require.NoError(t, err)
	assert.Len(t, models, 2)
}

func TestBucketName(t *testing.T) {
	assert.Equal(t, "cnt", newCounterBucket().Name())
	assert.Panics(t, func() {
		NewBucket("Bad Name", NewSimpleObj(nil, &counter{}))
	})
}

func TestSequence(t *testing.T) {
	db := store.MemStore()
	b := newCounterBucket()
	s := b.Sequence("id")

	for i := int64(1); i <= 5; i++ {
		val, err := s.NextInt(db)
		require.NoError(t, err)
		assert.Equal(t, i, val)
	}

	latest, raw, err := s.Latest(db)
	require.NoError(t, err)
	assert.Equal(t, int64(5), latest)
	assert.Equal(t, EncodeSequence(5), raw)

	// an independent sequence starts from scratch
	other := b.Sequence("other")
	val, err := other.NextInt(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), val)

	// byte representation sorts in creation order
	bz, err := s.NextVal(db)
	require.NoError(t, err)
	assert.Equal(t, EncodeSequence(6), bz)
}
