package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/iov-one/finvault/errors"
)

// BTreeCacheable adds a simple btree-based CacheWrap
// strategy to a KVStore
type BTreeCacheable struct {
	KVStore
}

var _ CacheableKVStore = BTreeCacheable{}

// CacheWrap returns a BTreeCacheWrap that can be later
// written to this store, or rolled back
func (b BTreeCacheable) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b.KVStore, b.NewBatch())
}

// MemStore returns a simple implementation useful for tests.
// There is no persistence here....
func MemStore() CacheableKVStore {
	e := EmptyKVStore{}
	return NewBTreeCacheWrap(e, e.NewBatch())
}

// LogableStore returns a store, along with insight into all operations
// that were run on it.
func LogableStore() (CacheableKVStore, *NonAtomicBatch) {
	e := EmptyKVStore{}
	b := NewNonAtomicBatch(e)
	return NewBTreeCacheWrap(e, b), b
}

///////////////////////////////////////////////
// Actual CacheWrap implementation

// BTreeCacheWrap places a btree cache over a KVStore. All reads hit
// the cache first and fall through to the backing store. All writes go
// into the cache and into the batch, which flushes them to the backing
// store on Write.
type BTreeCacheWrap struct {
	bt    *btree.BTree
	back  ReadOnlyKVStore
	batch Batch
}

var _ KVCacheWrap = BTreeCacheWrap{}

// NewBTreeCacheWrap initializes a BTree to cache around this kv store.
// Use ReadOnlyKVStore to emphasize that all writes must go through the
// Batch.
func NewBTreeCacheWrap(kv ReadOnlyKVStore, batch Batch) BTreeCacheWrap {
	return BTreeCacheWrap{
		bt:    btree.New(2),
		back:  kv,
		batch: batch,
	}
}

// CacheWrap layers another BTree on top of this one.
// Don't change horses in mid-stream....
//
// Uses NonAtomicBatch as it is only backed by another in-memory batch
func (b BTreeCacheWrap) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b, b.NewBatch())
}

// NewBatch returns a non-atomic batch that eventually may write to
// our cachewrap
func (b BTreeCacheWrap) NewBatch() Batch {
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
	for stop := false; !stop; {
		rem := b.bt.DeleteMin()
		stop = (rem == nil)
	}
}

// Set writes to the BTree and to the batch
func (b BTreeCacheWrap) Set(key, value []byte) error {
	b.bt.ReplaceOrInsert(newSetItem(key, value))
	return b.batch.Set(key, value)
}

// Delete deletes from the BTree and to the batch
func (b BTreeCacheWrap) Delete(key []byte) error {
	b.bt.ReplaceOrInsert(newDeletedItem(key))
	return b.batch.Delete(key)
}

// Get reads from the cache layer first, the backing store second
func (b BTreeCacheWrap) Get(key []byte) ([]byte, error) {
	res := b.bt.Get(bkey{key})
	switch t := res.(type) {
	case setItem:
		return t.value, nil
	case deletedItem:
		return nil, nil
	case nil:
		return b.back.Get(key)
	}
	return nil, errors.Wrapf(errors.ErrHuman, "unknown btree item: %T", res)
}

// Has reads from the cache layer first, the backing store second
func (b BTreeCacheWrap) Has(key []byte) (bool, error) {
	res := b.bt.Get(bkey{key})
	switch res.(type) {
	case setItem:
		return true, nil
	case deletedItem:
		return false, nil
	case nil:
		return b.back.Has(key)
	}
	return false, errors.Wrapf(errors.ErrHuman, "unknown btree item: %T", res)
}

// Iterator walks over the backing store merged with the overlay, in
// ascending order. The merged view is materialized up front: the state
// machine serializes all calls, so no writes happen while iterating.
func (b BTreeCacheWrap) Iterator(start, end []byte) (Iterator, error) {
	models, err := b.mergedRange(start, end)
	if err != nil {
		return nil, err
	}
	return NewSliceIterator(models), nil
}

// ReverseIterator is Iterator in descending order.
func (b BTreeCacheWrap) ReverseIterator(start, end []byte) (Iterator, error) {
	models, err := b.mergedRange(start, end)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(models)-1; i < j; i, j = i+1, j-1 {
		models[i], models[j] = models[j], models[i]
	}
	return NewSliceIterator(models), nil
}

func (b BTreeCacheWrap) mergedRange(start, end []byte) ([]Model, error) {
	// Load the backing range first...
	var models []Model
	iter, err := b.back.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	defer iter.Release()
	for {
		key, value, err := iter.Next()
		if err != nil {
			if errors.ErrIteratorDone.Is(err) {
				break
			}
			return nil, err
		}
		models = append(models, Model{Key: key, Value: value})
	}

	// ...then apply the overlay on top of it.
	overlay := make(map[string]btree.Item)
	insert := func(i btree.Item) bool {
		k := i.(keyer).Key()
		if inRange(k, start, end) {
			overlay[string(k)] = i
		}
		return true
	}
	b.bt.Ascend(insert)

	merged := make([]Model, 0, len(models)+len(overlay))
	for _, m := range models {
		item, ok := overlay[string(m.Key)]
		if !ok {
			merged = append(merged, m)
			continue
		}
		delete(overlay, string(m.Key))
		if set, ok := item.(setItem); ok {
			merged = append(merged, Model{Key: set.key, Value: set.value})
		}
		// deletedItem shadows the backing model
	}
	for _, item := range overlay {
		if set, ok := item.(setItem); ok {
			merged = append(merged, Model{Key: set.key, Value: set.value})
		}
	}
	sortModels(merged)
	return merged, nil
}

func sortModels(models []Model) {
	// insertion sort; ranges are small and mostly ordered already
	for i := 1; i < len(models); i++ {
		for j := i; j > 0 && bytes.Compare(models[j].Key, models[j-1].Key) < 0; j-- {
			models[j], models[j-1] = models[j-1], models[j]
		}
	}
}

func inRange(key, start, end []byte) bool {
	if start != nil && bytes.Compare(key, start) < 0 {
		return false
	}
	if end != nil && bytes.Compare(key, end) >= 0 {
		return false
	}
	return true
}

/////////////////////////////////////////////////////////
// Items to write to btree

// keyer is implemented by every item stored in the btree
type keyer interface {
	Key() []byte
}

// bkey is a pseudo-item to query the btree by key
type bkey struct {
	key []byte
}

var _ btree.Item = bkey{}
var _ keyer = bkey{}

func (k bkey) Key() []byte {
	return k.key
}

// Less returns true if this key is smaller than the given item
func (k bkey) Less(than btree.Item) bool {
	return bytes.Compare(k.key, than.(keyer).Key()) < 0
}

// setItem is a cache entry that stores an updated value
type setItem struct {
	bkey
	value []byte
}

var _ keyer = setItem{}
var _ keyer = deletedItem{}

func newSetItem(key, value []byte) setItem {
	return setItem{bkey{key}, value}
}

// deletedItem marks a key as removed in the cache layer
type deletedItem struct {
	bkey
}

func newDeletedItem(key []byte) deletedItem {
	return deletedItem{bkey{key}}
}
