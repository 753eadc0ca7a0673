//nolint
package store

import finvault "github.com/iov-one/finvault"

// Move references for all storage types into this package
// for shorter names everywhere.

type ReadOnlyKVStore = finvault.ReadOnlyKVStore
type KVStore = finvault.KVStore
type SetDeleter = finvault.SetDeleter
type Batch = finvault.Batch
type Iterator = finvault.Iterator
type CacheableKVStore = finvault.CacheableKVStore
type KVCacheWrap = finvault.KVCacheWrap
type Model = finvault.Model
