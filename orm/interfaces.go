package orm

import (
	finvault "github.com/iov-one/finvault"
)

// Object is what is stored in the bucket. Key is joined with the
// bucket prefix to form the full primary key. Value is marshalled
// binary data.
type Object interface {
	// Key returns the key to store the object under
	Key() []byte
	// SetKey updates the key (used when parsing from disk)
	SetKey([]byte)
	// Value returns the persistent data of the object
	Value() finvault.Persistent
	// Validate returns error if the object is not in a valid state to
	// save to the db
	Validate() error
	// Clone returns an independent copy of the object
	Clone() Object
}

// Cloneable is implemented by bucket prototypes so we can stamp out
// fresh objects to load data into.
type Cloneable interface {
	Clone() Object
}

// CloneableData is an intelligent Value that can be embedded in a
// simple object to full-fill the Model interface.
type CloneableData interface {
	finvault.Persistent
	Validate() error
	Copy() CloneableData
}

// Model is implemented by any entity that can be stored using
// ModelBucket.
//
// This is the same interface as CloneableData. Using the right type
// names provides an easier to read API.
type Model interface {
	finvault.Persistent
	Validate() error
	Copy() CloneableData
}
