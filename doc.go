/*
Package finvault defines the common interfaces that tie the vault
application together: transactions and messages, handlers and
decorators, the key-value store family, and the context helpers that
carry block information into every call.

The actual vault semantics live in x/vault. This package intentionally
holds only the plumbing that every extension needs, so that the state
machine logic stays free of serialization and dispatch concerns.

We pass context through context.Context between app, middleware and
handlers. For every value XYZ of type T stored in the context there
are two functions:

	WithXYZ(Context, T) Context
	GetXYZ(Context) (val T, ok bool)
*/
package finvault
