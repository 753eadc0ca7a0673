package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	finvault "github.com/iov-one/finvault"
	"github.com/iov-one/finvault/store"
	"github.com/iov-one/finvault/vaulttest"
)

// tagger records the order decorators were invoked in.
type tagger struct {
	tag   string
	trail *[]string
}

var _ finvault.Decorator = tagger{}

func (d tagger) Check(ctx finvault.Context, store finvault.KVStore, tx finvault.Tx, next finvault.Checker) (*finvault.CheckResult, error) {
	*d.trail = append(*d.trail, d.tag)
	return next.Check(ctx, store, tx)
}

func (d tagger) Deliver(ctx finvault.Context, store finvault.KVStore, tx finvault.Tx, next finvault.Deliverer) (*finvault.DeliverResult, error) {
	*d.trail = append(*d.trail, d.tag)
	return next.Deliver(ctx, store, tx)
}

func TestChainDecorators(t *testing.T) {
	var trail []string
	h := &vaulttest.Handler{}

	stack := ChainDecorators(
		tagger{tag: "outer", trail: &trail},
		nil, // nil decorators are dropped
		tagger{tag: "inner", trail: &trail},
	).WithHandler(h)

	db := store.MemStore()
	_, err := stack.Deliver(context.Background(), db, &vaulttest.Tx{})
	require.NoError(t, err)

	assert.Equal(t, []string{"outer", "inner"}, trail)
	assert.Equal(t, 1, h.DeliverCallCount())

	trail = trail[:0]
	_, err = stack.Check(context.Background(), db, &vaulttest.Tx{})
	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner"}, trail)
}
