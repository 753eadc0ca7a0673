package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	finvault "github.com/iov-one/finvault"
	"github.com/iov-one/finvault/errors"
	"github.com/iov-one/finvault/store"
	"github.com/iov-one/finvault/vaulttest"
)

// routedMsg is a helper message with a configurable path.
type routedMsg struct {
	path string
}

var _ finvault.Msg = (*routedMsg)(nil)

func (m *routedMsg) Path() string             { return m.path }
func (m *routedMsg) Marshal() ([]byte, error) { return []byte(m.path), nil }
func (m *routedMsg) Unmarshal(raw []byte) error {
	m.path = string(raw)
	return nil
}

func TestRouter(t *testing.T) {
	r := NewRouter()
	h := &vaulttest.Handler{}
	r.Handle(&routedMsg{path: "test/good"}, h)

	db := store.MemStore()
	ctx := context.Background()

	// a message with a registered path is dispatched
	tx := &vaulttest.Tx{Msg: &routedMsg{path: "test/good"}}
	_, err := r.Check(ctx, db, tx)
	require.NoError(t, err)
	_, err = r.Deliver(ctx, db, tx)
	require.NoError(t, err)
	assert.Equal(t, 1, h.CheckCallCount())
	assert.Equal(t, 1, h.DeliverCallCount())

	// an unknown path reports not found
	tx = &vaulttest.Tx{Msg: &routedMsg{path: "test/missing"}}
	_, err = r.Check(ctx, db, tx)
	assert.True(t, errors.ErrNotFound.Is(err))
	_, err = r.Deliver(ctx, db, tx)
	assert.True(t, errors.ErrNotFound.Is(err))
	assert.Equal(t, 2, h.CallCount())
}

func TestRouterRejectsInvalidRegistrations(t *testing.T) {
	r := NewRouter()
	r.Handle(&routedMsg{path: "test/good"}, &vaulttest.Handler{})

	assert.Panics(t, func() {
		r.Handle(&routedMsg{path: "test/good"}, &vaulttest.Handler{})
	})
	assert.Panics(t, func() {
		r.Handle(&routedMsg{path: "bad path!"}, &vaulttest.Handler{})
	})
}
