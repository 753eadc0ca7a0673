package utils

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

// writer is a handler that writes one key and optionally fails
// afterwards.
type writer struct {
	key, value []byte
	err        error
}

var _ finvault.Handler = writer{}

func (h writer) Check(ctx finvault.Context, db finvault.KVStore, tx finvault.Tx) (*finvault.CheckResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &finvault.CheckResult{}, h.err
}

func (h writer) Deliver(ctx finvault.Context, db finvault.KVStore, tx finvault.Tx) (*finvault.DeliverResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &finvault.DeliverResult{}, h.err
}

func TestSavepoint(t *testing.T) {
	boom := errors.ErrHuman.New("boom")

	cases := map[string]struct {
		save      Savepoint
		handler   finvault.Handler
		deliver   bool
		wantErr   error
		wantWrite bool
	}{
		"deliver succeeds, write kept": {
			save:      NewSavepoint().OnDeliver(),
			handler:   writer{key: []byte("k"), value: []byte("v")},
			deliver:   true,
			wantWrite: true,
		},
		"deliver fails, write discarded": {
			save:    NewSavepoint().OnDeliver(),
			handler: writer{key: []byte("k"), value: []byte("v"), err: boom},
			deliver: true,
			wantErr: boom,
		},
		"check fails, write discarded": {
			save:    NewSavepoint().OnCheck(),
			handler: writer{key: []byte("k"), value: []byte("v"), err: boom},
			wantErr: boom,
		},
		"inactive on deliver, failed write kept": {
			save:      NewSavepoint().OnCheck(),
			handler:   writer{key: []byte("k"), value: []byte("v"), err: boom},
			deliver:   true,
			wantErr:   boom,
			wantWrite: true,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()
			ctx := context.Background()
			tx := &vaulttest.Tx{}
			stack := tc.save

			var err error
			if tc.deliver {
				_, err = stack.Deliver(ctx, db, tx, tc.handler)
			} else {
				_, err = stack.Check(ctx, db, tx, tc.handler)
			}
			if tc.wantErr != nil {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			has, herr := db.Has([]byte("k"))
			require.NoError(t, herr)
			assert.Equal(t, tc.wantWrite, has)
		})
	}
}
