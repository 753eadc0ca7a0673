package vault

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	finvault "github.com/iov-one/finvault"
	"github.com/iov-one/finvault/errors"
	"github.com/iov-one/finvault/store"
	"github.com/iov-one/finvault/vaulttest"
)

func TestRegistryValidate(t *testing.T) {
	admin := vaulttest.NewCondition().Address()

	good := Registry{
		Admin:    admin,
		Quorum:   2,
		TimeLock: 144,
	}
	assert.NoError(t, good.Validate())

	bad := good
	bad.Admin = nil
	assert.True(t, errors.ErrEmpty.Is(bad.Validate()))

	bad = good
	bad.Quorum = 0
	assert.True(t, errors.ErrInput.Is(bad.Validate()))

	bad = good
	bad.TimeLock = -1
	assert.True(t, errors.ErrInput.Is(bad.Validate()))

	bad = good
	bad.Tokens = []*Asset{NativeAsset()}
	assert.True(t, errors.ErrInput.Is(bad.Validate()))
}

func TestRegistryMutationsAreIdempotent(t *testing.T) {
	var reg Registry
	a := vaulttest.NewCondition().Address()
	b := vaulttest.NewCondition().Address()
	tok := TokenAsset(vaulttest.NewCondition().Address())

	reg.AddSigner(a)
	reg.AddSigner(a)
	reg.AddSigner(b)
	require.Len(t, reg.Signers, 2)
	assert.True(t, reg.IsSigner(a))

	reg.RemoveSigner(a)
	reg.RemoveSigner(a)
	require.Len(t, reg.Signers, 1)
	assert.False(t, reg.IsSigner(a))
	assert.True(t, reg.IsSigner(b))

	reg.AddAddress(a)
	reg.AddAddress(a)
	require.Len(t, reg.Addresses, 1)
	reg.RemoveAddress(b)
	require.Len(t, reg.Addresses, 1)

	reg.AddToken(tok)
	reg.AddToken(tok)
	require.Len(t, reg.Tokens, 1)
	assert.True(t, reg.SupportsAsset(tok))
	// the native asset is always supported
	assert.True(t, reg.SupportsAsset(NativeAsset()))

	reg.RemoveToken(tok)
	require.Len(t, reg.Tokens, 0)
	assert.False(t, reg.SupportsAsset(tok))
}

func TestFromGenesis(t *testing.T) {
	db := store.MemStore()
	admin := vaulttest.NewCondition().Address()
	signer := vaulttest.NewCondition().Address()

	genesis := map[string]interface{}{
		"admin":     admin.String(),
		"signers":   []string{signer.String()},
		"quorum":    3,
		"time_lock": 10,
	}
	raw, err := json.Marshal(genesis)
	require.NoError(t, err)

	opts := finvault.Options{"vault": raw}
	require.NoError(t, Initializer{}.FromGenesis(opts, db))

	reg, err := loadRegistry(db)
	require.NoError(t, err)
	assert.True(t, reg.IsAdmin(admin))
	assert.True(t, reg.IsSigner(signer))
	assert.Equal(t, uint32(3), reg.Quorum)
	assert.Equal(t, int64(10), reg.TimeLock)
	assert.False(t, reg.Frozen)
}

func TestFromGenesisDefaults(t *testing.T) {
	db := store.MemStore()
	admin := vaulttest.NewCondition().Address()

	opts := finvault.Options{
		"vault": json.RawMessage(`{"admin": "` + admin.String() + `"}`),
	}
	require.NoError(t, Initializer{}.FromGenesis(opts, db))

	reg, err := loadRegistry(db)
	require.NoError(t, err)
	assert.Equal(t, DefaultQuorum, reg.Quorum)
	assert.Equal(t, DefaultTimeLock, reg.TimeLock)
}

func TestFromGenesisRequiresAdmin(t *testing.T) {
	db := store.MemStore()
	opts := finvault.Options{"vault": json.RawMessage(`{}`)}
	err := Initializer{}.FromGenesis(opts, db)
	assert.True(t, errors.ErrEmpty.Is(err))
}

func TestLoadRegistryUninitialized(t *testing.T) {
	db := store.MemStore()
	_, err := loadRegistry(db)
	assert.True(t, errors.ErrNotFound.Is(err))
}
