package finvault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	finvault "github.com/iov-one/finvault"
	"github.com/iov-one/finvault/errors"
	"github.com/iov-one/finvault/vaulttest"
	"github.com/iov-one/finvault/x/vault"
)

func TestLoadMsg(t *testing.T) {
	msg := &vault.DepositMsg{Asset: vault.NativeAsset(), Amount: 5}
	tx := &vaulttest.Tx{Msg: msg}

	var dest vault.DepositMsg
	require.NoError(t, finvault.LoadMsg(tx, &dest))
	assert.Equal(t, int64(5), dest.Amount)

	// type mismatch is detected
	var wrong vault.FreezeMsg
	err := finvault.LoadMsg(tx, &wrong)
	assert.True(t, errors.ErrType.Is(err))

	// missing message is detected
	err = finvault.LoadMsg(&vaulttest.Tx{}, &dest)
	assert.True(t, errors.ErrState.Is(err))
}

func TestGetPath(t *testing.T) {
	tx := &vaulttest.Tx{Msg: &vault.FreezeMsg{}}
	assert.Equal(t, "vault/freeze", finvault.GetPath(tx))
	assert.Equal(t, "unknown", finvault.GetPath(&vaulttest.Tx{}))
}
