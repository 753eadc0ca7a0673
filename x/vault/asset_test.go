package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/finvault/errors"
	"github.com/iov-one/finvault/vaulttest"
)

func TestAssetValidate(t *testing.T) {
	contract := vaulttest.NewCondition().Address()

	assert.NoError(t, NativeAsset().Validate())
	assert.NoError(t, TokenAsset(contract).Validate())

	// native with contract reference
	err := (&Asset{Kind: NATIVE, Contract: contract}).Validate()
	assert.True(t, errors.ErrInput.Is(err))

	// token without contract reference
	err = (&Asset{Kind: TOKEN}).Validate()
	assert.True(t, errors.ErrEmpty.Is(err))

	// nil asset
	var nilAsset *Asset
	assert.True(t, errors.ErrEmpty.Is(nilAsset.Validate()))
}

func TestAssetEquals(t *testing.T) {
	contract := vaulttest.NewCondition().Address()

	assert.True(t, NativeAsset().Equals(NativeAsset()))
	assert.True(t, TokenAsset(contract).Equals(TokenAsset(contract)))
	assert.False(t, NativeAsset().Equals(TokenAsset(contract)))
	assert.False(t, TokenAsset(contract).Equals(TokenAsset(vaulttest.NewCondition().Address())))
}

func TestAssetKeyIsCollisionFree(t *testing.T) {
	c1 := vaulttest.NewCondition().Address()
	c2 := vaulttest.NewCondition().Address()

	keys := [][]byte{
		NativeAsset().Key(),
		TokenAsset(c1).Key(),
		TokenAsset(c2).Key(),
	}
	seen := make(map[string]bool)
	for _, k := range keys {
		require.False(t, seen[string(k)], "duplicate key %x", k)
		seen[string(k)] = true
	}

	// the same asset always maps to the same key
	assert.Equal(t, TokenAsset(c1).Key(), TokenAsset(c1).Key())
}
