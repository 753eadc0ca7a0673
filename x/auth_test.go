package x_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	finvault "github.com/iov-one/finvault"
	"github.com/iov-one/finvault/vaulttest"
	"github.com/iov-one/finvault/x"
)

func TestChainAuth(t *testing.T) {
	a := vaulttest.NewCondition()
	b := vaulttest.NewCondition()
	c := vaulttest.NewCondition()

	auth := x.ChainAuth(
		&vaulttest.Auth{Signer: a},
		&vaulttest.Auth{Signers: []finvault.Condition{b}},
	)
	ctx := context.Background()

	conds := auth.GetConditions(ctx)
	assert.Len(t, conds, 2)
	assert.True(t, auth.HasAddress(ctx, a.Address()))
	assert.True(t, auth.HasAddress(ctx, b.Address()))
	assert.False(t, auth.HasAddress(ctx, c.Address()))
}

func TestAuthHelpers(t *testing.T) {
	a := vaulttest.NewCondition()
	b := vaulttest.NewCondition()
	c := vaulttest.NewCondition()

	auth := &vaulttest.Auth{Signers: []finvault.Condition{a, b}}
	ctx := context.Background()

	assert.True(t, a.Equals(x.MainSigner(ctx, auth)))
	assert.Nil(t, x.MainSigner(ctx, &vaulttest.Auth{}))

	addrs := x.GetAddresses(ctx, auth)
	assert.Len(t, addrs, 2)

	assert.True(t, x.HasAllAddresses(ctx, auth, []finvault.Address{a.Address(), b.Address()}))
	assert.False(t, x.HasAllAddresses(ctx, auth, []finvault.Address{a.Address(), c.Address()}))

	got := x.AnyAddress(ctx, auth, []finvault.Address{c.Address(), b.Address()})
	assert.True(t, b.Address().Equals(got))
	assert.Nil(t, x.AnyAddress(ctx, auth, []finvault.Address{c.Address()}))
}
