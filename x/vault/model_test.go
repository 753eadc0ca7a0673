package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	finvault "github.com/iov-one/finvault"
	"github.com/iov-one/finvault/errors"
	"github.com/iov-one/finvault/store"
	"github.com/iov-one/finvault/vaulttest"
)

func TestWithdrawalValidate(t *testing.T) {
	dest := vaulttest.NewCondition().Address()

	good := Withdrawal{
		Amount:      100,
		Destination: dest,
		Asset:       NativeAsset(),
		CreatedAt:   5,
		Status:      PENDING,
	}
	assert.NoError(t, good.Validate())

	cases := map[string]func(*Withdrawal){
		"zero amount":        func(w *Withdrawal) { w.Amount = 0 },
		"no destination":     func(w *Withdrawal) { w.Destination = nil },
		"no asset":           func(w *Withdrawal) { w.Asset = nil },
		"negative height":    func(w *Withdrawal) { w.CreatedAt = -1 },
		"unknown status":     func(w *Withdrawal) { w.Status = WithdrawalStatus(9) },
		"invalid signature":  func(w *Withdrawal) { w.Signatures = []finvault.Address{{1, 2}} },
	}
	for name, corrupt := range cases {
		t.Run(name, func(t *testing.T) {
			w := *good.Copy().(*Withdrawal)
			corrupt(&w)
			assert.Error(t, w.Validate())
		})
	}
}

func TestWithdrawalCopyIsDeep(t *testing.T) {
	orig := &Withdrawal{
		Amount:      100,
		Destination: vaulttest.NewCondition().Address(),
		Asset:       TokenAsset(vaulttest.NewCondition().Address()),
		CreatedAt:   5,
		Signatures:  []finvault.Address{vaulttest.NewCondition().Address()},
		Status:      PENDING,
	}
	cpy := orig.Copy().(*Withdrawal)

	cpy.Signatures[0][0]++
	cpy.Destination[0]++
	cpy.Asset.Contract[0]++
	cpy.Status = EXECUTED

	assert.False(t, orig.Signatures[0].Equals(cpy.Signatures[0]))
	assert.False(t, orig.Destination.Equals(cpy.Destination))
	assert.False(t, orig.Asset.Equals(cpy.Asset))
	assert.Equal(t, PENDING, orig.Status)
}

func TestWithdrawalCodecRoundTrip(t *testing.T) {
	orig := &Withdrawal{
		Amount:      1000000,
		Destination: vaulttest.NewCondition().Address(),
		Asset:       TokenAsset(vaulttest.NewCondition().Address()),
		CreatedAt:   144,
		Signatures: []finvault.Address{
			vaulttest.NewCondition().Address(),
			vaulttest.NewCondition().Address(),
		},
		Status: CANCELLED,
	}
	raw, err := orig.Marshal()
	require.NoError(t, err)

	var got Withdrawal
	require.NoError(t, got.Unmarshal(raw))
	assert.Equal(t, orig.Amount, got.Amount)
	assert.True(t, orig.Destination.Equals(got.Destination))
	assert.True(t, orig.Asset.Equals(got.Asset))
	assert.Equal(t, orig.CreatedAt, got.CreatedAt)
	require.Len(t, got.Signatures, 2)
	assert.True(t, orig.Signatures[1].Equals(got.Signatures[1]))
	assert.Equal(t, CANCELLED, got.Status)
}

func TestBalanceBucket(t *testing.T) {
	db := store.MemStore()
	b := NewBalanceBucket()
	owner := vaulttest.NewCondition().Address()
	token := TokenAsset(vaulttest.NewCondition().Address())

	// missing entries read as zero
	bal, err := b.Balance(db, owner, NativeAsset())
	require.NoError(t, err)
	assert.Equal(t, int64(0), bal.Whole)

	require.NoError(t, b.SetBalance(db, owner, NativeAsset(), &Balance{Whole: 50}))
	require.NoError(t, b.SetBalance(db, owner, token, &Balance{Whole: 7}))

	bal, err = b.Balance(db, owner, NativeAsset())
	require.NoError(t, err)
	assert.Equal(t, int64(50), bal.Whole)
	bal, err = b.Balance(db, owner, token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), bal.Whole)

	// a zero balance removes the entry
	require.NoError(t, b.SetBalance(db, owner, token, &Balance{}))
	assert.True(t, errors.ErrNotFound.Is(b.Has(db, BalanceKey(owner, token))))

	// clearing an entry that was never written is a noop
	require.NoError(t, b.SetBalance(db, vaulttest.NewCondition().Address(), token, &Balance{}))

	// negative balances are never persisted
	err = b.SetBalance(db, owner, NativeAsset(), &Balance{Whole: -1})
	assert.True(t, errors.ErrState.Is(err))
}

func TestControllerDebitCredit(t *testing.T) {
	db := store.MemStore()
	c := NewController(NewBalanceBucket())
	owner := vaulttest.NewCondition().Address()

	require.NoError(t, c.Credit(db, owner, NativeAsset(), 100))
	require.NoError(t, c.Debit(db, owner, NativeAsset(), 30))

	bal, err := c.Balance(db, owner, NativeAsset())
	require.NoError(t, err)
	assert.Equal(t, int64(70), bal)

	// overdrawing fails and leaves the balance untouched
	err = c.Debit(db, owner, NativeAsset(), 71)
	assert.True(t, ErrInsufficientFunds.Is(err))
	bal, err = c.Balance(db, owner, NativeAsset())
	require.NoError(t, err)
	assert.Equal(t, int64(70), bal)

	// zero and negative moves are rejected
	assert.True(t, ErrInvalidAmount.Is(c.Credit(db, owner, NativeAsset(), 0)))
	assert.True(t, ErrInvalidAmount.Is(c.Debit(db, owner, NativeAsset(), -5)))
}
