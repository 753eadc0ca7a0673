package vault

import (
	finvault "github.com/iov-one/finvault"
	"github.com/iov-one/finvault/errors"
)

// Mover is the external ledger adapter. It moves real funds between a
// principal and the vault, for the native asset as well as for token
// contracts. The vault treats it as an opaque capability: an error
// aborts the whole operation and no vault state is kept.
type Mover interface {
	// Pull transfers funds from the principal into vault custody.
	Pull(db finvault.KVStore, from finvault.Address, asset *Asset, amount int64) error
	// Push transfers funds from vault custody to the principal.
	Push(db finvault.KVStore, to finvault.Address, asset *Asset, amount int64) error
}

// Controller maintains the custodial balance ledger.
type Controller struct {
	bucket BalanceBucket
}

// NewController returns a controller over the balance ledger.
func NewController(bucket BalanceBucket) Controller {
	return Controller{bucket: bucket}
}

// Balance returns the custodial balance of a (principal, asset) pair.
// Missing entries read as zero.
func (c Controller) Balance(db finvault.ReadOnlyKVStore, owner finvault.Address, asset *Asset) (int64, error) {
	bal, err := c.bucket.Balance(db, owner, asset)
	if err != nil {
		return 0, err
	}
	return bal.Whole, nil
}

// Credit increases the custodial balance of the given pair.
func (c Controller) Credit(db finvault.KVStore, owner finvault.Address, asset *Asset, amount int64) error {
	if amount <= 0 {
		return errors.Wrap(ErrInvalidAmount, "credit")
	}
	bal, err := c.bucket.Balance(db, owner, asset)
	if err != nil {
		return err
	}
	next := bal.Whole + amount
	if next < bal.Whole {
		return errors.Wrap(errors.ErrOverflow, "balance")
	}
	return c.bucket.SetBalance(db, owner, asset, &Balance{Whole: next})
}

// Debit decreases the custodial balance of the given pair. The balance
// can never go negative, an entry that does not cover the amount
// returns ErrInsufficientFunds and nothing is written.
func (c Controller) Debit(db finvault.KVStore, owner finvault.Address, asset *Asset, amount int64) error {
	if amount <= 0 {
		return errors.Wrap(ErrInvalidAmount, "debit")
	}
	bal, err := c.bucket.Balance(db, owner, asset)
	if err != nil {
		return err
	}
	if bal.Whole < amount {
		return errors.Wrapf(ErrInsufficientFunds, "have %d, need %d", bal.Whole, amount)
	}
	return c.bucket.SetBalance(db, owner, asset, &Balance{Whole: bal.Whole - amount})
}
