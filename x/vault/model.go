package vault

import (
	finvault "github.com/iov-one/finvault"
	"github.com/iov-one/finvault/errors"
	"github.com/iov-one/finvault/orm"
)

var _ orm.CloneableData = (*Balance)(nil)

// Validate ensures a persisted balance is never negative.
func (b *Balance) Validate() error {
	if b.Whole < 0 {
		return errors.Wrap(errors.ErrState, "negative balance")
	}
	return nil
}

// Copy returns an independent copy of the balance.
func (b *Balance) Copy() orm.CloneableData {
	return &Balance{Whole: b.Whole}
}

var _ orm.CloneableData = (*Withdrawal)(nil)

// Validate ensures a persisted withdrawal is internally consistent.
func (w *Withdrawal) Validate() error {
	if w.Amount <= 0 {
		return errors.Wrap(ErrInvalidAmount, "amount")
	}
	if err := w.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if err := w.Asset.Validate(); err != nil {
		return errors.Wrap(err, "asset")
	}
	if w.CreatedAt < 0 {
		return errors.Wrap(errors.ErrState, "creation height")
	}
	for i, sig := range w.Signatures {
		if err := sig.Validate(); err != nil {
			return errors.Wrapf(err, "signature %d", i)
		}
	}
	switch w.Status {
	case PENDING, EXECUTED, CANCELLED:
		// ok
	default:
		return errors.Wrapf(errors.ErrState, "status %d", w.Status)
	}
	return nil
}

// Copy returns an independent copy of the withdrawal.
func (w *Withdrawal) Copy() orm.CloneableData {
	sigs := make([]finvault.Address, len(w.Signatures))
	for i, sig := range w.Signatures {
		sigs[i] = append(finvault.Address(nil), sig...)
	}
	if len(sigs) == 0 {
		sigs = nil
	}
	return &Withdrawal{
		Amount:      w.Amount,
		Destination: append(finvault.Address(nil), w.Destination...),
		Asset:       w.Asset.Copy(),
		CreatedAt:   w.CreatedAt,
		Signatures:  sigs,
		Status:      w.Status,
	}
}

// SignedBy returns true when the given address already signed this
// withdrawal. Signing is idempotent, so callers use this to detect a
// repeated signature.
func (w *Withdrawal) SignedBy(addr finvault.Address) bool {
	for _, sig := range w.Signatures {
		if sig.Equals(addr) {
			return true
		}
	}
	return false
}

// NewWithdrawalObj wraps a withdrawal in a storable object.
func NewWithdrawalObj(key []byte, w *Withdrawal) orm.Object {
	return orm.NewSimpleObj(key, w)
}

// WithdrawalBucket stores withdrawal requests, keyed by an
// auto-incremented 8 byte id. Ids are never reused, cancelled and
// executed requests stay in the bucket for auditability.
type WithdrawalBucket struct {
	orm.Bucket
	idSeq orm.Sequence
}

// NewWithdrawalBucket initializes a WithdrawalBucket.
func NewWithdrawalBucket() WithdrawalBucket {
	b := orm.NewBucket("wdrw", orm.NewSimpleObj(nil, &Withdrawal{}))
	return WithdrawalBucket{
		Bucket: b,
		idSeq:  b.Sequence("id"),
	}
}

// Create stores the given withdrawal under the next sequence id and
// returns the persisted object. The object key is the new id.
func (b WithdrawalBucket) Create(db finvault.KVStore, w *Withdrawal) (orm.Object, error) {
	key, err := b.idSeq.NextVal(db)
	if err != nil {
		return nil, err
	}
	obj := orm.NewSimpleObj(key, w)
	return obj, b.Bucket.Save(db, obj)
}

// GetWithdrawal loads the withdrawal with the given id, or
// ErrNoWithdrawal when it does not exist.
func (b WithdrawalBucket) GetWithdrawal(db finvault.ReadOnlyKVStore, id []byte) (*Withdrawal, error) {
	obj, err := b.Get(db, id)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errors.Wrapf(ErrNoWithdrawal, "id %x", id)
	}
	w, ok := obj.Value().(*Withdrawal)
	if !ok {
		return nil, errors.Wrapf(errors.ErrModel, "invalid type: %T", obj.Value())
	}
	return w, nil
}

// Save persists a withdrawal under its id.
func (b WithdrawalBucket) Save(db finvault.KVStore, obj orm.Object) error {
	if _, ok := obj.Value().(*Withdrawal); !ok {
		return errors.Wrapf(errors.ErrModel, "invalid type: %T", obj.Value())
	}
	return b.Bucket.Save(db, obj)
}

// BalanceBucket stores one Balance entry per (principal, asset) pair.
type BalanceBucket struct {
	orm.ModelBucket
}

// NewBalanceBucket initializes a BalanceBucket.
func NewBalanceBucket() BalanceBucket {
	return BalanceBucket{
		ModelBucket: orm.NewModelBucket("blnc", &Balance{}),
	}
}

// BalanceKey is the composite key of one balance entry. The fixed
// address length keeps the principal and asset parts unambiguous.
func BalanceKey(owner finvault.Address, asset *Asset) []byte {
	key := make([]byte, 0, finvault.AddressLength+len(asset.Key()))
	key = append(key, owner...)
	return append(key, asset.Key()...)
}

// Balance returns the balance of the given (principal, asset) pair. A
// missing entry is a zero balance.
func (b BalanceBucket) Balance(db finvault.ReadOnlyKVStore, owner finvault.Address, asset *Asset) (*Balance, error) {
	var bal Balance
	err := b.One(db, BalanceKey(owner, asset), &bal)
	switch {
	case err == nil:
		return &bal, nil
	case errors.ErrNotFound.Is(err):
		return &Balance{}, nil
	default:
		return nil, err
	}
}

// SetBalance writes the balance for the given (principal, asset) pair.
// A zero balance removes the entry so the bucket only holds funded
// pairs.
func (b BalanceBucket) SetBalance(db finvault.KVStore, owner finvault.Address, asset *Asset, bal *Balance) error {
	key := BalanceKey(owner, asset)
	if bal.Whole == 0 {
		if err := b.Delete(db, key); err != nil && !errors.ErrNotFound.Is(err) {
			return err
		}
		return nil
	}
	return b.Put(db, key, bal)
}
