package vault

import (
	finvault "github.com/iov-one/finvault"
	"github.com/iov-one/finvault/errors"
	"github.com/iov-one/finvault/x"
)

const (
	// pay per byte stored and a flat fee per action
	depositCost  int64 = 100
	requestCost  int64 = 150
	signCost     int64 = 100
	executeCost  int64 = 250
	cancelCost   int64 = 100
	registryCost int64 = 50
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r finvault.Registry, auth x.Authenticator, mover Mover) {
	withdrawals := NewWithdrawalBucket()
	ctrl := NewController(NewBalanceBucket())

	r.Handle(&DepositMsg{}, DepositHandler{auth: auth, mover: mover, ctrl: ctrl})
	r.Handle(&RequestWithdrawalMsg{}, RequestWithdrawalHandler{auth: auth, ctrl: ctrl, bucket: withdrawals})
	r.Handle(&SignWithdrawalMsg{}, SignWithdrawalHandler{auth: auth, bucket: withdrawals})
	r.Handle(&ExecuteWithdrawalMsg{}, ExecuteWithdrawalHandler{mover: mover, ctrl: ctrl, bucket: withdrawals})
	r.Handle(&CancelWithdrawalMsg{}, CancelWithdrawalHandler{auth: auth, bucket: withdrawals})

	admin := RegistryHandler{auth: auth}
	r.Handle(&AddSignerMsg{}, admin)
	r.Handle(&RemoveSignerMsg{}, admin)
	r.Handle(&AddAddressMsg{}, admin)
	r.Handle(&RemoveAddressMsg{}, admin)
	r.Handle(&AddTokenMsg{}, admin)
	r.Handle(&RemoveTokenMsg{}, admin)

	freeze := FreezeHandler{auth: auth}
	r.Handle(&FreezeMsg{}, freeze)
	r.Handle(&UnfreezeMsg{}, freeze)
}

// RegisterQuery will register the withdrawal and balance buckets under
// /withdrawals and /balances.
func RegisterQuery(qr finvault.QueryRouter) {
	NewWithdrawalBucket().Register("withdrawals", qr)
	NewBalanceBucket().Register("balances", qr)
}

// DepositHandler moves funds from the caller into vault custody.
type DepositHandler struct {
	auth  x.Authenticator
	mover Mover
	ctrl  Controller
}

var _ finvault.Handler = DepositHandler{}

// Check verifies the deposit without moving any funds.
func (h DepositHandler) Check(ctx finvault.Context, db finvault.KVStore, tx finvault.Tx) (*finvault.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &finvault.CheckResult{GasAllocated: depositCost}, nil
}

// Deliver pulls the funds from the caller through the ledger adapter
// and credits the caller's custodial balance. Both happen or neither.
func (h DepositHandler) Deliver(ctx finvault.Context, db finvault.KVStore, tx finvault.Tx) (*finvault.DeliverResult, error) {
	msg, sender, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.mover.Pull(db, sender, msg.Asset, msg.Amount); err != nil {
		return nil, errors.Wrap(err, "ledger adapter")
	}
	if err := h.ctrl.Credit(db, sender, msg.Asset, msg.Amount); err != nil {
		return nil, err
	}
	return &finvault.DeliverResult{}, nil
}

func (h DepositHandler) validate(ctx finvault.Context, db finvault.KVStore, tx finvault.Tx) (*DepositMsg, finvault.Address, error) {
	var msg DepositMsg
	if err := finvault.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	if err := msg.Validate(); err != nil {
		return nil, nil, err
	}
	reg, err := loadRegistry(db)
	if err != nil {
		return nil, nil, err
	}
	if reg.Frozen {
		return nil, nil, errors.Wrap(ErrFrozen, "deposit")
	}
	if !reg.SupportsAsset(msg.Asset) {
		return nil, nil, errors.Wrap(ErrUnsupportedAsset, "deposit")
	}
	sender := x.MainSigner(ctx, h.auth)
	if sender == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	return &msg, sender.Address(), nil
}

// RequestWithdrawalHandler opens a new pending withdrawal request.
type RequestWithdrawalHandler struct {
	auth   x.Authenticator
	ctrl   Controller
	bucket WithdrawalBucket
}

var _ finvault.Handler = RequestWithdrawalHandler{}

// Check verifies the request without creating it.
func (h RequestWithdrawalHandler) Check(ctx finvault.Context, db finvault.KVStore, tx finvault.Tx) (*finvault.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &finvault.CheckResult{GasAllocated: requestCost}, nil
}

// Deliver stores the request under a fresh id. The id is returned as
// result data so the signers know what to countersign.
func (h RequestWithdrawalHandler) Deliver(ctx finvault.Context, db finvault.KVStore, tx finvault.Tx) (*finvault.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	height, ok := finvault.GetHeight(ctx)
	if !ok {
		return nil, errors.Wrap(errors.ErrState, "block height not set")
	}
	w := &Withdrawal{
		Amount:      msg.Amount,
		Destination: msg.Destination,
		Asset:       msg.Asset,
		CreatedAt:   height,
		Status:      PENDING,
	}
	obj, err := h.bucket.Create(db, w)
	if err != nil {
		return nil, err
	}
	return &finvault.DeliverResult{Data: obj.Key()}, nil
}

func (h RequestWithdrawalHandler) validate(ctx finvault.Context, db finvault.KVStore, tx finvault.Tx) (*RequestWithdrawalMsg, error) {
	var msg RequestWithdrawalMsg
	if err := finvault.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	reg, err := loadRegistry(db)
	if err != nil {
		return nil, err
	}
	if reg.Frozen {
		return nil, errors.Wrap(ErrFrozen, "request withdrawal")
	}
	if x.AnyAddress(ctx, h.auth, reg.Signers) == nil {
		return nil, errors.Wrap(ErrNotAuthorized, "not a signer")
	}
	if !reg.IsWhitelistedAddress(msg.Destination) {
		return nil, errors.Wrapf(ErrNotWhitelisted, "destination %s", msg.Destination)
	}
	if !reg.SupportsAsset(msg.Asset) {
		return nil, errors.Wrap(ErrUnsupportedAsset, "request withdrawal")
	}
	// The balance is checked again at execution time. This early check
	// only keeps obviously unfunded requests out of the queue.
	bal, err := h.ctrl.Balance(db, msg.Destination, msg.Asset)
	if err != nil {
		return nil, err
	}
	if bal < msg.Amount {
		return nil, errors.Wrapf(ErrInsufficientFunds, "have %d, need %d", bal, msg.Amount)
	}
	return &msg, nil
}

// SignWithdrawalHandler collects signer approvals on a pending
// request.
type SignWithdrawalHandler struct {
	auth   x.Authenticator
	bucket WithdrawalBucket
}

var _ finvault.Handler = SignWithdrawalHandler{}

// Check verifies the signature can be added.
func (h SignWithdrawalHandler) Check(ctx finvault.Context, db finvault.KVStore, tx finvault.Tx) (*finvault.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &finvault.CheckResult{GasAllocated: signCost}, nil
}

// Deliver records the signature. Signing twice is a noop, the
// signature set never holds duplicates.
func (h SignWithdrawalHandler) Deliver(ctx finvault.Context, db finvault.KVStore, tx finvault.Tx) (*finvault.DeliverResult, error) {
	msg, w, signer, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if w.SignedBy(signer) {
		return &finvault.DeliverResult{Log: "already signed"}, nil
	}
	w.Signatures = append(w.Signatures, signer)
	if err := h.bucket.Save(db, NewWithdrawalObj(msg.WithdrawalId, w)); err != nil {
		return nil, err
	}
	return &finvault.DeliverResult{}, nil
}

func (h SignWithdrawalHandler) validate(ctx finvault.Context, db finvault.KVStore, tx finvault.Tx) (*SignWithdrawalMsg, *Withdrawal, finvault.Address, error) {
	var msg SignWithdrawalMsg
	if err := finvault.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, err
	}
	if err := msg.Validate(); err != nil {
		return nil, nil, nil, err
	}
	reg, err := loadRegistry(db)
	if err != nil {
		return nil, nil, nil, err
	}
	if reg.Frozen {
		return nil, nil, nil, errors.Wrap(ErrFrozen, "sign withdrawal")
	}
	signer := x.AnyAddress(ctx, h.auth, reg.Signers)
	if signer == nil {
		return nil, nil, nil, errors.Wrap(ErrNotAuthorized, "not a signer")
	}
	w, err := h.bucket.GetWithdrawal(db, msg.WithdrawalId)
	if err != nil {
		return nil, nil, nil, err
	}
	if w.Status != PENDING {
		return nil, nil, nil, errors.Wrapf(ErrInvalidState, "status %s", w.Status)
	}
	return &msg, w, signer, nil
}

// ExecuteWithdrawalHandler releases the funds of a pending request
// once quorum and time lock are satisfied. Any caller may trigger the
// execution, the approvals are already on the request.
type ExecuteWithdrawalHandler struct {
	mover  Mover
	ctrl   Controller
	bucket WithdrawalBucket
}

var _ finvault.Handler = ExecuteWithdrawalHandler{}

// Check verifies the withdrawal could execute right now.
func (h ExecuteWithdrawalHandler) Check(ctx finvault.Context, db finvault.KVStore, tx finvault.Tx) (*finvault.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &finvault.CheckResult{GasAllocated: executeCost}, nil
}

// Deliver debits the custodial balance, pushes the funds out through
// the ledger adapter and marks the request executed. All three happen
// or none.
func (h ExecuteWithdrawalHandler) Deliver(ctx finvault.Context, db finvault.KVStore, tx finvault.Tx) (*finvault.DeliverResult, error) {
	msg, w, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Debit(db, w.Destination, w.Asset, w.Amount); err != nil {
		return nil, err
	}
	if err := h.mover.Push(db, w.Destination, w.Asset, w.Amount); err != nil {
		return nil, errors.Wrap(err, "ledger adapter")
	}
	w.Status = EXECUTED
	if err := h.bucket.Save(db, NewWithdrawalObj(msg.WithdrawalId, w)); err != nil {
		return nil, err
	}
	return &finvault.DeliverResult{Data: msg.WithdrawalId}, nil
}

func (h ExecuteWithdrawalHandler) validate(ctx finvault.Context, db finvault.KVStore, tx finvault.Tx) (*ExecuteWithdrawalMsg, *Withdrawal, error) {
	var msg ExecuteWithdrawalMsg
	if err := finvault.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	if err := msg.Validate(); err != nil {
		return nil, nil, err
	}
	reg, err := loadRegistry(db)
	if err != nil {
		return nil, nil, err
	}
	if reg.Frozen {
		return nil, nil, errors.Wrap(ErrFrozen, "execute withdrawal")
	}
	// Anyone may execute. The authorization already happened when the
	// signers approved the request.
	w, err := h.bucket.GetWithdrawal(db, msg.WithdrawalId)
	if err != nil {
		return nil, nil, err
	}
	if w.Status != PENDING {
		return nil, nil, errors.Wrapf(ErrInvalidState, "status %s", w.Status)
	}
	// Signatures of since removed signers stay on the request but do
	// not count towards quorum.
	var valid uint32
	for _, sig := range w.Signatures {
		if reg.IsSigner(sig) {
			valid++
		}
	}
	if valid < reg.Quorum {
		return nil, nil, errors.Wrapf(ErrQuorum, "have %d, need %d", valid, reg.Quorum)
	}
	height, ok := finvault.GetHeight(ctx)
	if !ok {
		return nil, nil, errors.Wrap(errors.ErrState, "block height not set")
	}
	if height < w.CreatedAt+reg.TimeLock {
		return nil, nil, errors.Wrapf(ErrTimeLock, "unlocks at height %d", w.CreatedAt+reg.TimeLock)
	}
	// Re-check the balance: it may have been drained since the request
	// was opened, for example by another executed withdrawal.
	bal, err := h.ctrl.Balance(db, w.Destination, w.Asset)
	if err != nil {
		return nil, nil, err
	}
	if bal < w.Amount {
		return nil, nil, errors.Wrapf(ErrInsufficientFunds, "have %d, need %d", bal, w.Amount)
	}
	return &msg, w, nil
}

// CancelWithdrawalHandler terminates a pending request without moving
// funds.
type CancelWithdrawalHandler struct {
	auth   x.Authenticator
	bucket WithdrawalBucket
}

var _ finvault.Handler = CancelWithdrawalHandler{}

// Check verifies the request can be cancelled.
func (h CancelWithdrawalHandler) Check(ctx finvault.Context, db finvault.KVStore, tx finvault.Tx) (*finvault.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &finvault.CheckResult{GasAllocated: cancelCost}, nil
}

// Deliver marks the request cancelled. The record stays in the bucket,
// its id is never reused.
func (h CancelWithdrawalHandler) Deliver(ctx finvault.Context, db finvault.KVStore, tx finvault.Tx) (*finvault.DeliverResult, error) {
	msg, w, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	w.Status = CANCELLED
	if err := h.bucket.Save(db, NewWithdrawalObj(msg.WithdrawalId, w)); err != nil {
		return nil, err
	}
	return &finvault.DeliverResult{}, nil
}

func (h CancelWithdrawalHandler) validate(ctx finvault.Context, db finvault.KVStore, tx finvault.Tx) (*CancelWithdrawalMsg, *Withdrawal, error) {
	var msg CancelWithdrawalMsg
	if err := finvault.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	if err := msg.Validate(); err != nil {
		return nil, nil, err
	}
	reg, err := loadRegistry(db)
	if err != nil {
		return nil, nil, err
	}
	if reg.Frozen {
		return nil, nil, errors.Wrap(ErrFrozen, "cancel withdrawal")
	}
	if !h.auth.HasAddress(ctx, reg.Admin) {
		return nil, nil, errors.Wrap(ErrNotAuthorized, "not the admin")
	}
	w, err := h.bucket.GetWithdrawal(db, msg.WithdrawalId)
	if err != nil {
		return nil, nil, err
	}
	if w.Status != PENDING {
		return nil, nil, errors.Wrapf(ErrInvalidState, "status %s", w.Status)
	}
	return &msg, w, nil
}

// RegistryHandler applies administrator updates to the signer set and
// the whitelists. These stay available while the vault is frozen, so
// the admin can rotate a compromised signer before unfreezing.
type RegistryHandler struct {
	auth x.Authenticator
}

var _ finvault.Handler = RegistryHandler{}

// Check verifies the update.
func (h RegistryHandler) Check(ctx finvault.Context, db finvault.KVStore, tx finvault.Tx) (*finvault.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &finvault.CheckResult{GasAllocated: registryCost}, nil
}

// Deliver applies the update to the registry. All updates are
// idempotent.
func (h RegistryHandler) Deliver(ctx finvault.Context, db finvault.KVStore, tx finvault.Tx) (*finvault.DeliverResult, error) {
	msg, reg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	switch m := msg.(type) {
	case *AddSignerMsg:
		reg.AddSigner(m.Signer)
	case *RemoveSignerMsg:
		reg.RemoveSigner(m.Signer)
	case *AddAddressMsg:
		reg.AddAddress(m.Address)
	case *RemoveAddressMsg:
		reg.RemoveAddress(m.Address)
	case *AddTokenMsg:
		reg.AddToken(m.Token)
	case *RemoveTokenMsg:
		reg.RemoveToken(m.Token)
	default:
		return nil, errors.Wrapf(errors.ErrMsg, "unexpected type %T", msg)
	}
	if err := saveRegistry(db, reg); err != nil {
		return nil, err
	}
	return &finvault.DeliverResult{}, nil
}

func (h RegistryHandler) validate(ctx finvault.Context, db finvault.KVStore, tx finvault.Tx) (finvault.Msg, *Registry, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot get message")
	}
	switch msg.(type) {
	case *AddSignerMsg, *RemoveSignerMsg, *AddAddressMsg, *RemoveAddressMsg, *AddTokenMsg, *RemoveTokenMsg:
		// routed here
	default:
		return nil, nil, errors.Wrapf(errors.ErrMsg, "unexpected type %T", msg)
	}
	if v, ok := msg.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return nil, nil, err
		}
	}
	reg, err := loadRegistry(db)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, reg.Admin) {
		return nil, nil, errors.Wrap(ErrNotAuthorized, "not the admin")
	}
	return msg, reg, nil
}

// FreezeHandler toggles the emergency freeze.
type FreezeHandler struct {
	auth x.Authenticator
}

var _ finvault.Handler = FreezeHandler{}

// Check verifies the caller may toggle the freeze.
func (h FreezeHandler) Check(ctx finvault.Context, db finvault.KVStore, tx finvault.Tx) (*finvault.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &finvault.CheckResult{GasAllocated: registryCost}, nil
}

// Deliver flips the freeze flag. Freezing a frozen vault and
// unfreezing a running one are noops.
func (h FreezeHandler) Deliver(ctx finvault.Context, db finvault.KVStore, tx finvault.Tx) (*finvault.DeliverResult, error) {
	msg, reg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	switch msg.(type) {
	case *FreezeMsg:
		reg.Frozen = true
	case *UnfreezeMsg:
		reg.Frozen = false
	default:
		return nil, errors.Wrapf(errors.ErrMsg, "unexpected type %T", msg)
	}
	if err := saveRegistry(db, reg); err != nil {
		return nil, err
	}
	return &finvault.DeliverResult{}, nil
}

func (h FreezeHandler) validate(ctx finvault.Context, db finvault.KVStore, tx finvault.Tx) (finvault.Msg, *Registry, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot get message")
	}
	switch msg.(type) {
	case *FreezeMsg, *UnfreezeMsg:
		// routed here
	default:
		return nil, nil, errors.Wrapf(errors.ErrMsg, "unexpected type %T", msg)
	}
	reg, err := loadRegistry(db)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, reg.Admin) {
		return nil, nil, errors.Wrap(ErrNotAuthorized, "not the admin")
	}
	return msg, reg, nil
}
