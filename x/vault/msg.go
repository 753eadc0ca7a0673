package vault

import (
	finvault "github.com/iov-one/finvault"
	"github.com/iov-one/finvault/errors"
)

const (
	pathDeposit            = "vault/deposit"
	pathRequestWithdrawal  = "vault/request_withdrawal"
	pathSignWithdrawal     = "vault/sign_withdrawal"
	pathExecuteWithdrawal  = "vault/execute_withdrawal"
	pathCancelWithdrawal   = "vault/cancel_withdrawal"
	pathAddSigner          = "vault/add_signer"
	pathRemoveSigner       = "vault/remove_signer"
	pathAddAddress         = "vault/add_address"
	pathRemoveAddress      = "vault/remove_address"
	pathAddToken           = "vault/add_token"
	pathRemoveToken        = "vault/remove_token"
	pathFreeze             = "vault/freeze"
	pathUnfreeze           = "vault/unfreeze"
	withdrawalIDLength     = 8
)

var _ finvault.Msg = (*DepositMsg)(nil)
var _ finvault.Msg = (*RequestWithdrawalMsg)(nil)
var _ finvault.Msg = (*SignWithdrawalMsg)(nil)
var _ finvault.Msg = (*ExecuteWithdrawalMsg)(nil)
var _ finvault.Msg = (*CancelWithdrawalMsg)(nil)
var _ finvault.Msg = (*AddSignerMsg)(nil)
var _ finvault.Msg = (*RemoveSignerMsg)(nil)
var _ finvault.Msg = (*AddAddressMsg)(nil)
var _ finvault.Msg = (*RemoveAddressMsg)(nil)
var _ finvault.Msg = (*AddTokenMsg)(nil)
var _ finvault.Msg = (*RemoveTokenMsg)(nil)
var _ finvault.Msg = (*FreezeMsg)(nil)
var _ finvault.Msg = (*UnfreezeMsg)(nil)

// Path returns the routing path for this message.
func (DepositMsg) Path() string {
	return pathDeposit
}

// Validate makes sure that this is sensible.
func (m *DepositMsg) Validate() error {
	if m.Amount <= 0 {
		return errors.Wrap(ErrInvalidAmount, "deposit amount")
	}
	return m.Asset.Validate()
}

// Path returns the routing path for this message.
func (RequestWithdrawalMsg) Path() string {
	return pathRequestWithdrawal
}

// Validate makes sure that this is sensible.
func (m *RequestWithdrawalMsg) Validate() error {
	if m.Amount <= 0 {
		return errors.Wrap(ErrInvalidAmount, "withdrawal amount")
	}
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	return m.Asset.Validate()
}

// Path returns the routing path for this message.
func (SignWithdrawalMsg) Path() string {
	return pathSignWithdrawal
}

// Validate makes sure that this is sensible.
func (m *SignWithdrawalMsg) Validate() error {
	return validateWithdrawalID(m.WithdrawalId)
}

// Path returns the routing path for this message.
func (ExecuteWithdrawalMsg) Path() string {
	return pathExecuteWithdrawal
}

// Validate makes sure that this is sensible.
func (m *ExecuteWithdrawalMsg) Validate() error {
	return validateWithdrawalID(m.WithdrawalId)
}

// Path returns the routing path for this message.
func (CancelWithdrawalMsg) Path() string {
	return pathCancelWithdrawal
}

// Validate makes sure that this is sensible.
func (m *CancelWithdrawalMsg) Validate() error {
	return validateWithdrawalID(m.WithdrawalId)
}

// Path returns the routing path for this message.
func (AddSignerMsg) Path() string {
	return pathAddSigner
}

// Validate makes sure that this is sensible.
func (m *AddSignerMsg) Validate() error {
	return errors.Wrap(m.Signer.Validate(), "signer")
}

// Path returns the routing path for this message.
func (RemoveSignerMsg) Path() string {
	return pathRemoveSigner
}

// Validate makes sure that this is sensible.
func (m *RemoveSignerMsg) Validate() error {
	return errors.Wrap(m.Signer.Validate(), "signer")
}

// Path returns the routing path for this message.
func (AddAddressMsg) Path() string {
	return pathAddAddress
}

// Validate makes sure that this is sensible.
func (m *AddAddressMsg) Validate() error {
	return errors.Wrap(m.Address.Validate(), "address")
}

// Path returns the routing path for this message.
func (RemoveAddressMsg) Path() string {
	return pathRemoveAddress
}

// Validate makes sure that this is sensible.
func (m *RemoveAddressMsg) Validate() error {
	return errors.Wrap(m.Address.Validate(), "address")
}

// Path returns the routing path for this message.
func (AddTokenMsg) Path() string {
	return pathAddToken
}

// Validate makes sure that this is sensible.
func (m *AddTokenMsg) Validate() error {
	if err := m.Token.Validate(); err != nil {
		return errors.Wrap(err, "token")
	}
	if m.Token.IsNative() {
		return errors.Wrap(errors.ErrInput, "native asset cannot be whitelisted")
	}
	return nil
}

// Path returns the routing path for this message.
func (RemoveTokenMsg) Path() string {
	return pathRemoveToken
}

// Validate makes sure that this is sensible.
func (m *RemoveTokenMsg) Validate() error {
	if err := m.Token.Validate(); err != nil {
		return errors.Wrap(err, "token")
	}
	if m.Token.IsNative() {
		return errors.Wrap(errors.ErrInput, "native asset cannot be removed")
	}
	return nil
}

// Path returns the routing path for this message.
func (FreezeMsg) Path() string {
	return pathFreeze
}

// Validate makes sure that this is sensible.
func (m *FreezeMsg) Validate() error {
	return nil
}

// Path returns the routing path for this message.
func (UnfreezeMsg) Path() string {
	return pathUnfreeze
}

// Validate makes sure that this is sensible.
func (m *UnfreezeMsg) Validate() error {
	return nil
}

func validateWithdrawalID(id []byte) error {
	if len(id) != withdrawalIDLength {
		return errors.Wrapf(errors.ErrInput, "withdrawal id must be %d bytes", withdrawalIDLength)
	}
	return nil
}
