package vault

import (
	finvault "github.com/iov-one/finvault"
	"github.com/iov-one/finvault/errors"
)

// NativeAsset returns the singleton native settlement asset.
func NativeAsset() *Asset {
	return &Asset{Kind: NATIVE}
}

// TokenAsset returns an asset referencing the given token contract.
func TokenAsset(contract finvault.Address) *Asset {
	return &Asset{Kind: TOKEN, Contract: contract}
}

// IsNative returns true for the native settlement asset.
func (a *Asset) IsNative() bool {
	return a != nil && a.Kind == NATIVE
}

// Validate ensures the kind and the contract reference agree. The
// native asset carries no contract, a token must carry exactly one.
func (a *Asset) Validate() error {
	if a == nil {
		return errors.Wrap(errors.ErrEmpty, "asset")
	}
	switch a.Kind {
	case NATIVE:
		if len(a.Contract) != 0 {
			return errors.Wrap(errors.ErrInput, "native asset with contract reference")
		}
	case TOKEN:
		if err := a.Contract.Validate(); err != nil {
			return errors.Wrap(err, "contract")
		}
	default:
		return errors.Wrapf(errors.ErrInput, "asset kind %d", a.Kind)
	}
	return nil
}

// Equals returns true when both assets reference the same underlying
// instrument.
func (a *Asset) Equals(b *Asset) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Kind == b.Kind && a.Contract.Equals(b.Contract)
}

// Key returns a unique byte representation used inside bucket keys.
// The kind byte prefix guarantees that the native asset can never
// collide with a token, no matter the contract address value.
func (a *Asset) Key() []byte {
	if a.IsNative() {
		return []byte{byte(NATIVE)}
	}
	key := make([]byte, 0, len(a.Contract)+1)
	key = append(key, byte(TOKEN))
	return append(key, a.Contract...)
}

// Copy returns a deep copy of the asset.
func (a *Asset) Copy() *Asset {
	if a == nil {
		return nil
	}
	contract := make(finvault.Address, len(a.Contract))
	copy(contract, a.Contract)
	if len(contract) == 0 {
		contract = nil
	}
	return &Asset{Kind: a.Kind, Contract: contract}
}
