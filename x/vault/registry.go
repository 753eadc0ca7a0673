package vault

import (
	finvault "github.com/iov-one/finvault"
	"github.com/iov-one/finvault/errors"
)

// registryKey is where the singleton access registry lives. The
// underscore prefix keeps it outside of every bucket key space.
var registryKey = []byte("_c:vault")

// Validate ensures the registry can be persisted.
func (r *Registry) Validate() error {
	if err := r.Admin.Validate(); err != nil {
		return errors.Wrap(err, "admin")
	}
	for i, s := range r.Signers {
		if err := s.Validate(); err != nil {
			return errors.Wrapf(err, "signer %d", i)
		}
	}
	for i, a := range r.Addresses {
		if err := a.Validate(); err != nil {
			return errors.Wrapf(err, "address %d", i)
		}
	}
	for i, t := range r.Tokens {
		if err := t.Validate(); err != nil {
			return errors.Wrapf(err, "token %d", i)
		}
		if t.IsNative() {
			return errors.Wrap(errors.ErrInput, "native asset cannot be whitelisted")
		}
	}
	if r.Quorum == 0 {
		return errors.Wrap(errors.ErrInput, "zero quorum")
	}
	if r.TimeLock < 0 {
		return errors.Wrap(errors.ErrInput, "negative time lock")
	}
	return nil
}

// IsAdmin returns true when the address is the vault administrator.
func (r *Registry) IsAdmin(addr finvault.Address) bool {
	return r.Admin.Equals(addr)
}

// IsSigner returns true when the address is an authorized withdrawal
// signer.
func (r *Registry) IsSigner(addr finvault.Address) bool {
	for _, s := range r.Signers {
		if s.Equals(addr) {
			return true
		}
	}
	return false
}

// IsWhitelistedAddress returns true when the address may receive
// withdrawals.
func (r *Registry) IsWhitelistedAddress(addr finvault.Address) bool {
	for _, a := range r.Addresses {
		if a.Equals(addr) {
			return true
		}
	}
	return false
}

// SupportsAsset returns true for the native asset and for every
// whitelisted token.
func (r *Registry) SupportsAsset(asset *Asset) bool {
	if asset.IsNative() {
		return true
	}
	for _, t := range r.Tokens {
		if t.Equals(asset) {
			return true
		}
	}
	return false
}

// AddSigner authorizes the address as a withdrawal signer. Adding an
// existing signer is a noop.
func (r *Registry) AddSigner(addr finvault.Address) {
	if !r.IsSigner(addr) {
		r.Signers = append(r.Signers, addr)
	}
}

// RemoveSigner revokes the signer authorization. Removing an unknown
// signer is a noop. Signatures already collected on pending
// withdrawals are kept, but no longer count towards quorum.
func (r *Registry) RemoveSigner(addr finvault.Address) {
	for i, s := range r.Signers {
		if s.Equals(addr) {
			r.Signers = append(r.Signers[:i], r.Signers[i+1:]...)
			return
		}
	}
}

// AddAddress whitelists a withdrawal destination. Idempotent.
func (r *Registry) AddAddress(addr finvault.Address) {
	if !r.IsWhitelistedAddress(addr) {
		r.Addresses = append(r.Addresses, addr)
	}
}

// RemoveAddress drops a destination from the whitelist. Idempotent.
func (r *Registry) RemoveAddress(addr finvault.Address) {
	for i, a := range r.Addresses {
		if a.Equals(addr) {
			r.Addresses = append(r.Addresses[:i], r.Addresses[i+1:]...)
			return
		}
	}
}

// AddToken whitelists a token for custody. Idempotent.
func (r *Registry) AddToken(token *Asset) {
	if !r.SupportsAsset(token) {
		r.Tokens = append(r.Tokens, token)
	}
}

// RemoveToken drops a token from the whitelist. Idempotent. Existing
// balances of the token remain in the ledger, only new deposits and
// withdrawal requests are rejected.
func (r *Registry) RemoveToken(token *Asset) {
	for i, t := range r.Tokens {
		if t.Equals(token) {
			r.Tokens = append(r.Tokens[:i], r.Tokens[i+1:]...)
			return
		}
	}
}

// loadRegistry returns the access registry. The registry must have
// been initialized from genesis.
func loadRegistry(db finvault.ReadOnlyKVStore) (*Registry, error) {
	raw, err := db.Get(registryKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.Wrap(errors.ErrNotFound, "vault registry not initialized")
	}
	var r Registry
	if err := r.Unmarshal(raw); err != nil {
		return nil, errors.Wrap(err, "parsing registry")
	}
	return &r, nil
}

// saveRegistry persists the access registry.
func saveRegistry(db finvault.KVStore, r *Registry) error {
	if err := r.Validate(); err != nil {
		return errors.Wrap(err, "invalid registry")
	}
	raw, err := r.Marshal()
	if err != nil {
		return errors.Wrap(err, "marshaling registry")
	}
	return db.Set(registryKey, raw)
}
