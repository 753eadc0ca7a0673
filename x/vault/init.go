package vault

import (
	finvault "github.com/iov-one/finvault"
	"github.com/iov-one/finvault/errors"
)

const (
	// DefaultQuorum is the number of signer approvals a withdrawal
	// needs before it can be executed.
	DefaultQuorum uint32 = 2

	// DefaultTimeLock is the number of blocks that must pass between
	// opening a withdrawal request and executing it.
	DefaultTimeLock int64 = 144
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ finvault.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial vault setup from the genesis and
// store the access registry.
func (Initializer) FromGenesis(opts finvault.Options, db finvault.KVStore) error {
	var genesis struct {
		Admin     string   `json:"admin"`
		Signers   []string `json:"signers"`
		Addresses []string `json:"addresses"`
		Tokens    []string `json:"tokens"`
		Quorum    uint32   `json:"quorum"`
		TimeLock  int64    `json:"time_lock"`
	}
	if err := opts.ReadOptions("vault", &genesis); err != nil {
		return errors.Wrap(err, "options")
	}
	if genesis.Admin == "" {
		return errors.Wrap(errors.ErrEmpty, "vault admin")
	}

	reg := Registry{
		Frozen:   false,
		Quorum:   DefaultQuorum,
		TimeLock: DefaultTimeLock,
	}
	if genesis.Quorum != 0 {
		reg.Quorum = genesis.Quorum
	}
	if genesis.TimeLock != 0 {
		reg.TimeLock = genesis.TimeLock
	}

	admin, err := finvault.ParseAddress(genesis.Admin)
	if err != nil {
		return errors.Wrap(err, "admin")
	}
	reg.Admin = admin

	for i, raw := range genesis.Signers {
		addr, err := finvault.ParseAddress(raw)
		if err != nil {
			return errors.Wrapf(err, "signer %d", i)
		}
		reg.AddSigner(addr)
	}
	for i, raw := range genesis.Addresses {
		addr, err := finvault.ParseAddress(raw)
		if err != nil {
			return errors.Wrapf(err, "address %d", i)
		}
		reg.AddAddress(addr)
	}
	for i, raw := range genesis.Tokens {
		contract, err := finvault.ParseAddress(raw)
		if err != nil {
			return errors.Wrapf(err, "token %d", i)
		}
		reg.AddToken(TokenAsset(contract))
	}

	return saveRegistry(db, &reg)
}
