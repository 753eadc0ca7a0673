package vault

import (
	"github.com/iov-one/finvault/errors"
)

// Error codes 100 through 109 are reserved for the vault extension.
// The codes are part of the public interface and clients match on
// them, so they must never be renumbered.
var (
	// ErrNotAuthorized is returned when the transaction is signed,
	// but not by a principal that may perform the operation.
	ErrNotAuthorized = errors.Register(100, "not authorized")

	// ErrFrozen is returned by every fund moving operation while the
	// emergency freeze is active.
	ErrFrozen = errors.Register(101, "vault is frozen")

	// ErrInsufficientFunds is returned when a balance entry does not
	// cover the requested amount.
	ErrInsufficientFunds = errors.Register(102, "insufficient funds")

	// ErrNoWithdrawal is returned when the referenced withdrawal
	// request does not exist.
	ErrNoWithdrawal = errors.Register(103, "withdrawal not found")

	// ErrInvalidState is returned when a withdrawal operation is
	// applied to a request that is no longer pending.
	ErrInvalidState = errors.Register(104, "invalid withdrawal state")

	// ErrNotWhitelisted is returned when the destination principal is
	// not on the address whitelist.
	ErrNotWhitelisted = errors.Register(105, "address not whitelisted")

	// ErrUnsupportedAsset is returned when a token is not on the
	// token whitelist.
	ErrUnsupportedAsset = errors.Register(106, "unsupported asset")

	// ErrQuorum is returned when a withdrawal is executed with fewer
	// valid signatures than the required quorum.
	ErrQuorum = errors.Register(107, "quorum not met")

	// ErrTimeLock is returned when a withdrawal is executed before
	// the time lock has elapsed.
	ErrTimeLock = errors.Register(108, "time lock not elapsed")

	// ErrInvalidAmount is returned for zero or negative amounts.
	ErrInvalidAmount = errors.Register(109, "invalid amount")
)
