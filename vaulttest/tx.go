package vaulttest

import (
	finvault "github.com/iov-one/finvault"
	"github.com/iov-one/finvault/errors"
)

// Tx is a mock transaction wrapping a single message.
type Tx struct {
	// Msg is the message that this transaction carries.
	Msg finvault.Msg

	// Err, if set, is returned by every method call.
	Err error
}

var _ finvault.Tx = (*Tx)(nil)

// GetMsg returns the wrapped message.
func (tx *Tx) GetMsg() (finvault.Msg, error) {
	if tx.Err != nil {
		return nil, tx.Err
	}
	return tx.Msg, nil
}

// Marshal serializes the wrapped message. This is not a stable wire
// format, it exists only to satisfy the interface.
func (tx *Tx) Marshal() ([]byte, error) {
	if tx.Err != nil {
		return nil, tx.Err
	}
	if tx.Msg == nil {
		return nil, errors.Wrap(errors.ErrState, "transaction without a message")
	}
	return tx.Msg.Marshal()
}

// Unmarshal loads the message payload into the already set message
// instance.
func (tx *Tx) Unmarshal(raw []byte) error {
	if tx.Err != nil {
		return tx.Err
	}
	if tx.Msg == nil {
		return errors.Wrap(errors.ErrState, "transaction without a message")
	}
	return tx.Msg.Unmarshal(raw)
}
