package finvault

import (
	"reflect"

	"github.com/iov-one/finvault/errors"
)

// Msg is a request for the state machine to take an action. It is just
// the payload; all authentication information lives on the wrapping Tx.
// Handlers must validate a message before acting on it.
type Msg interface {
	Persistent

	// Path returns the routing path for this message. The Router uses
	// it to locate the proper Handler. Must be alphanumeric
	// [0-9A-Za-z_/\-]+
	Path() string
}

// Marshaller is anything that can be represented in binary.
//
// Marshal may validate the data before serializing it and unless you
// previously validated the struct, errors should be expected.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent supports Marshal and Unmarshal
//
// This is separated from Marshaller, as Unmarshal almost always
// requires a pointer receiver.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Tx represents the requests to the application. Each Tx carries
// exactly one message to be processed.
type Tx interface {
	Persistent

	// GetMsg returns the action we wish to communicate
	GetMsg() (Msg, error)
}

// GetPath returns the path of the message inside of the transaction or
// an "unknown" value if it cannot be extracted.
func GetPath(tx Tx) string {
	msg, err := tx.GetMsg()
	if err == nil && msg != nil {
		return msg.Path()
	}
	return "unknown"
}

// LoadMsg extracts the message from the transaction and loads it into
// the destination. Destination must be a non-nil pointer to a message
// instance of the same type as carried by the transaction.
func LoadMsg(tx Tx, destination Msg) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get message")
	}
	if msg == nil {
		return errors.Wrap(errors.ErrState, "transaction without a message")
	}

	dst := reflect.ValueOf(destination)
	if dst.Kind() != reflect.Ptr || dst.IsNil() {
		return errors.Wrapf(errors.ErrType, "destination must be a non-nil pointer, got %T", destination)
	}
	src := reflect.ValueOf(msg)
	if dst.Type() != src.Type() {
		return errors.Wrapf(errors.ErrType, "want %T message, got %T", destination, msg)
	}
	dst.Elem().Set(src.Elem())
	return nil
}
