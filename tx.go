package nftswap

import (
	"reflect"

	"github.com/iov-one/nftswap/errors"
)

// Msg is message for the blockchain to take an action
// (Make a state transition). It is just the request, and
// must be validated by the Handlers. All authentication
// information is in the wrapping Tx.
type Msg interface {
	Persistent

	// Path returns the message path.
	// This is used by the Router to locate the proper Handler.
	// Msg should be created alongside the Handler that corresponds to them.
	//
	// Must be alphanumeric [0-9A-Za-z_\-/]+
	Path() string

	// Validate performs a sanity checks on this message. It returns an
	// error if at least one test does not pass and message is considered
	// invalid.
	// This validation is performed before any state is read.
	Validate() error
}

// Marshaller is anything that can be represented in binary
//
// Marshall may validate the data before serializing it and
// unless you previously validated the struct,
// errors should be expected.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent supports Marshal and Unmarshal
//
// This is separated from Marshal, as this almost always requires
// a pointer, and functions that only need to marshal bytes can
// use the Marshaller interface to access non-pointers.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Tx represent the data sent from the user to the chain.
// It includes the actual message, along with information needed
// to authenticate the sender (cryptographic signatures),
// and anything else needed to pass through middleware.
//
// Each Application must define their own tx type, which
// embeds all the middlewares that we wish to use.
type Tx interface {
	Persistent

	// GetMsg returns the action we wish to communicate
	GetMsg() (Msg, error)
}

// TxDecoder can parse bytes into a Tx
type TxDecoder func(txBytes []byte) (Tx, error)

// GetPath returns the path of the message, or (missing) if no message
func GetPath(tx Tx) string {
	msg, err := tx.GetMsg()
	if err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// LoadMsg extracts the message represented by given transaction into given
// destination. Before returning message validation method is called.
//
// The destination must be a pointer to a variable of the type of the message,
// the same way json.Unmarshal is used:
//
//   var msg escrow.FundOfferingMsg
//   if err := nftswap.LoadMsg(tx, &msg); err != nil {
//	   return err
//   }
func LoadMsg(tx Tx, destination interface{}) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get transaction message")
	}
	if msg == nil {
		return errors.Wrap(errors.ErrMsg, "no message in transaction")
	}

	msgV := reflect.ValueOf(msg)
	destV := reflect.ValueOf(destination)
	if destV.Kind() != reflect.Ptr || destV.IsNil() {
		return errors.Wrap(errors.ErrHuman, "destination must be a non nil pointer")
	}
	if msgV.Type() == destV.Type() {
		destV.Elem().Set(msgV.Elem())
	} else if msgV.Type() == destV.Elem().Type() {
		destV.Elem().Set(msgV)
	} else {
		return errors.Wrapf(errors.ErrType, "expected %T, got %T", destination, msg)
	}

	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}
	return nil
}
