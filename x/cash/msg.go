package cash

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/coin"
	"github.com/iov-one/nftswap/errors"
)

const maxMemoSize int = 128

// SendMsg moves coins from one wallet to another.
type SendMsg struct {
	Source      nftswap.Address `protobuf:"bytes,1,opt,name=source,proto3" json:"source,omitempty"`
	Destination nftswap.Address `protobuf:"bytes,2,opt,name=destination,proto3" json:"destination,omitempty"`
	Amount      *coin.Coin      `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
	Memo        string          `protobuf:"bytes,4,opt,name=memo,proto3" json:"memo,omitempty"`
}

var _ nftswap.Msg = (*SendMsg)(nil)

// Path returns the routing path for this message
func (SendMsg) Path() string {
	return "cash/send"
}

// Validate makes sure that this is sensible
func (m *SendMsg) Validate() error {
	var err error
	if coin.IsEmpty(m.Amount) || !m.Amount.IsPositive() {
		err = errors.Field("Amount", errors.ErrAmount, "must be positive")
	} else {
		err = errors.AppendField(err, "Amount", m.Amount.Validate())
	}
	err = errors.AppendField(err, "Source", m.Source.Validate())
	err = errors.AppendField(err, "Destination", m.Destination.Validate())
	if len(m.Memo) > maxMemoSize {
		err = errors.Append(err, errors.Field("Memo", errors.ErrInput, "too long"))
	}
	return err
}
