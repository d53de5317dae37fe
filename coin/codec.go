package coin

import (
	"github.com/gogo/protobuf/proto"
)

// coinWire has the Coin layout without its methods, so that the protobuf
// reflection codec does not call back into Coin.Marshal.
type coinWire Coin

func (m *coinWire) Reset()         { *m = coinWire{} }
func (m *coinWire) String() string { return proto.CompactTextString(m) }
func (*coinWire) ProtoMessage()    {}

// Marshal serializes the coin using protobuf encoding.
func (c *Coin) Marshal() ([]byte, error) {
	return proto.Marshal((*coinWire)(c))
}

// Unmarshal loads a protobuf encoded coin.
func (c *Coin) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*coinWire)(c))
}

// Reset implements proto.Message so coins can be embedded in other
// messages.
func (c *Coin) Reset() { *c = Coin{} }

// ProtoMessage implements proto.Message.
func (*Coin) ProtoMessage() {}
