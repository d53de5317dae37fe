package cash

import (
	"github.com/gogo/protobuf/proto"
)

type setWire Set

func (m *setWire) Reset()         { *m = setWire{} }
func (m *setWire) String() string { return proto.CompactTextString(m) }
func (*setWire) ProtoMessage()    {}

func (s *Set) Marshal() ([]byte, error) {
	return proto.Marshal((*setWire)(s))
}

func (s *Set) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*setWire)(s))
}

type sendMsgWire SendMsg

func (m *sendMsgWire) Reset()         { *m = sendMsgWire{} }
func (m *sendMsgWire) String() string { return proto.CompactTextString(m) }
func (*sendMsgWire) ProtoMessage()    {}

func (m *SendMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*sendMsgWire)(m))
}

func (m *SendMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*sendMsgWire)(m))
}
