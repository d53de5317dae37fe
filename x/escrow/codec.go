package escrow

import (
	"github.com/gogo/protobuf/proto"
)

type initMsgWire InitMsg

func (m *initMsgWire) Reset()         { *m = initMsgWire{} }
func (m *initMsgWire) String() string { return proto.CompactTextString(m) }
func (*initMsgWire) ProtoMessage()    {}

func (m *InitMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*initMsgWire)(m))
}

func (m *InitMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*initMsgWire)(m))
}

type fundOfferingMsgWire FundOfferingMsg

func (m *fundOfferingMsgWire) Reset()         { *m = fundOfferingMsgWire{} }
func (m *fundOfferingMsgWire) String() string { return proto.CompactTextString(m) }
func (*fundOfferingMsgWire) ProtoMessage()    {}

func (m *FundOfferingMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*fundOfferingMsgWire)(m))
}

func (m *FundOfferingMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*fundOfferingMsgWire)(m))
}

type fundRequestingMsgWire FundRequestingMsg

func (m *fundRequestingMsgWire) Reset()         { *m = fundRequestingMsgWire{} }
func (m *fundRequestingMsgWire) String() string { return proto.CompactTextString(m) }
func (*fundRequestingMsgWire) ProtoMessage()    {}

func (m *FundRequestingMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*fundRequestingMsgWire)(m))
}

func (m *FundRequestingMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*fundRequestingMsgWire)(m))
}

type crankMsgWire CrankMsg

func (m *crankMsgWire) Reset()         { *m = crankMsgWire{} }
func (m *crankMsgWire) String() string { return proto.CompactTextString(m) }
func (*crankMsgWire) ProtoMessage()    {}

func (m *CrankMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*crankMsgWire)(m))
}

func (m *CrankMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*crankMsgWire)(m))
}

type defundOfferingMsgWire DefundOfferingMsg

func (m *defundOfferingMsgWire) Reset()         { *m = defundOfferingMsgWire{} }
func (m *defundOfferingMsgWire) String() string { return proto.CompactTextString(m) }
func (*defundOfferingMsgWire) ProtoMessage()    {}

func (m *DefundOfferingMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*defundOfferingMsgWire)(m))
}

func (m *DefundOfferingMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*defundOfferingMsgWire)(m))
}

type defundRequestingMsgWire DefundRequestingMsg

func (m *defundRequestingMsgWire) Reset()         { *m = defundRequestingMsgWire{} }
func (m *defundRequestingMsgWire) String() string { return proto.CompactTextString(m) }
func (*defundRequestingMsgWire) ProtoMessage()    {}

func (m *DefundRequestingMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*defundRequestingMsgWire)(m))
}

func (m *DefundRequestingMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*defundRequestingMsgWire)(m))
}

type closeMsgWire CloseMsg

func (m *closeMsgWire) Reset()         { *m = closeMsgWire{} }
func (m *closeMsgWire) String() string { return proto.CompactTextString(m) }
func (*closeMsgWire) ProtoMessage()    {}

func (m *CloseMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*closeMsgWire)(m))
}

func (m *CloseMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*closeMsgWire)(m))
}
