package token

import (
	"github.com/gogo/protobuf/proto"
)

type createMintMsgWire CreateMintMsg

func (m *createMintMsgWire) Reset()         { *m = createMintMsgWire{} }
func (m *createMintMsgWire) String() string { return proto.CompactTextString(m) }
func (*createMintMsgWire) ProtoMessage()    {}

func (m *CreateMintMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*createMintMsgWire)(m))
}

func (m *CreateMintMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*createMintMsgWire)(m))
}

type mintToMsgWire MintToMsg

func (m *mintToMsgWire) Reset()         { *m = mintToMsgWire{} }
func (m *mintToMsgWire) String() string { return proto.CompactTextString(m) }
func (*mintToMsgWire) ProtoMessage()    {}

func (m *MintToMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*mintToMsgWire)(m))
}

func (m *MintToMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*mintToMsgWire)(m))
}

type freezeMintMsgWire FreezeMintMsg

func (m *freezeMintMsgWire) Reset()         { *m = freezeMintMsgWire{} }
func (m *freezeMintMsgWire) String() string { return proto.CompactTextString(m) }
func (*freezeMintMsgWire) ProtoMessage()    {}

func (m *FreezeMintMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*freezeMintMsgWire)(m))
}

func (m *FreezeMintMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*freezeMintMsgWire)(m))
}

type createAccountMsgWire CreateAccountMsg

func (m *createAccountMsgWire) Reset()         { *m = createAccountMsgWire{} }
func (m *createAccountMsgWire) String() string { return proto.CompactTextString(m) }
func (*createAccountMsgWire) ProtoMessage()    {}

func (m *CreateAccountMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*createAccountMsgWire)(m))
}

func (m *CreateAccountMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*createAccountMsgWire)(m))
}

type transferMsgWire TransferMsg

func (m *transferMsgWire) Reset()         { *m = transferMsgWire{} }
func (m *transferMsgWire) String() string { return proto.CompactTextString(m) }
func (*transferMsgWire) ProtoMessage()    {}

func (m *TransferMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*transferMsgWire)(m))
}

func (m *TransferMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*transferMsgWire)(m))
}

type closeAccountMsgWire CloseAccountMsg

func (m *closeAccountMsgWire) Reset()         { *m = closeAccountMsgWire{} }
func (m *closeAccountMsgWire) String() string { return proto.CompactTextString(m) }
func (*closeAccountMsgWire) ProtoMessage()    {}

func (m *CloseAccountMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*closeAccountMsgWire)(m))
}

func (m *CloseAccountMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*closeAccountMsgWire)(m))
}
