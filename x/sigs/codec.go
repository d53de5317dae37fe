package sigs

import (
	"github.com/gogo/protobuf/proto"
)

type userDataWire UserData

func (m *userDataWire) Reset()         { *m = userDataWire{} }
func (m *userDataWire) String() string { return proto.CompactTextString(m) }
func (*userDataWire) ProtoMessage()    {}

func (u *UserData) Marshal() ([]byte, error) {
	return proto.Marshal((*userDataWire)(u))
}

func (u *UserData) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*userDataWire)(u))
}
