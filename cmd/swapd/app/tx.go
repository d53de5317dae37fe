package app

import (
	"github.com/gogo/protobuf/proto"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/x/cash"
	"github.com/iov-one/nftswap/x/escrow"
	"github.com/iov-one/nftswap/x/sigs"
	"github.com/iov-one/nftswap/x/token"
)

// Tx carries exactly one message and the signatures authorizing it.
type Tx struct {
	SendMsg             *cash.SendMsg               `protobuf:"bytes,1,opt,name=send_msg,json=sendMsg,proto3" json:"send_msg,omitempty"`
	CreateMintMsg       *token.CreateMintMsg        `protobuf:"bytes,2,opt,name=create_mint_msg,json=createMintMsg,proto3" json:"create_mint_msg,omitempty"`
	MintToMsg           *token.MintToMsg            `protobuf:"bytes,3,opt,name=mint_to_msg,json=mintToMsg,proto3" json:"mint_to_msg,omitempty"`
	FreezeMintMsg       *token.FreezeMintMsg        `protobuf:"bytes,4,opt,name=freeze_mint_msg,json=freezeMintMsg,proto3" json:"freeze_mint_msg,omitempty"`
	CreateAccountMsg    *token.CreateAccountMsg     `protobuf:"bytes,5,opt,name=create_account_msg,json=createAccountMsg,proto3" json:"create_account_msg,omitempty"`
	TransferMsg         *token.TransferMsg          `protobuf:"bytes,6,opt,name=transfer_msg,json=transferMsg,proto3" json:"transfer_msg,omitempty"`
	CloseAccountMsg     *token.CloseAccountMsg      `protobuf:"bytes,7,opt,name=close_account_msg,json=closeAccountMsg,proto3" json:"close_account_msg,omitempty"`
	InitSwapMsg         *escrow.InitMsg             `protobuf:"bytes,8,opt,name=init_swap_msg,json=initSwapMsg,proto3" json:"init_swap_msg,omitempty"`
	FundOfferingMsg     *escrow.FundOfferingMsg     `protobuf:"bytes,9,opt,name=fund_offering_msg,json=fundOfferingMsg,proto3" json:"fund_offering_msg,omitempty"`
	FundRequestingMsg   *escrow.FundRequestingMsg   `protobuf:"bytes,10,opt,name=fund_requesting_msg,json=fundRequestingMsg,proto3" json:"fund_requesting_msg,omitempty"`
	CrankSwapMsg        *escrow.CrankMsg            `protobuf:"bytes,11,opt,name=crank_swap_msg,json=crankSwapMsg,proto3" json:"crank_swap_msg,omitempty"`
	DefundOfferingMsg   *escrow.DefundOfferingMsg   `protobuf:"bytes,12,opt,name=defund_offering_msg,json=defundOfferingMsg,proto3" json:"defund_offering_msg,omitempty"`
	DefundRequestingMsg *escrow.DefundRequestingMsg `protobuf:"bytes,13,opt,name=defund_requesting_msg,json=defundRequestingMsg,proto3" json:"defund_requesting_msg,omitempty"`
	CloseSwapMsg        *escrow.CloseMsg            `protobuf:"bytes,14,opt,name=close_swap_msg,json=closeSwapMsg,proto3" json:"close_swap_msg,omitempty"`
	Signatures          []*sigs.StdSignature        `protobuf:"bytes,20,rep,name=signatures,proto3" json:"signatures,omitempty"`
}

// make sure tx fulfills all interfaces
var _ nftswap.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

type txWire Tx

func (m *txWire) Reset()         { *m = txWire{} }
func (m *txWire) String() string { return proto.CompactTextString(m) }
func (*txWire) ProtoMessage()    {}

func (tx *Tx) Marshal() ([]byte, error) {
	return proto.Marshal((*txWire)(tx))
}

func (tx *Tx) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*txWire)(tx))
}

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (nftswap.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return tx, nil
}

// GetMsg returns the single message set on the transaction.
func (tx *Tx) GetMsg() (nftswap.Msg, error) {
	var msgs []nftswap.Msg
	add := func(set bool, m nftswap.Msg) {
		if set {
			msgs = append(msgs, m)
		}
	}
	add(tx.SendMsg != nil, tx.SendMsg)
	add(tx.CreateMintMsg != nil, tx.CreateMintMsg)
	add(tx.MintToMsg != nil, tx.MintToMsg)
	add(tx.FreezeMintMsg != nil, tx.FreezeMintMsg)
	add(tx.CreateAccountMsg != nil, tx.CreateAccountMsg)
	add(tx.TransferMsg != nil, tx.TransferMsg)
	add(tx.CloseAccountMsg != nil, tx.CloseAccountMsg)
	add(tx.InitSwapMsg != nil, tx.InitSwapMsg)
	add(tx.FundOfferingMsg != nil, tx.FundOfferingMsg)
	add(tx.FundRequestingMsg != nil, tx.FundRequestingMsg)
	add(tx.CrankSwapMsg != nil, tx.CrankSwapMsg)
	add(tx.DefundOfferingMsg != nil, tx.DefundOfferingMsg)
	add(tx.DefundRequestingMsg != nil, tx.DefundRequestingMsg)
	add(tx.CloseSwapMsg != nil, tx.CloseSwapMsg)

	switch len(msgs) {
	case 0:
		return nil, errors.Wrap(errors.ErrMsg, "no message in transaction")
	case 1:
		return msgs[0], nil
	default:
		return nil, errors.Wrapf(errors.ErrMsg, "%d messages in transaction", len(msgs))
	}
}

// GetSignatures returns the signatures on the tx.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the bytes to sign...
func (tx *Tx) GetSignBytes() ([]byte, error) {
	// temporarily unset the signatures, as the sign bytes
	// should only come from the data itself, not previous signatures
	sigs := tx.Signatures
	tx.Signatures = nil

	bz, err := tx.Marshal()

	// reset the signatures after calculating the bytes
	tx.Signatures = sigs
	return bz, err
}

// NewTx wraps the message into a transaction. It panics for message types
// the application does not route.
func NewTx(msg nftswap.Msg) *Tx {
	tx := new(Tx)
	switch m := msg.(type) {
	case *cash.SendMsg:
		tx.SendMsg = m
	case *token.CreateMintMsg:
		tx.CreateMintMsg = m
	case *token.MintToMsg:
		tx.MintToMsg = m
	case *token.FreezeMintMsg:
		tx.FreezeMintMsg = m
	case *token.CreateAccountMsg:
		tx.CreateAccountMsg = m
	case *token.TransferMsg:
		tx.TransferMsg = m
	case *token.CloseAccountMsg:
		tx.CloseAccountMsg = m
	case *escrow.InitMsg:
		tx.InitSwapMsg = m
	case *escrow.FundOfferingMsg:
		tx.FundOfferingMsg = m
	case *escrow.FundRequestingMsg:
		tx.FundRequestingMsg = m
	case *escrow.CrankMsg:
		tx.CrankSwapMsg = m
	case *escrow.DefundOfferingMsg:
		tx.DefundOfferingMsg = m
	case *escrow.DefundRequestingMsg:
		tx.DefundRequestingMsg = m
	case *escrow.CloseMsg:
		tx.CloseSwapMsg = m
	default:
		panic(errors.Wrapf(errors.ErrType, "unsupported message %T", msg))
	}
	return tx
}
