package token

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
)

// CreateMintMsg creates a new mint. Both the payer and the mint address
// must sign.
type CreateMintMsg struct {
	Payer     nftswap.Address `protobuf:"bytes,1,opt,name=payer,proto3" json:"payer,omitempty"`
	Mint      nftswap.Address `protobuf:"bytes,2,opt,name=mint,proto3" json:"mint,omitempty"`
	Authority nftswap.Address `protobuf:"bytes,3,opt,name=authority,proto3" json:"authority,omitempty"`
}

// MintToMsg creates new units of a mint in an account.
type MintToMsg struct {
	Mint    nftswap.Address `protobuf:"bytes,1,opt,name=mint,proto3" json:"mint,omitempty"`
	Account nftswap.Address `protobuf:"bytes,2,opt,name=account,proto3" json:"account,omitempty"`
	Amount  uint64          `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

// FreezeMintMsg removes the authority of a mint.
type FreezeMintMsg struct {
	Mint nftswap.Address `protobuf:"bytes,1,opt,name=mint,proto3" json:"mint,omitempty"`
}

// CreateAccountMsg creates an empty token account. Both the payer and the
// account address must sign.
type CreateAccountMsg struct {
	Payer   nftswap.Address `protobuf:"bytes,1,opt,name=payer,proto3" json:"payer,omitempty"`
	Account nftswap.Address `protobuf:"bytes,2,opt,name=account,proto3" json:"account,omitempty"`
	Mint    nftswap.Address `protobuf:"bytes,3,opt,name=mint,proto3" json:"mint,omitempty"`
	Owner   nftswap.Address `protobuf:"bytes,4,opt,name=owner,proto3" json:"owner,omitempty"`
}

// TransferMsg moves units between two accounts of the same mint.
type TransferMsg struct {
	Source      nftswap.Address `protobuf:"bytes,1,opt,name=source,proto3" json:"source,omitempty"`
	Destination nftswap.Address `protobuf:"bytes,2,opt,name=destination,proto3" json:"destination,omitempty"`
	Amount      uint64          `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

// CloseAccountMsg deletes an empty account and returns its rent.
type CloseAccountMsg struct {
	Account     nftswap.Address `protobuf:"bytes,1,opt,name=account,proto3" json:"account,omitempty"`
	Destination nftswap.Address `protobuf:"bytes,2,opt,name=destination,proto3" json:"destination,omitempty"`
}

var (
	_ nftswap.Msg = (*CreateMintMsg)(nil)
	_ nftswap.Msg = (*MintToMsg)(nil)
	_ nftswap.Msg = (*FreezeMintMsg)(nil)
	_ nftswap.Msg = (*CreateAccountMsg)(nil)
	_ nftswap.Msg = (*TransferMsg)(nil)
	_ nftswap.Msg = (*CloseAccountMsg)(nil)
)

func (CreateMintMsg) Path() string    { return "token/create_mint" }
func (MintToMsg) Path() string        { return "token/mint_to" }
func (FreezeMintMsg) Path() string    { return "token/freeze_mint" }
func (CreateAccountMsg) Path() string { return "token/create_account" }
func (TransferMsg) Path() string      { return "token/transfer" }
func (CloseAccountMsg) Path() string  { return "token/close_account" }

func (m *CreateMintMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Payer", m.Payer.Validate())
	errs = errors.AppendField(errs, "Mint", m.Mint.Validate())
	if len(m.Authority) != 0 {
		errs = errors.AppendField(errs, "Authority", m.Authority.Validate())
	}
	return errs
}

func (m *MintToMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Mint", m.Mint.Validate())
	errs = errors.AppendField(errs, "Account", m.Account.Validate())
	if m.Amount == 0 {
		errs = errors.Append(errs, errors.Field("Amount", errors.ErrAmount, "must be positive"))
	}
	return errs
}

func (m *FreezeMintMsg) Validate() error {
	return errors.Field("Mint", m.Mint.Validate(), "")
}

func (m *CreateAccountMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Payer", m.Payer.Validate())
	errs = errors.AppendField(errs, "Account", m.Account.Validate())
	errs = errors.AppendField(errs, "Mint", m.Mint.Validate())
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	return errs
}

func (m *TransferMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Source", m.Source.Validate())
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	if m.Amount == 0 {
		errs = errors.Append(errs, errors.Field("Amount", errors.ErrAmount, "must be positive"))
	}
	return errs
}

func (m *CloseAccountMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Account", m.Account.Validate())
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	return errs
}
