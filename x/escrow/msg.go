package escrow

import (
	"math"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
)

// InitMsg opens a swap. It must be signed by the offering party, who owns
// the offering source and pays the rent of the record and of both escrow
// accounts.
type InitMsg struct {
	OfferingParty    nftswap.Address `protobuf:"bytes,1,opt,name=offering_party,json=offeringParty,proto3" json:"offering_party,omitempty"`
	RequestingParty  nftswap.Address `protobuf:"bytes,2,opt,name=requesting_party,json=requestingParty,proto3" json:"requesting_party,omitempty"`
	OfferingMint     nftswap.Address `protobuf:"bytes,3,opt,name=offering_mint,json=offeringMint,proto3" json:"offering_mint,omitempty"`
	RequestingMint   nftswap.Address `protobuf:"bytes,4,opt,name=requesting_mint,json=requestingMint,proto3" json:"requesting_mint,omitempty"`
	OfferingSource   nftswap.Address `protobuf:"bytes,5,opt,name=offering_source,json=offeringSource,proto3" json:"offering_source,omitempty"`
	RequestingSource nftswap.Address `protobuf:"bytes,6,opt,name=requesting_source,json=requestingSource,proto3" json:"requesting_source,omitempty"`
	Record           nftswap.Address `protobuf:"bytes,7,opt,name=record,proto3" json:"record,omitempty"`
	OfferingEscrow   nftswap.Address `protobuf:"bytes,8,opt,name=offering_escrow,json=offeringEscrow,proto3" json:"offering_escrow,omitempty"`
	RequestingEscrow nftswap.Address `protobuf:"bytes,9,opt,name=requesting_escrow,json=requestingEscrow,proto3" json:"requesting_escrow,omitempty"`
}

// FundOfferingMsg moves the offered token into escrow. It must be signed by
// the offering party.
type FundOfferingMsg struct {
	Record nftswap.Address `protobuf:"bytes,1,opt,name=record,proto3" json:"record,omitempty"`
	Source nftswap.Address `protobuf:"bytes,2,opt,name=source,proto3" json:"source,omitempty"`
	Escrow nftswap.Address `protobuf:"bytes,3,opt,name=escrow,proto3" json:"escrow,omitempty"`
}

// FundRequestingMsg moves the requested token into escrow. It must be
// signed by the requesting party.
type FundRequestingMsg struct {
	Record nftswap.Address `protobuf:"bytes,1,opt,name=record,proto3" json:"record,omitempty"`
	Source nftswap.Address `protobuf:"bytes,2,opt,name=source,proto3" json:"source,omitempty"`
	Escrow nftswap.Address `protobuf:"bytes,3,opt,name=escrow,proto3" json:"escrow,omitempty"`
}

// CrankMsg completes a funded swap. Anybody may send it.
//
// OfferingDestination is the account of the offering party receiving the
// requested token, RequestingDestination the account of the requesting
// party receiving the offered token.
type CrankMsg struct {
	Record                nftswap.Address `protobuf:"bytes,1,opt,name=record,proto3" json:"record,omitempty"`
	RecordBump            uint32          `protobuf:"varint,2,opt,name=record_bump,json=recordBump,proto3" json:"record_bump,omitempty"`
	OfferingSource        nftswap.Address `protobuf:"bytes,3,opt,name=offering_source,json=offeringSource,proto3" json:"offering_source,omitempty"`
	RequestingSource      nftswap.Address `protobuf:"bytes,4,opt,name=requesting_source,json=requestingSource,proto3" json:"requesting_source,omitempty"`
	OfferingEscrow        nftswap.Address `protobuf:"bytes,5,opt,name=offering_escrow,json=offeringEscrow,proto3" json:"offering_escrow,omitempty"`
	RequestingEscrow      nftswap.Address `protobuf:"bytes,6,opt,name=requesting_escrow,json=requestingEscrow,proto3" json:"requesting_escrow,omitempty"`
	OfferingDestination   nftswap.Address `protobuf:"bytes,7,opt,name=offering_destination,json=offeringDestination,proto3" json:"offering_destination,omitempty"`
	RequestingDestination nftswap.Address `protobuf:"bytes,8,opt,name=requesting_destination,json=requestingDestination,proto3" json:"requesting_destination,omitempty"`
}

// DefundOfferingMsg returns the offered token to its source and cancels
// the swap. It must be signed by the offering party.
type DefundOfferingMsg struct {
	Record           nftswap.Address `protobuf:"bytes,1,opt,name=record,proto3" json:"record,omitempty"`
	RecordBump       uint32          `protobuf:"varint,2,opt,name=record_bump,json=recordBump,proto3" json:"record_bump,omitempty"`
	OfferingSource   nftswap.Address `protobuf:"bytes,3,opt,name=offering_source,json=offeringSource,proto3" json:"offering_source,omitempty"`
	RequestingSource nftswap.Address `protobuf:"bytes,4,opt,name=requesting_source,json=requestingSource,proto3" json:"requesting_source,omitempty"`
	Escrow           nftswap.Address `protobuf:"bytes,5,opt,name=escrow,proto3" json:"escrow,omitempty"`
}

// DefundRequestingMsg returns the requested token to its source and
// cancels the swap. It must be signed by the requesting party.
type DefundRequestingMsg struct {
	Record           nftswap.Address `protobuf:"bytes,1,opt,name=record,proto3" json:"record,omitempty"`
	RecordBump       uint32          `protobuf:"varint,2,opt,name=record_bump,json=recordBump,proto3" json:"record_bump,omitempty"`
	OfferingSource   nftswap.Address `protobuf:"bytes,3,opt,name=offering_source,json=offeringSource,proto3" json:"offering_source,omitempty"`
	RequestingSource nftswap.Address `protobuf:"bytes,4,opt,name=requesting_source,json=requestingSource,proto3" json:"requesting_source,omitempty"`
	Escrow           nftswap.Address `protobuf:"bytes,5,opt,name=escrow,proto3" json:"escrow,omitempty"`
}

// CloseMsg deletes a finished record and returns all rent to the offering
// party. Anybody may send it.
type CloseMsg struct {
	Record nftswap.Address `protobuf:"bytes,1,opt,name=record,proto3" json:"record,omitempty"`
}

var (
	_ nftswap.Msg = (*InitMsg)(nil)
	_ nftswap.Msg = (*FundOfferingMsg)(nil)
	_ nftswap.Msg = (*FundRequestingMsg)(nil)
	_ nftswap.Msg = (*CrankMsg)(nil)
	_ nftswap.Msg = (*DefundOfferingMsg)(nil)
	_ nftswap.Msg = (*DefundRequestingMsg)(nil)
	_ nftswap.Msg = (*CloseMsg)(nil)
)

func (InitMsg) Path() string             { return "escrow/init" }
func (FundOfferingMsg) Path() string     { return "escrow/fund_offering" }
func (FundRequestingMsg) Path() string   { return "escrow/fund_requesting" }
func (CrankMsg) Path() string            { return "escrow/crank" }
func (DefundOfferingMsg) Path() string   { return "escrow/defund_offering" }
func (DefundRequestingMsg) Path() string { return "escrow/defund_requesting" }
func (CloseMsg) Path() string            { return "escrow/close" }

func (m *InitMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "OfferingParty", m.OfferingParty.Validate())
	errs = errors.AppendField(errs, "RequestingParty", m.RequestingParty.Validate())
	errs = errors.AppendField(errs, "OfferingMint", m.OfferingMint.Validate())
	errs = errors.AppendField(errs, "RequestingMint", m.RequestingMint.Validate())
	errs = errors.AppendField(errs, "OfferingSource", m.OfferingSource.Validate())
	errs = errors.AppendField(errs, "RequestingSource", m.RequestingSource.Validate())
	errs = errors.AppendField(errs, "Record", m.Record.Validate())
	errs = errors.AppendField(errs, "OfferingEscrow", m.OfferingEscrow.Validate())
	errs = errors.AppendField(errs, "RequestingEscrow", m.RequestingEscrow.Validate())
	if m.OfferingMint.Equals(m.RequestingMint) {
		errs = errors.Append(errs, errors.Field("RequestingMint", errors.ErrInvalidMint, "same as offering mint"))
	}
	if m.OfferingSource.Equals(m.RequestingSource) {
		errs = errors.Append(errs, errors.Field("RequestingSource", errors.ErrInput, "same as offering source"))
	}
	return errs
}

func (m *FundOfferingMsg) Validate() error {
	return validateFund(m.Record, m.Source, m.Escrow)
}

func (m *FundRequestingMsg) Validate() error {
	return validateFund(m.Record, m.Source, m.Escrow)
}

func validateFund(record, source, escrow nftswap.Address) error {
	var errs error
	errs = errors.AppendField(errs, "Record", record.Validate())
	errs = errors.AppendField(errs, "Source", source.Validate())
	errs = errors.AppendField(errs, "Escrow", escrow.Validate())
	return errs
}

func (m *CrankMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Record", m.Record.Validate())
	errs = errors.AppendField(errs, "RecordBump", validateBump(m.RecordBump))
	errs = errors.AppendField(errs, "OfferingSource", m.OfferingSource.Validate())
	errs = errors.AppendField(errs, "RequestingSource", m.RequestingSource.Validate())
	errs = errors.AppendField(errs, "OfferingEscrow", m.OfferingEscrow.Validate())
	errs = errors.AppendField(errs, "RequestingEscrow", m.RequestingEscrow.Validate())
	errs = errors.AppendField(errs, "OfferingDestination", m.OfferingDestination.Validate())
	errs = errors.AppendField(errs, "RequestingDestination", m.RequestingDestination.Validate())
	return errs
}

func (m *DefundOfferingMsg) Validate() error {
	return validateDefund(m.Record, m.RecordBump, m.OfferingSource, m.RequestingSource, m.Escrow)
}

func (m *DefundRequestingMsg) Validate() error {
	return validateDefund(m.Record, m.RecordBump, m.OfferingSource, m.RequestingSource, m.Escrow)
}

func validateDefund(record nftswap.Address, bump uint32, offering, requesting, escrow nftswap.Address) error {
	var errs error
	errs = errors.AppendField(errs, "Record", record.Validate())
	errs = errors.AppendField(errs, "RecordBump", validateBump(bump))
	errs = errors.AppendField(errs, "OfferingSource", offering.Validate())
	errs = errors.AppendField(errs, "RequestingSource", requesting.Validate())
	errs = errors.AppendField(errs, "Escrow", escrow.Validate())
	return errs
}

func (m *CloseMsg) Validate() error {
	return errors.Field("Record", m.Record.Validate(), "")
}

func validateBump(bump uint32) error {
	if bump > math.MaxUint8 {
		return errors.Wrapf(errors.ErrInput, "bump %d", bump)
	}
	return nil
}
