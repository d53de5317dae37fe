package escrow

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/x"
)

// programName is the extension part of every condition derived here.
const programName = "escrow"

var (
	recordSalt     = []byte("escrow")
	offeringSalt   = []byte("escrow-offered-token-account")
	requestingSalt = []byte("escrow-requested-token-account")
)

// Derived is a condition controlled by this extension together with the
// bump that completes it.
type Derived struct {
	Condition nftswap.Condition
	Bump      uint8
}

// Address of the account controlled by the condition.
func (d Derived) Address() nftswap.Address {
	return d.Condition.Address()
}

// Addresses are all the accounts of a single swap.
type Addresses struct {
	Record           Derived
	OfferingEscrow   Derived
	RequestingEscrow Derived
}

// RecordAddress returns the canonical record of the swap between the two
// source accounts.
func RecordAddress(offeringSource, requestingSource nftswap.Address) (Derived, error) {
	c, bump, err := nftswap.FindDerivedCondition(programName, recordSalt, offeringSource, requestingSource)
	return Derived{Condition: c, Bump: bump}, err
}

// OfferingEscrowAddress returns the canonical escrow account holding the
// offered token.
func OfferingEscrowAddress(offeringSource nftswap.Address) (Derived, error) {
	c, bump, err := nftswap.FindDerivedCondition(programName, offeringSalt, offeringSource)
	return Derived{Condition: c, Bump: bump}, err
}

// RequestingEscrowAddress returns the canonical escrow account holding the
// requested token.
func RequestingEscrowAddress(requestingSource nftswap.Address) (Derived, error) {
	c, bump, err := nftswap.FindDerivedCondition(programName, requestingSalt, requestingSource)
	return Derived{Condition: c, Bump: bump}, err
}

// Derive computes all canonical addresses of the swap between the two
// source accounts.
func Derive(offeringSource, requestingSource nftswap.Address) (*Addresses, error) {
	record, err := RecordAddress(offeringSource, requestingSource)
	if err != nil {
		return nil, errors.Wrap(err, "record")
	}
	offering, err := OfferingEscrowAddress(offeringSource)
	if err != nil {
		return nil, errors.Wrap(err, "offering escrow")
	}
	requesting, err := RequestingEscrowAddress(requestingSource)
	if err != nil {
		return nil, errors.Wrap(err, "requesting escrow")
	}
	return &Addresses{
		Record:           record,
		OfferingEscrow:   offering,
		RequestingEscrow: requesting,
	}, nil
}

func recordCondition(offeringSource, requestingSource nftswap.Address, bump uint8) (nftswap.Condition, error) {
	return nftswap.CreateDerivedCondition(programName, bump, recordSalt, offeringSource, requestingSource)
}

func escrowCondition(r Role, source nftswap.Address, bump uint8) (nftswap.Condition, error) {
	salt := offeringSalt
	if r == Requesting {
		salt = requestingSalt
	}
	return nftswap.CreateDerivedCondition(programName, bump, salt, source)
}

// expectAddress fails with ErrAddressMismatch unless the address supplied
// by the client equals the derived one.
func expectAddress(name string, derived, supplied nftswap.Address) error {
	if !derived.Equals(supplied) {
		return errors.Wrapf(errors.ErrAddressMismatch, "%s: want %s, got %s", name, derived, supplied)
	}
	return nil
}

// Authority is the capability to act on behalf of the accounts derived for
// a swap. It is built by the handlers of this extension only, from the
// conditions they derived, and passed to the token ledger where a
// signature would otherwise be required.
type Authority struct {
	conds []nftswap.Condition
}

var _ x.Authenticator = Authority{}

func newAuthority(conds ...nftswap.Condition) Authority {
	return Authority{conds: conds}
}

// GetConditions returns the derived conditions this authority holds.
func (a Authority) GetConditions(nftswap.Context) []nftswap.Condition {
	return a.conds
}

// HasAddress returns true if the address is controlled by one of the
// derived conditions.
func (a Authority) HasAddress(_ nftswap.Context, addr nftswap.Address) bool {
	for _, c := range a.conds {
		if c.Address().Equals(addr) {
			return true
		}
	}
	return false
}
