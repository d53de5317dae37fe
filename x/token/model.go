package token

import (
	"encoding/binary"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/orm"
)

const (
	// AccountSize is the length of a serialized Account.
	AccountSize = 2*nftswap.AddressLength + 8

	// MintSize is the length of a serialized Mint.
	MintSize = 1 + nftswap.AddressLength + 8
)

// Account holds units of a single mint on behalf of its owner.
type Account struct {
	// Owner may move the tokens out of this account and close it.
	Owner nftswap.Address
	// Mint is the kind of token kept in this account.
	Mint nftswap.Address
	// Amount of units held.
	Amount uint64
}

var _ orm.Model = (*Account)(nil)

// Marshal writes the account in its fixed size layout:
// owner (20) | mint (20) | amount (8, big endian).
func (a *Account) Marshal() ([]byte, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	b := make([]byte, AccountSize)
	offset := copy(b, a.Owner)
	offset += copy(b[offset:], a.Mint)
	binary.BigEndian.PutUint64(b[offset:], a.Amount)
	return b, nil
}

// Unmarshal loads an account. Any other size than AccountSize is rejected.
func (a *Account) Unmarshal(b []byte) error {
	if len(b) != AccountSize {
		return errors.Wrapf(errors.ErrModel, "account size %d", len(b))
	}
	a.Owner = cloneAddress(b[:nftswap.AddressLength])
	a.Mint = cloneAddress(b[nftswap.AddressLength : 2*nftswap.AddressLength])
	a.Amount = binary.BigEndian.Uint64(b[2*nftswap.AddressLength:])
	return nil
}

func (a *Account) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Owner", a.Owner.Validate())
	errs = errors.AppendField(errs, "Mint", a.Mint.Validate())
	return errs
}

// Holds returns true if the account keeps at least one unit of the mint.
func (a *Account) Holds(mint nftswap.Address) bool {
	return a.Mint.Equals(mint) && a.Amount > 0
}

func cloneAddress(b []byte) nftswap.Address {
	return append(nftswap.Address(nil), b...)
}

// Mint describes a kind of token.
type Mint struct {
	// Authority may mint new units. An empty authority means the supply is
	// frozen and no unit can ever be added.
	Authority nftswap.Address
	// Supply is the total amount of units minted.
	Supply uint64
}

var _ orm.Model = (*Mint)(nil)

// Marshal writes the mint in its fixed size layout:
// has authority (1) | authority (20) | supply (8, big endian).
func (m *Mint) Marshal() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	b := make([]byte, MintSize)
	if len(m.Authority) != 0 {
		b[0] = 1
		copy(b[1:], m.Authority)
	}
	binary.BigEndian.PutUint64(b[1+nftswap.AddressLength:], m.Supply)
	return b, nil
}

// Unmarshal loads a mint. Any other size than MintSize is rejected.
func (m *Mint) Unmarshal(b []byte) error {
	if len(b) != MintSize {
		return errors.Wrapf(errors.ErrModel, "mint size %d", len(b))
	}
	switch b[0] {
	case 0:
		m.Authority = nil
	case 1:
		m.Authority = cloneAddress(b[1 : 1+nftswap.AddressLength])
	default:
		return errors.Wrapf(errors.ErrModel, "mint authority flag %d", b[0])
	}
	m.Supply = binary.BigEndian.Uint64(b[1+nftswap.AddressLength:])
	return nil
}

func (m *Mint) Validate() error {
	if len(m.Authority) == 0 {
		return nil
	}
	return errors.Field("Authority", m.Authority.Validate(), "invalid")
}

// Frozen is true if no more units can be minted.
func (m *Mint) Frozen() bool {
	return len(m.Authority) == 0
}

// NonFungible is true for a frozen mint of exactly one unit.
func (m *Mint) NonFungible() bool {
	return m.Frozen() && m.Supply == 1
}

// AccountBucket stores token accounts under their address.
type AccountBucket struct {
	orm.Bucket
}

// NewAccountBucket returns the bucket for token accounts.
func NewAccountBucket() AccountBucket {
	return AccountBucket{Bucket: orm.NewBucket("tokenacc")}
}

// Get returns the account stored at the given address.
func (b AccountBucket) Get(db nftswap.ReadOnlyKVStore, addr nftswap.Address) (*Account, error) {
	var acc Account
	if err := b.One(db, addr, &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

// MintBucket stores mints under their address.
type MintBucket struct {
	orm.Bucket
}

// NewMintBucket returns the bucket for mints.
func NewMintBucket() MintBucket {
	return MintBucket{Bucket: orm.NewBucket("mint")}
}

// Get returns the mint stored at the given address.
func (b MintBucket) Get(db nftswap.ReadOnlyKVStore, addr nftswap.Address) (*Mint, error) {
	var m Mint
	if err := b.One(db, addr, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
