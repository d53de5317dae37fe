package escrow

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/orm"
)

// Role is the side of a swap.
type Role uint8

const (
	Offering Role = iota
	Requesting
)

func (r Role) String() string {
	if r == Requesting {
		return "requesting"
	}
	return "offering"
}

// Status is the stored lifecycle of a swap. Funding is tracked separately
// for each side.
type Status uint8

const (
	StatusOpen Status = iota
	StatusCompleted
	StatusCancelled
)

// State is the observable state of a swap, derived from its status and
// funding flags.
type State uint8

const (
	StateCreated State = iota
	StateOfferingFunded
	StateRequestingFunded
	StateBothFunded
	StateCompleted
	StateCancelled
)

var stateNames = map[State]string{
	StateCreated:          "created",
	StateOfferingFunded:   "offering_funded",
	StateRequestingFunded: "requesting_funded",
	StateBothFunded:       "both_funded",
	StateCompleted:        "completed",
	StateCancelled:        "cancelled",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}

const (
	layoutVersion = 1

	// RecordSize is the length of a serialized Escrow.
	RecordSize = 1 + 8*nftswap.AddressLength + 1 + 1 + 3

	flagOfferingFunded   = 1 << 0
	flagRequestingFunded = 1 << 1
)

// Escrow is the record of a single swap, stored at its derived address.
type Escrow struct {
	OfferingParty    nftswap.Address
	RequestingParty  nftswap.Address
	OfferingMint     nftswap.Address
	RequestingMint   nftswap.Address
	OfferingSource   nftswap.Address
	RequestingSource nftswap.Address
	OfferingEscrow   nftswap.Address
	RequestingEscrow nftswap.Address

	OfferingFunded   bool
	RequestingFunded bool
	Status           Status

	RecordBump     uint8
	OfferingBump   uint8
	RequestingBump uint8
}

var _ orm.Model = (*Escrow)(nil)

func (e *Escrow) addresses() []*nftswap.Address {
	return []*nftswap.Address{
		&e.OfferingParty, &e.RequestingParty,
		&e.OfferingMint, &e.RequestingMint,
		&e.OfferingSource, &e.RequestingSource,
		&e.OfferingEscrow, &e.RequestingEscrow,
	}
}

// Marshal writes the record in its fixed size layout:
// version (1) | 8 addresses (20 each) | flags (1) | status (1) | bumps (3).
func (e *Escrow) Marshal() ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	b := make([]byte, RecordSize)
	b[0] = layoutVersion
	offset := 1
	for _, a := range e.addresses() {
		offset += copy(b[offset:], *a)
	}
	var flags byte
	if e.OfferingFunded {
		flags |= flagOfferingFunded
	}
	if e.RequestingFunded {
		flags |= flagRequestingFunded
	}
	b[offset] = flags
	b[offset+1] = byte(e.Status)
	b[offset+2] = e.RecordBump
	b[offset+3] = e.OfferingBump
	b[offset+4] = e.RequestingBump
	return b, nil
}

// Unmarshal loads a record. Any other size than RecordSize is rejected.
func (e *Escrow) Unmarshal(b []byte) error {
	if len(b) != RecordSize {
		return errors.Wrapf(errors.ErrModel, "escrow record size %d", len(b))
	}
	if b[0] != layoutVersion {
		return errors.Wrapf(errors.ErrModel, "escrow record version %d", b[0])
	}
	offset := 1
	for _, a := range e.addresses() {
		*a = append(nftswap.Address(nil), b[offset:offset+nftswap.AddressLength]...)
		offset += nftswap.AddressLength
	}
	flags := b[offset]
	e.OfferingFunded = flags&flagOfferingFunded != 0
	e.RequestingFunded = flags&flagRequestingFunded != 0
	e.Status = Status(b[offset+1])
	e.RecordBump = b[offset+2]
	e.OfferingBump = b[offset+3]
	e.RequestingBump = b[offset+4]
	return e.Validate()
}

// Validate ensures the record is consistent.
func (e *Escrow) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "OfferingParty", e.OfferingParty.Validate())
	errs = errors.AppendField(errs, "RequestingParty", e.RequestingParty.Validate())
	errs = errors.AppendField(errs, "OfferingMint", e.OfferingMint.Validate())
	errs = errors.AppendField(errs, "RequestingMint", e.RequestingMint.Validate())
	errs = errors.AppendField(errs, "OfferingSource", e.OfferingSource.Validate())
	errs = errors.AppendField(errs, "RequestingSource", e.RequestingSource.Validate())
	errs = errors.AppendField(errs, "OfferingEscrow", e.OfferingEscrow.Validate())
	errs = errors.AppendField(errs, "RequestingEscrow", e.RequestingEscrow.Validate())
	if e.OfferingMint.Equals(e.RequestingMint) {
		errs = errors.Append(errs, errors.Field("RequestingMint", errors.ErrInvalidMint, "same as offering mint"))
	}
	if e.Status > StatusCancelled {
		errs = errors.Append(errs, errors.Field("Status", errors.ErrModel, "unknown status %d", e.Status))
	}
	if e.Status == StatusCompleted && (e.OfferingFunded || e.RequestingFunded) {
		errs = errors.Append(errs, errors.Field("Status", errors.ErrModel, "completed swap holds tokens"))
	}
	return errs
}

// State returns the observable state of the swap.
func (e *Escrow) State() State {
	switch {
	case e.Status == StatusCompleted:
		return StateCompleted
	case e.Status == StatusCancelled:
		return StateCancelled
	case e.OfferingFunded && e.RequestingFunded:
		return StateBothFunded
	case e.OfferingFunded:
		return StateOfferingFunded
	case e.RequestingFunded:
		return StateRequestingFunded
	default:
		return StateCreated
	}
}

// Party returns the identity of the given side.
func (e *Escrow) Party(r Role) nftswap.Address {
	if r == Requesting {
		return e.RequestingParty
	}
	return e.OfferingParty
}

// Mint returns the token the given side puts in escrow.
func (e *Escrow) Mint(r Role) nftswap.Address {
	if r == Requesting {
		return e.RequestingMint
	}
	return e.OfferingMint
}

// Source returns the account the given side funds from and is refunded to.
func (e *Escrow) Source(r Role) nftswap.Address {
	if r == Requesting {
		return e.RequestingSource
	}
	return e.OfferingSource
}

// EscrowAccount returns the account holding the token of the given side.
func (e *Escrow) EscrowAccount(r Role) nftswap.Address {
	if r == Requesting {
		return e.RequestingEscrow
	}
	return e.OfferingEscrow
}

// EscrowBump returns the bump of the escrow account of the given side.
func (e *Escrow) EscrowBump(r Role) uint8 {
	if r == Requesting {
		return e.RequestingBump
	}
	return e.OfferingBump
}

// Funded returns true if the token of the given side is in escrow.
func (e *Escrow) Funded(r Role) bool {
	if r == Requesting {
		return e.RequestingFunded
	}
	return e.OfferingFunded
}

func (e *Escrow) setFunded(r Role, funded bool) {
	if r == Requesting {
		e.RequestingFunded = funded
	} else {
		e.OfferingFunded = funded
	}
}

// Bucket stores escrow records under their derived address.
type Bucket struct {
	orm.Bucket
}

// NewBucket returns the bucket of escrow records.
func NewBucket() Bucket {
	return Bucket{Bucket: orm.NewBucket("escrow")}
}

// Get returns the record stored at the given address.
func (b Bucket) Get(db nftswap.ReadOnlyKVStore, addr nftswap.Address) (*Escrow, error) {
	var e Escrow
	if err := b.One(db, addr, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
