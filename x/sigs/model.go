package sigs

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/crypto"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/orm"
)

// BucketName is where we store the accounts
const BucketName = "sigs"

// ErrInvalidSequence is returned when the nonce of a signature does not
// match the one expected for the signer.
var ErrInvalidSequence = errors.Register(20, "invalid sequence number")

// UserData keeps the public key and the replay protection nonce of a
// signer.
type UserData struct {
	Pubkey   *crypto.PublicKey `protobuf:"bytes,1,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
	Sequence int64             `protobuf:"varint,2,opt,name=sequence,proto3" json:"sequence,omitempty"`
}

var _ orm.Model = (*UserData)(nil)

func (u *UserData) Validate() error {
	var errs error
	if seq := u.Sequence; seq < 0 {
		errs = errors.AppendField(errs, "Sequence", ErrInvalidSequence)
	} else if seq > 0 && u.Pubkey == nil {
		errs = errors.Append(errs, errors.Field("Sequence", ErrInvalidSequence, "needs Pubkey"))
	}
	if u.Pubkey != nil {
		errs = errors.AppendField(errs, "Pubkey", u.Pubkey.Validate())
	}
	return errs
}

// CheckAndIncrementSequence implements check and increment operation.
// If current sequence value is the same as given expected value then it is
// incremented. Otherwise an error is returned.
func (u *UserData) CheckAndIncrementSequence(expected int64) error {
	if u.Sequence != expected {
		return errors.Wrapf(ErrInvalidSequence, "mismatch expected %d, got %d", expected, u.Sequence)
	}

	next := u.Sequence + 1

	// Clients represent the nonce as a double precision number.
	const maxSequenceValue = (1 << 53) - 1
	if next <= 0 || next > maxSequenceValue {
		return errors.Wrap(errors.ErrOverflow, "sequence out of range")
	}
	u.Sequence = next
	return nil
}

// Bucket stores UserData under the address of the public key.
type Bucket struct {
	orm.Bucket
}

// NewBucket creates the proper bucket for this extension
func NewBucket() Bucket {
	return Bucket{Bucket: orm.NewBucket(BucketName)}
}

// GetOrCreate loads the user of the given key, or returns a fresh one with
// sequence zero if none was stored yet.
func (b Bucket) GetOrCreate(db nftswap.ReadOnlyKVStore, pubkey *crypto.PublicKey) (*UserData, error) {
	var user UserData
	err := b.One(db, pubkey.Address(), &user)
	switch {
	case err == nil:
		return &user, nil
	case errors.ErrNotFound.Is(err):
		return &UserData{Pubkey: pubkey}, nil
	default:
		return nil, err
	}
}

// Save writes the user under the address of its public key.
func (b Bucket) Save(db nftswap.KVStore, user *UserData) error {
	if user.Pubkey == nil {
		return errors.Wrap(errors.ErrEmpty, "pubkey")
	}
	return b.Put(db, user.Pubkey.Address(), user)
}

// NextNonce returns the next numeric nonce value that should be used during a
// transaction signing. If the signer is not yet known, counting starts with
// zero.
func NextNonce(db nftswap.ReadOnlyKVStore, signer nftswap.Address) (int64, error) {
	var user UserData
	err := NewBucket().One(db, signer, &user)
	switch {
	case err == nil:
		return user.Sequence, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, errors.Wrap(err, "bucket get")
	}
}
