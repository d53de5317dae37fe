package sigs

import (
	"github.com/iov-one/nftswap/crypto"
	"github.com/iov-one/nftswap/errors"
)

// SignedTx represents a transaction that contains signatures,
// which can be verified by the Decorator
type SignedTx interface {
	// GetSignBytes returns the canonical byte representation of the Msg.
	// Helpful to store original, unparsed bytes here, just in case.
	GetSignBytes() ([]byte, error)

	// GetSignatures returns the signature of signers who signed the Msg.
	GetSignatures() []*StdSignature
}

// StdSignature is a signature together with the key that produced it and
// the nonce it was made for.
type StdSignature struct {
	Sequence  int64             `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence,omitempty"`
	Pubkey    *crypto.PublicKey `protobuf:"bytes,2,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
	Signature *crypto.Signature `protobuf:"bytes,4,opt,name=signature,proto3" json:"signature,omitempty"`
}

// Validate ensures the StdSignature meets basic standards
func (s *StdSignature) Validate() error {
	if s.Sequence < 0 {
		return errors.Wrap(ErrInvalidSequence, "negative")
	}
	if s.Pubkey == nil {
		return errors.Wrap(errors.ErrUnauthorized, "missing public key")
	}
	if s.Signature == nil {
		return errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return nil
}
