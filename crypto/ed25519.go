/*
Package crypto holds the ed25519 keys used to sign transactions and the
conditions those keys fulfil.
*/
package crypto

import (
	"crypto/rand"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"golang.org/x/crypto/ed25519"
)

// ExtensionName is used for the conditions of signatures.
const ExtensionName = "sigs"

// PublicKey is an ed25519 public key.
type PublicKey struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

// PrivateKey is an ed25519 private key.
type PrivateKey struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

// Signature is an ed25519 signature.
type Signature struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

// Verify verifies the signature was created with this message and public key
func (p *PublicKey) Verify(message []byte, sig *Signature) bool {
	if p == nil || sig == nil || len(p.Ed25519) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(p.Ed25519), message, sig.Ed25519)
}

// Condition encodes the public key into a permission
func (p *PublicKey) Condition() nftswap.Condition {
	return nftswap.NewCondition(ExtensionName, "ed25519", p.Ed25519)
}

// Address is the address of the condition of this key.
func (p *PublicKey) Address() nftswap.Address {
	return p.Condition().Address()
}

// Validate checks the key length.
func (p *PublicKey) Validate() error {
	if p == nil {
		return errors.Wrap(errors.ErrEmpty, "public key")
	}
	if len(p.Ed25519) != ed25519.PublicKeySize {
		return errors.Wrapf(errors.ErrInput, "public key length %d", len(p.Ed25519))
	}
	return nil
}

// Sign returns a matching signature for this private key
func (p *PrivateKey) Sign(message []byte) (*Signature, error) {
	if len(p.Ed25519) != ed25519.PrivateKeySize {
		return nil, errors.Wrap(errors.ErrInput, "invalid private key")
	}
	bz := ed25519.Sign(ed25519.PrivateKey(p.Ed25519), message)
	return &Signature{Ed25519: bz}, nil
}

// PublicKey returns the corresponding PublicKey
func (p *PrivateKey) PublicKey() *PublicKey {
	pub := ed25519.PrivateKey(p.Ed25519).Public().(ed25519.PublicKey)
	return &PublicKey{Ed25519: pub}
}

// GenPrivKeyEd25519 returns a random new private key
func GenPrivKeyEd25519() *PrivateKey {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		panic(err)
	}
	return &PrivateKey{Ed25519: priv}
}

// PrivKeyEd25519FromSeed will deterministically generate a private key from
// a given 32 byte seed. Use if you have a strong source of external
// randomness, or for deterministic keys in test cases.
func PrivKeyEd25519FromSeed(seed []byte) *PrivateKey {
	return &PrivateKey{Ed25519: ed25519.NewKeyFromSeed(seed)}
}
