package nftswap

import (
	"crypto/sha256"
	"math"

	"github.com/iov-one/nftswap/errors"
	"github.com/jdgcs/ed25519/edwards25519"
)

const (
	// MaxSeeds is the maximum number of seeds a derived condition can be
	// built from, bump excluded.
	MaxSeeds = 16
	// MaxSeedLength is the maximum length of a single seed.
	MaxSeedLength = 32

	derivedType = "derived"
)

var derivedMarker = []byte("ProgramDerivedAddress")

// ErrOnCurve is returned when the digest computed for the given seeds is a
// valid ed25519 public key. Such a digest could have a private key and is
// never used as a derived authority. Try another bump.
var ErrOnCurve = errors.Register(43, "derived digest on curve")

// CreateDerivedCondition computes the condition that a program (an
// extension) controls for the given seeds and bump.
//
//   digest = sha256(seed_1 | ... | seed_n | bump | program | "ProgramDerivedAddress")
//
// The condition is program/derived/digest. Nobody holds a key for it; only
// the handlers of the program may add it to the authenticated conditions.
func CreateDerivedCondition(program string, bump uint8, seeds ...[]byte) (Condition, error) {
	if len(seeds) > MaxSeeds {
		return nil, errors.Wrapf(errors.ErrInput, "too many seeds: %d", len(seeds))
	}
	h := sha256.New()
	for i, s := range seeds {
		if len(s) > MaxSeedLength {
			return nil, errors.Wrapf(errors.ErrInput, "seed %d exceeds %d bytes", i, MaxSeedLength)
		}
		h.Write(s)
	}
	h.Write([]byte{bump})
	h.Write([]byte(program))
	h.Write(derivedMarker)

	var digest [32]byte
	copy(digest[:], h.Sum(nil))

	// A digest that decompresses to an edwards point is a valid public key.
	var point edwards25519.ExtendedGroupElement
	if point.FromBytes(&digest) {
		return nil, errors.Wrapf(ErrOnCurve, "bump %d", bump)
	}
	return NewCondition(program, derivedType, digest[:]), nil
}

// FindDerivedCondition searches for the canonical bump, starting at 255 and
// going down, and returns the first condition that is not on the curve.
func FindDerivedCondition(program string, seeds ...[]byte) (Condition, uint8, error) {
	for bump := math.MaxUint8; bump >= 0; bump-- {
		c, err := CreateDerivedCondition(program, uint8(bump), seeds...)
		switch {
		case err == nil:
			return c, uint8(bump), nil
		case !ErrOnCurve.Is(err):
			return nil, 0, err
		}
	}
	return nil, 0, errors.Wrap(ErrOnCurve, "no valid bump")
}

// DerivedDigest returns the raw digest of a derived condition, or nil when
// the condition was not created by CreateDerivedCondition.
func DerivedDigest(c Condition) []byte {
	_, typ, data, err := c.Parse()
	if err != nil || typ != derivedType {
		return nil
	}
	return data
}
