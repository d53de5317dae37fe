package nftswap

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/btcsuite/btcutil/bech32"
	"github.com/iov-one/nftswap/errors"
)

const (
	// AddressLength is the length of all addresses
	AddressLength = 20
)

// it must have (?s) flags, otherwise it errors when last section contains 0x20 (newline)
var perm = regexp.MustCompile(`(?s)^([a-zA-Z0-9_\-]{3,8})/([a-zA-Z0-9_\-]{3,8})/(.+)$`)

// Condition is a specially formatted array, containing
// information on who can authorize an action.
// It is of the format:
//
//   sprintf("%s/%s/%s", extension, type, data)
type Condition []byte

func NewCondition(ext, typ string, data []byte) Condition {
	pre := fmt.Sprintf("%s/%s/", ext, typ)
	return append([]byte(pre), data...)
}

// Parse will extract the sections from the Condition bytes
// and verify it is properly formatted
func (c Condition) Parse() (string, string, []byte, error) {
	chunks := perm.FindSubmatch(c)
	if len(chunks) == 0 {
		return "", "", nil, errors.ErrInput.Newf("condition: %X", []byte(c))
	}
	// returns [all, match1, match2, match3]
	return string(chunks[1]), string(chunks[2]), chunks[3], nil
}

// Address will convert a Condition into an Address
func (c Condition) Address() Address {
	return NewAddress(c)
}

// Equals checks if two permissions are the same
func (c Condition) Equals(o Condition) bool {
	return bytes.Equal(c, o)
}

// String returns a human readable string.
// We keep the extension and type in ascii and
// hex-encode the binary data
func (c Condition) String() string {
	ext, typ, data, err := c.Parse()
	if err != nil {
		return fmt.Sprintf("Invalid Condition: %X", []byte(c))
	}
	return fmt.Sprintf("%s/%s/%X", ext, typ, data)
}

// Validate returns an error if the Condition is not the proper format
func (c Condition) Validate() error {
	if !perm.Match(c) {
		return errors.ErrInput.Newf("condition: %X", []byte(c))
	}
	return nil
}

func (c Condition) MarshalJSON() ([]byte, error) {
	var serialized string
	if c != nil {
		serialized = c.String()
	}
	return json.Marshal(serialized)
}

func (c *Condition) UnmarshalJSON(raw []byte) error {
	var enc string
	if err := json.Unmarshal(raw, &enc); err != nil {
		return errors.Wrap(err, "cannot decode json")
	}
	return c.deserialize(enc)
}

func (c *Condition) deserialize(source string) error {
	if len(source) == 0 {
		*c = nil
		return nil
	}

	args := strings.Split(source, "/")
	if len(args) != 3 {
		return errors.ErrInput.New("invalid condition format")
	}
	data, err := hex.DecodeString(args[2])
	if err != nil {
		return errors.ErrInput.Newf("malformed condition data: %s", err)
	}
	*c = NewCondition(args[0], args[1], data)
	return nil
}

// Address represents a collision-free, one-way digest
// of a Condition
//
// It will be of size AddressLength
type Address []byte

// NewAddress hashes and truncates into the proper size
func NewAddress(data []byte) Address {
	if data == nil {
		return nil
	}
	h := sha256.Sum256(data)
	return h[:AddressLength]
}

// Equals checks if two addresses are the same
func (a Address) Equals(b Address) bool {
	return bytes.Equal(a, b)
}

// MarshalJSON provides a hex representation for JSON,
// to override the standard base64 []byte encoding
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts hex (optionally prefixed with "hex:"),
// "cond:ext/type/hexdata" and "bech32:..." encodings.
func (a *Address) UnmarshalJSON(raw []byte) error {
	var enc string
	if err := json.Unmarshal(raw, &enc); err != nil {
		return errors.Wrap(err, "cannot decode json")
	}
	addr, err := ParseAddress(enc)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// ParseAddress decodes an address from its human readable form.
// An empty string is a nil address.
func ParseAddress(enc string) (Address, error) {
	// If the encoded string starts with a prefix, cut it off and use
	// specified decoding method instead of default one.
	chunks := strings.SplitN(enc, ":", 2)
	format := chunks[0]
	if len(chunks) == 1 {
		format = "hex"
	} else {
		enc = chunks[1]
	}

	if len(enc) == 0 {
		return nil, nil
	}

	var addr Address
	switch format {
	case "hex":
		val, err := hex.DecodeString(enc)
		if err != nil {
			return nil, errors.Wrap(errors.ErrInput, "cannot decode hex")
		}
		addr = val
	case "cond":
		var c Condition
		if err := c.deserialize(enc); err != nil {
			return nil, err
		}
		if err := c.Validate(); err != nil {
			return nil, err
		}
		addr = c.Address()
	case "bech32":
		_, payload, err := bech32.Decode(enc)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "deserialize bech32: %s", err)
		}
		val, err := bech32.ConvertBits(payload, 5, 8, false)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "bech32 payload: %s", err)
		}
		addr = val
	default:
		return nil, errors.ErrType.Newf("unknown format %q", chunks[0])
	}
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	return addr, nil
}

// Bech32 returns the address encoded with the given human readable part.
func (a Address) Bech32(hrp string) (string, error) {
	conv, err := bech32.ConvertBits(a, 8, 5, true)
	if err != nil {
		return "", errors.Wrap(errors.ErrInput, err.Error())
	}
	enc, err := bech32.Encode(hrp, conv)
	if err != nil {
		return "", errors.Wrap(errors.ErrInput, err.Error())
	}
	return enc, nil
}

// String returns a human readable string.
func (a Address) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	return strings.ToUpper(hex.EncodeToString(a))
}

// Validate returns an error if the address is not the valid size
func (a Address) Validate() error {
	if len(a) != AddressLength {
		return errors.ErrInput.Newf("address: %v", a)
	}
	return nil
}
