package coin

import (
	"bytes"
	"encoding/json"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/iov-one/nftswap/errors"
)

// IsCC is the RegExp to ensure valid currency codes
var IsCC = regexp.MustCompile(`^[A-Z]{3,4}$`).MatchString

const (
	// MaxInt is the largest whole value we accept
	MaxInt int64 = 999999999999999 // 10^15-1
	// MinInt is the lowest whole value we accept
	MinInt = -MaxInt

	// FracUnit is the smallest numbers we divide by
	FracUnit int64 = 1000000000 // fractional units = 10^9
	// MaxFrac is the highest possible fractional value
	MaxFrac = FracUnit - 1
	// MinFrac is the lowest possible fractional value
	MinFrac = -MaxFrac
)

// Coin is a fixed point amount of a single currency.
// The value is Whole + Fractional / FracUnit.
type Coin struct {
	Whole      int64  `protobuf:"varint,1,opt,name=whole,proto3" json:"whole,omitempty"`
	Fractional int64  `protobuf:"varint,2,opt,name=fractional,proto3" json:"fractional,omitempty"`
	Ticker     string `protobuf:"bytes,3,opt,name=ticker,proto3" json:"ticker,omitempty"`
}

// NewCoin creates a new coin object
func NewCoin(whole int64, fractional int64, ticker string) Coin {
	return Coin{
		Whole:      whole,
		Fractional: fractional,
		Ticker:     ticker,
	}
}

// NewCoinp returns a pointer to a new coin.
func NewCoinp(whole, fractional int64, ticker string) *Coin {
	c := NewCoin(whole, fractional, ticker)
	return &c
}

// Add combines two coins.
// Returns error if they are of different
// currencies, or if the combination would cause
// an overflow
func (c Coin) Add(o Coin) (Coin, error) {
	// If any of the coins represents no value and does not have a ticker
	// set then it has no influence on the addition result.
	if c.Ticker == "" && c.IsZero() {
		return o, nil
	}
	if o.Ticker == "" && o.IsZero() {
		return c, nil
	}

	if !c.SameType(o) {
		return Coin{}, errors.Wrapf(errors.ErrCurrency, "adding %s to %s", c.Ticker, o.Ticker)
	}

	c.Whole += o.Whole
	c.Fractional += o.Fractional
	return c.normalize()
}

// Negative returns the opposite coins value
//   c.Add(c.Negative()).IsZero() == true
func (c Coin) Negative() Coin {
	return Coin{
		Ticker:     c.Ticker,
		Whole:      -1 * c.Whole,
		Fractional: -1 * c.Fractional,
	}
}

// Subtract given amount.
func (c Coin) Subtract(amount Coin) (Coin, error) {
	return c.Add(amount.Negative())
}

// Equals returns true if all fields are identical
func (c Coin) Equals(o Coin) bool {
	return c.Ticker == o.Ticker &&
		c.Whole == o.Whole &&
		c.Fractional == o.Fractional
}

// IsEmpty returns true on null or zero amount
func IsEmpty(c *Coin) bool {
	return c == nil || c.IsZero()
}

// IsZero returns true amounts are 0
func (c Coin) IsZero() bool {
	return c.Whole == 0 && c.Fractional == 0
}

// IsPositive returns true if the value is greater than 0
func (c Coin) IsPositive() bool {
	return c.Whole > 0 ||
		(c.Whole == 0 && c.Fractional > 0)
}

// IsNonNegative returns true if the value is 0 or higher
func (c Coin) IsNonNegative() bool {
	return c.Whole >= 0 && c.Fractional >= 0
}

// IsGTE returns true if c is same type and at least
// as large as o.
// It assumes they were already normalized.
func (c Coin) IsGTE(o Coin) bool {
	if !c.SameType(o) || c.Whole < o.Whole {
		return false
	}
	if (c.Whole == o.Whole) &&
		(c.Fractional < o.Fractional) {
		return false
	}
	return true
}

// SameType returns true if they have the same currency
func (c Coin) SameType(o Coin) bool {
	return c.Ticker == o.Ticker
}

// Clone provides an independent copy of a coin pointer
func (c *Coin) Clone() *Coin {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

// Validate ensures that the coin is in the valid range
// and valid currency code. It accepts negative values,
// so you may want to make other checks in your business
// logic
func (c Coin) Validate() error {
	var err error
	if !IsCC(c.Ticker) {
		err = errors.Append(err, errors.Wrapf(errors.ErrCurrency, "invalid currency: %s", c.Ticker))
	}
	if c.Whole < MinInt || c.Whole > MaxInt {
		err = errors.Append(err, errors.ErrOverflow)
	}
	if c.Fractional < MinFrac || c.Fractional > MaxFrac {
		err = errors.Append(err, errors.Wrap(errors.ErrOverflow, "fractional"))
	}
	// make sure signs match
	if c.Whole != 0 && c.Fractional != 0 &&
		((c.Whole > 0) != (c.Fractional > 0)) {
		err = errors.Append(err, errors.Wrap(errors.ErrState, "mismatched sign"))
	}
	return err
}

// normalize will adjust the fractional parts to
// correspond to the range and the integer parts.
//
// If the normalized coin is outside of the range,
// returns an error
func (c Coin) normalize() (Coin, error) {
	// keep fraction in range
	for c.Fractional < MinFrac {
		c.Whole--
		c.Fractional += FracUnit
	}
	for c.Fractional > MaxFrac {
		c.Whole++
		c.Fractional -= FracUnit
	}

	// make sure the signs correspond
	if (c.Whole > 0) && (c.Fractional < 0) {
		c.Whole--
		c.Fractional += FracUnit
	} else if (c.Whole < 0) && (c.Fractional > 0) {
		c.Whole++
		c.Fractional -= FracUnit
	}

	if c.Whole < MinInt || c.Whole > MaxInt {
		return Coin{}, errors.ErrOverflow
	}
	return c, nil
}

// UnmarshalJSON accepts both the human readable string
// "<whole>[.<fractional>] <ticker>" and the object form.
func (c *Coin) UnmarshalJSON(raw []byte) error {
	var human string
	if err := json.Unmarshal(raw, &human); err == nil {
		parsed, err := ParseHumanFormat(human)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	// Because UnmarshalJSON method is provided, we can no longer use
	// Coin type for this.
	var coin struct {
		Whole      int64
		Fractional int64
		Ticker     string
	}
	if err := json.Unmarshal(raw, &coin); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	*c = NewCoin(coin.Whole, coin.Fractional, coin.Ticker)
	return nil
}

// String provides a human readable representation of the coin. For a valid
// coin the result is a valid human readable format that can be parsed back.
func (c Coin) String() string {
	var b bytes.Buffer

	if n, err := c.normalize(); err == nil {
		c = n
	}

	io.WriteString(&b, strconv.FormatInt(c.Whole, 10))

	if f := c.Fractional; f != 0 {
		if f < 0 {
			f = -f
		}
		s := strconv.FormatInt(f, 10)
		// Add leading zeros to convert it to a floating point number.
		s = "." + strings.Repeat("0", 9-len(s)) + s
		// Remove trailing zeros as they provide no information.
		s = strings.TrimRight(s, "0")
		io.WriteString(&b, s)
	}

	if c.Ticker != "" {
		io.WriteString(&b, " "+c.Ticker)
	}
	return b.String()
}

var humanCoinFormatRx = regexp.MustCompile(`^(\-?)\s*(\d+)(\.\d+)?\s*([A-Z]{3,4})$`)

// ParseHumanFormat parse a human readable coin representation. Accepted format
// is a string:
//   "<whole>[.<fractional>] <ticker>"
func ParseHumanFormat(h string) (Coin, error) {
	results := humanCoinFormatRx.FindStringSubmatch(h)
	if results == nil {
		return Coin{}, errors.Wrapf(errors.ErrInput, "invalid coin format: %q", h)
	}

	whole, err := strconv.ParseInt(results[2], 10, 64)
	if err != nil {
		return Coin{}, errors.Wrapf(errors.ErrInput, "invalid whole value: %s", err)
	}

	var fract int64
	if f := results[3]; f != "" {
		// Pad or cut the decimal digits to the fractional precision.
		digits := f[1:]
		if len(digits) > 9 {
			return Coin{}, errors.Wrap(errors.ErrInput, "too many decimal places")
		}
		digits += strings.Repeat("0", 9-len(digits))
		fract, err = strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return Coin{}, errors.Wrapf(errors.ErrInput, "invalid fractional value: %s", err)
		}
	}

	if results[1] == "-" {
		whole = -whole
		fract = -fract
	}
	return NewCoin(whole, fract, results[4]), nil
}
