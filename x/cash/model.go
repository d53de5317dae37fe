package cash

import (
	"sort"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/coin"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

// Set is the content of a wallet: at most one coin per ticker, sorted by
// ticker, all positive.
type Set struct {
	Coins []*coin.Coin `protobuf:"bytes,1,rep,name=coins,proto3" json:"coins,omitempty"`
}

var _ orm.Model = (*Set)(nil)

// Validate requires that all coins are positive, valid and sorted
// alphabetically without duplicates.
func (s *Set) Validate() error {
	for i, c := range s.Coins {
		if c == nil {
			return errors.Wrapf(errors.ErrEmpty, "coin %d", i)
		}
		if err := c.Validate(); err != nil {
			return errors.Wrapf(err, "coin %d", i)
		}
		if !c.IsPositive() {
			return errors.Wrapf(errors.ErrAmount, "coin %d: %s", i, c)
		}
		if i > 0 && s.Coins[i-1].Ticker >= c.Ticker {
			return errors.Wrapf(errors.ErrCurrency, "coin %d: not sorted", i)
		}
	}
	return nil
}

// Balance returns the amount of given currency held. Zero if none.
func (s *Set) Balance(ticker string) coin.Coin {
	for _, c := range s.Coins {
		if c.Ticker == ticker {
			return *c
		}
	}
	return coin.NewCoin(0, 0, ticker)
}

// Contains returns true if there is at least that much coin in the set.
func (s *Set) Contains(amount coin.Coin) bool {
	return s.Balance(amount.Ticker).IsGTE(amount)
}

// Add modifies the set to add the given amount, which may be negative.
// The balance of a currency may not go below zero.
func (s *Set) Add(amount coin.Coin) error {
	total, err := s.Balance(amount.Ticker).Add(amount)
	if err != nil {
		return err
	}
	if !total.IsNonNegative() {
		return errors.Wrapf(errors.ErrInsufficientAmount, "%s", amount.Ticker)
	}

	res := make([]*coin.Coin, 0, len(s.Coins)+1)
	for _, c := range s.Coins {
		if c.Ticker != amount.Ticker {
			res = append(res, c)
		}
	}
	if !total.IsZero() {
		res = append(res, &total)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Ticker < res[j].Ticker })
	s.Coins = res
	return nil
}

// IsEmpty is true when the set holds no coins.
func (s *Set) IsEmpty() bool {
	return len(s.Coins) == 0
}

// Bucket is a type-safe wrapper around orm.Bucket
type Bucket struct {
	orm.Bucket
}

// NewBucket initializes a cash.Bucket with default name
func NewBucket() Bucket {
	return Bucket{Bucket: orm.NewBucket(BucketName)}
}

// Get returns the wallet at the given address, or an empty set if there
// is none.
func (b Bucket) Get(db nftswap.ReadOnlyKVStore, addr nftswap.Address) (*Set, error) {
	var set Set
	if err := b.One(db, addr, &set); err != nil && !errors.ErrNotFound.Is(err) {
		return nil, err
	}
	return &set, nil
}

// Save stores the wallet, removing it from the store once empty.
func (b Bucket) Save(db nftswap.KVStore, addr nftswap.Address, set *Set) error {
	if !set.IsEmpty() {
		return b.Put(db, addr, set)
	}
	switch ok, err := b.Has(db, addr); {
	case err != nil:
		return err
	case ok:
		return b.Delete(db, addr)
	}
	return nil
}
