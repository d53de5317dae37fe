package app

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// RegisterQuery registers the raw key lookup under "/". The data of a query
// is the full database key, bucket prefix included.
func RegisterQuery(qr nftswap.QueryRouter) {
	qr.Register("/", rawQuery{})
}

type rawQuery struct{}

func (rawQuery) Query(db nftswap.ReadOnlyKVStore, mod string, key []byte) ([]nftswap.Model, error) {
	if mod != nftswap.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
	if len(key) == 0 {
		return nil, errors.Wrap(errors.ErrEmpty, "key")
	}
	value, err := db.Get(key)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if value == nil {
		return nil, nil
	}
	return []nftswap.Model{nftswap.Pair(key, value)}, nil
}

// ABCIStore exposes the abci.Query interface of an application as a
// ReadOnlyKVStore. Buckets can read the committed state through it the
// same way they read a local store.
type ABCIStore struct {
	app abci.Application
}

var _ nftswap.ReadOnlyKVStore = (*ABCIStore)(nil)

// NewABCIStore returns a store querying the given application.
func NewABCIStore(app abci.Application) *ABCIStore {
	return &ABCIStore{app: app}
}

// Get will query for exactly one value over the abci store.
func (a *ABCIStore) Get(key []byte) ([]byte, error) {
	query := a.app.Query(abci.RequestQuery{
		Path: "/",
		Data: key,
	})
	if query.Code != errors.SuccessABCICode {
		return nil, errors.Wrapf(errors.ErrDatabase, "query failed with code %d: %s", query.Code, query.Log)
	}
	var value ResultSet
	if err := value.Unmarshal(query.Value); err != nil {
		return nil, errors.Wrap(errors.ErrModel, err.Error())
	}
	switch len(value.Results) {
	case 0:
		return nil, nil
	case 1:
		return value.Results[0], nil
	default:
		return nil, errors.Wrapf(errors.ErrModel, "%d values for a single key", len(value.Results))
	}
}

// Has returns true if the given key in in the abci app store
func (a *ABCIStore) Has(key []byte) (bool, error) {
	v, err := a.Get(key)
	return len(v) > 0, err
}
