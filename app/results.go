package app

import (
	"github.com/gogo/protobuf/proto"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
)

// ResultSet is the serialized form of the keys or the values of a query
// response.
type ResultSet struct {
	Results [][]byte `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
}

type resultSetWire ResultSet

func (m *resultSetWire) Reset()         { *m = resultSetWire{} }
func (m *resultSetWire) String() string { return proto.CompactTextString(m) }
func (*resultSetWire) ProtoMessage()    {}

func (r *ResultSet) Marshal() ([]byte, error) {
	return proto.Marshal((*resultSetWire)(r))
}

func (r *ResultSet) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*resultSetWire)(r))
}

// ResultsFromKeys returns a ResultSet of all keys
// given a set of models
func ResultsFromKeys(models []nftswap.Model) *ResultSet {
	res := make([][]byte, len(models))
	for i, m := range models {
		res[i] = m.Key
	}
	return &ResultSet{Results: res}
}

// ResultsFromValues returns a ResultSet of all values
// given a set of models
func ResultsFromValues(models []nftswap.Model) *ResultSet {
	res := make([][]byte, len(models))
	for i, m := range models {
		res[i] = m.Value
	}
	return &ResultSet{Results: res}
}

// JoinResults inverts ResultsFromKeys and ResultsFromValues
// and makes then a consistent whole again
func JoinResults(keys, values *ResultSet) ([]nftswap.Model, error) {
	kref, vref := keys.Results, values.Results
	if len(kref) != len(vref) {
		return nil, errors.Wrapf(errors.ErrInput, "%d keys and %d values", len(kref), len(vref))
	}
	mods := make([]nftswap.Model, len(kref))
	for i := range mods {
		mods[i] = nftswap.Pair(kref[i], vref[i])
	}
	return mods, nil
}

// UnmarshalOneResult will parse a resultset, and
// it if is not empty, unmarshal the first result into o.
// ErrNotFound is returned for an empty result set.
func UnmarshalOneResult(bz []byte, o nftswap.Persistent) error {
	var res ResultSet
	if err := res.Unmarshal(bz); err != nil {
		return errors.Wrap(errors.ErrModel, err.Error())
	}
	if len(res.Results) == 0 {
		return errors.ErrNotFound
	}
	return o.Unmarshal(res.Results[0])
}
