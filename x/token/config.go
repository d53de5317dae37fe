package token

import (
	"github.com/gogo/protobuf/proto"

	"github.com/iov-one/nftswap/coin"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/gconf"
)

const confPkg = "token"

// Configuration of the token ledger, stored under conf.token in genesis.
type Configuration struct {
	// Rent is the deposit required to create a mint or a token account.
	// Zero or missing disables rent.
	Rent *coin.Coin `protobuf:"bytes,1,opt,name=rent,proto3" json:"rent,omitempty"`
}

func (c *Configuration) Validate() error {
	if coin.IsEmpty(c.Rent) {
		return nil
	}
	if err := c.Rent.Validate(); err != nil {
		return errors.Field("Rent", err, "invalid")
	}
	if !c.Rent.IsPositive() {
		return errors.Field("Rent", errors.ErrAmount, "must not be negative")
	}
	return nil
}

type configurationWire Configuration

func (m *configurationWire) Reset()         { *m = configurationWire{} }
func (m *configurationWire) String() string { return proto.CompactTextString(m) }
func (*configurationWire) ProtoMessage()    {}

func (c *Configuration) Marshal() ([]byte, error) {
	return proto.Marshal((*configurationWire)(c))
}

func (c *Configuration) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*configurationWire)(c))
}

func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, confPkg, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}
