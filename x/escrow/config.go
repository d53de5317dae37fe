package escrow

import (
	"github.com/gogo/protobuf/proto"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/coin"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/gconf"
)

const confPkg = "escrow"

// Configuration of the escrow extension, stored under conf.escrow in
// genesis.
type Configuration struct {
	// Rent is the deposit for an escrow record, paid by the offering
	// party. Zero or missing disables rent.
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

// Initializer stores the escrow configuration from the genesis file.
type Initializer struct{}

var _ nftswap.Initializer = Initializer{}

// FromGenesis stores the configuration found under conf.escrow.
func (Initializer) FromGenesis(opts nftswap.Options, db nftswap.KVStore) error {
	return gconf.InitConfig(db, opts, confPkg, &Configuration{})
}
