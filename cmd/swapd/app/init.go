package app

import (
	"encoding/json"
	"fmt"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/coin"
	"github.com/iov-one/nftswap/commands/server"
	"github.com/iov-one/nftswap/crypto"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/x/cash"
	"github.com/iov-one/nftswap/x/escrow"
	"github.com/iov-one/nftswap/x/token"
)

const (
	defaultTicker = "IOV"
	initialSupply = 123456789
)

// GenInitOptions will produce some basic options for one rich
// account, to use for dev mode
//
// The optional arguments are the rent ticker and the address of the rich
// account. Without an address a new key is generated and printed.
func GenInitOptions(args []string) (json.RawMessage, error) {
	ticker := defaultTicker
	if len(args) > 0 {
		ticker = args[0]
		if !coin.IsCC(ticker) {
			return nil, errors.Wrapf(errors.ErrCurrency, "invalid ticker %s", ticker)
		}
	}

	var addr nftswap.Address
	if len(args) > 1 {
		var err error
		addr, err = nftswap.ParseAddress(args[1])
		if err != nil {
			return nil, err
		}
		if err := addr.Validate(); err != nil {
			return nil, err
		}
	} else {
		// if no address provided, auto-generate one
		// and print out the keys
		var keys string
		var err error
		addr, keys, err = GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		fmt.Println(keys)
	}

	return genesisState(addr, ticker)
}

func genesisState(addr nftswap.Address, ticker string) (json.RawMessage, error) {
	rent := coin.NewCoinp(1, 0, ticker)
	state := struct {
		Cash  []cash.GenesisAccount `json:"cash"`
		Token struct {
			Mints    []token.GenesisMint    `json:"mints"`
			Accounts []token.GenesisAccount `json:"accounts"`
		} `json:"token"`
		Conf struct {
			Token  token.Configuration  `json:"token"`
			Escrow escrow.Configuration `json:"escrow"`
		} `json:"conf"`
	}{
		Cash: []cash.GenesisAccount{
			{Address: addr, Coins: []*coin.Coin{coin.NewCoinp(initialSupply, 0, ticker)}},
		},
	}
	state.Token.Mints = []token.GenesisMint{}
	state.Token.Accounts = []token.GenesisAccount{}
	state.Conf.Token.Rent = rent
	state.Conf.Escrow.Rent = rent

	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "cannot serialize genesis")
	}
	return raw, nil
}

type output struct {
	Pubkey *crypto.PublicKey  `json:"pub_key"`
	Secret *crypto.PrivateKey `json:"secret"`
}

// GenerateCoinKey returns the address of a public key,
// along with a json representation of the keys.
// You can give coins to this address and
// import the keys in a client to use them
func GenerateCoinKey() (nftswap.Address, string, error) {
	addr, privKey := server.GenerateCoinKey()
	out := output{Pubkey: privKey.PublicKey(), Secret: privKey}
	keys, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, "", errors.Wrap(err, "cannot serialize keys")
	}
	return addr, string(keys), nil
}
