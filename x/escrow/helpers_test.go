package escrow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/app"
	"github.com/iov-one/nftswap/coin"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/gconf"
	"github.com/iov-one/nftswap/store"
	"github.com/iov-one/nftswap/weavetest"
	"github.com/iov-one/nftswap/x"
	"github.com/iov-one/nftswap/x/cash"
	"github.com/iov-one/nftswap/x/token"
	"github.com/iov-one/nftswap/x/utils"
)

var rent = coin.NewCoin(1, 0, "RNT")

// swapFixture is a ledger where alice holds the only unit of the offered
// mint and bob the only unit of the requested mint. Both also own an empty
// account of the mint they are about to receive.
type swapFixture struct {
	db     nftswap.CacheableKVStore
	auth   *weavetest.CtxAuth
	router *app.Router
	tokens token.BaseController
	bank   cash.BaseController

	alice, bob       nftswap.Condition
	offMint, reqMint nftswap.Address
	aliceSrc, bobSrc nftswap.Address
	aliceDst, bobDst nftswap.Address
	addrs            *Addresses
}

func newSwapFixture(t testing.TB) *swapFixture {
	t.Helper()

	db := store.MemStore()
	require.NoError(t, gconf.Save(db, "token", &token.Configuration{Rent: &rent}))
	require.NoError(t, gconf.Save(db, confPkg, &Configuration{Rent: &rent}))

	bank := cash.NewController(cash.NewBucket())
	tokens := token.NewController(bank)

	f := &swapFixture{
		db:     db,
		auth:   &weavetest.CtxAuth{Key: "auth"},
		router: app.NewRouter(),
		tokens: tokens,
		bank:   bank,
		alice:  weavetest.NewCondition(),
		bob:    weavetest.NewCondition(),
	}
	require.NoError(t, bank.IssueCoins(db, f.alice.Address(), coin.NewCoin(10, 0, "RNT")))
	require.NoError(t, bank.IssueCoins(db, f.bob.Address(), coin.NewCoin(10, 0, "RNT")))

	f.offMint = f.createMint(t, f.alice)
	f.reqMint = f.createMint(t, f.bob)
	f.aliceSrc = f.createAccount(t, f.alice, f.offMint)
	f.bobSrc = f.createAccount(t, f.bob, f.reqMint)
	f.aliceDst = f.createAccount(t, f.alice, f.reqMint)
	f.bobDst = f.createAccount(t, f.bob, f.offMint)
	f.mintUnit(t, f.alice, f.offMint, f.aliceSrc)
	f.mintUnit(t, f.bob, f.reqMint, f.bobSrc)
	f.setSources(t, f.aliceSrc, f.bobSrc)

	RegisterRoutes(f.router, f.auth, tokens, bank)
	return f
}

func (f *swapFixture) createMint(t testing.TB, authority nftswap.Condition) nftswap.Address {
	t.Helper()
	mint := weavetest.NewCondition()
	auth := &weavetest.Auth{Signers: []nftswap.Condition{authority, mint}}
	require.NoError(t, f.tokens.CreateMint(context.Background(), f.db, auth, authority.Address(), mint.Address(), authority.Address()))
	return mint.Address()
}

func (f *swapFixture) createAccount(t testing.TB, owner nftswap.Condition, mint nftswap.Address) nftswap.Address {
	t.Helper()
	acc := weavetest.NewCondition()
	auth := &weavetest.Auth{Signers: []nftswap.Condition{owner, acc}}
	require.NoError(t, f.tokens.CreateAccount(context.Background(), f.db, auth, owner.Address(), acc.Address(), mint, owner.Address()))
	return acc.Address()
}

// mintUnit issues the single unit of an NFT mint and freezes it.
func (f *swapFixture) mintUnit(t testing.TB, authority nftswap.Condition, mint, account nftswap.Address) {
	t.Helper()
	ctx := context.Background()
	auth := &weavetest.Auth{Signer: authority}
	require.NoError(t, f.tokens.MintTo(ctx, f.db, auth, mint, account, 1))
	require.NoError(t, f.tokens.FreezeMint(ctx, f.db, auth, mint))
}

func (f *swapFixture) setSources(t testing.TB, offering, requesting nftswap.Address) {
	t.Helper()
	addrs, err := Derive(offering, requesting)
	require.NoError(t, err)
	f.aliceSrc, f.bobSrc, f.addrs = offering, requesting, addrs
}

func (f *swapFixture) record() nftswap.Address {
	return f.addrs.Record.Address()
}

func (f *swapFixture) initMsg() *InitMsg {
	return &InitMsg{
		OfferingParty:    f.alice.Address(),
		RequestingParty:  f.bob.Address(),
		OfferingMint:     f.offMint,
		RequestingMint:   f.reqMint,
		OfferingSource:   f.aliceSrc,
		RequestingSource: f.bobSrc,
		Record:           f.record(),
		OfferingEscrow:   f.addrs.OfferingEscrow.Address(),
		RequestingEscrow: f.addrs.RequestingEscrow.Address(),
	}
}

func (f *swapFixture) fundMsg(r Role) nftswap.Msg {
	if r == Requesting {
		return &FundRequestingMsg{Record: f.record(), Source: f.bobSrc, Escrow: f.addrs.RequestingEscrow.Address()}
	}
	return &FundOfferingMsg{Record: f.record(), Source: f.aliceSrc, Escrow: f.addrs.OfferingEscrow.Address()}
}

func (f *swapFixture) crankMsg() *CrankMsg {
	return &CrankMsg{
		Record:                f.record(),
		RecordBump:            uint32(f.addrs.Record.Bump),
		OfferingSource:        f.aliceSrc,
		RequestingSource:      f.bobSrc,
		OfferingEscrow:        f.addrs.OfferingEscrow.Address(),
		RequestingEscrow:      f.addrs.RequestingEscrow.Address(),
		OfferingDestination:   f.aliceDst,
		RequestingDestination: f.bobDst,
	}
}

func (f *swapFixture) defundMsg(r Role) nftswap.Msg {
	bump := uint32(f.addrs.Record.Bump)
	if r == Requesting {
		return &DefundRequestingMsg{Record: f.record(), RecordBump: bump, OfferingSource: f.aliceSrc, RequestingSource: f.bobSrc, Escrow: f.addrs.RequestingEscrow.Address()}
	}
	return &DefundOfferingMsg{Record: f.record(), RecordBump: bump, OfferingSource: f.aliceSrc, RequestingSource: f.bobSrc, Escrow: f.addrs.OfferingEscrow.Address()}
}

func (f *swapFixture) party(r Role) nftswap.Condition {
	if r == Requesting {
		return f.bob
	}
	return f.alice
}

// useTokens routes the escrow messages to handlers using the given token
// controller.
func (f *swapFixture) useTokens(tokens token.Controller) {
	f.router = app.NewRouter()
	RegisterRoutes(f.router, f.auth, tokens, f.bank)
}

// deliver runs the message through check and deliver, signed by the given
// conditions. Deliver writes nothing when it fails, as in the application.
func (f *swapFixture) deliver(msg nftswap.Msg, signers ...nftswap.Condition) error {
	ctx := f.auth.SetConditions(context.Background(), signers...)
	tx := &weavetest.Tx{Msg: msg}
	h := app.ChainDecorators(utils.NewSavepoint().OnDeliver()).WithHandler(f.router)

	cache := f.db.CacheWrap()
	_, err := h.Check(ctx, cache, tx)
	cache.Discard()
	if err != nil {
		return err
	}
	_, err = h.Deliver(ctx, f.db, tx)
	return err
}

// sendDirect moves a unit with a plain token transfer, bypassing the
// escrow handlers.
func (f *swapFixture) sendDirect(t testing.TB, owner nftswap.Condition, src, dest nftswap.Address) {
	t.Helper()
	auth := &weavetest.Auth{Signer: owner}
	require.NoError(t, f.tokens.Transfer(context.Background(), f.db, auth, src, dest, 1))
}

func (f *swapFixture) mustDeliver(t testing.TB, msg nftswap.Msg, signers ...nftswap.Condition) {
	t.Helper()
	require.NoError(t, f.deliver(msg, signers...))
}

// amount returns the units held by a token account, or -1 if the account
// does not exist.
func (f *swapFixture) amount(t testing.TB, addr nftswap.Address) int64 {
	t.Helper()
	acc, err := f.tokens.Account(f.db, addr)
	if errors.ErrNotFound.Is(err) {
		return -1
	}
	require.NoError(t, err)
	return int64(acc.Amount)
}

func (f *swapFixture) state(t testing.TB) State {
	t.Helper()
	e, err := NewBucket().Get(f.db, f.record())
	require.NoError(t, err)
	return e.State()
}

func (f *swapFixture) balance(t testing.TB, addr nftswap.Address) coin.Coin {
	t.Helper()
	coins, err := f.bank.Balance(f.db, addr)
	require.NoError(t, err)
	for _, c := range coins {
		if c.Ticker == rent.Ticker {
			return *c
		}
	}
	return coin.NewCoin(0, 0, rent.Ticker)
}

// failingTokens fails the transfer with the given sequence number, counted
// from one.
type failingTokens struct {
	token.Controller
	failAt    int
	transfers int
}

func (c *failingTokens) Transfer(ctx nftswap.Context, db nftswap.KVStore, auth x.Authenticator, src, dest nftswap.Address, amount uint64) error {
	c.transfers++
	if c.transfers == c.failAt {
		return errors.Wrap(errors.ErrState, "transfer rejected")
	}
	return c.Controller.Transfer(ctx, db, auth, src, dest, amount)
}
