package escrow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/weavetest"
)

func TestInitHandler(t *testing.T) {
	cases := map[string]struct {
		prepare func(t *testing.T, f *swapFixture) (*InitMsg, nftswap.Condition)
		wantErr *errors.Error
	}{
		"valid": {
			prepare: func(t *testing.T, f *swapFixture) (*InitMsg, nftswap.Condition) {
				return f.initMsg(), f.alice
			},
		},
		"not signed by the offering party": {
			prepare: func(t *testing.T, f *swapFixture) (*InitMsg, nftswap.Condition) {
				return f.initMsg(), f.bob
			},
			wantErr: errors.ErrUnauthorized,
		},
		"record not derived from the sources": {
			prepare: func(t *testing.T, f *swapFixture) (*InitMsg, nftswap.Condition) {
				msg := f.initMsg()
				msg.Record = weavetest.NewCondition().Address()
				return msg, f.alice
			},
			wantErr: errors.ErrAddressMismatch,
		},
		"record of the reversed swap": {
			prepare: func(t *testing.T, f *swapFixture) (*InitMsg, nftswap.Condition) {
				reversed, err := RecordAddress(f.bobSrc, f.aliceSrc)
				require.NoError(t, err)
				msg := f.initMsg()
				msg.Record = reversed.Address()
				return msg, f.alice
			},
			wantErr: errors.ErrAddressMismatch,
		},
		"escrow accounts swapped": {
			prepare: func(t *testing.T, f *swapFixture) (*InitMsg, nftswap.Condition) {
				msg := f.initMsg()
				msg.OfferingEscrow, msg.RequestingEscrow = msg.RequestingEscrow, msg.OfferingEscrow
				return msg, f.alice
			},
			wantErr: errors.ErrAddressMismatch,
		},
		"same mint on both sides": {
			prepare: func(t *testing.T, f *swapFixture) (*InitMsg, nftswap.Condition) {
				msg := f.initMsg()
				msg.RequestingMint = msg.OfferingMint
				return msg, f.alice
			},
			wantErr: errors.ErrInvalidMint,
		},
		"unknown mint": {
			prepare: func(t *testing.T, f *swapFixture) (*InitMsg, nftswap.Condition) {
				msg := f.initMsg()
				msg.RequestingMint = weavetest.NewCondition().Address()
				return msg, f.alice
			},
			wantErr: errors.ErrNotFound,
		},
		"offered mint can still mint": {
			prepare: func(t *testing.T, f *swapFixture) (*InitMsg, nftswap.Condition) {
				mint := f.createMint(t, f.alice)
				src := f.createAccount(t, f.alice, mint)
				require.NoError(t, f.tokens.MintTo(context.Background(), f.db, &weavetest.Auth{Signer: f.alice}, mint, src, 1))
				f.setSources(t, src, f.bobSrc)
				msg := f.initMsg()
				msg.OfferingMint = mint
				return msg, f.alice
			},
			wantErr: errors.ErrInvalidMint,
		},
		"requested mint of two units": {
			prepare: func(t *testing.T, f *swapFixture) (*InitMsg, nftswap.Condition) {
				ctx := context.Background()
				auth := &weavetest.Auth{Signer: f.bob}
				mint := f.createMint(t, f.bob)
				src := f.createAccount(t, f.bob, mint)
				require.NoError(t, f.tokens.MintTo(ctx, f.db, auth, mint, src, 2))
				require.NoError(t, f.tokens.FreezeMint(ctx, f.db, auth, mint))
				f.setSources(t, f.aliceSrc, src)
				msg := f.initMsg()
				msg.RequestingMint = mint
				return msg, f.alice
			},
			wantErr: errors.ErrInvalidMint,
		},
		"mints swapped": {
			prepare: func(t *testing.T, f *swapFixture) (*InitMsg, nftswap.Condition) {
				msg := f.initMsg()
				msg.OfferingMint, msg.RequestingMint = msg.RequestingMint, msg.OfferingMint
				return msg, f.alice
			},
			wantErr: errors.ErrMintMismatch,
		},
		"offering source not owned by the offering party": {
			prepare: func(t *testing.T, f *swapFixture) (*InitMsg, nftswap.Condition) {
				f.setSources(t, f.bobDst, f.bobSrc)
				return f.initMsg(), f.alice
			},
			wantErr: errors.ErrUnauthorized,
		},
		"offering source is empty": {
			prepare: func(t *testing.T, f *swapFixture) (*InitMsg, nftswap.Condition) {
				f.setSources(t, f.createAccount(t, f.alice, f.offMint), f.bobSrc)
				return f.initMsg(), f.alice
			},
			wantErr: errors.ErrInsufficientAmount,
		},
		"requesting source of another mint": {
			prepare: func(t *testing.T, f *swapFixture) (*InitMsg, nftswap.Condition) {
				f.setSources(t, f.aliceSrc, f.bobDst)
				return f.initMsg(), f.alice
			},
			wantErr: errors.ErrMintMismatch,
		},
		"requesting source not owned by the requesting party": {
			prepare: func(t *testing.T, f *swapFixture) (*InitMsg, nftswap.Condition) {
				msg := f.initMsg()
				msg.RequestingParty = weavetest.NewCondition().Address()
				return msg, f.alice
			},
			wantErr: errors.ErrUnauthorized,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			f := newSwapFixture(t)
			msg, signer := tc.prepare(t, f)
			err := f.deliver(msg, signer)
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "want %q, got %+v", tc.wantErr, err)
				ok, err := NewBucket().Has(f.db, msg.Record)
				require.NoError(t, err)
				assert.False(t, ok, "record must not be created")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StateCreated, f.state(t))
			assert.Equal(t, int64(0), f.amount(t, msg.OfferingEscrow))
			assert.Equal(t, int64(0), f.amount(t, msg.RequestingEscrow))

			acc, err := f.tokens.Account(f.db, msg.OfferingEscrow)
			require.NoError(t, err)
			assert.Equal(t, f.record(), acc.Owner)
			assert.Equal(t, f.offMint, acc.Mint)
		})
	}
}

func TestInitTwice(t *testing.T) {
	f := newSwapFixture(t)
	f.mustDeliver(t, f.initMsg(), f.alice)
	err := f.deliver(f.initMsg(), f.alice)
	assert.True(t, errors.ErrDuplicate.Is(err), "got %+v", err)
}

func TestFundHandler(t *testing.T) {
	cases := map[string]struct {
		prepare func(t *testing.T, f *swapFixture)
		role    Role
		msg     func(f *swapFixture) nftswap.Msg
		signer    func(f *swapFixture) nftswap.Condition
		wantErr   *errors.Error
		wantState State
	}{
		"fund offering": {
			role:      Offering,
			wantState: StateOfferingFunded,
		},
		"fund requesting first": {
			role:      Requesting,
			wantState: StateRequestingFunded,
		},
		"fund again after withdrawing": {
			prepare: func(t *testing.T, f *swapFixture) {
				f.mustDeliver(t, f.fundMsg(Offering), f.alice)
				f.mustDeliver(t, f.fundMsg(Requesting), f.bob)
				f.mustDeliver(t, f.defundMsg(Requesting), f.bob)
			},
			role:      Requesting,
			wantState: StateBothFunded,
		},
		"not signed by the party": {
			role:    Requesting,
			signer:  func(f *swapFixture) nftswap.Condition { return f.alice },
			wantErr: errors.ErrUnauthorized,
		},
		"unknown record": {
			role: Offering,
			msg: func(f *swapFixture) nftswap.Msg {
				return &FundOfferingMsg{Record: weavetest.NewCondition().Address(), Source: f.aliceSrc, Escrow: f.addrs.OfferingEscrow.Address()}
			},
			wantErr: errors.ErrNotFound,
		},
		"escrow of the other side": {
			role: Offering,
			msg: func(f *swapFixture) nftswap.Msg {
				return &FundOfferingMsg{Record: f.record(), Source: f.aliceSrc, Escrow: f.addrs.RequestingEscrow.Address()}
			},
			wantErr: errors.ErrAddressMismatch,
		},
		"source not bound to the record": {
			role: Offering,
			msg: func(f *swapFixture) nftswap.Msg {
				return &FundOfferingMsg{Record: f.record(), Source: f.aliceDst, Escrow: f.addrs.OfferingEscrow.Address()}
			},
			wantErr: errors.ErrAddressMismatch,
		},
		"funded twice": {
			prepare: func(t *testing.T, f *swapFixture) {
				f.mustDeliver(t, f.fundMsg(Offering), f.alice)
			},
			role:    Offering,
			wantErr: errors.ErrState,
		},
		"source emptied after init": {
			prepare: func(t *testing.T, f *swapFixture) {
				other := f.createAccount(t, f.bob, f.reqMint)
				require.NoError(t, f.tokens.Transfer(context.Background(), f.db, &weavetest.Auth{Signer: f.bob}, f.bobSrc, other, 1))
			},
			role:    Requesting,
			wantErr: errors.ErrInsufficientAmount,
		},
		"swap cancelled": {
			prepare: func(t *testing.T, f *swapFixture) {
				f.mustDeliver(t, f.fundMsg(Offering), f.alice)
				f.mustDeliver(t, f.defundMsg(Offering), f.alice)
			},
			role:    Requesting,
			wantErr: errors.ErrState,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			f := newSwapFixture(t)
			f.mustDeliver(t, f.initMsg(), f.alice)
			if tc.prepare != nil {
				tc.prepare(t, f)
			}
			msg := f.fundMsg(tc.role)
			if tc.msg != nil {
				msg = tc.msg(f)
			}
			signer := f.party(tc.role)
			if tc.signer != nil {
				signer = tc.signer(f)
			}

			before := f.state(t)
			err := f.deliver(msg, signer)
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "want %q, got %+v", tc.wantErr, err)
				assert.Equal(t, before, f.state(t))
				return
			}
			require.NoError(t, err)

			escrow := f.addrs.OfferingEscrow.Address()
			if tc.role == Requesting {
				escrow = f.addrs.RequestingEscrow.Address()
			}
			assert.Equal(t, int64(1), f.amount(t, escrow))
			assert.Equal(t, tc.wantState, f.state(t))
		})
	}
}

func TestCrankHandler(t *testing.T) {
	cases := map[string]struct {
		fund    []Role
		msg     func(t *testing.T, f *swapFixture) *CrankMsg
		wantErr *errors.Error
	}{
		"both funded": {
			fund: []Role{Offering, Requesting},
		},
		"nothing funded": {
			wantErr: errors.ErrState,
		},
		"only offering funded": {
			fund:    []Role{Offering},
			wantErr: errors.ErrState,
		},
		"only requesting funded": {
			fund:    []Role{Requesting},
			wantErr: errors.ErrState,
		},
		"wrong record bump": {
			fund: []Role{Offering, Requesting},
			msg: func(t *testing.T, f *swapFixture) *CrankMsg {
				msg := f.crankMsg()
				msg.RecordBump = (msg.RecordBump + 1) % 256
				return msg
			},
			wantErr: errors.ErrAddressMismatch,
		},
		"sources reversed": {
			fund: []Role{Offering, Requesting},
			msg: func(t *testing.T, f *swapFixture) *CrankMsg {
				msg := f.crankMsg()
				msg.OfferingSource, msg.RequestingSource = msg.RequestingSource, msg.OfferingSource
				return msg
			},
			wantErr: errors.ErrAddressMismatch,
		},
		"escrow accounts swapped": {
			fund: []Role{Offering, Requesting},
			msg: func(t *testing.T, f *swapFixture) *CrankMsg {
				msg := f.crankMsg()
				msg.OfferingEscrow, msg.RequestingEscrow = msg.RequestingEscrow, msg.OfferingEscrow
				return msg
			},
			wantErr: errors.ErrAddressMismatch,
		},
		"offering destination of the offered mint": {
			fund: []Role{Offering, Requesting},
			msg: func(t *testing.T, f *swapFixture) *CrankMsg {
				msg := f.crankMsg()
				msg.OfferingDestination = f.aliceSrc
				return msg
			},
			wantErr: errors.ErrMintMismatch,
		},
		"requesting destination owned by somebody else": {
			fund: []Role{Offering, Requesting},
			msg: func(t *testing.T, f *swapFixture) *CrankMsg {
				msg := f.crankMsg()
				msg.RequestingDestination = f.createAccount(t, f.alice, f.offMint)
				return msg
			},
			wantErr: errors.ErrUnauthorized,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			f := newSwapFixture(t)
			f.mustDeliver(t, f.initMsg(), f.alice)
			for _, r := range tc.fund {
				f.mustDeliver(t, f.fundMsg(r), f.party(r))
			}
			msg := f.crankMsg()
			if tc.msg != nil {
				msg = tc.msg(t, f)
			}

			before := f.state(t)
			// Anybody can crank.
			err := f.deliver(msg, weavetest.NewCondition())
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "want %q, got %+v", tc.wantErr, err)
				assert.Equal(t, before, f.state(t))
				assert.Equal(t, int64(0), f.amount(t, f.aliceDst))
				assert.Equal(t, int64(0), f.amount(t, f.bobDst))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StateCompleted, f.state(t))
			assert.Equal(t, int64(1), f.amount(t, f.aliceDst))
			assert.Equal(t, int64(1), f.amount(t, f.bobDst))
			assert.Equal(t, int64(-1), f.amount(t, f.addrs.OfferingEscrow.Address()))
			assert.Equal(t, int64(-1), f.amount(t, f.addrs.RequestingEscrow.Address()))
		})
	}
}

func TestCrankFailureWritesNothing(t *testing.T) {
	f := newSwapFixture(t)
	f.mustDeliver(t, f.initMsg(), f.alice)
	f.mustDeliver(t, f.fundMsg(Offering), f.alice)
	f.mustDeliver(t, f.fundMsg(Requesting), f.bob)
	rentBefore := f.balance(t, f.alice.Address())

	// The offered token leaves its escrow, the requested one cannot.
	f.useTokens(&failingTokens{Controller: f.tokens, failAt: 2})
	err := f.deliver(f.crankMsg(), f.bob)
	require.True(t, errors.ErrState.Is(err), "got %+v", err)

	assert.Equal(t, StateBothFunded, f.state(t))
	assert.Equal(t, int64(1), f.amount(t, f.addrs.OfferingEscrow.Address()))
	assert.Equal(t, int64(1), f.amount(t, f.addrs.RequestingEscrow.Address()))
	assert.Equal(t, int64(0), f.amount(t, f.aliceDst))
	assert.Equal(t, int64(0), f.amount(t, f.bobDst))
	assert.Equal(t, rentBefore, f.balance(t, f.alice.Address()))

	f.useTokens(f.tokens)
	f.mustDeliver(t, f.crankMsg(), f.bob)
	assert.Equal(t, int64(1), f.amount(t, f.aliceDst))
	assert.Equal(t, int64(1), f.amount(t, f.bobDst))
}

func TestDefundHandler(t *testing.T) {
	cases := map[string]struct {
		prepare    func(t *testing.T, f *swapFixture)
		role       Role
		msg        func(f *swapFixture) nftswap.Msg
		signer     func(f *swapFixture) nftswap.Condition
		wantErr    *errors.Error
		wantState  State
		wantEscrow int64
	}{
		"defund the only funded side": {
			prepare: func(t *testing.T, f *swapFixture) {
				f.mustDeliver(t, f.fundMsg(Offering), f.alice)
			},
			role:       Offering,
			wantState:  StateCancelled,
			wantEscrow: -1,
		},
		"defund requesting when both funded": {
			prepare: func(t *testing.T, f *swapFixture) {
				f.mustDeliver(t, f.fundMsg(Offering), f.alice)
				f.mustDeliver(t, f.fundMsg(Requesting), f.bob)
			},
			role:      Requesting,
			wantState: StateOfferingFunded,
		},
		"defund offering when both funded": {
			prepare: func(t *testing.T, f *swapFixture) {
				f.mustDeliver(t, f.fundMsg(Offering), f.alice)
				f.mustDeliver(t, f.fundMsg(Requesting), f.bob)
			},
			role:      Offering,
			wantState: StateRequestingFunded,
		},
		"both sides withdraw": {
			prepare: func(t *testing.T, f *swapFixture) {
				f.mustDeliver(t, f.fundMsg(Offering), f.alice)
				f.mustDeliver(t, f.fundMsg(Requesting), f.bob)
				f.mustDeliver(t, f.defundMsg(Offering), f.alice)
			},
			role:       Requesting,
			wantState:  StateCancelled,
			wantEscrow: -1,
		},
		"unit sent to the escrow without funding": {
			prepare: func(t *testing.T, f *swapFixture) {
				f.mustDeliver(t, f.fundMsg(Offering), f.alice)
				f.sendDirect(t, f.bob, f.bobSrc, f.addrs.RequestingEscrow.Address())
			},
			role:      Requesting,
			wantState: StateOfferingFunded,
		},
		"side not funded": {
			prepare: func(t *testing.T, f *swapFixture) {
				f.mustDeliver(t, f.fundMsg(Offering), f.alice)
			},
			role:    Requesting,
			wantErr: errors.ErrState,
		},
		"defunded twice": {
			prepare: func(t *testing.T, f *swapFixture) {
				f.mustDeliver(t, f.fundMsg(Offering), f.alice)
				f.mustDeliver(t, f.defundMsg(Offering), f.alice)
			},
			role:    Offering,
			wantErr: errors.ErrState,
		},
		"swap completed": {
			prepare: func(t *testing.T, f *swapFixture) {
				f.mustDeliver(t, f.fundMsg(Offering), f.alice)
				f.mustDeliver(t, f.fundMsg(Requesting), f.bob)
				f.mustDeliver(t, f.crankMsg(), f.bob)
			},
			role:    Offering,
			wantErr: errors.ErrState,
		},
		"not signed by the party": {
			prepare: func(t *testing.T, f *swapFixture) {
				f.mustDeliver(t, f.fundMsg(Offering), f.alice)
			},
			role:    Offering,
			signer:  func(f *swapFixture) nftswap.Condition { return f.bob },
			wantErr: errors.ErrUnauthorized,
		},
		"wrong record bump": {
			prepare: func(t *testing.T, f *swapFixture) {
				f.mustDeliver(t, f.fundMsg(Offering), f.alice)
			},
			role: Offering,
			msg: func(f *swapFixture) nftswap.Msg {
				msg := f.defundMsg(Offering).(*DefundOfferingMsg)
				msg.RecordBump = (msg.RecordBump + 1) % 256
				return msg
			},
			wantErr: errors.ErrAddressMismatch,
		},
		"sources reversed": {
			prepare: func(t *testing.T, f *swapFixture) {
				f.mustDeliver(t, f.fundMsg(Offering), f.alice)
			},
			role: Offering,
			msg: func(f *swapFixture) nftswap.Msg {
				msg := f.defundMsg(Offering).(*DefundOfferingMsg)
				msg.OfferingSource, msg.RequestingSource = msg.RequestingSource, msg.OfferingSource
				return msg
			},
			wantErr: errors.ErrAddressMismatch,
		},
		"escrow of the other side": {
			prepare: func(t *testing.T, f *swapFixture) {
				f.mustDeliver(t, f.fundMsg(Offering), f.alice)
				f.mustDeliver(t, f.fundMsg(Requesting), f.bob)
			},
			role: Offering,
			msg: func(f *swapFixture) nftswap.Msg {
				msg := f.defundMsg(Offering).(*DefundOfferingMsg)
				msg.Escrow = f.addrs.RequestingEscrow.Address()
				return msg
			},
			wantErr: errors.ErrAddressMismatch,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			f := newSwapFixture(t)
			f.mustDeliver(t, f.initMsg(), f.alice)
			if tc.prepare != nil {
				tc.prepare(t, f)
			}
			msg := f.defundMsg(tc.role)
			if tc.msg != nil {
				msg = tc.msg(f)
			}
			signer := f.party(tc.role)
			if tc.signer != nil {
				signer = tc.signer(f)
			}
			source, escrow := f.aliceSrc, f.addrs.OfferingEscrow.Address()
			other := f.addrs.RequestingEscrow.Address()
			if tc.role == Requesting {
				source, escrow = f.bobSrc, f.addrs.RequestingEscrow.Address()
				other = f.addrs.OfferingEscrow.Address()
			}
			sourceBefore := f.amount(t, source)
			escrowBefore := f.amount(t, escrow)
			otherBefore := f.amount(t, other)
			stateBefore := f.state(t)

			err := f.deliver(msg, signer)
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "want %q, got %+v", tc.wantErr, err)
				assert.Equal(t, stateBefore, f.state(t))
				assert.Equal(t, sourceBefore, f.amount(t, source))
				assert.Equal(t, escrowBefore, f.amount(t, escrow))
				assert.Equal(t, otherBefore, f.amount(t, other))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantState, f.state(t))
			assert.Equal(t, int64(1), f.amount(t, source))
			assert.Equal(t, tc.wantEscrow, f.amount(t, escrow))
			// The escrow of the other side is never touched.
			assert.Equal(t, otherBefore, f.amount(t, other))
		})
	}
}

func TestCloseHandler(t *testing.T) {
	cases := map[string]struct {
		prepare func(t *testing.T, f *swapFixture)
		check   func(t *testing.T, f *swapFixture)
		wantErr *errors.Error
	}{
		"open swap": {
			prepare: func(t *testing.T, f *swapFixture) {},
			wantErr: errors.ErrState,
		},
		"one side withdrew from a funded swap": {
			prepare: func(t *testing.T, f *swapFixture) {
				f.mustDeliver(t, f.fundMsg(Offering), f.alice)
				f.mustDeliver(t, f.fundMsg(Requesting), f.bob)
				f.mustDeliver(t, f.defundMsg(Requesting), f.bob)
			},
			wantErr: errors.ErrState,
		},
		"both sides withdrew": {
			prepare: func(t *testing.T, f *swapFixture) {
				f.mustDeliver(t, f.fundMsg(Offering), f.alice)
				f.mustDeliver(t, f.fundMsg(Requesting), f.bob)
				f.mustDeliver(t, f.defundMsg(Requesting), f.bob)
				f.mustDeliver(t, f.defundMsg(Offering), f.alice)
			},
		},
		"unit sent to an escrow after cancellation": {
			prepare: func(t *testing.T, f *swapFixture) {
				f.mustDeliver(t, f.fundMsg(Offering), f.alice)
				f.mustDeliver(t, f.defundMsg(Offering), f.alice)
				f.sendDirect(t, f.bob, f.bobSrc, f.addrs.RequestingEscrow.Address())
			},
			check: func(t *testing.T, f *swapFixture) {
				assert.Equal(t, int64(1), f.amount(t, f.bobSrc))
			},
		},
		"cancelled and fully defunded": {
			prepare: func(t *testing.T, f *swapFixture) {
				f.mustDeliver(t, f.fundMsg(Offering), f.alice)
				f.mustDeliver(t, f.defundMsg(Offering), f.alice)
			},
		},
		"completed": {
			prepare: func(t *testing.T, f *swapFixture) {
				f.mustDeliver(t, f.fundMsg(Offering), f.alice)
				f.mustDeliver(t, f.fundMsg(Requesting), f.bob)
				f.mustDeliver(t, f.crankMsg())
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			f := newSwapFixture(t)
			f.mustDeliver(t, f.initMsg(), f.alice)
			tc.prepare(t, f)

			err := f.deliver(&CloseMsg{Record: f.record()})
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "want %q, got %+v", tc.wantErr, err)
				return
			}
			require.NoError(t, err)

			ok, err := NewBucket().Has(f.db, f.record())
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Equal(t, int64(-1), f.amount(t, f.addrs.OfferingEscrow.Address()))
			assert.Equal(t, int64(-1), f.amount(t, f.addrs.RequestingEscrow.Address()))
			// alice paid rent for her mint, two accounts, the record and
			// both escrow accounts, and got the last three back.
			assert.Equal(t, int64(7), f.balance(t, f.alice.Address()).Whole)
			if tc.check != nil {
				tc.check(t, f)
			}
		})
	}
}
