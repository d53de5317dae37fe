package escrow

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/x"
	"github.com/iov-one/nftswap/x/cash"
	"github.com/iov-one/nftswap/x/token"
	"github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	initCost   int64 = 300
	fundCost   int64 = 100
	crankCost  int64 = 200
	defundCost int64 = 100
	closeCost  int64 = 0
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r nftswap.Registry, auth x.Authenticator, tokens token.Controller, bank cash.Controller) {
	bucket := NewBucket()
	r.Handle(&InitMsg{}, InitHandler{auth: auth, bucket: bucket, tokens: tokens, bank: bank})
	r.Handle(&FundOfferingMsg{}, FundHandler{auth: auth, bucket: bucket, tokens: tokens, role: Offering})
	r.Handle(&FundRequestingMsg{}, FundHandler{auth: auth, bucket: bucket, tokens: tokens, role: Requesting})
	r.Handle(&CrankMsg{}, CrankHandler{auth: auth, bucket: bucket, tokens: tokens})
	r.Handle(&DefundOfferingMsg{}, DefundHandler{auth: auth, bucket: bucket, tokens: tokens, role: Offering})
	r.Handle(&DefundRequestingMsg{}, DefundHandler{auth: auth, bucket: bucket, tokens: tokens, role: Requesting})
	r.Handle(&CloseMsg{}, CloseHandler{auth: auth, bucket: bucket, tokens: tokens, bank: bank})
}

// RegisterQuery will register this bucket as "/escrows"
func RegisterQuery(qr nftswap.QueryRouter) {
	NewBucket().Register("escrows", qr)
}

// InitHandler opens a swap.
type InitHandler struct {
	auth   x.Authenticator
	bucket Bucket
	tokens token.Controller
	bank   cash.Controller
}

var _ nftswap.Handler = InitHandler{}

func (h InitHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &nftswap.CheckResult{GasAllocated: initCost}, nil
}

// Deliver creates both escrow accounts, owned by the record, and stores
// the record. The offering party pays all rent.
func (h InitHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	msg, addrs, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	record := addrs.Record.Address()

	if err := token.PayRent(db, h.bank, conf.Rent, msg.OfferingParty, record); err != nil {
		return nil, err
	}
	// The payer signed the message, the escrow accounts are granted by
	// their derived conditions.
	auth := x.ChainAuth(h.auth, newAuthority(addrs.OfferingEscrow.Condition, addrs.RequestingEscrow.Condition))
	if err := h.tokens.CreateAccount(ctx, db, auth, msg.OfferingParty, msg.OfferingEscrow, msg.OfferingMint, record); err != nil {
		return nil, errors.Wrap(err, "offering escrow")
	}
	if err := h.tokens.CreateAccount(ctx, db, auth, msg.OfferingParty, msg.RequestingEscrow, msg.RequestingMint, record); err != nil {
		return nil, errors.Wrap(err, "requesting escrow")
	}

	e := Escrow{
		OfferingParty:    msg.OfferingParty,
		RequestingParty:  msg.RequestingParty,
		OfferingMint:     msg.OfferingMint,
		RequestingMint:   msg.RequestingMint,
		OfferingSource:   msg.OfferingSource,
		RequestingSource: msg.RequestingSource,
		OfferingEscrow:   msg.OfferingEscrow,
		RequestingEscrow: msg.RequestingEscrow,
		Status:           StatusOpen,
		RecordBump:       addrs.Record.Bump,
		OfferingBump:     addrs.OfferingEscrow.Bump,
		RequestingBump:   addrs.RequestingEscrow.Bump,
	}
	if err := h.bucket.Create(db, record, &e); err != nil {
		return nil, err
	}

	nftswap.GetLogger(ctx).Info("escrow initialized", "record", record, "state", e.State())
	return &nftswap.DeliverResult{Data: record, Tags: escrowTags(record, e.State())}, nil
}

func (h InitHandler) validate(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*InitMsg, *Addresses, error) {
	var msg InitMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.OfferingParty) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "offering party signature missing")
	}

	addrs, err := Derive(msg.OfferingSource, msg.RequestingSource)
	if err != nil {
		return nil, nil, err
	}
	if err := expectAddress("record", addrs.Record.Address(), msg.Record); err != nil {
		return nil, nil, err
	}
	if err := expectAddress("offering escrow", addrs.OfferingEscrow.Address(), msg.OfferingEscrow); err != nil {
		return nil, nil, err
	}
	if err := expectAddress("requesting escrow", addrs.RequestingEscrow.Address(), msg.RequestingEscrow); err != nil {
		return nil, nil, err
	}

	switch ok, err := h.bucket.Has(db, msg.Record); {
	case err != nil:
		return nil, nil, err
	case ok:
		return nil, nil, errors.Wrapf(errors.ErrDuplicate, "escrow %s", msg.Record)
	}

	for _, mint := range []nftswap.Address{msg.OfferingMint, msg.RequestingMint} {
		m, err := h.tokens.Mint(db, mint)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "mint %s", mint)
		}
		if !m.NonFungible() {
			return nil, nil, errors.Wrapf(errors.ErrInvalidMint, "mint %s is not a frozen single unit mint", mint)
		}
	}

	src, err := h.tokens.Account(db, msg.OfferingSource)
	if err != nil {
		return nil, nil, errors.Wrap(err, "offering source")
	}
	if !src.Owner.Equals(msg.OfferingParty) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "offering party does not own the offering source")
	}
	if err := expectHolding(src, msg.OfferingMint); err != nil {
		return nil, nil, errors.Wrap(err, "offering source")
	}

	req, err := h.tokens.Account(db, msg.RequestingSource)
	if err != nil {
		return nil, nil, errors.Wrap(err, "requesting source")
	}
	if !req.Mint.Equals(msg.RequestingMint) {
		return nil, nil, errors.Wrapf(errors.ErrMintMismatch, "requesting source holds %s", req.Mint)
	}
	if !req.Owner.Equals(msg.RequestingParty) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "requesting party does not own the requesting source")
	}
	return &msg, addrs, nil
}

// FundHandler moves the token of one side into its escrow account.
type FundHandler struct {
	auth   x.Authenticator
	bucket Bucket
	tokens token.Controller
	role   Role
}

var _ nftswap.Handler = FundHandler{}

func (h FundHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &nftswap.CheckResult{GasAllocated: fundCost}, nil
}

func (h FundHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	record, e, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.tokens.Transfer(ctx, db, h.auth, e.Source(h.role), e.EscrowAccount(h.role), 1); err != nil {
		return nil, err
	}
	e.setFunded(h.role, true)
	if err := h.bucket.Put(db, record, e); err != nil {
		return nil, err
	}

	nftswap.GetLogger(ctx).Info("escrow funded", "record", record, "side", h.role, "state", e.State())
	return &nftswap.DeliverResult{Tags: escrowTags(record, e.State())}, nil
}

func (h FundHandler) validate(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (nftswap.Address, *Escrow, error) {
	var record, source, escrow nftswap.Address
	switch h.role {
	case Offering:
		var msg FundOfferingMsg
		if err := nftswap.LoadMsg(tx, &msg); err != nil {
			return nil, nil, errors.Wrap(err, "load msg")
		}
		record, source, escrow = msg.Record, msg.Source, msg.Escrow
	case Requesting:
		var msg FundRequestingMsg
		if err := nftswap.LoadMsg(tx, &msg); err != nil {
			return nil, nil, errors.Wrap(err, "load msg")
		}
		record, source, escrow = msg.Record, msg.Source, msg.Escrow
	}

	e, err := h.bucket.Get(db, record)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, e.Party(h.role)) {
		return nil, nil, errors.Wrapf(errors.ErrUnauthorized, "%s party signature missing", h.role)
	}
	if err := verifyRecord(e, record); err != nil {
		return nil, nil, err
	}
	if err := expectAddress("source", e.Source(h.role), source); err != nil {
		return nil, nil, err
	}
	if err := verifyEscrow(e, h.role, escrow); err != nil {
		return nil, nil, err
	}
	if e.Status != StatusOpen || e.Funded(h.role) {
		return nil, nil, errors.Wrapf(errors.ErrState, "cannot fund %s side in state %s", h.role, e.State())
	}

	src, err := h.tokens.Account(db, source)
	if err != nil {
		return nil, nil, errors.Wrap(err, "source")
	}
	if err := expectHolding(src, e.Mint(h.role)); err != nil {
		return nil, nil, errors.Wrap(err, "source")
	}
	return record, e, nil
}

// CrankHandler completes a funded swap. Any signer may crank as the
// outcome is fully determined by the record.
type CrankHandler struct {
	auth   x.Authenticator
	bucket Bucket
	tokens token.Controller
}

var _ nftswap.Handler = CrankHandler{}

func (h CrankHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &nftswap.CheckResult{GasAllocated: crankCost}, nil
}

// Deliver sends both tokens to their destinations and closes both escrow
// accounts. A failure of any step fails the whole message.
func (h CrankHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	msg, cond, e, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	auth := newAuthority(cond)

	if err := sweep(ctx, db, h.tokens, auth, e.OfferingEscrow, msg.RequestingDestination); err != nil {
		return nil, errors.Wrap(err, "offered token")
	}
	if err := sweep(ctx, db, h.tokens, auth, e.RequestingEscrow, msg.OfferingDestination); err != nil {
		return nil, errors.Wrap(err, "requested token")
	}
	for _, acc := range []nftswap.Address{e.OfferingEscrow, e.RequestingEscrow} {
		if err := h.tokens.CloseAccount(ctx, db, auth, acc, e.OfferingParty); err != nil {
			return nil, errors.Wrap(err, "close escrow account")
		}
	}

	e.OfferingFunded = false
	e.RequestingFunded = false
	e.Status = StatusCompleted
	if err := h.bucket.Put(db, msg.Record, e); err != nil {
		return nil, err
	}

	signerLogger(ctx, h.auth).Info("escrow completed", "record", msg.Record, "state", e.State())
	return &nftswap.DeliverResult{Tags: escrowTags(msg.Record, e.State())}, nil
}

func (h CrankHandler) validate(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*CrankMsg, nftswap.Condition, *Escrow, error) {
	var msg CrankMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}

	cond, err := recordCondition(msg.OfferingSource, msg.RequestingSource, uint8(msg.RecordBump))
	if err != nil {
		return nil, nil, nil, errors.Wrap(errors.ErrAddressMismatch, err.Error())
	}
	if err := expectAddress("record", cond.Address(), msg.Record); err != nil {
		return nil, nil, nil, err
	}

	e, err := h.bucket.Get(db, msg.Record)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := verifyEscrow(e, Offering, msg.OfferingEscrow); err != nil {
		return nil, nil, nil, err
	}
	if err := verifyEscrow(e, Requesting, msg.RequestingEscrow); err != nil {
		return nil, nil, nil, err
	}
	if s := e.State(); s != StateBothFunded {
		return nil, nil, nil, errors.Wrapf(errors.ErrState, "cannot crank in state %s", s)
	}

	// The offering party receives the requested token and the other way
	// round.
	if err := h.expectDestination(db, msg.OfferingDestination, e.RequestingMint, e.OfferingParty); err != nil {
		return nil, nil, nil, errors.Wrap(err, "offering destination")
	}
	if err := h.expectDestination(db, msg.RequestingDestination, e.OfferingMint, e.RequestingParty); err != nil {
		return nil, nil, nil, errors.Wrap(err, "requesting destination")
	}
	return &msg, cond, e, nil
}

func (h CrankHandler) expectDestination(db nftswap.ReadOnlyKVStore, addr, mint, owner nftswap.Address) error {
	acc, err := h.tokens.Account(db, addr)
	if err != nil {
		return err
	}
	if !acc.Mint.Equals(mint) {
		return errors.Wrapf(errors.ErrMintMismatch, "want %s, got %s", mint, acc.Mint)
	}
	if !acc.Owner.Equals(owner) {
		return errors.Wrapf(errors.ErrUnauthorized, "account owned by %s", acc.Owner)
	}
	return nil
}

// DefundHandler returns the token of one side to its source. The swap is
// cancelled once no side is funded anymore.
type DefundHandler struct {
	auth   x.Authenticator
	bucket Bucket
	tokens token.Controller
	role   Role
}

var _ nftswap.Handler = DefundHandler{}

func (h DefundHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &nftswap.CheckResult{GasAllocated: defundCost}, nil
}

// Deliver moves everything held by the escrow account of that side back to
// its source. While the other side is still funded the account stays open,
// so this side can fund again. Otherwise the account is closed, its rent
// goes back to the offering party and the swap is cancelled.
func (h DefundHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	record, cond, e, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	auth := newAuthority(cond)
	escrow := e.EscrowAccount(h.role)

	if err := sweep(ctx, db, h.tokens, auth, escrow, e.Source(h.role)); err != nil {
		return nil, err
	}

	wasFunded := e.Funded(h.role)
	e.setFunded(h.role, false)
	if wasFunded && !e.OfferingFunded && !e.RequestingFunded {
		if err := h.tokens.CloseAccount(ctx, db, auth, escrow, e.OfferingParty); err != nil {
			return nil, errors.Wrap(err, "close escrow account")
		}
		e.Status = StatusCancelled
	}
	if err := h.bucket.Put(db, record, e); err != nil {
		return nil, err
	}

	nftswap.GetLogger(ctx).Info("escrow defunded", "record", record, "side", h.role, "state", e.State())
	return &nftswap.DeliverResult{Tags: escrowTags(record, e.State())}, nil
}

func (h DefundHandler) validate(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (nftswap.Address, nftswap.Condition, *Escrow, error) {
	var (
		record, offering, requesting, escrow nftswap.Address
		bump                                 uint32
	)
	switch h.role {
	case Offering:
		var msg DefundOfferingMsg
		if err := nftswap.LoadMsg(tx, &msg); err != nil {
			return nil, nil, nil, errors.Wrap(err, "load msg")
		}
		record, bump, offering, requesting, escrow = msg.Record, msg.RecordBump, msg.OfferingSource, msg.RequestingSource, msg.Escrow
	case Requesting:
		var msg DefundRequestingMsg
		if err := nftswap.LoadMsg(tx, &msg); err != nil {
			return nil, nil, nil, errors.Wrap(err, "load msg")
		}
		record, bump, offering, requesting, escrow = msg.Record, msg.RecordBump, msg.OfferingSource, msg.RequestingSource, msg.Escrow
	}

	cond, err := recordCondition(offering, requesting, uint8(bump))
	if err != nil {
		return nil, nil, nil, errors.Wrap(errors.ErrAddressMismatch, err.Error())
	}
	if err := expectAddress("record", cond.Address(), record); err != nil {
		return nil, nil, nil, err
	}

	e, err := h.bucket.Get(db, record)
	if err != nil {
		return nil, nil, nil, err
	}
	if !h.auth.HasAddress(ctx, e.Party(h.role)) {
		return nil, nil, nil, errors.Wrapf(errors.ErrUnauthorized, "%s party signature missing", h.role)
	}
	if err := verifyEscrow(e, h.role, escrow); err != nil {
		return nil, nil, nil, err
	}
	if e.Status != StatusOpen {
		return nil, nil, nil, errors.Wrapf(errors.ErrState, "cannot defund %s side in state %s", h.role, e.State())
	}
	// A unit sent to the escrow account without the fund handler can be
	// taken back the same way as a funded one.
	acc, err := h.tokens.Account(db, escrow)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "escrow")
	}
	if acc.Amount == 0 {
		return nil, nil, nil, errors.Wrapf(errors.ErrState, "nothing to defund on %s side in state %s", h.role, e.State())
	}
	return record, cond, e, nil
}

// CloseHandler deletes a record that can no longer change and returns the
// rent of everything still open to the offering party. Any signer may
// close.
type CloseHandler struct {
	auth   x.Authenticator
	bucket Bucket
	tokens token.Controller
	bank   cash.Controller
}

var _ nftswap.Handler = CloseHandler{}

func (h CloseHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	if _, _, err := h.validate(db, tx); err != nil {
		return nil, err
	}
	return &nftswap.CheckResult{GasAllocated: closeCost}, nil
}

func (h CloseHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	msg, e, err := h.validate(db, tx)
	if err != nil {
		return nil, err
	}
	cond, err := recordCondition(e.OfferingSource, e.RequestingSource, e.RecordBump)
	if err != nil {
		return nil, err
	}
	auth := newAuthority(cond)

	// Escrow accounts of sides that were never funded are still open. Units
	// sent to them outside of the fund handlers go back to the source.
	for _, r := range []Role{Offering, Requesting} {
		acc := e.EscrowAccount(r)
		_, err := h.tokens.Account(db, acc)
		switch {
		case errors.ErrNotFound.Is(err):
			continue
		case err != nil:
			return nil, err
		}
		if err := sweep(ctx, db, h.tokens, auth, acc, e.Source(r)); err != nil {
			return nil, errors.Wrapf(err, "return %s escrow content", r)
		}
		if err := h.tokens.CloseAccount(ctx, db, auth, acc, e.OfferingParty); err != nil {
			return nil, errors.Wrap(err, "close escrow account")
		}
	}

	if err := h.bucket.Delete(db, msg.Record); err != nil {
		return nil, err
	}
	if err := token.ReclaimRent(db, h.bank, msg.Record, e.OfferingParty); err != nil {
		return nil, err
	}

	signerLogger(ctx, h.auth).Info("escrow closed", "record", msg.Record, "state", e.State())
	return &nftswap.DeliverResult{Tags: escrowTags(msg.Record, e.State())}, nil
}

func (h CloseHandler) validate(db nftswap.KVStore, tx nftswap.Tx) (*CloseMsg, *Escrow, error) {
	var msg CloseMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	e, err := h.bucket.Get(db, msg.Record)
	if err != nil {
		return nil, nil, err
	}
	if s := e.State(); s != StateCompleted && s != StateCancelled {
		return nil, nil, errors.Wrapf(errors.ErrState, "cannot close in state %s", s)
	}
	return &msg, e, nil
}

// signerLogger returns the context logger, annotated with the first signer
// of a message that anybody may send.
func signerLogger(ctx nftswap.Context, auth x.Authenticator) log.Logger {
	logger := nftswap.GetLogger(ctx)
	if s := x.MainSigner(ctx, auth); s != nil {
		logger = logger.With("by", s.Address())
	}
	return logger
}

// escrowTags index the transaction by the record it changed.
func escrowTags(record nftswap.Address, s State) []common.KVPair {
	return []common.KVPair{
		{Key: []byte("escrow"), Value: []byte(record.String())},
		{Key: []byte("escrow.state"), Value: []byte(s.String())},
	}
}

// verifyRecord derives the record address again from the stored sources
// and bump.
func verifyRecord(e *Escrow, supplied nftswap.Address) error {
	cond, err := recordCondition(e.OfferingSource, e.RequestingSource, e.RecordBump)
	if err != nil {
		return errors.Wrap(errors.ErrAddressMismatch, err.Error())
	}
	return expectAddress("record", cond.Address(), supplied)
}

// verifyEscrow derives the escrow account of the given side from the
// stored source and bump, and compares it with both the stored and the
// supplied address.
func verifyEscrow(e *Escrow, r Role, supplied nftswap.Address) error {
	cond, err := escrowCondition(r, e.Source(r), e.EscrowBump(r))
	if err != nil {
		return errors.Wrap(errors.ErrAddressMismatch, err.Error())
	}
	name := r.String() + " escrow"
	if err := expectAddress(name, cond.Address(), e.EscrowAccount(r)); err != nil {
		return err
	}
	return expectAddress(name, cond.Address(), supplied)
}

// sweep moves everything an escrow account holds to the destination.
func sweep(ctx nftswap.Context, db nftswap.KVStore, tokens token.Controller, auth x.Authenticator, escrow, dest nftswap.Address) error {
	acc, err := tokens.Account(db, escrow)
	if err != nil {
		return err
	}
	if acc.Amount == 0 {
		return nil
	}
	return tokens.Transfer(ctx, db, auth, escrow, dest, acc.Amount)
}

// expectHolding ensures the account holds a unit of the mint.
func expectHolding(acc *token.Account, mint nftswap.Address) error {
	if !acc.Mint.Equals(mint) {
		return errors.Wrapf(errors.ErrMintMismatch, "want %s, got %s", mint, acc.Mint)
	}
	if acc.Amount < 1 {
		return errors.Wrap(errors.ErrInsufficientAmount, "no unit held")
	}
	return nil
}
