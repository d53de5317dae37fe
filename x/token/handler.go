package token

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/x"
)

const (
	createCost   int64 = 100
	mintCost     int64 = 50
	transferCost int64 = 20
	closeCost    int64 = 0
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r nftswap.Registry, auth x.Authenticator, ctrl Controller) {
	r.Handle(&CreateMintMsg{}, CreateMintHandler{auth: auth, ctrl: ctrl})
	r.Handle(&MintToMsg{}, MintToHandler{auth: auth, ctrl: ctrl})
	r.Handle(&FreezeMintMsg{}, FreezeMintHandler{auth: auth, ctrl: ctrl})
	r.Handle(&CreateAccountMsg{}, CreateAccountHandler{auth: auth, ctrl: ctrl})
	r.Handle(&TransferMsg{}, TransferHandler{auth: auth, ctrl: ctrl})
	r.Handle(&CloseAccountMsg{}, CloseAccountHandler{auth: auth, ctrl: ctrl})
}

// RegisterQuery will register the token accounts as "/tokens" and the
// mints as "/mints"
func RegisterQuery(qr nftswap.QueryRouter) {
	NewAccountBucket().Register("tokens", qr)
	NewMintBucket().Register("mints", qr)
}

// CreateMintHandler creates new mints.
type CreateMintHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ nftswap.Handler = CreateMintHandler{}

func (h CreateMintHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	var msg CreateMintMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &nftswap.CheckResult{GasAllocated: createCost}, nil
}

func (h CreateMintHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	var msg CreateMintMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.ctrl.CreateMint(ctx, db, h.auth, msg.Payer, msg.Mint, msg.Authority); err != nil {
		return nil, err
	}
	return &nftswap.DeliverResult{Data: msg.Mint}, nil
}

// MintToHandler creates new units of a mint.
type MintToHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ nftswap.Handler = MintToHandler{}

func (h MintToHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	var msg MintToMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &nftswap.CheckResult{GasAllocated: mintCost}, nil
}

func (h MintToHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	var msg MintToMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.ctrl.MintTo(ctx, db, h.auth, msg.Mint, msg.Account, msg.Amount); err != nil {
		return nil, err
	}
	return &nftswap.DeliverResult{}, nil
}

// FreezeMintHandler removes the authority of a mint.
type FreezeMintHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ nftswap.Handler = FreezeMintHandler{}

func (h FreezeMintHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	var msg FreezeMintMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &nftswap.CheckResult{GasAllocated: mintCost}, nil
}

func (h FreezeMintHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	var msg FreezeMintMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.ctrl.FreezeMint(ctx, db, h.auth, msg.Mint); err != nil {
		return nil, err
	}
	return &nftswap.DeliverResult{}, nil
}

// CreateAccountHandler creates empty token accounts.
type CreateAccountHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ nftswap.Handler = CreateAccountHandler{}

func (h CreateAccountHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	var msg CreateAccountMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &nftswap.CheckResult{GasAllocated: createCost}, nil
}

func (h CreateAccountHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	var msg CreateAccountMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.ctrl.CreateAccount(ctx, db, h.auth, msg.Payer, msg.Account, msg.Mint, msg.Owner); err != nil {
		return nil, err
	}
	return &nftswap.DeliverResult{Data: msg.Account}, nil
}

// TransferHandler moves units between accounts.
type TransferHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ nftswap.Handler = TransferHandler{}

func (h TransferHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	var msg TransferMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &nftswap.CheckResult{GasAllocated: transferCost}, nil
}

func (h TransferHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	var msg TransferMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.ctrl.Transfer(ctx, db, h.auth, msg.Source, msg.Destination, msg.Amount); err != nil {
		return nil, err
	}
	return &nftswap.DeliverResult{}, nil
}

// CloseAccountHandler deletes empty accounts.
type CloseAccountHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ nftswap.Handler = CloseAccountHandler{}

func (h CloseAccountHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	var msg CloseAccountMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &nftswap.CheckResult{GasAllocated: closeCost}, nil
}

func (h CloseAccountHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	var msg CloseAccountMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.ctrl.CloseAccount(ctx, db, h.auth, msg.Account, msg.Destination); err != nil {
		return nil, err
	}
	return &nftswap.DeliverResult{}, nil
}
