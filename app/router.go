package app

import (
	"regexp"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
)

// isPath is the allowed format of a message path.
var isPath = regexp.MustCompile(`^[a-zA-Z0-9_]+/[a-zA-Z0-9_]+$`).MatchString

// Router dispatches every transaction to the handler registered for the
// path of its message.
type Router struct {
	routes map[string]nftswap.Handler
}

var (
	_ nftswap.Registry = (*Router)(nil)
	_ nftswap.Handler  = (*Router)(nil)
)

// NewRouter returns a router without any handler registered.
func NewRouter() *Router {
	return &Router{routes: make(map[string]nftswap.Handler, 16)}
}

// Handle registers the handler for the path of the given message. It panics
// on an invalid or already registered path.
func (r *Router) Handle(m nftswap.Msg, h nftswap.Handler) {
	path := m.Path()
	if !isPath(path) {
		panic(errors.Wrapf(errors.ErrInput, "invalid message path %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(errors.Wrapf(errors.ErrDuplicate, "message path %q", path))
	}
	r.routes[path] = h
}

// Handler returns the handler registered for the path. A handler that
// always fails with ErrNotFound is returned for unknown paths.
func (r *Router) Handler(path string) nftswap.Handler {
	if h, ok := r.routes[path]; ok {
		return h
	}
	return notFoundHandler(path)
}

// Check dispatches to the handler of the transaction message.
func (r *Router) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.Handler(msg.Path()).Check(ctx, db, tx)
}

// Deliver dispatches to the handler of the transaction message.
func (r *Router) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.Handler(msg.Path()).Deliver(ctx, db, tx)
}

type notFoundHandler string

func (path notFoundHandler) Check(nftswap.Context, nftswap.KVStore, nftswap.Tx) (*nftswap.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}

func (path notFoundHandler) Deliver(nftswap.Context, nftswap.KVStore, nftswap.Tx) (*nftswap.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}
