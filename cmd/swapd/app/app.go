/*
Package app links together the cash, token and escrow extensions into the
swapd application.
*/
package app

import (
	"context"
	"path/filepath"
	"strings"

	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/app"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/store/iavl"
	"github.com/iov-one/nftswap/x"
	"github.com/iov-one/nftswap/x/cash"
	"github.com/iov-one/nftswap/x/escrow"
	"github.com/iov-one/nftswap/x/sigs"
	"github.com/iov-one/nftswap/x/token"
	"github.com/iov-one/nftswap/x/utils"
)

// Name is used for the database and in logs.
const Name = "swap"

// Authenticator returns the typical authentication,
// just using public key signatures
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{})
}

// Chain returns a chain of decorators, to handle authentication,
// logging, and recovery
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		// on DeliverTx, bad tx will increment nonce
		// even if the message fails
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a router dispatching to the cash, token and escrow
// handlers.
func Router(authFn x.Authenticator) *app.Router {
	bank := cash.NewController(cash.NewBucket())
	tokens := token.NewController(bank)

	r := app.NewRouter()
	cash.RegisterRoutes(r, authFn, bank)
	token.RegisterRoutes(r, authFn, tokens)
	escrow.RegisterRoutes(r, authFn, tokens, bank)
	return r
}

// QueryRouter returns a default query router,
// allowing access to "/", "/wallets", "/tokens", "/mints", "/escrows"
// and "/auth"
func QueryRouter() nftswap.QueryRouter {
	r := nftswap.NewQueryRouter()
	r.RegisterAll(
		app.RegisterQuery,
		cash.RegisterQuery,
		token.RegisterQuery,
		escrow.RegisterQuery,
		sigs.RegisterQuery,
	)
	return r
}

// Initializers loads the genesis state of every extension.
func Initializers() nftswap.Initializer {
	return app.ChainInitializers(
		cash.Initializer{},
		token.Initializer{},
		escrow.Initializer{},
	)
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack() nftswap.Handler {
	authFn := Authenticator()
	return Chain().WithHandler(Router(authFn))
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(name string, h nftswap.Handler, tx nftswap.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	store := app.NewStoreApp(name, kv, QueryRouter(), context.Background())
	store = store.WithInit(Initializers())
	return app.NewBaseApp(store, tx, h, debug), nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (nftswap.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.NewMemCommitStore(), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name: %s", dbPath)
	}

	// Some external calls accidently add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name), nil
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(home string, logger log.Logger, debug bool) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if home != "" {
		dbPath = filepath.Join(home, Name+".db")
	}

	application, err := Application(Name, Stack(), TxDecoder, dbPath, debug)
	if err != nil {
		return nil, err
	}
	application.WithLogger(logger)
	return application, nil
}
