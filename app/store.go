package app

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// StoreApp contains a data store and all info needed
// to perform queries and handshakes.
//
// It should be embedded in another struct for CheckTx,
// DeliverTx and initializing state from the genesis.
//
// Errors on ABCI steps that do not take user input (Info, InitChain,
// BeginBlock, EndBlock and Commit) cannot be handled gracefully and are
// raised as panics.
type StoreApp struct {
	logger log.Logger

	// name is what is returned from abci.Info
	name string

	// Database state (committed, check, deliver....)
	store *CommitStore

	// Code to initialize from a genesis file
	initializer nftswap.Initializer

	// How to handle queries
	queryRouter nftswap.QueryRouter

	// chainID is loaded from db in initialization
	// saved once in parseAppState
	chainID string

	// baseContext contains context info that is valid for
	// lifetime of this app (eg. chainID)
	baseContext nftswap.Context

	// blockContext contains context info that is valid for the
	// current block (eg. height, header), reset on BeginBlock
	blockContext nftswap.Context
}

// NewStoreApp initializes this app into a ready state with some defaults
//
// panics if unable to properly load the state from the given store
func NewStoreApp(name string, store nftswap.CommitKVStore, queryRouter nftswap.QueryRouter, baseContext nftswap.Context) *StoreApp {
	s := &StoreApp{
		name:        name,
		store:       NewCommitStore(store),
		queryRouter: queryRouter,
		baseContext: baseContext,
	}
	s = s.WithLogger(log.NewNopLogger())

	chainID, err := loadChainID(s.DeliverStore())
	if err != nil {
		panic(err)
	}
	s.chainID = chainID
	if s.chainID != "" {
		s.baseContext = nftswap.WithChainID(s.baseContext, s.chainID)
	}

	info, err := s.store.CommitInfo()
	if err != nil {
		panic(err)
	}
	s.blockContext = nftswap.WithHeight(s.baseContext, info.Version)
	return s
}

// GetChainID returns the current chainID
func (s *StoreApp) GetChainID() string {
	return s.chainID
}

// WithInit is used to set the init function we call
func (s *StoreApp) WithInit(init nftswap.Initializer) *StoreApp {
	s.initializer = init
	return s
}

// parseAppState is called from InitChain, the first time the chain
// starts, and not on restarts.
func (s *StoreApp) parseAppState(data []byte, chainID string, init nftswap.Initializer) error {
	if s.chainID != "" {
		return errors.Wrapf(errors.ErrState, "app state previously loaded for chain %s", s.chainID)
	}
	if len(data) == 0 {
		return errors.Wrap(errors.ErrEmpty, "app_state not set in genesis.json, please initialize application before launching the blockchain")
	}
	if init == nil {
		return errors.Wrap(errors.ErrHuman, "initializer not set")
	}

	var appState nftswap.Options
	if err := json.Unmarshal(data, &appState); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if err := s.storeChainID(chainID); err != nil {
		return err
	}
	return init.FromGenesis(appState, s.DeliverStore())
}

// store chainID and update context
func (s *StoreApp) storeChainID(chainID string) error {
	if err := saveChainID(s.DeliverStore(), chainID); err != nil {
		return err
	}
	s.chainID = chainID
	s.baseContext = nftswap.WithChainID(s.baseContext, s.chainID)
	return nil
}

// WithLogger sets the logger on the StoreApp and returns it,
// to make it easy to chain in initialization
//
// also sets baseContext logger
func (s *StoreApp) WithLogger(logger log.Logger) *StoreApp {
	s.baseContext = nftswap.WithLogger(s.baseContext, logger)
	s.logger = logger
	return s
}

// Logger returns the application base logger
func (s *StoreApp) Logger() log.Logger {
	return s.logger
}

// BlockContext returns the block context for public use
func (s *StoreApp) BlockContext() nftswap.Context {
	return s.blockContext
}

// DeliverStore returns the current DeliverTx cache for methods
func (s *StoreApp) DeliverStore() nftswap.CacheableKVStore {
	return s.store.DeliverStore()
}

// CheckStore returns the current CheckTx cache for methods
func (s *StoreApp) CheckStore() nftswap.CacheableKVStore {
	return s.store.CheckStore()
}

//----------------------- ABCI ---------------------

// Info implements abci.Application. It returns the height and hash,
// as well as the abci name and version.
//
// The height is the block that holds the transactions, not the apphash itself.
func (s *StoreApp) Info(req abci.RequestInfo) abci.ResponseInfo {
	info, err := s.store.CommitInfo()
	if err != nil {
		panic(err)
	}
	s.logger.Info("Info synced",
		"height", info.Version,
		"hash", fmt.Sprintf("%X", info.Hash))

	return abci.ResponseInfo{
		Data:             s.name,
		Version:          nftswap.Version(),
		LastBlockHeight:  info.Version,
		LastBlockAppHash: info.Hash,
	}
}

// SetOption - ABCI
func (s *StoreApp) SetOption(res abci.RequestSetOption) abci.ResponseSetOption {
	return abci.ResponseSetOption{Log: "Not Implemented"}
}

/*
Query gets data from the app store.
A query request has the following elements:
* Path - the type of query
* Data - what to query, interpreted based on Path

Path may be "/" for a raw key or "/<bucket>" for a key in a bucket.
Only exact key lookups of the last committed state are served.

Key and Value in Results are always serialized ResultSet
objects, able to support 0 to N values. They must be the
same size.
*/
func (s *StoreApp) Query(reqQuery abci.RequestQuery) abci.ResponseQuery {
	path, mod := splitPath(reqQuery.Path)
	qh := s.queryRouter.Handler(path)
	if qh == nil {
		return queryError(errors.Wrapf(errors.ErrNotFound, "unexpected query path %q", reqQuery.Path))
	}

	info, err := s.store.CommitInfo()
	if err != nil {
		return queryError(err)
	}
	models, err := qh.Query(s.store.QueryStore(), mod, reqQuery.Data)
	if err != nil {
		return queryError(err)
	}

	res := abci.ResponseQuery{Height: info.Version}
	if res.Key, err = ResultsFromKeys(models).Marshal(); err != nil {
		return queryError(err)
	}
	if res.Value, err = ResultsFromValues(models).Marshal(); err != nil {
		return queryError(err)
	}
	return res
}

// splitPath splits out the real path along with the query
// modifier (everything after the ?)
func splitPath(path string) (string, string) {
	var mod string
	chunks := strings.SplitN(path, "?", 2)
	if len(chunks) == 2 {
		path = chunks[0]
		mod = chunks[1]
	}
	return path, mod
}

func queryError(err error) abci.ResponseQuery {
	code, log := errors.ABCIInfo(err, false)
	return abci.ResponseQuery{
		Code: code,
		Log:  log,
	}
}

// Commit implements abci.Application
func (s *StoreApp) Commit() abci.ResponseCommit {
	commitID, err := s.store.Commit()
	if err != nil {
		// Read comment on type header
		panic(err)
	}

	s.logger.Debug("Commit synced",
		"height", commitID.Version,
		"hash", fmt.Sprintf("%X", commitID.Hash),
	)
	return abci.ResponseCommit{Data: commitID.Hash}
}

// InitChain implements ABCI
func (s *StoreApp) InitChain(req abci.RequestInitChain) abci.ResponseInitChain {
	if err := s.parseAppState(req.AppStateBytes, req.ChainId, s.initializer); err != nil {
		// Read comment on type header
		panic(err)
	}
	return abci.ResponseInitChain{}
}

// BeginBlock implements ABCI
// Sets up blockContext
func (s *StoreApp) BeginBlock(req abci.RequestBeginBlock) abci.ResponseBeginBlock {
	ctx := nftswap.WithHeight(s.baseContext, req.Header.GetHeight())
	ctx = nftswap.WithBlockTime(ctx, req.Header.GetTime())
	s.blockContext = ctx
	return abci.ResponseBeginBlock{}
}

// EndBlock - ABCI
func (s *StoreApp) EndBlock(_ abci.RequestEndBlock) abci.ResponseEndBlock {
	return abci.ResponseEndBlock{}
}
