package nftswap

import (
	"context"
	"regexp"
	"time"

	"github.com/tendermint/tendermint/libs/log"
)

type contextKey int // local to the package

const (
	contextKeyHeight contextKey = iota
	contextKeyChainID
	contextKeyLogger
	contextKeyTime
)

var (
	// DefaultLogger is used for all context that have not
	// set anything themselves
	DefaultLogger = log.NewNopLogger()

	// IsValidChainID is the RegExp to ensure valid chain IDs
	IsValidChainID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`).MatchString
)

// Context is just an alias for the standard implementation.
// We use functions to extend it to our domain
type Context = context.Context

// WithHeight sets the block height for the context.
// May only be set once, panics on overwrite.
func WithHeight(ctx Context, height int64) Context {
	if _, ok := GetHeight(ctx); ok {
		panic("Tried to modify height in context")
	}
	return context.WithValue(ctx, contextKeyHeight, height)
}

// GetHeight returns the current block height
// If no height is set, returns (0, false)
func GetHeight(ctx Context) (int64, bool) {
	val, ok := ctx.Value(contextKeyHeight).(int64)
	return val, ok
}

// WithChainID sets the chain id for the Context.
// panics if called with chainID already set
func WithChainID(ctx Context, chainID string) Context {
	if ctx.Value(contextKeyChainID) != nil {
		panic("Tried to modify chain id in context")
	}
	if !IsValidChainID(chainID) {
		panic("Invalid chain ID")
	}
	return context.WithValue(ctx, contextKeyChainID, chainID)
}

// GetChainID returns the current chain id
// panics if chain id not already set (should never happen)
func GetChainID(ctx Context) string {
	if x := ctx.Value(contextKeyChainID); x == nil {
		panic("Chain ID not set in context")
	}
	return ctx.Value(contextKeyChainID).(string)
}

// WithBlockTime sets the block time for the context.
func WithBlockTime(ctx Context, t time.Time) Context {
	return context.WithValue(ctx, contextKeyTime, t)
}

// BlockTime returns the time of the block being processed, if set.
func BlockTime(ctx Context) (time.Time, bool) {
	t, ok := ctx.Value(contextKeyTime).(time.Time)
	return t, ok
}

// WithLogger sets the logger for this context
func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// WithLogInfo accepts keyvalue pairs, and returns another
// context like this, after passing all the keyvals to the
// Logger
func WithLogInfo(ctx Context, keyvals ...interface{}) Context {
	logger := GetLogger(ctx).With(keyvals...)
	return WithLogger(ctx, logger)
}

// GetLogger returns the currently set logger, or
// DefaultLogger if none was set
func GetLogger(ctx Context) log.Logger {
	val, ok := ctx.Value(contextKeyLogger).(log.Logger)
	if !ok {
		return DefaultLogger
	}
	return val
}
