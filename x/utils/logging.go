package utils

import (
	"time"

	"github.com/iov-one/nftswap"
)

// Logging is a decorator to log messages as they pass through
type Logging struct{}

var _ nftswap.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Check logs error -> error, success -> debug
func (r Logging) Check(ctx nftswap.Context, store nftswap.KVStore, tx nftswap.Tx, next nftswap.Checker) (*nftswap.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, tx, start, resLog, err, true)
	return res, err
}

// Deliver logs error -> error, success -> info
func (r Logging) Deliver(ctx nftswap.Context, store nftswap.KVStore, tx nftswap.Tx, next nftswap.Deliverer) (*nftswap.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, tx, start, resLog, err, false)
	return res, err
}

// logDuration writes information about the time and result to the logger
func logDuration(ctx nftswap.Context, tx nftswap.Tx, start time.Time, msg string, err error, lowPrio bool) {
	delta := time.Now().Sub(start)
	logger := nftswap.GetLogger(ctx).With("duration", delta/time.Microsecond, "path", nftswap.GetPath(tx))

	// Although message can be empty, we still want to emit a log entry
	// because it contains other relevant information beside the message.
	switch {
	case err != nil:
		logger.Error(msg, "err", err)
	case lowPrio:
		logger.Debug(msg)
	default:
		logger.Info(msg)
	}
}
