package nftswap

import (
	"fmt"

	"github.com/iov-one/nftswap/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// DeliverOrError returns an abci response for DeliverTx,
// converting the error message if present, or using the successful
// DeliverResult
func DeliverOrError(result *DeliverResult, err error, debug bool) abci.ResponseDeliverTx {
	if err != nil {
		return DeliverTxError(err, debug)
	}
	return result.ToABCI()
}

// CheckOrError returns an abci response for CheckTx,
// converting the error message if present, or using the successful
// CheckResult
func CheckOrError(result *CheckResult, err error, debug bool) abci.ResponseCheckTx {
	if err != nil {
		return CheckTxError(err, debug)
	}
	return result.ToABCI()
}

// ToABCI converts our internal type into an abci response
func (d DeliverResult) ToABCI() abci.ResponseDeliverTx {
	return abci.ResponseDeliverTx{
		Data:    d.Data,
		Log:     d.Log,
		Tags:    d.Tags,
		GasUsed: d.GasUsed,
	}
}

// ToABCI converts our internal type into an abci response
func (c CheckResult) ToABCI() abci.ResponseCheckTx {
	return abci.ResponseCheckTx{
		Data:      c.Data,
		Log:       c.Log,
		GasWanted: c.GasAllocated,
	}
}

// DeliverTxError converts any error into a abci.ResponseDeliverTx, preserving
// as much info as possible.
// When in debug mode always the full error information is returned.
func DeliverTxError(err error, debug bool) abci.ResponseDeliverTx {
	code, log := errors.ABCIInfo(err, debug)
	if code != errors.SuccessABCICode {
		log = fmt.Sprintf("cannot deliver tx: %s", log)
	}
	return abci.ResponseDeliverTx{
		Code: code,
		Log:  log,
	}
}

// CheckTxError converts any error into a abci.ResponseCheckTx, preserving as
// much info as possible.
// When in debug mode always the full error information is returned.
func CheckTxError(err error, debug bool) abci.ResponseCheckTx {
	code, log := errors.ABCIInfo(err, debug)
	if code != errors.SuccessABCICode {
		log = fmt.Sprintf("cannot check tx: %s", log)
	}
	return abci.ResponseCheckTx{
		Code: code,
		Log:  log,
	}
}
