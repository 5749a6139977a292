package vault

import (
	"fmt"

	"github.com/carbonvault/vault/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	common "github.com/tendermint/tendermint/libs/common"
)

// CheckResult captures any non-error abci result
// to make sure people use error for error cases.
type CheckResult struct {
	Data []byte
	Log  string
	// GasAllocated is the maximum units of work we allow this tx to perform.
	GasAllocated int64
	// GasPayment is the total fees for this tx (or other source of payment).
	GasPayment int64
}

// NewCheck sets the gas used and the response data but no more info.
// These are the most common info needed to be set by the Handler.
func NewCheck(gasAllocated int64, log string) *CheckResult {
	return &CheckResult{
		GasAllocated: gasAllocated,
		Log:          log,
	}
}

// ToABCI converts our internal type into an abci response.
func (c CheckResult) ToABCI() abci.ResponseCheckTx {
	return abci.ResponseCheckTx{
		Data:      c.Data,
		Log:       c.Log,
		GasWanted: c.GasAllocated,
	}
}

func (c CheckResult) String() string {
	return fmt.Sprintf("CheckResult: data=%X, log=%s", c.Data, c.Log)
}

// DeliverResult captures any non-error abci result
// to make sure people use error for error cases.
type DeliverResult struct {
	Data    []byte
	Log     string
	Diff    []abci.ValidatorUpdate
	Tags    []common.KVPair
	GasUsed int64
}

// ToABCI converts our internal type into an abci response.
func (d DeliverResult) ToABCI() abci.ResponseDeliverTx {
	return abci.ResponseDeliverTx{
		Data: d.Data,
		Log:  d.Log,
		Tags: d.Tags,
	}
}

func (d DeliverResult) String() string {
	return fmt.Sprintf("DeliverResult: data=%X, log=%s", d.Data, d.Log)
}

// DeliverOrError returns an abci response for DeliverTx,
// converting the error message if present, or using the successful
// DeliverResult.
func DeliverOrError(result *DeliverResult, err error, debug bool) abci.ResponseDeliverTx {
	if err != nil {
		return DeliverTxError(err, debug)
	}
	return result.ToABCI()
}

// CheckOrError returns an abci response for CheckTx,
// converting the error message if present, or using the successful
// CheckResult.
func CheckOrError(result *CheckResult, err error, debug bool) abci.ResponseCheckTx {
	if err != nil {
		return CheckTxError(err, debug)
	}
	return result.ToABCI()
}

// DeliverTxError converts any error into an abci response for DeliverTx.
func DeliverTxError(err error, debug bool) abci.ResponseDeliverTx {
	clean := errors.Redact(err)
	code, log := errors.ABCIInfo(clean, debug)

	return abci.ResponseDeliverTx{
		Code: code,
		Log:  log,
	}
}

// CheckTxError converts any error into an abci response for CheckTx.
func CheckTxError(err error, debug bool) abci.ResponseCheckTx {
	clean := errors.Redact(err)
	code, log := errors.ABCIInfo(clean, debug)

	return abci.ResponseCheckTx{
		Code: code,
		Log:  log,
	}
}
