package tax

import (
	"errors"

	"github.com/multiversx/mx-chain-tax-ledger-go/common"
)

// ErrRateTooHigh signals that a single tax rate exceeds the allowed maximum
var ErrRateTooHigh = common.NewLedgerError("RateTooHigh", common.CategoryValidation, "tax rate too high")

// ErrCombinedRateTooHigh signals that transfer rate + sell rate exceeds the allowed maximum
var ErrCombinedRateTooHigh = common.NewLedgerError("CombinedRateTooHigh", common.CategoryValidation, "combined transfer and sell rate too high")

// ErrUnknownTransferKind signals that the fee was requested for an unknown transfer kind
var ErrUnknownTransferKind = errors.New("unknown transfer kind")

// ErrNilAmount signals that a nil amount has been provided
var ErrNilAmount = errors.New("nil amount")

// ErrUnknownStrategyVersion signals that no strategy implements the requested version
var ErrUnknownStrategyVersion = errors.New("unknown tax strategy version")
