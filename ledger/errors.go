package ledger

import (
	"errors"

	"github.com/multiversx/mx-chain-tax-ledger-go/common"
	"github.com/multiversx/mx-chain-tax-ledger-go/ledger/tax"
)

// ErrInsufficientBalance signals that the account balance is lower than the requested amount
var ErrInsufficientBalance = common.NewLedgerError("InsufficientBalance", common.CategoryBalanceAllowance, "insufficient balance")

// ErrInsufficientAllowance signals that the allowance is lower than the requested amount
var ErrInsufficientAllowance = common.NewLedgerError("InsufficientAllowance", common.CategoryBalanceAllowance, "insufficient allowance")

// ErrRateTooHigh signals that a single tax rate exceeds the allowed maximum
var ErrRateTooHigh = tax.ErrRateTooHigh

// ErrCombinedRateTooHigh signals that transfer rate + sell rate exceeds the allowed maximum
var ErrCombinedRateTooHigh = tax.ErrCombinedRateTooHigh

// ErrZeroAddress signals that the zero address was provided where it is not allowed
var ErrZeroAddress = common.NewLedgerError("ZeroAddress", common.CategoryValidation, "zero address not allowed")

// ErrInvalidAddress signals that an address of invalid length was provided
var ErrInvalidAddress = common.NewLedgerError("InvalidAddress", common.CategoryValidation, "invalid address")

// ErrInvalidAmount signals that a nil or zero amount was provided where it is not allowed
var ErrInvalidAmount = common.NewLedgerError("InvalidAmount", common.CategoryValidation, "invalid amount")

// ErrFeeRecipientIsLedger signals an attempt to set the ledger itself as fee recipient
var ErrFeeRecipientIsLedger = common.NewLedgerError("FeeRecipientIsLedger", common.CategoryValidation, "fee recipient can not be the ledger address")

// ErrInvalidStrategy signals that a nil tax strategy was provided on upgrade
var ErrInvalidStrategy = common.NewLedgerError("InvalidStrategy", common.CategoryValidation, "invalid tax strategy")

// ErrPoolAlreadyAdded signals that the address is already registered as a pool
var ErrPoolAlreadyAdded = common.NewLedgerError("PoolAlreadyAdded", common.CategoryStateTiming, "pool already added")

// ErrPoolNotFound signals that the address is not registered as a pool
var ErrPoolNotFound = common.NewLedgerError("PoolNotFound", common.CategoryStateTiming, "pool not found")

// ErrNotGovernance signals that the caller is not the governance address
var ErrNotGovernance = common.NewLedgerError("NotGovernance", common.CategoryAuthorization, "caller is not governance")

// ErrNoPendingChange signals that there is no pending tax change
var ErrNoPendingChange = common.NewLedgerError("NoPendingChange", common.CategoryStateTiming, "no pending tax change")

// ErrNoPendingMint signals that there is no pending mint
var ErrNoPendingMint = common.NewLedgerError("NoPendingMint", common.CategoryStateTiming, "no pending mint")

// ErrTimelockNotExpired signals that the timelock of the pending operation did not expire yet
var ErrTimelockNotExpired = common.NewLedgerError("TimelockNotExpired", common.CategoryStateTiming, "timelock not expired")

// ErrFutureLookup signals that a historical query was made for a point that is not in the past
var ErrFutureLookup = common.NewLedgerError("FutureLookup", common.CategoryStateTiming, "lookup point is not in the past")

// ErrReentrantCall signals a nested call into a guarded ledger operation
var ErrReentrantCall = common.NewLedgerError("ReentrantCall", common.CategoryStateTiming, "reentrant call")

// ErrExceedsMaxSupply signals that the operation would push the total supply over the cap
var ErrExceedsMaxSupply = common.NewLedgerError("ExceedsMaxSupply", common.CategoryCapacity, "exceeds max supply")

// ErrExceedsMintCapPerPeriod signals that the operation would exceed the mint cap of the current window
var ErrExceedsMintCapPerPeriod = common.NewLedgerError("ExceedsMintCapPerPeriod", common.CategoryCapacity, "exceeds mint cap per period")

// ErrNilTimeProvider signals that a nil time provider has been provided
var ErrNilTimeProvider = errors.New("nil time provider")

// ErrNilTaxStrategy signals that a nil tax strategy has been provided
var ErrNilTaxStrategy = errors.New("nil tax strategy")

// ErrNilEventsHandler signals that a nil events handler has been provided
var ErrNilEventsHandler = errors.New("nil events handler")

// ErrNilBalanceObserver signals that a nil balance observer has been provided
var ErrNilBalanceObserver = errors.New("nil balance observer")

// ErrInvalidMaxSupply signals that an invalid max supply has been provided
var ErrInvalidMaxSupply = errors.New("invalid max supply")

// ErrInvalidMintCap signals that an invalid mint cap per period has been provided
var ErrInvalidMintCap = errors.New("invalid mint cap per period")

// ErrInvalidFee signals that the tax strategy computed a fee larger than the transferred amount
var ErrInvalidFee = errors.New("invalid fee computed by tax strategy")

// ErrVotesUnderflow signals an inconsistency between balances and delegated votes
var ErrVotesUnderflow = errors.New("delegated votes underflow")

// ErrInvalidSnapshot signals that the provided state snapshot is malformed
var ErrInvalidSnapshot = errors.New("invalid state snapshot")

// ErrStateConfigMismatch signals that the state snapshot was produced by a ledger configured differently
var ErrStateConfigMismatch = errors.New("saved state does not match the ledger configuration")

// ErrStrategyVersionMismatch signals that the state snapshot was produced with a different tax strategy version
var ErrStrategyVersionMismatch = errors.New("tax strategy version mismatch")
