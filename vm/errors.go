package vm

import "errors"

// ErrNilLedger signals that a nil ledger has been provided
var ErrNilLedger = errors.New("nil ledger")

// ErrNilLogsCollector signals that a nil logs collector has been provided
var ErrNilLogsCollector = errors.New("nil logs collector")

// ErrInputArgsIsNil signals that input arguments are nil for the ledger contract
var ErrInputArgsIsNil = errors.New("input ledger contract arguments are nil")

// ErrInputCallerAddrIsNil signals that input caller address is nil for the ledger contract
var ErrInputCallerAddrIsNil = errors.New("input caller address for ledger contract is nil")

// ErrInputFunctionIsNil signals that input function is nil for the ledger contract
var ErrInputFunctionIsNil = errors.New("input function for ledger contract is nil")

// ErrInvalidNumOfArguments signals that an invalid number of arguments was provided
var ErrInvalidNumOfArguments = errors.New("invalid number of arguments")

// ErrArgumentTooLong signals that a numeric argument does not fit its type
var ErrArgumentTooLong = errors.New("numeric argument too long")

// ErrCallValueMustBeZero signals that the ledger contract was called with a non zero call value
var ErrCallValueMustBeZero = errors.New("call value must be zero")
