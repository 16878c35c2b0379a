package node

import "errors"

// ErrNilConfigs signals that nil configs have been provided
var ErrNilConfigs = errors.New("nil configs")

// ErrInvalidLedgerConfig signals that the ledger section of the config could not be decoded
var ErrInvalidLedgerConfig = errors.New("invalid ledger config")

// ErrCloseTimeout signals that the components could not be closed in time
var ErrCloseTimeout = errors.New("did not close all components gracefully")
