package facade

import "errors"

// ErrNilLedger signals that a nil ledger has been provided
var ErrNilLedger = errors.New("nil ledger")

// ErrNilContract signals that a nil contract handler has been provided
var ErrNilContract = errors.New("nil contract handler")

// ErrNilStateSaver signals that a nil state saver has been provided
var ErrNilStateSaver = errors.New("nil state saver")

// ErrNilOutport signals that a nil outport handler has been provided
var ErrNilOutport = errors.New("nil outport handler")

// ErrNilEventsConverter signals that a nil events converter has been provided
var ErrNilEventsConverter = errors.New("nil events converter")

// ErrNilStatusHandler signals that a nil app status handler has been provided
var ErrNilStatusHandler = errors.New("nil app status handler")

// ErrNilStatusMetrics signals that a nil status metrics provider has been provided
var ErrNilStatusMetrics = errors.New("nil status metrics provider")

// ErrNilPubKeyConverter signals that a nil public key converter has been provided
var ErrNilPubKeyConverter = errors.New("nil public key converter")

// ErrNilTimeProvider signals that a nil time provider has been provided
var ErrNilTimeProvider = errors.New("nil time provider")

// ErrNilHasher signals that a nil hasher has been provided
var ErrNilHasher = errors.New("nil hasher")

// ErrNilMarshaller signals that a nil marshaller has been provided
var ErrNilMarshaller = errors.New("nil marshaller")

// ErrNilCallVerifier signals that a nil call verifier has been provided
var ErrNilCallVerifier = errors.New("nil call verifier")

// ErrUnauthorizedCall signals that a call changing the ledger could not be authenticated
var ErrUnauthorizedCall = errors.New("unauthorized call")

// ErrNilCallRequest signals that a nil call request has been provided
var ErrNilCallRequest = errors.New("nil call request")

// ErrInvalidAddress signals that an address could not be decoded
var ErrInvalidAddress = errors.New("invalid address")

// ErrInvalidArgument signals that a call argument could not be decoded
var ErrInvalidArgument = errors.New("invalid call argument")

// ErrWebsocketDisabled signals that the events stream is not enabled
var ErrWebsocketDisabled = errors.New("events websocket is disabled")
