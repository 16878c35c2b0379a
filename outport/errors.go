package outport

import "errors"

// ErrNilDriver signals that a nil driver has been provided
var ErrNilDriver = errors.New("nil driver")

// ErrNilEventsBatch signals that a nil events batch has been provided
var ErrNilEventsBatch = errors.New("nil events batch")

// ErrNilPubKeyConverter signals that a nil public key converter has been provided
var ErrNilPubKeyConverter = errors.New("nil public key converter")

// ErrNilMarshaller signals that a nil marshaller has been provided
var ErrNilMarshaller = errors.New("nil marshaller")

// ErrNilArgsOutportFactory signals that nil arguments were provided to the outport factory
var ErrNilArgsOutportFactory = errors.New("nil args outport factory")
