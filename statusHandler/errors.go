package statusHandler

import "errors"

// ErrHandlersSliceIsNil will signal that the provided handlers slice is empty
var ErrHandlersSliceIsNil = errors.New("no AppStatusHandler provided")

// ErrNilHandlerInSlice will signal that one of the provided handlers is nil
var ErrNilHandlerInSlice = errors.New("nil AppStatusHandler in the provided slice")

// ErrMetricNotFound signals that the requested metric was never set
var ErrMetricNotFound = errors.New("metric does not exist")
