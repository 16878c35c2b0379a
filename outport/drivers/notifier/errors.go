package notifier

import "errors"

// ErrTooManyClients signals that the maximum number of websocket clients was reached
var ErrTooManyClients = errors.New("too many websocket clients")

// ErrDriverClosed signals that the driver was closed
var ErrDriverClosed = errors.New("websocket driver is closed")

// ErrInvalidClientBufferCapacity signals that an invalid client buffer capacity was provided
var ErrInvalidClientBufferCapacity = errors.New("invalid client buffer capacity")
