package middleware

import logger "github.com/multiversx/mx-chain-logger-go"

var log = logger.GetOrCreate("api/middleware")

// ResetHandler defines a component able to reset its accumulated counters
type ResetHandler interface {
	Reset()
	IsInterfaceNil() bool
}
