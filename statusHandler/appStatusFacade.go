package statusHandler

import (
	"github.com/multiversx/mx-chain-core-go/core"
	"github.com/multiversx/mx-chain-core-go/core/check"
)

// appStatusFacade will be used for handling all metrics by forwarding them to every registered handler
type appStatusFacade struct {
	handlers []core.AppStatusHandler
}

// NewAppStatusFacadeWithHandlers will receive the handlers which should receive data
func NewAppStatusFacadeWithHandlers(aphs ...core.AppStatusHandler) (*appStatusFacade, error) {
	if len(aphs) == 0 {
		return nil, ErrHandlersSliceIsNil
	}
	for _, aph := range aphs {
		if check.IfNil(aph) {
			return nil, ErrNilHandlerInSlice
		}
	}

	return &appStatusFacade{
		handlers: aphs,
	}, nil
}

// AddUint64 will add the value for all the handlers
func (asf *appStatusFacade) AddUint64(key string, value uint64) {
	for _, ash := range asf.handlers {
		ash.AddUint64(key, value)
	}
}

// Increment will increment the value for all the handlers
func (asf *appStatusFacade) Increment(key string) {
	for _, ash := range asf.handlers {
		ash.Increment(key)
	}
}

// Decrement will decrement the value for all the handlers
func (asf *appStatusFacade) Decrement(key string) {
	for _, ash := range asf.handlers {
		ash.Decrement(key)
	}
}

// SetInt64Value will update the value for all the handlers
func (asf *appStatusFacade) SetInt64Value(key string, value int64) {
	for _, ash := range asf.handlers {
		ash.SetInt64Value(key, value)
	}
}

// SetUInt64Value will update the value for all the handlers
func (asf *appStatusFacade) SetUInt64Value(key string, value uint64) {
	for _, ash := range asf.handlers {
		ash.SetUInt64Value(key, value)
	}
}

// SetStringValue will update the value for all the handlers
func (asf *appStatusFacade) SetStringValue(key string, value string) {
	for _, ash := range asf.handlers {
		ash.SetStringValue(key, value)
	}
}

// Close will close all the handlers
func (asf *appStatusFacade) Close() {
	for _, ash := range asf.handlers {
		ash.Close()
	}
}

// IsInterfaceNil returns true if there is no value under the interface
func (asf *appStatusFacade) IsInterfaceNil() bool {
	return asf == nil
}
