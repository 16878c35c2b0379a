package groups

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-tax-ledger-go/api/errors"
	"github.com/multiversx/mx-chain-tax-ledger-go/api/shared"
)

const eventsWebsocketPath = "/ws"

type eventsFacadeHandler interface {
	EventsWebsocketHandler() (http.Handler, error)
	IsInterfaceNil() bool
}

type eventsGroup struct {
	*baseGroup
	facade eventsFacadeHandler
}

// NewEventsGroup returns a new instance of eventsGroup
func NewEventsGroup(facade eventsFacadeHandler) (*eventsGroup, error) {
	if check.IfNil(facade) {
		return nil, fmt.Errorf("%w for events group", errors.ErrNilFacadeHandler)
	}

	eg := &eventsGroup{
		facade:    facade,
		baseGroup: &baseGroup{},
	}

	eg.endpoints = []*shared.EndpointHandlerData{
		{
			Path:    eventsWebsocketPath,
			Method:  http.MethodGet,
			Handler: eg.subscribe,
		},
	}

	return eg, nil
}

// subscribe upgrades the connection and streams the committed ledger events
func (eg *eventsGroup) subscribe(c *gin.Context) {
	handler, err := eg.facade.EventsWebsocketHandler()
	if err != nil {
		shared.RespondWithInternalError(c, errors.ErrEventsStream, err)
		return
	}

	handler.ServeHTTP(c.Writer, c.Request)
}

// IsInterfaceNil returns true if there is no value under the interface
func (eg *eventsGroup) IsInterfaceNil() bool {
	return eg == nil
}
