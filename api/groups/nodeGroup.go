package groups

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-tax-ledger-go/api/errors"
	"github.com/multiversx/mx-chain-tax-ledger-go/api/shared"
	"github.com/multiversx/mx-chain-tax-ledger-go/data/api"
)

const (
	statusPath  = "/status"
	metricsPath = "/metrics"
	logsPath    = "/logs"
)

// nodeFacadeHandler defines the methods to be implemented by a facade for handling node requests
type nodeFacadeHandler interface {
	GetNodeStatus() *api.NodeStatusResponse
	GetLogLines() []string
	MetricsHandler() http.Handler
	IsInterfaceNil() bool
}

type nodeGroup struct {
	*baseGroup
	facade nodeFacadeHandler
}

// NewNodeGroup returns a new instance of nodeGroup
func NewNodeGroup(facade nodeFacadeHandler) (*nodeGroup, error) {
	if check.IfNil(facade) {
		return nil, fmt.Errorf("%w for node group", errors.ErrNilFacadeHandler)
	}

	ng := &nodeGroup{
		facade:    facade,
		baseGroup: &baseGroup{},
	}

	endpoints := []*shared.EndpointHandlerData{
		{
			Path:    statusPath,
			Method:  http.MethodGet,
			Handler: ng.statusMetrics,
		},
		{
			Path:    metricsPath,
			Method:  http.MethodGet,
			Handler: ng.prometheusMetrics,
		},
		{
			Path:    logsPath,
			Method:  http.MethodGet,
			Handler: ng.logLines,
		},
	}
	ng.endpoints = endpoints

	return ng, nil
}

// statusMetrics returns the node version, uptime, host details and the recorded metrics
func (ng *nodeGroup) statusMetrics(c *gin.Context) {
	shared.RespondWithSuccess(c, gin.H{"status": ng.facade.GetNodeStatus()})
}

// prometheusMetrics serves the metrics in the prometheus text format
func (ng *nodeGroup) prometheusMetrics(c *gin.Context) {
	handler := ng.facade.MetricsHandler()
	if handler == nil {
		shared.RespondWithInternalError(c, errors.ErrMetricsDisabled, nil)
		return
	}

	handler.ServeHTTP(c.Writer, c.Request)
}

func (ng *nodeGroup) logLines(c *gin.Context) {
	shared.RespondWithSuccess(c, gin.H{"lines": ng.facade.GetLogLines()})
}

// IsInterfaceNil returns true if there is no value under the interface
func (ng *nodeGroup) IsInterfaceNil() bool {
	return ng == nil
}
