package shared

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-tax-ledger-go/config"
	"github.com/multiversx/mx-chain-tax-ledger-go/data/api"
)

// HttpServerCloser defines the basic actions of starting and closing that a web server should be able to do
type HttpServerCloser interface {
	Start()
	Close() error
	IsInterfaceNil() bool
}

// MiddlewareProcessor defines a processor used internally by the web server when processing requests
type MiddlewareProcessor interface {
	MiddlewareHandlerFunc() gin.HandlerFunc
	IsInterfaceNil() bool
}

// GroupHandler defines the actions needed to be performed by an gin API group
type GroupHandler interface {
	RegisterRoutes(ws *gin.RouterGroup, apiConfig config.ApiRoutesConfig)
	IsInterfaceNil() bool
}

// FacadeHandler defines all the methods that a facade should implement
type FacadeHandler interface {
	ExecuteCall(request *api.CallRequest) (*api.CallResponse, error)
	GetSupply() *api.SupplyResponse
	GetAccount(address string) (*api.AccountResponse, error)
	GetAllowance(owner string, spender string) (string, error)
	GetTax() *api.TaxResponse
	GetMint() *api.MintResponse
	GetPools() []string
	GetGovernance() string
	GetState() (*api.StateResponse, error)
	GetVotes(address string) (string, error)
	GetPastVotes(address string, timestamp uint64) (string, error)
	GetPastTotalSupply(timestamp uint64) (string, error)
	GetCheckpoints(address string) ([]*api.Checkpoint, error)
	GetNodeStatus() *api.NodeStatusResponse
	GetLogLines() []string
	MetricsHandler() http.Handler
	EventsWebsocketHandler() (http.Handler, error)
	RestApiInterface() string
	RestAPIServerDebugMode() bool
	PprofEnabled() bool
	IsInterfaceNil() bool
}
