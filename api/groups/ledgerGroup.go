package groups

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-tax-ledger-go/api/errors"
	"github.com/multiversx/mx-chain-tax-ledger-go/api/shared"
	"github.com/multiversx/mx-chain-tax-ledger-go/data/api"
	"gopkg.in/go-playground/validator.v8"
)

const (
	getSupplyPath     = "/supply"
	getAccountPath    = "/account/:address"
	getAllowancePath  = "/allowance/:owner/:spender"
	getTaxPath        = "/tax"
	getMintPath       = "/mint"
	getPoolsPath      = "/pools"
	getGovernancePath = "/governance"
	getStatePath      = "/state"
	callPath          = "/call"

	maxCallRequestBytes = 16 * 1024
)

// ledgerFacadeHandler defines the methods to be implemented by a facade for handling ledger requests
type ledgerFacadeHandler interface {
	ExecuteCall(request *api.CallRequest) (*api.CallResponse, error)
	GetSupply() *api.SupplyResponse
	GetAccount(address string) (*api.AccountResponse, error)
	GetAllowance(owner string, spender string) (string, error)
	GetTax() *api.TaxResponse
	GetMint() *api.MintResponse
	GetPools() []string
	GetGovernance() string
	GetState() (*api.StateResponse, error)
	IsInterfaceNil() bool
}

type ledgerGroup struct {
	*baseGroup
	facade    ledgerFacadeHandler
	validator *validator.Validate
}

// NewLedgerGroup returns a new instance of ledgerGroup
func NewLedgerGroup(facade ledgerFacadeHandler) (*ledgerGroup, error) {
	if check.IfNil(facade) {
		return nil, fmt.Errorf("%w for ledger group", errors.ErrNilFacadeHandler)
	}

	requestValidator, err := createRequestValidator()
	if err != nil {
		return nil, err
	}

	lg := &ledgerGroup{
		facade:    facade,
		validator: requestValidator,
		baseGroup: &baseGroup{},
	}

	endpoints := []*shared.EndpointHandlerData{
		{
			Path:    getSupplyPath,
			Method:  http.MethodGet,
			Handler: lg.getSupply,
		},
		{
			Path:    getAccountPath,
			Method:  http.MethodGet,
			Handler: lg.getAccount,
		},
		{
			Path:    getAllowancePath,
			Method:  http.MethodGet,
			Handler: lg.getAllowance,
		},
		{
			Path:    getTaxPath,
			Method:  http.MethodGet,
			Handler: lg.getTax,
		},
		{
			Path:    getMintPath,
			Method:  http.MethodGet,
			Handler: lg.getMint,
		},
		{
			Path:    getPoolsPath,
			Method:  http.MethodGet,
			Handler: lg.getPools,
		},
		{
			Path:    getGovernancePath,
			Method:  http.MethodGet,
			Handler: lg.getGovernance,
		},
		{
			Path:    getStatePath,
			Method:  http.MethodGet,
			Handler: lg.getState,
		},
		{
			Path:    callPath,
			Method:  http.MethodPost,
			Handler: lg.call,
			AdditionalMiddlewares: []shared.AdditionalMiddleware{
				{
					Middleware: limitBodySize(maxCallRequestBytes),
					Before:     true,
				},
			},
		},
	}
	lg.endpoints = endpoints

	return lg, nil
}

// getSupply returns the total supply, the max supply and the mint cap of the ledger
func (lg *ledgerGroup) getSupply(c *gin.Context) {
	shared.RespondWithSuccess(c, gin.H{"supply": lg.facade.GetSupply()})
}

// getAccount returns the balance, the delegatee and the votes of an address
func (lg *ledgerGroup) getAccount(c *gin.Context) {
	address := c.Param("address")
	if address == "" {
		shared.RespondWithValidationError(c, errors.ErrGetAccount, errors.ErrEmptyAddress)
		return
	}

	account, err := lg.facade.GetAccount(address)
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrGetAccount, err)
		return
	}

	shared.RespondWithSuccess(c, gin.H{"account": account})
}

// getAllowance returns the amount a spender can still move on behalf of an owner
func (lg *ledgerGroup) getAllowance(c *gin.Context) {
	allowance, err := lg.facade.GetAllowance(c.Param("owner"), c.Param("spender"))
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrGetAllowance, err)
		return
	}

	shared.RespondWithSuccess(c, gin.H{"allowance": allowance})
}

func (lg *ledgerGroup) getTax(c *gin.Context) {
	shared.RespondWithSuccess(c, gin.H{"tax": lg.facade.GetTax()})
}

func (lg *ledgerGroup) getMint(c *gin.Context) {
	shared.RespondWithSuccess(c, gin.H{"mint": lg.facade.GetMint()})
}

func (lg *ledgerGroup) getPools(c *gin.Context) {
	shared.RespondWithSuccess(c, gin.H{"pools": lg.facade.GetPools()})
}

func (lg *ledgerGroup) getGovernance(c *gin.Context) {
	shared.RespondWithSuccess(c, gin.H{"governance": lg.facade.GetGovernance()})
}

// getState returns the full ledger state and its hash
func (lg *ledgerGroup) getState(c *gin.Context) {
	state, err := lg.facade.GetState()
	if err != nil {
		shared.RespondWithInternalError(c, errors.ErrGetState, err)
		return
	}

	shared.RespondWithSuccess(c, gin.H{"state": state})
}

// call executes a contract call on the ledger. A call rejected by the ledger is still a successful
// request, the outcome being described by the return code.
func (lg *ledgerGroup) call(c *gin.Context) {
	request := &api.CallRequest{}
	err := c.ShouldBindJSON(request)
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrInvalidJSONRequest, err)
		return
	}

	err = lg.validator.Struct(request)
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrValidation, err)
		return
	}

	response, err := lg.facade.ExecuteCall(request)
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrCallFailed, err)
		return
	}

	shared.RespondWithSuccess(c, gin.H{"result": response})
}

func limitBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// IsInterfaceNil returns true if there is no value under the interface
func (lg *ledgerGroup) IsInterfaceNil() bool {
	return lg == nil
}
