package mock

import (
	"net/http"

	"github.com/multiversx/mx-chain-tax-ledger-go/data/api"
)

// FacadeStub -
type FacadeStub struct {
	ExecuteCallCalled            func(request *api.CallRequest) (*api.CallResponse, error)
	GetSupplyCalled              func() *api.SupplyResponse
	GetAccountCalled             func(address string) (*api.AccountResponse, error)
	GetAllowanceCalled           func(owner string, spender string) (string, error)
	GetTaxCalled                 func() *api.TaxResponse
	GetMintCalled                func() *api.MintResponse
	GetPoolsCalled               func() []string
	GetGovernanceCalled          func() string
	GetStateCalled               func() (*api.StateResponse, error)
	GetVotesCalled               func(address string) (string, error)
	GetPastVotesCalled           func(address string, timestamp uint64) (string, error)
	GetPastTotalSupplyCalled     func(timestamp uint64) (string, error)
	GetCheckpointsCalled         func(address string) ([]*api.Checkpoint, error)
	GetNodeStatusCalled          func() *api.NodeStatusResponse
	GetLogLinesCalled            func() []string
	MetricsHandlerCalled         func() http.Handler
	EventsWebsocketHandlerCalled func() (http.Handler, error)
	RestApiInterfaceCalled       func() string
	RestAPIServerDebugModeCalled func() bool
	PprofEnabledCalled           func() bool
}

// ExecuteCall -
func (f *FacadeStub) ExecuteCall(request *api.CallRequest) (*api.CallResponse, error) {
	if f.ExecuteCallCalled != nil {
		return f.ExecuteCallCalled(request)
	}

	return &api.CallResponse{}, nil
}

// GetSupply -
func (f *FacadeStub) GetSupply() *api.SupplyResponse {
	if f.GetSupplyCalled != nil {
		return f.GetSupplyCalled()
	}

	return &api.SupplyResponse{}
}

// GetAccount -
func (f *FacadeStub) GetAccount(address string) (*api.AccountResponse, error) {
	if f.GetAccountCalled != nil {
		return f.GetAccountCalled(address)
	}

	return &api.AccountResponse{}, nil
}

// GetAllowance -
func (f *FacadeStub) GetAllowance(owner string, spender string) (string, error) {
	if f.GetAllowanceCalled != nil {
		return f.GetAllowanceCalled(owner, spender)
	}

	return "0", nil
}

// GetTax -
func (f *FacadeStub) GetTax() *api.TaxResponse {
	if f.GetTaxCalled != nil {
		return f.GetTaxCalled()
	}

	return &api.TaxResponse{}
}

// GetMint -
func (f *FacadeStub) GetMint() *api.MintResponse {
	if f.GetMintCalled != nil {
		return f.GetMintCalled()
	}

	return &api.MintResponse{}
}

// GetPools -
func (f *FacadeStub) GetPools() []string {
	if f.GetPoolsCalled != nil {
		return f.GetPoolsCalled()
	}

	return nil
}

// GetGovernance -
func (f *FacadeStub) GetGovernance() string {
	if f.GetGovernanceCalled != nil {
		return f.GetGovernanceCalled()
	}

	return ""
}

// GetState -
func (f *FacadeStub) GetState() (*api.StateResponse, error) {
	if f.GetStateCalled != nil {
		return f.GetStateCalled()
	}

	return &api.StateResponse{}, nil
}

// GetVotes -
func (f *FacadeStub) GetVotes(address string) (string, error) {
	if f.GetVotesCalled != nil {
		return f.GetVotesCalled(address)
	}

	return "0", nil
}

// GetPastVotes -
func (f *FacadeStub) GetPastVotes(address string, timestamp uint64) (string, error) {
	if f.GetPastVotesCalled != nil {
		return f.GetPastVotesCalled(address, timestamp)
	}

	return "0", nil
}

// GetPastTotalSupply -
func (f *FacadeStub) GetPastTotalSupply(timestamp uint64) (string, error) {
	if f.GetPastTotalSupplyCalled != nil {
		return f.GetPastTotalSupplyCalled(timestamp)
	}

	return "0", nil
}

// GetCheckpoints -
func (f *FacadeStub) GetCheckpoints(address string) ([]*api.Checkpoint, error) {
	if f.GetCheckpointsCalled != nil {
		return f.GetCheckpointsCalled(address)
	}

	return nil, nil
}

// GetNodeStatus -
func (f *FacadeStub) GetNodeStatus() *api.NodeStatusResponse {
	if f.GetNodeStatusCalled != nil {
		return f.GetNodeStatusCalled()
	}

	return &api.NodeStatusResponse{}
}

// GetLogLines -
func (f *FacadeStub) GetLogLines() []string {
	if f.GetLogLinesCalled != nil {
		return f.GetLogLinesCalled()
	}

	return nil
}

// MetricsHandler -
func (f *FacadeStub) MetricsHandler() http.Handler {
	if f.MetricsHandlerCalled != nil {
		return f.MetricsHandlerCalled()
	}

	return nil
}

// EventsWebsocketHandler -
func (f *FacadeStub) EventsWebsocketHandler() (http.Handler, error) {
	if f.EventsWebsocketHandlerCalled != nil {
		return f.EventsWebsocketHandlerCalled()
	}

	return nil, nil
}

// RestApiInterface -
func (f *FacadeStub) RestApiInterface() string {
	if f.RestApiInterfaceCalled != nil {
		return f.RestApiInterfaceCalled()
	}

	return "localhost:0"
}

// RestAPIServerDebugMode -
func (f *FacadeStub) RestAPIServerDebugMode() bool {
	if f.RestAPIServerDebugModeCalled != nil {
		return f.RestAPIServerDebugModeCalled()
	}

	return false
}

// PprofEnabled -
func (f *FacadeStub) PprofEnabled() bool {
	if f.PprofEnabledCalled != nil {
		return f.PprofEnabledCalled()
	}

	return false
}

// IsInterfaceNil -
func (f *FacadeStub) IsInterfaceNil() bool {
	return f == nil
}
