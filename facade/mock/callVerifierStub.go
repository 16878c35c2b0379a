package mock

import "github.com/multiversx/mx-chain-tax-ledger-go/data/api"

// CallVerifierStub -
type CallVerifierStub struct {
	VerifyCalled        func(caller []byte, request *api.CallRequest) error
	NonceCalled         func(caller []byte) (uint64, error)
	IncreaseNonceCalled func(caller []byte) error
}

// Verify -
func (stub *CallVerifierStub) Verify(caller []byte, request *api.CallRequest) error {
	if stub.VerifyCalled != nil {
		return stub.VerifyCalled(caller, request)
	}

	return nil
}

// Nonce -
func (stub *CallVerifierStub) Nonce(caller []byte) (uint64, error) {
	if stub.NonceCalled != nil {
		return stub.NonceCalled(caller)
	}

	return 0, nil
}

// IncreaseNonce -
func (stub *CallVerifierStub) IncreaseNonce(caller []byte) error {
	if stub.IncreaseNonceCalled != nil {
		return stub.IncreaseNonceCalled(caller)
	}

	return nil
}

// IsInterfaceNil -
func (stub *CallVerifierStub) IsInterfaceNil() bool {
	return stub == nil
}
