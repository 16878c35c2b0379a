package mock

import (
	"github.com/holiman/uint256"
	"github.com/multiversx/mx-chain-tax-ledger-go/ledger/tax"
)

// TaxStrategyStub -
type TaxStrategyStub struct {
	VersionCalled  func() uint32
	ClassifyCalled func(from []byte, to []byte, pools tax.PoolChecker) tax.Kind
	FeeCalled      func(kind tax.Kind, amount *uint256.Int, rates tax.Rates) (*uint256.Int, error)
}

// Version -
func (stub *TaxStrategyStub) Version() uint32 {
	if stub.VersionCalled != nil {
		return stub.VersionCalled()
	}

	return 0
}

// Classify -
func (stub *TaxStrategyStub) Classify(from []byte, to []byte, pools tax.PoolChecker) tax.Kind {
	if stub.ClassifyCalled != nil {
		return stub.ClassifyCalled(from, to, pools)
	}

	return tax.KindRegular
}

// Fee -
func (stub *TaxStrategyStub) Fee(kind tax.Kind, amount *uint256.Int, rates tax.Rates) (*uint256.Int, error) {
	if stub.FeeCalled != nil {
		return stub.FeeCalled(kind, amount, rates)
	}

	return uint256.NewInt(0), nil
}

// IsInterfaceNil -
func (stub *TaxStrategyStub) IsInterfaceNil() bool {
	return stub == nil
}
