package mock

import "github.com/holiman/uint256"

// BalanceObserverStub -
type BalanceObserverStub struct {
	BalanceMovedCalled func(from []byte, to []byte, amount *uint256.Int) error
}

// BalanceMoved -
func (stub *BalanceObserverStub) BalanceMoved(from []byte, to []byte, amount *uint256.Int) error {
	if stub.BalanceMovedCalled != nil {
		return stub.BalanceMovedCalled(from, to, amount)
	}

	return nil
}

// IsInterfaceNil -
func (stub *BalanceObserverStub) IsInterfaceNil() bool {
	return stub == nil
}
