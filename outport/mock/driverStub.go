package mock

import "github.com/multiversx/mx-chain-tax-ledger-go/outport"

// DriverStub -
type DriverStub struct {
	SaveEventsCalled func(batch *outport.EventsBatch) error
	CloseCalled      func() error
}

// SaveEvents -
func (d *DriverStub) SaveEvents(batch *outport.EventsBatch) error {
	if d.SaveEventsCalled != nil {
		return d.SaveEventsCalled(batch)
	}

	return nil
}

// Close -
func (d *DriverStub) Close() error {
	if d.CloseCalled != nil {
		return d.CloseCalled()
	}

	return nil
}

// IsInterfaceNil -
func (d *DriverStub) IsInterfaceNil() bool {
	return d == nil
}
