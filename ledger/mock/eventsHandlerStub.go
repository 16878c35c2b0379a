package mock

import "github.com/multiversx/mx-chain-tax-ledger-go/ledger"

// EventsHandlerStub -
type EventsHandlerStub struct {
	HandleEventsCalled func(events []*ledger.Event)
}

// HandleEvents -
func (stub *EventsHandlerStub) HandleEvents(events []*ledger.Event) {
	if stub.HandleEventsCalled != nil {
		stub.HandleEventsCalled(events)
	}
}

// IsInterfaceNil -
func (stub *EventsHandlerStub) IsInterfaceNil() bool {
	return stub == nil
}
