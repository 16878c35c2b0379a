package outport

// Driver is an interface for pushing committed ledger events to external consumers
type Driver interface {
	SaveEvents(batch *EventsBatch) error
	Close() error
	IsInterfaceNil() bool
}

// OutportHandler is interface that defines what a proxy implementation should be able to do
type OutportHandler interface {
	Driver
	SubscribeDriver(driver Driver) error
	HasDrivers() bool
}
