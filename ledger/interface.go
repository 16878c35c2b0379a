package ledger

import "github.com/holiman/uint256"

// TimeProvider returns the current unix timestamp, in seconds
type TimeProvider interface {
	CurrentTimestamp() uint64
	IsInterfaceNil() bool
}

// EventsHandler receives the events of each committed operation
type EventsHandler interface {
	HandleEvents(events []*Event)
	IsInterfaceNil() bool
}

// BalanceObserver is notified synchronously on every balance movement. The zero address stands
// for the mint or burn side. A returned error aborts the whole operation.
type BalanceObserver interface {
	BalanceMoved(from []byte, to []byte, amount *uint256.Int) error
	IsInterfaceNil() bool
}
