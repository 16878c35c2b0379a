package vm

import (
	"sync"

	"github.com/multiversx/mx-chain-tax-ledger-go/ledger"
)

// logsCollector buffers the events committed by the ledger so the contract can return them as logs
type logsCollector struct {
	mut    sync.RWMutex
	events []*ledger.Event
}

// NewLogsCollector creates a new logs collector to be used as the ledger events handler
func NewLogsCollector() *logsCollector {
	return &logsCollector{}
}

// HandleEvents stores the committed events
func (lc *logsCollector) HandleEvents(events []*ledger.Event) {
	lc.mut.Lock()
	lc.events = append(lc.events, events...)
	lc.mut.Unlock()
}

// Events returns a copy of the stored events
func (lc *logsCollector) Events() []*ledger.Event {
	lc.mut.RLock()
	defer lc.mut.RUnlock()

	events := make([]*ledger.Event, len(lc.events))
	copy(events, lc.events)

	return events
}

// Reset drops the stored events
func (lc *logsCollector) Reset() {
	lc.mut.Lock()
	lc.events = nil
	lc.mut.Unlock()
}

// IsInterfaceNil returns true if there is no value under the interface
func (lc *logsCollector) IsInterfaceNil() bool {
	return lc == nil
}
