package mock

import "sync/atomic"

// TimeProviderStub -
type TimeProviderStub struct {
	CurrentTimestampCalled func() uint64
	timestamp              uint64
}

// NewTimeProviderStub returns a stub reporting the provided timestamp until changed
func NewTimeProviderStub(timestamp uint64) *TimeProviderStub {
	return &TimeProviderStub{timestamp: timestamp}
}

// CurrentTimestamp -
func (stub *TimeProviderStub) CurrentTimestamp() uint64 {
	if stub.CurrentTimestampCalled != nil {
		return stub.CurrentTimestampCalled()
	}

	return atomic.LoadUint64(&stub.timestamp)
}

// SetTimestamp -
func (stub *TimeProviderStub) SetTimestamp(timestamp uint64) {
	atomic.StoreUint64(&stub.timestamp, timestamp)
}

// Advance -
func (stub *TimeProviderStub) Advance(seconds uint64) {
	atomic.AddUint64(&stub.timestamp, seconds)
}

// IsInterfaceNil -
func (stub *TimeProviderStub) IsInterfaceNil() bool {
	return stub == nil
}
