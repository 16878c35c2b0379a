package statusHandler

// nilStatusHandler will be used when an AppStatusHandler is required, but another one isn't necessary or available
type nilStatusHandler struct {
}

// NewNilStatusHandler will return an instance of the struct
func NewNilStatusHandler() *nilStatusHandler {
	return new(nilStatusHandler)
}

// AddUint64 does nothing
func (nsh *nilStatusHandler) AddUint64(_ string, _ uint64) {
}

// Increment does nothing
func (nsh *nilStatusHandler) Increment(_ string) {
}

// Decrement does nothing
func (nsh *nilStatusHandler) Decrement(_ string) {
}

// SetInt64Value does nothing
func (nsh *nilStatusHandler) SetInt64Value(_ string, _ int64) {
}

// SetUInt64Value does nothing
func (nsh *nilStatusHandler) SetUInt64Value(_ string, _ uint64) {
}

// SetStringValue does nothing
func (nsh *nilStatusHandler) SetStringValue(_ string, _ string) {
}

// Close does nothing
func (nsh *nilStatusHandler) Close() {
}

// IsInterfaceNil returns true if there is no value under the interface
func (nsh *nilStatusHandler) IsInterfaceNil() bool {
	return nsh == nil
}
