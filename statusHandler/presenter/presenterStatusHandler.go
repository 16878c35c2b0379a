package presenter

import (
	"strings"
	"sync"
)

// maxLogLines is used to specify how many lines of logs need to store in slice
var maxLogLines = 100

// PresenterStatusHandler is the AppStatusHandler impl that is able to process and store received data
type PresenterStatusHandler struct {
	presenterMetrics *sync.Map
	logLines         []string
	mutLogLineWrite  sync.RWMutex
}

// NewPresenterStatusHandler will return an instance of the struct
func NewPresenterStatusHandler() *PresenterStatusHandler {
	return &PresenterStatusHandler{
		presenterMetrics: &sync.Map{},
	}
}

// AddUint64 will add the value to the stored one, if it is numeric
func (psh *PresenterStatusHandler) AddUint64(key string, value uint64) {
	current := psh.getUint64(key)
	psh.presenterMetrics.Store(key, current+value)
}

// SetInt64Value method - will update the value for a key
func (psh *PresenterStatusHandler) SetInt64Value(key string, value int64) {
	psh.presenterMetrics.Store(key, value)
}

// SetUInt64Value method - will update the value for a key
func (psh *PresenterStatusHandler) SetUInt64Value(key string, value uint64) {
	psh.presenterMetrics.Store(key, value)
}

// SetStringValue method - will update the value of a key
func (psh *PresenterStatusHandler) SetStringValue(key string, value string) {
	psh.presenterMetrics.Store(key, value)
}

// Increment - will increment the value of a key
func (psh *PresenterStatusHandler) Increment(key string) {
	psh.AddUint64(key, 1)
}

// Decrement - will decrement the value of a key, without going below 0
func (psh *PresenterStatusHandler) Decrement(key string) {
	current := psh.getUint64(key)
	if current == 0 {
		return
	}

	psh.presenterMetrics.Store(key, current-1)
}

func (psh *PresenterStatusHandler) getUint64(key string) uint64 {
	valueI, ok := psh.presenterMetrics.Load(key)
	if !ok {
		return 0
	}

	value, ok := valueI.(uint64)
	if !ok {
		return 0
	}

	return value
}

// GetMetrics returns a copy of all the stored metrics
func (psh *PresenterStatusHandler) GetMetrics() map[string]interface{} {
	metrics := make(map[string]interface{})
	psh.presenterMetrics.Range(func(key, value interface{}) bool {
		keyString, ok := key.(string)
		if ok {
			metrics[keyString] = value
		}
		return true
	})

	return metrics
}

// Close method - won't do anything
func (psh *PresenterStatusHandler) Close() {
}

// Write stores the received log lines, keeping only the most recent ones
func (psh *PresenterStatusHandler) Write(p []byte) (n int, err error) {
	stringSlice := strings.Split(string(p), "\n")

	psh.mutLogLineWrite.Lock()
	defer psh.mutLogLineWrite.Unlock()

	for _, line := range stringSlice {
		line = strings.ReplaceAll(line, "\r", "")
		if line != "" {
			psh.logLines = append(psh.logLines, line)
		}
	}

	startPos := len(psh.logLines) - maxLogLines
	if startPos < 0 {
		startPos = 0
	}
	psh.logLines = psh.logLines[startPos:]

	return len(p), nil
}

// GetLogLines will return log lines that need to be displayed
func (psh *PresenterStatusHandler) GetLogLines() []string {
	psh.mutLogLineWrite.RLock()
	defer psh.mutLogLineWrite.RUnlock()

	lines := make([]string, len(psh.logLines))
	copy(lines, psh.logLines)

	return lines
}

// IsInterfaceNil returns true if there is no value under the interface
func (psh *PresenterStatusHandler) IsInterfaceNil() bool {
	return psh == nil
}
