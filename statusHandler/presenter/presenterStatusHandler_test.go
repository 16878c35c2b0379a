package presenter

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresenterStatusHandler_Metrics(t *testing.T) {
	t.Parallel()

	psh := NewPresenterStatusHandler()
	assert.False(t, psh.IsInterfaceNil())

	psh.Increment("calls")
	psh.Increment("calls")
	psh.AddUint64("calls", 3)
	psh.Decrement("calls")
	psh.Decrement("missing")
	psh.SetStringValue("version", "v1.0.0")
	psh.SetInt64Value("delta", -4)
	psh.SetUInt64Value("supply", 2000)

	metrics := psh.GetMetrics()
	assert.Equal(t, uint64(4), metrics["calls"])
	assert.Equal(t, "v1.0.0", metrics["version"])
	assert.Equal(t, int64(-4), metrics["delta"])
	assert.Equal(t, uint64(2000), metrics["supply"])
	_, found := metrics["missing"]
	assert.False(t, found)
}

func TestPresenterStatusHandler_IncrementOnStringValueRestarts(t *testing.T) {
	t.Parallel()

	psh := NewPresenterStatusHandler()
	psh.SetStringValue("key", "text")
	psh.Increment("key")

	assert.Equal(t, uint64(1), psh.GetMetrics()["key"])
}

func TestPresenterStatusHandler_Write(t *testing.T) {
	t.Parallel()

	psh := NewPresenterStatusHandler()
	n, err := psh.Write([]byte("first\r\nsecond\n\n"))
	assert.Nil(t, err)
	assert.Equal(t, 15, n)
	assert.Equal(t, []string{"first", "second"}, psh.GetLogLines())

	for i := 0; i < maxLogLines+10; i++ {
		_, _ = psh.Write([]byte(fmt.Sprintf("line %d", i)))
	}

	lines := psh.GetLogLines()
	assert.Len(t, lines, maxLogLines)
	assert.Equal(t, fmt.Sprintf("line %d", maxLogLines+9), lines[maxLogLines-1])
}
