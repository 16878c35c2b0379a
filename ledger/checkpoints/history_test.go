package checkpoints

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_PushSkipsUnchangedValues(t *testing.T) {
	t.Parallel()

	h := NewHistory()
	assert.False(t, h.Push(10, uint256.NewInt(0)))
	assert.Equal(t, 0, h.Len())

	assert.True(t, h.Push(10, uint256.NewInt(5)))
	assert.False(t, h.Push(20, uint256.NewInt(5)))
	assert.Equal(t, 1, h.Len())
}

func TestHistory_PushCollapsesSameTimestamp(t *testing.T) {
	t.Parallel()

	h := NewHistory()
	h.Push(10, uint256.NewInt(5))
	h.Push(20, uint256.NewInt(7))
	h.Push(20, uint256.NewInt(9))
	h.Push(20, uint256.NewInt(3))

	require.Equal(t, 2, h.Len())
	cp, err := h.At(1)
	require.Nil(t, err)
	assert.Equal(t, uint64(20), cp.Timestamp)
	assert.Equal(t, uint64(3), cp.Value.Uint64())
}

func TestHistory_PushClampsOlderTimestamps(t *testing.T) {
	t.Parallel()

	h := NewHistory()
	h.Push(20, uint256.NewInt(5))
	h.Push(15, uint256.NewInt(6))

	require.Equal(t, 1, h.Len())
	assert.Equal(t, uint64(6), h.Latest().Uint64())
	assert.Equal(t, uint64(0), h.UpperLookup(19).Uint64())
}

func TestHistory_UpperLookup(t *testing.T) {
	t.Parallel()

	h := NewHistory()
	assert.True(t, h.UpperLookup(100).IsZero())

	h.Push(10, uint256.NewInt(1))
	h.Push(20, uint256.NewInt(2))
	h.Push(30, uint256.NewInt(3))
	h.Push(40, uint256.NewInt(4))

	assert.Equal(t, uint64(0), h.UpperLookup(9).Uint64())
	assert.Equal(t, uint64(1), h.UpperLookup(10).Uint64())
	assert.Equal(t, uint64(1), h.UpperLookup(19).Uint64())
	assert.Equal(t, uint64(2), h.UpperLookup(20).Uint64())
	assert.Equal(t, uint64(3), h.UpperLookup(39).Uint64())
	assert.Equal(t, uint64(4), h.UpperLookup(1000).Uint64())
}

func TestHistory_ReturnedValuesAreCopies(t *testing.T) {
	t.Parallel()

	h := NewHistory()
	value := uint256.NewInt(10)
	h.Push(1, value)
	value.SetUint64(99)

	latest := h.Latest()
	assert.Equal(t, uint64(10), latest.Uint64())
	latest.SetUint64(77)
	assert.Equal(t, uint64(10), h.UpperLookup(1).Uint64())
}

func TestHistory_RevertTo(t *testing.T) {
	t.Parallel()

	t.Run("revert appended entries", func(t *testing.T) {
		t.Parallel()

		h := NewHistory()
		h.Push(10, uint256.NewInt(1))
		m := h.Marker()
		h.Push(20, uint256.NewInt(2))
		h.Push(30, uint256.NewInt(3))

		h.RevertTo(m)
		assert.Equal(t, 1, h.Len())
		assert.Equal(t, uint64(1), h.Latest().Uint64())
	})
	t.Run("revert collapsed entry", func(t *testing.T) {
		t.Parallel()

		h := NewHistory()
		h.Push(10, uint256.NewInt(1))
		h.Push(20, uint256.NewInt(2))
		m := h.Marker()
		h.Push(20, uint256.NewInt(8))

		h.RevertTo(m)
		assert.Equal(t, 2, h.Len())
		assert.Equal(t, uint64(2), h.Latest().Uint64())
	})
	t.Run("revert to empty", func(t *testing.T) {
		t.Parallel()

		h := NewHistory()
		m := h.Marker()
		h.Push(20, uint256.NewInt(2))

		h.RevertTo(m)
		assert.Equal(t, 0, h.Len())
		assert.True(t, h.Latest().IsZero())
	})
}

func TestNewHistoryFromCheckpoints(t *testing.T) {
	t.Parallel()

	_, err := NewHistoryFromCheckpoints([]Checkpoint{{Timestamp: 1}})
	assert.Equal(t, ErrNilValue, err)

	_, err = NewHistoryFromCheckpoints([]Checkpoint{
		{Timestamp: 2, Value: uint256.NewInt(1)},
		{Timestamp: 2, Value: uint256.NewInt(2)},
	})
	assert.Equal(t, ErrUnorderedCheckpoints, err)

	h, err := NewHistoryFromCheckpoints([]Checkpoint{
		{Timestamp: 2, Value: uint256.NewInt(1)},
		{Timestamp: 5, Value: uint256.NewInt(2)},
	})
	require.Nil(t, err)
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, uint64(1), h.UpperLookup(4).Uint64())

	_, err = h.At(2)
	assert.Equal(t, ErrIndexOutOfBounds, err)
}
