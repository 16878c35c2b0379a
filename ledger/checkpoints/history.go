package checkpoints

import (
	"sort"

	"github.com/holiman/uint256"
)

// Checkpoint is a value recorded at a given timestamp
type Checkpoint struct {
	Timestamp uint64
	Value     *uint256.Int
}

// Marker identifies the state of a history so it can be reverted to it
type Marker struct {
	length int
	last   Checkpoint
}

// History is an append-only, timestamp ordered trace of values. Recorded entries are never mutated,
// with the exception of the last one which absorbs every change recorded at its own timestamp.
type History struct {
	entries []Checkpoint
}

// NewHistory creates an empty history
func NewHistory() *History {
	return &History{
		entries: make([]Checkpoint, 0),
	}
}

// NewHistoryFromCheckpoints creates a history from already ordered checkpoints
func NewHistoryFromCheckpoints(checkpoints []Checkpoint) (*History, error) {
	h := NewHistory()
	for i, cp := range checkpoints {
		if cp.Value == nil {
			return nil, ErrNilValue
		}
		if i > 0 && cp.Timestamp <= checkpoints[i-1].Timestamp {
			return nil, ErrUnorderedCheckpoints
		}

		h.entries = append(h.entries, Checkpoint{Timestamp: cp.Timestamp, Value: cp.Value.Clone()})
	}

	return h, nil
}

// Push records the value at the provided timestamp. Nothing is recorded if the value equals the
// latest one. A value pushed at the same timestamp as the last entry replaces that entry's value.
// Timestamps older than the last entry are clamped to it, so the trace stays ordered.
// Returns true if the history changed.
func (h *History) Push(timestamp uint64, value *uint256.Int) bool {
	if h.Latest().Eq(value) {
		return false
	}

	last := len(h.entries) - 1
	if last >= 0 && timestamp <= h.entries[last].Timestamp {
		h.entries[last] = Checkpoint{Timestamp: h.entries[last].Timestamp, Value: value.Clone()}
		return true
	}

	h.entries = append(h.entries, Checkpoint{Timestamp: timestamp, Value: value.Clone()})
	return true
}

// Latest returns the most recent value or zero if nothing was recorded
func (h *History) Latest() *uint256.Int {
	if len(h.entries) == 0 {
		return uint256.NewInt(0)
	}

	return h.entries[len(h.entries)-1].Value.Clone()
}

// UpperLookup returns the value of the latest entry with a timestamp lower or equal to the
// provided one, or zero if there is none
func (h *History) UpperLookup(timestamp uint64) *uint256.Int {
	idx := sort.Search(len(h.entries), func(i int) bool {
		return h.entries[i].Timestamp > timestamp
	})
	if idx == 0 {
		return uint256.NewInt(0)
	}

	return h.entries[idx-1].Value.Clone()
}

// Len returns the number of recorded entries
func (h *History) Len() int {
	return len(h.entries)
}

// At returns the entry at the provided position
func (h *History) At(index int) (Checkpoint, error) {
	if index < 0 || index >= len(h.entries) {
		return Checkpoint{}, ErrIndexOutOfBounds
	}

	cp := h.entries[index]
	return Checkpoint{Timestamp: cp.Timestamp, Value: cp.Value.Clone()}, nil
}

// Checkpoints returns a copy of all the recorded entries
func (h *History) Checkpoints() []Checkpoint {
	result := make([]Checkpoint, 0, len(h.entries))
	for _, cp := range h.entries {
		result = append(result, Checkpoint{Timestamp: cp.Timestamp, Value: cp.Value.Clone()})
	}

	return result
}

// Marker returns the marker of the current state
func (h *History) Marker() Marker {
	m := Marker{
		length: len(h.entries),
	}
	if m.length > 0 {
		m.last = h.entries[m.length-1]
	}

	return m
}

// RevertTo drops every change made after the marker was taken
func (h *History) RevertTo(m Marker) {
	if m.length > len(h.entries) {
		return
	}

	h.entries = h.entries[:m.length]
	if m.length > 0 {
		h.entries[m.length-1] = m.last
	}
}
