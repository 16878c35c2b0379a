package ledger

type journalEntry interface {
	revert()
}

// journal records how to undo every state write of the operation in progress
type journal struct {
	entries []journalEntry
}

func newJournal() *journal {
	return &journal{
		entries: make([]journalEntry, 0),
	}
}

func (j *journal) addEntry(entry journalEntry) {
	j.entries = append(j.entries, entry)
}

// revertToSnapshot undoes, newest first, every entry added after the snapshot was taken
func (j *journal) revertToSnapshot(snapshot int) {
	if snapshot < 0 || snapshot > len(j.entries) {
		return
	}

	for i := len(j.entries) - 1; i >= snapshot; i-- {
		j.entries[i].revert()
	}

	j.entries = j.entries[:snapshot]
}

func (j *journal) len() int {
	return len(j.entries)
}

func (j *journal) clear() {
	j.entries = make([]journalEntry, 0)
}
