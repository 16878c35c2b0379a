package ledger

import (
	"bytes"
)

// Governance returns the current governance address
func (tl *tokenLedger) Governance() []byte {
	return cloneBytes(tl.governance)
}

// SetGovernance hands the governance role over to the new address in a single step
func (tl *tokenLedger) SetGovernance(caller []byte, newGovernance []byte) error {
	return tl.execute("setGovernance", func(now uint64) error {
		err := tl.onlyGovernance(caller)
		if err != nil {
			return err
		}
		err = checkNonZeroAddress(newGovernance)
		if err != nil {
			return err
		}

		previous := tl.governance
		tl.journal.addEntry(&fieldEntry{restore: func() {
			tl.governance = previous
		}})
		tl.governance = cloneBytes(newGovernance)

		tl.emit(now, eventGovernanceChanged, cloneBytes(previous), cloneBytes(newGovernance))
		log.Debug("governance changed", "old", previous, "new", newGovernance)

		return nil
	})
}

func (tl *tokenLedger) onlyGovernance(caller []byte) error {
	if !bytes.Equal(caller, tl.governance) {
		return ErrNotGovernance
	}

	return nil
}
