package ledger

import (
	"bytes"

	"golang.org/x/exp/slices"
)

// IsPool returns true if the address is a registered pool
func (tl *tokenLedger) IsPool(address []byte) bool {
	_, found := tl.pools[string(address)]
	return found
}

// Pools returns the registered pools, sorted
func (tl *tokenLedger) Pools() [][]byte {
	result := make([][]byte, 0, len(tl.pools))
	for key := range tl.pools {
		result = append(result, []byte(key))
	}

	slices.SortFunc(result, func(a, b []byte) int {
		return bytes.Compare(a, b)
	})

	return result
}

// AddPool registers the address as a pool
func (tl *tokenLedger) AddPool(caller []byte, address []byte) error {
	return tl.execute("addPool", func(now uint64) error {
		err := tl.onlyGovernance(caller)
		if err != nil {
			return err
		}
		err = checkNonZeroAddress(address)
		if err != nil {
			return err
		}
		if tl.IsPool(address) {
			return ErrPoolAlreadyAdded
		}

		tl.setPool(address, true)
		tl.emit(now, eventPoolAdded, cloneBytes(address))

		return nil
	})
}

// RemovePool unregisters the pool
func (tl *tokenLedger) RemovePool(caller []byte, address []byte) error {
	return tl.execute("removePool", func(now uint64) error {
		err := tl.onlyGovernance(caller)
		if err != nil {
			return err
		}
		if !tl.IsPool(address) {
			return ErrPoolNotFound
		}

		tl.setPool(address, false)
		tl.emit(now, eventPoolRemoved, cloneBytes(address))

		return nil
	})
}

func (tl *tokenLedger) setPool(address []byte, isPool bool) {
	key := string(address)
	tl.journal.addEntry(&fieldEntry{restore: func() {
		if isPool {
			delete(tl.pools, key)
			return
		}
		tl.pools[key] = struct{}{}
	}})

	if isPool {
		tl.pools[key] = struct{}{}
		return
	}

	delete(tl.pools, key)
}
