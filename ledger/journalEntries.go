package ledger

import (
	"github.com/holiman/uint256"
	"github.com/multiversx/mx-chain-tax-ledger-go/ledger/checkpoints"
)

type balanceEntry struct {
	balances map[string]*uint256.Int
	key      string
	previous *uint256.Int
}

func (be *balanceEntry) revert() {
	if be.previous == nil {
		delete(be.balances, be.key)
		return
	}

	be.balances[be.key] = be.previous
}

type allowanceEntry struct {
	allowances map[string]map[string]*uint256.Int
	owner      string
	spender    string
	previous   *uint256.Int
}

func (ae *allowanceEntry) revert() {
	spenders, found := ae.allowances[ae.owner]
	if !found {
		spenders = make(map[string]*uint256.Int)
		ae.allowances[ae.owner] = spenders
	}

	if ae.previous == nil {
		delete(spenders, ae.spender)
		if len(spenders) == 0 {
			delete(ae.allowances, ae.owner)
		}
		return
	}

	spenders[ae.spender] = ae.previous
}

type historyEntry struct {
	history *checkpoints.History
	marker  checkpoints.Marker
}

func (he *historyEntry) revert() {
	he.history.RevertTo(he.marker)
}

// fieldEntry restores a single scalar field of the ledger
type fieldEntry struct {
	restore func()
}

func (fe *fieldEntry) revert() {
	fe.restore()
}
