package ledger

import (
	"bytes"
	"fmt"

	"github.com/holiman/uint256"
	"github.com/multiversx/mx-chain-tax-ledger-go/common"
	"github.com/multiversx/mx-chain-tax-ledger-go/ledger/checkpoints"
)

// Delegate moves the caller's voting weight to the provided delegatee. Delegating to the zero
// address leaves the caller undelegated.
func (tl *tokenLedger) Delegate(caller []byte, delegatee []byte) error {
	return tl.execute("delegate", func(now uint64) error {
		err := checkNonZeroAddress(caller)
		if err != nil {
			return err
		}
		err = checkAddress(delegatee)
		if err != nil {
			return err
		}

		previous := tl.delegatesOf(caller)
		var next []byte
		if !common.IsZeroAddress(delegatee) {
			next = cloneBytes(delegatee)
		}

		tl.setDelegate(caller, next)
		tl.emit(now, eventDelegateChanged, cloneBytes(caller), addressOrZero(previous), addressOrZero(next))

		return tl.moveDelegateVotes(now, previous, next, tl.balanceOf(caller))
	})
}

// Delegates returns the current delegatee of the account or nil if the account is undelegated
func (tl *tokenLedger) Delegates(account []byte) []byte {
	return cloneBytes(tl.delegatesOf(account))
}

// GetVotes returns the current voting weight of the account
func (tl *tokenLedger) GetVotes(account []byte) *uint256.Int {
	history, found := tl.votes[string(account)]
	if !found {
		return uint256.NewInt(0)
	}

	return history.Latest()
}

// GetPastVotes returns the voting weight the account had at the provided timestamp, which must be
// strictly in the past
func (tl *tokenLedger) GetPastVotes(account []byte, timestamp uint64) (*uint256.Int, error) {
	err := tl.checkPastTimestamp(timestamp)
	if err != nil {
		return nil, err
	}

	history, found := tl.votes[string(account)]
	if !found {
		return uint256.NewInt(0), nil
	}

	return history.UpperLookup(timestamp), nil
}

// GetPastTotalSupply returns the total supply at the provided timestamp, which must be strictly
// in the past
func (tl *tokenLedger) GetPastTotalSupply(timestamp uint64) (*uint256.Int, error) {
	err := tl.checkPastTimestamp(timestamp)
	if err != nil {
		return nil, err
	}

	return tl.totalSupplyHistory.UpperLookup(timestamp), nil
}

// NumCheckpoints returns the number of voting weight checkpoints of the account
func (tl *tokenLedger) NumCheckpoints(account []byte) int {
	history, found := tl.votes[string(account)]
	if !found {
		return 0
	}

	return history.Len()
}

// Checkpoints returns the voting weight checkpoints of the account
func (tl *tokenLedger) Checkpoints(account []byte) []checkpoints.Checkpoint {
	history, found := tl.votes[string(account)]
	if !found {
		return make([]checkpoints.Checkpoint, 0)
	}

	return history.Checkpoints()
}

func (tl *tokenLedger) checkPastTimestamp(timestamp uint64) error {
	now := tl.timeProvider.CurrentTimestamp()
	if timestamp >= now {
		return fmt.Errorf("%w: requested %d, current %d", ErrFutureLookup, timestamp, now)
	}

	return nil
}

// balanceMoved keeps the voting weights in sync with a balance movement and informs the observers
func (tl *tokenLedger) balanceMoved(now uint64, from []byte, to []byte, amount *uint256.Int) error {
	if common.IsZeroAddress(from) || common.IsZeroAddress(to) {
		tl.pushCheckpoint(tl.totalSupplyHistory, now, tl.totalSupply)
	}

	err := tl.moveDelegateVotes(now, tl.delegatesOf(from), tl.delegatesOf(to), amount)
	if err != nil {
		return err
	}

	for _, observer := range tl.balanceObservers {
		err = observer.BalanceMoved(cloneBytes(from), cloneBytes(to), amount.Clone())
		if err != nil {
			return err
		}
	}

	return nil
}

func (tl *tokenLedger) moveDelegateVotes(now uint64, from []byte, to []byte, amount *uint256.Int) error {
	if amount.IsZero() || bytes.Equal(from, to) {
		return nil
	}

	if from != nil {
		history := tl.votesHistory(from)
		previous := history.Latest()
		if previous.Lt(amount) {
			return fmt.Errorf("%w for delegatee %x", ErrVotesUnderflow, from)
		}

		current := new(uint256.Int).Sub(previous, amount)
		tl.pushCheckpoint(history, now, current)
		tl.emit(now, eventDelegateVotesChanged, cloneBytes(from), amountBytes(previous), amountBytes(current))
	}

	if to != nil {
		history := tl.votesHistory(to)
		previous := history.Latest()
		current := new(uint256.Int).Add(previous, amount)
		tl.pushCheckpoint(history, now, current)
		tl.emit(now, eventDelegateVotesChanged, cloneBytes(to), amountBytes(previous), amountBytes(current))
	}

	return nil
}

func (tl *tokenLedger) pushCheckpoint(history *checkpoints.History, now uint64, value *uint256.Int) {
	marker := history.Marker()
	if history.Push(now, value) {
		tl.journal.addEntry(&historyEntry{history: history, marker: marker})
	}
}

// votesHistory returns the history of the delegatee, creating it if missing. A created empty
// history is left in place on revert, which is equivalent to a missing one.
func (tl *tokenLedger) votesHistory(delegatee []byte) *checkpoints.History {
	key := string(delegatee)
	history, found := tl.votes[key]
	if !found {
		history = checkpoints.NewHistory()
		tl.votes[key] = history
	}

	return history
}

func (tl *tokenLedger) delegatesOf(account []byte) []byte {
	return tl.delegates[string(account)]
}

func (tl *tokenLedger) setDelegate(account []byte, delegatee []byte) {
	key := string(account)
	previous, existed := tl.delegates[key]
	tl.journal.addEntry(&fieldEntry{restore: func() {
		if !existed {
			delete(tl.delegates, key)
			return
		}
		tl.delegates[key] = previous
	}})

	if delegatee == nil {
		delete(tl.delegates, key)
		return
	}

	tl.delegates[key] = delegatee
}

func addressOrZero(address []byte) []byte {
	if address == nil {
		return common.ZeroAddress()
	}

	return cloneBytes(address)
}
