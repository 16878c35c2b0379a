package ledger

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/multiversx/mx-chain-tax-ledger-go/common"
)

// MintWindow returns the accounting of the current mint window as last recorded. The window is
// rolled lazily by the mint operations.
func (tl *tokenLedger) MintWindow() MintWindow {
	return MintWindow{
		Start:  tl.window.Start,
		Minted: tl.window.Minted.Clone(),
	}
}

// PendingMint returns the proposed mint, if any
func (tl *tokenLedger) PendingMint() (PendingMint, bool) {
	if tl.pendingMint == nil {
		return PendingMint{}, false
	}

	return PendingMint{
		To:          cloneBytes(tl.pendingMint.To),
		Amount:      tl.pendingMint.Amount.Clone(),
		EffectiveAt: tl.pendingMint.EffectiveAt,
	}, true
}

// ProposeMint records a mint that can be executed once the mint timelock expires. An unexecuted
// proposal is replaced.
func (tl *tokenLedger) ProposeMint(caller []byte, to []byte, amount *uint256.Int) error {
	return tl.execute("proposeMint", func(now uint64) error {
		err := tl.onlyGovernance(caller)
		if err != nil {
			return err
		}
		err = checkNonZeroAddress(to)
		if err != nil {
			return err
		}
		if amount == nil || amount.IsZero() {
			return ErrInvalidAmount
		}

		err = tl.checkMintCapacity(now, amount)
		if err != nil {
			return err
		}

		effectiveAt := now + common.MintTimelock
		tl.setPendingMint(&PendingMint{To: cloneBytes(to), Amount: amount.Clone(), EffectiveAt: effectiveAt})

		tl.emit(now, eventMintProposed, cloneBytes(to), amountBytes(amount), uint64Bytes(effectiveAt))
		log.Debug("mint proposed", "to", to, "amount", amount.Dec(), "effective at", effectiveAt)

		return nil
	})
}

// ExecuteMint mints the pending amount once its timelock expired. Both caps are checked again.
func (tl *tokenLedger) ExecuteMint(caller []byte) error {
	return tl.execute("executeMint", func(now uint64) error {
		err := tl.onlyGovernance(caller)
		if err != nil {
			return err
		}
		pending := tl.pendingMint
		if pending == nil {
			return ErrNoPendingMint
		}
		if now < pending.EffectiveAt {
			return ErrTimelockNotExpired
		}

		err = tl.checkMintCapacity(now, pending.Amount)
		if err != nil {
			return err
		}

		err = tl.mint(now, pending.To, pending.Amount)
		if err != nil {
			return err
		}

		tl.setMintWindow(MintWindow{
			Start:  tl.window.Start,
			Minted: new(uint256.Int).Add(tl.window.Minted, pending.Amount),
		})
		tl.setPendingMint(nil)

		tl.emit(now, eventMinted, cloneBytes(pending.To), amountBytes(pending.Amount))
		log.Debug("minted", "to", pending.To, "amount", pending.Amount.Dec(), "total supply", tl.totalSupply.Dec())

		return nil
	})
}

// CancelMint discards the pending mint
func (tl *tokenLedger) CancelMint(caller []byte) error {
	return tl.execute("cancelMint", func(now uint64) error {
		err := tl.onlyGovernance(caller)
		if err != nil {
			return err
		}
		pending := tl.pendingMint
		if pending == nil {
			return ErrNoPendingMint
		}

		tl.setPendingMint(nil)
		tl.emit(now, eventMintCancelled, cloneBytes(pending.To), amountBytes(pending.Amount))

		return nil
	})
}

// checkMintCapacity rolls the window if it fully elapsed, then checks the supply cap and the window cap
func (tl *tokenLedger) checkMintCapacity(now uint64, amount *uint256.Int) error {
	err := tl.checkSupplyCap(amount)
	if err != nil {
		return err
	}

	tl.rollMintWindow(now)

	minted, overflow := new(uint256.Int).AddOverflow(tl.window.Minted, amount)
	if overflow || minted.Gt(tl.mintCapPerPeriod) {
		return fmt.Errorf("%w: minted in window %s, requested %s", ErrExceedsMintCapPerPeriod, tl.window.Minted.Dec(), amount.Dec())
	}

	return nil
}

func (tl *tokenLedger) rollMintWindow(now uint64) {
	if now < tl.window.Start+common.MintPeriod {
		return
	}

	log.Debug("mint window rolled", "previous start", tl.window.Start, "minted", tl.window.Minted.Dec(), "new start", now)
	tl.setMintWindow(MintWindow{Start: now, Minted: uint256.NewInt(0)})
}

func (tl *tokenLedger) setMintWindow(window MintWindow) {
	previous := tl.window
	tl.journal.addEntry(&fieldEntry{restore: func() {
		tl.window = previous
	}})
	tl.window = window
}

func (tl *tokenLedger) setPendingMint(pending *PendingMint) {
	previous := tl.pendingMint
	tl.journal.addEntry(&fieldEntry{restore: func() {
		tl.pendingMint = previous
	}})
	tl.pendingMint = pending
}
