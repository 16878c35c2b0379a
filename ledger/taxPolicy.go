package ledger

import (
	"bytes"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-tax-ledger-go/common"
	"github.com/multiversx/mx-chain-tax-ledger-go/ledger/tax"
)

// ActiveRates returns the tax rates currently applied on transfers
func (tl *tokenLedger) ActiveRates() tax.Rates {
	return tl.rates
}

// PendingTaxChange returns the proposed tax change, if any
func (tl *tokenLedger) PendingTaxChange() (PendingTaxChange, bool) {
	if tl.pendingTax == nil {
		return PendingTaxChange{}, false
	}

	return *tl.pendingTax, true
}

// FeeRecipient returns the fee recipient. The zero address means fees are burned.
func (tl *tokenLedger) FeeRecipient() []byte {
	return cloneBytes(tl.feeRecipient)
}

// StrategyVersion returns the version of the active tax strategy
func (tl *tokenLedger) StrategyVersion() uint32 {
	return tl.strategy.Version()
}

// ProposeTaxChange records new rates that can be applied once the tax timelock expires. An
// unapplied proposal is replaced.
func (tl *tokenLedger) ProposeTaxChange(caller []byte, rates tax.Rates) error {
	return tl.execute("proposeTaxChange", func(now uint64) error {
		err := tl.onlyGovernance(caller)
		if err != nil {
			return err
		}
		err = rates.Validate()
		if err != nil {
			return err
		}

		effectiveAt := now + common.TaxChangeTimelock
		tl.setPendingTax(&PendingTaxChange{Rates: rates, EffectiveAt: effectiveAt})

		topics := append(ratesTopics(rates), uint64Bytes(effectiveAt))
		tl.emit(now, eventTaxChangeProposed, topics...)
		log.Debug("tax change proposed", "transfer", rates.TransferBp, "sell", rates.SellBp, "buy", rates.BuyBp, "effective at", effectiveAt)

		return nil
	})
}

// ApplyTaxChange activates the pending rates once their timelock expired
func (tl *tokenLedger) ApplyTaxChange(caller []byte) error {
	return tl.execute("applyTaxChange", func(now uint64) error {
		err := tl.onlyGovernance(caller)
		if err != nil {
			return err
		}
		if tl.pendingTax == nil {
			return ErrNoPendingChange
		}
		if now < tl.pendingTax.EffectiveAt {
			return ErrTimelockNotExpired
		}

		rates := tl.pendingTax.Rates
		tl.setRates(rates)
		tl.setPendingTax(nil)

		tl.emit(now, eventTaxChangeApplied, ratesTopics(rates)...)
		log.Debug("tax change applied", "transfer", rates.TransferBp, "sell", rates.SellBp, "buy", rates.BuyBp)

		return nil
	})
}

// CancelTaxChange discards the pending tax change
func (tl *tokenLedger) CancelTaxChange(caller []byte) error {
	return tl.execute("cancelTaxChange", func(now uint64) error {
		err := tl.onlyGovernance(caller)
		if err != nil {
			return err
		}
		if tl.pendingTax == nil {
			return ErrNoPendingChange
		}

		tl.setPendingTax(nil)
		tl.emit(now, eventTaxChangeCancelled)

		return nil
	})
}

// SetTaxesImmediate activates the rates without waiting for the timelock. Meant for bootstrap only.
func (tl *tokenLedger) SetTaxesImmediate(caller []byte, rates tax.Rates) error {
	return tl.execute("setTaxesImmediate", func(now uint64) error {
		err := tl.onlyGovernance(caller)
		if err != nil {
			return err
		}
		err = rates.Validate()
		if err != nil {
			return err
		}

		tl.setRates(rates)
		tl.emit(now, eventTaxChangeApplied, ratesTopics(rates)...)
		log.Warn("tax rates set without timelock", "transfer", rates.TransferBp, "sell", rates.SellBp, "buy", rates.BuyBp)

		return nil
	})
}

// SetFeeRecipient changes the fee recipient. The zero address enables burn mode.
func (tl *tokenLedger) SetFeeRecipient(caller []byte, recipient []byte) error {
	return tl.execute("setFeeRecipient", func(now uint64) error {
		err := tl.onlyGovernance(caller)
		if err != nil {
			return err
		}
		err = checkAddress(recipient)
		if err != nil {
			return err
		}
		if bytes.Equal(recipient, tl.selfAddress) {
			return ErrFeeRecipientIsLedger
		}

		previous := tl.feeRecipient
		tl.journal.addEntry(&fieldEntry{restore: func() {
			tl.feeRecipient = previous
		}})
		tl.feeRecipient = cloneBytes(recipient)

		tl.emit(now, eventFeeRecipientUpdated, cloneBytes(previous), cloneBytes(recipient))

		return nil
	})
}

// UpgradeStrategy replaces the tax strategy. Rates, pending proposals and balances are preserved.
func (tl *tokenLedger) UpgradeStrategy(caller []byte, strategy tax.Strategy) error {
	return tl.execute("upgradeStrategy", func(now uint64) error {
		err := tl.onlyGovernance(caller)
		if err != nil {
			return err
		}
		if check.IfNil(strategy) {
			return ErrInvalidStrategy
		}

		previous := tl.strategy
		tl.journal.addEntry(&fieldEntry{restore: func() {
			tl.strategy = previous
		}})
		tl.strategy = strategy

		tl.emit(now, eventStrategyUpgraded, uint64Bytes(uint64(previous.Version())), uint64Bytes(uint64(strategy.Version())))
		log.Info("tax strategy upgraded", "old version", previous.Version(), "new version", strategy.Version())

		return nil
	})
}

func (tl *tokenLedger) setRates(rates tax.Rates) {
	previous := tl.rates
	tl.journal.addEntry(&fieldEntry{restore: func() {
		tl.rates = previous
	}})
	tl.rates = rates
}

func (tl *tokenLedger) setPendingTax(pending *PendingTaxChange) {
	previous := tl.pendingTax
	tl.journal.addEntry(&fieldEntry{restore: func() {
		tl.pendingTax = previous
	}})
	tl.pendingTax = pending
}
