package ledger

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/multiversx/mx-chain-tax-ledger-go/common"
	"github.com/multiversx/mx-chain-tax-ledger-go/ledger/tax"
)

// BalanceOf returns the balance of the provided account
func (tl *tokenLedger) BalanceOf(account []byte) *uint256.Int {
	return tl.balanceOf(account)
}

// TotalSupply returns the current total supply
func (tl *tokenLedger) TotalSupply() *uint256.Int {
	return tl.totalSupply.Clone()
}

// Allowance returns the amount the spender is still allowed to move from the owner's account
func (tl *tokenLedger) Allowance(owner []byte, spender []byte) *uint256.Int {
	spenders, found := tl.allowances[string(owner)]
	if !found {
		return uint256.NewInt(0)
	}

	value, found := spenders[string(spender)]
	if !found {
		return uint256.NewInt(0)
	}

	return value.Clone()
}

// Transfer moves amount from the caller to the destination, applying the transfer tax
func (tl *tokenLedger) Transfer(caller []byte, to []byte, amount *uint256.Int) error {
	return tl.execute("transfer", func(now uint64) error {
		return tl.transfer(now, caller, to, amount)
	})
}

// TransferFrom moves amount from the owner to the destination on behalf of the caller, spending
// the caller's allowance and applying the transfer tax
func (tl *tokenLedger) TransferFrom(caller []byte, from []byte, to []byte, amount *uint256.Int) error {
	return tl.execute("transferFrom", func(now uint64) error {
		err := checkNonZeroAddress(caller)
		if err != nil {
			return err
		}
		err = checkAmount(amount)
		if err != nil {
			return err
		}

		err = tl.spendAllowance(from, caller, amount)
		if err != nil {
			return err
		}

		return tl.transfer(now, from, to, amount)
	})
}

// Approve sets the amount the spender is allowed to move from the caller's account
func (tl *tokenLedger) Approve(caller []byte, spender []byte, amount *uint256.Int) error {
	return tl.execute("approve", func(now uint64) error {
		err := checkNonZeroAddress(caller)
		if err != nil {
			return err
		}
		err = checkNonZeroAddress(spender)
		if err != nil {
			return err
		}
		err = checkAmount(amount)
		if err != nil {
			return err
		}

		tl.setAllowance(caller, spender, amount)
		tl.emit(now, eventApproval, cloneBytes(caller), cloneBytes(spender), amountBytes(amount))

		return nil
	})
}

// Burn destroys amount from the caller's balance, with no tax
func (tl *tokenLedger) Burn(caller []byte, amount *uint256.Int) error {
	return tl.execute("burn", func(now uint64) error {
		err := checkNonZeroAddress(caller)
		if err != nil {
			return err
		}
		err = checkAmount(amount)
		if err != nil {
			return err
		}

		return tl.burn(now, caller, amount)
	})
}

// BurnFrom destroys amount from the owner's balance on behalf of the caller, spending the caller's
// allowance, with no tax
func (tl *tokenLedger) BurnFrom(caller []byte, owner []byte, amount *uint256.Int) error {
	return tl.execute("burnFrom", func(now uint64) error {
		err := checkNonZeroAddress(caller)
		if err != nil {
			return err
		}
		err = checkNonZeroAddress(owner)
		if err != nil {
			return err
		}
		err = checkAmount(amount)
		if err != nil {
			return err
		}

		err = tl.spendAllowance(owner, caller, amount)
		if err != nil {
			return err
		}

		return tl.burn(now, owner, amount)
	})
}

func (tl *tokenLedger) transfer(now uint64, from []byte, to []byte, amount *uint256.Int) error {
	err := checkNonZeroAddress(from)
	if err != nil {
		return err
	}
	err = checkNonZeroAddress(to)
	if err != nil {
		return err
	}
	err = checkAmount(amount)
	if err != nil {
		return err
	}
	if amount.IsZero() {
		return nil
	}

	kind := tl.strategy.Classify(from, to, tl)
	fee, err := tl.strategy.Fee(kind, amount, tl.rates)
	if err != nil {
		return err
	}
	if fee.Gt(amount) {
		return fmt.Errorf("%w: fee %s, amount %s", ErrInvalidFee, fee.Dec(), amount.Dec())
	}
	net := new(uint256.Int).Sub(amount, fee)

	log.Trace("transfer", "kind", kind.String(), "amount", amount.Dec(), "fee", fee.Dec())

	err = tl.debit(from, amount)
	if err != nil {
		return err
	}

	tl.credit(to, net)
	err = tl.balanceMoved(now, from, to, net)
	if err != nil {
		return err
	}
	tl.emit(now, eventTransfer, cloneBytes(from), cloneBytes(to), amountBytes(net))

	if fee.IsZero() {
		return nil
	}

	return tl.collectTax(now, from, amount, fee, kind)
}

func (tl *tokenLedger) collectTax(now uint64, from []byte, gross *uint256.Int, fee *uint256.Int, kind tax.Kind) error {
	if common.IsZeroAddress(tl.feeRecipient) {
		tl.setTotalSupply(new(uint256.Int).Sub(tl.totalSupply, fee))
		err := tl.balanceMoved(now, from, common.ZeroAddress(), fee)
		if err != nil {
			return err
		}

		tl.emit(now, eventTransfer, cloneBytes(from), common.ZeroAddress(), amountBytes(fee))
		tl.emit(now, eventTaxBurned, amountBytes(gross), amountBytes(fee))
		log.Trace("tax burned", "kind", kind.String(), "fee", fee.Dec())

		return nil
	}

	tl.credit(tl.feeRecipient, fee)
	err := tl.balanceMoved(now, from, tl.feeRecipient, fee)
	if err != nil {
		return err
	}

	tl.emit(now, eventTransfer, cloneBytes(from), cloneBytes(tl.feeRecipient), amountBytes(fee))
	tl.emit(now, eventTaxCollected, amountBytes(gross), amountBytes(fee), cloneBytes(tl.feeRecipient))
	log.Trace("tax collected", "kind", kind.String(), "fee", fee.Dec())

	return nil
}

// mint credits the account with zero tax, checking the supply cap
func (tl *tokenLedger) mint(now uint64, to []byte, amount *uint256.Int) error {
	err := tl.checkSupplyCap(amount)
	if err != nil {
		return err
	}

	tl.setTotalSupply(new(uint256.Int).Add(tl.totalSupply, amount))
	tl.credit(to, amount)
	err = tl.balanceMoved(now, common.ZeroAddress(), to, amount)
	if err != nil {
		return err
	}

	tl.emit(now, eventTransfer, common.ZeroAddress(), cloneBytes(to), amountBytes(amount))

	return nil
}

func (tl *tokenLedger) burn(now uint64, from []byte, amount *uint256.Int) error {
	if amount.IsZero() {
		return nil
	}

	err := tl.debit(from, amount)
	if err != nil {
		return err
	}

	tl.setTotalSupply(new(uint256.Int).Sub(tl.totalSupply, amount))
	err = tl.balanceMoved(now, from, common.ZeroAddress(), amount)
	if err != nil {
		return err
	}

	tl.emit(now, eventTransfer, cloneBytes(from), common.ZeroAddress(), amountBytes(amount))

	return nil
}

func (tl *tokenLedger) checkSupplyCap(amount *uint256.Int) error {
	newSupply, overflow := new(uint256.Int).AddOverflow(tl.totalSupply, amount)
	if overflow || newSupply.Gt(tl.maxSupply) {
		return ErrExceedsMaxSupply
	}

	return nil
}

func (tl *tokenLedger) debit(account []byte, amount *uint256.Int) error {
	balance := tl.balanceOf(account)
	if balance.Lt(amount) {
		return fmt.Errorf("%w: balance %s, required %s", ErrInsufficientBalance, balance.Dec(), amount.Dec())
	}

	tl.setBalance(account, new(uint256.Int).Sub(balance, amount))

	return nil
}

// credit never overflows since every balance is bounded by the total supply
func (tl *tokenLedger) credit(account []byte, amount *uint256.Int) {
	tl.setBalance(account, new(uint256.Int).Add(tl.balanceOf(account), amount))
}

func (tl *tokenLedger) balanceOf(account []byte) *uint256.Int {
	balance, found := tl.balances[string(account)]
	if !found {
		return uint256.NewInt(0)
	}

	return balance.Clone()
}

func (tl *tokenLedger) setBalance(account []byte, value *uint256.Int) {
	key := string(account)
	tl.journal.addEntry(&balanceEntry{
		balances: tl.balances,
		key:      key,
		previous: tl.balances[key],
	})

	if value.IsZero() {
		delete(tl.balances, key)
		return
	}

	tl.balances[key] = value.Clone()
}

func (tl *tokenLedger) setTotalSupply(value *uint256.Int) {
	previous := tl.totalSupply
	tl.journal.addEntry(&fieldEntry{restore: func() {
		tl.totalSupply = previous
	}})

	tl.totalSupply = value.Clone()
}

func (tl *tokenLedger) spendAllowance(owner []byte, spender []byte, amount *uint256.Int) error {
	current := tl.Allowance(owner, spender)
	if isInfiniteAllowance(current) {
		return nil
	}
	if current.Lt(amount) {
		return fmt.Errorf("%w: allowance %s, required %s", ErrInsufficientAllowance, current.Dec(), amount.Dec())
	}

	tl.setAllowance(owner, spender, new(uint256.Int).Sub(current, amount))

	return nil
}

func (tl *tokenLedger) setAllowance(owner []byte, spender []byte, value *uint256.Int) {
	ownerKey, spenderKey := string(owner), string(spender)
	spenders, found := tl.allowances[ownerKey]
	if !found {
		spenders = make(map[string]*uint256.Int)
		tl.allowances[ownerKey] = spenders
	}

	tl.journal.addEntry(&allowanceEntry{
		allowances: tl.allowances,
		owner:      ownerKey,
		spender:    spenderKey,
		previous:   spenders[spenderKey],
	})

	if value.IsZero() {
		delete(spenders, spenderKey)
		if len(spenders) == 0 {
			delete(tl.allowances, ownerKey)
		}
		return
	}

	spenders[spenderKey] = value.Clone()
}

func isInfiniteAllowance(value *uint256.Int) bool {
	return value.Eq(new(uint256.Int).SetAllOne())
}
