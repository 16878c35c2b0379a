package vm

import (
	"github.com/holiman/uint256"
	"github.com/multiversx/mx-chain-tax-ledger-go/ledger"
	"github.com/multiversx/mx-chain-tax-ledger-go/ledger/tax"
)

// LedgerHandler defines the token ledger operations reachable through contract calls
type LedgerHandler interface {
	Transfer(caller []byte, to []byte, amount *uint256.Int) error
	TransferFrom(caller []byte, from []byte, to []byte, amount *uint256.Int) error
	Approve(caller []byte, spender []byte, amount *uint256.Int) error
	Burn(caller []byte, amount *uint256.Int) error
	BurnFrom(caller []byte, owner []byte, amount *uint256.Int) error
	AddPool(caller []byte, address []byte) error
	RemovePool(caller []byte, address []byte) error
	ProposeTaxChange(caller []byte, rates tax.Rates) error
	ApplyTaxChange(caller []byte) error
	CancelTaxChange(caller []byte) error
	SetTaxesImmediate(caller []byte, rates tax.Rates) error
	SetFeeRecipient(caller []byte, recipient []byte) error
	ProposeMint(caller []byte, to []byte, amount *uint256.Int) error
	ExecuteMint(caller []byte) error
	CancelMint(caller []byte) error
	SetGovernance(caller []byte, newGovernance []byte) error
	UpgradeStrategy(caller []byte, strategy tax.Strategy) error
	Delegate(caller []byte, delegatee []byte) error

	BalanceOf(account []byte) *uint256.Int
	TotalSupply() *uint256.Int
	Allowance(owner []byte, spender []byte) *uint256.Int
	IsPool(address []byte) bool
	Delegates(account []byte) []byte
	GetVotes(account []byte) *uint256.Int
	GetPastVotes(account []byte, timestamp uint64) (*uint256.Int, error)
	GetPastTotalSupply(timestamp uint64) (*uint256.Int, error)
	SelfAddress() []byte
	IsInterfaceNil() bool
}

// LogsSource provides the events committed by the last ledger operation
type LogsSource interface {
	Reset()
	Events() []*ledger.Event
	IsInterfaceNil() bool
}
