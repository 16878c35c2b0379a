package ledger

import (
	"bytes"
	"fmt"

	"github.com/holiman/uint256"
	"github.com/multiversx/mx-chain-core-go/core/atomic"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-tax-ledger-go/common"
	"github.com/multiversx/mx-chain-tax-ledger-go/ledger/checkpoints"
	"github.com/multiversx/mx-chain-tax-ledger-go/ledger/tax"
)

var log = logger.GetOrCreate("ledger")

// GenesisBalance is an initial allocation minted when the ledger is created
type GenesisBalance struct {
	Address []byte
	Amount  *uint256.Int
}

// PendingTaxChange is a proposed tax change waiting for its timelock
type PendingTaxChange struct {
	Rates       tax.Rates
	EffectiveAt uint64
}

// PendingMint is a proposed mint waiting for its timelock
type PendingMint struct {
	To          []byte
	Amount      *uint256.Int
	EffectiveAt uint64
}

// MintWindow is the accounting of the current rolling mint window
type MintWindow struct {
	Start  uint64
	Minted *uint256.Int
}

// ArgsNewTokenLedger defines the arguments needed to create a new token ledger
type ArgsNewTokenLedger struct {
	SelfAddress      []byte
	Governance       []byte
	FeeRecipient     []byte
	MaxSupply        *uint256.Int
	MintCapPerPeriod *uint256.Int
	InitialRates     tax.Rates
	Genesis          []GenesisBalance
	State            *StateSnapshot
	TimeProvider     TimeProvider
	Strategy         tax.Strategy
	EventsHandler    EventsHandler
	BalanceObservers []BalanceObserver
}

type tokenLedger struct {
	selfAddress      []byte
	maxSupply        *uint256.Int
	mintCapPerPeriod *uint256.Int
	timeProvider     TimeProvider
	eventsHandler    EventsHandler
	balanceObservers []BalanceObserver

	governance   []byte
	feeRecipient []byte
	rates        tax.Rates
	strategy     tax.Strategy
	pendingTax   *PendingTaxChange
	window       MintWindow
	pendingMint  *PendingMint

	totalSupply *uint256.Int
	balances    map[string]*uint256.Int
	allowances  map[string]map[string]*uint256.Int
	pools       map[string]struct{}

	delegates          map[string][]byte
	votes              map[string]*checkpoints.History
	totalSupplyHistory *checkpoints.History

	journal       *journal
	pendingEvents []*Event
	busy          atomic.Flag
}

// NewTokenLedger creates a new token ledger. When args.State is set, the ledger is restored from it
// and the genesis related arguments are ignored.
func NewTokenLedger(args ArgsNewTokenLedger) (*tokenLedger, error) {
	err := checkArgs(args)
	if err != nil {
		return nil, err
	}

	tl := &tokenLedger{
		selfAddress:        cloneBytes(args.SelfAddress),
		maxSupply:          args.MaxSupply.Clone(),
		mintCapPerPeriod:   args.MintCapPerPeriod.Clone(),
		timeProvider:       args.TimeProvider,
		eventsHandler:      args.EventsHandler,
		balanceObservers:   args.BalanceObservers,
		strategy:           args.Strategy,
		totalSupply:        uint256.NewInt(0),
		balances:           make(map[string]*uint256.Int),
		allowances:         make(map[string]map[string]*uint256.Int),
		pools:              make(map[string]struct{}),
		delegates:          make(map[string][]byte),
		votes:              make(map[string]*checkpoints.History),
		totalSupplyHistory: checkpoints.NewHistory(),
		journal:            newJournal(),
	}

	if args.State != nil {
		err = tl.restore(args.State)
		if err != nil {
			return nil, err
		}

		log.Debug("token ledger restored", "total supply", tl.totalSupply.Dec(), "strategy version", tl.strategy.Version())
		return tl, nil
	}

	err = tl.initialize(args)
	if err != nil {
		return nil, err
	}

	log.Debug("token ledger created", "total supply", tl.totalSupply.Dec(), "genesis accounts", len(args.Genesis))
	return tl, nil
}

func checkArgs(args ArgsNewTokenLedger) error {
	if !common.IsValidAddress(args.SelfAddress) || common.IsZeroAddress(args.SelfAddress) {
		return fmt.Errorf("%w for ledger address", ErrInvalidAddress)
	}
	if check.IfNil(args.TimeProvider) {
		return ErrNilTimeProvider
	}
	if check.IfNil(args.Strategy) {
		return ErrNilTaxStrategy
	}
	if check.IfNil(args.EventsHandler) {
		return ErrNilEventsHandler
	}
	for _, observer := range args.BalanceObservers {
		if check.IfNil(observer) {
			return ErrNilBalanceObserver
		}
	}
	if args.MaxSupply == nil || args.MaxSupply.IsZero() {
		return ErrInvalidMaxSupply
	}
	if args.MintCapPerPeriod == nil || args.MintCapPerPeriod.IsZero() || args.MintCapPerPeriod.Gt(args.MaxSupply) {
		return ErrInvalidMintCap
	}

	return nil
}

func (tl *tokenLedger) initialize(args ArgsNewTokenLedger) error {
	err := checkNonZeroAddress(args.Governance)
	if err != nil {
		return fmt.Errorf("%w for governance", err)
	}
	if !common.IsValidAddress(args.FeeRecipient) {
		return fmt.Errorf("%w for fee recipient", ErrInvalidAddress)
	}
	if bytes.Equal(args.FeeRecipient, tl.selfAddress) {
		return ErrFeeRecipientIsLedger
	}
	err = args.InitialRates.Validate()
	if err != nil {
		return err
	}

	now := tl.timeProvider.CurrentTimestamp()
	tl.governance = cloneBytes(args.Governance)
	tl.feeRecipient = cloneBytes(args.FeeRecipient)
	tl.rates = args.InitialRates
	tl.window = MintWindow{Start: now, Minted: uint256.NewInt(0)}

	for _, gb := range args.Genesis {
		err = checkNonZeroAddress(gb.Address)
		if err != nil {
			return fmt.Errorf("%w for genesis account", err)
		}
		if gb.Amount == nil {
			return fmt.Errorf("%w for genesis account", ErrInvalidAmount)
		}

		err = tl.mint(now, gb.Address, gb.Amount)
		if err != nil {
			return err
		}
	}

	tl.journal.clear()
	tl.pendingEvents = nil

	return nil
}

// execute runs a mutating operation under the reentrancy guard. Either every state write of the
// handler is kept and its events are dispatched, or everything is reverted and no event leaves.
// A panicking handler is reverted too before the panic goes on.
func (tl *tokenLedger) execute(operation string, handler func(now uint64) error) error {
	if tl.busy.SetReturningPrevious() {
		return ErrReentrantCall
	}
	defer tl.busy.Reset()

	now := tl.timeProvider.CurrentTimestamp()
	snapshot := tl.journal.len()
	committed := false
	defer func() {
		if committed {
			return
		}

		tl.journal.revertToSnapshot(snapshot)
		tl.pendingEvents = nil
	}()

	err := handler(now)
	if err != nil {
		log.Debug("ledger operation reverted", "operation", operation, "reason", common.ReasonTag(err), "error", err.Error())
		return err
	}

	tl.journal.clear()
	events := tl.pendingEvents
	tl.pendingEvents = nil
	committed = true
	log.Trace("ledger operation committed", "operation", operation, "num events", len(events))

	if len(events) > 0 {
		tl.eventsHandler.HandleEvents(events)
	}

	return nil
}

// SelfAddress returns the ledger address
func (tl *tokenLedger) SelfAddress() []byte {
	return cloneBytes(tl.selfAddress)
}

// MaxSupply returns the total supply cap
func (tl *tokenLedger) MaxSupply() *uint256.Int {
	return tl.maxSupply.Clone()
}

// MintCapPerPeriod returns the mint cap of a window
func (tl *tokenLedger) MintCapPerPeriod() *uint256.Int {
	return tl.mintCapPerPeriod.Clone()
}

// IsInterfaceNil returns true if there is no value under the interface
func (tl *tokenLedger) IsInterfaceNil() bool {
	return tl == nil
}

func checkAddress(address []byte) error {
	if !common.IsValidAddress(address) {
		return ErrInvalidAddress
	}

	return nil
}

func checkNonZeroAddress(address []byte) error {
	err := checkAddress(address)
	if err != nil {
		return err
	}
	if common.IsZeroAddress(address) {
		return ErrZeroAddress
	}

	return nil
}

func checkAmount(amount *uint256.Int) error {
	if amount == nil {
		return ErrInvalidAmount
	}

	return nil
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}

	return append(make([]byte, 0, len(b)), b...)
}
