package ledger

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/holiman/uint256"
	"github.com/multiversx/mx-chain-tax-ledger-go/common"
	"github.com/multiversx/mx-chain-tax-ledger-go/ledger/checkpoints"
	"github.com/multiversx/mx-chain-tax-ledger-go/ledger/tax"
)

// CheckpointData is the serializable form of a checkpoint
type CheckpointData struct {
	Timestamp uint64 `json:"timestamp"`
	Value     string `json:"value"`
}

// PendingTaxChangeData is the serializable form of a pending tax change
type PendingTaxChangeData struct {
	Rates       tax.Rates `json:"rates"`
	EffectiveAt uint64    `json:"effectiveAt"`
}

// PendingMintData is the serializable form of a pending mint
type PendingMintData struct {
	To          string `json:"to"`
	Amount      string `json:"amount"`
	EffectiveAt uint64 `json:"effectiveAt"`
}

// StateSnapshot is the full persisted state of the ledger. Addresses are hex encoded and amounts
// are decimal strings. SelfAddress and the supply caps are fixed for the life of the ledger.
type StateSnapshot struct {
	SelfAddress            string                       `json:"selfAddress"`
	MaxSupply              string                       `json:"maxSupply"`
	MintCapPerPeriod       string                       `json:"mintCapPerPeriod"`
	Governance             string                       `json:"governance"`
	FeeRecipient           string                       `json:"feeRecipient"`
	Rates                  tax.Rates                    `json:"rates"`
	PendingTaxChange       *PendingTaxChangeData        `json:"pendingTaxChange,omitempty"`
	StrategyVersion        uint32                       `json:"strategyVersion"`
	MintWindowStart        uint64                       `json:"mintWindowStart"`
	MintedInWindow         string                       `json:"mintedInWindow"`
	PendingMint            *PendingMintData             `json:"pendingMint,omitempty"`
	TotalSupply            string                       `json:"totalSupply"`
	Pools                  []string                     `json:"pools"`
	Balances               map[string]string            `json:"balances"`
	Allowances             map[string]map[string]string `json:"allowances"`
	Delegates              map[string]string            `json:"delegates"`
	Checkpoints            map[string][]CheckpointData  `json:"checkpoints"`
	TotalSupplyCheckpoints []CheckpointData             `json:"totalSupplyCheckpoints"`
}

// Snapshot returns the full committed state of the ledger
func (tl *tokenLedger) Snapshot() *StateSnapshot {
	snapshot := &StateSnapshot{
		SelfAddress:            hex.EncodeToString(tl.selfAddress),
		MaxSupply:              tl.maxSupply.Dec(),
		MintCapPerPeriod:       tl.mintCapPerPeriod.Dec(),
		Governance:             hex.EncodeToString(tl.governance),
		FeeRecipient:           hex.EncodeToString(tl.feeRecipient),
		Rates:                  tl.rates,
		StrategyVersion:        tl.strategy.Version(),
		MintWindowStart:        tl.window.Start,
		MintedInWindow:         tl.window.Minted.Dec(),
		TotalSupply:            tl.totalSupply.Dec(),
		Pools:                  make([]string, 0, len(tl.pools)),
		Balances:               make(map[string]string, len(tl.balances)),
		Allowances:             make(map[string]map[string]string, len(tl.allowances)),
		Delegates:              make(map[string]string, len(tl.delegates)),
		Checkpoints:            make(map[string][]CheckpointData, len(tl.votes)),
		TotalSupplyCheckpoints: checkpointsData(tl.totalSupplyHistory.Checkpoints()),
	}

	if tl.pendingTax != nil {
		snapshot.PendingTaxChange = &PendingTaxChangeData{
			Rates:       tl.pendingTax.Rates,
			EffectiveAt: tl.pendingTax.EffectiveAt,
		}
	}
	if tl.pendingMint != nil {
		snapshot.PendingMint = &PendingMintData{
			To:          hex.EncodeToString(tl.pendingMint.To),
			Amount:      tl.pendingMint.Amount.Dec(),
			EffectiveAt: tl.pendingMint.EffectiveAt,
		}
	}
	for _, pool := range tl.Pools() {
		snapshot.Pools = append(snapshot.Pools, hex.EncodeToString(pool))
	}
	for key, balance := range tl.balances {
		snapshot.Balances[hex.EncodeToString([]byte(key))] = balance.Dec()
	}
	for owner, spenders := range tl.allowances {
		values := make(map[string]string, len(spenders))
		for spender, value := range spenders {
			values[hex.EncodeToString([]byte(spender))] = value.Dec()
		}
		snapshot.Allowances[hex.EncodeToString([]byte(owner))] = values
	}
	for delegator, delegatee := range tl.delegates {
		snapshot.Delegates[hex.EncodeToString([]byte(delegator))] = hex.EncodeToString(delegatee)
	}
	for delegatee, history := range tl.votes {
		if history.Len() == 0 {
			continue
		}
		snapshot.Checkpoints[hex.EncodeToString([]byte(delegatee))] = checkpointsData(history.Checkpoints())
	}

	return snapshot
}

func checkpointsData(list []checkpoints.Checkpoint) []CheckpointData {
	result := make([]CheckpointData, 0, len(list))
	for _, cp := range list {
		result = append(result, CheckpointData{Timestamp: cp.Timestamp, Value: cp.Value.Dec()})
	}

	return result
}

func (tl *tokenLedger) restore(snapshot *StateSnapshot) error {
	if snapshot.StrategyVersion != tl.strategy.Version() {
		return fmt.Errorf("%w: state has %d, strategy has %d", ErrStrategyVersionMismatch, snapshot.StrategyVersion, tl.strategy.Version())
	}

	err := tl.checkImmutables(snapshot)
	if err != nil {
		return err
	}

	tl.governance, err = decodeAddress(snapshot.Governance)
	if err != nil {
		return err
	}
	tl.feeRecipient, err = decodeAddress(snapshot.FeeRecipient)
	if err != nil {
		return err
	}
	if bytes.Equal(tl.feeRecipient, tl.selfAddress) {
		return fmt.Errorf("%w: %s", ErrInvalidSnapshot, ErrFeeRecipientIsLedger.Error())
	}
	err = snapshot.Rates.Validate()
	if err != nil {
		return err
	}
	tl.rates = snapshot.Rates

	if snapshot.PendingTaxChange != nil {
		tl.pendingTax = &PendingTaxChange{
			Rates:       snapshot.PendingTaxChange.Rates,
			EffectiveAt: snapshot.PendingTaxChange.EffectiveAt,
		}
	}

	minted, err := decodeAmount(snapshot.MintedInWindow)
	if err != nil {
		return err
	}
	tl.window = MintWindow{Start: snapshot.MintWindowStart, Minted: minted}

	if snapshot.PendingMint != nil {
		to, errDecode := decodeAddress(snapshot.PendingMint.To)
		if errDecode != nil {
			return errDecode
		}
		amount, errDecode := decodeAmount(snapshot.PendingMint.Amount)
		if errDecode != nil {
			return errDecode
		}
		tl.pendingMint = &PendingMint{To: to, Amount: amount, EffectiveAt: snapshot.PendingMint.EffectiveAt}
	}

	tl.totalSupply, err = decodeAmount(snapshot.TotalSupply)
	if err != nil {
		return err
	}
	if tl.totalSupply.Gt(tl.maxSupply) {
		return fmt.Errorf("%w: total supply over max supply", ErrInvalidSnapshot)
	}

	for _, encoded := range snapshot.Pools {
		pool, errDecode := decodeAddress(encoded)
		if errDecode != nil {
			return errDecode
		}
		tl.pools[string(pool)] = struct{}{}
	}

	sum := uint256.NewInt(0)
	for encoded, value := range snapshot.Balances {
		account, errDecode := decodeAddress(encoded)
		if errDecode != nil {
			return errDecode
		}
		balance, errDecode := decodeAmount(value)
		if errDecode != nil {
			return errDecode
		}
		_, overflow := sum.AddOverflow(sum, balance)
		if overflow {
			return fmt.Errorf("%w: balances sum overflows", ErrInvalidSnapshot)
		}
		tl.balances[string(account)] = balance
	}
	if !sum.Eq(tl.totalSupply) {
		return fmt.Errorf("%w: balances sum %s, total supply %s", ErrInvalidSnapshot, sum.Dec(), tl.totalSupply.Dec())
	}

	for encodedOwner, spenders := range snapshot.Allowances {
		owner, errDecode := decodeAddress(encodedOwner)
		if errDecode != nil {
			return errDecode
		}
		values := make(map[string]*uint256.Int, len(spenders))
		for encodedSpender, value := range spenders {
			spender, errSpender := decodeAddress(encodedSpender)
			if errSpender != nil {
				return errSpender
			}
			values[string(spender)], errSpender = decodeAmount(value)
			if errSpender != nil {
				return errSpender
			}
		}
		tl.allowances[string(owner)] = values
	}

	for encodedDelegator, encodedDelegatee := range snapshot.Delegates {
		delegator, errDecode := decodeAddress(encodedDelegator)
		if errDecode != nil {
			return errDecode
		}
		delegatee, errDecode := decodeAddress(encodedDelegatee)
		if errDecode != nil {
			return errDecode
		}
		tl.delegates[string(delegator)] = delegatee
	}

	for encoded, list := range snapshot.Checkpoints {
		delegatee, errDecode := decodeAddress(encoded)
		if errDecode != nil {
			return errDecode
		}
		history, errDecode := restoreHistory(list)
		if errDecode != nil {
			return errDecode
		}
		tl.votes[string(delegatee)] = history
	}

	tl.totalSupplyHistory, err = restoreHistory(snapshot.TotalSupplyCheckpoints)

	return err
}

// checkImmutables rejects a snapshot saved by a ledger with another address or other supply caps
func (tl *tokenLedger) checkImmutables(snapshot *StateSnapshot) error {
	selfAddress, err := decodeAddress(snapshot.SelfAddress)
	if err != nil {
		return err
	}
	if !bytes.Equal(selfAddress, tl.selfAddress) {
		return fmt.Errorf("%w: ledger address %s, configured %x", ErrStateConfigMismatch, snapshot.SelfAddress, tl.selfAddress)
	}

	maxSupply, err := decodeAmount(snapshot.MaxSupply)
	if err != nil {
		return err
	}
	if !maxSupply.Eq(tl.maxSupply) {
		return fmt.Errorf("%w: max supply %s, configured %s", ErrStateConfigMismatch, maxSupply.Dec(), tl.maxSupply.Dec())
	}

	mintCap, err := decodeAmount(snapshot.MintCapPerPeriod)
	if err != nil {
		return err
	}
	if !mintCap.Eq(tl.mintCapPerPeriod) {
		return fmt.Errorf("%w: mint cap per period %s, configured %s", ErrStateConfigMismatch, mintCap.Dec(), tl.mintCapPerPeriod.Dec())
	}

	return nil
}

func restoreHistory(list []CheckpointData) (*checkpoints.History, error) {
	entries := make([]checkpoints.Checkpoint, 0, len(list))
	for _, data := range list {
		value, err := decodeAmount(data.Value)
		if err != nil {
			return nil, err
		}
		entries = append(entries, checkpoints.Checkpoint{Timestamp: data.Timestamp, Value: value})
	}

	history, err := checkpoints.NewHistoryFromCheckpoints(entries)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSnapshot, err.Error())
	}

	return history, nil
}

func decodeAddress(encoded string) ([]byte, error) {
	address, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSnapshot, err.Error())
	}
	if !common.IsValidAddress(address) {
		return nil, fmt.Errorf("%w: invalid address %s", ErrInvalidSnapshot, encoded)
	}

	return address, nil
}

func decodeAmount(encoded string) (*uint256.Int, error) {
	value, err := uint256.FromDecimal(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSnapshot, err.Error())
	}

	return value, nil
}
