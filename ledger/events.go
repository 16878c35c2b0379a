package ledger

import (
	"math/big"

	"github.com/holiman/uint256"
	"github.com/multiversx/mx-chain-tax-ledger-go/ledger/tax"
)

const (
	eventTransfer             = "transfer"
	eventApproval             = "approval"
	eventPoolAdded            = "poolAdded"
	eventPoolRemoved          = "poolRemoved"
	eventTaxChangeProposed    = "taxChangeProposed"
	eventTaxChangeApplied     = "taxChangeApplied"
	eventTaxChangeCancelled   = "taxChangeCancelled"
	eventFeeRecipientUpdated  = "feeRecipientUpdated"
	eventTaxCollected         = "taxCollected"
	eventTaxBurned            = "taxBurned"
	eventMintProposed         = "mintProposed"
	eventMinted               = "minted"
	eventMintCancelled        = "mintCancelled"
	eventGovernanceChanged    = "governanceChanged"
	eventDelegateChanged      = "delegateChanged"
	eventDelegateVotesChanged = "delegateVotesChanged"
	eventStrategyUpgraded     = "strategyUpgraded"
)

// Event is a notification emitted by a committed operation. Addresses are raw, integers are
// big-endian encoded.
type Event struct {
	Identifier string
	Address    []byte
	Timestamp  uint64
	Topics     [][]byte
}

func uint64Bytes(value uint64) []byte {
	return big.NewInt(0).SetUint64(value).Bytes()
}

func ratesTopics(rates tax.Rates) [][]byte {
	return [][]byte{
		uint64Bytes(uint64(rates.TransferBp)),
		uint64Bytes(uint64(rates.SellBp)),
		uint64Bytes(uint64(rates.BuyBp)),
	}
}

func amountBytes(amount *uint256.Int) []byte {
	return amount.Bytes()
}

func (tl *tokenLedger) emit(now uint64, identifier string, topics ...[]byte) {
	tl.pendingEvents = append(tl.pendingEvents, &Event{
		Identifier: identifier,
		Address:    tl.selfAddress,
		Timestamp:  now,
		Topics:     topics,
	})
}
