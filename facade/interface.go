package facade

import (
	"github.com/holiman/uint256"
	"github.com/multiversx/mx-chain-tax-ledger-go/data/api"
	"github.com/multiversx/mx-chain-tax-ledger-go/ledger"
	"github.com/multiversx/mx-chain-tax-ledger-go/ledger/checkpoints"
	"github.com/multiversx/mx-chain-tax-ledger-go/ledger/tax"
	"github.com/multiversx/mx-chain-tax-ledger-go/outport"
	vmcommon "github.com/multiversx/mx-chain-vm-common-go"
)

// LedgerReader defines the read-only view of the token ledger used by the facade
type LedgerReader interface {
	SelfAddress() []byte
	BalanceOf(account []byte) *uint256.Int
	TotalSupply() *uint256.Int
	MaxSupply() *uint256.Int
	MintCapPerPeriod() *uint256.Int
	Allowance(owner []byte, spender []byte) *uint256.Int
	IsPool(address []byte) bool
	Pools() [][]byte
	Governance() []byte
	FeeRecipient() []byte
	ActiveRates() tax.Rates
	PendingTaxChange() (ledger.PendingTaxChange, bool)
	StrategyVersion() uint32
	MintWindow() ledger.MintWindow
	PendingMint() (ledger.PendingMint, bool)
	Delegates(account []byte) []byte
	GetVotes(account []byte) *uint256.Int
	GetPastVotes(account []byte, timestamp uint64) (*uint256.Int, error)
	GetPastTotalSupply(timestamp uint64) (*uint256.Int, error)
	NumCheckpoints(account []byte) int
	Checkpoints(account []byte) []checkpoints.Checkpoint
	Snapshot() *ledger.StateSnapshot
	IsInterfaceNil() bool
}

// ContractHandler executes contract calls on the ledger
type ContractHandler interface {
	Execute(args *vmcommon.ContractCallInput) *vmcommon.VMOutput
	IsReadOnlyFunction(function string) bool
	IsInterfaceNil() bool
}

// StateSaver persists the ledger state after every committed call
type StateSaver interface {
	SaveState(snapshot *ledger.StateSnapshot) error
	IsInterfaceNil() bool
}

// EventsConverter turns contract logs into outport events
type EventsConverter interface {
	Convert(operation string, caller []byte, timestamp uint64, logs []*vmcommon.LogEntry) (*outport.EventsBatch, error)
	IsInterfaceNil() bool
}

// StatusMetricsProvider exposes the metrics recorded by the node
type StatusMetricsProvider interface {
	GetMetrics() map[string]interface{}
	GetLogLines() []string
	IsInterfaceNil() bool
}

// CallVerifier authenticates the calls changing the ledger
type CallVerifier interface {
	Verify(caller []byte, request *api.CallRequest) error
	Nonce(caller []byte) (uint64, error)
	IncreaseNonce(caller []byte) error
	IsInterfaceNil() bool
}
