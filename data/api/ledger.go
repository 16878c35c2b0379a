package api

import "github.com/multiversx/mx-chain-tax-ledger-go/ledger"

// SupplyResponse holds the supply related values of the ledger
type SupplyResponse struct {
	TotalSupply      string `json:"totalSupply"`
	MaxSupply        string `json:"maxSupply"`
	MintCapPerPeriod string `json:"mintCapPerPeriod"`
}

// AccountResponse holds the ledger view of an account
type AccountResponse struct {
	Address        string `json:"address"`
	Balance        string `json:"balance"`
	Delegate       string `json:"delegate"`
	Votes          string `json:"votes"`
	NumCheckpoints int    `json:"numCheckpoints"`
	IsPool         bool   `json:"isPool"`
	Nonce          uint64 `json:"nonce"`
}

// TaxRates holds tax rates expressed in basis points
type TaxRates struct {
	TransferBp uint32 `json:"transferBp"`
	SellBp     uint32 `json:"sellBp"`
	BuyBp      uint32 `json:"buyBp"`
}

// PendingTaxChange is a proposed tax change waiting for its timelock
type PendingTaxChange struct {
	Rates       TaxRates `json:"rates"`
	EffectiveAt uint64   `json:"effectiveAt"`
}

// TaxResponse holds the tax policy state
type TaxResponse struct {
	Active          TaxRates          `json:"active"`
	Pending         *PendingTaxChange `json:"pending,omitempty"`
	FeeRecipient    string            `json:"feeRecipient"`
	BurnMode        bool              `json:"burnMode"`
	StrategyVersion uint32            `json:"strategyVersion"`
}

// PendingMint is a proposed mint waiting for its timelock
type PendingMint struct {
	To          string `json:"to"`
	Amount      string `json:"amount"`
	EffectiveAt uint64 `json:"effectiveAt"`
}

// MintResponse holds the mint limiter state
type MintResponse struct {
	WindowStart    uint64       `json:"windowStart"`
	MintedInWindow string       `json:"mintedInWindow"`
	CapPerPeriod   string       `json:"capPerPeriod"`
	Pending        *PendingMint `json:"pending,omitempty"`
}

// Checkpoint is a single entry of a votes history
type Checkpoint struct {
	Timestamp uint64 `json:"timestamp"`
	Value     string `json:"value"`
}

// StateResponse holds the full ledger state and its digest
type StateResponse struct {
	Hash  string                `json:"hash"`
	State *ledger.StateSnapshot `json:"state"`
}

// CallRequest is a contract call on the ledger. Arguments are hex encoded or bech32 addresses.
// Calls changing the ledger carry the caller nonce and the hex encoded signature of their CallMessage.
type CallRequest struct {
	Caller    string   `json:"caller" validate:"required"`
	Function  string   `json:"function" validate:"required,functionName"`
	Arguments []string `json:"arguments" validate:"max=8"`
	Nonce     uint64   `json:"nonce"`
	Signature string   `json:"signature,omitempty" validate:"omitempty,hexadecimal"`
}

// CallMessage is the payload signed by the caller of a call
type CallMessage struct {
	Nonce     uint64   `json:"nonce"`
	Caller    string   `json:"caller"`
	Function  string   `json:"function"`
	Arguments []string `json:"arguments"`
}

// NewCallMessage returns the payload to be signed for the provided request
func NewCallMessage(request *CallRequest) *CallMessage {
	arguments := make([]string, 0, len(request.Arguments))
	arguments = append(arguments, request.Arguments...)

	return &CallMessage{
		Nonce:     request.Nonce,
		Caller:    request.Caller,
		Function:  request.Function,
		Arguments: arguments,
	}
}

// CallEvent is an event committed by a call
type CallEvent struct {
	Identifier string   `json:"identifier"`
	Topics     []string `json:"topics"`
}

// CallResponse is the outcome of a contract call
type CallResponse struct {
	ReturnCode    string       `json:"returnCode"`
	ReturnMessage string       `json:"returnMessage"`
	ReturnData    []string     `json:"returnData"`
	Events        []*CallEvent `json:"events"`
}

// NodeStatusResponse holds the status of the node
type NodeStatusResponse struct {
	AppVersion    string                 `json:"appVersion"`
	UptimeSeconds uint64                 `json:"uptimeSeconds"`
	CurrentTime   uint64                 `json:"currentTime"`
	Metrics       map[string]interface{} `json:"metrics"`
	Host          interface{}            `json:"host"`
}
