package facade

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/holiman/uint256"
	"github.com/multiversx/mx-chain-core-go/core"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/hashing"
	"github.com/multiversx/mx-chain-core-go/marshal"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-tax-ledger-go/common"
	"github.com/multiversx/mx-chain-tax-ledger-go/data/api"
	"github.com/multiversx/mx-chain-tax-ledger-go/ledger"
	"github.com/multiversx/mx-chain-tax-ledger-go/ledger/tax"
	"github.com/multiversx/mx-chain-tax-ledger-go/outport"
	vmcommon "github.com/multiversx/mx-chain-vm-common-go"
	"github.com/pkg/errors"
)

// DefaultRestInterface is the default interface the rest API web server will bind on
const DefaultRestInterface = "localhost:8080"

// DefaultRestPortOff is the default value that should be passed if it is desired
// to start the node without a REST endpoint available
const DefaultRestPortOff = "off"

const tokenDecimals = 18

var log = logger.GetOrCreate("facade")

// ArgsLedgerFacade holds the components needed by the ledger facade
type ArgsLedgerFacade struct {
	Ledger           LedgerReader
	Contract         ContractHandler
	CallVerifier     CallVerifier
	StateSaver       StateSaver
	Outport          outport.OutportHandler
	EventsConverter  EventsConverter
	StatusHandler    core.AppStatusHandler
	StatusMetrics    StatusMetricsProvider
	PubKeyConverter  core.PubkeyConverter
	TimeProvider     ledger.TimeProvider
	Hasher           hashing.Hasher
	Marshaller       marshal.Marshalizer
	MetricsHandler   http.Handler
	WebsocketHandler http.Handler
	HostInfo         interface{}
	RestApiInterface string
	ApiDebugMode     bool
	PprofEnabled     bool
}

type ledgerFacade struct {
	mut              sync.RWMutex
	ledger           LedgerReader
	contract         ContractHandler
	callVerifier     CallVerifier
	stateSaver       StateSaver
	outport          outport.OutportHandler
	eventsConverter  EventsConverter
	statusHandler    core.AppStatusHandler
	statusMetrics    StatusMetricsProvider
	pubKeyConverter  core.PubkeyConverter
	timeProvider     ledger.TimeProvider
	hasher           hashing.Hasher
	marshaller       marshal.Marshalizer
	metricsHandler   http.Handler
	websocketHandler http.Handler
	hostInfo         interface{}
	restApiInterface string
	apiDebugMode     bool
	pprofEnabled     bool
	startTime        time.Time
	tokenUnit        *uint256.Int
}

// NewLedgerFacade creates the component that serves the ledger to the REST API
func NewLedgerFacade(args ArgsLedgerFacade) (*ledgerFacade, error) {
	err := checkArgs(args)
	if err != nil {
		return nil, err
	}

	restApiInterface := args.RestApiInterface
	if len(restApiInterface) == 0 {
		restApiInterface = DefaultRestInterface
	}

	lf := &ledgerFacade{
		ledger:           args.Ledger,
		contract:         args.Contract,
		callVerifier:     args.CallVerifier,
		stateSaver:       args.StateSaver,
		outport:          args.Outport,
		eventsConverter:  args.EventsConverter,
		statusHandler:    args.StatusHandler,
		statusMetrics:    args.StatusMetrics,
		pubKeyConverter:  args.PubKeyConverter,
		timeProvider:     args.TimeProvider,
		hasher:           args.Hasher,
		marshaller:       args.Marshaller,
		metricsHandler:   args.MetricsHandler,
		websocketHandler: args.WebsocketHandler,
		hostInfo:         args.HostInfo,
		restApiInterface: restApiInterface,
		apiDebugMode:     args.ApiDebugMode,
		pprofEnabled:     args.PprofEnabled,
		startTime:        time.Now(),
		tokenUnit:        new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(tokenDecimals)),
	}

	lf.statusHandler.SetStringValue(common.MetricAppVersion, common.NodeVersion)
	lf.updateLedgerMetrics()

	return lf, nil
}

func checkArgs(args ArgsLedgerFacade) error {
	if check.IfNil(args.Ledger) {
		return ErrNilLedger
	}
	if check.IfNil(args.Contract) {
		return ErrNilContract
	}
	if check.IfNil(args.CallVerifier) {
		return ErrNilCallVerifier
	}
	if check.IfNil(args.StateSaver) {
		return ErrNilStateSaver
	}
	if check.IfNil(args.Outport) {
		return ErrNilOutport
	}
	if check.IfNil(args.EventsConverter) {
		return ErrNilEventsConverter
	}
	if check.IfNil(args.StatusHandler) {
		return ErrNilStatusHandler
	}
	if check.IfNil(args.StatusMetrics) {
		return ErrNilStatusMetrics
	}
	if check.IfNil(args.PubKeyConverter) {
		return ErrNilPubKeyConverter
	}
	if check.IfNil(args.TimeProvider) {
		return ErrNilTimeProvider
	}
	if check.IfNil(args.Hasher) {
		return ErrNilHasher
	}
	if check.IfNil(args.Marshaller) {
		return ErrNilMarshaller
	}

	return nil
}

// ExecuteCall runs a contract call on the ledger. Calls that change the ledger must be signed by the
// caller with its current nonce; they are persisted, accounted in metrics and pushed to the outport drivers.
func (lf *ledgerFacade) ExecuteCall(request *api.CallRequest) (*api.CallResponse, error) {
	if request == nil {
		return nil, ErrNilCallRequest
	}

	caller, err := lf.decodeAddress(request.Caller)
	if err != nil {
		return nil, err
	}

	arguments := make([][]byte, 0, len(request.Arguments))
	for i, argument := range request.Arguments {
		decoded, errDecode := lf.decodeArgument(argument)
		if errDecode != nil {
			return nil, errors.Wrapf(errDecode, "argument %d", i)
		}
		arguments = append(arguments, decoded)
	}

	input := &vmcommon.ContractCallInput{
		VMInput: vmcommon.VMInput{
			CallerAddr: caller,
			Arguments:  arguments,
			CallValue:  big.NewInt(0),
		},
		RecipientAddr: lf.ledger.SelfAddress(),
		Function:      request.Function,
	}

	if lf.contract.IsReadOnlyFunction(request.Function) {
		lf.mut.RLock()
		defer lf.mut.RUnlock()

		output := lf.contract.Execute(input)
		if output.ReturnCode != vmcommon.Ok {
			lf.statusHandler.Increment(common.MetricNumFailedCalls)
		}

		return lf.createCallResponse(output), nil
	}

	lf.mut.Lock()
	defer lf.mut.Unlock()

	err = lf.callVerifier.Verify(caller, request)
	if err != nil {
		lf.statusHandler.Increment(common.MetricNumFailedCalls)
		log.Debug("ledger call not authenticated", "function", request.Function, "caller", request.Caller, "error", err.Error())

		return nil, fmt.Errorf("%w: %w", ErrUnauthorizedCall, err)
	}

	output := lf.contract.Execute(input)
	err = lf.callVerifier.IncreaseNonce(caller)
	if err != nil {
		log.Error("cannot increase the caller nonce", "caller", request.Caller, "error", err)
	}

	if output.ReturnCode != vmcommon.Ok {
		lf.statusHandler.Increment(common.MetricNumFailedCalls)
		log.Debug("ledger call rejected", "function", request.Function, "code", output.ReturnCode.String(), "message", output.ReturnMessage)

		return lf.createCallResponse(output), nil
	}

	lf.commit(request.Function, caller, output)

	return lf.createCallResponse(output), nil
}

func (lf *ledgerFacade) commit(function string, caller []byte, output *vmcommon.VMOutput) {
	err := lf.stateSaver.SaveState(lf.ledger.Snapshot())
	if err != nil {
		log.Error("cannot persist the ledger state", "function", function, "error", err)
	}

	lf.statusHandler.Increment(common.MetricNumSuccessfulCalls)
	lf.statusHandler.AddUint64(common.MetricNumEvents, uint64(len(output.Logs)))
	lf.statusHandler.SetStringValue(common.MetricLastOperation, function)
	lf.updateLedgerMetrics()

	if len(output.Logs) == 0 || !lf.outport.HasDrivers() {
		return
	}

	batch, err := lf.eventsConverter.Convert(function, caller, lf.timeProvider.CurrentTimestamp(), output.Logs)
	if err != nil {
		log.Warn("cannot convert ledger events", "function", function, "error", err)
		return
	}

	err = lf.outport.SaveEvents(batch)
	if err != nil {
		log.Warn("cannot push ledger events", "function", function, "error", err)
	}
}

func (lf *ledgerFacade) updateLedgerMetrics() {
	wholeTokens := new(uint256.Int).Div(lf.ledger.TotalSupply(), lf.tokenUnit)
	lf.statusHandler.SetUInt64Value(common.MetricTotalSupply, wholeTokens.Uint64())
	lf.statusHandler.SetUInt64Value(common.MetricNumPools, uint64(len(lf.ledger.Pools())))
	lf.statusHandler.SetUInt64Value(common.MetricNumAccounts, uint64(len(lf.ledger.Snapshot().Balances)))

	rates := lf.ledger.ActiveRates()
	lf.statusHandler.SetUInt64Value(common.MetricTransferRate, uint64(rates.TransferBp))
	lf.statusHandler.SetUInt64Value(common.MetricSellRate, uint64(rates.SellBp))
	lf.statusHandler.SetUInt64Value(common.MetricBuyRate, uint64(rates.BuyBp))

	_, hasPendingTax := lf.ledger.PendingTaxChange()
	lf.statusHandler.SetUInt64Value(common.MetricPendingTaxChange, boolToUint64(hasPendingTax))
	_, hasPendingMint := lf.ledger.PendingMint()
	lf.statusHandler.SetUInt64Value(common.MetricPendingMint, boolToUint64(hasPendingMint))
}

func (lf *ledgerFacade) createCallResponse(output *vmcommon.VMOutput) *api.CallResponse {
	response := &api.CallResponse{
		ReturnCode:    output.ReturnCode.String(),
		ReturnMessage: output.ReturnMessage,
		ReturnData:    make([]string, 0, len(output.ReturnData)),
		Events:        make([]*api.CallEvent, 0, len(output.Logs)),
	}

	for _, data := range output.ReturnData {
		response.ReturnData = append(response.ReturnData, hex.EncodeToString(data))
	}
	for _, entry := range output.Logs {
		event := &api.CallEvent{
			Identifier: string(entry.Identifier),
			Topics:     make([]string, 0, len(entry.Topics)),
		}
		for _, topic := range entry.Topics {
			event.Topics = append(event.Topics, hex.EncodeToString(topic))
		}
		response.Events = append(response.Events, event)
	}

	return response
}

// GetSupply returns the supply related values of the ledger
func (lf *ledgerFacade) GetSupply() *api.SupplyResponse {
	lf.mut.RLock()
	defer lf.mut.RUnlock()

	return &api.SupplyResponse{
		TotalSupply:      lf.ledger.TotalSupply().Dec(),
		MaxSupply:        lf.ledger.MaxSupply().Dec(),
		MintCapPerPeriod: lf.ledger.MintCapPerPeriod().Dec(),
	}
}

// GetAccount returns the ledger view of the provided bech32 address
func (lf *ledgerFacade) GetAccount(address string) (*api.AccountResponse, error) {
	account, err := lf.decodeAddress(address)
	if err != nil {
		return nil, err
	}

	lf.mut.RLock()
	defer lf.mut.RUnlock()

	nonce, err := lf.callVerifier.Nonce(account)
	if err != nil {
		return nil, err
	}

	return &api.AccountResponse{
		Address:        address,
		Balance:        lf.ledger.BalanceOf(account).Dec(),
		Delegate:       lf.encodeAddress(lf.ledger.Delegates(account)),
		Votes:          lf.ledger.GetVotes(account).Dec(),
		NumCheckpoints: lf.ledger.NumCheckpoints(account),
		IsPool:         lf.ledger.IsPool(account),
		Nonce:          nonce,
	}, nil
}

// GetAllowance returns the amount the spender can still move on behalf of the owner
func (lf *ledgerFacade) GetAllowance(owner string, spender string) (string, error) {
	ownerAddress, err := lf.decodeAddress(owner)
	if err != nil {
		return "", err
	}
	spenderAddress, err := lf.decodeAddress(spender)
	if err != nil {
		return "", err
	}

	lf.mut.RLock()
	defer lf.mut.RUnlock()

	return lf.ledger.Allowance(ownerAddress, spenderAddress).Dec(), nil
}

// GetTax returns the tax policy state
func (lf *ledgerFacade) GetTax() *api.TaxResponse {
	lf.mut.RLock()
	defer lf.mut.RUnlock()

	feeRecipient := lf.ledger.FeeRecipient()
	response := &api.TaxResponse{
		Active:          toApiRates(lf.ledger.ActiveRates()),
		FeeRecipient:    lf.encodeAddress(feeRecipient),
		BurnMode:        common.IsZeroAddress(feeRecipient),
		StrategyVersion: lf.ledger.StrategyVersion(),
	}

	pending, found := lf.ledger.PendingTaxChange()
	if found {
		response.Pending = &api.PendingTaxChange{
			Rates:       toApiRates(pending.Rates),
			EffectiveAt: pending.EffectiveAt,
		}
	}

	return response
}

// GetMint returns the mint limiter state
func (lf *ledgerFacade) GetMint() *api.MintResponse {
	lf.mut.RLock()
	defer lf.mut.RUnlock()

	window := lf.ledger.MintWindow()
	response := &api.MintResponse{
		WindowStart:    window.Start,
		MintedInWindow: window.Minted.Dec(),
		CapPerPeriod:   lf.ledger.MintCapPerPeriod().Dec(),
	}

	pending, found := lf.ledger.PendingMint()
	if found {
		response.Pending = &api.PendingMint{
			To:          lf.encodeAddress(pending.To),
			Amount:      pending.Amount.Dec(),
			EffectiveAt: pending.EffectiveAt,
		}
	}

	return response
}

// GetPools returns the registered pools, as bech32 addresses
func (lf *ledgerFacade) GetPools() []string {
	lf.mut.RLock()
	defer lf.mut.RUnlock()

	pools := lf.ledger.Pools()
	encoded := make([]string, 0, len(pools))
	for _, pool := range pools {
		encoded = append(encoded, lf.encodeAddress(pool))
	}

	return encoded
}

// GetGovernance returns the governance address
func (lf *ledgerFacade) GetGovernance() string {
	lf.mut.RLock()
	defer lf.mut.RUnlock()

	return lf.encodeAddress(lf.ledger.Governance())
}

// GetVotes returns the current votes of the provided address
func (lf *ledgerFacade) GetVotes(address string) (string, error) {
	account, err := lf.decodeAddress(address)
	if err != nil {
		return "", err
	}

	lf.mut.RLock()
	defer lf.mut.RUnlock()

	return lf.ledger.GetVotes(account).Dec(), nil
}

// GetPastVotes returns the votes the provided address had at the given timestamp
func (lf *ledgerFacade) GetPastVotes(address string, timestamp uint64) (string, error) {
	account, err := lf.decodeAddress(address)
	if err != nil {
		return "", err
	}

	lf.mut.RLock()
	defer lf.mut.RUnlock()

	votes, err := lf.ledger.GetPastVotes(account, timestamp)
	if err != nil {
		return "", err
	}

	return votes.Dec(), nil
}

// GetPastTotalSupply returns the total supply at the given timestamp
func (lf *ledgerFacade) GetPastTotalSupply(timestamp uint64) (string, error) {
	lf.mut.RLock()
	defer lf.mut.RUnlock()

	supply, err := lf.ledger.GetPastTotalSupply(timestamp)
	if err != nil {
		return "", err
	}

	return supply.Dec(), nil
}

// GetCheckpoints returns the votes history of the provided address
func (lf *ledgerFacade) GetCheckpoints(address string) ([]*api.Checkpoint, error) {
	account, err := lf.decodeAddress(address)
	if err != nil {
		return nil, err
	}

	lf.mut.RLock()
	defer lf.mut.RUnlock()

	list := lf.ledger.Checkpoints(account)
	result := make([]*api.Checkpoint, 0, len(list))
	for _, checkpoint := range list {
		result = append(result, &api.Checkpoint{
			Timestamp: checkpoint.Timestamp,
			Value:     checkpoint.Value.Dec(),
		})
	}

	return result, nil
}

// GetState returns the full ledger state together with its hash
func (lf *ledgerFacade) GetState() (*api.StateResponse, error) {
	lf.mut.RLock()
	snapshot := lf.ledger.Snapshot()
	lf.mut.RUnlock()

	buff, err := lf.marshaller.Marshal(snapshot)
	if err != nil {
		return nil, err
	}

	return &api.StateResponse{
		Hash:  hex.EncodeToString(lf.hasher.Compute(string(buff))),
		State: snapshot,
	}, nil
}

// GetNodeStatus returns the status of the node
func (lf *ledgerFacade) GetNodeStatus() *api.NodeStatusResponse {
	return &api.NodeStatusResponse{
		AppVersion:    common.NodeVersion,
		UptimeSeconds: uint64(time.Since(lf.startTime).Seconds()),
		CurrentTime:   lf.timeProvider.CurrentTimestamp(),
		Metrics:       lf.statusMetrics.GetMetrics(),
		Host:          lf.hostInfo,
	}
}

// GetLogLines returns the most recent log lines of the node
func (lf *ledgerFacade) GetLogLines() []string {
	return lf.statusMetrics.GetLogLines()
}

// MetricsHandler returns the prometheus metrics handler, if any
func (lf *ledgerFacade) MetricsHandler() http.Handler {
	return lf.metricsHandler
}

// EventsWebsocketHandler returns the handler of the events stream
func (lf *ledgerFacade) EventsWebsocketHandler() (http.Handler, error) {
	if lf.websocketHandler == nil {
		return nil, ErrWebsocketDisabled
	}

	return lf.websocketHandler, nil
}

// RestApiInterface returns the interface on which the rest API should start on, based on the flags provided.
// The API will start on the DefaultRestInterface value unless a correct value is passed or
// the value is explicitly set to off, in which case it will not start at all
func (lf *ledgerFacade) RestApiInterface() string {
	return lf.restApiInterface
}

// RestAPIServerDebugMode returns true if the rest API server should run in debug mode
func (lf *ledgerFacade) RestAPIServerDebugMode() bool {
	return lf.apiDebugMode
}

// PprofEnabled returns if profiling mode should be active or not on the application
func (lf *ledgerFacade) PprofEnabled() bool {
	return lf.pprofEnabled
}

// Close closes the outport drivers
func (lf *ledgerFacade) Close() error {
	return lf.outport.Close()
}

// IsInterfaceNil returns true if there is no value under the interface
func (lf *ledgerFacade) IsInterfaceNil() bool {
	return lf == nil
}

func (lf *ledgerFacade) decodeAddress(address string) ([]byte, error) {
	decoded, err := lf.pubKeyConverter.Decode(address)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidAddress, "%s: %s", address, err.Error())
	}

	return decoded, nil
}

func (lf *ledgerFacade) decodeArgument(argument string) ([]byte, error) {
	decoded, err := lf.pubKeyConverter.Decode(argument)
	if err == nil {
		return decoded, nil
	}

	decoded, err = hex.DecodeString(argument)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidArgument, err.Error())
	}

	return decoded, nil
}

func (lf *ledgerFacade) encodeAddress(address []byte) string {
	if len(address) == 0 {
		address = common.ZeroAddress()
	}

	encoded, err := lf.pubKeyConverter.Encode(address)
	if err != nil {
		log.Warn("cannot encode address", "address", hex.EncodeToString(address), "error", err)
		return ""
	}

	return encoded
}

func toApiRates(rates tax.Rates) api.TaxRates {
	return api.TaxRates{
		TransferBp: rates.TransferBp,
		SellBp:     rates.SellBp,
		BuyBp:      rates.BuyBp,
	}
}

func boolToUint64(value bool) uint64 {
	if value {
		return 1
	}

	return 0
}
