package vm

import (
	"math"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-tax-ledger-go/common"
	"github.com/multiversx/mx-chain-tax-ledger-go/ledger/tax"
	vmcommon "github.com/multiversx/mx-chain-vm-common-go"
)

var log = logger.GetOrCreate("vm")

var zero = big.NewInt(0)

type contractFunction func(args *vmcommon.ContractCallInput, out *outputContext) vmcommon.ReturnCode

// ArgsNewLedgerContract defines the arguments needed for the ledger contract
type ArgsNewLedgerContract struct {
	Ledger LedgerHandler
	Logs   LogsSource
}

type ledgerContract struct {
	ledger    LedgerHandler
	logs      LogsSource
	functions map[string]contractFunction
}

var readOnlyFunctions = map[string]struct{}{
	"isPool":             {},
	"balanceOf":          {},
	"totalSupply":        {},
	"allowance":          {},
	"delegates":          {},
	"getVotes":           {},
	"getPastVotes":       {},
	"getPastTotalSupply": {},
}

// NewLedgerContract creates the contract call adapter of the token ledger
func NewLedgerContract(args ArgsNewLedgerContract) (*ledgerContract, error) {
	if check.IfNil(args.Ledger) {
		return nil, ErrNilLedger
	}
	if check.IfNil(args.Logs) {
		return nil, ErrNilLogsCollector
	}

	lc := &ledgerContract{
		ledger: args.Ledger,
		logs:   args.Logs,
	}
	lc.functions = map[string]contractFunction{
		"transfer":           lc.transfer,
		"transferFrom":       lc.transferFrom,
		"approve":            lc.approve,
		"burn":               lc.burn,
		"burnFrom":           lc.burnFrom,
		"addPool":            lc.addPool,
		"removePool":         lc.removePool,
		"proposeTaxChange":   lc.proposeTaxChange,
		"applyTaxChange":     lc.applyTaxChange,
		"cancelTaxChange":    lc.cancelTaxChange,
		"setTaxesImmediate":  lc.setTaxesImmediate,
		"setFeeRecipient":    lc.setFeeRecipient,
		"proposeMint":        lc.proposeMint,
		"executeMint":        lc.executeMint,
		"cancelMint":         lc.cancelMint,
		"setGovernance":      lc.setGovernance,
		"upgradeStrategy":    lc.upgradeStrategy,
		"delegate":           lc.delegate,
		"isPool":             lc.isPool,
		"balanceOf":          lc.balanceOf,
		"totalSupply":        lc.totalSupply,
		"allowance":          lc.allowance,
		"delegates":          lc.delegates,
		"getVotes":           lc.getVotes,
		"getPastVotes":       lc.getPastVotes,
		"getPastTotalSupply": lc.getPastTotalSupply,
	}

	return lc, nil
}

// Execute calls one of the functions of the ledger contract and returns the output of the call
func (lc *ledgerContract) Execute(args *vmcommon.ContractCallInput) *vmcommon.VMOutput {
	out := newOutputContext()
	err := checkIfNil(args)
	if err != nil {
		out.AddReturnMessage(err.Error())
		return out.createVMOutput(vmcommon.UserError, nil)
	}

	function, found := lc.functions[args.Function]
	if !found {
		out.AddReturnMessage("invalid function to call")
		return out.createVMOutput(vmcommon.FunctionNotFound, nil)
	}
	if args.CallValue != nil && args.CallValue.Cmp(zero) != 0 {
		out.AddReturnMessage(ErrCallValueMustBeZero.Error())
		return out.createVMOutput(vmcommon.UserError, nil)
	}

	if lc.IsReadOnlyFunction(args.Function) {
		returnCode := function(args, out)
		return out.createVMOutput(returnCode, nil)
	}

	lc.logs.Reset()
	returnCode := function(args, out)

	var logs []*vmcommon.LogEntry
	if returnCode == vmcommon.Ok {
		logs = createLogEntries(lc.logs.Events())
	}
	lc.logs.Reset()

	log.Trace("ledger contract executed", "function", args.Function, "return code", returnCode.String(), "num logs", len(logs))

	return out.createVMOutput(returnCode, logs)
}

// Functions returns the names of all the callable functions
func (lc *ledgerContract) Functions() []string {
	names := make([]string, 0, len(lc.functions))
	for name := range lc.functions {
		names = append(names, name)
	}

	return names
}

// IsReadOnlyFunction returns true if the named function never changes the ledger state
func (lc *ledgerContract) IsReadOnlyFunction(function string) bool {
	_, found := readOnlyFunctions[function]
	return found
}

// IsInterfaceNil returns true if there is no value under the interface
func (lc *ledgerContract) IsInterfaceNil() bool {
	return lc == nil
}

func (lc *ledgerContract) transfer(args *vmcommon.ContractCallInput, out *outputContext) vmcommon.ReturnCode {
	if !checkNumArguments(args, 2, out) {
		return vmcommon.FunctionWrongSignature
	}
	amount, ok := parseAmount(args.Arguments[1], out)
	if !ok {
		return vmcommon.FunctionWrongSignature
	}

	return handleLedgerError(lc.ledger.Transfer(args.CallerAddr, args.Arguments[0], amount), out)
}

func (lc *ledgerContract) transferFrom(args *vmcommon.ContractCallInput, out *outputContext) vmcommon.ReturnCode {
	if !checkNumArguments(args, 3, out) {
		return vmcommon.FunctionWrongSignature
	}
	amount, ok := parseAmount(args.Arguments[2], out)
	if !ok {
		return vmcommon.FunctionWrongSignature
	}

	err := lc.ledger.TransferFrom(args.CallerAddr, args.Arguments[0], args.Arguments[1], amount)
	return handleLedgerError(err, out)
}

func (lc *ledgerContract) approve(args *vmcommon.ContractCallInput, out *outputContext) vmcommon.ReturnCode {
	if !checkNumArguments(args, 2, out) {
		return vmcommon.FunctionWrongSignature
	}
	amount, ok := parseAmount(args.Arguments[1], out)
	if !ok {
		return vmcommon.FunctionWrongSignature
	}

	return handleLedgerError(lc.ledger.Approve(args.CallerAddr, args.Arguments[0], amount), out)
}

func (lc *ledgerContract) burn(args *vmcommon.ContractCallInput, out *outputContext) vmcommon.ReturnCode {
	if !checkNumArguments(args, 1, out) {
		return vmcommon.FunctionWrongSignature
	}
	amount, ok := parseAmount(args.Arguments[0], out)
	if !ok {
		return vmcommon.FunctionWrongSignature
	}

	return handleLedgerError(lc.ledger.Burn(args.CallerAddr, amount), out)
}

func (lc *ledgerContract) burnFrom(args *vmcommon.ContractCallInput, out *outputContext) vmcommon.ReturnCode {
	if !checkNumArguments(args, 2, out) {
		return vmcommon.FunctionWrongSignature
	}
	amount, ok := parseAmount(args.Arguments[1], out)
	if !ok {
		return vmcommon.FunctionWrongSignature
	}

	return handleLedgerError(lc.ledger.BurnFrom(args.CallerAddr, args.Arguments[0], amount), out)
}

func (lc *ledgerContract) addPool(args *vmcommon.ContractCallInput, out *outputContext) vmcommon.ReturnCode {
	if !checkNumArguments(args, 1, out) {
		return vmcommon.FunctionWrongSignature
	}

	return handleLedgerError(lc.ledger.AddPool(args.CallerAddr, args.Arguments[0]), out)
}

func (lc *ledgerContract) removePool(args *vmcommon.ContractCallInput, out *outputContext) vmcommon.ReturnCode {
	if !checkNumArguments(args, 1, out) {
		return vmcommon.FunctionWrongSignature
	}

	return handleLedgerError(lc.ledger.RemovePool(args.CallerAddr, args.Arguments[0]), out)
}

func (lc *ledgerContract) proposeTaxChange(args *vmcommon.ContractCallInput, out *outputContext) vmcommon.ReturnCode {
	rates, ok := parseRates(args, out)
	if !ok {
		return vmcommon.FunctionWrongSignature
	}

	return handleLedgerError(lc.ledger.ProposeTaxChange(args.CallerAddr, rates), out)
}

func (lc *ledgerContract) applyTaxChange(args *vmcommon.ContractCallInput, out *outputContext) vmcommon.ReturnCode {
	if !checkNumArguments(args, 0, out) {
		return vmcommon.FunctionWrongSignature
	}

	return handleLedgerError(lc.ledger.ApplyTaxChange(args.CallerAddr), out)
}

func (lc *ledgerContract) cancelTaxChange(args *vmcommon.ContractCallInput, out *outputContext) vmcommon.ReturnCode {
	if !checkNumArguments(args, 0, out) {
		return vmcommon.FunctionWrongSignature
	}

	return handleLedgerError(lc.ledger.CancelTaxChange(args.CallerAddr), out)
}

func (lc *ledgerContract) setTaxesImmediate(args *vmcommon.ContractCallInput, out *outputContext) vmcommon.ReturnCode {
	rates, ok := parseRates(args, out)
	if !ok {
		return vmcommon.FunctionWrongSignature
	}

	return handleLedgerError(lc.ledger.SetTaxesImmediate(args.CallerAddr, rates), out)
}

func (lc *ledgerContract) setFeeRecipient(args *vmcommon.ContractCallInput, out *outputContext) vmcommon.ReturnCode {
	if !checkNumArguments(args, 1, out) {
		return vmcommon.FunctionWrongSignature
	}

	return handleLedgerError(lc.ledger.SetFeeRecipient(args.CallerAddr, args.Arguments[0]), out)
}

func (lc *ledgerContract) proposeMint(args *vmcommon.ContractCallInput, out *outputContext) vmcommon.ReturnCode {
	if !checkNumArguments(args, 2, out) {
		return vmcommon.FunctionWrongSignature
	}
	amount, ok := parseAmount(args.Arguments[1], out)
	if !ok {
		return vmcommon.FunctionWrongSignature
	}

	return handleLedgerError(lc.ledger.ProposeMint(args.CallerAddr, args.Arguments[0], amount), out)
}

func (lc *ledgerContract) executeMint(args *vmcommon.ContractCallInput, out *outputContext) vmcommon.ReturnCode {
	if !checkNumArguments(args, 0, out) {
		return vmcommon.FunctionWrongSignature
	}

	return handleLedgerError(lc.ledger.ExecuteMint(args.CallerAddr), out)
}

func (lc *ledgerContract) cancelMint(args *vmcommon.ContractCallInput, out *outputContext) vmcommon.ReturnCode {
	if !checkNumArguments(args, 0, out) {
		return vmcommon.FunctionWrongSignature
	}

	return handleLedgerError(lc.ledger.CancelMint(args.CallerAddr), out)
}

func (lc *ledgerContract) setGovernance(args *vmcommon.ContractCallInput, out *outputContext) vmcommon.ReturnCode {
	if !checkNumArguments(args, 1, out) {
		return vmcommon.FunctionWrongSignature
	}

	return handleLedgerError(lc.ledger.SetGovernance(args.CallerAddr, args.Arguments[0]), out)
}

func (lc *ledgerContract) upgradeStrategy(args *vmcommon.ContractCallInput, out *outputContext) vmcommon.ReturnCode {
	if !checkNumArguments(args, 1, out) {
		return vmcommon.FunctionWrongSignature
	}
	version, ok := parseUint64(args.Arguments[0], math.MaxUint32, out)
	if !ok {
		return vmcommon.FunctionWrongSignature
	}

	strategy, err := tax.NewStrategyForVersion(uint32(version))
	if err != nil {
		out.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	return handleLedgerError(lc.ledger.UpgradeStrategy(args.CallerAddr, strategy), out)
}

func (lc *ledgerContract) delegate(args *vmcommon.ContractCallInput, out *outputContext) vmcommon.ReturnCode {
	if !checkNumArguments(args, 1, out) {
		return vmcommon.FunctionWrongSignature
	}

	return handleLedgerError(lc.ledger.Delegate(args.CallerAddr, args.Arguments[0]), out)
}

func (lc *ledgerContract) isPool(args *vmcommon.ContractCallInput, out *outputContext) vmcommon.ReturnCode {
	if !checkNumArguments(args, 1, out) {
		return vmcommon.FunctionWrongSignature
	}

	if lc.ledger.IsPool(args.Arguments[0]) {
		out.Finish([]byte{1})
	} else {
		out.Finish([]byte{0})
	}

	return vmcommon.Ok
}

func (lc *ledgerContract) balanceOf(args *vmcommon.ContractCallInput, out *outputContext) vmcommon.ReturnCode {
	if !checkNumArguments(args, 1, out) {
		return vmcommon.FunctionWrongSignature
	}

	out.Finish(lc.ledger.BalanceOf(args.Arguments[0]).Bytes())
	return vmcommon.Ok
}

func (lc *ledgerContract) totalSupply(args *vmcommon.ContractCallInput, out *outputContext) vmcommon.ReturnCode {
	if !checkNumArguments(args, 0, out) {
		return vmcommon.FunctionWrongSignature
	}

	out.Finish(lc.ledger.TotalSupply().Bytes())
	return vmcommon.Ok
}

func (lc *ledgerContract) allowance(args *vmcommon.ContractCallInput, out *outputContext) vmcommon.ReturnCode {
	if !checkNumArguments(args, 2, out) {
		return vmcommon.FunctionWrongSignature
	}

	out.Finish(lc.ledger.Allowance(args.Arguments[0], args.Arguments[1]).Bytes())
	return vmcommon.Ok
}

func (lc *ledgerContract) delegates(args *vmcommon.ContractCallInput, out *outputContext) vmcommon.ReturnCode {
	if !checkNumArguments(args, 1, out) {
		return vmcommon.FunctionWrongSignature
	}

	delegatee := lc.ledger.Delegates(args.Arguments[0])
	if delegatee == nil {
		delegatee = common.ZeroAddress()
	}

	out.Finish(delegatee)
	return vmcommon.Ok
}

func (lc *ledgerContract) getVotes(args *vmcommon.ContractCallInput, out *outputContext) vmcommon.ReturnCode {
	if !checkNumArguments(args, 1, out) {
		return vmcommon.FunctionWrongSignature
	}

	out.Finish(lc.ledger.GetVotes(args.Arguments[0]).Bytes())
	return vmcommon.Ok
}

func (lc *ledgerContract) getPastVotes(args *vmcommon.ContractCallInput, out *outputContext) vmcommon.ReturnCode {
	if !checkNumArguments(args, 2, out) {
		return vmcommon.FunctionWrongSignature
	}
	timestamp, ok := parseUint64(args.Arguments[1], math.MaxUint64, out)
	if !ok {
		return vmcommon.FunctionWrongSignature
	}

	votes, err := lc.ledger.GetPastVotes(args.Arguments[0], timestamp)
	if err != nil {
		return handleLedgerError(err, out)
	}

	out.Finish(votes.Bytes())
	return vmcommon.Ok
}

func (lc *ledgerContract) getPastTotalSupply(args *vmcommon.ContractCallInput, out *outputContext) vmcommon.ReturnCode {
	if !checkNumArguments(args, 1, out) {
		return vmcommon.FunctionWrongSignature
	}
	timestamp, ok := parseUint64(args.Arguments[0], math.MaxUint64, out)
	if !ok {
		return vmcommon.FunctionWrongSignature
	}

	supply, err := lc.ledger.GetPastTotalSupply(timestamp)
	if err != nil {
		return handleLedgerError(err, out)
	}

	out.Finish(supply.Bytes())
	return vmcommon.Ok
}

func checkIfNil(args *vmcommon.ContractCallInput) error {
	if args == nil {
		return ErrInputArgsIsNil
	}
	if args.CallerAddr == nil {
		return ErrInputCallerAddrIsNil
	}
	if len(args.Function) == 0 {
		return ErrInputFunctionIsNil
	}

	return nil
}

func checkNumArguments(args *vmcommon.ContractCallInput, expected int, out *outputContext) bool {
	if len(args.Arguments) != expected {
		out.AddReturnMessage(ErrInvalidNumOfArguments.Error())
		return false
	}

	return true
}

func parseAmount(arg []byte, out *outputContext) (*uint256.Int, bool) {
	if len(arg) > 32 {
		out.AddReturnMessage(ErrArgumentTooLong.Error())
		return nil, false
	}

	return new(uint256.Int).SetBytes(arg), true
}

func parseUint64(arg []byte, maxValue uint64, out *outputContext) (uint64, bool) {
	value := big.NewInt(0).SetBytes(arg)
	if !value.IsUint64() || value.Uint64() > maxValue {
		out.AddReturnMessage(ErrArgumentTooLong.Error())
		return 0, false
	}

	return value.Uint64(), true
}

func parseRates(args *vmcommon.ContractCallInput, out *outputContext) (tax.Rates, bool) {
	if !checkNumArguments(args, 3, out) {
		return tax.Rates{}, false
	}

	values := make([]uint32, 0, 3)
	for _, arg := range args.Arguments {
		value, ok := parseUint64(arg, math.MaxUint32, out)
		if !ok {
			return tax.Rates{}, false
		}
		values = append(values, uint32(value))
	}

	return tax.Rates{TransferBp: values[0], SellBp: values[1], BuyBp: values[2]}, true
}

// handleLedgerError maps a ledger error on a return code, exposing the stable reason tag as return message
func handleLedgerError(err error, out *outputContext) vmcommon.ReturnCode {
	if err == nil {
		return vmcommon.Ok
	}

	tag := common.ReasonTag(err)
	if len(tag) == 0 {
		log.Debug("ledger contract execution failed", "error", err.Error())
		out.AddReturnMessage(err.Error())
		return vmcommon.ExecutionFailed
	}

	out.AddReturnMessage(tag)
	if common.CategoryOf(err) == common.CategoryBalanceAllowance {
		return vmcommon.OutOfFunds
	}

	return vmcommon.UserError
}
