package node

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/multiversx/mx-chain-core-go/core"
	"github.com/multiversx/mx-chain-tax-ledger-go/common"
	"github.com/multiversx/mx-chain-tax-ledger-go/config"
	"github.com/multiversx/mx-chain-tax-ledger-go/ledger"
	"github.com/multiversx/mx-chain-tax-ledger-go/ledger/tax"
)

// createLedgerArgs decodes the ledger config. A saved state, if provided, takes precedence over the
// genesis section and selects the tax strategy.
func createLedgerArgs(
	cfg config.LedgerConfig,
	pubKeyConverter core.PubkeyConverter,
	state *ledger.StateSnapshot,
) (ledger.ArgsNewTokenLedger, error) {
	args := ledger.ArgsNewTokenLedger{
		State: state,
		InitialRates: tax.Rates{
			TransferBp: cfg.InitialRates.TransferBp,
			SellBp:     cfg.InitialRates.SellBp,
			BuyBp:      cfg.InitialRates.BuyBp,
		},
	}

	var err error
	args.SelfAddress, err = decodeConfigAddress(pubKeyConverter, "SelfAddress", cfg.SelfAddress)
	if err != nil {
		return args, err
	}
	args.Governance, err = decodeConfigAddress(pubKeyConverter, "Governance", cfg.Governance)
	if err != nil {
		return args, err
	}
	args.FeeRecipient, err = decodeConfigAddress(pubKeyConverter, "FeeRecipient", cfg.FeeRecipient)
	if err != nil {
		return args, err
	}
	args.MaxSupply, err = decodeConfigAmount("MaxSupply", cfg.MaxSupply, common.DefaultMaxSupply)
	if err != nil {
		return args, err
	}
	args.MintCapPerPeriod, err = decodeConfigAmount("MintCapPerPeriod", cfg.MintCapPerPeriod, common.DefaultMintCapPerPeriod)
	if err != nil {
		return args, err
	}

	strategyVersion := cfg.StrategyVersion
	if state != nil {
		strategyVersion = state.StrategyVersion
	}
	if strategyVersion == 0 {
		strategyVersion = tax.StandardStrategyVersion
	}
	args.Strategy, err = tax.NewStrategyForVersion(strategyVersion)
	if err != nil {
		return args, err
	}

	if state != nil {
		return args, nil
	}

	args.Genesis = make([]ledger.GenesisBalance, 0, len(cfg.Genesis))
	for i, genesisBalance := range cfg.Genesis {
		address, errDecode := decodeConfigAddress(pubKeyConverter, fmt.Sprintf("Genesis[%d].Address", i), genesisBalance.Address)
		if errDecode != nil {
			return args, errDecode
		}
		amount, errDecode := decodeConfigAmount(fmt.Sprintf("Genesis[%d].Amount", i), genesisBalance.Amount, "")
		if errDecode != nil {
			return args, errDecode
		}

		args.Genesis = append(args.Genesis, ledger.GenesisBalance{
			Address: address,
			Amount:  amount,
		})
	}

	return args, nil
}

func decodeConfigAddress(pubKeyConverter core.PubkeyConverter, name string, value string) ([]byte, error) {
	address, err := pubKeyConverter.Decode(value)
	if err != nil {
		return nil, fmt.Errorf("%w, %s: %s", ErrInvalidLedgerConfig, name, err.Error())
	}

	return address, nil
}

func decodeConfigAmount(name string, value string, defaultValue string) (*uint256.Int, error) {
	if len(value) == 0 {
		value = defaultValue
	}

	amount, err := uint256.FromDecimal(value)
	if err != nil {
		return nil, fmt.Errorf("%w, %s: %s", ErrInvalidLedgerConfig, name, err.Error())
	}

	return amount, nil
}
