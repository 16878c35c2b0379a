package main

import (
	"testing"

	"github.com/multiversx/mx-chain-core-go/core/pubkeyConverter"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-tax-ledger-go/common"
	"github.com/multiversx/mx-chain-tax-ledger-go/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

var testLog = logger.GetOrCreate("main_test")

func runWithFlags(t *testing.T, args []string, handler func(ctx *cli.Context) error) {
	app := cli.NewApp()
	app.Flags = getFlags()
	app.Action = handler

	err := app.Run(append([]string{"ledgernode"}, args...))
	require.Nil(t, err)
}

func TestShippedConfigs(t *testing.T) {
	t.Parallel()

	generalConfig, err := config.LoadMainConfig("./config/config.toml")
	require.Nil(t, err)
	require.Nil(t, config.SanityCheckConfig(generalConfig))

	converter, err := pubkeyConverter.NewBech32PubkeyConverter(common.AddressLen, common.AddressHRP)
	require.Nil(t, err)

	addresses := []string{
		generalConfig.Ledger.SelfAddress,
		generalConfig.Ledger.Governance,
		generalConfig.Ledger.FeeRecipient,
	}
	for _, genesisBalance := range generalConfig.Ledger.Genesis {
		addresses = append(addresses, genesisBalance.Address)
	}
	for _, address := range addresses {
		_, err = converter.Decode(address)
		assert.Nil(t, err, address)
	}

	apiConfig, err := config.LoadApiConfig("./config/api.toml")
	require.Nil(t, err)
	for _, group := range []string{"ledger", "votes", "node", "events"} {
		assert.NotEmpty(t, apiConfig.APIPackages[group].Routes, group)
	}
}

func TestApplyFlags(t *testing.T) {
	t.Parallel()

	args := []string{
		"--config-override", "config.toml:Ledger.InitialRates.SellBp=250",
		"--config-override", "api.toml:Logging.LoggingEnabled=true",
		"--use-memory-db",
		"--rest-api-interface", "off",
		"--working-directory", "/tmp/ledger",
	}

	runWithFlags(t, args, func(ctx *cli.Context) error {
		generalConfig, err := config.LoadMainConfig("./config/config.toml")
		require.Nil(t, err)
		apiConfig, err := config.LoadApiConfig("./config/api.toml")
		require.Nil(t, err)

		cfgs := &config.Configs{
			GeneralConfig:   generalConfig,
			ApiRoutesConfig: apiConfig,
			FlagsConfig:     getFlagsConfig(ctx, testLog, "v0.0.1"),
		}
		err = applyFlags(ctx, cfgs, testLog)
		require.Nil(t, err)

		assert.Equal(t, uint32(250), cfgs.GeneralConfig.Ledger.InitialRates.SellBp)
		assert.True(t, cfgs.ApiRoutesConfig.Logging.LoggingEnabled)
		assert.Equal(t, memoryDBType, cfgs.GeneralConfig.Storage.DB.Type)
		assert.Equal(t, "off", cfgs.FlagsConfig.RestApiInterface)
		assert.Equal(t, "/tmp/ledger", cfgs.FlagsConfig.WorkingDir)
		assert.Equal(t, "v0.0.1", cfgs.FlagsConfig.Version)

		return nil
	})
}

func TestApplyFlags_InvalidOverride(t *testing.T) {
	t.Parallel()

	runWithFlags(t, []string{"--config-override", "config.toml"}, func(ctx *cli.Context) error {
		cfgs := &config.Configs{
			GeneralConfig:   &config.Config{},
			ApiRoutesConfig: &config.ApiRoutesConfig{},
		}
		err := applyFlags(ctx, cfgs, testLog)
		assert.NotNil(t, err)

		return nil
	})
}
