package main

import (
	"os"

	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-tax-ledger-go/config"
	"github.com/multiversx/mx-chain-tax-ledger-go/config/overridableConfig"
	"github.com/multiversx/mx-chain-tax-ledger-go/facade"
	"github.com/urfave/cli"
)

const memoryDBType = "MemoryDB"

var (
	filePathPlaceholder = "[path]"
	// configurationFile defines a flag for the path to the main toml configuration file
	configurationFile = cli.StringFlag{
		Name: "config",
		Usage: "The `" + filePathPlaceholder + "` for the main configuration file. This TOML file contains the ledger " +
			"parameters, the genesis balances, the storage setup and so on.",
		Value: "./config/config.toml",
	}
	// configurationApiFile defines a flag for the path to the api routes toml configuration file
	configurationApiFile = cli.StringFlag{
		Name:  "config-api",
		Usage: "The `" + filePathPlaceholder + "` for the api configuration file. This TOML file contains " +
			"all available routes for Rest API and options to enable or disable them.",
		Value: "./config/api.toml",
	}
	// configOverride defines a repeatable flag that replaces a single value of a loaded config file
	configOverride = cli.StringSliceFlag{
		Name: "config-override",
		Usage: "Overrides a config value. Format: `file:Path.To.Field=value`, for example " +
			"config.toml:Ledger.InitialRates.SellBp=200. Can be repeated.",
	}
	// restApiInterface defines a flag for the interface on which the rest API will try to bind with
	restApiInterface = cli.StringFlag{
		Name: "rest-api-interface",
		Usage: "The interface `address and port` to which the REST API will attempt to bind. " +
			"To bind to all available interfaces, set this flag to :8080. Use `off` to disable the REST API.",
		Value: facade.DefaultRestInterface,
	}
	// restApiDebug defines a flag for starting the gin web server in debug mode
	restApiDebug = cli.BoolFlag{
		Name:  "rest-api-debug",
		Usage: "Boolean option for starting the Rest API in debug mode.",
	}
	// logLevel defines the logger level
	logLevel = cli.StringFlag{
		Name: "log-level",
		Usage: "This flag specifies the logger `level(s)`. It can contain multiple comma-separated value. For example" +
			", if set to *:INFO the logs for all packages will have the INFO level. However, if set to *:INFO,api:DEBUG" +
			" the logs for all packages will have the INFO level, excepting the api package which will receive a DEBUG" +
			" log level.",
		Value: "*:" + logger.LogInfo.String(),
	}
	// disableAnsiColor defines if the logger subsystem should prevent displaying ANSI colors
	disableAnsiColor = cli.BoolFlag{
		Name:  "disable-ansi-color",
		Usage: "Boolean option for disabling ANSI colors in the logging system.",
	}
	// workingDirectory defines a flag for the path for the working directory.
	workingDirectory = cli.StringFlag{
		Name:  "working-directory",
		Usage: "This flag specifies the `directory` where the node will store its database if no other related flags are set.",
		Value: "",
	}
	// gopsEn used to enable diagnosis of running go processes
	gopsEn = cli.BoolFlag{
		Name:  "gops-enable",
		Usage: "Boolean option for enabling gops over the process. If set, stack can be viewed by calling 'gops stack <pid>'.",
	}
	// profileMode defines a flag for profiling the binary
	// If enabled, it will open the pprof routes over the default gin rest webserver.
	profileMode = cli.BoolFlag{
		Name: "pprof-enable",
		Usage: "Boolean option for enabling the profiling mode. If set, the /debug/pprof routes will be available " +
			"on the node for profiling the application.",
	}
	// useMemoryDB starts the ledger on a memory database, nothing is persisted between runs
	useMemoryDB = cli.BoolFlag{
		Name:  "use-memory-db",
		Usage: "Boolean option for starting the ledger on an in-memory database. The state is lost on shutdown.",
	}
)

func getFlags() []cli.Flag {
	return []cli.Flag{
		configurationFile,
		configurationApiFile,
		configOverride,
		restApiInterface,
		restApiDebug,
		logLevel,
		disableAnsiColor,
		workingDirectory,
		gopsEn,
		profileMode,
		useMemoryDB,
	}
}

func getFlagsConfig(ctx *cli.Context, log logger.Logger, version string) *config.ContextFlagsConfig {
	flagsConfig := &config.ContextFlagsConfig{}

	flagsConfig.WorkingDir = getWorkingDir(ctx, log)
	flagsConfig.LogLevel = ctx.GlobalString(logLevel.Name)
	flagsConfig.DisableAnsiColor = ctx.GlobalBool(disableAnsiColor.Name)
	flagsConfig.RestApiInterface = ctx.GlobalString(restApiInterface.Name)
	flagsConfig.EnableGops = ctx.GlobalBool(gopsEn.Name)
	flagsConfig.EnablePprof = ctx.GlobalBool(profileMode.Name)
	flagsConfig.EnableRestAPIServerDebugMode = ctx.GlobalBool(restApiDebug.Name)
	flagsConfig.Version = version

	return flagsConfig
}

func applyFlags(ctx *cli.Context, cfgs *config.Configs, log logger.Logger) error {
	overrides := make([]config.OverridableConfig, 0)
	for _, rawOverride := range ctx.GlobalStringSlice(configOverride.Name) {
		override, err := overridableConfig.ParseOverride(rawOverride)
		if err != nil {
			return err
		}

		log.Info("overriding config value", "file", override.File, "path", override.Path, "value", override.Value)
		overrides = append(overrides, override)
	}

	err := overridableConfig.OverrideConfigValues(overrides, cfgs)
	if err != nil {
		return err
	}

	if ctx.IsSet(useMemoryDB.Name) {
		log.Warn("starting on a memory database, the ledger state will not be persisted")
		cfgs.GeneralConfig.Storage.DB.Type = memoryDBType
	}

	return config.SanityCheckConfig(cfgs.GeneralConfig)
}

func getWorkingDir(ctx *cli.Context, log logger.Logger) string {
	var err error

	workingDir := ctx.GlobalString(workingDirectory.Name)
	if len(workingDir) == 0 {
		workingDir, err = os.Getwd()
		if err != nil {
			log.LogIfError(err)
			workingDir = ""
		}
	}
	log.Trace("working directory", "path", workingDir)

	return workingDir
}
