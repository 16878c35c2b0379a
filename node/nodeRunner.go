package node

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/gops/agent"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-tax-ledger-go/api/gin"
	"github.com/multiversx/mx-chain-tax-ledger-go/config"
)

const maxTimeToClose = 10 * time.Second

var log = logger.GetOrCreate("node")

type nodeRunner struct {
	configs *config.Configs
}

// NewNodeRunner creates a nodeRunner instance
func NewNodeRunner(cfgs *config.Configs) (*nodeRunner, error) {
	if cfgs == nil || cfgs.GeneralConfig == nil || cfgs.ApiRoutesConfig == nil || cfgs.FlagsConfig == nil {
		return nil, ErrNilConfigs
	}

	return &nodeRunner{
		configs: cfgs,
	}, nil
}

// Start creates the ledger components, opens the REST API and blocks until a termination signal is received
func (nr *nodeRunner) Start() error {
	flagsConfig := nr.configs.FlagsConfig

	err := attachLogger(flagsConfig)
	if err != nil {
		return err
	}

	enableGopsIfNeeded(flagsConfig.EnableGops)

	log.Info("starting ledger node",
		"version", flagsConfig.Version,
		"working directory", flagsConfig.WorkingDir,
		"db type", nr.configs.GeneralConfig.Storage.DB.Type,
	)

	components, err := CreateLedgerComponents(nr.configs)
	if err != nil {
		return err
	}

	err = logger.AddLogObserver(components.Presenter, &logger.PlainFormatter{})
	if err != nil {
		log.Warn("cannot attach the log lines presenter", "error", err.Error())
	}

	webServer, err := gin.NewGinWebServerHandler(gin.ArgsNewWebServer{
		Facade:          components.Facade,
		ApiConfig:       *nr.configs.ApiRoutesConfig,
		AntiFloodConfig: nr.configs.GeneralConfig.Antiflood.WebServer,
	})
	if err != nil {
		_ = components.Close()
		return err
	}

	err = webServer.StartHttpServer()
	if err != nil {
		_ = components.Close()
		return err
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	return waitForSignal(sigs, webServer, components)
}

func attachLogger(flagsConfig *config.ContextFlagsConfig) error {
	err := logger.SetDisplayByteSlice(logger.ToHex)
	log.LogIfError(err)

	err = logger.SetLogLevel(flagsConfig.LogLevel)
	if err != nil {
		return err
	}

	if !flagsConfig.DisableAnsiColor {
		return nil
	}

	err = logger.RemoveLogObserver(os.Stdout)
	if err != nil {
		// the console observer is gone, print manually
		fmt.Println("error removing log observer: " + err.Error())
		return err
	}

	err = logger.AddLogObserver(os.Stdout, &logger.PlainFormatter{})
	if err != nil {
		fmt.Println("error setting log observer: " + err.Error())
		return err
	}

	return nil
}

func enableGopsIfNeeded(gopsEnabled bool) {
	if gopsEnabled {
		if err := agent.Listen(agent.Options{}); err != nil {
			log.Error("failure to init gops", "error", err.Error())
		}
	}

	log.Trace("gops", "enabled", gopsEnabled)
}

func waitForSignal(sigs chan os.Signal, webServer closer, components *LedgerComponents) error {
	<-sigs
	log.Info("terminating at user's signal...")

	chanCloseComponents := make(chan struct{})
	go func() {
		closeAllComponents(webServer, components, chanCloseComponents)
	}()

	select {
	case <-chanCloseComponents:
		log.Debug("closed all components gracefully")
	case <-time.After(maxTimeToClose):
		log.Warn("force closing the node", "error", "closeAllComponents did not finish on time")
		return ErrCloseTimeout
	}

	return nil
}

func closeAllComponents(webServer closer, components *LedgerComponents, chanCloseComponents chan struct{}) {
	log.Debug("closing the web server")
	err := webServer.Close()
	log.LogIfError(err)

	log.Debug("closing the ledger components")
	err = components.Close()
	log.LogIfError(err)

	chanCloseComponents <- struct{}{}
}
