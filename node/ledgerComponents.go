package node

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/multiversx/mx-chain-core-go/core"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/core/pubkeyConverter"
	"github.com/multiversx/mx-chain-core-go/hashing/blake2b"
	"github.com/multiversx/mx-chain-core-go/marshal"
	"github.com/multiversx/mx-chain-crypto-go/signing"
	"github.com/multiversx/mx-chain-crypto-go/signing/ed25519"
	"github.com/multiversx/mx-chain-crypto-go/signing/ed25519/singlesig"
	"github.com/multiversx/mx-chain-tax-ledger-go/api/shared"
	"github.com/multiversx/mx-chain-tax-ledger-go/common"
	"github.com/multiversx/mx-chain-tax-ledger-go/config"
	"github.com/multiversx/mx-chain-tax-ledger-go/facade"
	"github.com/multiversx/mx-chain-tax-ledger-go/ledger"
	"github.com/multiversx/mx-chain-tax-ledger-go/ntp"
	"github.com/multiversx/mx-chain-tax-ledger-go/outport"
	outportFactory "github.com/multiversx/mx-chain-tax-ledger-go/outport/factory"
	"github.com/multiversx/mx-chain-tax-ledger-go/outport/process"
	"github.com/multiversx/mx-chain-tax-ledger-go/process/transaction"
	"github.com/multiversx/mx-chain-tax-ledger-go/statusHandler"
	"github.com/multiversx/mx-chain-tax-ledger-go/statusHandler/presenter"
	"github.com/multiversx/mx-chain-tax-ledger-go/storage"
	storageFactory "github.com/multiversx/mx-chain-tax-ledger-go/storage/factory"
	"github.com/multiversx/mx-chain-tax-ledger-go/vm"
)

const defaultStatusPollingInterval = 2 * time.Second

type closer interface {
	Close() error
}

// LedgerComponents holds every component a running ledger node is made of
type LedgerComponents struct {
	PubKeyConverter  core.PubkeyConverter
	Marshaller       marshal.Marshalizer
	Prometheus       *statusHandler.PrometheusStatusHandler
	Presenter        *presenter.PresenterStatusHandler
	StatusHandler    core.AppStatusHandler
	StateStorer      storage.StateStorer
	SyncTimer        ledger.TimeProvider
	Ledger           facade.LedgerReader
	Contract         facade.ContractHandler
	CallVerifier     facade.CallVerifier
	Outport          outport.OutportHandler
	Facade           shared.FacadeHandler
	syncTimeCloser   closer
	cancelMemMetrics context.CancelFunc
}

// CreateLedgerComponents builds the ledger node components from the provided configs. The committed
// state is restored from storage when present, otherwise the ledger starts from the genesis section.
func CreateLedgerComponents(configs *config.Configs) (*LedgerComponents, error) {
	if configs == nil || configs.GeneralConfig == nil || configs.FlagsConfig == nil {
		return nil, ErrNilConfigs
	}

	generalConfig := configs.GeneralConfig
	flagsConfig := configs.FlagsConfig

	converter, err := pubkeyConverter.NewBech32PubkeyConverter(common.AddressLen, common.AddressHRP)
	if err != nil {
		return nil, err
	}

	lc := &LedgerComponents{
		PubKeyConverter: converter,
		Marshaller:      &marshal.JsonMarshalizer{},
		Prometheus:      statusHandler.NewPrometheusStatusHandler(),
		Presenter:       presenter.NewPresenterStatusHandler(),
	}

	lc.StatusHandler, err = statusHandler.NewAppStatusFacadeWithHandlers(lc.Prometheus, lc.Presenter)
	if err != nil {
		return nil, err
	}

	dbPath := filepath.Join(flagsConfig.WorkingDir, generalConfig.Storage.DB.FilePath)
	persister, err := storageFactory.NewPersisterFactory(generalConfig.Storage.DB).Create(dbPath)
	if err != nil {
		return nil, err
	}

	lc.StateStorer, err = storage.NewStateStorer(storage.ArgsNewStateStorer{
		Persister:  persister,
		Marshaller: lc.Marshaller,
	})
	if err != nil {
		_ = persister.Close()
		return nil, err
	}

	err = lc.createLedger(configs)
	if err != nil {
		_ = lc.Close()
		return nil, err
	}

	lc.startMemoryMetrics(generalConfig.GeneralSettings.StatusPollingIntervalSec)

	return lc, nil
}

func (lc *LedgerComponents) createLedger(configs *config.Configs) error {
	state, err := lc.StateStorer.LoadState()
	switch {
	case errors.Is(err, storage.ErrStateNotFound):
		log.Info("no saved ledger state found, starting from genesis")
		state = nil
	case err != nil:
		return err
	default:
		log.Info("restoring saved ledger state", "strategy version", state.StrategyVersion)
	}

	syncTimer := ntp.NewSyncTime(configs.GeneralConfig.NTPConfig, nil)
	if len(configs.GeneralConfig.NTPConfig.Hosts) > 0 {
		syncTimer.StartSyncingTime()
	}
	lc.SyncTimer = syncTimer
	lc.syncTimeCloser = syncTimer

	logs := vm.NewLogsCollector()
	ledgerArgs, err := createLedgerArgs(configs.GeneralConfig.Ledger, lc.PubKeyConverter, state)
	if err != nil {
		return err
	}
	ledgerArgs.TimeProvider = syncTimer
	ledgerArgs.EventsHandler = logs

	tokenLedger, err := ledger.NewTokenLedger(ledgerArgs)
	if err != nil {
		return err
	}
	lc.Ledger = tokenLedger

	lc.Contract, err = vm.NewLedgerContract(vm.ArgsNewLedgerContract{
		Ledger: tokenLedger,
		Logs:   logs,
	})
	if err != nil {
		return err
	}

	lc.CallVerifier, err = transaction.NewCallVerifier(transaction.ArgsCallVerifier{
		KeyGen:       signing.NewKeyGenerator(ed25519.NewEd25519()),
		SingleSigner: &singlesig.Ed25519Signer{},
		Marshaller:   lc.Marshaller,
		NonceStorer:  lc.StateStorer,
	})
	if err != nil {
		return err
	}

	outportComponents, err := outportFactory.CreateOutport(&outportFactory.ArgsOutportFactory{
		Config:     configs.GeneralConfig.Outport,
		Marshaller: lc.Marshaller,
	})
	if err != nil {
		return err
	}
	lc.Outport = outportComponents.Outport

	eventsConverter, err := process.NewEventsConverter(lc.PubKeyConverter)
	if err != nil {
		return err
	}

	lc.Facade, err = facade.NewLedgerFacade(facade.ArgsLedgerFacade{
		Ledger:           tokenLedger,
		Contract:         lc.Contract,
		CallVerifier:     lc.CallVerifier,
		StateSaver:       lc.StateStorer,
		Outport:          lc.Outport,
		EventsConverter:  eventsConverter,
		StatusHandler:    lc.StatusHandler,
		StatusMetrics:    lc.Presenter,
		PubKeyConverter:  lc.PubKeyConverter,
		TimeProvider:     syncTimer,
		Hasher:           blake2b.NewBlake2b(),
		Marshaller:       lc.Marshaller,
		MetricsHandler:   lc.Prometheus.Handler(),
		WebsocketHandler: outportComponents.WebsocketHandler,
		HostInfo:         statusHandler.GetHostInfo(configs.FlagsConfig.Version),
		RestApiInterface: configs.FlagsConfig.RestApiInterface,
		ApiDebugMode:     configs.FlagsConfig.EnableRestAPIServerDebugMode,
		PprofEnabled:     configs.FlagsConfig.EnablePprof,
	})

	return err
}

func (lc *LedgerComponents) startMemoryMetrics(intervalInSec int) {
	interval := defaultStatusPollingInterval
	if intervalInSec > 0 {
		interval = time.Duration(intervalInSec) * time.Second
	}

	var ctx context.Context
	ctx, lc.cancelMemMetrics = context.WithCancel(context.Background())

	go func() {
		timer := time.NewTimer(0)
		defer timer.Stop()

		for {
			select {
			case <-timer.C:
				statusHandler.UpdateMemoryMetrics(lc.StatusHandler)
				timer.Reset(interval)
			case <-ctx.Done():
				log.Debug("closing memory metrics go routine")
				return
			}
		}
	}()
}

// Close closes every started component
func (lc *LedgerComponents) Close() error {
	if lc.cancelMemMetrics != nil {
		lc.cancelMemMetrics()
	}

	var lastErr error
	switch {
	case !check.IfNil(lc.Facade):
		err := lc.Facade.Close()
		if err != nil {
			log.Warn("error closing the facade", "error", err.Error())
			lastErr = err
		}
	case !check.IfNil(lc.Outport):
		lastErr = lc.Outport.Close()
	}
	if lc.syncTimeCloser != nil {
		err := lc.syncTimeCloser.Close()
		if err != nil {
			lastErr = err
		}
	}
	if !check.IfNil(lc.StateStorer) {
		err := lc.StateStorer.Close()
		if err != nil {
			log.Warn("error closing the state storer", "error", err.Error())
			lastErr = err
		}
	}
	if lc.StatusHandler != nil {
		lc.StatusHandler.Close()
	}

	return lastErr
}
