package factory

import (
	"net/http"
	"time"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/marshal"
	"github.com/multiversx/mx-chain-tax-ledger-go/config"
	"github.com/multiversx/mx-chain-tax-ledger-go/outport"
	"github.com/multiversx/mx-chain-tax-ledger-go/outport/drivers/notifier"
)

// ArgsOutportFactory holds the factory arguments of different components
type ArgsOutportFactory struct {
	Config     config.OutportConfig
	Marshaller marshal.Marshalizer
}

// OutportComponents holds the created outport and the http handler of its websocket driver, if enabled
type OutportComponents struct {
	Outport          outport.OutportHandler
	WebsocketHandler http.Handler
}

// CreateOutport will create a new instance of OutportHandler with the configured drivers
func CreateOutport(args *ArgsOutportFactory) (*OutportComponents, error) {
	if args == nil {
		return nil, outport.ErrNilArgsOutportFactory
	}
	if check.IfNil(args.Marshaller) {
		return nil, outport.ErrNilMarshaller
	}

	outportHandler := outport.NewOutport()
	components := &OutportComponents{
		Outport: outportHandler,
	}

	if !args.Config.WebSocketEnabled {
		return components, nil
	}

	driver, err := notifier.NewWebsocketDriver(notifier.ArgsWebsocketDriver{
		Marshaller:           args.Marshaller,
		MaxClients:           args.Config.MaxClients,
		WriteTimeout:         time.Duration(args.Config.WriteTimeoutInSec) * time.Second,
		ClientBufferCapacity: args.Config.ClientBufferCapacity,
	})
	if err != nil {
		return nil, err
	}

	err = outportHandler.SubscribeDriver(driver)
	if err != nil {
		return nil, err
	}
	components.WebsocketHandler = driver

	return components, nil
}
