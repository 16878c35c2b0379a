package notifier

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/marshal"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-tax-ledger-go/outport"
)

var log = logger.GetOrCreate("outport/drivers/notifier")

const (
	pingInterval   = 30 * time.Second
	readLimitBytes = 512
)

// ArgsWebsocketDriver holds the arguments needed to create a websocket driver
type ArgsWebsocketDriver struct {
	Marshaller           marshal.Marshalizer
	MaxClients           int
	WriteTimeout         time.Duration
	ClientBufferCapacity int
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

type wsDriver struct {
	marshaller     marshal.Marshalizer
	upgrader       websocket.Upgrader
	maxClients     int
	writeTimeout   time.Duration
	bufferCapacity int

	mutClients sync.RWMutex
	clients    map[*client]struct{}
	closed     bool
}

// NewWebsocketDriver creates a driver that broadcasts every events batch to the connected websocket clients
func NewWebsocketDriver(args ArgsWebsocketDriver) (*wsDriver, error) {
	if check.IfNil(args.Marshaller) {
		return nil, outport.ErrNilMarshaller
	}
	if args.ClientBufferCapacity < 1 {
		return nil, ErrInvalidClientBufferCapacity
	}

	return &wsDriver{
		marshaller: args.Marshaller,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		maxClients:     args.MaxClients,
		writeTimeout:   args.WriteTimeout,
		bufferCapacity: args.ClientBufferCapacity,
		clients:        make(map[*client]struct{}),
	}, nil
}

// ServeHTTP upgrades the connection and registers the new client
func (wd *wsDriver) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !wd.hasRoom() {
		http.Error(w, ErrTooManyClients.Error(), http.StatusServiceUnavailable)
		return
	}

	conn, err := wd.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Debug("cannot upgrade websocket connection", "error", err.Error())
		return
	}

	c := &client{
		conn: conn,
		send: make(chan []byte, wd.bufferCapacity),
	}
	err = wd.register(c)
	if err != nil {
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseTryAgainLater, err.Error()))
		_ = conn.Close()
		return
	}

	log.Debug("websocket client connected", "remote", r.RemoteAddr)

	go wd.writePump(c)
	go wd.readPump(c)
}

func (wd *wsDriver) hasRoom() bool {
	wd.mutClients.RLock()
	defer wd.mutClients.RUnlock()

	return !wd.closed && (wd.maxClients <= 0 || len(wd.clients) < wd.maxClients)
}

func (wd *wsDriver) register(c *client) error {
	wd.mutClients.Lock()
	defer wd.mutClients.Unlock()

	if wd.closed {
		return ErrDriverClosed
	}
	if wd.maxClients > 0 && len(wd.clients) >= wd.maxClients {
		return ErrTooManyClients
	}

	wd.clients[c] = struct{}{}

	return nil
}

func (wd *wsDriver) unregister(c *client) {
	wd.mutClients.Lock()
	defer wd.mutClients.Unlock()

	wd.removeClientUnprotected(c)
}

func (wd *wsDriver) removeClientUnprotected(c *client) {
	_, found := wd.clients[c]
	if !found {
		return
	}

	delete(wd.clients, c)
	close(c.send)
}

// readPump only drains the control frames so that the close of a client is detected
func (wd *wsDriver) readPump(c *client) {
	defer wd.unregister(c)

	c.conn.SetReadLimit(readLimitBytes)
	for {
		_, _, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug("websocket client read error", "error", err.Error())
			}
			return
		}
	}
}

func (wd *wsDriver) writePump(c *client) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			wd.setWriteDeadline(c)
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			err := c.conn.WriteMessage(websocket.TextMessage, message)
			if err != nil {
				log.Debug("cannot write to websocket client", "error", err.Error())
				return
			}
		case <-ticker.C:
			wd.setWriteDeadline(c)
			err := c.conn.WriteMessage(websocket.PingMessage, nil)
			if err != nil {
				return
			}
		}
	}
}

func (wd *wsDriver) setWriteDeadline(c *client) {
	if wd.writeTimeout > 0 {
		_ = c.conn.SetWriteDeadline(time.Now().Add(wd.writeTimeout))
	}
}

// SaveEvents broadcasts the batch. Clients that cannot keep up are disconnected.
func (wd *wsDriver) SaveEvents(batch *outport.EventsBatch) error {
	if batch == nil {
		return outport.ErrNilEventsBatch
	}

	message, err := wd.marshaller.Marshal(batch)
	if err != nil {
		return err
	}

	wd.mutClients.Lock()
	defer wd.mutClients.Unlock()

	if wd.closed {
		return ErrDriverClosed
	}

	for c := range wd.clients {
		select {
		case c.send <- message:
		default:
			log.Debug("dropping slow websocket client", "buffer capacity", wd.bufferCapacity)
			wd.removeClientUnprotected(c)
		}
	}

	return nil
}

// NumClients returns the number of connected clients
func (wd *wsDriver) NumClients() int {
	wd.mutClients.RLock()
	defer wd.mutClients.RUnlock()

	return len(wd.clients)
}

// Close disconnects all the clients
func (wd *wsDriver) Close() error {
	wd.mutClients.Lock()
	defer wd.mutClients.Unlock()

	wd.closed = true
	for c := range wd.clients {
		wd.removeClientUnprotected(c)
	}

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (wd *wsDriver) IsInterfaceNil() bool {
	return wd == nil
}
