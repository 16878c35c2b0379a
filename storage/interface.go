package storage

import "github.com/multiversx/mx-chain-tax-ledger-go/ledger"

// Persister provides storage of data services in a database like construct
type Persister interface {
	// Put add the value to the (key, val) persistence medium
	Put(key, val []byte) error
	// Get gets the value associated to the key
	Get(key []byte) ([]byte, error)
	// Has returns nil if the given key is present in the persistence medium
	Has(key []byte) error
	// Remove removes the data associated to the given key
	Remove(key []byte) error
	// Close closes the files/resources associated to the persistence medium
	Close() error
	// IsInterfaceNil returns true if there is no value under the interface
	IsInterfaceNil() bool
}

// StateStorer saves and loads the committed ledger state
type StateStorer interface {
	SaveState(snapshot *ledger.StateSnapshot) error
	LoadState() (*ledger.StateSnapshot, error)
	SaveNonce(caller []byte, nonce uint64) error
	GetNonce(caller []byte) (uint64, error)
	Close() error
	IsInterfaceNil() bool
}
