package storage

import (
	"fmt"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/marshal"
	"github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-tax-ledger-go/common"
	"github.com/multiversx/mx-chain-tax-ledger-go/ledger"
)

var log = logger.GetOrCreate("storage")

// ArgsNewStateStorer holds the arguments needed to create a state storer
type ArgsNewStateStorer struct {
	Persister  Persister
	Marshaller marshal.Marshalizer
}

type stateStorer struct {
	persister  Persister
	marshaller marshal.Marshalizer
	key        []byte
}

// NewStateStorer creates a component able to save and load the ledger state
func NewStateStorer(args ArgsNewStateStorer) (*stateStorer, error) {
	if check.IfNil(args.Persister) {
		return nil, ErrNilPersister
	}
	if check.IfNil(args.Marshaller) {
		return nil, ErrNilMarshalizer
	}

	return &stateStorer{
		persister:  args.Persister,
		marshaller: args.Marshaller,
		key:        []byte(common.LedgerStateKey),
	}, nil
}

// SaveState writes the provided snapshot, replacing the previous one
func (ss *stateStorer) SaveState(snapshot *ledger.StateSnapshot) error {
	if snapshot == nil {
		return ErrNilStateSnapshot
	}

	buff, err := ss.marshaller.Marshal(snapshot)
	if err != nil {
		return err
	}

	err = ss.persister.Put(ss.key, buff)
	if err != nil {
		return err
	}

	log.Trace("ledger state saved", "size", len(buff), "total supply", snapshot.TotalSupply)

	return nil
}

// LoadState returns the last saved snapshot or ErrStateNotFound
func (ss *stateStorer) LoadState() (*ledger.StateSnapshot, error) {
	err := ss.persister.Has(ss.key)
	if err != nil {
		return nil, ErrStateNotFound
	}

	buff, err := ss.persister.Get(ss.key)
	if err != nil {
		return nil, err
	}

	snapshot := &ledger.StateSnapshot{}
	err = ss.marshaller.Unmarshal(snapshot, buff)
	if err != nil {
		return nil, fmt.Errorf("%w while decoding the saved ledger state", err)
	}

	return snapshot, nil
}

// SaveNonce stores the next nonce expected from the caller
func (ss *stateStorer) SaveNonce(caller []byte, nonce uint64) error {
	buff, err := ss.marshaller.Marshal(nonce)
	if err != nil {
		return err
	}

	return ss.persister.Put(nonceKey(caller), buff)
}

// GetNonce returns the next nonce expected from the caller, 0 for callers never seen before
func (ss *stateStorer) GetNonce(caller []byte) (uint64, error) {
	key := nonceKey(caller)
	err := ss.persister.Has(key)
	if err != nil {
		return 0, nil
	}

	buff, err := ss.persister.Get(key)
	if err != nil {
		return 0, err
	}

	var nonce uint64
	err = ss.marshaller.Unmarshal(&nonce, buff)
	if err != nil {
		return 0, fmt.Errorf("%w while decoding the nonce of %x", err, caller)
	}

	return nonce, nil
}

func nonceKey(caller []byte) []byte {
	return append([]byte(common.CallerNoncePrefix), caller...)
}

// Close closes the underlying persister
func (ss *stateStorer) Close() error {
	return ss.persister.Close()
}

// IsInterfaceNil returns true if there is no value under the interface
func (ss *stateStorer) IsInterfaceNil() bool {
	return ss == nil
}
