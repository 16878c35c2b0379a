package process

import (
	"encoding/hex"

	"github.com/multiversx/mx-chain-core-go/core"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-tax-ledger-go/outport"
	vmcommon "github.com/multiversx/mx-chain-vm-common-go"
	"golang.org/x/crypto/sha3"
)

type eventsConverter struct {
	pubKeyConverter core.PubkeyConverter
	signatures      map[string]string
}

// NewEventsConverter creates the component that turns contract logs into outport events
func NewEventsConverter(pubKeyConverter core.PubkeyConverter) (*eventsConverter, error) {
	if check.IfNil(pubKeyConverter) {
		return nil, outport.ErrNilPubKeyConverter
	}

	return &eventsConverter{
		pubKeyConverter: pubKeyConverter,
		signatures:      make(map[string]string),
	}, nil
}

// Convert builds the events batch of a single call
func (ec *eventsConverter) Convert(operation string, caller []byte, timestamp uint64, logs []*vmcommon.LogEntry) (*outport.EventsBatch, error) {
	callerAddress, err := ec.pubKeyConverter.Encode(caller)
	if err != nil {
		return nil, err
	}

	batch := &outport.EventsBatch{
		Operation: operation,
		Caller:    callerAddress,
		Timestamp: timestamp,
		Events:    make([]*outport.EventData, 0, len(logs)),
	}

	for _, entry := range logs {
		address, errEncode := ec.pubKeyConverter.Encode(entry.Address)
		if errEncode != nil {
			return nil, errEncode
		}

		topics := make([]string, 0, len(entry.Topics))
		for _, topic := range entry.Topics {
			topics = append(topics, hex.EncodeToString(topic))
		}

		identifier := string(entry.Identifier)
		batch.Events = append(batch.Events, &outport.EventData{
			Identifier: identifier,
			Signature:  ec.signature(identifier),
			Address:    address,
			Topics:     topics,
		})
	}

	return batch, nil
}

// signature is the keccak256 hash of the event identifier, used by consumers to filter events
func (ec *eventsConverter) signature(identifier string) string {
	sig, found := ec.signatures[identifier]
	if found {
		return sig
	}

	hasher := sha3.NewLegacyKeccak256()
	_, _ = hasher.Write([]byte(identifier))
	sig = hex.EncodeToString(hasher.Sum(nil))
	ec.signatures[identifier] = sig

	return sig
}

// IsInterfaceNil returns true if there is no value under the interface
func (ec *eventsConverter) IsInterfaceNil() bool {
	return ec == nil
}
