package vm

import (
	"github.com/multiversx/mx-chain-tax-ledger-go/ledger"
	vmcommon "github.com/multiversx/mx-chain-vm-common-go"
)

func createLogEntries(events []*ledger.Event) []*vmcommon.LogEntry {
	logs := make([]*vmcommon.LogEntry, 0, len(events))
	for _, event := range events {
		logs = append(logs, &vmcommon.LogEntry{
			Identifier: []byte(event.Identifier),
			Address:    event.Address,
			Topics:     event.Topics,
		})
	}

	return logs
}
