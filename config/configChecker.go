package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyLedgerAddress signals that a required ledger address was not configured
var ErrEmptyLedgerAddress = errors.New("empty ledger address in config")

// ErrInvalidDBType signals that an unknown database type was configured
var ErrInvalidDBType = errors.New("invalid database type in config")

var knownDBTypes = []string{"LvlDB", "LvlDBSerial", "MemoryDB"}

// SanityCheckConfig performs the checks that do not require decoding addresses or amounts
func SanityCheckConfig(cfg *Config) error {
	if len(cfg.Ledger.SelfAddress) == 0 {
		return fmt.Errorf("%w: SelfAddress", ErrEmptyLedgerAddress)
	}
	if len(cfg.Ledger.Governance) == 0 {
		return fmt.Errorf("%w: Governance", ErrEmptyLedgerAddress)
	}
	if len(cfg.Ledger.FeeRecipient) == 0 {
		return fmt.Errorf("%w: FeeRecipient", ErrEmptyLedgerAddress)
	}

	for _, dbType := range knownDBTypes {
		if cfg.Storage.DB.Type == dbType {
			return nil
		}
	}

	return fmt.Errorf("%w: %s, known types: %s", ErrInvalidDBType, cfg.Storage.DB.Type, strings.Join(knownDBTypes, ", "))
}
