package main

import (
	"encoding/hex"
	"fmt"

	"github.com/multiversx/mx-chain-core-go/core"
	"github.com/multiversx/mx-chain-core-go/marshal"
	"github.com/multiversx/mx-chain-crypto-go/signing"
	"github.com/multiversx/mx-chain-crypto-go/signing/ed25519"
	"github.com/multiversx/mx-chain-crypto-go/signing/ed25519/singlesig"
	"github.com/multiversx/mx-chain-tax-ledger-go/data/api"
	"github.com/multiversx/mx-chain-tax-ledger-go/process/transaction"
)

// signCallRequest signs the request with the first secret key stored in the PEM file
func signCallRequest(pemFile string, request *api.CallRequest) error {
	skHexBuff, _, err := core.LoadSkPkFromPemFile(pemFile, 0)
	if err != nil {
		return err
	}

	skBuff, err := hex.DecodeString(string(skHexBuff))
	if err != nil {
		return fmt.Errorf("%w while decoding the secret key from %s", err, pemFile)
	}

	keyGen := signing.NewKeyGenerator(ed25519.NewEd25519())
	privateKey, err := keyGen.PrivateKeyFromByteArray(skBuff)
	if err != nil {
		return err
	}

	return transaction.SignCall(&singlesig.Ed25519Signer{}, privateKey, &marshal.JsonMarshalizer{}, request)
}
