package transaction

import (
	"encoding/hex"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/marshal"
	crypto "github.com/multiversx/mx-chain-crypto-go"
	"github.com/multiversx/mx-chain-tax-ledger-go/data/api"
)

// SignCall signs the CallMessage of the request with the provided private key and stores the
// hex encoded signature in the request
func SignCall(
	singleSigner crypto.SingleSigner,
	privateKey crypto.PrivateKey,
	marshaller marshal.Marshalizer,
	request *api.CallRequest,
) error {
	if check.IfNil(singleSigner) {
		return ErrNilSingleSigner
	}
	if check.IfNil(marshaller) {
		return ErrNilMarshaller
	}
	if request == nil {
		return ErrNilCallRequest
	}

	message, err := marshaller.Marshal(api.NewCallMessage(request))
	if err != nil {
		return err
	}

	signature, err := singleSigner.Sign(privateKey, message)
	if err != nil {
		return err
	}
	request.Signature = hex.EncodeToString(signature)

	return nil
}
