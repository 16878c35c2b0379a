package transaction

import (
	"encoding/hex"
	"fmt"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/marshal"
	crypto "github.com/multiversx/mx-chain-crypto-go"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-tax-ledger-go/data/api"
)

var log = logger.GetOrCreate("process/transaction")

// ArgsCallVerifier holds the arguments needed to create a call verifier
type ArgsCallVerifier struct {
	KeyGen       crypto.KeyGenerator
	SingleSigner crypto.SingleSigner
	Marshaller   marshal.Marshalizer
	NonceStorer  NonceStorer
}

// callVerifier authenticates the calls changing the ledger. The caller address is the ed25519
// public key of the caller, the signature covers the CallMessage built from the request.
type callVerifier struct {
	keyGen       crypto.KeyGenerator
	singleSigner crypto.SingleSigner
	marshaller   marshal.Marshalizer
	nonceStorer  NonceStorer
}

// NewCallVerifier creates a new call verifier
func NewCallVerifier(args ArgsCallVerifier) (*callVerifier, error) {
	if check.IfNil(args.KeyGen) {
		return nil, ErrNilKeyGen
	}
	if check.IfNil(args.SingleSigner) {
		return nil, ErrNilSingleSigner
	}
	if check.IfNil(args.Marshaller) {
		return nil, ErrNilMarshaller
	}
	if check.IfNil(args.NonceStorer) {
		return nil, ErrNilNonceStorer
	}

	return &callVerifier{
		keyGen:       args.KeyGen,
		singleSigner: args.SingleSigner,
		marshaller:   args.Marshaller,
		nonceStorer:  args.NonceStorer,
	}, nil
}

// Verify checks that the request carries the expected nonce and was signed by the caller
func (cv *callVerifier) Verify(caller []byte, request *api.CallRequest) error {
	if request == nil {
		return ErrNilCallRequest
	}
	if len(request.Signature) == 0 {
		return ErrNilSignature
	}
	signature, err := hex.DecodeString(request.Signature)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSignature, err.Error())
	}

	expectedNonce, err := cv.nonceStorer.GetNonce(caller)
	if err != nil {
		return err
	}
	if request.Nonce < expectedNonce {
		return fmt.Errorf("%w: expected %d, got %d", ErrLowerNonceInCall, expectedNonce, request.Nonce)
	}
	if request.Nonce > expectedNonce {
		return fmt.Errorf("%w: expected %d, got %d", ErrHigherNonceInCall, expectedNonce, request.Nonce)
	}

	publicKey, err := cv.keyGen.PublicKeyFromByteArray(caller)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSignature, err.Error())
	}

	message, err := cv.marshaller.Marshal(api.NewCallMessage(request))
	if err != nil {
		return err
	}

	err = cv.singleSigner.Verify(publicKey, message, signature)
	if err != nil {
		log.Debug("call signature verification failed", "function", request.Function, "caller", request.Caller, "error", err.Error())
		return fmt.Errorf("%w: %s", ErrInvalidSignature, err.Error())
	}

	return nil
}

// Nonce returns the next nonce expected from the caller
func (cv *callVerifier) Nonce(caller []byte) (uint64, error) {
	return cv.nonceStorer.GetNonce(caller)
}

// IncreaseNonce consumes the current nonce of the caller
func (cv *callVerifier) IncreaseNonce(caller []byte) error {
	nonce, err := cv.nonceStorer.GetNonce(caller)
	if err != nil {
		return err
	}

	return cv.nonceStorer.SaveNonce(caller, nonce+1)
}

// IsInterfaceNil returns true if there is no value under the interface
func (cv *callVerifier) IsInterfaceNil() bool {
	return cv == nil
}
