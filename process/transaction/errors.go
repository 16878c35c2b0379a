package transaction

import "errors"

// ErrNilKeyGen signals that a nil key generator has been provided
var ErrNilKeyGen = errors.New("nil key generator")

// ErrNilSingleSigner signals that a nil single signer has been provided
var ErrNilSingleSigner = errors.New("nil single signer")

// ErrNilMarshaller signals that a nil marshaller has been provided
var ErrNilMarshaller = errors.New("nil marshaller")

// ErrNilNonceStorer signals that a nil nonce storer has been provided
var ErrNilNonceStorer = errors.New("nil nonce storer")

// ErrNilCallRequest signals that a nil call request has been provided
var ErrNilCallRequest = errors.New("nil call request")

// ErrNilSignature signals that a call was not signed
var ErrNilSignature = errors.New("nil signature")

// ErrInvalidSignature signals that the signature of a call does not match its caller
var ErrInvalidSignature = errors.New("invalid signature")

// ErrLowerNonceInCall signals that the call nonce was already used
var ErrLowerNonceInCall = errors.New("lower nonce in call")

// ErrHigherNonceInCall signals that the call nonce is ahead of the caller nonce
var ErrHigherNonceInCall = errors.New("higher nonce in call")
