package storage

import "errors"

// ErrNilPersister signals that a nil persister has been provided
var ErrNilPersister = errors.New("nil persister")

// ErrNilMarshalizer signals that a nil marshalizer has been provided
var ErrNilMarshalizer = errors.New("nil marshalizer")

// ErrNilStateSnapshot signals that a nil state snapshot has been provided
var ErrNilStateSnapshot = errors.New("nil state snapshot")

// ErrStateNotFound signals that no ledger state was saved in the persister
var ErrStateNotFound = errors.New("ledger state not found")

// ErrInvalidFilePath signals that an invalid file path has been provided
var ErrInvalidFilePath = errors.New("invalid file path")

// ErrNotSupportedDBType signals that a not supported db type has been provided
var ErrNotSupportedDBType = errors.New("not supported db type")
