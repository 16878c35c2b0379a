package checkpoints

import "errors"

// ErrIndexOutOfBounds signals that a checkpoint index is out of bounds
var ErrIndexOutOfBounds = errors.New("checkpoint index out of bounds")

// ErrNilValue signals that a nil checkpoint value has been provided
var ErrNilValue = errors.New("nil checkpoint value")

// ErrUnorderedCheckpoints signals that the provided checkpoints are not strictly ordered by timestamp
var ErrUnorderedCheckpoints = errors.New("checkpoints are not ordered by timestamp")
