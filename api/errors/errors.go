package errors

import "errors"

// ErrNilFacadeHandler signals that a nil facade handler has been provided
var ErrNilFacadeHandler = errors.New("nil facade handler")

// ErrInvalidJSONRequest signals an error in json request formatting
var ErrInvalidJSONRequest = errors.New("invalid json request")

// ErrValidation signals an error in validation
var ErrValidation = errors.New("validation error")

// ErrBadUrlParams signals one or more incorrectly provided URL params (generic error)
var ErrBadUrlParams = errors.New("bad url parameter(s)")

// ErrEmptyAddress signals that an empty address was provided
var ErrEmptyAddress = errors.New("address is empty")

// ErrCallFailed signals that a ledger call could not be executed
var ErrCallFailed = errors.New("ledger call failed")

// ErrGetAccount signals an error in getting an account
var ErrGetAccount = errors.New("get account error")

// ErrGetAllowance signals an error in getting an allowance
var ErrGetAllowance = errors.New("get allowance error")

// ErrGetState signals an error in getting the ledger state
var ErrGetState = errors.New("get ledger state error")

// ErrGetVotes signals an error in getting the votes of an account
var ErrGetVotes = errors.New("get votes error")

// ErrGetPastVotes signals an error in getting past votes or past total supply
var ErrGetPastVotes = errors.New("get past votes error")

// ErrGetCheckpoints signals an error in getting the votes checkpoints of an account
var ErrGetCheckpoints = errors.New("get checkpoints error")

// ErrMetricsDisabled signals that the metrics endpoint is not available
var ErrMetricsDisabled = errors.New("metrics are disabled")

// ErrEventsStream signals that the events stream is not available
var ErrEventsStream = errors.New("events stream unavailable")
