package statusHandler

import logger "github.com/multiversx/mx-chain-logger-go"

var log = logger.GetOrCreate("statusHandler")
