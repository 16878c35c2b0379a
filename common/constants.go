package common

// AddressLen is the length in bytes of an account address
const AddressLen = 32

// AddressHRP is the human readable part used when encoding addresses as bech32
const AddressHRP = "erd"

// BasisPointsDenominator is the denominator used for every rate expressed in basis points
const BasisPointsDenominator = 10000

// MaxSingleTaxRate is the maximum value, in basis points, of any individual tax rate
const MaxSingleTaxRate = 500

// MaxCombinedTransferSellRate is the maximum value, in basis points, of transfer rate + sell rate
const MaxCombinedTransferSellRate = 800

const secondsInHour = 3600
const secondsInDay = 24 * secondsInHour

// TaxChangeTimelock is the delay, in seconds, between proposing and applying a tax change
const TaxChangeTimelock = 24 * secondsInHour

// MintTimelock is the delay, in seconds, between proposing and executing a mint
const MintTimelock = 7 * secondsInDay

// MintPeriod is the length, in seconds, of the rolling mint window
const MintPeriod = 30 * secondsInDay

// DefaultMaxSupply is the default total supply cap, in base units (1 billion tokens with 18 decimals)
const DefaultMaxSupply = "1000000000000000000000000000"

// DefaultMintCapPerPeriod is the default mint cap per window, in base units (100 million tokens with 18 decimals)
const DefaultMintCapPerPeriod = "100000000000000000000000000"

// LedgerStateKey is the persister key under which the committed ledger state is stored
const LedgerStateKey = "ledgerState"

// CallerNoncePrefix prefixes the persister keys holding the next expected nonce of each caller
const CallerNoncePrefix = "nonce_"

// NodeVersion is the version reported by the node status endpoint
const NodeVersion = "v1.0.0"
