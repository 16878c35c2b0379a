package common

// MetricAppVersion is the metric holding the application version
const MetricAppVersion = "ledger_app_version"

// MetricTotalSupply is the metric holding the current total supply, in whole tokens
const MetricTotalSupply = "ledger_total_supply"

// MetricNumAccounts is the metric holding the number of accounts with a non zero balance
const MetricNumAccounts = "ledger_num_accounts"

// MetricNumPools is the metric holding the number of registered pools
const MetricNumPools = "ledger_num_pools"

// MetricNumSuccessfulCalls counts the calls that changed the ledger
const MetricNumSuccessfulCalls = "ledger_num_successful_calls"

// MetricNumFailedCalls counts the calls that were rejected
const MetricNumFailedCalls = "ledger_num_failed_calls"

// MetricNumEvents counts the emitted ledger events
const MetricNumEvents = "ledger_num_events"

// MetricTransferRate is the active transfer rate, in basis points
const MetricTransferRate = "ledger_transfer_rate_bp"

// MetricSellRate is the active sell rate, in basis points
const MetricSellRate = "ledger_sell_rate_bp"

// MetricBuyRate is the active buy rate, in basis points
const MetricBuyRate = "ledger_buy_rate_bp"

// MetricPendingTaxChange is 1 while a tax change is waiting for its timelock
const MetricPendingTaxChange = "ledger_pending_tax_change"

// MetricPendingMint is 1 while a mint is waiting for its timelock
const MetricPendingMint = "ledger_pending_mint"

// MetricLastOperation is the name of the last executed ledger function
const MetricLastOperation = "ledger_last_operation"

// MetricMemHeapInUse is the metric holding the heap memory in use
const MetricMemHeapInUse = "ledger_mem_heap_inuse"

// MetricMemTotal is the metric holding the total memory of the host
const MetricMemTotal = "ledger_mem_total"

// MetricNumGoRoutines is the metric holding the number of running go routines
const MetricNumGoRoutines = "ledger_num_goroutines"
