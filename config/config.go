package config

// GenesisBalanceConfig is an initial allocation
type GenesisBalanceConfig struct {
	Address string
	Amount  string
}

// TaxRatesConfig holds tax rates expressed in basis points
type TaxRatesConfig struct {
	TransferBp uint32
	SellBp     uint32
	BuyBp      uint32
}

// LedgerConfig holds the token ledger configuration
type LedgerConfig struct {
	SelfAddress      string
	Governance       string
	FeeRecipient     string
	MaxSupply        string
	MintCapPerPeriod string
	StrategyVersion  uint32
	InitialRates     TaxRatesConfig
	Genesis          []GenesisBalanceConfig
}

// DBConfig will map the database configuration
type DBConfig struct {
	FilePath          string
	Type              string
	BatchDelaySeconds int
	MaxBatchSize      int
	MaxOpenFiles      int
}

// StorageConfig will map the storage configuration
type StorageConfig struct {
	DB DBConfig
}

// NTPConfig will hold the configuration for NTP queries
type NTPConfig struct {
	Hosts               []string
	Port                int
	TimeoutMilliseconds int
	SyncPeriodSeconds   int
	Version             int
}

// OutportConfig holds the configuration of the events notifier
type OutportConfig struct {
	WebSocketEnabled     bool
	MaxClients           int
	WriteTimeoutInSec    int
	ClientBufferCapacity int
}

// WebServerAntifloodConfig will hold the anti-flooding parameters for the web server
type WebServerAntifloodConfig struct {
	WebServerAntifloodEnabled    bool
	SimultaneousRequests         uint32
	SameSourceRequests           uint32
	SameSourceResetIntervalInSec uint32
}

// AntifloodConfig will hold all p2p antiflood parameters
type AntifloodConfig struct {
	WebServer WebServerAntifloodConfig
}

// GeneralSettingsConfig will hold the general settings for a ledger node
type GeneralSettingsConfig struct {
	NodeDisplayName          string
	ChainID                  string
	StatusPollingIntervalSec int
}

// Config will hold the entire application configuration parameters
type Config struct {
	GeneralSettings GeneralSettingsConfig
	Ledger          LedgerConfig
	Storage         StorageConfig
	NTPConfig       NTPConfig
	Outport         OutportConfig
	Antiflood       AntifloodConfig
}
