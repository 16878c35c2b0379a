package ntp

import (
	"time"

	"github.com/beevik/ntp"
	"github.com/multiversx/mx-chain-tax-ledger-go/config"
)

const defaultNTPPort = 123

// NTPOptions defines configuration options for an NTP query
type NTPOptions struct {
	Hosts        []string
	Version      int
	LocalAddress string
	Timeout      time.Duration
	Port         int
}

// NewNTPOptions creates the NTP query options from the provided config
func NewNTPOptions(ntpConfig config.NTPConfig) NTPOptions {
	port := ntpConfig.Port
	if port == 0 {
		port = defaultNTPPort
	}

	return NTPOptions{
		Hosts:   ntpConfig.Hosts,
		Version: ntpConfig.Version,
		Timeout: time.Duration(ntpConfig.TimeoutMilliseconds) * time.Millisecond,
		Port:    port,
	}
}

// queryNTP wraps beevik's ntp.QueryWithOptions for the host found at the provided index
func queryNTP(options NTPOptions, hostIndex int) (*ntp.Response, error) {
	queryOptions := ntp.QueryOptions{
		Timeout:      options.Timeout,
		Version:      options.Version,
		LocalAddress: options.LocalAddress,
		Port:         options.Port,
	}

	response, err := ntp.QueryWithOptions(options.Hosts[hostIndex], queryOptions)
	if err != nil {
		return nil, err
	}

	return response, response.Validate()
}
