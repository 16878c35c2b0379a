package ntp

import (
	"context"
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/beevik/ntp"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-tax-ledger-go/config"
)

var log = logger.GetOrCreate("ntp")

// offsets bigger than this are treated as faulty responses
const outOfBoundsDuration = time.Second

const minSyncPeriod = time.Second

// syncTime defines an object for time synchronization
type syncTime struct {
	mut         sync.RWMutex
	clockOffset time.Duration
	syncPeriod  time.Duration
	ntpOptions  NTPOptions
	query       func(options NTPOptions, hostIndex int) (*ntp.Response, error)
	cancel      func()
}

// NewSyncTime creates a syncTime object. A nil customQueryFunc uses the network NTP query.
func NewSyncTime(
	ntpConfig config.NTPConfig,
	customQueryFunc func(options NTPOptions, hostIndex int) (*ntp.Response, error),
) *syncTime {
	queryFunc := customQueryFunc
	if queryFunc == nil {
		queryFunc = queryNTP
	}

	syncPeriod := time.Duration(ntpConfig.SyncPeriodSeconds) * time.Second
	if syncPeriod < minSyncPeriod {
		syncPeriod = minSyncPeriod
	}

	return &syncTime{
		syncPeriod: syncPeriod,
		ntpOptions: NewNTPOptions(ntpConfig),
		query:      queryFunc,
		cancel:     func() {},
	}
}

// StartSyncingTime starts a go routine that periodically syncs the local clock with the NTP hosts
func (s *syncTime) StartSyncingTime() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go s.syncLoop(ctx)
}

func (s *syncTime) syncLoop(ctx context.Context) {
	for {
		s.sync()

		select {
		case <-ctx.Done():
			log.Debug("syncTime's go routine is stopping...")
			return
		case <-time.After(s.getSleepTime()):
		}
	}
}

// sync queries all the hosts and sets the clock offset to the harmonic mean of the sane responses
func (s *syncTime) sync() {
	clockOffsets := make([]time.Duration, 0, len(s.ntpOptions.Hosts))
	for hostIndex := range s.ntpOptions.Hosts {
		response, err := s.query(s.ntpOptions, hostIndex)
		if err != nil {
			log.Debug("sync.query",
				"host", s.ntpOptions.Hosts[hostIndex],
				"error", err.Error(),
			)
			continue
		}

		if response.ClockOffset > outOfBoundsDuration || response.ClockOffset < -outOfBoundsDuration {
			log.Debug("sync.query: clock offset out of bounds",
				"host", s.ntpOptions.Hosts[hostIndex],
				"clock offset", response.ClockOffset,
			)
			continue
		}

		clockOffsets = append(clockOffsets, response.ClockOffset)
	}

	if len(clockOffsets) == 0 {
		log.Debug("sync: no NTP host answered, keeping the previous clock offset")
		return
	}

	clockOffsetsWithoutEdges := s.getClockOffsetsWithoutEdges(clockOffsets)
	clockOffsetHarmonicMean := s.getHarmonicMean(clockOffsetsWithoutEdges)
	s.setClockOffset(clockOffsetHarmonicMean)

	log.Debug("sync", "clock offset", clockOffsetHarmonicMean, "num responses", len(clockOffsets))
}

func (s *syncTime) getClockOffsetsWithoutEdges(clockOffsets []time.Duration) []time.Duration {
	if len(clockOffsets) <= 2 {
		return clockOffsets
	}

	sorted := make([]time.Duration, len(clockOffsets))
	copy(sorted, clockOffsets)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	return sorted[1 : len(sorted)-1]
}

// getHarmonicMean returns the harmonic mean of the offsets, ignoring the zero ones
func (s *syncTime) getHarmonicMean(clockOffsets []time.Duration) time.Duration {
	inverseSum := float64(0)
	numNonZero := 0
	for _, offset := range clockOffsets {
		if offset == 0 {
			continue
		}

		inverseSum += 1 / float64(offset)
		numNonZero++
	}

	if numNonZero == 0 || inverseSum == 0 {
		return 0
	}

	return time.Duration(math.Round(float64(numNonZero) / inverseSum))
}

// getSleepTime adds up to 20% jitter to the sync period so nodes do not query the hosts at the same time
func (s *syncTime) getSleepTime() time.Duration {
	jitter := time.Duration(rand.Int63n(int64(s.syncPeriod)/5 + 1))

	return s.syncPeriod + jitter
}

// ClockOffset returns the current offset that should be applied to the local time
func (s *syncTime) ClockOffset() time.Duration {
	s.mut.RLock()
	defer s.mut.RUnlock()

	return s.clockOffset
}

func (s *syncTime) setClockOffset(clockOffset time.Duration) {
	s.mut.Lock()
	s.clockOffset = clockOffset
	s.mut.Unlock()
}

// FormattedCurrentTime returns the current time corrected with the clock offset
func (s *syncTime) FormattedCurrentTime() string {
	return s.CurrentTime().Format("Mon Jan 2 15:04:05 MST 2006")
}

// CurrentTime returns the local time corrected with the clock offset
func (s *syncTime) CurrentTime() time.Time {
	return time.Now().Add(s.ClockOffset())
}

// CurrentTimestamp returns the corrected current time as unix seconds
func (s *syncTime) CurrentTimestamp() uint64 {
	return uint64(s.CurrentTime().Unix())
}

// Close stops the syncing go routine
func (s *syncTime) Close() error {
	s.cancel()

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (s *syncTime) IsInterfaceNil() bool {
	return s == nil
}
