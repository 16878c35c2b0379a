package tax

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/multiversx/mx-chain-tax-ledger-go/common"
)

// StandardStrategyVersion is the version reported by the standard strategy
const StandardStrategyVersion = 1

// PoolChecker answers whether an address is a registered pool
type PoolChecker interface {
	IsPool(address []byte) bool
}

// Strategy defines the classification and fee computation applied on transfers
type Strategy interface {
	Version() uint32
	Classify(from []byte, to []byte, pools PoolChecker) Kind
	Fee(kind Kind, amount *uint256.Int, rates Rates) (*uint256.Int, error)
	IsInterfaceNil() bool
}

type standardStrategy struct{}

// NewStandardStrategy creates the default tax strategy
func NewStandardStrategy() *standardStrategy {
	return &standardStrategy{}
}

// Version returns the strategy version
func (s *standardStrategy) Version() uint32 {
	return StandardStrategyVersion
}

// Classify labels a transfer, evaluating the rules in precedence order
func (s *standardStrategy) Classify(from []byte, to []byte, pools PoolChecker) Kind {
	if common.IsZeroAddress(from) || common.IsZeroAddress(to) {
		return KindNone
	}

	fromPool := pools.IsPool(from)
	toPool := pools.IsPool(to)
	switch {
	case fromPool && toPool:
		return KindPoolToPool
	case toPool:
		return KindSell
	case fromPool:
		return KindBuy
	default:
		return KindRegular
	}
}

// Fee computes floor(amount * rate / 10000) for the rate matching the transfer kind
func (s *standardStrategy) Fee(kind Kind, amount *uint256.Int, rates Rates) (*uint256.Int, error) {
	if amount == nil {
		return nil, ErrNilAmount
	}

	rate, err := rates.RateFor(kind)
	if err != nil {
		return nil, err
	}

	return ComputeFee(amount, rate), nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (s *standardStrategy) IsInterfaceNil() bool {
	return s == nil
}

// ComputeFee returns floor(amount * rateBp / 10000). The intermediate product is computed on 512
// bits so it never overflows.
func ComputeFee(amount *uint256.Int, rateBp uint32) *uint256.Int {
	if rateBp == 0 || amount.IsZero() {
		return uint256.NewInt(0)
	}

	fee, _ := new(uint256.Int).MulDivOverflow(amount, uint256.NewInt(uint64(rateBp)), uint256.NewInt(common.BasisPointsDenominator))
	return fee
}

// NewStrategyForVersion returns the strategy implementing the provided version
func NewStrategyForVersion(version uint32) (Strategy, error) {
	switch version {
	case StandardStrategyVersion:
		return NewStandardStrategy(), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategyVersion, version)
	}
}
