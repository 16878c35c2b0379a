package tax

import (
	"errors"
	"testing"

	"github.com/holiman/uint256"
	"github.com/multiversx/mx-chain-tax-ledger-go/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type poolSet map[string]struct{}

func (ps poolSet) IsPool(address []byte) bool {
	_, found := ps[string(address)]
	return found
}

func address(b byte) []byte {
	addr := make([]byte, common.AddressLen)
	addr[0] = b
	return addr
}

func TestStandardStrategy_Classify(t *testing.T) {
	t.Parallel()

	user1, user2 := address(1), address(2)
	pool1, pool2 := address(10), address(11)
	pools := poolSet{string(pool1): {}, string(pool2): {}}
	s := NewStandardStrategy()

	assert.Equal(t, KindNone, s.Classify(common.ZeroAddress(), user1, pools))
	assert.Equal(t, KindNone, s.Classify(pool1, common.ZeroAddress(), pools))
	assert.Equal(t, KindPoolToPool, s.Classify(pool1, pool2, pools))
	assert.Equal(t, KindSell, s.Classify(user1, pool1, pools))
	assert.Equal(t, KindBuy, s.Classify(pool2, user1, pools))
	assert.Equal(t, KindRegular, s.Classify(user1, user2, pools))
	assert.Equal(t, uint32(StandardStrategyVersion), s.Version())
	assert.False(t, s.IsInterfaceNil())
}

func TestStandardStrategy_Fee(t *testing.T) {
	t.Parallel()

	s := NewStandardStrategy()
	rates := Rates{TransferBp: 100, SellBp: 100, BuyBp: 50}
	amount := uint256.NewInt(100)

	fee, err := s.Fee(KindSell, amount, rates)
	require.Nil(t, err)
	assert.Equal(t, uint64(2), fee.Uint64())

	fee, _ = s.Fee(KindBuy, uint256.NewInt(1000), rates)
	assert.Equal(t, uint64(5), fee.Uint64())

	fee, _ = s.Fee(KindRegular, uint256.NewInt(199), rates)
	assert.Equal(t, uint64(1), fee.Uint64())

	fee, _ = s.Fee(KindPoolToPool, amount, rates)
	assert.True(t, fee.IsZero())

	fee, _ = s.Fee(KindNone, amount, rates)
	assert.True(t, fee.IsZero())

	_, err = s.Fee(Kind(99), amount, rates)
	assert.True(t, errors.Is(err, ErrUnknownTransferKind))

	_, err = s.Fee(KindSell, nil, rates)
	assert.Equal(t, ErrNilAmount, err)
}

func TestComputeFee_DoesNotOverflow(t *testing.T) {
	t.Parallel()

	maxAmount := new(uint256.Int).SetAllOne()
	fee := ComputeFee(maxAmount, 500)

	expected := new(uint256.Int).Div(maxAmount, uint256.NewInt(20))
	assert.Equal(t, expected, fee)
}

func TestComputeFee_Linearity(t *testing.T) {
	t.Parallel()

	amounts := []uint64{1, 7, 99, 101, 12345, 999999937}
	rates := []uint32{1, 37, 250, 500, 800}
	for _, a := range amounts {
		for _, r := range rates {
			base := ComputeFee(uint256.NewInt(a), r)
			for k := uint64(1); k <= 10; k++ {
				scaled := ComputeFee(uint256.NewInt(a*k), r)
				expected := new(uint256.Int).Mul(base, uint256.NewInt(k))

				require.True(t, scaled.Cmp(expected) >= 0)
				diff := new(uint256.Int).Sub(scaled, expected)
				require.True(t, diff.Cmp(uint256.NewInt(k)) <= 0, "amount %d rate %d k %d", a, r, k)
			}
		}
	}
}

func TestRates_Validate(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Rates{TransferBp: 500, SellBp: 300, BuyBp: 500}.Validate())
	assert.Nil(t, Rates{}.Validate())

	err := Rates{TransferBp: 501}.Validate()
	assert.True(t, errors.Is(err, ErrRateTooHigh))
	assert.Equal(t, "RateTooHigh", common.ReasonTag(err))

	err = Rates{SellBp: 501}.Validate()
	assert.True(t, errors.Is(err, ErrRateTooHigh))

	err = Rates{BuyBp: 501}.Validate()
	assert.True(t, errors.Is(err, ErrRateTooHigh))

	err = Rates{TransferBp: 400, SellBp: 401}.Validate()
	assert.True(t, errors.Is(err, ErrCombinedRateTooHigh))
	assert.Equal(t, common.CategoryValidation, common.CategoryOf(err))
}

func TestRates_RateFor(t *testing.T) {
	t.Parallel()

	rates := Rates{TransferBp: 200, SellBp: 300, BuyBp: 50}

	rate, _ := rates.RateFor(KindSell)
	assert.Equal(t, uint32(500), rate)
	rate, _ = rates.RateFor(KindBuy)
	assert.Equal(t, uint32(50), rate)
	rate, _ = rates.RateFor(KindRegular)
	assert.Equal(t, uint32(200), rate)
	rate, _ = rates.RateFor(KindPoolToPool)
	assert.Equal(t, uint32(0), rate)
	assert.Equal(t, "sell", KindSell.String())
}

func TestNewStrategyForVersion(t *testing.T) {
	t.Parallel()

	s, err := NewStrategyForVersion(StandardStrategyVersion)
	require.Nil(t, err)
	assert.Equal(t, uint32(StandardStrategyVersion), s.Version())

	s, err = NewStrategyForVersion(42)
	assert.True(t, errors.Is(err, ErrUnknownStrategyVersion))
	assert.Nil(t, s)
}
