package tax

import (
	"fmt"

	"github.com/multiversx/mx-chain-tax-ledger-go/common"
)

// Rates holds the tax rates, expressed in basis points
type Rates struct {
	TransferBp uint32 `json:"transferBp"`
	SellBp     uint32 `json:"sellBp"`
	BuyBp      uint32 `json:"buyBp"`
}

// Validate checks the rates against the per-rate and the combined caps. The buy rate is not part of
// the combined cap.
func (r Rates) Validate() error {
	if r.TransferBp > common.MaxSingleTaxRate {
		return fmt.Errorf("%w: transfer rate %d", ErrRateTooHigh, r.TransferBp)
	}
	if r.SellBp > common.MaxSingleTaxRate {
		return fmt.Errorf("%w: sell rate %d", ErrRateTooHigh, r.SellBp)
	}
	if r.BuyBp > common.MaxSingleTaxRate {
		return fmt.Errorf("%w: buy rate %d", ErrRateTooHigh, r.BuyBp)
	}
	if r.TransferBp+r.SellBp > common.MaxCombinedTransferSellRate {
		return fmt.Errorf("%w: %d", ErrCombinedRateTooHigh, r.TransferBp+r.SellBp)
	}

	return nil
}

// RateFor returns the rate applied to the provided transfer kind
func (r Rates) RateFor(kind Kind) (uint32, error) {
	switch kind {
	case KindNone, KindPoolToPool:
		return 0, nil
	case KindSell:
		return r.TransferBp + r.SellBp, nil
	case KindBuy:
		return r.BuyBp, nil
	case KindRegular:
		return r.TransferBp, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownTransferKind, kind)
	}
}
