package ledger_test

import (
	"errors"
	"testing"

	"github.com/multiversx/mx-chain-tax-ledger-go/common"
	"github.com/multiversx/mx-chain-tax-ledger-go/ledger"
	"github.com/multiversx/mx-chain-tax-ledger-go/ledger/tax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenLedger_TaxChangeTimelock(t *testing.T) {
	t.Parallel()

	recorder := &eventsRecorder{}
	args, timeProvider := createMockArgumentsForTokenLedger()
	args.EventsHandler = recorder.handler()
	tl, _ := ledger.NewTokenLedger(args)

	proposed := tax.Rates{TransferBp: 200, SellBp: 300, BuyBp: 50}
	require.Nil(t, tl.ProposeTaxChange(governance, proposed))

	pending, found := tl.PendingTaxChange()
	require.True(t, found)
	assert.Equal(t, startTime+common.TaxChangeTimelock, pending.EffectiveAt)
	assert.Equal(t, proposed, pending.Rates)

	timeProvider.SetTimestamp(startTime + common.TaxChangeTimelock - 1)
	err := tl.ApplyTaxChange(governance)
	assert.Equal(t, ledger.ErrTimelockNotExpired, err)
	assert.Equal(t, "TimelockNotExpired", common.ReasonTag(err))
	assert.Equal(t, tax.Rates{}, tl.ActiveRates())

	timeProvider.SetTimestamp(startTime + common.TaxChangeTimelock)
	require.Nil(t, tl.ApplyTaxChange(governance))
	assert.Equal(t, proposed, tl.ActiveRates())
	_, found = tl.PendingTaxChange()
	assert.False(t, found)
	assert.Equal(t, []string{"taxChangeProposed", "taxChangeApplied"}, recorder.identifiers())

	err = tl.ApplyTaxChange(governance)
	assert.Equal(t, ledger.ErrNoPendingChange, err)
}

func TestTokenLedger_TaxChangeIdempotence(t *testing.T) {
	t.Parallel()

	args, timeProvider := createMockArgumentsForTokenLedger()
	tl, _ := ledger.NewTokenLedger(args)

	rates := tax.Rates{TransferBp: 150, SellBp: 250, BuyBp: 75}
	for i := 0; i < 2; i++ {
		require.Nil(t, tl.ProposeTaxChange(governance, rates))
		timeProvider.Advance(common.TaxChangeTimelock)
		require.Nil(t, tl.ApplyTaxChange(governance))
		assert.Equal(t, rates, tl.ActiveRates())
	}
}

func TestTokenLedger_ProposeTaxChange(t *testing.T) {
	t.Parallel()

	t.Run("invalid rates should error", func(t *testing.T) {
		t.Parallel()

		args, _ := createMockArgumentsForTokenLedger()
		tl, _ := ledger.NewTokenLedger(args)

		err := tl.ProposeTaxChange(governance, tax.Rates{BuyBp: 501})
		assert.True(t, errors.Is(err, ledger.ErrRateTooHigh))

		err = tl.ProposeTaxChange(governance, tax.Rates{TransferBp: 500, SellBp: 301})
		assert.True(t, errors.Is(err, ledger.ErrCombinedRateTooHigh))

		_, found := tl.PendingTaxChange()
		assert.False(t, found)
	})
	t.Run("buy rate is not part of the combined cap", func(t *testing.T) {
		t.Parallel()

		args, _ := createMockArgumentsForTokenLedger()
		tl, _ := ledger.NewTokenLedger(args)

		err := tl.ProposeTaxChange(governance, tax.Rates{TransferBp: 500, SellBp: 300, BuyBp: 500})
		assert.Nil(t, err)
	})
	t.Run("new proposal replaces the pending one", func(t *testing.T) {
		t.Parallel()

		args, timeProvider := createMockArgumentsForTokenLedger()
		tl, _ := ledger.NewTokenLedger(args)

		require.Nil(t, tl.ProposeTaxChange(governance, tax.Rates{TransferBp: 10}))
		timeProvider.Advance(100)
		require.Nil(t, tl.ProposeTaxChange(governance, tax.Rates{TransferBp: 20}))

		pending, _ := tl.PendingTaxChange()
		assert.Equal(t, uint32(20), pending.Rates.TransferBp)
		assert.Equal(t, startTime+100+common.TaxChangeTimelock, pending.EffectiveAt)

		timeProvider.SetTimestamp(startTime + common.TaxChangeTimelock)
		assert.Equal(t, ledger.ErrTimelockNotExpired, tl.ApplyTaxChange(governance))
	})
	t.Run("cancel clears the proposal", func(t *testing.T) {
		t.Parallel()

		recorder := &eventsRecorder{}
		args, timeProvider := createMockArgumentsForTokenLedger()
		args.EventsHandler = recorder.handler()
		tl, _ := ledger.NewTokenLedger(args)

		assert.Equal(t, ledger.ErrNoPendingChange, tl.CancelTaxChange(governance))

		require.Nil(t, tl.ProposeTaxChange(governance, tax.Rates{TransferBp: 10}))
		require.Nil(t, tl.CancelTaxChange(governance))
		assert.Equal(t, []string{"taxChangeProposed", "taxChangeCancelled"}, recorder.identifiers())

		timeProvider.Advance(common.TaxChangeTimelock)
		assert.Equal(t, ledger.ErrNoPendingChange, tl.ApplyTaxChange(governance))
		assert.Equal(t, tax.Rates{}, tl.ActiveRates())
	})
}

func TestTokenLedger_SetTaxesImmediate(t *testing.T) {
	t.Parallel()

	args, _ := createMockArgumentsForTokenLedger()
	tl, _ := ledger.NewTokenLedger(args)

	err := tl.SetTaxesImmediate(governance, tax.Rates{SellBp: 600})
	assert.True(t, errors.Is(err, ledger.ErrRateTooHigh))

	require.Nil(t, tl.ProposeTaxChange(governance, tax.Rates{TransferBp: 1}))
	require.Nil(t, tl.SetTaxesImmediate(governance, tax.Rates{TransferBp: 100, SellBp: 100}))
	assert.Equal(t, tax.Rates{TransferBp: 100, SellBp: 100}, tl.ActiveRates())

	_, found := tl.PendingTaxChange()
	assert.True(t, found)
}

func TestTokenLedger_SetFeeRecipient(t *testing.T) {
	t.Parallel()

	recorder := &eventsRecorder{}
	args, _ := createMockArgumentsForTokenLedger()
	args.EventsHandler = recorder.handler()
	tl, _ := ledger.NewTokenLedger(args)

	err := tl.SetFeeRecipient(governance, selfAddress)
	assert.Equal(t, ledger.ErrFeeRecipientIsLedger, err)
	assert.Equal(t, common.CategoryValidation, common.CategoryOf(err))

	err = tl.SetFeeRecipient(governance, []byte("short"))
	assert.Equal(t, ledger.ErrInvalidAddress, err)

	require.Nil(t, tl.SetFeeRecipient(governance, common.ZeroAddress()))
	assert.Equal(t, common.ZeroAddress(), tl.FeeRecipient())

	require.Nil(t, tl.SetFeeRecipient(governance, carol))
	assert.Equal(t, carol, tl.FeeRecipient())

	require.Len(t, recorder.events, 2)
	assert.Equal(t, "feeRecipientUpdated", recorder.events[1].Identifier)
	assert.Equal(t, common.ZeroAddress(), recorder.events[1].Topics[0])
	assert.Equal(t, carol, recorder.events[1].Topics[1])
}
