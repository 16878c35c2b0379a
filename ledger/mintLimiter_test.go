package ledger_test

import (
	"errors"
	"testing"

	"github.com/holiman/uint256"
	"github.com/multiversx/mx-chain-tax-ledger-go/common"
	"github.com/multiversx/mx-chain-tax-ledger-go/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenLedger_MintWindowScenario(t *testing.T) {
	t.Parallel()

	recorder := &eventsRecorder{}
	args, timeProvider := createMockArgumentsForTokenLedger()
	args.EventsHandler = recorder.handler()
	tl, _ := ledger.NewTokenLedger(args)

	require.Nil(t, tl.ProposeMint(governance, carol, tokens(100_000_000)))

	timeProvider.Advance(common.MintTimelock)
	require.Nil(t, tl.ExecuteMint(governance))
	assert.Equal(t, tokens(100_000_000), tl.BalanceOf(carol))
	assert.Equal(t, tokens(100_000_000), tl.MintWindow().Minted)
	assert.Equal(t, []string{"mintProposed", "transfer", "minted"}, recorder.identifiers())

	err := tl.ProposeMint(governance, bob, units(1))
	assert.True(t, errors.Is(err, ledger.ErrExceedsMintCapPerPeriod))
	assert.Equal(t, "ExceedsMintCapPerPeriod", common.ReasonTag(err))
	assert.Equal(t, common.CategoryCapacity, common.CategoryOf(err))

	timeProvider.SetTimestamp(startTime + common.MintPeriod - 1)
	err = tl.ProposeMint(governance, bob, units(1))
	assert.True(t, errors.Is(err, ledger.ErrExceedsMintCapPerPeriod))

	timeProvider.SetTimestamp(startTime + common.MintPeriod)
	require.Nil(t, tl.ProposeMint(governance, bob, units(1)))
	assert.Equal(t, startTime+common.MintPeriod, tl.MintWindow().Start)
	assert.True(t, tl.MintWindow().Minted.IsZero())
	requireConservation(t, tl.Snapshot())
}

func TestTokenLedger_ProposeMint(t *testing.T) {
	t.Parallel()

	t.Run("zero recipient should error", func(t *testing.T) {
		t.Parallel()

		args, _ := createMockArgumentsForTokenLedger()
		tl, _ := ledger.NewTokenLedger(args)

		assert.Equal(t, ledger.ErrZeroAddress, tl.ProposeMint(governance, common.ZeroAddress(), units(1)))
	})
	t.Run("zero amount should error", func(t *testing.T) {
		t.Parallel()

		args, _ := createMockArgumentsForTokenLedger()
		tl, _ := ledger.NewTokenLedger(args)

		assert.Equal(t, ledger.ErrInvalidAmount, tl.ProposeMint(governance, bob, units(0)))
	})
	t.Run("over max supply should error", func(t *testing.T) {
		t.Parallel()

		args, _ := createMockArgumentsForTokenLedger()
		args.MaxSupply = units(5000)
		args.MintCapPerPeriod = units(5000)
		tl, _ := ledger.NewTokenLedger(args)

		assert.Equal(t, ledger.ErrExceedsMaxSupply, tl.ProposeMint(governance, bob, units(3001)))
		assert.Nil(t, tl.ProposeMint(governance, bob, units(3000)))
	})
	t.Run("over window cap should error", func(t *testing.T) {
		t.Parallel()

		args, _ := createMockArgumentsForTokenLedger()
		tl, _ := ledger.NewTokenLedger(args)

		over := new(uint256.Int).AddUint64(tokens(100_000_000), 1)
		err := tl.ProposeMint(governance, bob, over)
		assert.True(t, errors.Is(err, ledger.ErrExceedsMintCapPerPeriod))
	})
	t.Run("new proposal replaces the pending one", func(t *testing.T) {
		t.Parallel()

		args, timeProvider := createMockArgumentsForTokenLedger()
		tl, _ := ledger.NewTokenLedger(args)

		require.Nil(t, tl.ProposeMint(governance, bob, units(10)))
		timeProvider.Advance(60)
		require.Nil(t, tl.ProposeMint(governance, carol, units(20)))

		pending, found := tl.PendingMint()
		require.True(t, found)
		assert.Equal(t, carol, pending.To)
		assert.Equal(t, units(20), pending.Amount)
		assert.Equal(t, startTime+60+common.MintTimelock, pending.EffectiveAt)

		timeProvider.Advance(common.MintTimelock - 1)
		assert.Equal(t, ledger.ErrTimelockNotExpired, tl.ExecuteMint(governance))

		timeProvider.Advance(1)
		require.Nil(t, tl.ExecuteMint(governance))
		assert.True(t, tl.BalanceOf(bob).IsZero())
		assert.Equal(t, units(20), tl.BalanceOf(carol))
		assert.Equal(t, units(2020), tl.TotalSupply())

		_, found = tl.PendingMint()
		assert.False(t, found)
		assert.Equal(t, ledger.ErrNoPendingMint, tl.ExecuteMint(governance))
	})
}

func TestTokenLedger_ExecuteMint(t *testing.T) {
	t.Parallel()

	t.Run("no pending mint should error", func(t *testing.T) {
		t.Parallel()

		args, _ := createMockArgumentsForTokenLedger()
		tl, _ := ledger.NewTokenLedger(args)

		assert.Equal(t, ledger.ErrNoPendingMint, tl.ExecuteMint(governance))
	})
	t.Run("before timelock should error", func(t *testing.T) {
		t.Parallel()

		args, timeProvider := createMockArgumentsForTokenLedger()
		tl, _ := ledger.NewTokenLedger(args)

		require.Nil(t, tl.ProposeMint(governance, bob, units(10)))
		timeProvider.Advance(common.MintTimelock - 1)
		assert.Equal(t, ledger.ErrTimelockNotExpired, tl.ExecuteMint(governance))
		assert.True(t, tl.BalanceOf(bob).IsZero())

		timeProvider.Advance(1)
		require.Nil(t, tl.ExecuteMint(governance))
		assert.Equal(t, units(10), tl.BalanceOf(bob))
		assert.Equal(t, units(2010), tl.TotalSupply())

		_, found := tl.PendingMint()
		assert.False(t, found)
		assert.Equal(t, ledger.ErrNoPendingMint, tl.ExecuteMint(governance))
	})
	t.Run("mint is not taxed and updates the voting weight", func(t *testing.T) {
		t.Parallel()

		args, timeProvider := createMockArgumentsForTokenLedger()
		args.FeeRecipient = common.ZeroAddress()
		tl, _ := ledger.NewTokenLedger(args)
		require.Nil(t, tl.SetTaxesImmediate(governance, tax500()))
		require.Nil(t, tl.Delegate(bob, bob))

		require.Nil(t, tl.ProposeMint(governance, bob, units(1000)))
		timeProvider.Advance(common.MintTimelock)
		require.Nil(t, tl.ExecuteMint(governance))

		assert.Equal(t, units(1000), tl.BalanceOf(bob))
		assert.Equal(t, units(1000), tl.GetVotes(bob))

		timeProvider.Advance(1)
		pastSupply, err := tl.GetPastTotalSupply(startTime + common.MintTimelock)
		require.Nil(t, err)
		assert.Equal(t, units(3000), pastSupply)
	})
	t.Run("window rolled at execution resets the counter", func(t *testing.T) {
		t.Parallel()

		args, timeProvider := createMockArgumentsForTokenLedger()
		tl, _ := ledger.NewTokenLedger(args)

		require.Nil(t, tl.ProposeMint(governance, bob, units(10)))
		timeProvider.Advance(common.MintTimelock)
		require.Nil(t, tl.ExecuteMint(governance))

		timeProvider.SetTimestamp(startTime + common.MintPeriod - 1)
		require.Nil(t, tl.ProposeMint(governance, bob, units(20)))
		timeProvider.Advance(common.MintTimelock)
		require.Nil(t, tl.ExecuteMint(governance))

		window := tl.MintWindow()
		assert.Equal(t, startTime+common.MintPeriod-1+common.MintTimelock, window.Start)
		assert.Equal(t, units(20), window.Minted)
	})
}

func TestTokenLedger_CancelMint(t *testing.T) {
	t.Parallel()

	recorder := &eventsRecorder{}
	args, timeProvider := createMockArgumentsForTokenLedger()
	args.EventsHandler = recorder.handler()
	tl, _ := ledger.NewTokenLedger(args)

	assert.Equal(t, ledger.ErrNoPendingMint, tl.CancelMint(governance))

	require.Nil(t, tl.ProposeMint(governance, bob, units(10)))
	require.Nil(t, tl.CancelMint(governance))
	assert.Equal(t, []string{"mintProposed", "mintCancelled"}, recorder.identifiers())

	timeProvider.Advance(common.MintTimelock)
	assert.Equal(t, ledger.ErrNoPendingMint, tl.ExecuteMint(governance))
	assert.True(t, tl.MintWindow().Minted.IsZero())
}
