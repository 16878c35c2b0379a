package facade

import (
	"encoding/hex"
	"errors"
	"sync"
	"testing"

	"github.com/holiman/uint256"
	"github.com/multiversx/mx-chain-core-go/core/pubkeyConverter"
	"github.com/multiversx/mx-chain-core-go/hashing/blake2b"
	"github.com/multiversx/mx-chain-core-go/marshal"
	"github.com/multiversx/mx-chain-storage-go/memorydb"
	"github.com/multiversx/mx-chain-tax-ledger-go/common"
	"github.com/multiversx/mx-chain-tax-ledger-go/data/api"
	"github.com/multiversx/mx-chain-tax-ledger-go/facade/mock"
	"github.com/multiversx/mx-chain-tax-ledger-go/ledger"
	ledgerMock "github.com/multiversx/mx-chain-tax-ledger-go/ledger/mock"
	"github.com/multiversx/mx-chain-tax-ledger-go/ledger/tax"
	"github.com/multiversx/mx-chain-tax-ledger-go/outport"
	outportMock "github.com/multiversx/mx-chain-tax-ledger-go/outport/mock"
	"github.com/multiversx/mx-chain-tax-ledger-go/outport/process"
	"github.com/multiversx/mx-chain-tax-ledger-go/statusHandler/presenter"
	"github.com/multiversx/mx-chain-tax-ledger-go/storage"
	"github.com/multiversx/mx-chain-tax-ledger-go/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const startTime = uint64(1_700_000_000)

var bech32Converter, _ = pubkeyConverter.NewBech32PubkeyConverter(common.AddressLen, common.AddressHRP)

func testAddress(b byte) []byte {
	address := make([]byte, common.AddressLen)
	address[common.AddressLen-1] = b

	return address
}

func bech32(address []byte) string {
	encoded, _ := bech32Converter.Encode(address)
	return encoded
}

type testComponents struct {
	args      ArgsLedgerFacade
	storer    storage.StateStorer
	presenter *presenter.PresenterStatusHandler

	mutBatches sync.Mutex
	batches    []*outport.EventsBatch
}

func createTestComponents(t *testing.T) *testComponents {
	timeProvider := ledgerMock.NewTimeProviderStub(startTime)
	collector := vm.NewLogsCollector()
	maxSupply, _ := uint256.FromDecimal(common.DefaultMaxSupply)
	mintCap, _ := uint256.FromDecimal(common.DefaultMintCapPerPeriod)

	tl, err := ledger.NewTokenLedger(ledger.ArgsNewTokenLedger{
		SelfAddress:      testAddress(0xFF),
		Governance:       testAddress(1),
		FeeRecipient:     testAddress(4),
		MaxSupply:        maxSupply,
		MintCapPerPeriod: mintCap,
		InitialRates:     tax.Rates{TransferBp: 100, SellBp: 100},
		Genesis:          []ledger.GenesisBalance{{Address: testAddress(2), Amount: uint256.NewInt(1000)}},
		TimeProvider:     timeProvider,
		Strategy:         tax.NewStandardStrategy(),
		EventsHandler:    collector,
	})
	require.Nil(t, err)

	contract, err := vm.NewLedgerContract(vm.ArgsNewLedgerContract{
		Ledger: tl,
		Logs:   collector,
	})
	require.Nil(t, err)

	storer, err := storage.NewStateStorer(storage.ArgsNewStateStorer{
		Persister:  memorydb.New(),
		Marshaller: &marshal.JsonMarshalizer{},
	})
	require.Nil(t, err)

	converter, err := process.NewEventsConverter(bech32Converter)
	require.Nil(t, err)

	components := &testComponents{
		storer:    storer,
		presenter: presenter.NewPresenterStatusHandler(),
	}

	outportHandler := outport.NewOutport()
	err = outportHandler.SubscribeDriver(&outportMock.DriverStub{
		SaveEventsCalled: func(batch *outport.EventsBatch) error {
			components.mutBatches.Lock()
			components.batches = append(components.batches, batch)
			components.mutBatches.Unlock()

			return nil
		},
	})
	require.Nil(t, err)

	components.args = ArgsLedgerFacade{
		Ledger:          tl,
		Contract:        contract,
		CallVerifier:    &mock.CallVerifierStub{},
		StateSaver:      storer,
		Outport:         outportHandler,
		EventsConverter: converter,
		StatusHandler:   components.presenter,
		StatusMetrics:   components.presenter,
		PubKeyConverter: bech32Converter,
		TimeProvider:    timeProvider,
		Hasher:          blake2b.NewBlake2b(),
		Marshaller:      &marshal.JsonMarshalizer{},
	}

	return components
}

func (tc *testComponents) savedBatches() []*outport.EventsBatch {
	tc.mutBatches.Lock()
	defer tc.mutBatches.Unlock()

	return tc.batches
}

func TestNewLedgerFacade(t *testing.T) {
	t.Parallel()

	t.Run("nil ledger should error", func(t *testing.T) {
		t.Parallel()

		args := createTestComponents(t).args
		args.Ledger = nil
		lf, err := NewLedgerFacade(args)
		assert.Nil(t, lf)
		assert.Equal(t, ErrNilLedger, err)
	})
	t.Run("nil contract should error", func(t *testing.T) {
		t.Parallel()

		args := createTestComponents(t).args
		args.Contract = nil
		_, err := NewLedgerFacade(args)
		assert.Equal(t, ErrNilContract, err)
	})
	t.Run("nil call verifier should error", func(t *testing.T) {
		t.Parallel()

		args := createTestComponents(t).args
		args.CallVerifier = nil
		_, err := NewLedgerFacade(args)
		assert.Equal(t, ErrNilCallVerifier, err)
	})
	t.Run("nil state saver should error", func(t *testing.T) {
		t.Parallel()

		args := createTestComponents(t).args
		args.StateSaver = nil
		_, err := NewLedgerFacade(args)
		assert.Equal(t, ErrNilStateSaver, err)
	})
	t.Run("nil outport should error", func(t *testing.T) {
		t.Parallel()

		args := createTestComponents(t).args
		args.Outport = nil
		_, err := NewLedgerFacade(args)
		assert.Equal(t, ErrNilOutport, err)
	})
	t.Run("nil hasher should error", func(t *testing.T) {
		t.Parallel()

		args := createTestComponents(t).args
		args.Hasher = nil
		_, err := NewLedgerFacade(args)
		assert.Equal(t, ErrNilHasher, err)
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		components := createTestComponents(t)
		lf, err := NewLedgerFacade(components.args)
		require.Nil(t, err)
		assert.False(t, lf.IsInterfaceNil())
		assert.Equal(t, DefaultRestInterface, lf.RestApiInterface())
		assert.False(t, lf.PprofEnabled())
		assert.False(t, lf.RestAPIServerDebugMode())

		metrics := components.presenter.GetMetrics()
		assert.Equal(t, common.NodeVersion, metrics[common.MetricAppVersion])
		assert.Equal(t, uint64(100), metrics[common.MetricTransferRate])
		assert.Equal(t, uint64(1), metrics[common.MetricNumAccounts])
	})
}

func TestLedgerFacade_ExecuteCall(t *testing.T) {
	t.Parallel()

	t.Run("nil request should error", func(t *testing.T) {
		t.Parallel()

		lf, _ := NewLedgerFacade(createTestComponents(t).args)
		response, err := lf.ExecuteCall(nil)
		assert.Nil(t, response)
		assert.Equal(t, ErrNilCallRequest, err)
	})
	t.Run("invalid caller should error", func(t *testing.T) {
		t.Parallel()

		lf, _ := NewLedgerFacade(createTestComponents(t).args)
		_, err := lf.ExecuteCall(&api.CallRequest{Caller: "not an address", Function: "transfer"})
		assert.True(t, errors.Is(err, ErrInvalidAddress))
	})
	t.Run("invalid argument should error", func(t *testing.T) {
		t.Parallel()

		lf, _ := NewLedgerFacade(createTestComponents(t).args)
		_, err := lf.ExecuteCall(&api.CallRequest{
			Caller:    bech32(testAddress(2)),
			Function:  "transfer",
			Arguments: []string{bech32(testAddress(3)), "zz"},
		})
		assert.True(t, errors.Is(err, ErrInvalidArgument))
	})
	t.Run("transfer should persist, count and push the events", func(t *testing.T) {
		t.Parallel()

		components := createTestComponents(t)
		lf, _ := NewLedgerFacade(components.args)

		response, err := lf.ExecuteCall(&api.CallRequest{
			Caller:    bech32(testAddress(2)),
			Function:  "transfer",
			Arguments: []string{bech32(testAddress(3)), "64"},
		})
		require.Nil(t, err)
		assert.Equal(t, "ok", response.ReturnCode)
		require.Len(t, response.Events, 3)
		assert.Equal(t, "transfer", response.Events[0].Identifier)
		assert.Equal(t, hex.EncodeToString(testAddress(3)), response.Events[0].Topics[1])
		assert.Equal(t, "63", response.Events[0].Topics[2])

		saved, err := components.storer.LoadState()
		require.Nil(t, err)
		assert.Equal(t, "99", saved.Balances[hex.EncodeToString(testAddress(3))])

		batches := components.savedBatches()
		require.Len(t, batches, 1)
		assert.Equal(t, "transfer", batches[0].Operation)
		assert.Equal(t, bech32(testAddress(2)), batches[0].Caller)
		assert.Equal(t, startTime, batches[0].Timestamp)
		assert.Len(t, batches[0].Events, 3)

		metrics := components.presenter.GetMetrics()
		assert.Equal(t, uint64(1), metrics[common.MetricNumSuccessfulCalls])
		assert.Equal(t, uint64(3), metrics[common.MetricNumEvents])
		assert.Equal(t, uint64(3), metrics[common.MetricNumAccounts])
		assert.Equal(t, "transfer", metrics[common.MetricLastOperation])
	})
	t.Run("rejected call should only count the failure", func(t *testing.T) {
		t.Parallel()

		components := createTestComponents(t)
		lf, _ := NewLedgerFacade(components.args)

		response, err := lf.ExecuteCall(&api.CallRequest{
			Caller:    bech32(testAddress(2)),
			Function:  "addPool",
			Arguments: []string{bech32(testAddress(5))},
		})
		require.Nil(t, err)
		assert.Equal(t, "NotGovernance", response.ReturnMessage)
		assert.Empty(t, response.Events)

		_, err = components.storer.LoadState()
		assert.Equal(t, storage.ErrStateNotFound, err)
		assert.Empty(t, components.savedBatches())
		assert.Equal(t, uint64(1), components.presenter.GetMetrics()[common.MetricNumFailedCalls])
	})
	t.Run("unauthenticated call should not reach the ledger", func(t *testing.T) {
		t.Parallel()

		components := createTestComponents(t)
		expectedErr := errors.New("invalid signature")
		nonceIncreased := false
		components.args.CallVerifier = &mock.CallVerifierStub{
			VerifyCalled: func(caller []byte, request *api.CallRequest) error {
				return expectedErr
			},
			IncreaseNonceCalled: func(caller []byte) error {
				nonceIncreased = true
				return nil
			},
		}
		lf, _ := NewLedgerFacade(components.args)

		response, err := lf.ExecuteCall(&api.CallRequest{
			Caller:    bech32(testAddress(1)),
			Function:  "addPool",
			Arguments: []string{bech32(testAddress(5))},
		})
		assert.Nil(t, response)
		assert.True(t, errors.Is(err, ErrUnauthorizedCall))
		assert.True(t, errors.Is(err, expectedErr))
		assert.False(t, nonceIncreased)
		assert.Empty(t, lf.GetPools())
		assert.Equal(t, uint64(1), components.presenter.GetMetrics()[common.MetricNumFailedCalls])
	})
	t.Run("executed calls should consume the caller nonce", func(t *testing.T) {
		t.Parallel()

		components := createTestComponents(t)
		increased := make([][]byte, 0)
		components.args.CallVerifier = &mock.CallVerifierStub{
			IncreaseNonceCalled: func(caller []byte) error {
				increased = append(increased, caller)
				return nil
			},
		}
		lf, _ := NewLedgerFacade(components.args)

		_, err := lf.ExecuteCall(&api.CallRequest{Caller: bech32(testAddress(2)), Function: "addPool", Arguments: []string{bech32(testAddress(5))}})
		require.Nil(t, err)
		_, err = lf.ExecuteCall(&api.CallRequest{Caller: bech32(testAddress(2)), Function: "burn", Arguments: []string{"01"}})
		require.Nil(t, err)
		_, err = lf.ExecuteCall(&api.CallRequest{Caller: bech32(testAddress(2)), Function: "totalSupply"})
		require.Nil(t, err)

		assert.Equal(t, [][]byte{testAddress(2), testAddress(2)}, increased)
	})
	t.Run("read only call should not persist", func(t *testing.T) {
		t.Parallel()

		components := createTestComponents(t)
		lf, _ := NewLedgerFacade(components.args)

		response, err := lf.ExecuteCall(&api.CallRequest{
			Caller:    bech32(testAddress(3)),
			Function:  "balanceOf",
			Arguments: []string{bech32(testAddress(2))},
		})
		require.Nil(t, err)
		assert.Equal(t, []string{"03e8"}, response.ReturnData)

		_, err = components.storer.LoadState()
		assert.Equal(t, storage.ErrStateNotFound, err)
		assert.Empty(t, components.savedBatches())
		assert.Nil(t, components.presenter.GetMetrics()[common.MetricNumSuccessfulCalls])
	})
}

func TestLedgerFacade_Getters(t *testing.T) {
	t.Parallel()

	components := createTestComponents(t)
	lf, _ := NewLedgerFacade(components.args)

	governance := bech32(testAddress(1))
	alice := bech32(testAddress(2))
	pool := bech32(testAddress(5))

	_, err := lf.ExecuteCall(&api.CallRequest{Caller: governance, Function: "addPool", Arguments: []string{pool}})
	require.Nil(t, err)
	_, err = lf.ExecuteCall(&api.CallRequest{Caller: governance, Function: "proposeTaxChange", Arguments: []string{"c8", "012c", "32"}})
	require.Nil(t, err)
	_, err = lf.ExecuteCall(&api.CallRequest{Caller: governance, Function: "proposeMint", Arguments: []string{alice, "01f4"}})
	require.Nil(t, err)
	_, err = lf.ExecuteCall(&api.CallRequest{Caller: alice, Function: "delegate", Arguments: []string{alice}})
	require.Nil(t, err)
	_, err = lf.ExecuteCall(&api.CallRequest{Caller: alice, Function: "approve", Arguments: []string{pool, "0a"}})
	require.Nil(t, err)

	supply := lf.GetSupply()
	assert.Equal(t, "1000", supply.TotalSupply)
	assert.Equal(t, common.DefaultMaxSupply, supply.MaxSupply)

	account, err := lf.GetAccount(alice)
	require.Nil(t, err)
	assert.Equal(t, &api.AccountResponse{
		Address:        alice,
		Balance:        "1000",
		Delegate:       alice,
		Votes:          "1000",
		NumCheckpoints: 1,
	}, account)

	components.args.CallVerifier = &mock.CallVerifierStub{
		NonceCalled: func(caller []byte) (uint64, error) {
			return 7, nil
		},
	}
	withNonces, _ := NewLedgerFacade(components.args)
	account, err = withNonces.GetAccount(alice)
	require.Nil(t, err)
	assert.Equal(t, uint64(7), account.Nonce)

	_, err = lf.GetAccount("invalid")
	assert.True(t, errors.Is(err, ErrInvalidAddress))

	allowance, err := lf.GetAllowance(alice, pool)
	require.Nil(t, err)
	assert.Equal(t, "10", allowance)

	taxResponse := lf.GetTax()
	assert.Equal(t, api.TaxRates{TransferBp: 100, SellBp: 100}, taxResponse.Active)
	require.NotNil(t, taxResponse.Pending)
	assert.Equal(t, api.TaxRates{TransferBp: 200, SellBp: 300, BuyBp: 50}, taxResponse.Pending.Rates)
	assert.Equal(t, startTime+common.TaxChangeTimelock, taxResponse.Pending.EffectiveAt)
	assert.False(t, taxResponse.BurnMode)
	assert.Equal(t, bech32(testAddress(4)), taxResponse.FeeRecipient)

	mint := lf.GetMint()
	require.NotNil(t, mint.Pending)
	assert.Equal(t, alice, mint.Pending.To)
	assert.Equal(t, "500", mint.Pending.Amount)
	assert.Equal(t, "0", mint.MintedInWindow)

	assert.Equal(t, []string{pool}, lf.GetPools())
	assert.Equal(t, governance, lf.GetGovernance())

	votes, err := lf.GetVotes(alice)
	require.Nil(t, err)
	assert.Equal(t, "1000", votes)

	_, err = lf.GetPastVotes(alice, startTime)
	assert.NotNil(t, err)
	_, err = lf.GetPastTotalSupply(startTime + 1)
	assert.NotNil(t, err)

	list, err := lf.GetCheckpoints(alice)
	require.Nil(t, err)
	assert.Equal(t, []*api.Checkpoint{{Timestamp: startTime, Value: "1000"}}, list)

	metrics := components.presenter.GetMetrics()
	assert.Equal(t, uint64(1), metrics[common.MetricNumPools])
	assert.Equal(t, uint64(1), metrics[common.MetricPendingTaxChange])
	assert.Equal(t, uint64(1), metrics[common.MetricPendingMint])
}

func TestLedgerFacade_GetState(t *testing.T) {
	t.Parallel()

	components := createTestComponents(t)
	lf, _ := NewLedgerFacade(components.args)

	first, err := lf.GetState()
	require.Nil(t, err)
	assert.Equal(t, "1000", first.State.TotalSupply)
	assert.Len(t, first.Hash, 64)

	second, _ := lf.GetState()
	assert.Equal(t, first.Hash, second.Hash)

	_, err = lf.ExecuteCall(&api.CallRequest{
		Caller:    bech32(testAddress(2)),
		Function:  "burn",
		Arguments: []string{"01"},
	})
	require.Nil(t, err)

	third, _ := lf.GetState()
	assert.NotEqual(t, first.Hash, third.Hash)
}

func TestLedgerFacade_NodeStatusAndHandlers(t *testing.T) {
	t.Parallel()

	components := createTestComponents(t)
	components.args.HostInfo = "host"
	components.args.RestApiInterface = DefaultRestPortOff
	components.args.PprofEnabled = true
	lf, _ := NewLedgerFacade(components.args)

	status := lf.GetNodeStatus()
	assert.Equal(t, common.NodeVersion, status.AppVersion)
	assert.Equal(t, startTime, status.CurrentTime)
	assert.Equal(t, "host", status.Host)
	assert.Equal(t, common.NodeVersion, status.Metrics[common.MetricAppVersion])

	_, _ = components.presenter.Write([]byte("line 1\nline 2\n"))
	assert.Equal(t, []string{"line 1", "line 2"}, lf.GetLogLines())

	assert.Nil(t, lf.MetricsHandler())
	_, err := lf.EventsWebsocketHandler()
	assert.Equal(t, ErrWebsocketDisabled, err)

	assert.Equal(t, DefaultRestPortOff, lf.RestApiInterface())
	assert.True(t, lf.PprofEnabled())
	assert.Nil(t, lf.Close())
}

func TestLedgerFacade_ConcurrentCalls(t *testing.T) {
	t.Parallel()

	lf, _ := NewLedgerFacade(createTestComponents(t).args)
	alice := bech32(testAddress(2))
	bob := bech32(testAddress(3))

	numReaders := 8
	numCalls := 50
	wg := sync.WaitGroup{}
	wg.Add(numReaders + 1)
	for i := 0; i < numReaders; i++ {
		go func() {
			defer wg.Done()

			for j := 0; j < numCalls; j++ {
				response, err := lf.ExecuteCall(&api.CallRequest{Caller: bob, Function: "balanceOf", Arguments: []string{alice}})
				assert.Nil(t, err)
				assert.Equal(t, "ok", response.ReturnCode)
				assert.Empty(t, response.Events)
			}
		}()
	}
	go func() {
		defer wg.Done()

		for j := 0; j < numCalls; j++ {
			response, err := lf.ExecuteCall(&api.CallRequest{Caller: alice, Function: "transfer", Arguments: []string{bob, "01"}})
			assert.Nil(t, err)
			assert.Equal(t, "ok", response.ReturnCode)
			assert.Len(t, response.Events, 1)
		}
	}()
	wg.Wait()

	account, err := lf.GetAccount(bob)
	require.Nil(t, err)
	assert.Equal(t, "50", account.Balance)
}
