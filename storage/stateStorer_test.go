package storage_test

import (
	"errors"
	"testing"

	"github.com/multiversx/mx-chain-core-go/marshal"
	"github.com/multiversx/mx-chain-storage-go/memorydb"
	"github.com/multiversx/mx-chain-tax-ledger-go/ledger"
	"github.com/multiversx/mx-chain-tax-ledger-go/ledger/tax"
	"github.com/multiversx/mx-chain-tax-ledger-go/storage"
	"github.com/multiversx/mx-chain-tax-ledger-go/storage/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createMockArgumentsForStateStorer() storage.ArgsNewStateStorer {
	return storage.ArgsNewStateStorer{
		Persister:  memorydb.New(),
		Marshaller: &marshal.JsonMarshalizer{},
	}
}

func createSnapshot() *ledger.StateSnapshot {
	return &ledger.StateSnapshot{
		Governance:      "01",
		FeeRecipient:    "7e",
		Rates:           tax.Rates{TransferBp: 100, SellBp: 300, BuyBp: 200},
		StrategyVersion: tax.StandardStrategyVersion,
		MintWindowStart: 1000,
		MintedInWindow:  "10",
		PendingMint: &ledger.PendingMintData{
			To:          "a1",
			Amount:      "5",
			EffectiveAt: 2000,
		},
		TotalSupply: "110",
		Pools:       []string{"50"},
		Balances:    map[string]string{"a1": "100", "7e": "10"},
		Allowances:  map[string]map[string]string{"a1": {"b0": "3"}},
		Delegates:   map[string]string{"a1": "a1"},
		Checkpoints: map[string][]ledger.CheckpointData{
			"a1": {{Timestamp: 1000, Value: "100"}},
		},
		TotalSupplyCheckpoints: []ledger.CheckpointData{{Timestamp: 1000, Value: "110"}},
	}
}

func TestNewStateStorer(t *testing.T) {
	t.Parallel()

	t.Run("nil persister should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgumentsForStateStorer()
		args.Persister = nil
		ss, err := storage.NewStateStorer(args)
		assert.Nil(t, ss)
		assert.Equal(t, storage.ErrNilPersister, err)
	})
	t.Run("nil marshaller should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgumentsForStateStorer()
		args.Marshaller = nil
		ss, err := storage.NewStateStorer(args)
		assert.Nil(t, ss)
		assert.Equal(t, storage.ErrNilMarshalizer, err)
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		ss, err := storage.NewStateStorer(createMockArgumentsForStateStorer())
		assert.Nil(t, err)
		assert.False(t, ss.IsInterfaceNil())
	})
}

func TestStateStorer_SaveLoad(t *testing.T) {
	t.Parallel()

	t.Run("empty persister returns not found", func(t *testing.T) {
		t.Parallel()

		ss, _ := storage.NewStateStorer(createMockArgumentsForStateStorer())
		snapshot, err := ss.LoadState()
		assert.Nil(t, snapshot)
		assert.Equal(t, storage.ErrStateNotFound, err)
	})
	t.Run("nil snapshot should error", func(t *testing.T) {
		t.Parallel()

		ss, _ := storage.NewStateStorer(createMockArgumentsForStateStorer())
		assert.Equal(t, storage.ErrNilStateSnapshot, ss.SaveState(nil))
	})
	t.Run("put error is returned", func(t *testing.T) {
		t.Parallel()

		expectedErr := errors.New("expected error")
		args := createMockArgumentsForStateStorer()
		args.Persister = &mock.PersisterStub{
			PutCalled: func(key, val []byte) error {
				return expectedErr
			},
		}
		ss, _ := storage.NewStateStorer(args)
		assert.Equal(t, expectedErr, ss.SaveState(createSnapshot()))
	})
	t.Run("corrupted state should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgumentsForStateStorer()
		args.Persister = &mock.PersisterStub{
			GetCalled: func(key []byte) ([]byte, error) {
				return []byte("not a json"), nil
			},
		}
		ss, _ := storage.NewStateStorer(args)
		snapshot, err := ss.LoadState()
		assert.Nil(t, snapshot)
		assert.Contains(t, err.Error(), "while decoding the saved ledger state")
	})
	t.Run("should work and overwrite", func(t *testing.T) {
		t.Parallel()

		ss, _ := storage.NewStateStorer(createMockArgumentsForStateStorer())
		first := createSnapshot()
		require.Nil(t, ss.SaveState(first))

		second := createSnapshot()
		second.TotalSupply = "111"
		second.Balances["c0"] = "1"
		require.Nil(t, ss.SaveState(second))

		loaded, err := ss.LoadState()
		require.Nil(t, err)
		assert.Equal(t, second, loaded)
		assert.Nil(t, ss.Close())
	})
}

func TestStateStorer_Nonces(t *testing.T) {
	t.Parallel()

	t.Run("unknown caller should start from zero", func(t *testing.T) {
		t.Parallel()

		ss, _ := storage.NewStateStorer(createMockArgumentsForStateStorer())
		nonce, err := ss.GetNonce([]byte("alice"))
		assert.Nil(t, err)
		assert.Equal(t, uint64(0), nonce)
	})
	t.Run("corrupted nonce should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgumentsForStateStorer()
		args.Persister = &mock.PersisterStub{
			GetCalled: func(key []byte) ([]byte, error) {
				return []byte("not a number"), nil
			},
		}
		ss, _ := storage.NewStateStorer(args)
		_, err := ss.GetNonce([]byte("alice"))
		assert.NotNil(t, err)
	})
	t.Run("nonces should be kept per caller and apart from the state", func(t *testing.T) {
		t.Parallel()

		ss, _ := storage.NewStateStorer(createMockArgumentsForStateStorer())
		require.Nil(t, ss.SaveNonce([]byte("alice"), 3))
		require.Nil(t, ss.SaveNonce([]byte("bob"), 7))
		require.Nil(t, ss.SaveNonce([]byte("alice"), 4))

		nonce, err := ss.GetNonce([]byte("alice"))
		require.Nil(t, err)
		assert.Equal(t, uint64(4), nonce)
		nonce, _ = ss.GetNonce([]byte("bob"))
		assert.Equal(t, uint64(7), nonce)

		_, err = ss.LoadState()
		assert.Equal(t, storage.ErrStateNotFound, err)
	})
}
