package outport_test

import (
	"errors"
	"testing"

	"github.com/multiversx/mx-chain-tax-ledger-go/outport"
	"github.com/multiversx/mx-chain-tax-ledger-go/outport/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOutport(t *testing.T) {
	t.Parallel()

	outportHandler := outport.NewOutport()
	assert.False(t, outportHandler.IsInterfaceNil())
	assert.False(t, outportHandler.HasDrivers())
}

func TestOutport_SubscribeDriver(t *testing.T) {
	t.Parallel()

	outportHandler := outport.NewOutport()

	err := outportHandler.SubscribeDriver(nil)
	assert.Equal(t, outport.ErrNilDriver, err)

	err = outportHandler.SubscribeDriver(&mock.DriverStub{})
	assert.Nil(t, err)
	assert.True(t, outportHandler.HasDrivers())
}

func TestOutport_SaveEvents(t *testing.T) {
	t.Parallel()

	t.Run("nil batch should error", func(t *testing.T) {
		t.Parallel()

		outportHandler := outport.NewOutport()
		assert.Equal(t, outport.ErrNilEventsBatch, outportHandler.SaveEvents(nil))
	})
	t.Run("failing driver does not stop the others", func(t *testing.T) {
		t.Parallel()

		expectedErr := errors.New("expected error")
		numCalled := 0
		failing := &mock.DriverStub{
			SaveEventsCalled: func(batch *outport.EventsBatch) error {
				numCalled++
				return expectedErr
			},
		}
		working := &mock.DriverStub{
			SaveEventsCalled: func(batch *outport.EventsBatch) error {
				numCalled++
				assert.Equal(t, "transfer", batch.Operation)
				return nil
			},
		}

		outportHandler := outport.NewOutport()
		require.Nil(t, outportHandler.SubscribeDriver(failing))
		require.Nil(t, outportHandler.SubscribeDriver(working))

		err := outportHandler.SaveEvents(&outport.EventsBatch{Operation: "transfer"})
		assert.Equal(t, expectedErr, err)
		assert.Equal(t, 2, numCalled)
	})
}

func TestOutport_Close(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New("expected error")
	numClosed := 0
	outportHandler := outport.NewOutport()
	_ = outportHandler.SubscribeDriver(&mock.DriverStub{
		CloseCalled: func() error {
			numClosed++
			return expectedErr
		},
	})
	_ = outportHandler.SubscribeDriver(&mock.DriverStub{
		CloseCalled: func() error {
			numClosed++
			return nil
		},
	})

	assert.Equal(t, expectedErr, outportHandler.Close())
	assert.Equal(t, 2, numClosed)
}
