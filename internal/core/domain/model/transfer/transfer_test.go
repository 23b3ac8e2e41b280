package transfer_test

import (
	"testing"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/transfer"
	"tracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingTransfer(t *testing.T, pieces int) *transfer.Transfer {
	t.Helper()

	from, err := kernel.NewArea("corte")
	require.NoError(t, err)
	to, err := kernel.NewArea("bordado")
	require.NoError(t, err)

	tr, err := transfer.NewTransfer(
		kernel.NewUUID(), kernel.NewUUID(), from, to, pieces,
		kernel.NewUUID(), time.Now(),
	)
	require.NoError(t, err)
	return tr
}

func TestNewTransfer(t *testing.T) {
	t.Run("starts_pending", func(t *testing.T) {
		tr := newPendingTransfer(t, 30)

		assert.Equal(t, transfer.StatusPending, tr.Status())
		assert.Equal(t, 30, tr.Pieces())
		assert.Equal(t, kernel.AreaCorte, tr.FromArea())
		assert.Equal(t, kernel.AreaBordado, tr.ToArea())
		assert.Nil(t, tr.ProcessedBy())
		assert.Nil(t, tr.ProcessedAt())
	})

	t.Run("rejects_same_source_and_destination", func(t *testing.T) {
		area, err := kernel.NewArea("corte")
		require.NoError(t, err)

		_, err = transfer.NewTransfer(
			kernel.NewUUID(), kernel.NewUUID(), area, area, 10,
			kernel.NewUUID(), time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_non_positive_pieces", func(t *testing.T) {
		from, err := kernel.NewArea("corte")
		require.NoError(t, err)
		to, err := kernel.NewArea("ensamble")
		require.NoError(t, err)

		for _, pieces := range []int{0, -1} {
			_, err := transfer.NewTransfer(
				kernel.NewUUID(), kernel.NewUUID(), from, to, pieces,
				kernel.NewUUID(), time.Now(),
			)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("rejects_invalid_area", func(t *testing.T) {
		to, err := kernel.NewArea("ensamble")
		require.NoError(t, err)

		_, err = transfer.NewTransfer(
			kernel.NewUUID(), kernel.NewUUID(), kernel.Area("warehouse"), to, 10,
			kernel.NewUUID(), time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestTransfer_Accept(t *testing.T) {
	t.Run("pending_accepts", func(t *testing.T) {
		tr := newPendingTransfer(t, 30)
		decider := kernel.NewUUID()
		decidedAt := time.Now()

		require.NoError(t, tr.Accept(decider, decidedAt))

		assert.Equal(t, transfer.StatusAccepted, tr.Status())
		require.NotNil(t, tr.ProcessedBy())
		assert.True(t, decider.IsEqual(*tr.ProcessedBy()))
		require.NotNil(t, tr.ProcessedAt())
		assert.Equal(t, decidedAt, *tr.ProcessedAt())
	})

	t.Run("double_accept_fails", func(t *testing.T) {
		tr := newPendingTransfer(t, 30)
		require.NoError(t, tr.Accept(kernel.NewUUID(), time.Now()))

		err := tr.Accept(kernel.NewUUID(), time.Now())
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("accept_after_reject_fails", func(t *testing.T) {
		tr := newPendingTransfer(t, 30)
		require.NoError(t, tr.Reject(kernel.NewUUID(), time.Now()))

		err := tr.Accept(kernel.NewUUID(), time.Now())
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestTransfer_Reject(t *testing.T) {
	tr := newPendingTransfer(t, 12)
	decider := kernel.NewUUID()

	require.NoError(t, tr.Reject(decider, time.Now()))

	assert.Equal(t, transfer.StatusRejected, tr.Status())
	require.NotNil(t, tr.ProcessedBy())
	assert.True(t, decider.IsEqual(*tr.ProcessedBy()))

	require.ErrorIs(t, tr.Reject(decider, time.Now()), errs.ErrInvalidState)
}

func TestTransfer_IsPartial(t *testing.T) {
	tr := newPendingTransfer(t, 30)

	assert.True(t, tr.IsPartial(100))
	assert.False(t, tr.IsPartial(30))
}

func TestRestoreTransfer(t *testing.T) {
	from, err := kernel.NewArea("ensamble")
	require.NoError(t, err)
	to, err := kernel.NewArea("plancha")
	require.NoError(t, err)
	decider := kernel.NewUUID()
	decidedAt := time.Now()

	tr, err := transfer.RestoreTransfer(
		kernel.NewUUID(), kernel.NewUUID(), from, to, 45,
		transfer.StatusAccepted,
		kernel.NewUUID(), &decider, time.Now().Add(-time.Minute), &decidedAt,
	)
	require.NoError(t, err)

	assert.Equal(t, transfer.StatusAccepted, tr.Status())
	require.NotNil(t, tr.ProcessedAt())

	_, err = transfer.RestoreTransfer(
		kernel.NewUUID(), kernel.NewUUID(), from, to, 45,
		transfer.StatusUnknown,
		kernel.NewUUID(), nil, time.Now(), nil,
	)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatusFromString(t *testing.T) {
	for _, status := range []transfer.Status{transfer.StatusPending, transfer.StatusAccepted, transfer.StatusRejected} {
		parsed, err := transfer.StatusFromString(status.String())
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := transfer.StatusFromString("canceled")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
