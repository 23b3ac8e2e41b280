package history_test

import (
	"testing"
	"time"

	"tracker/internal/core/domain/model/history"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	t.Run("creates_event", func(t *testing.T) {
		unitID := kernel.NewUUID()
		actor := kernel.NewUUID()
		occurredAt := time.Now()

		event, err := history.NewEvent(
			kernel.NewUUID(), unitID, history.ActionTransferAccepted,
			"30 piezas transferidas de Corte a Bordado", actor, occurredAt,
		)
		require.NoError(t, err)

		assert.True(t, unitID.IsEqual(event.UnitID()))
		assert.Equal(t, history.ActionTransferAccepted, event.Action())
		assert.Equal(t, "30 piezas transferidas de Corte a Bordado", event.Description())
		assert.True(t, actor.IsEqual(event.Actor()))
		assert.Equal(t, occurredAt, event.OccurredAt())
		assert.Nil(t, event.FromArea())
		assert.Nil(t, event.Pieces())
	})

	t.Run("movement_event_carries_route", func(t *testing.T) {
		event, err := history.NewMovementEvent(
			kernel.NewUUID(), kernel.NewUUID(), history.ActionTransferCreated,
			"Transferencia propuesta: 30 piezas de Corte a Bordado",
			kernel.NewUUID(), kernel.AreaCorte, kernel.AreaBordado, 30, time.Now(),
		)
		require.NoError(t, err)

		require.NotNil(t, event.FromArea())
		assert.Equal(t, kernel.AreaCorte, *event.FromArea())
		require.NotNil(t, event.ToArea())
		assert.Equal(t, kernel.AreaBordado, *event.ToArea())
		require.NotNil(t, event.Pieces())
		assert.Equal(t, 30, *event.Pieces())
	})

	t.Run("movement_event_rejects_non_positive_pieces", func(t *testing.T) {
		_, err := history.NewMovementEvent(
			kernel.NewUUID(), kernel.NewUUID(), history.ActionTransferAccepted,
			"", kernel.NewUUID(), kernel.AreaCorte, kernel.AreaBordado, 0, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty_description_is_allowed", func(t *testing.T) {
		_, err := history.NewEvent(
			kernel.NewUUID(), kernel.NewUUID(), history.ActionResumed,
			"", kernel.NewUUID(), time.Now(),
		)
		require.NoError(t, err)
	})

	t.Run("rejects_unknown_action", func(t *testing.T) {
		_, err := history.NewEvent(
			kernel.NewUUID(), kernel.NewUUID(), history.Action("archived"),
			"", kernel.NewUUID(), time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("requires_actor", func(t *testing.T) {
		_, err := history.NewEvent(
			kernel.NewUUID(), kernel.NewUUID(), history.ActionCreated,
			"", kernel.UUID{}, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestAction_Validate(t *testing.T) {
	valid := []history.Action{
		history.ActionCreated, history.ActionTransferCreated, history.ActionTransferAccepted,
		history.ActionTransferRejected, history.ActionPaused, history.ActionResumed,
		history.ActionCompleted, history.ActionCanceled, history.ActionDeleted,
		history.ActionApproved, history.ActionRejected, history.ActionCompletionRequested,
		history.ActionTimerStopped, history.ActionManualTimeSet,
	}
	for _, action := range valid {
		require.NoError(t, action.Validate(), "%s should be valid", action)
	}

	require.Error(t, history.Action("").Validate())
	require.Error(t, history.Action("updated").Validate())
}
