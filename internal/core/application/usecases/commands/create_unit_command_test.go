package commands_test

import (
	"testing"

	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/unit"
	"tracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateUnitCommand(t *testing.T) {
	unitID := kernel.NewUUID()
	createdBy := kernel.NewUUID()

	t.Run("valid_command", func(t *testing.T) {
		cmd, err := commands.NewCreateUnitCommand(
			unitID, unit.KindOrder, "OP-2024-0001", 120, kernel.AreaCorte, createdBy,
		)
		require.NoError(t, err)

		assert.True(t, unitID.IsEqual(cmd.UnitID()))
		assert.Equal(t, unit.KindOrder, cmd.Kind())
		assert.Equal(t, "OP-2024-0001", cmd.Folio())
		assert.Equal(t, 120, cmd.TotalPieces())
		assert.Equal(t, kernel.AreaCorte, cmd.InitialArea())
		require.NoError(t, cmd.Validate())
	})

	t.Run("rejects_zero_pieces", func(t *testing.T) {
		_, err := commands.NewCreateUnitCommand(
			unitID, unit.KindOrder, "OP-2024-0001", 0, kernel.AreaCorte, createdBy,
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_empty_folio", func(t *testing.T) {
		_, err := commands.NewCreateUnitCommand(
			unitID, unit.KindOrder, "", 10, kernel.AreaCorte, createdBy,
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_invalid_area", func(t *testing.T) {
		_, err := commands.NewCreateUnitCommand(
			unitID, unit.KindOrder, "OP-2024-0001", 10, kernel.Area("warehouse"), createdBy,
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var cmd commands.CreateUnitCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateUnitCommandIsNotConstructed)
	})
}
