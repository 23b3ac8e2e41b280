package queries_test

import (
	"testing"

	"tracker/internal/core/application/usecases/queries"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetUnitQuery(t *testing.T) {
	t.Run("valid_query", func(t *testing.T) {
		unitID := kernel.NewUUID()
		query, err := queries.NewGetUnitQuery(unitID)
		require.NoError(t, err)
		assert.True(t, unitID.IsEqual(query.UnitID()))
		require.NoError(t, query.Validate())
	})

	t.Run("rejects_empty_id", func(t *testing.T) {
		_, err := queries.NewGetUnitQuery(kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var query queries.GetUnitQuery
		require.ErrorIs(t, query.Validate(), queries.ErrGetUnitQueryIsNotConstructed)
	})
}

func TestNewGetUnitHistoryQuery(t *testing.T) {
	unitID := kernel.NewUUID()
	query, err := queries.NewGetUnitHistoryQuery(unitID)
	require.NoError(t, err)
	assert.True(t, unitID.IsEqual(query.UnitID()))

	var zero queries.GetUnitHistoryQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetUnitHistoryQueryIsNotConstructed)
}

func TestNewGetUnitTimersQuery(t *testing.T) {
	unitID := kernel.NewUUID()
	query, err := queries.NewGetUnitTimersQuery(unitID)
	require.NoError(t, err)
	assert.True(t, unitID.IsEqual(query.UnitID()))
}

func TestAreaScopedQueries_RejectInvalidArea(t *testing.T) {
	bad := kernel.Area("warehouse")

	_, err := queries.NewGetUnitsByAreaQuery(bad)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = queries.NewGetAreaRecordsQuery(bad)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = queries.NewGetPendingTransfersQuery(bad)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestAreaScopedQueries_Construct(t *testing.T) {
	query, err := queries.NewGetPendingTransfersQuery(kernel.AreaBordado)
	require.NoError(t, err)
	assert.Equal(t, kernel.AreaBordado, query.Area())
	require.NoError(t, query.Validate())
}
