package queries_test

import (
	"testing"
	"time"

	"tailoring/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListStalePlacedOrdersQuery_Valid(t *testing.T) {
	query, err := queries.NewListStalePlacedOrdersQuery(30 * time.Minute)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, 30*time.Minute, query.StaleAfter())
}

func TestNewListStalePlacedOrdersQuery_InvalidDuration(t *testing.T) {
	_, err := queries.NewListStalePlacedOrdersQuery(0)
	require.ErrorIs(t, err, queries.ErrStaleAfterIsInvalid)

	_, err = queries.NewListStalePlacedOrdersQuery(-time.Minute)
	require.ErrorIs(t, err, queries.ErrStaleAfterIsInvalid)
}

func TestListStalePlacedOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ListStalePlacedOrdersQuery{}
	err := query.Validate()
	require.ErrorIs(t, err, queries.ErrListStalePlacedOrdersQueryIsNotConstructed)
}
