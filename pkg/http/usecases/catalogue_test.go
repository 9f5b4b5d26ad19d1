package usecases

import (
	"testing"

	"github.com/lintang-b-s/transitcatalogue/pkg/engine"
	"github.com/lintang-b-s/transitcatalogue/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCatalogueServiceErrorCodes(t *testing.T) {
	eng, err := engine.NewEngine(zap.NewNop(), 8)
	require.NoError(t, err)
	eng.AddStop("A", 0, 0)
	service := NewCatalogueService(zap.NewNop(), eng)

	_, _, err = service.Route("A", "A")
	assert.ErrorIs(t, err, engine.ErrGraphNotBuilt)
	assert.ErrorIs(t, util.ErrorCode(err), util.ErrInternalServerError)

	_, err = service.NearbyStops(0, 0, 1)
	assert.ErrorIs(t, util.ErrorCode(err), util.ErrInternalServerError)

	eng.BuildGraph()

	_, err = service.BusInfo("nope")
	assert.ErrorIs(t, err, ErrBusNotFound)
	assert.ErrorIs(t, util.ErrorCode(err), util.ErrNotFound)

	_, err = service.StopBuses("nope")
	assert.ErrorIs(t, util.ErrorCode(err), util.ErrNotFound)

	route, path, err := service.Route("A", "A")
	require.NoError(t, err)
	assert.Empty(t, route.Items)
	assert.Equal(t, 0.0, route.TotalTime)
	assert.NotEmpty(t, path)

	_, _, err = service.Route("A", "B")
	assert.ErrorIs(t, err, ErrRouteNotFound)
}
