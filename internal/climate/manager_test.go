package climate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gaia.climateintel.org/climatedb"
	"gaia.climateintel.org/internal/appconf"
	"gaia.climateintel.org/internal/feeds"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	manager, err := InitClimateManager(Config{
		DataPath: ":memory:",
		Env:      appconf.Test,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(manager.Shutdown)
	return manager
}

func TestInitClimateManager_SeedsEmptyDatabase(t *testing.T) {
	manager := newTestManager(t)

	count, err := manager.ClimateDB.Queries.CountObservations(context.Background())
	require.NoError(t, err)
	assert.Greater(t, count, int64(0))
}

func TestInitClimateManager_RejectsFileDBInTestEnv(t *testing.T) {
	_, err := InitClimateManager(Config{
		DataPath: t.TempDir() + "/climate.db",
		Env:      appconf.Test,
	}, nil)
	assert.Error(t, err)
}

func TestShutdown_Idempotent(t *testing.T) {
	manager, err := InitClimateManager(Config{
		DataPath: ":memory:",
		Env:      appconf.Test,
	}, nil)
	require.NoError(t, err)

	manager.Shutdown()
	manager.Shutdown() // must not panic or block
}

func TestAggregatedStats(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	stats, err := manager.AggregatedStats(ctx)
	require.NoError(t, err)

	for _, dataType := range climatedb.ObservationDataTypes {
		assert.NotNil(t, stats.Current[dataType], "current %s", dataType)
		assert.NotNil(t, stats.Predicted[dataType], "predicted %s", dataType)

		trend := stats.Trends[dataType]
		require.NotNil(t, trend, "trend %s", dataType)
		assert.Contains(t, []string{"increasing", "decreasing", "stable"}, trend.Direction)
	}

	// The CO2 record rises by about 2ppm per year, comfortably above
	// the seeded noise.
	assert.Equal(t, "increasing", stats.Trends[climatedb.DataTypeCO2].Direction)
	assert.Equal(t, 5, stats.ActiveEvents)
	assert.False(t, stats.UpdatedAt.IsZero())
}

func TestAggregatedStats_Cached(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	first, err := manager.AggregatedStats(ctx)
	require.NoError(t, err)

	second, err := manager.AggregatedStats(ctx)
	require.NoError(t, err)

	// Served from cache, so the computed-at timestamp is identical.
	assert.Equal(t, first.UpdatedAt, second.UpdatedAt)
}

func TestTrendFor(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	trend, err := manager.TrendFor(ctx, climatedb.DataTypeCO2)
	require.NoError(t, err)
	require.NotNil(t, trend)
	assert.Equal(t, "increasing", trend.Direction)
	assert.Greater(t, trend.AbsoluteChange, 0.0)

	// Repeated queries are served from the cache.
	again, err := manager.TrendFor(ctx, climatedb.DataTypeCO2)
	require.NoError(t, err)
	assert.Same(t, trend, again)
}

func TestTrendFor_NoHistory(t *testing.T) {
	manager := newTestManager(t)

	trend, err := manager.TrendFor(context.Background(), "uncharted")
	require.NoError(t, err)
	assert.Nil(t, trend)
}

func TestObservations_Cached(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	filter := climatedb.ObservationFilter{DataType: climatedb.DataTypeTemperature, Limit: 10}
	first, err := manager.Observations(ctx, filter)
	require.NoError(t, err)
	require.Len(t, first, 10)

	// A write that bypasses the cache is not visible until the TTL
	// expires or a refresh purges it.
	_, err = manager.ClimateDB.Queries.InsertObservation(ctx, climatedb.InsertObservationParams{
		DataType:  climatedb.DataTypeTemperature,
		Timestamp: time.Date(1850, time.January, 1, 0, 0, 0, 0, time.UTC),
		Value:     -0.3,
		Source:    "test",
	})
	require.NoError(t, err)

	second, err := manager.Observations(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestImportSeries_ReplacesPriorImport(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	series := feeds.Series{
		Feed:     feeds.FeedCO2Concentration,
		DataType: climatedb.DataTypeCO2,
		Records: []feeds.Record{
			{Year: 2020, Value: 412.5, Uncertainty: 0.12},
			{Year: 2021, Value: 414.7, Uncertainty: 0.12},
		},
		Checksum: "checksum-1",
	}
	require.NoError(t, manager.ImportSeries(ctx, series))

	imported, err := manager.ClimateDB.Queries.GetFeedImport(ctx, feeds.FeedCO2Concentration)
	require.NoError(t, err)
	assert.Equal(t, int64(2), imported.RecordCount)
	assert.Equal(t, "checksum-1", imported.Checksum)

	// Re-import with a new checksum replaces the old rows.
	series.Records = append(series.Records, feeds.Record{Year: 2022, Value: 417.1})
	series.Checksum = "checksum-2"
	require.NoError(t, manager.ImportSeries(ctx, series))

	observations, err := manager.ClimateDB.Queries.GetObservations(ctx, climatedb.ObservationFilter{
		DataType: climatedb.DataTypeCO2,
		Start:    time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:      time.Date(2022, time.December, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	var fromFeed int
	for _, observation := range observations {
		if observation.Source.String == "NOAA Mauna Loa CO2" {
			fromFeed++
		}
	}
	assert.Equal(t, 3, fromFeed)
}

func TestImportSeries_SkipsUnchangedChecksum(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	series := feeds.Series{
		Feed:     feeds.FeedSeaLevel,
		DataType: climatedb.DataTypeSeaLevel,
		Records:  []feeds.Record{{Year: 2023, Value: 101.2}},
		Checksum: "stable-checksum",
	}
	require.NoError(t, manager.ImportSeries(ctx, series))

	first, err := manager.ClimateDB.Queries.GetFeedImport(ctx, feeds.FeedSeaLevel)
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond)
	require.NoError(t, manager.ImportSeries(ctx, series))

	second, err := manager.ClimateDB.Queries.GetFeedImport(ctx, feeds.FeedSeaLevel)
	require.NoError(t, err)
	assert.Equal(t, first.FetchedAt, second.FetchedAt)
}

func TestImportSeries_UnknownFeed(t *testing.T) {
	manager := newTestManager(t)

	err := manager.ImportSeries(context.Background(), feeds.Series{Feed: "bogus"})
	assert.Error(t, err)
}
