package climatedb

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insertTestObservation(t *testing.T, client *Client, dataType string, ts time.Time, value float64, isPrediction bool) {
	t.Helper()
	_, err := client.Queries.InsertObservation(context.Background(), InsertObservationParams{
		DataType:     dataType,
		Timestamp:    ts,
		Value:        value,
		Source:       "test",
		IsPrediction: isPrediction,
	})
	require.NoError(t, err)
}

func TestGetObservations_Filters(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	base := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	insertTestObservation(t, client, DataTypeTemperature, base, 0.9, false)
	insertTestObservation(t, client, DataTypeTemperature, base.AddDate(1, 0, 0), 1.0, false)
	insertTestObservation(t, client, DataTypeTemperature, base.AddDate(2, 0, 0), 1.1, false)
	insertTestObservation(t, client, DataTypeTemperature, base.AddDate(10, 0, 0), 1.5, true)
	insertTestObservation(t, client, DataTypeCO2, base, 412.0, false)

	t.Run("filters by data type", func(t *testing.T) {
		obs, err := client.Queries.GetObservations(ctx, ObservationFilter{DataType: DataTypeCO2})
		require.NoError(t, err)
		require.Len(t, obs, 1)
		assert.Equal(t, 412.0, obs[0].Value)
	})

	t.Run("filters by date range", func(t *testing.T) {
		obs, err := client.Queries.GetObservations(ctx, ObservationFilter{
			DataType: DataTypeTemperature,
			Start:    base.AddDate(0, 6, 0),
			End:      base.AddDate(1, 6, 0),
		})
		require.NoError(t, err)
		require.Len(t, obs, 1)
		assert.Equal(t, 1.0, obs[0].Value)
	})

	t.Run("filters by prediction flag", func(t *testing.T) {
		isPrediction := true
		obs, err := client.Queries.GetObservations(ctx, ObservationFilter{
			DataType:     DataTypeTemperature,
			IsPrediction: &isPrediction,
		})
		require.NoError(t, err)
		require.Len(t, obs, 1)
		assert.True(t, obs[0].IsPrediction)
	})

	t.Run("orders by timestamp and honors limit", func(t *testing.T) {
		obs, err := client.Queries.GetObservations(ctx, ObservationFilter{
			DataType: DataTypeTemperature,
			Limit:    2,
		})
		require.NoError(t, err)
		require.Len(t, obs, 2)
		assert.True(t, obs[0].Timestamp.Before(obs[1].Timestamp))
	})
}

func TestGetLatestObservation(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	base := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	insertTestObservation(t, client, DataTypeSeaLevel, base, 90.0, false)
	insertTestObservation(t, client, DataTypeSeaLevel, base.AddDate(1, 0, 0), 93.3, false)

	obs, err := client.Queries.GetLatestObservation(ctx, DataTypeSeaLevel, false)
	require.NoError(t, err)
	assert.Equal(t, 93.3, obs.Value)

	before, err := client.Queries.GetLatestObservationBefore(ctx, DataTypeSeaLevel, base.AddDate(0, 6, 0))
	require.NoError(t, err)
	assert.Equal(t, 90.0, before.Value)
}

func TestDeleteObservationsBySource(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	insertTestObservation(t, client, DataTypeTemperature, time.Now(), 1.1, false)
	require.NoError(t, client.Queries.DeleteObservationsBySource(ctx, "test"))

	count, err := client.Queries.CountObservations(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestActiveAlertFiltering(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	future := sql.NullTime{Time: time.Now().Add(24 * time.Hour), Valid: true}
	past := sql.NullTime{Time: time.Now().Add(-24 * time.Hour), Valid: true}

	_, err := client.Queries.InsertAlert(ctx, InsertAlertParams{
		AlertType: AlertTypeDrought, Severity: 3, Region: "Western United States",
		Latitude: 36.7, Longitude: -119.4, Title: "Drought", ExpiresAt: future,
	})
	require.NoError(t, err)

	_, err = client.Queries.InsertAlert(ctx, InsertAlertParams{
		AlertType: AlertTypeFlood, Severity: 5, Region: "Southeast Asia",
		Latitude: 14.0, Longitude: 108.2, Title: "Flood", ExpiresAt: future,
	})
	require.NoError(t, err)

	expiredID, err := client.Queries.InsertAlert(ctx, InsertAlertParams{
		AlertType: AlertTypeWildfire, Severity: 4, Region: "Mediterranean",
		Latitude: 38.7, Longitude: -9.1, Title: "Expired fire", ExpiresAt: past,
	})
	require.NoError(t, err)
	_ = expiredID

	t.Run("excludes expired alerts", func(t *testing.T) {
		alerts, err := client.Queries.GetActiveAlerts(ctx, AlertFilter{})
		require.NoError(t, err)
		assert.Len(t, alerts, 2)
	})

	t.Run("filters by minimum severity", func(t *testing.T) {
		alerts, err := client.Queries.GetActiveAlerts(ctx, AlertFilter{MinSeverity: 4})
		require.NoError(t, err)
		require.Len(t, alerts, 1)
		assert.Equal(t, AlertTypeFlood, alerts[0].AlertType)
	})

	t.Run("filters by region", func(t *testing.T) {
		alerts, err := client.Queries.GetActiveAlerts(ctx, AlertFilter{Region: "Southeast Asia"})
		require.NoError(t, err)
		require.Len(t, alerts, 1)
	})

	t.Run("excludes deactivated alerts", func(t *testing.T) {
		alerts, err := client.Queries.GetActiveAlerts(ctx, AlertFilter{AlertType: AlertTypeDrought})
		require.NoError(t, err)
		require.Len(t, alerts, 1)

		require.NoError(t, client.Queries.DeactivateAlert(ctx, alerts[0].ID))

		alerts, err = client.Queries.GetActiveAlerts(ctx, AlertFilter{AlertType: AlertTypeDrought})
		require.NoError(t, err)
		assert.Empty(t, alerts)
	})
}
