package climatedb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gaia.climateintel.org/internal/appconf"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	config := Config{
		DBPath:  ":memory:",
		Env:     appconf.Test,
		verbose: false,
	}

	client, err := NewClient(config)
	require.NoError(t, err, "NewClient should succeed with valid config")
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNewClient_InvalidConfigHandling(t *testing.T) {
	// Test env with a file-backed DB must be rejected
	config := Config{
		DBPath:  "/tmp/invalid_test_db.sqlite",
		Env:     appconf.Test,
		verbose: false,
	}

	client, err := NewClient(config)
	assert.Error(t, err, "NewClient should return error for invalid test config")
	assert.Nil(t, client, "Client should be nil when creation fails")
	assert.Contains(t, err.Error(), "test database must use in-memory storage")
}

func TestNewClient_ValidConfig(t *testing.T) {
	client := newTestClient(t)

	assert.NotNil(t, client.DB, "Database should be initialized")
	assert.NotNil(t, client.Queries, "Queries should be initialized")
}

func TestSchemaCreatesAllTables(t *testing.T) {
	client := newTestClient(t)

	counts, err := client.TableCounts()
	require.NoError(t, err)

	for _, table := range []string{
		"observations", "alerts", "simulation_results", "datasets",
		"users", "user_preferences", "saved_locations", "feed_imports",
	} {
		_, ok := counts[table]
		assert.True(t, ok, "expected table %q to exist", table)
	}
}

func TestSeedIfEmpty(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.SeedIfEmpty(ctx, nil)
	require.NoError(t, err)

	obsCount, err := client.Queries.CountObservations(ctx)
	require.NoError(t, err)
	assert.Greater(t, obsCount, int64(0), "seed should create observations")

	alertCount, err := client.Queries.CountAlerts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), alertCount, "seed should create five alerts")

	userCount, err := client.Queries.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), userCount, "seed should create admin and demo users")

	simCount, err := client.Queries.CountSimulationResults(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), simCount, "seed should create three scenario results")

	datasets, err := client.Queries.ListDatasets(ctx)
	require.NoError(t, err)
	assert.Len(t, datasets, 5, "seed should create the dataset catalog")

	// Seeding an already-populated database is a no-op
	err = client.SeedIfEmpty(ctx, nil)
	require.NoError(t, err)
	obsCountAfter, err := client.Queries.CountObservations(ctx)
	require.NoError(t, err)
	assert.Equal(t, obsCount, obsCountAfter, "second seed should not add rows")
}
