package climate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gaia.climateintel.org/climatedb"
)

// Trend compares the latest reading of a data type against the reading
// from one year earlier.
type Trend struct {
	Current          float64 `json:"current"`
	Previous         float64 `json:"previous"`
	AbsoluteChange   float64 `json:"absoluteChange"`
	PercentageChange float64 `json:"percentageChange"`
	Direction        string  `json:"direction"`
}

// AggregatedStats is the platform-wide climate summary: latest readings,
// latest predictions, one-year trends and the active alert count.
type AggregatedStats struct {
	Current      map[string]*float64 `json:"current"`
	Predicted    map[string]*float64 `json:"predicted"`
	Trends       map[string]*Trend   `json:"trends"`
	ActiveEvents int                 `json:"activeEvents"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

// Observations returns observations matching the filter, serving
// repeated queries from the TTL cache.
func (manager *Manager) Observations(ctx context.Context, filter climatedb.ObservationFilter) ([]climatedb.Observation, error) {
	key := observationCacheKey(filter)
	if cached, ok := manager.cache.get(key); ok {
		return cached.([]climatedb.Observation), nil
	}

	observations, err := manager.ClimateDB.Queries.GetObservations(ctx, filter)
	if err != nil {
		return nil, err
	}
	manager.cache.set(key, observations)
	return observations, nil
}

// ActiveAlerts returns unexpired active alerts matching the filter.
func (manager *Manager) ActiveAlerts(ctx context.Context, filter climatedb.AlertFilter) ([]climatedb.Alert, error) {
	return manager.ClimateDB.Queries.GetActiveAlerts(ctx, filter)
}

// AggregatedStats builds the platform summary. The result is cached for
// an hour; a feed refresh purges it early.
func (manager *Manager) AggregatedStats(ctx context.Context) (AggregatedStats, error) {
	const cacheKey = "aggregated_stats"
	if cached, ok := manager.cache.get(cacheKey); ok {
		return cached.(AggregatedStats), nil
	}

	stats := AggregatedStats{
		Current:   make(map[string]*float64, len(climatedb.ObservationDataTypes)),
		Predicted: make(map[string]*float64, len(climatedb.ObservationDataTypes)),
		Trends:    make(map[string]*Trend, len(climatedb.ObservationDataTypes)),
		UpdatedAt: time.Now().UTC(),
	}

	for _, dataType := range climatedb.ObservationDataTypes {
		current, err := manager.latestValue(ctx, dataType, false)
		if err != nil {
			return AggregatedStats{}, fmt.Errorf("error reading latest %s value: %w", dataType, err)
		}
		stats.Current[dataType] = current

		predicted, err := manager.latestValue(ctx, dataType, true)
		if err != nil {
			return AggregatedStats{}, fmt.Errorf("error reading predicted %s value: %w", dataType, err)
		}
		stats.Predicted[dataType] = predicted

		trend, err := manager.calculateTrend(ctx, dataType)
		if err != nil {
			return AggregatedStats{}, fmt.Errorf("error calculating %s trend: %w", dataType, err)
		}
		stats.Trends[dataType] = trend
	}

	alerts, err := manager.ClimateDB.Queries.GetActiveAlerts(ctx, climatedb.AlertFilter{})
	if err != nil {
		return AggregatedStats{}, fmt.Errorf("error counting active alerts: %w", err)
	}
	stats.ActiveEvents = len(alerts)

	manager.cache.set(cacheKey, stats)
	return stats, nil
}

// TrendFor returns the one-year trend for a single data type, serving
// repeated queries from the TTL cache. Returns nil when the type has no
// usable history.
func (manager *Manager) TrendFor(ctx context.Context, dataType string) (*Trend, error) {
	key := "trend:" + dataType
	if cached, ok := manager.cache.get(key); ok {
		return cached.(*Trend), nil
	}

	trend, err := manager.calculateTrend(ctx, dataType)
	if err != nil {
		return nil, err
	}
	manager.cache.set(key, trend)
	return trend, nil
}

// latestValue returns the most recent value for a data type, or nil
// when no observations of that kind exist.
func (manager *Manager) latestValue(ctx context.Context, dataType string, isPrediction bool) (*float64, error) {
	observation, err := manager.ClimateDB.Queries.GetLatestObservation(ctx, dataType, isPrediction)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &observation.Value, nil
}

// calculateTrend compares the latest reading against the latest reading
// at least one year old. Returns nil when either side is missing.
func (manager *Manager) calculateTrend(ctx context.Context, dataType string) (*Trend, error) {
	latest, err := manager.ClimateDB.Queries.GetLatestObservation(ctx, dataType, false)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	oneYearAgo := time.Now().UTC().AddDate(-1, 0, 0)
	previous, err := manager.ClimateDB.Queries.GetLatestObservationBefore(ctx, dataType, oneYearAgo)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	trend := &Trend{
		Current:        latest.Value,
		Previous:       previous.Value,
		AbsoluteChange: latest.Value - previous.Value,
	}
	if previous.Value != 0 {
		trend.PercentageChange = trend.AbsoluteChange / previous.Value * 100
	}

	switch {
	case trend.AbsoluteChange > 0:
		trend.Direction = "increasing"
	case trend.AbsoluteChange < 0:
		trend.Direction = "decreasing"
	default:
		trend.Direction = "stable"
	}
	return trend, nil
}

func observationCacheKey(filter climatedb.ObservationFilter) string {
	prediction := "any"
	if filter.IsPrediction != nil {
		prediction = fmt.Sprintf("%t", *filter.IsPrediction)
	}
	return fmt.Sprintf("observations:%s:%d:%d:%s:%d",
		filter.DataType, filter.Start.Unix(), filter.End.Unix(), prediction, filter.Limit)
}
