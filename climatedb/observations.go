package climatedb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// MaxObservationLimit caps the number of rows a single query may return
const MaxObservationLimit = 1000

// InsertObservationParams carries the fields for a new observation row
type InsertObservationParams struct {
	DataType        string
	Timestamp       time.Time
	Value           float64
	Latitude        sql.NullFloat64
	Longitude       sql.NullFloat64
	Source          string
	IsPrediction    bool
	PredictionModel string
	Metadata        string // JSON blob, may be empty
}

// ObservationFilter narrows observation queries. Zero values mean "no filter".
type ObservationFilter struct {
	DataType     string
	Start        time.Time
	End          time.Time
	IsPrediction *bool
	Limit        int64
}

const observationColumns = `id, data_type, timestamp, value, latitude, longitude,
	source, is_prediction, prediction_model, metadata, created_at`

// InsertObservation adds a new observation to the database
func (q *Queries) InsertObservation(ctx context.Context, params InsertObservationParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, `
		INSERT INTO observations (
			data_type, timestamp, value, latitude, longitude,
			source, is_prediction, prediction_model, metadata, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`,
		params.DataType, params.Timestamp.Unix(), params.Value,
		params.Latitude, params.Longitude,
		nullString(params.Source), params.IsPrediction,
		nullString(params.PredictionModel), nullString(params.Metadata),
		time.Now().Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("error inserting observation: %w", err)
	}
	return result.LastInsertId()
}

// GetObservations returns observations matching the filter, ordered by timestamp.
// The row count is capped at MaxObservationLimit.
func (q *Queries) GetObservations(ctx context.Context, filter ObservationFilter) ([]Observation, error) {
	var conditions []string
	var args []interface{}

	if filter.DataType != "" {
		conditions = append(conditions, "data_type = ?")
		args = append(args, filter.DataType)
	}
	if !filter.Start.IsZero() {
		conditions = append(conditions, "timestamp >= ?")
		args = append(args, filter.Start.Unix())
	}
	if !filter.End.IsZero() {
		conditions = append(conditions, "timestamp <= ?")
		args = append(args, filter.End.Unix())
	}
	if filter.IsPrediction != nil {
		conditions = append(conditions, "is_prediction = ?")
		args = append(args, *filter.IsPrediction)
	}

	query := "SELECT " + observationColumns + " FROM observations"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY timestamp LIMIT ?"

	limit := filter.Limit
	if limit <= 0 || limit > MaxObservationLimit {
		limit = MaxObservationLimit
	}
	args = append(args, limit)

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying observations: %w", err)
	}
	defer rows.Close()

	var observations []Observation
	for rows.Next() {
		obs, err := scanObservation(rows)
		if err != nil {
			return nil, err
		}
		observations = append(observations, obs)
	}
	return observations, rows.Err()
}

// GetLatestObservation returns the most recent observation of the given type
func (q *Queries) GetLatestObservation(ctx context.Context, dataType string, isPrediction bool) (Observation, error) {
	row := q.db.QueryRowContext(ctx, `
		SELECT `+observationColumns+` FROM observations
		WHERE data_type = ? AND is_prediction = ?
		ORDER BY timestamp DESC LIMIT 1;
	`, dataType, isPrediction)
	return scanObservationRow(row)
}

// GetLatestObservationBefore returns the most recent historical observation at
// or before the cutoff, used for year-over-year trend calculation.
func (q *Queries) GetLatestObservationBefore(ctx context.Context, dataType string, cutoff time.Time) (Observation, error) {
	row := q.db.QueryRowContext(ctx, `
		SELECT `+observationColumns+` FROM observations
		WHERE data_type = ? AND is_prediction = 0 AND timestamp <= ?
		ORDER BY timestamp DESC LIMIT 1;
	`, dataType, cutoff.Unix())
	return scanObservationRow(row)
}

// CountObservations returns the number of stored observations
func (q *Queries) CountObservations(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM observations;").Scan(&count)
	return count, err
}

// DeleteObservationsBySource removes observations imported from the named
// source, so a feed re-import replaces rather than duplicates them.
func (q *Queries) DeleteObservationsBySource(ctx context.Context, source string) error {
	_, err := q.db.ExecContext(ctx, "DELETE FROM observations WHERE source = ?;", source)
	if err != nil {
		return fmt.Errorf("error deleting observations for source %q: %w", source, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanObservation(row rowScanner) (Observation, error) {
	var obs Observation
	var timestamp, createdAt int64
	err := row.Scan(
		&obs.ID, &obs.DataType, &timestamp, &obs.Value,
		&obs.Latitude, &obs.Longitude, &obs.Source,
		&obs.IsPrediction, &obs.PredictionModel, &obs.Metadata, &createdAt,
	)
	if err != nil {
		return Observation{}, err
	}
	obs.Timestamp = time.Unix(timestamp, 0).UTC()
	obs.CreatedAt = time.Unix(createdAt, 0).UTC()
	return obs, nil
}

func scanObservationRow(row *sql.Row) (Observation, error) {
	obs, err := scanObservation(row)
	if err != nil {
		return Observation{}, fmt.Errorf("error scanning observation: %w", err)
	}
	return obs, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
