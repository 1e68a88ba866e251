package climatedb

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// InsertSimulationResultParams carries the fields for a stored scenario run
type InsertSimulationResultParams struct {
	ExternalID  string
	Name        string
	Scenario    string
	Parameters  string // JSON blob, may be empty
	Results     string // JSON blob, may be empty
	Description string
	CreatedBy   sql.NullInt64
}

const simulationColumns = `id, external_id, name, scenario, parameters, results,
	description, created_by, created_at`

// InsertSimulationResult stores the output of a scenario run
func (q *Queries) InsertSimulationResult(ctx context.Context, params InsertSimulationResultParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, `
		INSERT INTO simulation_results (
			external_id, name, scenario, parameters, results,
			description, created_by, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`,
		params.ExternalID, params.Name, params.Scenario,
		nullString(params.Parameters), nullString(params.Results),
		nullString(params.Description), params.CreatedBy, time.Now().Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("error inserting simulation result: %w", err)
	}
	return result.LastInsertId()
}

// GetSimulationResults returns stored scenario runs, newest first.
// An empty scenario matches all scenarios.
func (q *Queries) GetSimulationResults(ctx context.Context, scenario string) ([]SimulationResult, error) {
	query := "SELECT " + simulationColumns + " FROM simulation_results"
	var args []interface{}
	if scenario != "" {
		query += " WHERE scenario = ?"
		args = append(args, scenario)
	}
	query += " ORDER BY created_at DESC;"

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying simulation results: %w", err)
	}
	defer rows.Close()

	var results []SimulationResult
	for rows.Next() {
		result, err := scanSimulationResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, rows.Err()
}

// GetSimulationResult returns a single scenario run by its external ID
func (q *Queries) GetSimulationResult(ctx context.Context, externalID string) (SimulationResult, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT "+simulationColumns+" FROM simulation_results WHERE external_id = ?;", externalID)
	result, err := scanSimulationResult(row)
	if err != nil {
		return SimulationResult{}, fmt.Errorf("error scanning simulation result: %w", err)
	}
	return result, nil
}

// CountSimulationResults returns the number of stored scenario runs
func (q *Queries) CountSimulationResults(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM simulation_results;").Scan(&count)
	return count, err
}

func scanSimulationResult(row rowScanner) (SimulationResult, error) {
	var result SimulationResult
	var createdAt int64
	err := row.Scan(
		&result.ID, &result.ExternalID, &result.Name, &result.Scenario,
		&result.Parameters, &result.Results, &result.Description,
		&result.CreatedBy, &createdAt,
	)
	if err != nil {
		return SimulationResult{}, err
	}
	result.CreatedAt = time.Unix(createdAt, 0).UTC()
	return result, nil
}
