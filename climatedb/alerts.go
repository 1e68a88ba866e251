package climatedb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// InsertAlertParams carries the fields for a new alert row
type InsertAlertParams struct {
	AlertType   string
	Severity    int64
	Region      string
	Latitude    float64
	Longitude   float64
	Title       string
	Description string
	ExpiresAt   sql.NullTime
	Source      string
}

// AlertFilter narrows active-alert queries. Zero values mean "no filter".
type AlertFilter struct {
	AlertType   string
	Region      string
	MinSeverity int64
}

const alertColumns = `id, alert_type, severity, region, latitude, longitude,
	title, description, issued_at, expires_at, is_active, source`

// InsertAlert adds a new environmental alert to the database
func (q *Queries) InsertAlert(ctx context.Context, params InsertAlertParams) (int64, error) {
	var expiresAt interface{}
	if params.ExpiresAt.Valid {
		expiresAt = params.ExpiresAt.Time.Unix()
	}

	result, err := q.db.ExecContext(ctx, `
		INSERT INTO alerts (
			alert_type, severity, region, latitude, longitude,
			title, description, issued_at, expires_at, is_active, source
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 1, ?);
	`,
		params.AlertType, params.Severity, params.Region,
		params.Latitude, params.Longitude, params.Title,
		nullString(params.Description), time.Now().Unix(), expiresAt,
		nullString(params.Source),
	)
	if err != nil {
		return 0, fmt.Errorf("error inserting alert: %w", err)
	}
	return result.LastInsertId()
}

// GetActiveAlerts returns active, unexpired alerts matching the filter,
// most severe first.
func (q *Queries) GetActiveAlerts(ctx context.Context, filter AlertFilter) ([]Alert, error) {
	conditions := []string{"is_active = 1", "(expires_at IS NULL OR expires_at > ?)"}
	args := []interface{}{time.Now().Unix()}

	if filter.AlertType != "" {
		conditions = append(conditions, "alert_type = ?")
		args = append(args, filter.AlertType)
	}
	if filter.Region != "" {
		conditions = append(conditions, "region = ?")
		args = append(args, filter.Region)
	}
	if filter.MinSeverity > 0 {
		conditions = append(conditions, "severity >= ?")
		args = append(args, filter.MinSeverity)
	}

	query := "SELECT " + alertColumns + " FROM alerts WHERE " +
		strings.Join(conditions, " AND ") + " ORDER BY severity DESC, issued_at DESC;"

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying alerts: %w", err)
	}
	defer rows.Close()

	var alerts []Alert
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, alert)
	}
	return alerts, rows.Err()
}

// GetAlert returns a single alert by ID
func (q *Queries) GetAlert(ctx context.Context, id int64) (Alert, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT "+alertColumns+" FROM alerts WHERE id = ?;", id)
	alert, err := scanAlert(row)
	if err != nil {
		return Alert{}, fmt.Errorf("error scanning alert: %w", err)
	}
	return alert, nil
}

// DeactivateAlert marks an alert as no longer active
func (q *Queries) DeactivateAlert(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, "UPDATE alerts SET is_active = 0 WHERE id = ?;", id)
	if err != nil {
		return fmt.Errorf("error deactivating alert: %w", err)
	}
	return nil
}

// CountAlerts returns the number of stored alerts, active or not
func (q *Queries) CountAlerts(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM alerts;").Scan(&count)
	return count, err
}

func scanAlert(row rowScanner) (Alert, error) {
	var alert Alert
	var issuedAt int64
	var expiresAt sql.NullInt64
	err := row.Scan(
		&alert.ID, &alert.AlertType, &alert.Severity, &alert.Region,
		&alert.Latitude, &alert.Longitude, &alert.Title, &alert.Description,
		&issuedAt, &expiresAt, &alert.IsActive, &alert.Source,
	)
	if err != nil {
		return Alert{}, err
	}
	alert.IssuedAt = time.Unix(issuedAt, 0).UTC()
	if expiresAt.Valid {
		alert.ExpiresAt = sql.NullTime{Time: time.Unix(expiresAt.Int64, 0).UTC(), Valid: true}
	}
	return alert, nil
}
