package climatedb

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// CreateUserParams carries the fields for a new account
type CreateUserParams struct {
	Username     string
	Email        string
	PasswordHash string
	Role         string
}

const userColumns = `id, username, email, password_hash, role, is_active, created_at, last_login`

// CreateUser adds a new user. It fails if the username or email is taken.
func (q *Queries) CreateUser(ctx context.Context, params CreateUserParams) (int64, error) {
	role := params.Role
	if role == "" {
		role = "user"
	}
	result, err := q.db.ExecContext(ctx, `
		INSERT INTO users (username, email, password_hash, role, is_active, created_at)
		VALUES (?, ?, ?, ?, 1, ?);
	`, params.Username, params.Email, params.PasswordHash, role, time.Now().Unix())
	if err != nil {
		return 0, fmt.Errorf("error creating user: %w", err)
	}
	return result.LastInsertId()
}

// GetUserByUsername returns the account with the given username
func (q *Queries) GetUserByUsername(ctx context.Context, username string) (User, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE username = ?;", username)

	var user User
	var createdAt int64
	var lastLogin sql.NullInt64
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.Role, &user.IsActive, &createdAt, &lastLogin,
	)
	if err != nil {
		return User{}, err
	}
	user.CreatedAt = time.Unix(createdAt, 0).UTC()
	if lastLogin.Valid {
		user.LastLogin = sql.NullTime{Time: time.Unix(lastLogin.Int64, 0).UTC(), Valid: true}
	}
	return user, nil
}

// RecordLogin updates the last-login timestamp for a user
func (q *Queries) RecordLogin(ctx context.Context, userID int64) error {
	_, err := q.db.ExecContext(ctx,
		"UPDATE users SET last_login = ? WHERE id = ?;", time.Now().Unix(), userID)
	if err != nil {
		return fmt.Errorf("error recording login: %w", err)
	}
	return nil
}

// CountUsers returns the number of accounts
func (q *Queries) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users;").Scan(&count)
	return count, err
}

// GetPreferences returns a user's preferences, or defaults when none are stored
func (q *Queries) GetPreferences(ctx context.Context, userID int64) (UserPreference, error) {
	row := q.db.QueryRowContext(ctx, `
		SELECT id, user_id, theme, default_map_view, temperature_unit,
			notifications_enabled, advanced_mode
		FROM user_preferences WHERE user_id = ?;
	`, userID)

	var prefs UserPreference
	err := row.Scan(
		&prefs.ID, &prefs.UserID, &prefs.Theme, &prefs.DefaultMapView,
		&prefs.TemperatureUnit, &prefs.NotificationsEnabled, &prefs.AdvancedMode,
	)
	if err == sql.ErrNoRows {
		return UserPreference{
			UserID:               userID,
			Theme:                "light",
			DefaultMapView:       "earth",
			TemperatureUnit:      "celsius",
			NotificationsEnabled: true,
		}, nil
	}
	if err != nil {
		return UserPreference{}, fmt.Errorf("error scanning preferences: %w", err)
	}
	return prefs, nil
}

// UpsertPreferences stores a user's preferences, replacing any existing row
func (q *Queries) UpsertPreferences(ctx context.Context, prefs UserPreference) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO user_preferences (
			user_id, theme, default_map_view, temperature_unit,
			notifications_enabled, advanced_mode
		) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			theme = excluded.theme,
			default_map_view = excluded.default_map_view,
			temperature_unit = excluded.temperature_unit,
			notifications_enabled = excluded.notifications_enabled,
			advanced_mode = excluded.advanced_mode;
	`,
		prefs.UserID, prefs.Theme, prefs.DefaultMapView,
		prefs.TemperatureUnit, prefs.NotificationsEnabled, prefs.AdvancedMode,
	)
	if err != nil {
		return fmt.Errorf("error upserting preferences: %w", err)
	}
	return nil
}

// InsertSavedLocation stores a user-saved point of interest
func (q *Queries) InsertSavedLocation(ctx context.Context, userID int64, name string, lat, lon float64, description string) (int64, error) {
	result, err := q.db.ExecContext(ctx, `
		INSERT INTO saved_locations (user_id, name, latitude, longitude, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?);
	`, userID, name, lat, lon, nullString(description), time.Now().Unix())
	if err != nil {
		return 0, fmt.Errorf("error inserting saved location: %w", err)
	}
	return result.LastInsertId()
}

// ListSavedLocations returns a user's saved locations, newest first
func (q *Queries) ListSavedLocations(ctx context.Context, userID int64) ([]SavedLocation, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, user_id, name, latitude, longitude, description, created_at
		FROM saved_locations WHERE user_id = ? ORDER BY created_at DESC;
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying saved locations: %w", err)
	}
	defer rows.Close()

	var locations []SavedLocation
	for rows.Next() {
		var loc SavedLocation
		var createdAt int64
		err := rows.Scan(
			&loc.ID, &loc.UserID, &loc.Name, &loc.Latitude,
			&loc.Longitude, &loc.Description, &createdAt,
		)
		if err != nil {
			return nil, err
		}
		loc.CreatedAt = time.Unix(createdAt, 0).UTC()
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}

// DeleteSavedLocation removes a saved location owned by the given user
func (q *Queries) DeleteSavedLocation(ctx context.Context, userID, locationID int64) error {
	result, err := q.db.ExecContext(ctx,
		"DELETE FROM saved_locations WHERE id = ? AND user_id = ?;", locationID, userID)
	if err != nil {
		return fmt.Errorf("error deleting saved location: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
