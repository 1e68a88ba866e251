package climatedb

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// GetFeedImport returns the import record for the named feed, if any
func (q *Queries) GetFeedImport(ctx context.Context, feed string) (FeedImport, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT feed, fetched_at, record_count, checksum FROM feed_imports WHERE feed = ?;", feed)

	var record FeedImport
	var fetchedAt int64
	err := row.Scan(&record.Feed, &fetchedAt, &record.RecordCount, &record.Checksum)
	if err != nil {
		return FeedImport{}, err
	}
	record.FetchedAt = time.Unix(fetchedAt, 0).UTC()
	return record, nil
}

// UpsertFeedImport records a successful feed import
func (q *Queries) UpsertFeedImport(ctx context.Context, record FeedImport) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO feed_imports (feed, fetched_at, record_count, checksum)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (feed) DO UPDATE SET
			fetched_at = excluded.fetched_at,
			record_count = excluded.record_count,
			checksum = excluded.checksum;
	`, record.Feed, record.FetchedAt.Unix(), record.RecordCount, record.Checksum)
	if err != nil {
		return fmt.Errorf("error upserting feed import: %w", err)
	}
	return nil
}

// FeedUnchanged reports whether the named feed was already imported with the
// same checksum, so callers can skip redundant imports.
func (q *Queries) FeedUnchanged(ctx context.Context, feed, checksum string) (bool, error) {
	record, err := q.GetFeedImport(ctx, feed)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return record.Checksum == checksum, nil
}
