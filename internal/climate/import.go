package climate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gaia.climateintel.org/climatedb"
	"gaia.climateintel.org/internal/feeds"
	"gaia.climateintel.org/internal/logging"
)

// Source attribution recorded on observations imported from each feed.
// Re-imports replace all rows carrying the feed's source.
var feedSources = map[string]string{
	feeds.FeedGlobalTemperature: "NOAA Global Temperature",
	feeds.FeedCO2Concentration:  "NOAA Mauna Loa CO2",
	feeds.FeedSeaLevel:          "NASA Sea Level",
	feeds.FeedArcticIce:         "NSIDC Arctic Sea Ice",
}

// RefreshFeeds fetches every feed and imports the series that changed.
// Individual feed failures are logged and do not abort the refresh.
func (manager *Manager) RefreshFeeds(ctx context.Context) {
	start := time.Now()

	for _, feed := range feeds.AllFeeds {
		series := manager.fetcher.FetchOrSynthesize(ctx, feed, manager.logger)
		if err := manager.ImportSeries(ctx, series); err != nil {
			logging.LogError(manager.logger, "feed import failed", err,
				slog.String("feed", feed))
		}
	}

	manager.refreshMutex.Lock()
	manager.lastRefreshed = time.Now()
	manager.refreshMutex.Unlock()

	manager.cache.purge()
	logging.LogOperation(manager.logger, "feeds refreshed",
		slog.Duration("duration", time.Since(start)))
}

// ImportSeries stores a parsed feed series as annual observations,
// replacing any rows from an earlier import of the same feed. Series
// whose checksum matches the previous import are skipped.
func (manager *Manager) ImportSeries(ctx context.Context, series feeds.Series) error {
	source, ok := feedSources[series.Feed]
	if !ok {
		return fmt.Errorf("unknown feed %q", series.Feed)
	}
	if len(series.Records) == 0 {
		return fmt.Errorf("feed %s produced no records", series.Feed)
	}

	queries := manager.ClimateDB.Queries

	if series.Checksum != "" {
		unchanged, err := queries.FeedUnchanged(ctx, series.Feed, series.Checksum)
		if err != nil {
			return err
		}
		if unchanged {
			if manager.logger != nil {
				manager.logger.Debug("feed unchanged, skipping import",
					slog.String("feed", series.Feed))
			}
			return nil
		}
	}

	if err := queries.DeleteObservationsBySource(ctx, source); err != nil {
		return err
	}

	for _, record := range series.Records {
		metadata := fmt.Sprintf(`{"uncertainty":%g,"synthetic":%t}`,
			record.Uncertainty, series.Synthetic)
		_, err := queries.InsertObservation(ctx, climatedb.InsertObservationParams{
			DataType:  series.DataType,
			Timestamp: time.Date(record.Year, time.January, 1, 0, 0, 0, 0, time.UTC),
			Value:     record.Value,
			Source:    source,
			Metadata:  metadata,
		})
		if err != nil {
			return fmt.Errorf("error importing %s record for %d: %w", series.Feed, record.Year, err)
		}
	}

	err := queries.UpsertFeedImport(ctx, climatedb.FeedImport{
		Feed:        series.Feed,
		FetchedAt:   time.Now().UTC(),
		RecordCount: int64(len(series.Records)),
		Checksum:    series.Checksum,
	})
	if err != nil {
		return err
	}

	if manager.logger != nil {
		manager.logger.Info("feed imported",
			slog.String("feed", series.Feed),
			slog.Int("records", len(series.Records)),
			slog.Bool("synthetic", series.Synthetic))
	}
	return nil
}
