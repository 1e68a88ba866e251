package climate

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"gaia.climateintel.org/climatedb"
	"gaia.climateintel.org/internal/feeds"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Manager owns the climate datastore and keeps it current: it seeds an
// empty database, imports the public feeds at startup, and refreshes
// them on a schedule until shut down.
type Manager struct {
	ClimateDB *climatedb.Client

	fetcher       *feeds.Fetcher
	logger        *slog.Logger
	config        Config
	cache         *queryCache
	lastRefreshed time.Time
	refreshMutex  sync.RWMutex
	shutdownChan  chan struct{}
	wg            sync.WaitGroup
	shutdownOnce  sync.Once
}

// InitClimateManager opens the datastore, seeds it when empty, runs an
// initial feed import and starts the periodic refresh goroutine.
func InitClimateManager(config Config, logger *slog.Logger) (*Manager, error) {
	dbConfig := climatedb.NewConfig(config.DataPath, config.Env, config.Verbose)
	client, err := climatedb.NewClient(dbConfig)
	if err != nil {
		return nil, fmt.Errorf("error building climate database: %w", err)
	}

	ctx := context.Background()
	if err := client.SeedIfEmpty(ctx, logger); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("error seeding climate database: %w", err)
	}

	manager := &Manager{
		ClimateDB:    client,
		fetcher:      feeds.NewFetcher(),
		logger:       logger,
		config:       config,
		cache:        newQueryCache(queryCacheTTL),
		shutdownChan: make(chan struct{}),
	}

	if config.FeedsEnabled {
		refreshCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
		manager.RefreshFeeds(refreshCtx)
		cancel()

		manager.wg.Add(1)
		go manager.refreshFeedsPeriodically()
	}

	return manager, nil
}

// Shutdown gracefully shuts down the manager and its background goroutines.
func (manager *Manager) Shutdown() {
	manager.shutdownOnce.Do(func() {
		close(manager.shutdownChan)
		manager.wg.Wait()
		if manager.ClimateDB != nil {
			_ = manager.ClimateDB.Close()
		}
	})
}

// LastRefreshed reports when the feeds were last imported. Zero until
// the first refresh completes.
func (manager *Manager) LastRefreshed() time.Time {
	manager.refreshMutex.RLock()
	defer manager.refreshMutex.RUnlock()
	return manager.lastRefreshed
}

// Fetcher exposes the feed fetcher so callers can point feeds at test
// servers.
func (manager *Manager) Fetcher() *feeds.Fetcher {
	return manager.fetcher
}

func (manager *Manager) refreshFeedsPeriodically() {
	defer manager.wg.Done()

	ticker := time.NewTicker(manager.config.refreshInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			manager.RefreshFeeds(ctx)
			cancel()
		case <-manager.shutdownChan:
			if manager.logger != nil {
				manager.logger.Info("shutting down feed refresh")
			}
			return
		}
	}
}
