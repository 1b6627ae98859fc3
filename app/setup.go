package app

import (
	"fmt"

	"github.com/mindanaodata/edu-portal/api"
	"github.com/mindanaodata/edu-portal/config"
	"github.com/mindanaodata/edu-portal/router"
	"github.com/mindanaodata/edu-portal/services"
	"github.com/mindanaodata/edu-portal/services/cron"
	"github.com/mindanaodata/edu-portal/utils/cache"
)

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	// Initialize the dataset service and generate the tables up front so a
	// broken constant table fails the process at startup, not on first request.
	datasets := services.NewDatasetService(getEnv.DATASET_SEED)
	if _, err := datasets.Collection(); err != nil {
		print("Failed to generate the dataset\n")
		print("Error: ", err.Error(), "\n")
		return err
	}

	// Initialize Redis export cache (optional)
	var exportCache *cache.RedisCache
	if getEnv.REDIS_URL != "" {
		exportCache, err = cache.NewRedisCache(getEnv.REDIS_URL)
		if err != nil {
			print("Warning: Failed to connect to Redis, export caching disabled\n")
			print("Error: ", err.Error(), "\n")
			exportCache = nil
		}
	}

	exports := services.NewExportService(exportCache, getEnv.EXPORT_CACHE_TTL)

	// Initialize Cron Manager (only if enabled via environment variable)
	var cronManager *cron.Manager
	if getEnv.CRON_ENABLED {
		cronManager = cron.NewManager(datasets, exports)
		if err := cronManager.Start(); err != nil {
			print("Warning: Failed to start cron jobs\n")
			print("Error: ", err.Error(), "\n")
			// Don't fail the app, just log the warning
		}
	}

	// Defer stopping cron jobs and closing the cache
	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		if exportCache != nil {
			exportCache.Close()
		}
	}()

	// Init API
	var server *api.APIServer = api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	// Setup Routes (middleware is attached inside)
	router.SetupRoutes(app, datasets, exports)

	// Get the PORT & Start the Server
	return server.Run()
}
