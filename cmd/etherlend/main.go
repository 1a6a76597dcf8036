package main

import (
	"context"
	"strconv"
	"time"

	"github.com/emperor6007/EtherLend/configs"
	"github.com/emperor6007/EtherLend/internal/app/router"
	"github.com/emperor6007/EtherLend/internal/pkg/db"
	"github.com/emperor6007/EtherLend/internal/pkg/logger"
	"github.com/emperor6007/EtherLend/internal/pkg/otel"
	"github.com/emperor6007/EtherLend/internal/pkg/redis"
	"github.com/emperor6007/EtherLend/internal/pkg/store/local"
	"github.com/emperor6007/EtherLend/internal/pkg/utils/worker"

	goredis "github.com/redis/go-redis/v9"
)

func main() {

	// Load Environment Variables
	err := configs.LoadEnv()
	if err != nil {
		logger.Debug("Error loading .env file: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// setup otel collector
	shutdownOtel, err := otel.Setup(ctx, configs.SERVICE_NAME, configs.OTEL_URL)
	if err != nil {
		logger.Error(ctx, "Error setting up OTLP: %v", err)
	}
	if shutdownOtel != nil {
		defer shutdownOtel(ctx)
	}

	// Local durable store, always on.
	localStore, err := local.Open(configs.LOCAL_DB_PATH)
	if err != nil {
		logger.Panic(ctx, "Failed to open local store at %s: %v", configs.LOCAL_DB_PATH, err)
	}
	defer localStore.Close()

	// Remote session: one probe decides where this process starts.
	manager := db.NewConnectionManager(db.ManagerOptions{
		URI:             configs.DB_URI,
		DatabaseName:    configs.DB_NAME,
		MaxPoolSize:     configs.DB_MAXPOOLSIZE,
		MinPoolSize:     configs.DB_MINPOOLSIZE,
		MaxConnIdleTime: time.Duration(configs.DB_MAXIDLETIME_INMINUTES) * time.Minute,
	})
	probeTimeout := time.Duration(configs.PROBE_TIMEOUT_IN_SECONDS) * time.Second
	probedRate := manager.Probe(ctx, probeTimeout)
	logger.Info(ctx, "startup probe finished, remote available: %t", manager.RemoteAvailable())

	numberOfWorkers, er := strconv.Atoi(configs.WORKER_POOL)
	if er != nil {
		logger.Error(ctx, "Invalid WORKER_POOL value %q: %v", configs.WORKER_POOL, er)
		numberOfWorkers = 1
	}
	workerPool := worker.NewWorkerPool(numberOfWorkers)
	defer workerPool.Stop()

	// Redis is optional; without it the loan cache stays disabled.
	var redisClient *redis.RedisClient
	if configs.LOAN_CACHE_ENABLED {
		redisClient, err = redis.ConnectToRedis(ctx, configs.GetRedisConfig(), nil)
		if err != nil {
			logger.Warn(ctx, "Failed to connect to Redis, continuing without loan cache: %v", err)
			redisClient = nil
		} else {
			defer redis.Disconnect(redisClient.Client)
		}
	}

	var cacheClient *goredis.Client
	if redisClient != nil {
		cacheClient = redisClient.Client
	}

	r := router.SetupRouter(ctx, manager, localStore, workerPool, cacheClient, probedRate)

	port := configs.SERVER_PORT

	if err := r.Run(":" + port); err != nil {
		logger.Error(ctx, "Failed to run server: %v", err)
	}
}
