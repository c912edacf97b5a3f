// server/cmd/api/main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"waste-management-api-server/config"
	"waste-management-api-server/internal/api/routes"
	"waste-management-api-server/internal/cache"
	"waste-management-api-server/internal/database"
	"waste-management-api-server/internal/events"
	"waste-management-api-server/internal/logger"
	"waste-management-api-server/internal/mapper"
	"waste-management-api-server/internal/metrics"
	"waste-management-api-server/internal/s3"
	"waste-management-api-server/internal/service"
	"waste-management-api-server/internal/store"
	"waste-management-api-server/internal/store/memory"
	"waste-management-api-server/internal/store/mongostore"
)

func main() {
	// 1. Load .env (optional) and configuration
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Could not read .env: %v", err)
	}
	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	zlog, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Could not build logger: %v", err)
	}
	defer zlog.Sync()

	loc, err := cfg.Location()
	if err != nil {
		zlog.Fatal("Invalid app.timezone", zap.String("timezone", cfg.App.TimeZone), zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Store
	db, ping, closeStore := openStore(ctx, cfg, zlog)
	defer closeStore()

	// 3. Optional cache, event publisher and report uploader
	var appCache cache.Cache = cache.Noop{}
	if cfg.Redis.Addr != "" {
		rdb, err := cache.NewRedisClient(cfg.Redis, zlog)
		if err != nil {
			zlog.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer rdb.Close()
		appCache = cache.NewRedis(rdb, zlog)
	}

	var publisher events.Publisher = events.Noop{}
	if cfg.NATS.URL != "" {
		natsPub, err := events.NewNATSPublisher(cfg.NATS, zlog)
		if err != nil {
			zlog.Fatal("Failed to connect to NATS", zap.Error(err))
		}
		defer natsPub.Close()
		publisher = natsPub
	}

	appMetrics := metrics.New("waste")
	deps := service.Deps{
		DB:         db,
		Mapper:     mapper.New(),
		Validate:   service.NewValidator(),
		Events:     publisher,
		Cache:      appCache,
		CacheTTL:   cfg.Redis.TTL,
		Metrics:    appMetrics,
		Logger:     zlog,
		Location:   loc,
		BcryptCost: cfg.App.BcryptCost,
	}
	collections := service.NewCollectionService(deps)

	var reports *service.ReportService
	if cfg.S3.Bucket != "" {
		uploader, err := s3.NewUploader(ctx, cfg.S3)
		if err != nil {
			zlog.Fatal("Failed to initialise S3 uploader", zap.Error(err))
		}
		reports = service.NewReportService(deps, collections, uploader)
	}

	// 4. Router
	gin.SetMode(cfg.Server.Mode)
	router := routes.SetupRouter(routes.Deps{
		Config:      cfg,
		Logger:      zlog,
		Metrics:     appMetrics,
		Bins:        service.NewBinService(deps),
		Users:       service.NewUserService(deps),
		Drivers:     service.NewDriverService(deps),
		Schedules:   service.NewScheduleService(deps),
		Payments:    service.NewPaymentService(deps),
		Collections: collections,
		Reports:     reports,
		Ping:        ping,
	})

	// 5. Serve until signalled
	srv := &http.Server{Addr: ":" + cfg.Server.Port, Handler: router}
	go func() {
		zlog.Info("Starting API server", zap.String("port", cfg.Server.Port), zap.String("store", cfg.Store.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("Failed to run server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zlog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("Graceful shutdown failed", zap.Error(err))
	}
}

// openStore returns the configured store, a health check and a close function.
func openStore(ctx context.Context, cfg config.Config, zlog *zap.Logger) (*store.DB, func(context.Context) error, func()) {
	if cfg.Store.Driver == "memory" {
		zlog.Warn("Using in-memory store; data is lost on restart")
		return memory.New(), nil, func() {}
	}

	client, err := database.Connect(ctx, cfg.Mongo, zlog)
	if err != nil {
		zlog.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	mdb := client.Database(cfg.Mongo.DBName)
	if err := database.EnsureIndexes(ctx, mdb, zlog); err != nil {
		zlog.Fatal("Failed to create indexes", zap.Error(err))
	}

	ping := func(ctx context.Context) error { return client.Ping(ctx, nil) }
	closeFn := func() { disconnect(client, zlog) }
	return mongostore.Open(mdb), ping, closeFn
}

func disconnect(client *mongo.Client, zlog *zap.Logger) {
	if err := client.Disconnect(context.Background()); err != nil {
		zlog.Error("Failed to disconnect MongoDB", zap.Error(err))
	}
}
