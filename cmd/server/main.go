package main

import (
	"context"                       // context package is needed for store connections
	"survey_system/internal/api"    // Custom package for API handlers
	"survey_system/internal/config" // Custom package for configuration
	"survey_system/internal/db"     // Custom package for record stores
	"survey_system/internal/report" // Custom package for report generation
	"survey_system/internal/utils"  // Custom package for the summary cache
	"time"                          // Startup timeouts

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		logrus.SetLevel(logrus.DebugLevel) // Print the results table on every report
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second) // Bound startup connections
	defer cancel()

	store, closeStore := openStore(ctx, cfg) // Connect to the record store
	defer closeStore()

	// Setup Redis client when configured
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		var err error
		redisClient, err = utils.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	generator := report.NewGenerator(store, report.Paths{
		CSV:         cfg.CSVPath(),         // Semicolon-delimited snapshot
		IncomeChart: cfg.IncomeChartPath(), // Top incomes chart
		GenderChart: cfg.GenderChartPath(), // Spending by gender chart
	})
	r := api.NewRouter(api.RouterConfig{
		Store:     store,                       // Record store
		Generator: generator,                   // Report generator
		Cache:     utils.NewCache(redisClient), // Summary cache
		StaticDir: cfg.StaticDir,               // Generated charts
	})

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"port":  cfg.AppPort,     // Listen port
		"store": cfg.StoreDriver, // Record store backend
		"cache": redisClient != nil,
	}).Info("Server running") // Log server start
	if err := r.Run("0.0.0.0:" + cfg.AppPort); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}

// openStore connects the configured backend and returns a function releasing it
func openStore(ctx context.Context, cfg *config.Config) (db.RecordStore, func()) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		client, err := db.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			logrus.Fatalf("failed to connect to MongoDB: %v", err) // Fatal error if store connection fails
		}
		coll := client.Database(cfg.MongoDB).Collection(cfg.MongoCollection)
		return db.NewMongoStore(coll), func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logrus.WithError(err).Error("Error disconnecting from MongoDB")
			}
		}
	case config.DriverMySQL:
		gdb, err := db.OpenMySQL(cfg.MySQLDSN())
		if err != nil {
			logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
		}
		return db.NewGormStore(gdb), func() {
			if sqlDB, err := gdb.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
	case config.DriverMemory:
		logrus.Warn("Using in-memory store, submissions are lost on exit")
		return db.NewMemoryStore(), func() {}
	default:
		logrus.Fatalf("unknown STORE_DRIVER %q", cfg.StoreDriver)
		return nil, nil
	}
}
