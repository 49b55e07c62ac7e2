package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gosec/site-backend/handlers"
	"github.com/gosec/site-backend/internal/admin"
	"github.com/gosec/site-backend/internal/config"
	"github.com/gosec/site-backend/internal/content"
	"github.com/gosec/site-backend/internal/database"
	"github.com/gosec/site-backend/internal/forms"
	"github.com/gosec/site-backend/internal/uploads"
	"github.com/gosec/site-backend/pkg/logger"
	"github.com/gosec/site-backend/pkg/metrics"
	"github.com/gosec/site-backend/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging level is controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v uploads_backend=%s", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.Uploads.Backend)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple — production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	ctx := context.Background()

	// Connect to Redis early so the rate limiter can use it when configured
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("connected to Redis at %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Retry/backoff when connecting to MongoDB to tolerate startup races.
	// The whole API is backed by Mongo, so exhausting the retries is fatal.
	const maxAttempts = 5
	backoff := time.Second
	var client *mongo.Client
	var errConn error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		client, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		if errConn == nil {
			break
		}
		logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
		if attempt < maxAttempts {
			time.Sleep(backoff)
			backoff *= 2
		}
	}
	if errConn != nil {
		logger.Fatalf("could not connect to MongoDB after %d attempts: %v", maxAttempts, errConn)
	}
	defer func() { _ = client.Disconnect(ctx) }()
	db := client.Database(cfg.MongoDB.Database)

	// bootstrap the single admin identity before serving any request
	admins := admin.NewService(admin.NewMongoRepository(db.Collection("admin_users")))
	if err := admins.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		logger.Fatalf("failed to ensure admin user: %v", err)
	}

	var files uploads.Store
	switch cfg.Uploads.Backend {
	case "minio":
		files, err = uploads.NewMinIOStore(&cfg.MinIO)
		if err != nil {
			logger.Fatalf("failed to initialize MinIO storage: %v", err)
		}
		logger.Infof("using MinIO media storage (bucket %s)", cfg.MinIO.Bucket)
	default:
		files, err = uploads.NewDiskStore(cfg.Uploads.Dir)
		if err != nil {
			logger.Fatalf("failed to initialize disk storage at %s: %v", cfg.Uploads.Dir, err)
		}
	}

	authHandler := handlers.NewAuthHandler(cfg, admins)
	requireAdmin := middleware.RequireAdmin(authHandler.Verifier())

	api := r.Group("/api")
	authHandler.Register(api)
	content.NewHandler(content.NewService(content.NewMongoStore(db), files), files).Register(api, requireAdmin)
	forms.NewHandler(forms.NewMongoRepository(db)).Register(api, requireAdmin)
	handlers.RegisterSwagger(r)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness: Mongo is mandatory, Redis only when the limiter uses it
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		deps["mongodb"] = client.Ping(pingCtx, nil) == nil
		if !deps["mongodb"] {
			ready = false
		}

		if cfg.RateLimit.Enabled && cfg.RateLimit.UseRedis {
			deps["redis"] = redisClient != nil && redisClient.Ping(pingCtx).Err() == nil
			if !deps["redis"] {
				ready = false
			}
		} else {
			deps["redis"] = true
		}

		status := gin.H{"deps": deps, "uptime": time.Since(startTime).String()}
		if !ready {
			status["status"] = "not_ready"
			c.JSON(http.StatusServiceUnavailable, status)
			return
		}
		status["status"] = "ready"
		c.JSON(http.StatusOK, status)
	})

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("starting gosec backend on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
